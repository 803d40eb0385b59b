package game

import (
	"colonisation/devcards"
	"colonisation/resources"
	"colonisation/rules"
)

// CardData carries the extra input of a played card: two resources for year
// of plenty, one for monopoly.
type CardData struct {
	Resources []resources.Resource `json:"resources,omitempty"`
	Resource  resources.Resource   `json:"resource,omitempty"`
}

// BuyDevelopmentCard draws the next card of the deck. Victory-point cards
// count immediately.
func (g *Game) BuyDevelopmentCard(player int) (CardResult, error) {
	seat, p, err := g.turnActor(player, true)
	if err != nil {
		return CardResult{}, err
	}
	card, err := devcards.Buy(p.Resources, &g.state.Deck, p.DevCards)
	if err != nil {
		return CardResult{}, err
	}
	g.score(seat)
	return CardResult{Card: card}, nil
}

// PlayDevelopmentCard removes the card from the player's hand and resolves
// its effect. Cards may be played before rolling. A knight leaves a robber
// move pending.
func (g *Game) PlayDevelopmentCard(player int, card devcards.Card, data CardData) (CardResult, error) {
	seat, p, err := g.turnActor(player, false)
	if err != nil {
		return CardResult{}, err
	}
	if err := devcards.Check(p.DevCards, card); err != nil {
		return CardResult{}, err
	}
	switch card {
	case devcards.YearOfPlenty:
		err = devcards.CheckYearOfPlenty(data.Resources)
	case devcards.Monopoly:
		err = devcards.CheckMonopoly(data.Resource)
	}
	if err != nil {
		return CardResult{}, err
	}
	if err := devcards.Take(p.DevCards, card); err != nil {
		panic(err)
	}

	result := CardResult{Card: card}
	switch card {
	case devcards.Knight:
		p.KnightsPlayed, result.ReachedArmy = devcards.PlayKnight(p.KnightsPlayed)
		result.KnightsPlayed = p.KnightsPlayed
		g.state.Turn.RobberPending = true
	case devcards.RoadBuilding:
		g.state.Turn.FreeRoads += devcards.FreeRoads
		result.FreeRoads = g.state.Turn.FreeRoads
	case devcards.YearOfPlenty:
		devcards.ApplyYearOfPlenty(p.Resources, data.Resources)
	case devcards.Monopoly:
		result.Taken = devcards.ApplyMonopoly(g.wallets(), seat, data.Resource)
	default:
		panic(rules.Violation(rules.CodeCardNotPlayable, "no effect for %s", card))
	}

	g.score(seat)
	return result, nil
}
