package game

import (
	"colonisation/resources"
	"colonisation/rules"
	"colonisation/trading"
)

func (g *Game) TradeWithBank(player int, give resources.Resource, giveAmount int, take resources.Resource, takeAmount int) (TradeResult, error) {
	_, p, err := g.turnActor(player, true)
	if err != nil {
		return TradeResult{}, err
	}
	if err := trading.Bank(p.Resources, give, giveAmount, take, takeAmount); err != nil {
		return TradeResult{}, err
	}
	return TradeResult{Resources: p.Resources.Clone()}, nil
}

// TradeWithPort trades through the port on vertex. The player must own a
// building on that vertex.
func (g *Game) TradeWithPort(player, vertex int, give resources.Resource, giveAmount int, take resources.Resource, takeAmount int) (TradeResult, error) {
	_, p, err := g.turnActor(player, true)
	if err != nil {
		return TradeResult{}, err
	}
	port, err := g.portAt(vertex, player)
	if err != nil {
		return TradeResult{}, err
	}
	if err := trading.WithPort(p.Resources, port, give, giveAmount, take, takeAmount); err != nil {
		return TradeResult{}, err
	}
	return TradeResult{Resources: p.Resources.Clone()}, nil
}

// CreateTradeOffer records an offer from the current player to everyone else.
func (g *Game) CreateTradeOffer(player int, give, want resources.Hand) (OfferResult, error) {
	if _, _, err := g.turnActor(player, true); err != nil {
		return OfferResult{}, err
	}
	offer, err := g.state.Trades.Create(player, give, want)
	if err != nil {
		return OfferResult{}, err
	}
	return OfferResult{Offer: offer}, nil
}

// AcceptTradeOffer lets any player other than the offerer take a pending
// offer. It does not need to be the acceptor's turn.
func (g *Game) AcceptTradeOffer(player, offerID int) (OfferResult, error) {
	if g.state.Phase == PhaseFinished {
		return OfferResult{}, rules.Violation(rules.CodeGameFinished, "the game is over")
	}
	seat, to, err := g.player(player)
	if err != nil {
		return OfferResult{}, err
	}
	if g.state.Phase != PhaseTurn {
		return OfferResult{}, rules.Violation(rules.CodeWrongPhase, "cannot trade during %s", g.state.Phase)
	}
	if g.state.Turn.RobberPending {
		return OfferResult{}, rules.Violation(rules.CodeRobberPending, "the robber must be moved first")
	}
	idx, err := g.state.Trades.Find(offerID)
	if err != nil {
		return OfferResult{}, err
	}
	_, from, err := g.player(g.state.Trades.Offers[idx].From)
	if err != nil {
		panic(err)
	}

	offer, err := g.state.Trades.Accept(offerID, player, from.Resources, to.Resources)
	if err != nil {
		return OfferResult{}, err
	}
	g.score(seat)
	return OfferResult{Offer: offer}, nil
}
