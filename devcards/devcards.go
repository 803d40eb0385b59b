// Package devcards implements the development-card deck, purchases and the
// effects of each card type.
package devcards

import (
	"colonisation/resources"
	"colonisation/rules"
)

type Card string

const (
	Knight       Card = "knight"
	VictoryPoint Card = "victory_point"
	RoadBuilding Card = "road_building"
	YearOfPlenty Card = "year_of_plenty"
	Monopoly     Card = "monopoly"
)

// Composition is the fixed 25-card multiset of a deck.
var Composition = []struct {
	Card  Card
	Count int
}{
	{Knight, 14},
	{VictoryPoint, 5},
	{RoadBuilding, 2},
	{YearOfPlenty, 2},
	{Monopoly, 2},
}

const (
	// FreeRoads is the number of roads granted by a road-building card.
	FreeRoads = 2
	// LargestArmyThreshold is the knight count that makes a player eligible
	// for the largest army.
	LargestArmyThreshold = 3
)

func (c Card) Valid() bool {
	switch c {
	case Knight, VictoryPoint, RoadBuilding, YearOfPlenty, Monopoly:
		return true
	}
	return false
}

// Playable reports whether the card has an effect that can be played.
// Victory-point cards only count towards the score.
func (c Card) Playable() bool {
	return c.Valid() && c != VictoryPoint
}

// Parse converts a string to a Card.
func Parse(s string) (Card, error) {
	c := Card(s)
	if !c.Valid() {
		return "", rules.Missing(rules.CodeUnknownCard, "unknown development card %q", s)
	}
	return c, nil
}

// Shuffler is the source of randomness for a deck.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Deck is the ordered draw pile. Cards are drawn from the front.
type Deck []Card

// NewDeck builds the standard deck and shuffles it once.
func NewDeck(s Shuffler) Deck {
	var deck Deck
	for _, entry := range Composition {
		for i := 0; i < entry.Count; i++ {
			deck = append(deck, entry.Card)
		}
	}
	s.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// Draw removes and returns the front card.
func (d *Deck) Draw() (Card, error) {
	if len(*d) == 0 {
		return "", rules.Violation(rules.CodeDeckEmpty, "the development deck is empty")
	}
	card := (*d)[0]
	*d = (*d)[1:]
	return card, nil
}

// Hand is a player's multiset of unplayed development cards.
type Hand map[Card]int

func (h Hand) Total() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}

func (h Hand) Clone() Hand {
	c := make(Hand, len(h))
	for k, n := range h {
		c[k] = n
	}
	return c
}

// Buy pays the card cost from wallet and draws the next card into cards.
// Victory-point cards go into the hand like any other card; they are scored
// from there.
func Buy(wallet resources.Hand, deck *Deck, cards Hand) (Card, error) {
	if r, short := wallet.Missing(resources.DevCardCost); short {
		return "", rules.Violation(rules.CodeInsufficientResources, "cannot buy a development card: missing %s", r)
	}
	card, err := deck.Draw()
	if err != nil {
		return "", err
	}
	wallet.Sub(resources.DevCardCost)
	cards[card]++
	return card, nil
}

// Check verifies that c can be played from cards without changing anything.
func Check(cards Hand, c Card) error {
	if !c.Valid() {
		return rules.Missing(rules.CodeUnknownCard, "unknown development card %q", c)
	}
	if !c.Playable() {
		return rules.Violation(rules.CodeCardNotPlayable, "%s cards cannot be played", c)
	}
	if cards[c] == 0 {
		return rules.Violation(rules.CodeCardNotHeld, "no %s card in hand", c)
	}
	return nil
}

// Take removes one c from cards before its effect resolves.
func Take(cards Hand, c Card) error {
	if err := Check(cards, c); err != nil {
		return err
	}
	cards[c]--
	if cards[c] == 0 {
		delete(cards, c)
	}
	return nil
}

// PlayKnight returns the new knight count and whether it just reached the
// largest-army threshold. The caller makes a robber move pending.
func PlayKnight(knights int) (count int, reachedThreshold bool) {
	count = knights + 1
	return count, count == LargestArmyThreshold
}

// CheckYearOfPlenty validates the two resources picked for a year-of-plenty card.
func CheckYearOfPlenty(picks []resources.Resource) error {
	if len(picks) != 2 {
		return rules.Violation(rules.CodeInvalidCardData, "year of plenty takes exactly 2 resources, got %d", len(picks))
	}
	for _, r := range picks {
		if !r.Valid() {
			return rules.Violation(rules.CodeInvalidCardData, "unknown resource %q", r)
		}
	}
	return nil
}

// ApplyYearOfPlenty credits one unit of each picked resource.
func ApplyYearOfPlenty(wallet resources.Hand, picks []resources.Resource) {
	for _, r := range picks {
		wallet[r]++
	}
}

// CheckMonopoly validates the resource named by a monopoly card.
func CheckMonopoly(r resources.Resource) error {
	if !r.Valid() {
		return rules.Violation(rules.CodeInvalidCardData, "unknown resource %q", r)
	}
	return nil
}

// ApplyMonopoly moves every unit of r held by the other wallets into
// wallets[self] and returns how many units moved.
func ApplyMonopoly(wallets []resources.Hand, self int, r resources.Resource) int {
	taken := 0
	for i, w := range wallets {
		if i == self {
			continue
		}
		taken += w[r]
		w[r] = 0
	}
	wallets[self][r] += taken
	return taken
}
