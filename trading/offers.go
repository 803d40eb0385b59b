package trading

import (
	"colonisation/resources"
	"colonisation/rules"
)

// Offer is a pending player-to-player trade. From gives Give and receives
// Want from whoever accepts.
type Offer struct {
	ID   int            `json:"id"`
	From int            `json:"from"`
	Give resources.Hand `json:"give"`
	Want resources.Hand `json:"want"`
}

// Book holds the pending offers of a game. Ids are never reused.
type Book struct {
	NextID int     `json:"next_id"`
	Offers []Offer `json:"offers"`
}

// Create validates and records a new offer from player from.
func (b *Book) Create(from int, give, want resources.Hand) (Offer, error) {
	giveNonEmpty, err := give.Validate()
	if err != nil {
		return Offer{}, rules.Violation(rules.CodeInvalidTrade, "give side: %v", err)
	}
	wantNonEmpty, err := want.Validate()
	if err != nil {
		return Offer{}, rules.Violation(rules.CodeInvalidTrade, "want side: %v", err)
	}
	if !giveNonEmpty || !wantNonEmpty {
		return Offer{}, rules.Violation(rules.CodeInvalidTrade, "an offer must give and want at least one resource")
	}

	offer := Offer{ID: b.NextID, From: from, Give: compact(give), Want: compact(want)}
	b.NextID++
	b.Offers = append(b.Offers, offer)
	return offer, nil
}

// Find returns the index of offer id in the book.
func (b *Book) Find(id int) (int, error) {
	for i, o := range b.Offers {
		if o.ID == id {
			return i, nil
		}
	}
	return -1, rules.Missing(rules.CodeUnknownOffer, "no pending offer %d", id)
}

// Accept lets player to take offer id. Both sides must hold their half of
// the exchange; the hands are swapped and the offer removed atomically.
func (b *Book) Accept(id int, to int, fromHand, toHand resources.Hand) (Offer, error) {
	idx, err := b.Find(id)
	if err != nil {
		return Offer{}, err
	}
	offer := b.Offers[idx]
	if offer.From == to {
		return Offer{}, rules.Violation(rules.CodeOwnOffer, "player %d cannot accept their own offer %d", to, id)
	}
	if r, short := fromHand.Missing(offer.Give); short {
		return Offer{}, rules.Violation(rules.CodeInsufficientResources, "player %d lacks %s for offer %d", offer.From, r, id)
	}
	if r, short := toHand.Missing(offer.Want); short {
		return Offer{}, rules.Violation(rules.CodeInsufficientResources, "player %d lacks %s for offer %d", to, r, id)
	}

	fromHand.Sub(offer.Give)
	toHand.Add(offer.Give)
	toHand.Sub(offer.Want)
	fromHand.Add(offer.Want)

	b.Remove(idx)
	return offer, nil
}

// Remove drops the offer at index i.
func (b *Book) Remove(i int) {
	b.Offers = append(b.Offers[:i], b.Offers[i+1:]...)
}

// Clone returns a deep copy of the book.
func (b Book) Clone() Book {
	c := Book{NextID: b.NextID}
	if b.Offers == nil {
		return c
	}
	c.Offers = make([]Offer, len(b.Offers))
	for i, o := range b.Offers {
		c.Offers[i] = Offer{ID: o.ID, From: o.From, Give: o.Give.Clone(), Want: o.Want.Clone()}
	}
	return c
}

func compact(h resources.Hand) resources.Hand {
	c := resources.Hand{}
	for r, n := range h {
		if n > 0 {
			c[r] = n
		}
	}
	return c
}
