package gamemaster

import (
	"encoding/json"

	"colonisation/devcards"
	"colonisation/game"
	"colonisation/resources"
	"colonisation/rules"
)

type ActionType string

const (
	RollDice        ActionType = "roll_dice"
	BuildSettlement ActionType = "build_settlement"
	BuildCity       ActionType = "build_city"
	BuildRoad       ActionType = "build_road"
	MoveRobber      ActionType = "move_robber"
	TradeBank       ActionType = "trade_bank"
	TradePort       ActionType = "trade_port"
	CreateOffer     ActionType = "create_offer"
	AcceptOffer     ActionType = "accept_offer"
	BuyCard         ActionType = "buy_card"
	PlayCard        ActionType = "play_card"
	EndTurn         ActionType = "end_turn"
)

// Action is the envelope for every state-changing request. Only the fields
// used by Type are read.
type Action struct {
	Type   ActionType `json:"type"`
	Player int        `json:"player"`

	// build_settlement, build_city, trade_port; build_road uses both.
	Vertex  int `json:"vertex,omitempty"`
	Vertex2 int `json:"vertex2,omitempty"`

	Hex int `json:"hex,omitempty"`
	// Victim is the player robbed by move_robber; game.NoOwner, or an
	// absent field, steals nothing.
	Victim int `json:"victim"`

	Give       resources.Resource `json:"give,omitempty"`
	GiveAmount int                `json:"give_amount,omitempty"`
	Take       resources.Resource `json:"take,omitempty"`
	TakeAmount int                `json:"take_amount,omitempty"`

	Offer    int            `json:"offer,omitempty"`
	GiveHand resources.Hand `json:"give_hand,omitempty"`
	WantHand resources.Hand `json:"want_hand,omitempty"`

	Card      devcards.Card        `json:"card,omitempty"`
	Resources []resources.Resource `json:"resources,omitempty"`
	Resource  resources.Resource   `json:"resource,omitempty"`
}

// UnmarshalJSON defaults an absent victim to game.NoOwner, since 0 is a
// valid player id.
func (a *Action) UnmarshalJSON(data []byte) error {
	type plain Action
	p := plain{Victim: game.NoOwner}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*a = Action(p)
	return nil
}

// Result is returned for every accepted action. Winner is -1 while the game
// is running.
type Result struct {
	Action  ActionType `json:"action"`
	Payload any        `json:"payload"`
	State   game.State `json:"state"`
	Winner  int        `json:"winner"`
}

func apply(g *game.Game, a Action) (any, error) {
	switch a.Type {
	case RollDice:
		return g.RollDice(a.Player)
	case BuildSettlement:
		return g.BuildSettlement(a.Player, a.Vertex)
	case BuildCity:
		return g.BuildCity(a.Player, a.Vertex)
	case BuildRoad:
		return g.BuildRoad(a.Player, a.Vertex, a.Vertex2)
	case MoveRobber:
		return g.MoveRobber(a.Player, a.Hex, a.Victim)
	case TradeBank:
		return g.TradeWithBank(a.Player, a.Give, a.GiveAmount, a.Take, a.TakeAmount)
	case TradePort:
		return g.TradeWithPort(a.Player, a.Vertex, a.Give, a.GiveAmount, a.Take, a.TakeAmount)
	case CreateOffer:
		return g.CreateTradeOffer(a.Player, a.GiveHand, a.WantHand)
	case AcceptOffer:
		return g.AcceptTradeOffer(a.Player, a.Offer)
	case BuyCard:
		return g.BuyDevelopmentCard(a.Player)
	case PlayCard:
		return g.PlayDevelopmentCard(a.Player, a.Card, game.CardData{Resources: a.Resources, Resource: a.Resource})
	case EndTurn:
		return g.EndTurn(a.Player)
	}
	return nil, rules.Violation(rules.CodeUnknownAction, "unknown action %q", a.Type)
}
