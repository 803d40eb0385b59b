package game

import (
	"colonisation/devcards"
	"colonisation/resources"
	"colonisation/trading"
)

// Per-action success payloads. Maps keyed by player id.

type RollResult struct {
	Dice          Dice                   `json:"dice"`
	Production    map[int]resources.Hand `json:"production,omitempty"`
	Discards      map[int]resources.Hand `json:"discards,omitempty"`
	RobberPending bool                   `json:"robber_pending"`
}

type BuildResult struct {
	Building Building       `json:"building,omitempty"`
	Vertex   int            `json:"vertex"`
	Edge     int            `json:"edge"`
	Granted  resources.Hand `json:"granted,omitempty"`
	Free     bool           `json:"free"`
}

type RobberResult struct {
	Hex    int                `json:"hex"`
	Victim int                `json:"victim"`
	Stolen resources.Resource `json:"stolen,omitempty"`
}

type TradeResult struct {
	Resources resources.Hand `json:"resources"`
}

type OfferResult struct {
	Offer trading.Offer `json:"offer"`
}

type CardResult struct {
	Card          devcards.Card `json:"card"`
	KnightsPlayed int           `json:"knights_played,omitempty"`
	ReachedArmy   bool          `json:"reached_army,omitempty"`
	FreeRoads     int           `json:"free_roads,omitempty"`
	Taken         int           `json:"taken,omitempty"`
}

type TurnResult struct {
	Phase   Phase `json:"phase"`
	Current int   `json:"current"` // player id
	Round   int   `json:"round,omitempty"`
}
