package game

import (
	"colonisation/devcards"
	"colonisation/resources"
	"colonisation/trading"
)

type Phase string

const (
	PhaseSetup    Phase = "initial_setup"
	PhaseTurn     Phase = "turn"
	PhaseFinished Phase = "finished"
)

// SetupPhase is the snake-draft cursor. It only exists during initial_setup.
type SetupPhase struct {
	Round      int         `json:"round"`
	Settlement int         `json:"settlement"` // vertex placed this step, -1 if none yet
	Road       int         `json:"road"`       // edge placed this step, -1 if none yet
	Log        []Placement `json:"log"`
}

// Placement is one entry of the setup log.
type Placement struct {
	Player   int      `json:"player"`
	Round    int      `json:"round"`
	Building Building `json:"building,omitempty"`
	Vertex   int      `json:"vertex"`
	Edge     int      `json:"edge"`
}

// TurnPhase holds what the current player has done this turn.
type TurnPhase struct {
	Rolled        bool `json:"rolled"`
	RobberPending bool `json:"robber_pending"`
	FreeRoads     int  `json:"free_roads"`
}

// Result is the outcome of a finished game.
type Result struct {
	Winner int `json:"winner"`
	Points int `json:"points"`
}

type Player struct {
	ID            int            `json:"id"`
	Position      int            `json:"position"`
	Bot           bool           `json:"bot"`
	Resources     resources.Hand `json:"resources"`
	DevCards      devcards.Hand  `json:"dev_cards"`
	KnightsPlayed int            `json:"knights_played"`
	VictoryPoints int            `json:"victory_points"`
}

// Dice is a roll of two dice. The zero value means no roll yet.
type Dice struct {
	A int `json:"a"`
	B int `json:"b"`
}

func (d Dice) Sum() int {
	return d.A + d.B
}

// Award is the holder of longest road or largest army. Player is -1 while
// nobody holds it; Size is the road length or the knight count.
type Award struct {
	Player int `json:"player"`
	Size   int `json:"size"`
}

// State is the fully serializable aggregate of one game. Exactly one of
// Setup, Turn and Result is set, matching Phase.
type State struct {
	Phase       Phase         `json:"phase"`
	Setup       *SetupPhase   `json:"setup,omitempty"`
	Turn        *TurnPhase    `json:"turn,omitempty"`
	Result      *Result       `json:"result,omitempty"`
	Current     int           `json:"current"`
	Players     []Player      `json:"players"`
	Board       Board         `json:"board"`
	LastRoll    Dice          `json:"last_roll"`
	LongestRoad Award         `json:"longest_road"`
	LargestArmy Award         `json:"largest_army"`
	Robber      int           `json:"robber"`
	Deck        devcards.Deck `json:"deck"`
	Trades      trading.Book  `json:"trades"`
}

// CurrentPlayer returns the id of the player whose turn it is.
func (s State) CurrentPlayer() int {
	return s.Players[s.Current].ID
}

// Seat returns the turn-order index of player id.
func (s State) Seat(id int) (int, bool) {
	for i, p := range s.Players {
		if p.ID == id {
			return i, true
		}
	}
	return -1, false
}

// Clone returns a deep copy sharing no mutable data with s.
func (s State) Clone() State {
	c := s
	if s.Setup != nil {
		setup := *s.Setup
		setup.Log = append([]Placement(nil), s.Setup.Log...)
		c.Setup = &setup
	}
	if s.Turn != nil {
		turn := *s.Turn
		c.Turn = &turn
	}
	if s.Result != nil {
		result := *s.Result
		c.Result = &result
	}
	if s.Players != nil {
		c.Players = make([]Player, len(s.Players))
		for i, p := range s.Players {
			p.Resources = p.Resources.Clone()
			p.DevCards = p.DevCards.Clone()
			c.Players[i] = p
		}
	}
	c.Board = s.Board.Clone()
	if s.Deck != nil {
		c.Deck = append(devcards.Deck{}, s.Deck...)
	}
	c.Trades = s.Trades.Clone()
	return c
}
