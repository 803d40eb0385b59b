// Package game is the rules engine: board generation, the setup and turn
// state machine, and scoring. A Game is built once per session and mutated
// in place; it holds no locks, so callers serialise actions per game.
package game

import (
	"fmt"

	"colonisation/devcards"
	"colonisation/geometry"
	"colonisation/resources"
	"colonisation/rules"
	"colonisation/trading"
)

const (
	MinPlayers = 2
	MaxPlayers = 4
	// WinningPoints ends the game as soon as the acting player reaches it.
	WinningPoints = 10
)

// Seat describes a participant at game start. Ids come from the caller and
// must be unique and non-negative; the order of seats is the turn order.
type Seat struct {
	ID  int  `json:"id"`
	Bot bool `json:"bot"`
}

type Game struct {
	state   State
	graph   *geometry.Graph
	entropy Entropy
}

// New generates a board and starts a game in the setup phase.
func New(seats []Seat, e Entropy) (*Game, error) {
	if len(seats) < MinPlayers || len(seats) > MaxPlayers {
		return nil, rules.Violation(rules.CodeInvalidPlayers, "need %d to %d players, got %d", MinPlayers, MaxPlayers, len(seats))
	}
	seen := make(map[int]bool, len(seats))
	players := make([]Player, len(seats))
	for i, s := range seats {
		if s.ID < 0 || seen[s.ID] {
			return nil, rules.Violation(rules.CodeInvalidPlayers, "player id %d is negative or repeated", s.ID)
		}
		seen[s.ID] = true
		players[i] = Player{
			ID:        s.ID,
			Position:  i,
			Bot:       s.Bot,
			Resources: resources.NewHand(),
			DevCards:  devcards.Hand{},
		}
	}

	graph := geometry.Standard()
	board, robber := GenerateBoard(graph, e)
	g := &Game{
		graph:   graph,
		entropy: e,
		state: State{
			Phase:       PhaseSetup,
			Setup:       &SetupPhase{Round: 1, Settlement: -1, Road: -1},
			Current:     0,
			Players:     players,
			Board:       board,
			LongestRoad: Award{Player: NoOwner},
			LargestArmy: Award{Player: NoOwner},
			Robber:      robber,
			Deck:        devcards.NewDeck(e),
		},
	}
	return g, nil
}

// Restore rebuilds a game from persisted state. The geometry is rebuilt from
// the fixed layout and the persisted board must agree with it.
func Restore(s State, e Entropy) (*Game, error) {
	graph := geometry.Standard()
	if err := checkState(s, graph); err != nil {
		return nil, fmt.Errorf("cannot restore game: %w", err)
	}
	return &Game{state: s.Clone(), graph: graph, entropy: e}, nil
}

func checkState(s State, graph *geometry.Graph) error {
	if len(s.Players) < MinPlayers || len(s.Players) > MaxPlayers {
		return fmt.Errorf("%d players", len(s.Players))
	}
	if s.Current < 0 || s.Current >= len(s.Players) {
		return fmt.Errorf("current seat %d out of range", s.Current)
	}
	switch s.Phase {
	case PhaseSetup:
		if s.Setup == nil || s.Turn != nil || s.Result != nil {
			return fmt.Errorf("setup phase needs only a setup cursor")
		}
	case PhaseTurn:
		if s.Turn == nil || s.Setup != nil || s.Result != nil {
			return fmt.Errorf("turn phase needs only turn data")
		}
	case PhaseFinished:
		if s.Result == nil || s.Setup != nil || s.Turn != nil {
			return fmt.Errorf("finished phase needs only a result")
		}
	default:
		return fmt.Errorf("unknown phase %q", s.Phase)
	}

	if len(s.Board.Hexes) != len(graph.Cells) {
		return fmt.Errorf("%d hexes, want %d", len(s.Board.Hexes), len(graph.Cells))
	}
	robbers := 0
	for i, h := range s.Board.Hexes {
		if h.Index != i || h.Coord != graph.Cells[i].Coord {
			return fmt.Errorf("hex %d does not match the layout", i)
		}
		if h.Robber {
			robbers++
			if i != s.Robber {
				return fmt.Errorf("robber flag on hex %d but robber at %d", i, s.Robber)
			}
		}
	}
	if robbers != 1 {
		return fmt.Errorf("%d hexes hold the robber", robbers)
	}
	if len(s.Board.Vertices) != len(graph.Vertices) {
		return fmt.Errorf("%d vertices, want %d", len(s.Board.Vertices), len(graph.Vertices))
	}
	for i, v := range s.Board.Vertices {
		if v.ID != i {
			return fmt.Errorf("vertex at %d has id %d", i, v.ID)
		}
	}
	if len(s.Board.Edges) != len(graph.Edges) {
		return fmt.Errorf("%d edges, want %d", len(s.Board.Edges), len(graph.Edges))
	}
	for i, ed := range s.Board.Edges {
		want := graph.Edges[i]
		if ed.ID != i || ed.A != want.A || ed.B != want.B {
			return fmt.Errorf("edge %d joins %d-%d, want %d-%d", i, ed.A, ed.B, want.A, want.B)
		}
	}
	return nil
}

// State returns a deep copy of the current state.
func (g *Game) State() State {
	return g.state.Clone()
}

// Graph exposes the read-only board geometry.
func (g *Game) Graph() *geometry.Graph {
	return g.graph
}

// player resolves an acting player id to its seat.
func (g *Game) player(id int) (int, *Player, error) {
	seat, ok := g.state.Seat(id)
	if !ok {
		return -1, nil, rules.Missing(rules.CodeUnknownPlayer, "player %d is not in this game", id)
	}
	return seat, &g.state.Players[seat], nil
}

// actor checks that the game is running and that id may act in phase.
func (g *Game) actor(id int, phase Phase) (int, *Player, error) {
	if g.state.Phase == PhaseFinished {
		return -1, nil, rules.Violation(rules.CodeGameFinished, "the game is over")
	}
	seat, p, err := g.player(id)
	if err != nil {
		return -1, nil, err
	}
	if g.state.Phase != phase {
		return -1, nil, rules.Violation(rules.CodeWrongPhase, "cannot do this during %s", g.state.Phase)
	}
	if seat != g.state.Current {
		return -1, nil, rules.Violation(rules.CodeNotYourTurn, "it is player %d's turn", g.state.CurrentPlayer())
	}
	return seat, p, nil
}

// turnActor is actor for the turn phase with the robber and roll gates.
func (g *Game) turnActor(id int, needRoll bool) (int, *Player, error) {
	seat, p, err := g.actor(id, PhaseTurn)
	if err != nil {
		return -1, nil, err
	}
	if g.state.Turn.RobberPending {
		return -1, nil, rules.Violation(rules.CodeRobberPending, "the robber must be moved first")
	}
	if needRoll && !g.state.Turn.Rolled {
		return -1, nil, rules.Violation(rules.CodeNotRolled, "roll the dice first")
	}
	return seat, p, nil
}

func (g *Game) vertex(id int) (*Vertex, error) {
	if !g.graph.HasVertex(id) {
		return nil, rules.Missing(rules.CodeUnknownVertex, "vertex %d does not exist", id)
	}
	return &g.state.Board.Vertices[id], nil
}

func (g *Game) wallets() []resources.Hand {
	wallets := make([]resources.Hand, len(g.state.Players))
	for i := range g.state.Players {
		wallets[i] = g.state.Players[i].Resources
	}
	return wallets
}

// portAt returns the port on vertex v if trader owns a building there.
func (g *Game) portAt(v int, trader int) (trading.Port, error) {
	vx, err := g.vertex(v)
	if err != nil {
		return trading.Port{}, err
	}
	if vx.Port == nil {
		return trading.Port{}, rules.Violation(rules.CodeNoPortAccess, "vertex %d has no port", v)
	}
	if vx.Owner != trader || vx.Building == NoBuilding {
		return trading.Port{}, rules.Violation(rules.CodeNoPortAccess, "player %d has no building on port vertex %d", trader, v)
	}
	return *vx.Port, nil
}
