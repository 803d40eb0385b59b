package game

import (
	"testing"

	"colonisation/resources"

	"github.com/stretchr/testify/require"
)

// scripted replays queued Intn values before falling back to a seeded source.
type scripted struct {
	ints []int
	base Entropy
}

func newScripted(seed uint64) *scripted {
	return &scripted{base: NewEntropy(seed)}
}

func (s *scripted) queue(values ...int) {
	s.ints = append(s.ints, values...)
}

// roll queues two dice showing a and b.
func (s *scripted) roll(a, b int) {
	s.queue(a-1, b-1)
}

func (s *scripted) Intn(n int) int {
	if len(s.ints) > 0 {
		v := s.ints[0]
		s.ints = s.ints[1:]
		return v % n
	}
	return s.base.Intn(n)
}

func (s *scripted) Shuffle(n int, swap func(i, j int)) {
	s.base.Shuffle(n, swap)
}

func newTestGame(t *testing.T, players int) (*Game, *scripted) {
	t.Helper()
	seats := make([]Seat, players)
	for i := range seats {
		seats[i] = Seat{ID: i}
	}
	e := newScripted(1)
	g, err := New(seats, e)
	require.NoError(t, err)
	return g, e
}

// inTurn skips setup and gives the turn to seat with the dice already rolled.
func inTurn(g *Game, seat int) {
	g.state.Phase = PhaseTurn
	g.state.Setup = nil
	g.state.Turn = &TurnPhase{Rolled: true}
	g.state.Current = seat
}

func give(g *Game, player int, h resources.Hand) {
	seat, _ := g.state.Seat(player)
	g.state.Players[seat].Resources.Add(h)
}

func put(g *Game, player, v int, b Building) {
	g.state.Board.Vertices[v].Owner = player
	g.state.Board.Vertices[v].Building = b
}

func paveRoad(g *Game, player, a, b int) {
	id, ok := g.graph.EdgeBetween(a, b)
	if !ok {
		panic("not adjacent")
	}
	g.state.Board.Edges[id].Owner = player
}

// interiorVertex returns a vertex with three neighbours.
func interiorVertex(g *Game) int {
	for _, v := range g.graph.Vertices {
		if len(v.Neighbors) == 3 {
			return v.ID
		}
	}
	panic("no interior vertex")
}

// simplePath finds n+1 distinct vertices joined by n edges, starting at start.
func simplePath(g *Game, start, n int) []int {
	var path []int
	seen := map[int]bool{}
	var dfs func(v int) bool
	dfs = func(v int) bool {
		path = append(path, v)
		seen[v] = true
		if len(path) == n+1 {
			return true
		}
		for _, next := range g.graph.Neighbors(v) {
			if !seen[next] && dfs(next) {
				return true
			}
		}
		path = path[:len(path)-1]
		seen[v] = false
		return false
	}
	if !dfs(start) {
		panic("no path")
	}
	return path
}

func pavePath(g *Game, player int, path []int) {
	for i := 0; i+1 < len(path); i++ {
		paveRoad(g, player, path[i], path[i+1])
	}
}

// freeSite returns the first vertex where a settlement could stand.
func freeSite(g *Game) int {
	for _, v := range g.graph.Vertices {
		if g.checkSite(v.ID) == nil {
			return v.ID
		}
	}
	panic("board is full")
}

// setupStep plays one full setup step for the current player and returns it.
func setupStep(t *testing.T, g *Game) int {
	t.Helper()
	player := g.state.CurrentPlayer()
	v := freeSite(g)
	_, err := g.BuildSettlement(player, v)
	require.NoError(t, err)
	_, err = g.BuildRoad(player, v, g.graph.Neighbors(v)[0])
	require.NoError(t, err)
	_, err = g.EndTurn(player)
	require.NoError(t, err)
	return player
}
