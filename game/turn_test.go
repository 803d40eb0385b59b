package game

import (
	"testing"

	"colonisation/resources"
	"colonisation/rules"

	"github.com/stretchr/testify/require"
)

// hexNumbered returns the first hex carrying number n.
func hexNumbered(g *Game, n int) int {
	for i, h := range g.state.Board.Hexes {
		if h.Number == n {
			return i
		}
	}
	panic("no hex with that number")
}

func TestRollProduction(t *testing.T) {
	t.Run("settlements get one, cities two", func(t *testing.T) {
		g, e := newTestGame(t, 2)
		inTurn(g, 0)
		g.state.Turn.Rolled = false

		hex := hexNumbered(g, 8)
		corners := g.graph.Cells[hex].Corners
		put(g, 0, corners[0], Settlement)
		put(g, 1, corners[3], City)

		want := map[int]resources.Hand{}
		for _, v := range []int{corners[0], corners[3]} {
			vx := g.state.Board.Vertices[v]
			for _, h := range g.graph.HexesOf(v) {
				hx := g.state.Board.Hexes[h]
				if hx.Number == 8 && !hx.Robber {
					if want[vx.Owner] == nil {
						want[vx.Owner] = resources.Hand{}
					}
					want[vx.Owner][hx.Terrain.Resource()] += vx.Building.Yield()
				}
			}
		}

		e.roll(4, 4)
		res, err := g.RollDice(0)
		require.NoError(t, err)
		require.Equal(t, 8, res.Dice.Sum())
		require.Equal(t, want, res.Production)

		r := g.state.Board.Hexes[hex].Terrain.Resource()
		require.GreaterOrEqual(t, g.state.Players[0].Resources[r], 1)
		require.GreaterOrEqual(t, g.state.Players[1].Resources[r], 2)
		for seat, p := range g.state.Players {
			require.Equal(t, want[seat].Total(), p.Resources.Total())
		}
	})

	t.Run("the robbed hex produces nothing", func(t *testing.T) {
		g, e := newTestGame(t, 2)
		inTurn(g, 0)
		g.state.Turn.Rolled = false

		hex := hexNumbered(g, 6)
		g.state.Board.Hexes[g.state.Robber].Robber = false
		g.state.Board.Hexes[hex].Robber = true
		g.state.Robber = hex
		v := g.graph.Cells[hex].Corners[0]
		put(g, 0, v, City)

		want := 0
		for _, h := range g.graph.HexesOf(v) {
			if h != hex && g.state.Board.Hexes[h].Number == 6 {
				want += City.Yield()
			}
		}

		e.roll(3, 3)
		_, err := g.RollDice(0)
		require.NoError(t, err)
		require.Equal(t, want, g.state.Players[0].Resources.Total())
	})

	t.Run("only once per turn", func(t *testing.T) {
		g, e := newTestGame(t, 2)
		inTurn(g, 0)
		g.state.Turn.Rolled = false

		e.roll(1, 2)
		_, err := g.RollDice(0)
		require.NoError(t, err)
		_, err = g.RollDice(0)
		require.ErrorIs(t, err, rules.ErrAlreadyRolled)
		require.Equal(t, Dice{A: 1, B: 2}, g.state.LastRoll)
	})
}

func TestRollSeven(t *testing.T) {
	g, e := newTestGame(t, 3)
	inTurn(g, 0)
	g.state.Turn.Rolled = false
	give(g, 0, resources.Hand{resources.Wood: 5, resources.Ore: 4})
	give(g, 1, resources.Hand{resources.Sheep: 6})
	give(g, 2, resources.Hand{resources.Wheat: 7})

	e.roll(3, 4)
	res, err := g.RollDice(0)
	require.NoError(t, err)

	require.True(t, res.RobberPending)
	require.True(t, g.state.Turn.RobberPending)
	require.Nil(t, res.Production)
	require.Len(t, res.Discards, 2)
	require.Equal(t, 4, res.Discards[0].Total())
	require.Equal(t, resources.Hand{resources.Wheat: 3}, res.Discards[2])
	require.Equal(t, 5, g.state.Players[0].Resources.Total())
	require.Equal(t, 6, g.state.Players[1].Resources.Total(), "Six cards are safe")
	require.Equal(t, 4, g.state.Players[2].Resources.Total())
}

func TestRobber(t *testing.T) {
	setup := func(t *testing.T) (*Game, *scripted, int) {
		g, e := newTestGame(t, 2)
		inTurn(g, 0)
		g.state.Turn.RobberPending = true
		target := 0
		if g.state.Robber == 0 {
			target = 1
		}
		return g, e, target
	}

	t.Run("pending robber blocks other actions", func(t *testing.T) {
		g, _, _ := setup(t)
		give(g, 0, resources.Hand{resources.Wood: 4})

		_, err := g.BuildRoad(0, 0, g.graph.Neighbors(0)[0])
		require.ErrorIs(t, err, rules.ErrRobberPending)
		_, err = g.TradeWithBank(0, resources.Wood, 4, resources.Ore, 1)
		require.ErrorIs(t, err, rules.ErrRobberPending)
		_, err = g.EndTurn(0)
		require.ErrorIs(t, err, rules.ErrRobberPending)
	})

	t.Run("must move to another known hex", func(t *testing.T) {
		g, _, _ := setup(t)
		_, err := g.MoveRobber(0, g.state.Robber, -1)
		require.ErrorIs(t, err, rules.ErrRobberMustMove)
		_, err = g.MoveRobber(0, 19, -1)
		require.ErrorIs(t, err, rules.ErrUnknownHex)
		require.True(t, rules.IsNotFound(err))
	})

	t.Run("steal target must have a building on the hex", func(t *testing.T) {
		g, _, target := setup(t)
		_, err := g.MoveRobber(0, target, 1)
		require.ErrorIs(t, err, rules.ErrInvalidStealTarget)
		_, err = g.MoveRobber(0, target, 0)
		require.ErrorIs(t, err, rules.ErrInvalidStealTarget)
		require.True(t, g.state.Turn.RobberPending)
	})

	t.Run("steals one card from the victim", func(t *testing.T) {
		g, e, target := setup(t)
		put(g, 1, g.graph.Cells[target].Corners[0], Settlement)
		give(g, 1, resources.Hand{resources.Brick: 1, resources.Ore: 2})
		old := g.state.Robber

		e.queue(0) // first unit in canonical order: brick
		res, err := g.MoveRobber(0, target, 1)
		require.NoError(t, err)

		require.Equal(t, resources.Brick, res.Stolen)
		require.Equal(t, 1, g.state.Players[0].Resources[resources.Brick])
		require.Equal(t, 0, g.state.Players[1].Resources[resources.Brick])
		require.Equal(t, target, g.state.Robber)
		require.True(t, g.state.Board.Hexes[target].Robber)
		require.False(t, g.state.Board.Hexes[old].Robber)
		require.False(t, g.state.Turn.RobberPending)

		_, err = g.MoveRobber(0, old, -1)
		require.ErrorIs(t, err, rules.ErrNoRobberMove)
	})

	t.Run("nothing to steal from an empty hand", func(t *testing.T) {
		g, _, target := setup(t)
		put(g, 1, g.graph.Cells[target].Corners[0], Settlement)
		res, err := g.MoveRobber(0, target, 1)
		require.NoError(t, err)
		require.Equal(t, resources.Resource(""), res.Stolen)
	})
}

func TestEndTurn(t *testing.T) {
	t.Run("requires a roll", func(t *testing.T) {
		g, _ := newTestGame(t, 3)
		inTurn(g, 2)
		g.state.Turn.Rolled = false
		_, err := g.EndTurn(2)
		require.ErrorIs(t, err, rules.ErrNotRolled)
	})

	t.Run("wraps around and resets the turn", func(t *testing.T) {
		g, _ := newTestGame(t, 3)
		inTurn(g, 2)
		g.state.Turn.FreeRoads = 1
		give(g, 2, resources.Hand{resources.Wood: 1})
		_, err := g.CreateTradeOffer(2, resources.Hand{resources.Wood: 1}, resources.Hand{resources.Ore: 1})
		require.NoError(t, err)

		res, err := g.EndTurn(2)
		require.NoError(t, err)
		require.Equal(t, TurnResult{Phase: PhaseTurn, Current: 0}, res)
		require.Equal(t, &TurnPhase{}, g.state.Turn)
		require.Empty(t, g.state.Trades.Offers)
	})

	t.Run("out of turn", func(t *testing.T) {
		g, _ := newTestGame(t, 3)
		inTurn(g, 0)
		_, err := g.EndTurn(1)
		require.ErrorIs(t, err, rules.ErrNotYourTurn)
	})
}
