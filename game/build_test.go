package game

import (
	"testing"

	"colonisation/resources"
	"colonisation/rules"

	"github.com/stretchr/testify/require"
)

func TestBuildSettlementInTurn(t *testing.T) {
	setup := func(t *testing.T) (*Game, []int) {
		g, _ := newTestGame(t, 2)
		inTurn(g, 0)
		path := simplePath(g, interiorVertex(g), 2)
		put(g, 0, path[0], Settlement)
		pavePath(g, 0, path)
		return g, path
	}

	t.Run("pays and places", func(t *testing.T) {
		g, path := setup(t)
		give(g, 0, resources.SettlementCost)

		res, err := g.BuildSettlement(0, path[2])
		require.NoError(t, err)
		require.Equal(t, BuildResult{Building: Settlement, Vertex: path[2], Edge: -1}, res)
		require.Equal(t, 0, g.state.Players[0].Resources.Total())
		require.Equal(t, 2, g.state.Players[0].VictoryPoints)
	})

	t.Run("needs one of the player's roads", func(t *testing.T) {
		g, path := setup(t)
		give(g, 0, resources.SettlementCost)

		far := -1
		for _, v := range g.graph.Vertices {
			if g.checkSite(v.ID) == nil && !g.touchesRoad(v.ID, 0) {
				far = v.ID
				break
			}
		}
		_, err := g.BuildSettlement(0, far)
		require.ErrorIs(t, err, rules.ErrNotConnected)
		_, err = g.BuildSettlement(1, path[2])
		require.ErrorIs(t, err, rules.ErrNotYourTurn)
	})

	t.Run("insufficient resources leave everything unchanged", func(t *testing.T) {
		g, path := setup(t)
		give(g, 0, resources.Hand{resources.Wood: 1, resources.Brick: 1, resources.Sheep: 1})
		before := g.State()

		_, err := g.BuildSettlement(0, path[2])
		require.ErrorIs(t, err, rules.ErrInsufficientResources)
		require.Equal(t, before, g.State())
	})

	t.Run("needs a roll first", func(t *testing.T) {
		g, path := setup(t)
		g.state.Turn.Rolled = false
		give(g, 0, resources.SettlementCost)
		_, err := g.BuildSettlement(0, path[2])
		require.ErrorIs(t, err, rules.ErrNotRolled)
	})

	t.Run("piece limit", func(t *testing.T) {
		g, path := setup(t)
		give(g, 0, resources.SettlementCost)
		placed := 1
		for _, v := range g.graph.Vertices {
			if placed == MaxSettlements {
				break
			}
			if v.ID != path[2] && !g.graph.Adjacent(v.ID, path[2]) && g.checkSite(v.ID) == nil {
				put(g, 0, v.ID, Settlement)
				placed++
			}
		}
		_, err := g.BuildSettlement(0, path[2])
		require.ErrorIs(t, err, rules.ErrNoPiecesLeft)
	})
}

func TestBuildCity(t *testing.T) {
	g, _ := newTestGame(t, 2)
	inTurn(g, 0)
	v := interiorVertex(g)
	put(g, 0, v, Settlement)
	put(g, 1, g.graph.Vertices[v].Neighbors[0], Settlement)

	_, err := g.BuildCity(0, v)
	require.ErrorIs(t, err, rules.ErrInsufficientResources)

	give(g, 0, resources.CityCost)
	_, err = g.BuildCity(0, g.graph.Vertices[v].Neighbors[0])
	require.ErrorIs(t, err, rules.ErrNotYourSettlement)
	_, err = g.BuildCity(0, g.graph.Vertices[v].Neighbors[1])
	require.ErrorIs(t, err, rules.ErrNotYourSettlement)

	res, err := g.BuildCity(0, v)
	require.NoError(t, err)
	require.Equal(t, City, res.Building)
	require.Equal(t, City, g.state.Board.Vertices[v].Building)
	require.Equal(t, 0, g.state.Players[0].Resources.Total())
	require.Equal(t, 2, g.state.Players[0].VictoryPoints)

	give(g, 0, resources.CityCost)
	_, err = g.BuildCity(0, v)
	require.ErrorIs(t, err, rules.ErrNotYourSettlement, "A city cannot be upgraded again")
}

func TestBuildRoad(t *testing.T) {
	setup := func(t *testing.T) (*Game, []int) {
		g, _ := newTestGame(t, 2)
		inTurn(g, 0)
		path := simplePath(g, interiorVertex(g), 4)
		put(g, 0, path[0], Settlement)
		paveRoad(g, 0, path[0], path[1])
		return g, path
	}

	t.Run("extends the network", func(t *testing.T) {
		g, path := setup(t)
		give(g, 0, resources.RoadCost)

		res, err := g.BuildRoad(0, path[1], path[2])
		require.NoError(t, err)
		edge, _ := g.graph.EdgeBetween(path[1], path[2])
		require.Equal(t, edge, res.Edge)
		require.False(t, res.Free)
		require.Equal(t, 0, g.state.Players[0].Resources.Total())
		require.Equal(t, 0, g.state.Board.Edges[edge].Owner)
	})

	t.Run("connectivity runs through the player's roads", func(t *testing.T) {
		g, path := setup(t)
		give(g, 0, resources.Hand{resources.Wood: 2, resources.Brick: 2})

		_, err := g.BuildRoad(0, path[2], path[3])
		require.ErrorIs(t, err, rules.ErrNotConnected)
		_, err = g.BuildRoad(0, path[1], path[2])
		require.NoError(t, err)
		_, err = g.BuildRoad(0, path[2], path[3])
		require.NoError(t, err)
	})

	t.Run("rejections", func(t *testing.T) {
		g, path := setup(t)
		give(g, 0, resources.RoadCost)

		_, err := g.BuildRoad(0, path[0], path[1])
		require.ErrorIs(t, err, rules.ErrEdgeOccupied)
		_, err = g.BuildRoad(0, path[0], path[2])
		require.ErrorIs(t, err, rules.ErrNotAdjacent)
		_, err = g.BuildRoad(0, path[0], path[0])
		require.ErrorIs(t, err, rules.ErrNotAdjacent)
		_, err = g.BuildRoad(0, path[0], -3)
		require.ErrorIs(t, err, rules.ErrUnknownVertex)
		require.True(t, rules.IsNotFound(err))
		require.Equal(t, 2, g.state.Players[0].Resources.Total())
	})

	t.Run("another player's network does not count", func(t *testing.T) {
		g, path := setup(t)
		inTurn(g, 1)
		give(g, 1, resources.RoadCost)
		_, err := g.BuildRoad(1, path[1], path[2])
		require.ErrorIs(t, err, rules.ErrNotConnected)
	})

	t.Run("free roads skip cost and connectivity", func(t *testing.T) {
		g, path := setup(t)
		g.state.Turn.FreeRoads = 2

		res, err := g.BuildRoad(0, path[3], path[4])
		require.NoError(t, err)
		require.True(t, res.Free)
		require.Equal(t, 1, g.state.Turn.FreeRoads)

		_, err = g.BuildRoad(0, path[1], path[2])
		require.NoError(t, err)
		require.Equal(t, 0, g.state.Turn.FreeRoads)

		_, err = g.BuildRoad(0, path[2], path[3])
		require.ErrorIs(t, err, rules.ErrInsufficientResources)
	})
}
