package engine

import (
	"context"
	"net/http/httptest"
	"testing"

	"colonisation/communication/server"
	"colonisation/experiments/metrics"
	"colonisation/game"
	"colonisation/gamemaster"
	"colonisation/player"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func bots(n int, temperature float64) ([]game.Seat, []player.Policy) {
	seats := make([]game.Seat, n)
	policies := make([]player.Policy, n)
	for i := range seats {
		seats[i] = game.Seat{ID: 100 + i, Bot: true}
		policies[i] = player.NewHeuristic(temperature, uint64(i+1))
	}
	return seats, policies
}

func TestLocalEngine(t *testing.T) {
	t.Run("plays to a winner or the turn cap", func(t *testing.T) {
		master := gamemaster.NewMaster(gamemaster.NewMemoryStore(), gamemaster.WithSeed(3))
		seats, policies := bots(3, 0)
		e := LocalEngine(seats, policies, master, WithCollector(metrics.NewCollector()), WithMaxTurns(200))

		winner, gameMetric, actionMetrics, err := e.Run(context.Background())
		require.NoError(t, err)
		require.Equal(t, winner, gameMetric.Winner)
		require.Equal(t, 3, gameMetric.Players)
		require.Len(t, actionMetrics, gameMetric.Actions)
		require.LessOrEqual(t, gameMetric.Turns, 200)
		// 6 placements and 6 setup turn ends at least
		require.GreaterOrEqual(t, gameMetric.Actions, 18)

		s, err := master.State(context.Background(), gameMetric.GameID)
		require.NoError(t, err)
		if winner == game.NoOwner {
			require.Equal(t, 200, gameMetric.Turns)
			require.NotEqual(t, game.PhaseFinished, s.Phase)
		} else {
			require.Equal(t, game.PhaseFinished, s.Phase)
			require.Equal(t, winner, s.Result.Winner)
			require.GreaterOrEqual(t, s.Result.Points, game.WinningPoints)
		}
	})

	t.Run("stops when the context is done", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		seats, policies := bots(2, 0)
		e := LocalEngine(seats, policies, gamemaster.NewMaster(gamemaster.NewMemoryStore()))

		winner, _, _, err := e.Run(ctx)
		require.ErrorIs(t, err, context.Canceled)
		require.Equal(t, game.NoOwner, winner)
	})

	t.Run("rejects mismatched bots", func(t *testing.T) {
		seats, policies := bots(2, 0)
		master := gamemaster.NewMaster(gamemaster.NewMemoryStore())
		require.Panics(t, func() { LocalEngine(seats, policies[:1], master) })
		require.Panics(t, func() { LocalEngine(seats[:1], policies[:1], master) })
	})
}

func TestRemoteEngine(t *testing.T) {
	gin.SetMode(gin.TestMode)
	master := gamemaster.NewMaster(gamemaster.NewMemoryStore(), gamemaster.WithSeed(5))
	srv := httptest.NewServer(server.NewRouter(master, server.Config{}))
	defer srv.Close()

	seats, policies := bots(2, 0.5)
	e := RemoteEngine(srv.URL, seats, policies, WithCollector(metrics.NewCollector()), WithMaxTurns(10))

	_, gameMetric, _, err := e.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 10, gameMetric.Turns)

	s, err := master.State(context.Background(), gameMetric.GameID)
	require.NoError(t, err)
	require.Equal(t, game.PhaseTurn, s.Phase)
}
