package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start("g1", 3)
	c.AddAction(1, "roll_dice", time.Millisecond)
	c.AddAction(1, "end_turn", time.Millisecond)
	c.AddTurn()

	game, actions := c.Complete(1)
	require.Equal(t, "g1", game.GameID)
	require.Equal(t, 3, game.Players)
	require.Equal(t, 1, game.Winner)
	require.Equal(t, 1, game.Turns)
	require.Equal(t, 2, game.Actions)
	require.False(t, game.EndTime.Before(game.StartTime))
	require.Equal(t, []ActionMetric{
		{Step: 1, Player: 1, Action: "roll_dice", Duration: time.Millisecond},
		{Step: 2, Player: 1, Action: "end_turn", Duration: time.Millisecond},
	}, actions)

	dummy := NewDummyCollector()
	dummy.AddAction(1, "roll_dice", 0)
	game, actions = dummy.Complete(-1)
	require.Equal(t, -1, game.Winner)
	require.Empty(t, actions)
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "simulation")
	require.NoError(t, err)

	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		ID: 1,
		GameMetric: GameMetric{
			GameID: "g1", Players: 2, Winner: 0, Turns: 40, Actions: 300,
			StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second,
		},
	}}))
	require.NoError(t, w.WriteActionRecords([]ActionRecord{{Game: 1, ActionMetric: ActionMetric{Step: 1, Player: 0, Action: "roll_dice"}}}))

	rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Equal(t, []string{"id", "game_id", "players", "winner", "turns", "actions", "start_time", "end_time", "duration"}, rows[0])
	require.Equal(t, []string{"1", "g1", "2", "0", "40", "300", "2024-05-01T12:00:00Z", "2024-05-01T12:00:01Z", "1s"}, rows[1])

	rows = readCSV(t, filepath.Join(w.Dir(), "action_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, []string{"1", "1", "0", "roll_dice", "0s"}, rows[1])
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
