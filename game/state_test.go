package game

import (
	"encoding/json"
	"testing"

	"colonisation/resources"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, s State) State {
	t.Helper()
	data, err := json.Marshal(s)
	require.NoError(t, err)
	var out State
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestStateSerialization(t *testing.T) {
	t.Run("fresh game", func(t *testing.T) {
		g, _ := newTestGame(t, 4)
		s := g.State()
		if diff := cmp.Diff(s, roundTrip(t, s)); diff != "" {
			t.Fatalf("state changed through JSON (-want +got):\n%s", diff)
		}
	})

	t.Run("mid game", func(t *testing.T) {
		g, e := newTestGame(t, 3)
		for g.state.Phase == PhaseSetup {
			setupStep(t, g)
		}
		e.roll(2, 3)
		_, err := g.RollDice(0)
		require.NoError(t, err)
		give(g, 0, resources.Hand{resources.Wood: 1})
		_, err = g.CreateTradeOffer(0, resources.Hand{resources.Wood: 1}, resources.Hand{resources.Brick: 1})
		require.NoError(t, err)

		s := g.State()
		if diff := cmp.Diff(s, roundTrip(t, s)); diff != "" {
			t.Fatalf("state changed through JSON (-want +got):\n%s", diff)
		}

		restored, err := Restore(roundTrip(t, s), newScripted(2))
		require.NoError(t, err)
		if diff := cmp.Diff(s, restored.State()); diff != "" {
			t.Fatalf("restored state differs (-want +got):\n%s", diff)
		}

		_, err = restored.EndTurn(0)
		require.NoError(t, err)
		require.Equal(t, 1, restored.State().Current)
		require.Equal(t, 0, g.State().Current, "Restored games share nothing")
	})
}

func TestRestoreRejectsBadState(t *testing.T) {
	tests := []struct {
		name   string
		tamper func(s *State)
	}{
		{"edge joins the wrong vertices", func(s *State) { s.Board.Edges[3].B = s.Board.Edges[3].A }},
		{"missing hex", func(s *State) { s.Board.Hexes = s.Board.Hexes[1:] }},
		{"turn data during setup", func(s *State) { s.Turn = &TurnPhase{} }},
		{"unknown phase", func(s *State) { s.Phase = "lobby" }},
		{"two robbers", func(s *State) {
			for i := range s.Board.Hexes {
				if !s.Board.Hexes[i].Robber {
					s.Board.Hexes[i].Robber = true
					return
				}
			}
		}},
		{"one player", func(s *State) { s.Players = s.Players[:1] }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t, 2)
			s := g.State()
			tt.tamper(&s)
			_, err := Restore(s, newScripted(1))
			require.ErrorContains(t, err, "cannot restore game")
		})
	}
}

func TestStateClone(t *testing.T) {
	g, _ := newTestGame(t, 2)
	a := g.State()
	b := a.Clone()

	b.Players[0].Resources[resources.Ore] = 9
	b.Board.Vertices[0].Owner = 1
	b.Setup.Round = 2
	b.Deck = b.Deck[1:]

	require.Zero(t, a.Players[0].Resources[resources.Ore])
	require.Equal(t, NoOwner, a.Board.Vertices[0].Owner)
	require.Equal(t, 1, a.Setup.Round)
	require.Len(t, a.Deck, 25)
	require.Equal(t, a, g.State())
}
