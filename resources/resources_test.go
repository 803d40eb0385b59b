package resources

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHand(t *testing.T) {
	t.Run("covering a cost", func(t *testing.T) {
		h := Hand{Wood: 1, Brick: 1, Sheep: 1, Wheat: 1}
		require.True(t, h.Covers(SettlementCost))
		require.False(t, h.Covers(CityCost))

		missing, ok := h.Missing(CityCost)
		require.True(t, ok)
		require.Equal(t, Wheat, missing, "Wheat comes before ore in canonical order")
	})

	t.Run("add and sub", func(t *testing.T) {
		h := NewHand()
		h.Add(Hand{Ore: 3, Wheat: 2})
		h.Sub(CityCost)
		require.Equal(t, 0, h.Total())
	})

	t.Run("sub below zero panics", func(t *testing.T) {
		h := Hand{Wood: 1}
		require.Panics(t, func() { h.Sub(RoadCost) })
	})

	t.Run("clone is independent", func(t *testing.T) {
		h := Hand{Sheep: 2}
		c := h.Clone()
		c[Sheep] = 5
		require.Equal(t, 2, h[Sheep])
	})

	t.Run("units follow canonical order", func(t *testing.T) {
		h := Hand{Ore: 1, Wood: 2}
		require.Equal(t, []Resource{Wood, Wood, Ore}, h.Units())
	})

	t.Run("validate rejects unknown and negative amounts", func(t *testing.T) {
		_, err := Hand{"gold": 1}.Validate()
		require.Error(t, err)
		_, err = Hand{Wood: -1}.Validate()
		require.Error(t, err)
		nonEmpty, err := Hand{Wood: 0}.Validate()
		require.NoError(t, err)
		require.False(t, nonEmpty)
	})
}

func TestParse(t *testing.T) {
	r, err := Parse("ore")
	require.NoError(t, err)
	require.Equal(t, Ore, r)

	_, err = Parse("desert")
	require.Error(t, err)
}
