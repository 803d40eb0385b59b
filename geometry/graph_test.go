package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandardLayout(t *testing.T) {
	layout := StandardLayout()

	require.Len(t, layout, 19)
	require.Equal(t, Axial{}, layout[CentreIndex], "Centre hex should be last")

	seen := map[Axial]bool{}
	for _, a := range layout {
		require.False(t, seen[a], "Hex %v appears twice", a)
		seen[a] = true
		require.LessOrEqual(t, Distance(Axial{}, a), StandardRadius)
	}
}

func TestBuildStandardGraph(t *testing.T) {
	g := Standard()

	t.Run("board counts", func(t *testing.T) {
		require.Len(t, g.Cells, 19)
		require.Len(t, g.Vertices, 54)
		require.Len(t, g.Edges, 72)
		require.Len(t, g.Coastal(), 18)
	})

	t.Run("every hex has six distinct corners", func(t *testing.T) {
		for _, cell := range g.Cells {
			ids := map[int]bool{}
			for _, id := range cell.Corners {
				ids[id] = true
			}
			require.Len(t, ids, 6, "Hex %d should have 6 distinct vertex ids", cell.Index)
		}
	})

	t.Run("every vertex has two or three neighbours and up to three hexes", func(t *testing.T) {
		for _, v := range g.Vertices {
			require.Contains(t, []int{2, 3}, len(v.Neighbors), "Vertex %d", v.ID)
			require.GreaterOrEqual(t, len(v.Hexes), 1)
			require.LessOrEqual(t, len(v.Hexes), 3)
		}
	})

	t.Run("shared corners resolve to the same vertex", func(t *testing.T) {
		for _, cell := range g.Cells {
			for i, corner := range Corners(cell.Coord) {
				id, ok := g.VertexAt(corner)
				require.True(t, ok)
				require.Equal(t, cell.Corners[i], id, "Dedup key should round-trip")
			}
		}
		// Centre hex corner 0 is shared by the centre and its east and south-east neighbours
		centre := g.Cells[CentreIndex]
		require.Len(t, g.Vertices[centre.Corners[0]].Hexes, 3)
	})

	t.Run("ids match arena indices", func(t *testing.T) {
		for i, v := range g.Vertices {
			require.Equal(t, i, v.ID)
		}
		for i, e := range g.Edges {
			require.Equal(t, i, e.ID)
			require.Less(t, e.A, e.B)
		}
	})

	t.Run("adjacency is symmetric and backed by an edge", func(t *testing.T) {
		for _, v := range g.Vertices {
			for _, n := range v.Neighbors {
				require.True(t, g.Adjacent(v.ID, n))
				require.Contains(t, g.Neighbors(n), v.ID)
			}
		}
	})

	t.Run("vertices of a hex are consecutive-corner adjacent only", func(t *testing.T) {
		cell := g.Cells[0]
		require.True(t, g.Adjacent(cell.Corners[0], cell.Corners[1]))
		require.False(t, g.Adjacent(cell.Corners[0], cell.Corners[2]))
		require.False(t, g.Adjacent(cell.Corners[0], cell.Corners[3]))
	})

	t.Run("coastal vertices touch a single hex", func(t *testing.T) {
		for _, id := range g.Coastal() {
			require.True(t, g.IsCoastal(id))
			require.Len(t, g.HexesOf(id), 1)
		}
	})
}

func TestCornerPixelMatchesHexCentre(t *testing.T) {
	a := Axial{Q: 1, R: -1}
	cx, cy := HexToPixel(a, DefaultHexSize)
	for _, corner := range Corners(a) {
		x, y := corner.Pixel(DefaultHexSize)
		dx, dy := x-cx, y-cy
		require.InDelta(t, DefaultHexSize*DefaultHexSize, dx*dx+dy*dy, 1e-6,
			"Corners should lie one hex size away from the centre")
	}
}

func TestNeighborsPanicsOnUnknownVertex(t *testing.T) {
	g := Standard()
	require.Panics(t, func() { g.Neighbors(len(g.Vertices)) })
}
