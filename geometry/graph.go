package geometry

import (
	"fmt"
	"math"
)

// DefaultHexSize is the hex radius in pixels used for vertex positions.
const DefaultHexSize = 50.0

// Corner is a hex corner on the doubled integer lattice. For a pointy-top hex
// at (q, r) the centre sits at (2q+r, 3r), and corners shared by neighbouring
// hexes land on the same lattice point, so merge keys are exact.
type Corner struct {
	X int
	Y int
}

// cornerOffsets are the six corner offsets from a hex centre, starting at
// 30 degrees and turning by 60 degrees each step.
var cornerOffsets = [6]Corner{
	{X: 1, Y: 1},
	{X: 0, Y: 2},
	{X: -1, Y: 1},
	{X: -1, Y: -1},
	{X: 0, Y: -2},
	{X: 1, Y: -1},
}

// Corners returns the six lattice corners of a hex in ring order.
func Corners(a Axial) [6]Corner {
	cx, cy := 2*a.Q+a.R, 3*a.R
	var corners [6]Corner
	for i, off := range cornerOffsets {
		corners[i] = Corner{X: cx + off.X, Y: cy + off.Y}
	}
	return corners
}

// Pixel converts a lattice corner to pixel space.
func (c Corner) Pixel(size float64) (x, y float64) {
	return float64(c.X) * size * math.Sqrt(3) / 2, float64(c.Y) * size / 2
}

// Cell is a hex of the board graph with the ids of its six corners.
type Cell struct {
	Index   int
	Coord   Axial
	X, Y    float64
	Corners [6]int // vertex ids in ring order
}

// Vertex is a node of the board graph. ID equals its index in Graph.Vertices.
type Vertex struct {
	ID        int
	Corner    Corner
	X, Y      float64
	Hexes     []int // indices of the hexes sharing this corner
	Neighbors []int // adjacent vertex ids
	Edges     []int // incident edge ids
}

// Edge joins two adjacent vertices. ID equals its index in Graph.Edges and A < B.
type Edge struct {
	ID int
	A  int
	B  int
}

// Other returns the endpoint of e that is not v.
func (e Edge) Other(v int) int {
	if e.A == v {
		return e.B
	}
	return e.A
}

type pair struct{ a, b int }

func orderedPair(a, b int) pair {
	if a > b {
		a, b = b, a
	}
	return pair{a, b}
}

// Graph is the deduplicated vertex/edge arena of a hex layout.
type Graph struct {
	Cells    []Cell
	Vertices []Vertex
	Edges    []Edge

	byCorner map[Corner]int
	byPair   map[pair]int
}

// Build turns a hex layout into a vertex/edge graph. Vertex and edge ids are
// assigned in discovery order: hexes in layout order, corners in ring order.
func Build(layout []Axial, size float64) *Graph {
	g := &Graph{
		Cells:    make([]Cell, 0, len(layout)),
		byCorner: make(map[Corner]int),
		byPair:   make(map[pair]int),
	}

	for idx, coord := range layout {
		cx, cy := HexToPixel(coord, size)
		cell := Cell{Index: idx, Coord: coord, X: cx, Y: cy}
		for i, corner := range Corners(coord) {
			id, ok := g.byCorner[corner]
			if !ok {
				id = len(g.Vertices)
				x, y := corner.Pixel(size)
				g.Vertices = append(g.Vertices, Vertex{ID: id, Corner: corner, X: x, Y: y})
				g.byCorner[corner] = id
			}
			g.Vertices[id].Hexes = append(g.Vertices[id].Hexes, idx)
			cell.Corners[i] = id
		}
		g.Cells = append(g.Cells, cell)
	}

	// Consecutive corners of a hex are joined by an edge
	for _, cell := range g.Cells {
		for i := range cell.Corners {
			a, b := cell.Corners[i], cell.Corners[(i+1)%6]
			key := orderedPair(a, b)
			if _, ok := g.byPair[key]; ok {
				continue
			}
			id := len(g.Edges)
			g.Edges = append(g.Edges, Edge{ID: id, A: key.a, B: key.b})
			g.byPair[key] = id
			g.Vertices[a].Neighbors = append(g.Vertices[a].Neighbors, b)
			g.Vertices[b].Neighbors = append(g.Vertices[b].Neighbors, a)
			g.Vertices[a].Edges = append(g.Vertices[a].Edges, id)
			g.Vertices[b].Edges = append(g.Vertices[b].Edges, id)
		}
	}
	return g
}

// Standard builds the graph of the fixed 19-hex board.
func Standard() *Graph {
	return Build(StandardLayout(), DefaultHexSize)
}

// HasVertex reports whether v is a valid vertex id.
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < len(g.Vertices)
}

// HasEdge reports whether e is a valid edge id.
func (g *Graph) HasEdge(e int) bool {
	return e >= 0 && e < len(g.Edges)
}

// VertexAt looks up the vertex id at a lattice corner.
func (g *Graph) VertexAt(c Corner) (int, bool) {
	id, ok := g.byCorner[c]
	return id, ok
}

// EdgeBetween returns the edge joining a and b, if they are adjacent.
func (g *Graph) EdgeBetween(a, b int) (int, bool) {
	id, ok := g.byPair[orderedPair(a, b)]
	return id, ok
}

// Adjacent reports whether a and b are joined by an edge.
func (g *Graph) Adjacent(a, b int) bool {
	_, ok := g.EdgeBetween(a, b)
	return ok
}

// Neighbors returns the vertex ids adjacent to v.
func (g *Graph) Neighbors(v int) []int {
	g.mustVertex(v)
	return g.Vertices[v].Neighbors
}

// HexesOf returns the indices of the hexes touching v.
func (g *Graph) HexesOf(v int) []int {
	g.mustVertex(v)
	return g.Vertices[v].Hexes
}

// IsCoastal reports whether v lies on the rim of the board (fewer than three
// neighbouring vertices), which makes it eligible for a port.
func (g *Graph) IsCoastal(v int) bool {
	g.mustVertex(v)
	return len(g.Vertices[v].Neighbors) < 3
}

// Coastal returns all rim vertex ids in ascending order.
func (g *Graph) Coastal() []int {
	var ids []int
	for _, v := range g.Vertices {
		if len(v.Neighbors) < 3 {
			ids = append(ids, v.ID)
		}
	}
	return ids
}

func (g *Graph) mustVertex(v int) {
	if !g.HasVertex(v) {
		panic(fmt.Sprintf("geometry: vertex %d not in graph of %d vertices", v, len(g.Vertices)))
	}
}
