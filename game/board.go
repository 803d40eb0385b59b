package game

import (
	"fmt"

	"colonisation/geometry"
	"colonisation/resources"
	"colonisation/trading"
)

type Terrain string

const (
	Forest    Terrain = "forest"
	Hills     Terrain = "hills"
	Pasture   Terrain = "pasture"
	Fields    Terrain = "fields"
	Mountains Terrain = "mountains"
	Desert    Terrain = "desert"
)

// Resource returns the resource produced by the terrain, or "" for the desert.
func (t Terrain) Resource() resources.Resource {
	switch t {
	case Forest:
		return resources.Wood
	case Hills:
		return resources.Brick
	case Pasture:
		return resources.Sheep
	case Fields:
		return resources.Wheat
	case Mountains:
		return resources.Ore
	}
	return ""
}

type Building string

const (
	NoBuilding Building = ""
	Settlement Building = "settlement"
	City       Building = "city"
)

// Yield is the number of resource units a building collects per producing hex.
func (b Building) Yield() int {
	switch b {
	case Settlement:
		return 1
	case City:
		return 2
	}
	return 0
}

// Points is the victory-point value of a building.
func (b Building) Points() int {
	return b.Yield()
}

const NoOwner = -1

type Hex struct {
	Index   int            `json:"index"`
	Coord   geometry.Axial `json:"coord"`
	Terrain Terrain        `json:"terrain"`
	Number  int            `json:"number,omitempty"`
	Robber  bool           `json:"robber,omitempty"`
}

type Vertex struct {
	ID       int           `json:"id"`
	X        float64       `json:"x"`
	Y        float64       `json:"y"`
	Owner    int           `json:"owner"`
	Building Building      `json:"building,omitempty"`
	Port     *trading.Port `json:"port,omitempty"`
}

type Edge struct {
	ID    int `json:"id"`
	A     int `json:"a"`
	B     int `json:"b"`
	Owner int `json:"owner"`
}

// Board is the occupancy of the fixed 19-hex map. Slices are indexed by id.
type Board struct {
	Hexes    []Hex    `json:"hexes"`
	Vertices []Vertex `json:"vertices"`
	Edges    []Edge   `json:"edges"`
}

// PortEntry is one row of the port table.
type PortEntry struct {
	Vertex int          `json:"vertex"`
	Port   trading.Port `json:"port"`
}

// Ports derives the port table from the vertices, in vertex order.
func (b Board) Ports() []PortEntry {
	var ports []PortEntry
	for _, v := range b.Vertices {
		if v.Port != nil {
			ports = append(ports, PortEntry{Vertex: v.ID, Port: *v.Port})
		}
	}
	return ports
}

func (b Board) Clone() Board {
	c := Board{
		Hexes:    make([]Hex, len(b.Hexes)),
		Vertices: make([]Vertex, len(b.Vertices)),
		Edges:    make([]Edge, len(b.Edges)),
	}
	copy(c.Hexes, b.Hexes)
	copy(c.Edges, b.Edges)
	for i, v := range b.Vertices {
		if v.Port != nil {
			p := *v.Port
			v.Port = &p
		}
		c.Vertices[i] = v
	}
	return c
}

var terrainCounts = []struct {
	Terrain Terrain
	Count   int
}{
	{Forest, 4},
	{Hills, 3},
	{Pasture, 4},
	{Fields, 4},
	{Mountains, 3},
}

// NumberTokens is the token multiset placed on the producing hexes.
var NumberTokens = []int{2, 3, 3, 4, 4, 5, 5, 6, 6, 8, 8, 9, 9, 10, 10, 11, 11, 12}

// PortCount is the number of coastal vertices that receive a port.
const PortCount = 9

// GenerateBoard lays out terrains, tokens and ports over the standard graph.
// The desert sits at the centre and starts with the robber. It returns the
// board and the robber hex.
func GenerateBoard(g *geometry.Graph, e Entropy) (Board, int) {
	var terrains []Terrain
	for _, tc := range terrainCounts {
		for i := 0; i < tc.Count; i++ {
			terrains = append(terrains, tc.Terrain)
		}
	}
	e.Shuffle(len(terrains), func(i, j int) { terrains[i], terrains[j] = terrains[j], terrains[i] })
	terrains = append(terrains[:geometry.CentreIndex], append([]Terrain{Desert}, terrains[geometry.CentreIndex:]...)...)

	tokens := append([]int(nil), NumberTokens...)
	e.Shuffle(len(tokens), func(i, j int) { tokens[i], tokens[j] = tokens[j], tokens[i] })

	if len(terrains) != len(g.Cells) {
		panic(fmt.Sprintf("game: %d terrains for %d hexes", len(terrains), len(g.Cells)))
	}

	board := Board{Hexes: make([]Hex, len(g.Cells))}
	robber := -1
	next := 0
	for i, cell := range g.Cells {
		hex := Hex{Index: i, Coord: cell.Coord, Terrain: terrains[i]}
		if hex.Terrain == Desert {
			hex.Robber = true
			robber = i
		} else {
			hex.Number = tokens[next]
			next++
		}
		board.Hexes[i] = hex
	}

	board.Vertices = make([]Vertex, len(g.Vertices))
	for i, v := range g.Vertices {
		board.Vertices[i] = Vertex{ID: v.ID, X: v.X, Y: v.Y, Owner: NoOwner}
	}
	board.Edges = make([]Edge, len(g.Edges))
	for i, ed := range g.Edges {
		board.Edges[i] = Edge{ID: ed.ID, A: ed.A, B: ed.B, Owner: NoOwner}
	}

	coastal := g.Coastal()
	e.Shuffle(len(coastal), func(i, j int) { coastal[i], coastal[j] = coastal[j], coastal[i] })
	ports := trading.StandardPorts()
	e.Shuffle(len(ports), func(i, j int) { ports[i], ports[j] = ports[j], ports[i] })
	for i := 0; i < PortCount && i < len(coastal); i++ {
		p := ports[i]
		board.Vertices[coastal[i]].Port = &p
	}

	return board, robber
}
