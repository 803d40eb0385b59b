package geometry

import "math"

// Axial is a hex position in axial coordinates. The third cube coordinate is
// derived as s = -q - r.
type Axial struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// S returns the implicit third cube coordinate.
func (a Axial) S() int {
	return -a.Q - a.R
}

// Directions are the six neighbour offsets in axial coordinates.
var Directions = [6]Axial{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Add returns the sum of two axial positions.
func (a Axial) Add(b Axial) Axial {
	return Axial{Q: a.Q + b.Q, R: a.R + b.R}
}

// Scale multiplies both components by k.
func (a Axial) Scale(k int) Axial {
	return Axial{Q: a.Q * k, R: a.R * k}
}

// Distance returns the hex distance between two positions.
func Distance(a, b Axial) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	return max(dq, dr, ds)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Ring returns the hexes at exactly radius steps from centre, walking
// counter-clockwise from the south-west corner of the ring.
func Ring(centre Axial, radius int) []Axial {
	if radius == 0 {
		return []Axial{centre}
	}
	ring := make([]Axial, 0, 6*radius)
	hex := centre.Add(Directions[4].Scale(radius))
	for side := 0; side < 6; side++ {
		for step := 0; step < radius; step++ {
			ring = append(ring, hex)
			hex = hex.Add(Directions[side])
		}
	}
	return ring
}

// StandardRadius is the radius of the fixed 19-hex board.
const StandardRadius = 2

// StandardLayout returns the 19 hex positions of the standard board: the
// outer ring first, then the middle ring, then the centre as the last entry.
func StandardLayout() []Axial {
	layout := make([]Axial, 0, 19)
	for radius := StandardRadius; radius >= 0; radius-- {
		layout = append(layout, Ring(Axial{}, radius)...)
	}
	return layout
}

// CentreIndex is the layout index of the centre hex in StandardLayout.
const CentreIndex = 18

// HexToPixel converts the centre of a pointy-top hex to pixel space.
func HexToPixel(a Axial, size float64) (x, y float64) {
	x = size * (math.Sqrt(3)*float64(a.Q) + math.Sqrt(3)/2*float64(a.R))
	y = size * 1.5 * float64(a.R)
	return x, y
}
