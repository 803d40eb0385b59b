// Package resources defines the five resource kinds, resource hands and the
// fixed building costs.
package resources

import (
	"fmt"
	"sort"
)

// Resource is one of the five tradeable resource kinds.
type Resource string

const (
	Wood  Resource = "wood"
	Brick Resource = "brick"
	Sheep Resource = "sheep"
	Wheat Resource = "wheat"
	Ore   Resource = "ore"
)

// All lists the resource kinds in their canonical order.
var All = []Resource{Wood, Brick, Sheep, Wheat, Ore}

// Valid reports whether r is a known resource kind.
func (r Resource) Valid() bool {
	switch r {
	case Wood, Brick, Sheep, Wheat, Ore:
		return true
	}
	return false
}

// Parse converts a string to a Resource.
func Parse(s string) (Resource, error) {
	r := Resource(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown resource %q", s)
	}
	return r, nil
}

// Hand is a multiset of resources. A nil Hand is empty.
type Hand map[Resource]int

// NewHand returns a hand with every resource kind present at zero.
func NewHand() Hand {
	h := make(Hand, len(All))
	for _, r := range All {
		h[r] = 0
	}
	return h
}

// Total returns the number of resource cards in the hand.
func (h Hand) Total() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}

// Covers reports whether h holds at least the amounts in cost.
func (h Hand) Covers(cost Hand) bool {
	for r, n := range cost {
		if h[r] < n {
			return false
		}
	}
	return true
}

// Missing returns the first resource (canonical order) that h lacks for cost.
func (h Hand) Missing(cost Hand) (Resource, bool) {
	for _, r := range All {
		if h[r] < cost[r] {
			return r, true
		}
	}
	return "", false
}

// Add credits every amount of o to h.
func (h Hand) Add(o Hand) {
	for r, n := range o {
		h[r] += n
	}
}

// Sub debits every amount of o from h. Callers check Covers first.
func (h Hand) Sub(o Hand) {
	for r, n := range o {
		h[r] -= n
		if h[r] < 0 {
			panic(fmt.Sprintf("resources: %s went negative (%d)", r, h[r]))
		}
	}
}

// Clone returns an independent copy of h.
func (h Hand) Clone() Hand {
	c := make(Hand, len(h))
	for r, n := range h {
		c[r] = n
	}
	return c
}

// Validate checks that every key is a known resource and no amount is
// negative. It reports whether the hand holds anything at all.
func (h Hand) Validate() (nonEmpty bool, err error) {
	for r, n := range h {
		if !r.Valid() {
			return false, fmt.Errorf("unknown resource %q", r)
		}
		if n < 0 {
			return false, fmt.Errorf("negative amount %d of %s", n, r)
		}
		if n > 0 {
			nonEmpty = true
		}
	}
	return nonEmpty, nil
}

// Units expands the hand to one entry per card in canonical resource order.
func (h Hand) Units() []Resource {
	units := make([]Resource, 0, h.Total())
	for _, r := range All {
		for i := 0; i < h[r]; i++ {
			units = append(units, r)
		}
	}
	return units
}

// String renders the non-zero amounts in canonical order.
func (h Hand) String() string {
	keys := make([]string, 0, len(h))
	for r, n := range h {
		if n != 0 {
			keys = append(keys, fmt.Sprintf("%s:%d", r, n))
		}
	}
	sort.Strings(keys)
	return fmt.Sprint(keys)
}

// Building and purchase costs.
var (
	SettlementCost = Hand{Wood: 1, Brick: 1, Sheep: 1, Wheat: 1}
	CityCost       = Hand{Ore: 3, Wheat: 2}
	RoadCost       = Hand{Wood: 1, Brick: 1}
	DevCardCost    = Hand{Sheep: 1, Wheat: 1, Ore: 1}
)
