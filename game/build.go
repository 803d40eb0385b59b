package game

import (
	"colonisation/resources"
	"colonisation/rules"
)

// Piece limits per player.
const (
	MaxSettlements = 5
	MaxCities      = 4
	MaxRoads       = 15
)

// BuildSettlement places a settlement on vertex v. During setup it is free
// and needs no road; afterwards it costs resources and must touch one of the
// player's roads.
func (g *Game) BuildSettlement(player, v int) (BuildResult, error) {
	if g.state.Phase == PhaseSetup {
		return g.setupSettlement(player, v)
	}
	seat, p, err := g.turnActor(player, true)
	if err != nil {
		return BuildResult{}, err
	}
	vx, err := g.vertex(v)
	if err != nil {
		return BuildResult{}, err
	}
	if err := g.checkSite(v); err != nil {
		return BuildResult{}, err
	}
	if !g.touchesRoad(v, player) {
		return BuildResult{}, rules.Violation(rules.CodeNotConnected, "vertex %d is not on one of player %d's roads", v, player)
	}
	if g.buildings(player, Settlement) >= MaxSettlements {
		return BuildResult{}, rules.Violation(rules.CodeNoPiecesLeft, "player %d has no settlements left", player)
	}
	if r, short := p.Resources.Missing(resources.SettlementCost); short {
		return BuildResult{}, rules.Violation(rules.CodeInsufficientResources, "cannot build a settlement: missing %s", r)
	}

	p.Resources.Sub(resources.SettlementCost)
	vx.Owner = player
	vx.Building = Settlement
	g.score(seat)
	return BuildResult{Building: Settlement, Vertex: v, Edge: -1}, nil
}

// BuildCity upgrades one of the player's settlements in place.
func (g *Game) BuildCity(player, v int) (BuildResult, error) {
	seat, p, err := g.turnActor(player, true)
	if err != nil {
		return BuildResult{}, err
	}
	vx, err := g.vertex(v)
	if err != nil {
		return BuildResult{}, err
	}
	if vx.Owner != player || vx.Building != Settlement {
		return BuildResult{}, rules.Violation(rules.CodeNotYourSettlement, "vertex %d does not hold a settlement of player %d", v, player)
	}
	if g.buildings(player, City) >= MaxCities {
		return BuildResult{}, rules.Violation(rules.CodeNoPiecesLeft, "player %d has no cities left", player)
	}
	if r, short := p.Resources.Missing(resources.CityCost); short {
		return BuildResult{}, rules.Violation(rules.CodeInsufficientResources, "cannot build a city: missing %s", r)
	}

	p.Resources.Sub(resources.CityCost)
	vx.Building = City
	g.score(seat)
	return BuildResult{Building: City, Vertex: v, Edge: -1}, nil
}

// BuildRoad places a road on the edge joining a and b. Free roads from a
// road-building card skip the cost and the connectivity check.
func (g *Game) BuildRoad(player, a, b int) (BuildResult, error) {
	if g.state.Phase == PhaseSetup {
		return g.setupRoad(player, a, b)
	}
	seat, p, err := g.turnActor(player, true)
	if err != nil {
		return BuildResult{}, err
	}
	ed, err := g.freeEdge(a, b)
	if err != nil {
		return BuildResult{}, err
	}
	if g.roads(player) >= MaxRoads {
		return BuildResult{}, rules.Violation(rules.CodeNoPiecesLeft, "player %d has no roads left", player)
	}

	free := g.state.Turn.FreeRoads > 0
	if !free {
		if !g.roadConnects(a, b, player) {
			return BuildResult{}, rules.Violation(rules.CodeNotConnected, "road %d-%d does not connect to player %d's network", a, b, player)
		}
		if r, short := p.Resources.Missing(resources.RoadCost); short {
			return BuildResult{}, rules.Violation(rules.CodeInsufficientResources, "cannot build a road: missing %s", r)
		}
		p.Resources.Sub(resources.RoadCost)
	} else {
		g.state.Turn.FreeRoads--
	}

	ed.Owner = player
	g.score(seat)
	return BuildResult{Vertex: -1, Edge: ed.ID, Free: free}, nil
}

// checkSite enforces that v is empty and that no neighbouring vertex holds a
// building of any player.
func (g *Game) checkSite(v int) error {
	vx := g.state.Board.Vertices[v]
	if vx.Owner != NoOwner || vx.Building != NoBuilding {
		return rules.Violation(rules.CodeVertexOccupied, "vertex %d is taken by player %d", v, vx.Owner)
	}
	for _, n := range g.graph.Neighbors(v) {
		if g.state.Board.Vertices[n].Building != NoBuilding {
			return rules.Violation(rules.CodeDistanceRule, "vertex %d is next to a building on vertex %d", v, n)
		}
	}
	return nil
}

// freeEdge resolves the unowned edge joining a and b.
func (g *Game) freeEdge(a, b int) (*Edge, error) {
	if _, err := g.vertex(a); err != nil {
		return nil, err
	}
	if _, err := g.vertex(b); err != nil {
		return nil, err
	}
	id, ok := g.graph.EdgeBetween(a, b)
	if !ok {
		return nil, rules.Violation(rules.CodeNotAdjacent, "vertices %d and %d are not adjacent", a, b)
	}
	ed := &g.state.Board.Edges[id]
	if ed.Owner != NoOwner {
		return nil, rules.Violation(rules.CodeEdgeOccupied, "edge %d-%d already has a road of player %d", a, b, ed.Owner)
	}
	return ed, nil
}

func (g *Game) touchesRoad(v, player int) bool {
	for _, id := range g.graph.Vertices[v].Edges {
		if g.state.Board.Edges[id].Owner == player {
			return true
		}
	}
	return false
}

// roadConnects searches outward from both ends of a-b along the player's
// roads until it reaches a vertex the player owns.
func (g *Game) roadConnects(a, b, player int) bool {
	visited := make(map[int]bool)
	queue := []int{a, b}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		if g.state.Board.Vertices[current].Owner == player {
			return true
		}
		for _, id := range g.graph.Vertices[current].Edges {
			if g.state.Board.Edges[id].Owner != player {
				continue
			}
			next := g.graph.Edges[id].Other(current)
			if !visited[next] {
				queue = append(queue, next)
			}
		}
	}
	return false
}

func (g *Game) buildings(player int, kind Building) int {
	n := 0
	for _, v := range g.state.Board.Vertices {
		if v.Owner == player && v.Building == kind {
			n++
		}
	}
	return n
}

func (g *Game) roads(player int) int {
	n := 0
	for _, ed := range g.state.Board.Edges {
		if ed.Owner == player {
			n++
		}
	}
	return n
}
