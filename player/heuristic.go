package player

import (
	"colonisation/devcards"
	"colonisation/game"
	"colonisation/gamemaster"
	"colonisation/geometry"
	"colonisation/resources"
	"colonisation/trading"

	"golang.org/x/exp/rand"
)

// Heuristic is a greedy policy. Setup takes the most productive free vertex;
// a turn rolls, moves the robber against the leader, then prefers a city,
// a settlement, a road and a card, trades surplus with the bank and ends.
type Heuristic struct {
	graph *geometry.Graph
	// Temperature above zero samples the candidate order instead of sorting
	// it, so simulated games differ.
	Temperature float64
	rand        *rand.Rand
}

func NewHeuristic(temperature float64, seed uint64) *Heuristic {
	return &Heuristic{
		graph:       geometry.Standard(),
		Temperature: temperature,
		rand:        rand.New(rand.NewSource(seed)),
	}
}

func (h *Heuristic) Next(s game.State, self int) []gamemaster.Action {
	if s.Phase == game.PhaseFinished || s.CurrentPlayer() != self {
		return nil
	}
	var cs []candidate
	switch s.Phase {
	case game.PhaseSetup:
		cs = h.setup(s, self)
	case game.PhaseTurn:
		seat, _ := s.Seat(self)
		cs = h.turn(s, s.Players[seat])
	}
	return order(cs, h.Temperature, h.rand)
}

func (h *Heuristic) setup(s game.State, self int) []candidate {
	switch {
	case s.Setup.Settlement == -1:
		var cs []candidate
		for v := range s.Board.Vertices {
			if h.freeSite(s, v) {
				cs = append(cs, candidate{gamemaster.Action{Type: gamemaster.BuildSettlement, Vertex: v}, h.pips(s, v)})
			}
		}
		return cs
	case s.Setup.Road == -1:
		v := s.Setup.Settlement
		var cs []candidate
		for _, n := range h.graph.Neighbors(v) {
			if h.freeEdge(s, v, n) {
				cs = append(cs, candidate{gamemaster.Action{Type: gamemaster.BuildRoad, Vertex: v, Vertex2: n}, h.reach(s, n)})
			}
		}
		return cs
	}
	return []candidate{{action: gamemaster.Action{Type: gamemaster.EndTurn}}}
}

func (h *Heuristic) turn(s game.State, p game.Player) []candidate {
	if s.Turn.RobberPending {
		return h.robber(s, p.ID)
	}
	if !s.Turn.Rolled {
		cs := []candidate{{gamemaster.Action{Type: gamemaster.RollDice}, 1}}
		if p.DevCards[devcards.Knight] > 0 && h.hurts(s, s.Robber, p.ID) {
			cs = append(cs, candidate{gamemaster.Action{Type: gamemaster.PlayCard, Card: devcards.Knight}, 2})
		}
		return cs
	}

	hand := p.Resources
	var cs []candidate
	sites := 0
	network := h.network(s, p.ID)
	for _, v := range network {
		vx := s.Board.Vertices[v]
		switch {
		case vx.Owner == p.ID && vx.Building == game.Settlement && hand.Covers(resources.CityCost):
			cs = append(cs, candidate{gamemaster.Action{Type: gamemaster.BuildCity, Vertex: v}, 50 + h.pips(s, v)})
		case h.freeSite(s, v):
			sites++
			if hand.Covers(resources.SettlementCost) {
				cs = append(cs, candidate{gamemaster.Action{Type: gamemaster.BuildSettlement, Vertex: v}, 40 + h.pips(s, v)})
			}
		}
	}

	if sites == 0 && (s.Turn.FreeRoads > 0 || hand.Covers(resources.RoadCost)) {
		for _, v := range network {
			for _, n := range h.graph.Neighbors(v) {
				if h.freeEdge(s, v, n) {
					cs = append(cs, candidate{gamemaster.Action{Type: gamemaster.BuildRoad, Vertex: v, Vertex2: n}, 10 + h.reach(s, n)/10})
				}
			}
		}
	}

	if hand.Covers(resources.DevCardCost) && len(s.Deck) > 0 {
		cs = append(cs, candidate{gamemaster.Action{Type: gamemaster.BuyCard}, 20})
	}
	cs = append(cs, h.cards(s, p, sites)...)
	cs = append(cs, h.trades(s, p)...)
	return append(cs, candidate{action: gamemaster.Action{Type: gamemaster.EndTurn}})
}

func (h *Heuristic) cards(s game.State, p game.Player, sites int) []candidate {
	var cs []candidate
	if p.DevCards[devcards.Knight] > 0 && h.hurts(s, s.Robber, p.ID) {
		cs = append(cs, candidate{gamemaster.Action{Type: gamemaster.PlayCard, Card: devcards.Knight}, 35})
	}
	if p.DevCards[devcards.RoadBuilding] > 0 && sites == 0 {
		cs = append(cs, candidate{gamemaster.Action{Type: gamemaster.PlayCard, Card: devcards.RoadBuilding}, 30})
	}
	if p.DevCards[devcards.YearOfPlenty] > 0 {
		a, b := scarcest(p.Resources)
		cs = append(cs, candidate{gamemaster.Action{Type: gamemaster.PlayCard, Card: devcards.YearOfPlenty, Resources: []resources.Resource{a, b}}, 25})
	}
	if p.DevCards[devcards.Monopoly] > 0 {
		held := resources.NewHand()
		for _, o := range s.Players {
			if o.ID != p.ID {
				held.Add(o.Resources)
			}
		}
		best := resources.All[0]
		for _, r := range resources.All {
			if held[r] > held[best] {
				best = r
			}
		}
		if held[best] >= 3 {
			cs = append(cs, candidate{gamemaster.Action{Type: gamemaster.PlayCard, Card: devcards.Monopoly, Resource: best}, 25})
		}
	}
	return cs
}

// trades swaps a surplus resource for the scarcest one, through the best
// port the player has access to.
func (h *Heuristic) trades(s game.State, p game.Player) []candidate {
	want, _ := scarcest(p.Resources)
	var cs []candidate
	for _, give := range resources.All {
		if give == want {
			continue
		}
		ratio, port := trading.BankRatio, -1
		for _, v := range s.Board.Vertices {
			if v.Port == nil || v.Owner != p.ID || v.Building == game.NoBuilding {
				continue
			}
			if v.Port.Kind == trading.ResourcePort && v.Port.Resource != give {
				continue
			}
			if v.Port.Ratio < ratio {
				ratio, port = v.Port.Ratio, v.ID
			}
		}
		if p.Resources[give] <= ratio {
			continue
		}
		a := gamemaster.Action{Type: gamemaster.TradeBank, Give: give, GiveAmount: ratio, Take: want, TakeAmount: 1}
		if port != -1 {
			a.Type, a.Vertex = gamemaster.TradePort, port
		}
		cs = append(cs, candidate{a, 5 + float64(trading.BankRatio-ratio)})
	}
	return cs
}

// robber scores each hex by the production it takes from opponents,
// weighting the leader double, and never targets the player's own hexes.
func (h *Heuristic) robber(s game.State, self int) []candidate {
	leader, points := game.NoOwner, -1
	for _, o := range s.Players {
		if o.ID != self && o.VictoryPoints > points {
			leader, points = o.ID, o.VictoryPoints
		}
	}

	var cs []candidate
	for i, hex := range s.Board.Hexes {
		if i == s.Robber {
			continue
		}
		score, victim, cards := 0.0, game.NoOwner, -1
		for _, v := range h.graph.Cells[i].Corners {
			vx := s.Board.Vertices[v]
			if vx.Building == game.NoBuilding {
				continue
			}
			if vx.Owner == self {
				score -= 100
				continue
			}
			weight := 1.0
			if vx.Owner == leader {
				weight = 2
			}
			score += weight * pip(hex.Number) * float64(vx.Building.Yield())
			seat, _ := s.Seat(vx.Owner)
			if n := s.Players[seat].Resources.Total(); n > cards || vx.Owner == leader && n > 0 {
				victim, cards = vx.Owner, n
			}
		}
		cs = append(cs, candidate{gamemaster.Action{Type: gamemaster.MoveRobber, Hex: i, Victim: victim}, score})
	}
	return cs
}

func (h *Heuristic) hurts(s game.State, hex, self int) bool {
	for _, v := range h.graph.Cells[hex].Corners {
		if s.Board.Vertices[v].Owner == self {
			return true
		}
	}
	return false
}

// network returns the vertices touched by the player's roads and buildings,
// in id order.
func (h *Heuristic) network(s game.State, self int) []int {
	var network []int
	for _, v := range h.graph.Vertices {
		if s.Board.Vertices[v.ID].Owner == self {
			network = append(network, v.ID)
			continue
		}
		for _, e := range v.Edges {
			if s.Board.Edges[e].Owner == self {
				network = append(network, v.ID)
				break
			}
		}
	}
	return network
}

func (h *Heuristic) freeSite(s game.State, v int) bool {
	if s.Board.Vertices[v].Building != game.NoBuilding {
		return false
	}
	for _, n := range h.graph.Neighbors(v) {
		if s.Board.Vertices[n].Building != game.NoBuilding {
			return false
		}
	}
	return true
}

func (h *Heuristic) freeEdge(s game.State, a, b int) bool {
	id, ok := h.graph.EdgeBetween(a, b)
	return ok && s.Board.Edges[id].Owner == game.NoOwner
}

// pips sums the dice probability weight of the hexes around v.
func (h *Heuristic) pips(s game.State, v int) float64 {
	total := 0.0
	for _, i := range h.graph.HexesOf(v) {
		total += pip(s.Board.Hexes[i].Number)
	}
	return total
}

// reach is the best pips value among v and its free neighbours.
func (h *Heuristic) reach(s game.State, v int) float64 {
	best := 0.0
	if h.freeSite(s, v) {
		best = h.pips(s, v)
	}
	for _, n := range h.graph.Neighbors(v) {
		if h.freeSite(s, n) {
			best = max(best, h.pips(s, n))
		}
	}
	return best
}

func pip(number int) float64 {
	if number == 0 {
		return 0
	}
	return float64(6 - abs(7-number))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// scarcest returns the two resources the hand holds least of.
func scarcest(hand resources.Hand) (resources.Resource, resources.Resource) {
	first, second := resources.All[0], resources.All[1]
	if hand[second] < hand[first] {
		first, second = second, first
	}
	for _, r := range resources.All[2:] {
		switch {
		case hand[r] < hand[first]:
			first, second = r, first
		case hand[r] < hand[second]:
			second = r
		}
	}
	return first, second
}
