package game

import "colonisation/devcards"

const (
	// MinLongestRoad is the shortest road that earns the longest-road bonus.
	MinLongestRoad = 5
	AwardPoints    = 2
)

// score refreshes both awards and every player's points, then ends the game
// if the acting seat has reached WinningPoints.
func (g *Game) score(actor int) {
	g.updateLongestRoad()
	g.updateLargestArmy()
	for i := range g.state.Players {
		g.state.Players[i].VictoryPoints = g.victoryPoints(i)
	}

	p := g.state.Players[actor]
	if g.state.Phase != PhaseFinished && p.VictoryPoints >= WinningPoints {
		g.state.Phase = PhaseFinished
		g.state.Setup = nil
		g.state.Turn = nil
		g.state.Result = &Result{Winner: p.ID, Points: p.VictoryPoints}
	}
}

func (g *Game) victoryPoints(seat int) int {
	p := g.state.Players[seat]
	points := 0
	for _, v := range g.state.Board.Vertices {
		if v.Owner == p.ID {
			points += v.Building.Points()
		}
	}
	if g.state.LongestRoad.Player == p.ID {
		points += AwardPoints
	}
	if g.state.LargestArmy.Player == p.ID {
		points += AwardPoints
	}
	points += p.DevCards[devcards.VictoryPoint]
	return points
}

// LongestRoad returns the longest edge-distinct trail in player's roads.
// Vertices may be revisited and other players' buildings do not cut a road.
func (g *Game) LongestRoad(player int) int {
	adj := map[int][]int{}
	for _, ed := range g.state.Board.Edges {
		if ed.Owner == player {
			adj[ed.A] = append(adj[ed.A], ed.ID)
			adj[ed.B] = append(adj[ed.B], ed.ID)
		}
	}

	used := map[int]bool{}
	var walk func(v int) int
	walk = func(v int) int {
		best := 0
		for _, id := range adj[v] {
			if used[id] {
				continue
			}
			used[id] = true
			if n := 1 + walk(g.graph.Edges[id].Other(v)); n > best {
				best = n
			}
			used[id] = false
		}
		return best
	}

	longest := 0
	for v := range adj {
		if n := walk(v); n > longest {
			longest = n
		}
	}
	return longest
}

// updateLongestRoad hands the bonus to the longest road of at least
// MinLongestRoad. The holder keeps it on a tie; otherwise the first tied
// player in seat order takes it.
func (g *Game) updateLongestRoad() {
	best := 0
	var tied []int
	for _, p := range g.state.Players {
		n := g.LongestRoad(p.ID)
		switch {
		case n > best:
			best = n
			tied = []int{p.ID}
		case n == best:
			tied = append(tied, p.ID)
		}
	}
	if best < MinLongestRoad {
		return
	}
	holder := tied[0]
	for _, id := range tied {
		if id == g.state.LongestRoad.Player {
			holder = id
		}
	}
	g.state.LongestRoad = Award{Player: holder, Size: best}
}

// updateLargestArmy gives the bonus to a unique maximum of at least
// LargestArmyThreshold knights. A tie never moves it.
func (g *Game) updateLargestArmy() {
	best, holder, unique := 0, NoOwner, false
	for _, p := range g.state.Players {
		switch {
		case p.KnightsPlayed > best:
			best, holder, unique = p.KnightsPlayed, p.ID, true
		case p.KnightsPlayed == best:
			unique = false
		}
	}
	if best < devcards.LargestArmyThreshold || !unique {
		if seat, ok := g.state.Seat(g.state.LargestArmy.Player); ok {
			g.state.LargestArmy.Size = g.state.Players[seat].KnightsPlayed
		}
		return
	}
	g.state.LargestArmy = Award{Player: holder, Size: best}
}

// CheckWin reports whether player has reached WinningPoints.
func (g *Game) CheckWin(player int) (bool, error) {
	_, p, err := g.player(player)
	if err != nil {
		return false, err
	}
	return p.VictoryPoints >= WinningPoints, nil
}

// Winner returns the winning player once the game is finished.
func (g *Game) Winner() (int, bool) {
	if g.state.Result == nil {
		return NoOwner, false
	}
	return g.state.Result.Winner, true
}
