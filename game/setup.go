package game

import (
	"colonisation/resources"
	"colonisation/rules"
)

func (g *Game) setupSettlement(player, v int) (BuildResult, error) {
	seat, p, err := g.actor(player, PhaseSetup)
	if err != nil {
		return BuildResult{}, err
	}
	setup := g.state.Setup
	if setup.Settlement != -1 {
		return BuildResult{}, rules.Violation(rules.CodeSetupStepDone, "settlement for this setup step already placed on vertex %d", setup.Settlement)
	}
	vx, err := g.vertex(v)
	if err != nil {
		return BuildResult{}, err
	}
	if err := g.checkSite(v); err != nil {
		return BuildResult{}, err
	}

	vx.Owner = player
	vx.Building = Settlement
	setup.Settlement = v
	setup.Log = append(setup.Log, Placement{Player: player, Round: setup.Round, Building: Settlement, Vertex: v, Edge: -1})

	var granted resources.Hand
	if setup.Round == 2 {
		granted = resources.Hand{}
		for _, h := range g.graph.HexesOf(v) {
			if r := g.state.Board.Hexes[h].Terrain.Resource(); r != "" {
				granted[r]++
			}
		}
		p.Resources.Add(granted)
	}

	g.score(seat)
	return BuildResult{Building: Settlement, Vertex: v, Edge: -1, Granted: granted, Free: true}, nil
}

func (g *Game) setupRoad(player, a, b int) (BuildResult, error) {
	seat, _, err := g.actor(player, PhaseSetup)
	if err != nil {
		return BuildResult{}, err
	}
	setup := g.state.Setup
	if setup.Settlement == -1 {
		return BuildResult{}, rules.Violation(rules.CodeSetupIncomplete, "place this step's settlement before its road")
	}
	if setup.Road != -1 {
		return BuildResult{}, rules.Violation(rules.CodeSetupStepDone, "road for this setup step already placed on edge %d", setup.Road)
	}
	ed, err := g.freeEdge(a, b)
	if err != nil {
		return BuildResult{}, err
	}
	if a != setup.Settlement && b != setup.Settlement {
		return BuildResult{}, rules.Violation(rules.CodeNotConnected, "setup road must touch the settlement on vertex %d", setup.Settlement)
	}

	ed.Owner = player
	setup.Road = ed.ID
	setup.Log = append(setup.Log, Placement{Player: player, Round: setup.Round, Vertex: -1, Edge: ed.ID})

	g.score(seat)
	return BuildResult{Vertex: -1, Edge: ed.ID, Free: true}, nil
}

// advanceSetup moves the snake-draft cursor once the current step has both
// its settlement and its road. Round 1 runs forward, round 2 backward, and
// the turn phase starts with seat 0.
func (g *Game) advanceSetup(player int) (TurnResult, error) {
	if _, _, err := g.actor(player, PhaseSetup); err != nil {
		return TurnResult{}, err
	}
	setup := g.state.Setup
	if setup.Settlement == -1 || setup.Road == -1 {
		return TurnResult{}, rules.Violation(rules.CodeSetupIncomplete, "place a settlement and a road before ending the setup step")
	}

	setup.Settlement, setup.Road = -1, -1
	last := len(g.state.Players) - 1
	switch {
	case setup.Round == 1 && g.state.Current < last:
		g.state.Current++
	case setup.Round == 1:
		setup.Round = 2
	case g.state.Current > 0:
		g.state.Current--
	default:
		g.state.Phase = PhaseTurn
		g.state.Setup = nil
		g.state.Turn = &TurnPhase{}
		g.state.Current = 0
		return TurnResult{Phase: PhaseTurn, Current: g.state.CurrentPlayer()}, nil
	}
	return TurnResult{Phase: PhaseSetup, Current: g.state.CurrentPlayer(), Round: setup.Round}, nil
}

// SetupOrder returns the seat order of the snake draft for n players.
func SetupOrder(n int) []int {
	order := make([]int, 0, 2*n)
	for i := 0; i < n; i++ {
		order = append(order, i)
	}
	for i := n - 1; i >= 0; i-- {
		order = append(order, i)
	}
	return order
}
