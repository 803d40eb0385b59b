package game

import (
	"colonisation/resources"
	"colonisation/rules"
)

// RollDice rolls two dice once per turn. A seven makes every player holding
// seven or more cards discard half of them, chosen at random, and leaves a
// robber move pending. Any other sum pays out production.
func (g *Game) RollDice(player int) (RollResult, error) {
	if _, _, err := g.turnActor(player, false); err != nil {
		return RollResult{}, err
	}
	if g.state.Turn.Rolled {
		return RollResult{}, rules.Violation(rules.CodeAlreadyRolled, "player %d already rolled this turn", player)
	}

	dice := Dice{A: rollDie(g.entropy), B: rollDie(g.entropy)}
	g.state.LastRoll = dice
	g.state.Turn.Rolled = true

	if dice.Sum() == 7 {
		g.state.Turn.RobberPending = true
		return RollResult{Dice: dice, Discards: g.discardHalf(), RobberPending: true}, nil
	}
	return RollResult{Dice: dice, Production: g.produce(dice.Sum())}, nil
}

// produce pays every building around the non-robbed hexes numbered n.
func (g *Game) produce(n int) map[int]resources.Hand {
	paid := map[int]resources.Hand{}
	for i, hex := range g.state.Board.Hexes {
		if hex.Number != n || i == g.state.Robber {
			continue
		}
		r := hex.Terrain.Resource()
		if r == "" {
			continue
		}
		for _, v := range g.graph.Cells[i].Corners {
			vx := g.state.Board.Vertices[v]
			if vx.Building == NoBuilding {
				continue
			}
			seat, _, err := g.player(vx.Owner)
			if err != nil {
				panic(err)
			}
			g.state.Players[seat].Resources[r] += vx.Building.Yield()
			if paid[vx.Owner] == nil {
				paid[vx.Owner] = resources.Hand{}
			}
			paid[vx.Owner][r] += vx.Building.Yield()
		}
	}
	return paid
}

// discardHalf removes floor(total/2) random cards from every player holding
// seven or more.
func (g *Game) discardHalf() map[int]resources.Hand {
	discards := map[int]resources.Hand{}
	for i := range g.state.Players {
		p := &g.state.Players[i]
		total := p.Resources.Total()
		if total < 7 {
			continue
		}
		lost := resources.Hand{}
		for n := total / 2; n > 0; n-- {
			r := g.randomCard(p.Resources)
			p.Resources[r]--
			lost[r]++
		}
		discards[p.ID] = lost
	}
	return discards
}

// randomCard picks one card uniformly over every unit in hand.
func (g *Game) randomCard(hand resources.Hand) resources.Resource {
	units := hand.Units()
	return units[g.entropy.Intn(len(units))]
}

// MoveRobber resolves a pending robber move: the robber goes to hex and, if
// victim is not -1, one random card is stolen from the victim.
func (g *Game) MoveRobber(player, hex, victim int) (RobberResult, error) {
	_, p, err := g.actor(player, PhaseTurn)
	if err != nil {
		return RobberResult{}, err
	}
	if !g.state.Turn.RobberPending {
		return RobberResult{}, rules.Violation(rules.CodeNoRobberMove, "no robber move is pending")
	}
	if hex < 0 || hex >= len(g.state.Board.Hexes) {
		return RobberResult{}, rules.Missing(rules.CodeUnknownHex, "hex %d does not exist", hex)
	}
	if hex == g.state.Robber {
		return RobberResult{}, rules.Violation(rules.CodeRobberMustMove, "the robber is already on hex %d", hex)
	}

	var target *Player
	if victim != NoOwner {
		if victim == player {
			return RobberResult{}, rules.Violation(rules.CodeInvalidStealTarget, "cannot steal from yourself")
		}
		seat, ok := g.state.Seat(victim)
		if !ok || !g.ownsBuildingOn(victim, hex) {
			return RobberResult{}, rules.Violation(rules.CodeInvalidStealTarget, "player %d has no building on hex %d", victim, hex)
		}
		target = &g.state.Players[seat]
	}

	g.state.Board.Hexes[g.state.Robber].Robber = false
	g.state.Board.Hexes[hex].Robber = true
	g.state.Robber = hex
	g.state.Turn.RobberPending = false

	result := RobberResult{Hex: hex, Victim: victim}
	if target != nil && target.Resources.Total() > 0 {
		r := g.randomCard(target.Resources)
		target.Resources[r]--
		p.Resources[r]++
		result.Stolen = r
	}
	return result, nil
}

func (g *Game) ownsBuildingOn(player, hex int) bool {
	for _, v := range g.graph.Cells[hex].Corners {
		vx := g.state.Board.Vertices[v]
		if vx.Owner == player && vx.Building != NoBuilding {
			return true
		}
	}
	return false
}

// EndTurn advances the setup cursor during setup, or passes the turn to the
// next player. Pending offers and unused free roads expire with the turn.
func (g *Game) EndTurn(player int) (TurnResult, error) {
	if g.state.Phase == PhaseSetup {
		return g.advanceSetup(player)
	}
	if _, _, err := g.turnActor(player, true); err != nil {
		return TurnResult{}, err
	}

	g.state.Trades.Offers = nil
	g.state.Current = (g.state.Current + 1) % len(g.state.Players)
	g.state.Turn = &TurnPhase{}
	return TurnResult{Phase: PhaseTurn, Current: g.state.CurrentPlayer()}, nil
}
