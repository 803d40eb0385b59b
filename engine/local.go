package engine

import (
	"context"
	"fmt"
	"time"

	"colonisation/communication"
	"colonisation/experiments/metrics"
	"colonisation/game"
	"colonisation/gamemaster"
	"colonisation/meta"
	"colonisation/player"
	"colonisation/utils"

	"github.com/rs/zerolog/log"
)

type LocalRunner struct {
	Seats     []game.Seat
	Bots      []*player.Bot
	Comm      communication.Communicator
	Collector metrics.Collector
	MaxTurns  int
	ids       []int
}

var _ Engine = (*LocalRunner)(nil)

type Option func(*LocalRunner)

func WithCollector(c metrics.Collector) Option {
	return func(e *LocalRunner) {
		e.Collector = c
	}
}

func WithMaxTurns(n int) Option {
	return func(e *LocalRunner) {
		e.MaxTurns = n
	}
}

// LocalEngine seats one bot per policy and plays them through comm.
func LocalEngine(seats []game.Seat, policies []player.Policy, comm communication.Communicator, opts ...Option) *LocalRunner {
	if len(seats) != len(policies) {
		panic("number of seats does not match number of policies")
	}
	if len(seats) < game.MinPlayers {
		panic("need at least two players")
	}

	e := &LocalRunner{
		Seats:     seats,
		Comm:      comm,
		Collector: metrics.NewDummyCollector(),
		MaxTurns:  meta.MAX_TURNS,
	}
	for i, seat := range seats {
		e.Bots = append(e.Bots, player.NewBot(seat.ID, policies[i]))
		e.ids = append(e.ids, seat.ID)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run creates the game and steps the bot whose turn it is until the game is
// finished, the turn cap is reached or ctx is done. The winner is
// game.NoOwner when the game did not finish.
func (e *LocalRunner) Run(ctx context.Context) (int, metrics.GameMetric, []metrics.ActionMetric, error) {
	id, err := e.Comm.Create(ctx, e.Seats)
	if err != nil {
		return game.NoOwner, metrics.GameMetric{}, nil, fmt.Errorf("failed to create game: %w", err)
	}
	e.Collector.Start(id, len(e.Seats))

	s, err := e.Comm.State(ctx, id)
	if err != nil {
		return game.NoOwner, metrics.GameMetric{}, nil, err
	}
	log.Info().Str("game", id).Msgf("player %d is starting", s.CurrentPlayer())

	winner := game.NoOwner
	turns, actions := 0, 0
	for winner == game.NoOwner && turns < e.MaxTurns && actions < meta.MAX_ACTIONS {
		if err := ctx.Err(); err != nil {
			return game.NoOwner, metrics.GameMetric{}, nil, err
		}

		i := utils.FindIndex(e.ids, s.CurrentPlayer())
		if i == -1 {
			panic(fmt.Sprintf("no bot for player %d", s.CurrentPlayer()))
		}
		bot := e.Bots[i]

		start := time.Now()
		res, err := bot.Step(ctx, e.Comm, id)
		if err != nil {
			return game.NoOwner, metrics.GameMetric{}, nil, fmt.Errorf("game %s: %w", id, err)
		}
		e.Collector.AddAction(bot.ID, string(res.Action), time.Since(start))
		actions++
		if res.Action == gamemaster.EndTurn {
			e.Collector.AddTurn()
			turns++
		}

		s = res.State
		winner = res.Winner
	}

	if winner, _, err = e.Comm.Winner(ctx, id); err != nil {
		return game.NoOwner, metrics.GameMetric{}, nil, err
	}
	if winner != game.NoOwner {
		log.Info().Str("game", id).Msgf("game ended with winner %d after %d turns", winner, turns)
	} else {
		log.Info().Str("game", id).Msgf("stopped after %d turns (no winner yet)", turns)
	}

	gameMetric, actionMetrics := e.Collector.Complete(winner)
	return winner, gameMetric, actionMetrics, nil
}
