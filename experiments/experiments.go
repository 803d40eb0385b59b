package experiments

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"colonisation/communication"
	"colonisation/engine"
	"colonisation/experiments/metrics"
	"colonisation/game"
	"colonisation/meta"
	"colonisation/player"

	"github.com/rs/zerolog/log"
)

// Outcome is the result of a simulation run.
type Outcome struct {
	Games   []metrics.GameRecord
	Actions []metrics.ActionRecord
	// Wins counts finished games per winning player id.
	Wins map[int]int
}

// RunSimulation plays cfg.Games bot games through comm, cfg.Goroutines at a
// time. Game i seats players 1..cfg.Players with policies seeded from seed+i.
func RunSimulation(ctx context.Context, comm communication.Communicator, cfg meta.Simulation, seed uint64) (Outcome, error) {
	task := make(chan int, cfg.Games)
	for i := 1; i <= cfg.Games; i++ {
		task <- i
	}
	close(task)

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		out   = Outcome{Wins: make(map[int]int)}
		first error
	)

	log.Info().Msgf("starting simulation of %d games with %d players...", cfg.Games, cfg.Players)

	for g := 0; g < max(cfg.Goroutines, 1); g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				winner, gameMetric, actionMetrics, err := runGame(ctx, comm, cfg, seed+uint64(i))

				mu.Lock()
				if err != nil {
					if first == nil {
						first = fmt.Errorf("game %d: %w", i, err)
					}
					mu.Unlock()
					continue
				}
				out.Games = append(out.Games, metrics.GameRecord{ID: i, GameMetric: gameMetric})
				for _, am := range actionMetrics {
					out.Actions = append(out.Actions, metrics.ActionRecord{Game: i, ActionMetric: am})
				}
				if winner != game.NoOwner {
					out.Wins[winner]++
				}
				mu.Unlock()

				log.Info().Msgf("completed game %d of %d with winner: %d", i, cfg.Games, winner)
			}
		}()
	}
	wg.Wait()

	if first != nil {
		return Outcome{}, first
	}

	sort.Slice(out.Games, func(a, b int) bool { return out.Games[a].ID < out.Games[b].ID })
	sort.SliceStable(out.Actions, func(a, b int) bool { return out.Actions[a].Game < out.Actions[b].Game })

	log.Info().Msgf("completed simulation of %d games", cfg.Games)
	return out, nil
}

// Store writes the records of a simulation under dir/name/<timestamp>.
func Store(dir, name string, out Outcome) (string, error) {
	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteGameRecords(out.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteActionRecords(out.Actions); err != nil {
		return "", fmt.Errorf("failed to write action records: %w", err)
	}
	log.Info().Msg("stored action records")
	return writer.Dir(), nil
}

// runGame executes a single bot game and returns the winner
func runGame(ctx context.Context, comm communication.Communicator, cfg meta.Simulation, seed uint64) (int, metrics.GameMetric, []metrics.ActionMetric, error) {
	seats := make([]game.Seat, cfg.Players)
	policies := make([]player.Policy, cfg.Players)
	for i := range seats {
		seats[i] = game.Seat{ID: i + 1, Bot: true}
		policies[i] = player.NewHeuristic(cfg.Temperature, seed*uint64(cfg.Players)+uint64(i))
	}

	e := engine.LocalEngine(seats, policies, comm,
		engine.WithCollector(metrics.NewCollector()),
		engine.WithMaxTurns(cfg.MaxTurns),
	)
	return e.Run(ctx)
}
