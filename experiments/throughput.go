package experiments

import (
	"context"
	"time"

	"colonisation/communication"
	"colonisation/meta"

	"github.com/rs/zerolog/log"
)

type Throughput struct {
	Goroutines  int
	Games       int
	Actions     int
	Elapsed     time.Duration
	GamesPerSec float64
}

// RunThroughputExperiment plays the same batch of games on comm once per
// goroutine count and reports how many games per second each setting
// sustains.
func RunThroughputExperiment(ctx context.Context, comm communication.Communicator, cfg meta.Simulation, goroutines []int) ([]Throughput, error) {
	var results []Throughput

	log.Info().Msg("starting throughput experiment...")

	for _, n := range goroutines {
		run := cfg
		run.Goroutines = n

		start := time.Now()
		out, err := RunSimulation(ctx, comm, run, 1)
		if err != nil {
			return nil, err
		}
		elapsed := time.Since(start)

		t := Throughput{
			Goroutines:  n,
			Games:       len(out.Games),
			Actions:     len(out.Actions),
			Elapsed:     elapsed,
			GamesPerSec: float64(len(out.Games)) / elapsed.Seconds(),
		}
		results = append(results, t)
		log.Info().Msgf("%d goroutines: %d games in %s (%.2f games/s)", n, t.Games, elapsed, t.GamesPerSec)
	}

	log.Info().Msg("completed throughput experiment")
	return results, nil
}
