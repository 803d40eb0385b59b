package engine

import (
	"context"

	"colonisation/experiments/metrics"
)

type Engine interface {
	// Run plays a game till there's a winner or a max number of turns is reached
	Run(ctx context.Context) (winner int, gameMetric metrics.GameMetric, actionMetrics []metrics.ActionMetric, err error)
}
