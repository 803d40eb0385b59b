package communication

import (
	"context"

	"colonisation/game"
	"colonisation/gamemaster"
)

// Communicator is how players and runners reach a game, in process or over
// HTTP.
type Communicator interface {
	Create(ctx context.Context, seats []game.Seat) (string, error)
	Do(ctx context.Context, id string, a gamemaster.Action) (gamemaster.Result, error)
	State(ctx context.Context, id string) (game.State, error)
	// Winner reports the winning player id once the game is finished.
	Winner(ctx context.Context, id string) (int, bool, error)
}

var _ Communicator = (*gamemaster.Master)(nil)
