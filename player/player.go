// Package player holds automated players. A bot only sees game snapshots and
// acts through a Communicator, like any remote client.
package player

import (
	"context"
	"errors"
	"fmt"

	"colonisation/communication"
	"colonisation/game"
	"colonisation/gamemaster"
	"colonisation/rules"

	"github.com/rs/zerolog/log"
)

var ErrNoMove = errors.New("policy has no move")

// Policy proposes actions for player self from a read-only snapshot, best
// first. It may propose actions the engine will reject.
type Policy interface {
	Next(s game.State, self int) []gamemaster.Action
}

type Bot struct {
	ID     int
	Policy Policy
}

func NewBot(id int, policy Policy) *Bot {
	return &Bot{ID: id, Policy: policy}
}

// Step fetches the game and submits the policy's candidates in order until
// one is accepted. Rejections move on to the next candidate; any other error
// stops the step.
func (b *Bot) Step(ctx context.Context, comm communication.Communicator, gameID string) (gamemaster.Result, error) {
	s, err := comm.State(ctx, gameID)
	if err != nil {
		return gamemaster.Result{}, err
	}
	candidates := b.Policy.Next(s, b.ID)
	if len(candidates) == 0 {
		return gamemaster.Result{}, ErrNoMove
	}

	var last error
	for _, a := range candidates {
		a.Player = b.ID
		res, err := comm.Do(ctx, gameID, a)
		if err == nil {
			return res, nil
		}
		if !rules.IsValidation(err) && !rules.IsNotFound(err) {
			return gamemaster.Result{}, err
		}
		log.Debug().Int("player", b.ID).Str("action", string(a.Type)).Err(err).Msg("candidate rejected")
		last = err
	}
	return gamemaster.Result{}, fmt.Errorf("player %d: no candidate accepted: %w", b.ID, last)
}
