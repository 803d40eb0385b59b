// Package gamemaster is the boundary in front of the rules engine. It owns
// the live games, serialises the actions of each game and persists the state
// after every accepted action.
package gamemaster

import (
	"context"
	"fmt"
	"sync"
	"time"

	"colonisation/game"
	"colonisation/rules"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Store persists game states by id. Load returns an unknown-game error for
// ids it has never saved.
type Store interface {
	Load(ctx context.Context, id string) (game.State, error)
	Save(ctx context.Context, id string, s game.State) error
}

type session struct {
	mu   sync.Mutex
	game *game.Game
}

type Master struct {
	store    Store
	entropy  func() game.Entropy
	mu       sync.Mutex
	sessions map[string]*session
}

type Option func(*Master)

// WithSeed makes every game created or restored by the master draw from a
// source seeded with seed, seed+1, ...
func WithSeed(seed uint64) Option {
	return func(m *Master) {
		var mu sync.Mutex
		next := seed
		m.entropy = func() game.Entropy {
			mu.Lock()
			defer mu.Unlock()
			e := game.NewEntropy(next)
			next++
			return e
		}
	}
}

func NewMaster(store Store, opts ...Option) *Master {
	m := &Master{
		store:    store,
		sessions: make(map[string]*session),
		entropy: func() game.Entropy {
			return game.NewEntropy(uint64(time.Now().UnixNano()))
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create starts a new game and returns its id.
func (m *Master) Create(ctx context.Context, seats []game.Seat) (string, error) {
	g, err := game.New(seats, m.entropy())
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	if err := m.store.Save(ctx, id, g.State()); err != nil {
		return "", fmt.Errorf("cannot save new game: %w", err)
	}

	m.mu.Lock()
	m.sessions[id] = &session{game: g}
	m.mu.Unlock()

	log.Info().Str("game", id).Int("players", len(seats)).Msg("game created")
	return id, nil
}

// Do applies one action to game id. A rejected action, or one whose state
// cannot be saved, leaves the game as it was.
func (m *Master) Do(ctx context.Context, id string, a Action) (Result, error) {
	s, err := m.session(ctx, id)
	if err != nil {
		return Result{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.game.State()
	payload, err := apply(s.game, a)
	if err != nil {
		log.Info().Str("game", id).Str("action", string(a.Type)).Int("player", a.Player).Err(err).Msg("action rejected")
		return Result{}, err
	}

	state := s.game.State()
	if err := m.store.Save(ctx, id, state); err != nil {
		restored, rerr := game.Restore(before, m.entropy())
		if rerr != nil {
			panic(rerr)
		}
		s.game = restored
		return Result{}, fmt.Errorf("cannot save game %s: %w", id, err)
	}

	winner, ok := s.game.Winner()
	if !ok {
		winner = game.NoOwner
	} else {
		log.Info().Str("game", id).Int("winner", winner).Msg("game finished")
	}
	log.Debug().Str("game", id).Str("action", string(a.Type)).Int("player", a.Player).Msg("action accepted")
	return Result{Action: a.Type, Payload: payload, State: state, Winner: winner}, nil
}

// State returns a snapshot of game id.
func (m *Master) State(ctx context.Context, id string) (game.State, error) {
	s, err := m.session(ctx, id)
	if err != nil {
		return game.State{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.State(), nil
}

// Winner reports the winner of game id, if it is finished.
func (m *Master) Winner(ctx context.Context, id string) (int, bool, error) {
	s, err := m.session(ctx, id)
	if err != nil {
		return game.NoOwner, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	winner, ok := s.game.Winner()
	return winner, ok, nil
}

// session returns the live session for id, restoring it from the store on
// first use. The store is read without holding m.mu; if two callers restore
// the same game at once, the first one registered wins.
func (m *Master) session(ctx context.Context, id string) (*session, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()
	if ok {
		return s, nil
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, rules.Missing(rules.CodeUnknownGame, "game %q does not exist", id)
	}

	state, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	g, err := game.Restore(state, m.entropy())
	if err != nil {
		return nil, fmt.Errorf("cannot load game %s: %w", id, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	s = &session{game: g}
	m.sessions[id] = s
	log.Debug().Str("game", id).Msg("game restored from store")
	return s, nil
}
