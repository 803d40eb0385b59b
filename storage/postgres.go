// Package storage persists game states in Postgres, one JSONB document per
// game.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"colonisation/game"
	"colonisation/rules"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, connString string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach postgres: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Close() {
	p.pool.Close()
}

func (p *Postgres) Load(ctx context.Context, id string) (game.State, error) {
	var data []byte
	err := p.pool.QueryRow(ctx, "SELECT state FROM games WHERE id = $1", id).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return game.State{}, rules.Missing(rules.CodeUnknownGame, "game %q does not exist", id)
		}
		return game.State{}, fmt.Errorf("failed to load game %s: %w", id, err)
	}

	var s game.State
	if err := json.Unmarshal(data, &s); err != nil {
		return game.State{}, fmt.Errorf("failed to decode game %s: %w", id, err)
	}
	return s, nil
}

func (p *Postgres) Save(ctx context.Context, id string, s game.State) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode game %s: %w", id, err)
	}
	_, err = p.pool.Exec(ctx, `
		INSERT INTO games (id, state, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET state = EXCLUDED.state, updated_at = now()`,
		id, data)
	if err != nil {
		return fmt.Errorf("failed to save game %s: %w", id, err)
	}
	return nil
}
