package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrPlayerNotFound is returned when no player row matches the id.
var ErrPlayerNotFound = errors.New("player not found")

// Player is a registered player profile. Registration is optional;
// the trivia engine accepts any opaque player id.
type Player struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PlayerRepo provides CRUD access to player profiles.
type PlayerRepo struct {
	db *sql.DB
}

// Create inserts a new player. An empty id gets a generated UUID.
func (r *PlayerRepo) Create(ctx context.Context, id, displayName string) (Player, error) {
	if id == "" {
		id = uuid.NewString()
	}
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO players (id, display_name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		id, displayName, now, now)
	if err != nil {
		return Player{}, fmt.Errorf("create player: %w", err)
	}
	return Player{ID: id, DisplayName: displayName, CreatedAt: now, UpdatedAt: now}, nil
}

// Get returns a player by id.
func (r *PlayerRepo) Get(ctx context.Context, id string) (Player, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, display_name, created_at, updated_at FROM players WHERE id = ?`, id)

	var p Player
	if err := row.Scan(&p.ID, &p.DisplayName, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Player{}, ErrPlayerNotFound
		}
		return Player{}, fmt.Errorf("get player: %w", err)
	}
	return p, nil
}

// List returns all players ordered by creation time.
func (r *PlayerRepo) List(ctx context.Context) ([]Player, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, display_name, created_at, updated_at FROM players ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.ID, &p.DisplayName, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// Update changes a player's display name.
func (r *PlayerRepo) Update(ctx context.Context, id, displayName string) (Player, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE players SET display_name = ?, updated_at = ? WHERE id = ?`,
		displayName, time.Now().UTC(), id)
	if err != nil {
		return Player{}, fmt.Errorf("update player: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Player{}, ErrPlayerNotFound
	}
	return r.Get(ctx, id)
}

// Delete removes a player.
func (r *PlayerRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPlayerNotFound
	}
	return nil
}
