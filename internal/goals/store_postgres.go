package goals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dbTimeout = 5 * time.Second

// PostgresStore is a PostgreSQL-backed goal Store.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a goal store backed by the given pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// ListByUser returns the user's goals, newest first.
func (s *PostgresStore) ListByUser(userID string) ([]Goal, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, text, COALESCE(related_to, ''), created_at, is_completed
		 FROM user_goals WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying goals: %w", err)
	}
	defer rows.Close()

	out := make([]Goal, 0)
	for rows.Next() {
		var g Goal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Text, &g.RelatedTo, &g.CreatedAt, &g.IsCompleted); err != nil {
			return nil, fmt.Errorf("scanning goal: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// Add creates a new goal for the user.
func (s *PostgresStore) Add(userID, text, relatedTo string) (Goal, error) {
	if userID == "" {
		return Goal{}, fmt.Errorf("user ID is required")
	}
	if text == "" {
		return Goal{}, fmt.Errorf("goal text is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	g := Goal{
		ID:        newGoalID(),
		UserID:    userID,
		Text:      text,
		RelatedTo: relatedTo,
		CreatedAt: time.Now(),
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO user_goals (id, user_id, text, related_to, created_at, is_completed)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)`,
		g.ID, g.UserID, g.Text, g.RelatedTo, g.CreatedAt, g.IsCompleted)
	if err != nil {
		return Goal{}, fmt.Errorf("inserting goal: %w", err)
	}
	return g, nil
}

// Update replaces the text, relation, and completion state of the user's goal.
func (s *PostgresStore) Update(goal Goal) (Goal, error) {
	if goal.Text == "" {
		return Goal{}, fmt.Errorf("goal text is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	var updated Goal
	err := s.pool.QueryRow(ctx,
		`UPDATE user_goals
		 SET text = $3, related_to = NULLIF($4, ''), is_completed = $5
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, text, COALESCE(related_to, ''), created_at, is_completed`,
		goal.ID, goal.UserID, goal.Text, goal.RelatedTo, goal.IsCompleted).
		Scan(&updated.ID, &updated.UserID, &updated.Text, &updated.RelatedTo,
			&updated.CreatedAt, &updated.IsCompleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return Goal{}, ErrNotFound
	}
	if err != nil {
		return Goal{}, fmt.Errorf("updating goal: %w", err)
	}
	return updated, nil
}

// Delete removes the user's goal.
func (s *PostgresStore) Delete(userID, goalID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	tag, err := s.pool.Exec(ctx,
		`DELETE FROM user_goals WHERE id = $1 AND user_id = $2`, goalID, userID)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
