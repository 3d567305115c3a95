package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dbTimeout = 5 * time.Second

// PostgresUserStore is a PostgreSQL-backed UserStore.
type PostgresUserStore struct {
	pool *pgxpool.Pool
}

// NewPostgresUserStore creates a user store backed by the given pool.
func NewPostgresUserStore(pool *pgxpool.Pool) *PostgresUserStore {
	return &PostgresUserStore{pool: pool}
}

// GetByMobile returns the user registered with the mobile number.
func (s *PostgresUserStore) GetByMobile(mobile string) (User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	row := s.pool.QueryRow(ctx,
		`SELECT id, mobile, created_at FROM users WHERE mobile = $1`, mobile)
	return scanUser(row)
}

// GetByID returns the user with the given ID.
func (s *PostgresUserStore) GetByID(id string) (User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	row := s.pool.QueryRow(ctx,
		`SELECT id, mobile, created_at FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// Create registers a new user for the mobile number.
func (s *PostgresUserStore) Create(mobile string) (User, error) {
	if mobile == "" {
		return User{}, fmt.Errorf("mobile is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	u := User{ID: generateID(), Mobile: mobile}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (id, mobile) VALUES ($1, $2) RETURNING created_at`,
		u.ID, u.Mobile).Scan(&u.CreatedAt)
	if err != nil {
		return User{}, fmt.Errorf("inserting user: %w", err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Mobile, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("scanning user: %w", err)
	}
	return u, nil
}
