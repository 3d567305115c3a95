package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dbTimeout = 5 * time.Second

// PostgresRecordStore is a PostgreSQL-backed RecordStore. The scored result
// is stored as a JSONB payload alongside the indexed columns.
type PostgresRecordStore struct {
	pool *pgxpool.Pool
}

// NewPostgresRecordStore creates a PostgreSQL-backed record store.
func NewPostgresRecordStore(pool *pgxpool.Pool) (*PostgresRecordStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}
	return &PostgresRecordStore{pool: pool}, nil
}

func (s *PostgresRecordStore) Save(rec Record) (Record, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	if rec.UserID == "" {
		return Record{}, fmt.Errorf("user id is required")
	}
	rec.ID = generateID()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	payload, err := json.Marshal(rec.Result)
	if err != nil {
		return Record{}, fmt.Errorf("marshal result: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO assessment_records (id, user_id, assessment_name, created_at, payload)
		 VALUES ($1, $2, $3, $4, $5)`,
		rec.ID, rec.UserID, rec.AssessmentName, rec.CreatedAt, payload,
	)
	if err != nil {
		return Record{}, fmt.Errorf("save record: %w", err)
	}
	return rec, nil
}

func (s *PostgresRecordStore) ListByUser(userID string) ([]Record, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, assessment_name, created_at, payload
		 FROM assessment_records
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return out, nil
}

func (s *PostgresRecordStore) GetByID(id string) (Record, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	row := s.pool.QueryRow(ctx,
		`SELECT id, user_id, assessment_name, created_at, payload
		 FROM assessment_records
		 WHERE id = $1`,
		id,
	)
	rec, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

func scanRecord(row pgx.Row) (Record, error) {
	var rec Record
	var payload []byte
	if err := row.Scan(&rec.ID, &rec.UserID, &rec.AssessmentName, &rec.CreatedAt, &payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, err
		}
		return Record{}, fmt.Errorf("scan record: %w", err)
	}
	if err := json.Unmarshal(payload, &rec.Result); err != nil {
		return Record{}, fmt.Errorf("unmarshal payload: %w", err)
	}
	return rec, nil
}
