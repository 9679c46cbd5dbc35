// Package postgres implements domain.FlightStore on PostgreSQL using pgx.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skytrack/flight-tracker/internal/domain"
)

// Schema creates the flights table. The full record is kept as JSONB;
// the lookup columns are denormalized from it.
const Schema = `
CREATE TABLE IF NOT EXISTS flights (
	id          BIGSERIAL PRIMARY KEY,
	call_sign   TEXT        NOT NULL,
	depart_key  TEXT        NOT NULL,
	depart_at   TIMESTAMPTZ NOT NULL,
	record      JSONB       NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS flights_depart_call_sign_idx ON flights (depart_key, call_sign);
`

// Store handles all flight database operations.
type Store struct {
	pool *pgxpool.Pool
}

// NewPool opens a pool and verifies the connection.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

// NewStore creates a store and applies Schema.
func NewStore(ctx context.Context, pool *pgxpool.Pool) (*Store, error) {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Insert implements domain.FlightStore.
func (s *Store) Insert(ctx context.Context, record *domain.FlightRecord) error {
	payload, err := encodeRecord(record)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO flights (call_sign, depart_key, depart_at, record)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err = s.pool.QueryRow(ctx, query,
		record.CallSign, record.DepartKey(), record.Departure.DateTime, payload,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("failed to insert flight: %w", err)
	}
	record.ID = id
	return nil
}

// Update implements domain.FlightStore.
func (s *Store) Update(ctx context.Context, record *domain.FlightRecord) error {
	payload, err := encodeRecord(record)
	if err != nil {
		return err
	}

	query := `
		UPDATE flights
		SET call_sign = $2, depart_key = $3, depart_at = $4, record = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := s.pool.Exec(ctx, query,
		record.ID, record.CallSign, record.DepartKey(), record.Departure.DateTime, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to update flight: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// Delete implements domain.FlightStore.
func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM flights WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete flight: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// Get implements domain.FlightStore.
func (s *Store) Get(ctx context.Context, id int64) (*domain.FlightRecord, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx, `SELECT record FROM flights WHERE id = $1`, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}
	return decodeRecord(id, payload)
}

// GetAll implements domain.FlightStore.
func (s *Store) GetAll(ctx context.Context) ([]domain.FlightRecord, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, record FROM flights ORDER BY depart_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query flights: %w", err)
	}
	defer rows.Close()

	var records []domain.FlightRecord
	for rows.Next() {
		var (
			id      int64
			payload []byte
		)
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan flight: %w", err)
		}
		r, err := decodeRecord(id, payload)
		if err != nil {
			return nil, err
		}
		records = append(records, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate flights: %w", err)
	}
	return records, nil
}

// CountExisting implements domain.FlightStore.
func (s *Store) CountExisting(ctx context.Context, departDate time.Time, callSign string) (int64, error) {
	var n int64
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM flights WHERE depart_key = $1 AND call_sign = $2`,
		departDate.Format(domain.LocalDateTimeLayout), callSign,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count flights: %w", err)
	}
	return n, nil
}

// encodeRecord serializes the record for the JSONB column.
// time.Time marshals as RFC 3339 with its offset, so the local wall clock is kept.
func encodeRecord(r *domain.FlightRecord) ([]byte, error) {
	payload, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to encode flight: %w", err)
	}
	return payload, nil
}

func decodeRecord(id int64, payload []byte) (*domain.FlightRecord, error) {
	var r domain.FlightRecord
	if err := json.Unmarshal(payload, &r); err != nil {
		return nil, fmt.Errorf("failed to decode flight %d: %w", id, err)
	}
	r.ID = id
	return &r, nil
}

var _ domain.FlightStore = (*Store)(nil)
