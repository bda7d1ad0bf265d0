package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
}

const schemaSQL = `CREATE TABLE IF NOT EXISTS export_history (
	id            UUID PRIMARY KEY,
	campaign_name TEXT NOT NULL,
	fingerprint   TEXT NOT NULL,
	filename      TEXT NOT NULL,
	source        TEXT NOT NULL,
	row_count     INTEGER NOT NULL,
	byte_count    INTEGER NOT NULL,
	warnings      INTEGER NOT NULL DEFAULT 0,
	errors        INTEGER NOT NULL DEFAULT 0,
	skipped_ads   INTEGER NOT NULL DEFAULT 0,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS export_history_created_at_idx ON export_history (created_at DESC)`

const insertSQL = `INSERT INTO export_history
	(id, campaign_name, fingerprint, filename, source, row_count, byte_count, warnings, errors, skipped_ads, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

const selectColumns = `SELECT id, campaign_name, fingerprint, filename, source,
	row_count, byte_count, warnings, errors, skipped_ads, created_at
	FROM export_history`

var _ Store = (*PostgresStore)(nil)

// PostgresStore keeps entries in the export_history table.
type PostgresStore struct {
	db  DBTX
	now func() time.Time
}

// NewPostgresStore returns a store over db. Call Migrate once before use.
func NewPostgresStore(db DBTX) *PostgresStore {
	return &PostgresStore{db: db, now: time.Now}
}

// Migrate creates the table if it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("migrate export_history: %w", err)
	}
	return nil
}

func (s *PostgresStore) Record(ctx context.Context, e Entry) (Entry, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now().UTC()
	}

	_, err := s.db.Exec(ctx, insertSQL,
		e.ID, e.CampaignName, e.Fingerprint, e.Filename, string(e.Source),
		e.Rows, e.Bytes, e.Warnings, e.Errors, e.SkippedAds, e.CreatedAt,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("record export %s: %w", e.ID, err)
	}
	return e, nil
}

func (s *PostgresStore) Get(ctx context.Context, id uuid.UUID) (Entry, error) {
	e, err := scanEntry(s.db.QueryRow(ctx, selectColumns+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, fmt.Errorf("get export %s: %w", id, err)
	}
	return e, nil
}

func (s *PostgresStore) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.Query(ctx, selectColumns+` ORDER BY created_at DESC LIMIT $1`, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan export: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}
	return entries, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (Entry, error) {
	var (
		e      Entry
		source string
	)
	err := row.Scan(
		&e.ID, &e.CampaignName, &e.Fingerprint, &e.Filename, &source,
		&e.Rows, &e.Bytes, &e.Warnings, &e.Errors, &e.SkippedAds, &e.CreatedAt,
	)
	if err != nil {
		return Entry{}, err
	}
	e.Source = Source(source)
	return e, nil
}
