package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tunde-ajayi/cardscan/internal/entity"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS processed_files (
	source_file_id TEXT PRIMARY KEY,
	outcome        TEXT NOT NULL,
	skip_reason    TEXT NOT NULL DEFAULT '',
	processed_at   TIMESTAMPTZ NOT NULL
);`

// PostgresLedger backs the ledger with a shared Postgres table, for
// deployments where several hosts process the same cloud folder.
type PostgresLedger struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresLedger(ctx context.Context, dsn string, logger *slog.Logger) (*PostgresLedger, error) {
	if logger == nil {
		logger = slog.Default()
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres ledger: %w", err)
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("init postgres ledger schema: %w", err)
	}
	return &PostgresLedger{pool: pool, logger: logger}, nil
}

func (l *PostgresLedger) HasProcessed(ctx context.Context, sourceFileID string) (bool, error) {
	var one int
	err := l.pool.QueryRow(ctx,
		`SELECT 1 FROM processed_files WHERE source_file_id = $1`, sourceFileID).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (l *PostgresLedger) RecordOutcome(ctx context.Context, e entity.ProcessedFileEntry) (bool, error) {
	tag, err := l.pool.Exec(ctx,
		`INSERT INTO processed_files (source_file_id, outcome, skip_reason, processed_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (source_file_id) DO NOTHING`,
		e.SourceFileID, string(e.Outcome), e.SkipReason, e.ProcessedAt.UTC())
	if err != nil {
		l.logger.Error("ledger.record.failed", "source_file_id", e.SourceFileID, "error", err)
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (l *PostgresLedger) Close() error {
	l.pool.Close()
	return nil
}
