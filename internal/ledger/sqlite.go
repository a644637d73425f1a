package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/tunde-ajayi/cardscan/internal/entity"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS processed_files (
	source_file_id TEXT PRIMARY KEY,
	outcome        TEXT NOT NULL,
	skip_reason    TEXT NOT NULL DEFAULT '',
	processed_at   TIMESTAMP NOT NULL
);`

// SQLiteLedger is the default durable ledger, backed by a single-file
// SQLite database. The primary key on source_file_id gives the
// insert-if-absent guarantee.
type SQLiteLedger struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteLedger opens (and if needed initializes) the ledger database.
// DSN accepts anything modernc.org/sqlite does, including ":memory:".
func NewSQLiteLedger(ctx context.Context, dsn string, logger *slog.Logger) (*SQLiteLedger, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite ledger: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init sqlite ledger schema: %w", err)
	}
	return &SQLiteLedger{db: db, logger: logger}, nil
}

func (l *SQLiteLedger) HasProcessed(ctx context.Context, sourceFileID string) (bool, error) {
	var one int
	err := l.db.QueryRowContext(ctx,
		`SELECT 1 FROM processed_files WHERE source_file_id = ?`, sourceFileID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (l *SQLiteLedger) RecordOutcome(ctx context.Context, e entity.ProcessedFileEntry) (bool, error) {
	res, err := l.db.ExecContext(ctx,
		`INSERT INTO processed_files (source_file_id, outcome, skip_reason, processed_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(source_file_id) DO NOTHING`,
		e.SourceFileID, string(e.Outcome), e.SkipReason, e.ProcessedAt.UTC())
	if err != nil {
		l.logger.Error("ledger.record.failed", "source_file_id", e.SourceFileID, "error", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (l *SQLiteLedger) Close() error { return l.db.Close() }
