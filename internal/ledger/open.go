package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tunde-ajayi/cardscan/internal/common"
)

// Open constructs the ledger named by configuration. DialTimeout bounds
// the initial connect/schema round-trip, not later operations.
func Open(ctx context.Context, cfg common.LedgerConfig, logger *slog.Logger) (Ledger, error) {
	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = common.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	switch cfg.Driver {
	case "memory":
		return NewMemoryLedger(), nil
	case "sqlite":
		return NewSQLiteLedger(ctx, cfg.DSN, logger)
	case "postgres":
		return NewPostgresLedger(ctx, cfg.DSN, logger)
	case "redis":
		return NewRedisLedger(ctx, cfg.DSN, logger)
	default:
		return nil, fmt.Errorf("unknown ledger driver: %q", cfg.Driver)
	}
}
