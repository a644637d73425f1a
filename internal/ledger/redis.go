package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/tunde-ajayi/cardscan/internal/entity"
)

const processedKeyPrefix = "cardscan:processed:"

// RedisLedger keeps processed-file entries as Redis keys. SETNX provides
// the transactional insert-if-absent; entries never expire.
type RedisLedger struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisLedger(ctx context.Context, dsn string, logger *slog.Logger) (*RedisLedger, error) {
	if logger == nil {
		logger = slog.Default()
	}
	opts, err := redis.ParseURL(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse redis ledger url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis ledger: %w", err)
	}
	return &RedisLedger{client: client, logger: logger}, nil
}

func key(sourceFileID string) string {
	return processedKeyPrefix + sourceFileID
}

func (l *RedisLedger) HasProcessed(ctx context.Context, sourceFileID string) (bool, error) {
	n, err := l.client.Exists(ctx, key(sourceFileID)).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (l *RedisLedger) RecordOutcome(ctx context.Context, e entity.ProcessedFileEntry) (bool, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return false, fmt.Errorf("encode ledger entry: %w", err)
	}
	inserted, err := l.client.SetNX(ctx, key(e.SourceFileID), payload, 0).Result()
	if err != nil {
		l.logger.Error("ledger.record.failed", "source_file_id", e.SourceFileID, "error", err)
		return false, err
	}
	return inserted, nil
}

func (l *RedisLedger) Close() error { return l.client.Close() }
