package entity

import (
	"time"

	"github.com/tunde-ajayi/cardscan/constants"
)

// ProcessedFileEntry is the durable idempotency record for one source file.
// Created once after a terminal outcome, never mutated.
type ProcessedFileEntry struct {
	SourceFileID string            `json:"source_file_id"`
	Outcome      constants.Outcome `json:"outcome"`
	SkipReason   string            `json:"skip_reason,omitempty"`
	ProcessedAt  time.Time         `json:"processed_at"`
}
