package ledger

import (
	"context"
	"sync"

	"github.com/tunde-ajayi/cardscan/internal/entity"
)

// MemoryLedger is a process-local ledger for tests and one-shot batch runs
// that do not need durability.
type MemoryLedger struct {
	mu      sync.Mutex
	entries map[string]entity.ProcessedFileEntry
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{entries: make(map[string]entity.ProcessedFileEntry)}
}

func (m *MemoryLedger) HasProcessed(_ context.Context, sourceFileID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[sourceFileID]
	return ok, nil
}

func (m *MemoryLedger) RecordOutcome(_ context.Context, e entity.ProcessedFileEntry) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[e.SourceFileID]; ok {
		return false, nil
	}
	m.entries[e.SourceFileID] = e
	return true, nil
}

func (m *MemoryLedger) Close() error { return nil }

// Entries returns a copy of all recorded entries, for test assertions.
func (m *MemoryLedger) Entries() []entity.ProcessedFileEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.ProcessedFileEntry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e)
	}
	return out
}
