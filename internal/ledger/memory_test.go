package ledger

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/tunde-ajayi/cardscan/constants"
	"github.com/tunde-ajayi/cardscan/internal/entity"
)

func entry(id string) entity.ProcessedFileEntry {
	return entity.ProcessedFileEntry{
		SourceFileID: id,
		Outcome:      constants.OutcomeAccepted,
		ProcessedAt:  time.Now().UTC(),
	}
}

func TestMemoryLedgerRecordOnce(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger()

	done, err := l.HasProcessed(ctx, "abc")
	if err != nil || done {
		t.Fatalf("HasProcessed on empty ledger = %v, %v", done, err)
	}

	inserted, err := l.RecordOutcome(ctx, entry("abc"))
	if err != nil || !inserted {
		t.Fatalf("first RecordOutcome = %v, %v, want inserted", inserted, err)
	}

	inserted, err = l.RecordOutcome(ctx, entry("abc"))
	if err != nil || inserted {
		t.Fatalf("second RecordOutcome = %v, %v, want not inserted", inserted, err)
	}

	done, err = l.HasProcessed(ctx, "abc")
	if err != nil || !done {
		t.Fatalf("HasProcessed after record = %v, %v", done, err)
	}
	if got := len(l.Entries()); got != 1 {
		t.Errorf("entries = %d, want 1", got)
	}
}

func TestMemoryLedgerFirstOutcomeSticks(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger()

	first := entity.ProcessedFileEntry{
		SourceFileID: "abc",
		Outcome:      constants.OutcomeSkipped,
		SkipReason:   constants.SkipReasonNoEmail,
		ProcessedAt:  time.Now().UTC(),
	}
	if inserted, _ := l.RecordOutcome(ctx, first); !inserted {
		t.Fatal("first record not inserted")
	}
	if inserted, _ := l.RecordOutcome(ctx, entry("abc")); inserted {
		t.Fatal("second record overwrote the first")
	}

	es := l.Entries()
	if len(es) != 1 || es[0].Outcome != constants.OutcomeSkipped {
		t.Errorf("entries = %+v, want the original skipped outcome", es)
	}
}

func TestMemoryLedgerConcurrentSingleWinner(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger()

	const n = 32
	var wg sync.WaitGroup
	wins := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if inserted, err := l.RecordOutcome(ctx, entry("same-id")); err == nil && inserted {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	count := 0
	for range wins {
		count++
	}
	if count != 1 {
		t.Errorf("%d goroutines observed inserted=true, want exactly 1", count)
	}
}
