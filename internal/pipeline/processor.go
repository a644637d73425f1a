// Package pipeline drives one card file through the full processing
// sequence: ledger check, OCR, field extraction, outcome recording, and
// the mailing-list upsert for accepted contacts.
//
// The ordering is load-bearing for idempotency: the terminal outcome is
// recorded BEFORE the upsert, and only the run that actually inserted the
// ledger entry performs the upsert. Two concurrent runs over the same file
// therefore produce at most one upsert.
package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tunde-ajayi/cardscan/constants"
	"github.com/tunde-ajayi/cardscan/internal/common"
	"github.com/tunde-ajayi/cardscan/internal/entity"
	"github.com/tunde-ajayi/cardscan/internal/extract"
	"github.com/tunde-ajayi/cardscan/internal/ledger"
	"github.com/tunde-ajayi/cardscan/internal/metrics"
	"github.com/tunde-ajayi/cardscan/internal/ocr"
)

// TextExtractor yields recognized text lines for one file on disk.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (ocr.ExtractionResult, error)
}

// Upserter pushes an accepted contact to the mailing list.
type Upserter interface {
	UpsertContact(ctx context.Context, rec *entity.ContactRecord) error
}

// Result reports what happened to one file.
type Result struct {
	File          entity.CardFile
	State         constants.FileState
	Contact       *entity.ContactRecord
	DuplicateSkip bool // ledger already held the source id; nothing ran
	RecordedNew   bool // this run inserted the ledger entry
	Upserted      bool
}

type Processor struct {
	ledger   ledger.Ledger
	ocr      TextExtractor
	upserter Upserter // nil disables the upsert step (dry runs, exports)
	logger   *slog.Logger
}

func NewProcessor(l ledger.Ledger, extractor TextExtractor, upserter Upserter, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{ledger: l, ocr: extractor, upserter: upserter, logger: logger}
}

// Process runs the state machine for one card file:
// FETCHED -> OCRD -> PARSED -> {ACCEPTED|SKIPPED} -> RECORDED.
//
// Extraction itself never fails; errors come only from collaborators (OCR,
// ledger, upsert) or from a file with no source id.
func (p *Processor) Process(ctx context.Context, file entity.CardFile) (Result, error) {
	start := time.Now()
	res := Result{File: file, State: constants.StateFetched}

	if file.SourceID == "" {
		return res, common.NewAppError("INVALID_INPUT", "card file has no source id", common.ErrInvalidInput)
	}

	reqID := common.RequestIDFromContext(ctx)
	if reqID == "" {
		reqID = uuid.New().String()
		ctx = common.WithRequestID(ctx, reqID)
	}
	log := p.logger.With("request_id", reqID, "source_file_id", file.SourceID, "filename", file.Filename)
	log.Debug("file fetched", "state", constants.StateFetched)

	done, err := p.ledger.HasProcessed(ctx, file.SourceID)
	if err != nil {
		metrics.ProcessingErrors.WithLabelValues("ledger").Inc()
		return res, common.WrapError(err, "ledger lookup failed")
	}
	if done {
		res.DuplicateSkip = true
		metrics.FilesSkippedDuplicate.Inc()
		log.Info("file already processed, skipping")
		return res, nil
	}

	ocrStart := time.Now()
	extraction, err := p.ocr.Extract(ctx, file.SourcePath)
	metrics.OCRDuration.Observe(time.Since(ocrStart).Seconds())
	if err != nil {
		metrics.ProcessingErrors.WithLabelValues("ocr").Inc()
		return res, common.WrapError(err, "ocr extraction failed")
	}
	res.State = constants.StateOCRd
	log.Debug("ocr complete",
		"state", constants.StateOCRd,
		"method", extraction.Method,
		"lines", len(extraction.Lines),
		"confidence", extraction.Confidence,
	)

	var contact *entity.ContactRecord
	if strings.TrimSpace(extraction.Text) == "" {
		contact = &entity.ContactRecord{
			SourceFileID: file.SourceID,
			Outcome:      constants.OutcomeSkipped,
			SkipReason:   constants.SkipReasonNoText,
		}
	} else {
		contact = extract.Contact(file.SourceID, extraction.Lines)
	}
	res.State = constants.StateParsed
	res.Contact = contact
	log.Info("extraction complete",
		"state", constants.StateParsed,
		"outcome", contact.Outcome,
		"skip_reason", contact.SkipReason,
		"email", contact.Email,
	)

	inserted, err := p.ledger.RecordOutcome(ctx, entity.ProcessedFileEntry{
		SourceFileID: file.SourceID,
		Outcome:      contact.Outcome,
		SkipReason:   contact.SkipReason,
		ProcessedAt:  time.Now().UTC(),
	})
	if err != nil {
		metrics.ProcessingErrors.WithLabelValues("ledger").Inc()
		return res, common.WrapError(err, "recording outcome failed")
	}
	res.State = constants.StateRecorded
	res.RecordedNew = inserted
	metrics.FilesProcessed.WithLabelValues(strings.ToLower(string(contact.Outcome))).Inc()
	log.Debug("outcome recorded", "state", constants.StateRecorded, "inserted", inserted)

	if contact.Accepted() && inserted && p.upserter != nil {
		if err := p.upserter.UpsertContact(ctx, contact); err != nil {
			metrics.Upserts.WithLabelValues("error").Inc()
			metrics.ProcessingErrors.WithLabelValues("upsert").Inc()
			// the outcome is already durable; the operator re-drives the
			// upsert from the export, not by reprocessing the file
			return res, common.WrapError(err, "mailing-list upsert failed")
		}
		res.Upserted = true
		metrics.Upserts.WithLabelValues("ok").Inc()
	}

	metrics.ProcessDuration.Observe(time.Since(start).Seconds())
	log.Info("file done",
		"outcome", contact.Outcome,
		"upserted", res.Upserted,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}
