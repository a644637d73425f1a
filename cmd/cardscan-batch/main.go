package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tunde-ajayi/cardscan/internal/common"
	"github.com/tunde-ajayi/cardscan/internal/entity"
	"github.com/tunde-ajayi/cardscan/internal/export"
	"github.com/tunde-ajayi/cardscan/internal/ingest"
	"github.com/tunde-ajayi/cardscan/internal/ledger"
	"github.com/tunde-ajayi/cardscan/internal/mailchimp"
	"github.com/tunde-ajayi/cardscan/internal/ocr"
	"github.com/tunde-ajayi/cardscan/internal/pipeline"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir    = flag.String("dir", "", "directory of card scans to process (required)")
		out    = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		inmem  = flag.Bool("inmem", false, "use an in-memory ledger instead of the configured one")
		dryRun = flag.Bool("dry-run", false, "extract and record outcomes but skip the mailing-list upsert")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "contacts.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if *inmem {
		cfg.Ledger.Driver = "memory"
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	led, err := ledger.Open(ctx, cfg.Ledger, logger)
	if err != nil {
		logger.Error("failed to open ledger", "driver", cfg.Ledger.Driver, "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := led.Close(); cerr != nil {
			logger.Error("close ledger", "error", cerr)
		}
	}()

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:        cfg.OCR.Pdftotext,
		Pdftoppm:         cfg.OCR.Pdftoppm,
		Language:         cfg.OCR.Language,
		TessdataDir:      cfg.OCR.TessdataDir,
		DPI:              cfg.OCR.DPI,
		HeicConverter:    cfg.OCR.HeicConverter,
		ArtifactCacheDir: cfg.OCR.ArtifactCacheDir,
	}, logger)

	var upserter pipeline.Upserter
	if *dryRun {
		logger.Warn("dry run: contacts will not be upserted")
	} else {
		if err := cfg.ValidateMailchimp(); err != nil {
			logger.Error("mailchimp configuration incomplete (use --dry-run to skip upserts)", "error", err)
			os.Exit(1)
		}
		upserter = mailchimp.NewClient(mailchimp.Config{
			APIKey:       cfg.Mailchimp.APIKey,
			ServerPrefix: cfg.Mailchimp.ServerPrefix,
			ListID:       cfg.Mailchimp.ListID,
			Tag:          cfg.Mailchimp.Tag,
			Timeout:      cfg.Mailchimp.Timeout,
		}, logger)
	}

	processor := pipeline.NewProcessor(led, extractor, upserter, logger)
	ingestor := ingest.NewFSIngestor(logger)

	logger.Info("starting ingestion", "dir", *dir)
	results, stats, err := ingestor.IngestDirectory(ctx, *dir, true)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}
	logger.Info("ingestion complete",
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"deduplicated", stats.Deduplicated)

	var (
		contacts   []*entity.ContactRecord
		processed  int
		duplicates int
		failures   int
	)
	for _, r := range results {
		if r.Err != "" {
			failures++
			continue
		}
		res, err := processor.Process(ctx, r.File)
		if err != nil {
			logger.Error("failed to process file", "source_file_id", r.File.SourceID, "error", err)
			failures++
			continue
		}
		if res.DuplicateSkip {
			duplicates++
			continue
		}
		processed++
		if res.Contact != nil {
			contacts = append(contacts, res.Contact)
		}
	}

	logger.Info("exporting to XLSX", "output", *out)
	xlsxBytes, err := export.NewService(logger).ContactsXLSX(contacts)
	if err != nil {
		logger.Error("failed to export contacts", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch processing complete",
		"files_processed", processed,
		"duplicates", duplicates,
		"failures", failures,
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Files processed: %d\n", processed)
	fmt.Printf("- Already in ledger: %d\n", duplicates)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", *out)
}
