package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tunde-ajayi/cardscan/internal/common"
	"github.com/tunde-ajayi/cardscan/internal/extract"
	"github.com/tunde-ajayi/cardscan/internal/ingest"
	"github.com/tunde-ajayi/cardscan/internal/ocr"
)

// runocr runs OCR and field extraction over one file and prints the
// resulting contact record as JSON. No ledger, no upsert; a debugging aid.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runocr <path-to-card-scan>")
		os.Exit(2)
	}
	path := os.Args[1]

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg := common.LoadConfig()
	extractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:        cfg.OCR.Pdftotext,
		Pdftoppm:         cfg.OCR.Pdftoppm,
		Language:         cfg.OCR.Language,
		TessdataDir:      cfg.OCR.TessdataDir,
		DPI:              cfg.OCR.DPI,
		HeicConverter:    cfg.OCR.HeicConverter,
		ArtifactCacheDir: cfg.OCR.ArtifactCacheDir,
	}, logger)

	file, err := ingest.NewFSIngestor(logger).IngestPath(ctx, path)
	if err != nil {
		logger.Error("ingest failed", "path", path, "error", err)
		os.Exit(1)
	}

	start := time.Now()
	res, err := extractor.Extract(ctx, file.SourcePath)
	if err != nil {
		logger.Error("ocr failed", "path", path, "error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}
	logger.Info("ocr OK",
		"method", res.Method,
		"pages", res.Pages,
		"lines", len(res.Lines),
		"confidence", res.Confidence,
		"duration_ms", res.Duration.Milliseconds(),
	)

	contact := extract.Contact(file.SourceID, res.Lines)
	out, err := json.MarshalIndent(contact, "", "  ")
	if err != nil {
		logger.Error("encode contact", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
