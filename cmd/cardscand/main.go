package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tunde-ajayi/cardscan/internal/common"
	"github.com/tunde-ajayi/cardscan/internal/ingest"
	"github.com/tunde-ajayi/cardscan/internal/ledger"
	"github.com/tunde-ajayi/cardscan/internal/mailchimp"
	"github.com/tunde-ajayi/cardscan/internal/ocr"
	"github.com/tunde-ajayi/cardscan/internal/pipeline"
)

// cardscand watches one or more drop folders and pushes every new card
// scan through the processing pipeline as it appears.
func main() {
	var (
		watch       = flag.String("watch", "", "comma-separated directories to watch (required)")
		initialScan = flag.Bool("initial-scan", true, "process files already present at startup")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if *watch == "" {
		logger.Error("--watch is required")
		os.Exit(1)
	}
	roots := strings.Split(*watch, ",")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.ValidateMailchimp(); err != nil {
		logger.Error("mailchimp configuration incomplete", "error", err)
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

	upserter := mailchimp.NewClient(mailchimp.Config{
		APIKey:       cfg.Mailchimp.APIKey,
		ServerPrefix: cfg.Mailchimp.ServerPrefix,
		ListID:       cfg.Mailchimp.ListID,
		Tag:          cfg.Mailchimp.Tag,
		Timeout:      cfg.Mailchimp.Timeout,
	}, logger)

	processor := pipeline.NewProcessor(led, extractor, upserter, logger)
	queue := pipeline.NewQueue(processor, cfg.Pipeline.Workers, cfg.Pipeline.QueueSize, logger)
	queue.JobTimeout = cfg.Pipeline.ProcessTimeout
	queue.Start(ctx)

	// metrics endpoint
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	metricsSrv := &http.Server{Addr: cfg.Metrics.Addr, Handler: mux}
	go func() {
		logger.Info("metrics listening", "addr", cfg.Metrics.Addr)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	paths, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       roots,
		InitialScan: *initialScan,
		Debounce:    cfg.Pipeline.WatchDebounce,
	})
	if err != nil {
		logger.Error("failed to start watcher", "error", err)
		os.Exit(1)
	}
	logger.Info("watching for card scans", "roots", roots)

	ingestor := ingest.NewFSIngestor(logger)
	go func() {
		for werr := range errs {
			logger.Error("watcher error", "error", werr)
		}
	}()

	for path := range paths {
		file, err := ingestor.IngestPath(ctx, path)
		if err != nil {
			logger.Warn("ingest failed", "path", path, "error", err)
			continue
		}
		if !queue.Enqueue(ctx, file) {
			break
		}
	}

	logger.Info("shutting down...")
	queue.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics shutdown failed", "error", err)
	}
	logger.Info("stopped")
}
