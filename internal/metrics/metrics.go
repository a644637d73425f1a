// Package metrics exposes Prometheus counters and histograms for the
// card-processing pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FilesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cardscan",
		Name:      "files_processed_total",
		Help:      "Card files that reached a terminal outcome, by outcome.",
	}, []string{"outcome"})

	FilesSkippedDuplicate = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cardscan",
		Name:      "files_skipped_duplicate_total",
		Help:      "Card files skipped because the ledger already held their source id.",
	})

	ProcessingErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cardscan",
		Name:      "processing_errors_total",
		Help:      "Pipeline failures, by stage (ocr, ledger, upsert).",
	}, []string{"stage"})

	Upserts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cardscan",
		Name:      "mailchimp_upserts_total",
		Help:      "Mailing-list upsert attempts, by result.",
	}, []string{"result"})

	OCRDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "cardscan",
		Name:      "ocr_duration_seconds",
		Help:      "Wall time spent extracting text from one file.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10),
	})

	ProcessDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "cardscan",
		Name:      "process_duration_seconds",
		Help:      "Wall time for one file end to end.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
	})

	QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "cardscan",
		Name:      "queue_depth",
		Help:      "Jobs waiting in the processing queue.",
	})
)
