// Package ingest discovers card scans in a watched folder and turns them
// into CardFile entities. The folder is the system's "cloud drop": files
// are identified by content hash so a re-synced or renamed scan keeps the
// same source id across runs.
package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tunde-ajayi/cardscan/constants"
	"github.com/tunde-ajayi/cardscan/internal/entity"
)

// DirStats aggregates one directory walk.
type DirStats struct {
	Scanned      int
	Matched      int
	Succeeded    int
	Failed       int
	Deduplicated int
}

// IngestionResult is the per-file outcome of an ingestion attempt.
type IngestionResult struct {
	File entity.CardFile
	Err  string
}

// FSIngestor reads card scans from the local filesystem.
type FSIngestor struct {
	AllowedExts map[string]struct{} // lowercased sans '.'; nil -> default set
	logger      *slog.Logger
}

func NewFSIngestor(logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{logger: logger}
}

// IngestPath stats and hashes one file, producing a CardFile whose
// SourceID is the hex SHA-256 of its contents.
func (i *FSIngestor) IngestPath(ctx context.Context, path string) (entity.CardFile, error) {
	var out entity.CardFile

	if err := ctx.Err(); err != nil {
		return out, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return out, fmt.Errorf("abs path: %w", err)
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !i.allowedExt(ext) {
		return out, fmt.Errorf("unsupported or missing extension: %q", ext)
	}

	f, err := os.Open(abs)
	if err != nil {
		return out, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			i.logger.Warn("close file failed", "path", abs, "error", cerr)
		}
	}()

	st, err := f.Stat()
	if err != nil {
		return out, err
	}

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return out, fmt.Errorf("hash: %w", err)
	}
	sum := h.Sum(nil)

	out = entity.CardFile{
		ID:          uuid.New(),
		SourceID:    hex.EncodeToString(sum),
		SourcePath:  abs,
		Filename:    filepath.Base(abs),
		FileExt:     ext,
		FileSize:    int(st.Size()),
		ContentHash: sum,
		UploadedAt:  time.Now().UTC(),
	}
	return out, nil
}

// IngestDirectory walks root, skips hidden entries if requested, and calls
// IngestPath for each matching file. Files with identical content hashes
// are reported once; later duplicates count as deduplicated.
func (i *FSIngestor) IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var results []IngestionResult
	var stats DirStats
	seen := make(map[string]struct{})

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{File: entity.CardFile{SourcePath: path}, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !i.allowedExt(constants.NormalizeExt(filepath.Ext(path))) {
			return nil
		}
		stats.Matched++

		cf, err := i.IngestPath(ctx, path)
		if err != nil {
			results = append(results, IngestionResult{File: entity.CardFile{SourcePath: path}, Err: err.Error()})
			stats.Failed++
			return nil
		}
		if _, dup := seen[cf.SourceID]; dup {
			stats.Deduplicated++
			return nil
		}
		seen[cf.SourceID] = struct{}{}

		results = append(results, IngestionResult{File: cf})
		stats.Succeeded++
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}

func (i *FSIngestor) allowedExt(ext string) bool {
	exts := i.AllowedExts
	if exts == nil {
		exts = constants.AllowedExtensions
	}
	_, ok := exts[constants.NormalizeExt(ext)]
	return ok
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
