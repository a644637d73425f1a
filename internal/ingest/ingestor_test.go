package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIngestPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "card.png", []byte("fake image bytes"))

	cf, err := NewFSIngestor(nil).IngestPath(context.Background(), path)
	if err != nil {
		t.Fatalf("IngestPath: %v", err)
	}
	if cf.Filename != "card.png" || cf.FileExt != "png" {
		t.Errorf("file = %q ext = %q", cf.Filename, cf.FileExt)
	}
	if cf.FileSize != len("fake image bytes") {
		t.Errorf("size = %d", cf.FileSize)
	}
	if len(cf.SourceID) != 64 {
		t.Errorf("source id = %q, want hex sha-256", cf.SourceID)
	}

	// same content elsewhere keeps the same source id
	other := writeFile(t, dir, "renamed.png", []byte("fake image bytes"))
	cf2, err := NewFSIngestor(nil).IngestPath(context.Background(), other)
	if err != nil {
		t.Fatalf("IngestPath: %v", err)
	}
	if cf2.SourceID != cf.SourceID {
		t.Errorf("source ids differ for identical content: %q vs %q", cf2.SourceID, cf.SourceID)
	}
}

func TestIngestPathRejectsUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", []byte("hello"))
	if _, err := NewFSIngestor(nil).IngestPath(context.Background(), path); err == nil {
		t.Error("txt file accepted")
	}
}

func TestIngestDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.png", []byte("card a"))
	writeFile(t, dir, "b.jpg", []byte("card b"))
	writeFile(t, dir, "copy-of-a.png", []byte("card a")) // duplicate content
	writeFile(t, dir, "skip.txt", []byte("not a card"))
	writeFile(t, dir, ".hidden/secret.png", []byte("hidden card"))

	results, stats, err := NewFSIngestor(nil).IngestDirectory(context.Background(), dir, true)
	if err != nil {
		t.Fatalf("IngestDirectory: %v", err)
	}
	if stats.Succeeded != 2 {
		t.Errorf("succeeded = %d, want 2 (%+v)", stats.Succeeded, stats)
	}
	if stats.Deduplicated != 1 {
		t.Errorf("deduplicated = %d, want 1", stats.Deduplicated)
	}
	if stats.Failed != 0 {
		t.Errorf("failed = %d, want 0", stats.Failed)
	}

	names := map[string]bool{}
	for _, r := range results {
		if r.Err != "" {
			t.Errorf("unexpected per-file error: %+v", r)
			continue
		}
		names[r.File.Filename] = true
	}
	if names["secret.png"] {
		t.Error("hidden directory was not skipped")
	}
	if names["skip.txt"] {
		t.Error("unsupported extension was ingested")
	}
}

func TestIsHidden(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/drop/.DS_Store", true},
		{"/drop/.sync/card.png", false}, // only the leaf name counts
		{"/drop/card.png", false},
	}
	for _, tt := range tests {
		if got := IsHidden(tt.path); got != tt.want {
			t.Errorf("IsHidden(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
