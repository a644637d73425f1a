// Package extract converts noisy multi-line OCR output from a scanned
// business card into a structured contact record. The pipeline is
// normalize -> detect -> resolve -> assemble; every stage is a pure
// function, so one extraction pass per file can run concurrently with
// others without shared state.
package extract

import "github.com/tunde-ajayi/cardscan/internal/entity"

// Contact runs the full extraction pass over raw OCR lines for one source
// file. A nil or empty input is valid and yields a skipped record with no
// extractable fields; it never fails.
func Contact(sourceFileID string, rawLines []string) *entity.ContactRecord {
	lines := NormalizeLines(rawLines)
	candidates := RunDetectors(lines, DefaultDetectors())
	resolution := Resolve(lines, candidates)
	return Assemble(sourceFileID, resolution)
}
