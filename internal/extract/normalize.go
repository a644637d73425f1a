package extract

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeLines cleans the raw OCR line sequence: NFC normalization,
// whitespace collapsing, noise-line removal, and line-wrap repair.
// Pure transform; nil input yields an empty sequence.
func NormalizeLines(raw []string) []string {
	cleaned := make([]string, 0, len(raw))
	for _, ln := range raw {
		ln = norm.NFC.String(ln)
		ln = strings.Join(strings.Fields(ln), " ")
		if ln == "" || noiseOnly(ln) {
			continue
		}
		cleaned = append(cleaned, ln)
	}
	return mergeWrappedLines(cleaned)
}

// noiseOnly reports whether a line has no letters or digits left, which on
// scanned cards is usually a ruled line or border read as punctuation.
func noiseOnly(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// mergeWrappedLines repairs OCR line-wrap artifacts: a line ending mid-word
// (trailing hyphen, or no terminal punctuation followed by a
// lowercase-starting line) is joined with its successor. Lines that look
// like standalone field values (emails, URLs, digit runs) are never merged,
// so a wrap repair cannot fuse two unrelated fields onto one line.
func mergeWrappedLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		cur := lines[i]
		for i+1 < len(lines) && shouldMerge(cur, lines[i+1]) {
			next := lines[i+1]
			if strings.HasSuffix(cur, "-") {
				cur = strings.TrimSuffix(cur, "-") + next
			} else {
				cur = cur + " " + next
			}
			i++
		}
		out = append(out, cur)
	}
	return out
}

func shouldMerge(cur, next string) bool {
	if cur == "" || next == "" {
		return false
	}
	if looksStandalone(cur) || looksStandalone(next) {
		return false
	}
	if strings.HasSuffix(cur, "-") {
		return true
	}
	last := rune(cur[len(cur)-1])
	if !unicode.IsLetter(last) {
		return false
	}
	first := []rune(next)[0]
	return unicode.IsLetter(first) && unicode.IsLower(first)
}

// looksStandalone reports whether a line reads as a complete field value on
// its own (email, URL, or mostly digits) rather than prose that wrapped.
func looksStandalone(s string) bool {
	if reEmail.MatchString(s) || reWebsite.MatchString(s) {
		return true
	}
	digits := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= len(s)/2 && digits > 0
}
