package extract

import (
	"regexp"
	"strings"
	"unicode"
)

var reEmail = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// EmailDetector matches local@domain.tld shapes. Case is preserved in the
// candidate value; only ranking uses derived features.
type EmailDetector struct{}

func (EmailDetector) Field() FieldType { return FieldEmail }

func (EmailDetector) Detect(lines []string) []Candidate {
	var out []Candidate
	for i, ln := range lines {
		for _, m := range reEmail.FindAllString(ln, -1) {
			conf := 0.65
			if bareEmailLine(ln, m) {
				// the line is "just" the email address
				conf = 0.95
			}
			out = append(out, Candidate{Field: FieldEmail, Value: m, Line: i, Confidence: conf})
		}
	}
	return out
}

// bareEmailLine reports whether the line contains no alphabetic tokens
// beyond the matched address itself.
func bareEmailLine(line, match string) bool {
	rest := strings.Replace(line, match, "", 1)
	for _, r := range rest {
		if unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
