package extract

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	rePhone = regexp.MustCompile(`(?:\+?\d{1,3}[\s\-.]?)?\(?\d{2,4}\)?[\s\-.]?\d{3}[\s\-.]?\d{3,5}(?:\s*(?:x|ext\.?)\s*\d{1,5})?`)
	reExt   = regexp.MustCompile(`(?i)\s*(?:x|ext\.?)\s*\d{1,5}$`)

	phoneLabels = []string{"tel", "phone", "mobile", "cell", "fax", "office", "direct"}
)

// PhoneDetector matches digit groups with optional separators, parentheses
// and extension markers. All matches on a card are kept; multiplicity is
// resolved as a set, not a single winner.
type PhoneDetector struct{}

func (PhoneDetector) Field() FieldType { return FieldPhone }

func (PhoneDetector) Detect(lines []string) []Candidate {
	var out []Candidate
	for i, ln := range lines {
		if reEmail.MatchString(ln) {
			// digit runs inside an address line are usually part of the email
			continue
		}
		for _, m := range rePhone.FindAllString(ln, -1) {
			if NormalizePhone(m) == "" {
				continue
			}
			conf := 0.70
			if labeledPhoneLine(ln) || strings.HasPrefix(m, "+") || strings.HasPrefix(m, "(") {
				conf = 0.85
			}
			out = append(out, Candidate{Field: FieldPhone, Value: m, Line: i, Confidence: conf})
		}
	}
	return out
}

func labeledPhoneLine(line string) bool {
	l := strings.ToLower(line)
	for _, kw := range phoneLabels {
		if strings.Contains(l, kw) {
			return true
		}
	}
	return false
}

// NormalizePhone reduces a matched number to canonical digit form: the
// extension is dropped and every non-digit removed. Returns "" when the
// digit count falls outside the 7–15 bound. Idempotent: a canonical value
// normalizes to itself.
func NormalizePhone(v string) string {
	v = reExt.ReplaceAllString(v, "")
	var b strings.Builder
	for _, r := range v {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) < 7 || len(digits) > 15 {
		return ""
	}
	return digits
}
