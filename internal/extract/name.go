package extract

import (
	"strings"
	"unicode"
)

// NameDetector prefers title-cased lines of 2–4 tokens near the top of the
// card that no other detector's pattern can explain. Confidence drops with
// line index (printed names sit high) and rises with the proper-case ratio.
type NameDetector struct{}

func (NameDetector) Field() FieldType { return FieldName }

func (NameDetector) Detect(lines []string) []Candidate {
	var out []Candidate
	limit := headWindow
	if len(lines) < limit {
		limit = len(lines)
	}
	for i := 0; i < limit; i++ {
		ln := lines[i]
		if !nameShaped(ln) {
			continue
		}
		tokens := strings.Fields(ln)
		conf := 0.9*properCaseRatio(tokens) - 0.05*float64(i)
		if conf < 0 {
			conf = 0
		}
		out = append(out, Candidate{Field: FieldName, Value: ln, Line: i, Confidence: conf})
	}
	return out
}

// nameShaped applies the structural filters: 2–4 tokens, no digits, and no
// match against the email/phone/website/title/company patterns.
func nameShaped(ln string) bool {
	if strings.ContainsAny(ln, "0123456789") {
		return false
	}
	tokens := strings.Fields(ln)
	if len(tokens) < 2 || len(tokens) > 4 {
		return false
	}
	if reEmail.MatchString(ln) || reWebsite.MatchString(ln) || rePhone.MatchString(ln) {
		return false
	}
	if containsTitleKeyword(ln) || containsCompanySuffix(ln) {
		return false
	}
	return true
}

// properCaseRatio is the fraction of tokens starting with an uppercase letter.
func properCaseRatio(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	proper := 0
	for _, t := range tokens {
		r := []rune(t)[0]
		if unicode.IsUpper(r) {
			proper++
		}
	}
	return float64(proper) / float64(len(tokens))
}
