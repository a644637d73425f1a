package extract

import "strings"

// titleKeywords is the closed vocabulary of role words. Matched
// case-insensitively on whole tokens.
var titleKeywords = map[string]struct{}{
	"manager":     {},
	"director":    {},
	"ceo":         {},
	"cto":         {},
	"cfo":         {},
	"coo":         {},
	"founder":     {},
	"co-founder":  {},
	"cofounder":   {},
	"president":   {},
	"vp":          {},
	"owner":       {},
	"principal":   {},
	"partner":     {},
	"engineer":    {},
	"developer":   {},
	"consultant":  {},
	"analyst":     {},
	"designer":    {},
	"architect":   {},
	"specialist":  {},
	"coordinator": {},
	"officer":     {},
	"head":        {},
	"lead":        {},
	"agent":       {},
	"broker":      {},
	"realtor":     {},
}

// TitleDetector matches lines containing a role keyword.
type TitleDetector struct{}

func (TitleDetector) Field() FieldType { return FieldTitle }

func (TitleDetector) Detect(lines []string) []Candidate {
	var out []Candidate
	for i, ln := range lines {
		if reEmail.MatchString(ln) {
			continue
		}
		if !containsTitleKeyword(ln) {
			continue
		}
		conf := 0.80
		if len(strings.Fields(ln)) <= 4 {
			// short lines are almost always a pure role designation
			conf = 0.90
		}
		out = append(out, Candidate{Field: FieldTitle, Value: ln, Line: i, Confidence: conf})
	}
	return out
}

func containsTitleKeyword(ln string) bool {
	for _, tok := range strings.Fields(strings.ToLower(ln)) {
		tok = strings.Trim(tok, ".,;:()")
		if _, ok := titleKeywords[tok]; ok {
			return true
		}
	}
	return false
}
