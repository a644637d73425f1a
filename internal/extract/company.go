package extract

import "strings"

// companySuffixes mark a line as an organization name.
var companySuffixes = map[string]struct{}{
	"inc":          {},
	"llc":          {},
	"llp":          {},
	"ltd":          {},
	"plc":          {},
	"corp":         {},
	"co":           {},
	"gmbh":         {},
	"ag":           {},
	"sa":           {},
	"group":        {},
	"company":      {},
	"corporation":  {},
	"limited":      {},
	"incorporated": {},
	"associates":   {},
	"partners":     {},
	"studio":       {},
	"agency":       {},
}

// CompanyDetector matches lines carrying a company-suffix token. Cards
// without any suffix fall back to the resolver's unclaimed-line heuristic.
type CompanyDetector struct{}

func (CompanyDetector) Field() FieldType { return FieldCompany }

func (CompanyDetector) Detect(lines []string) []Candidate {
	var out []Candidate
	for i, ln := range lines {
		if reEmail.MatchString(ln) {
			continue
		}
		if !containsCompanySuffix(ln) {
			continue
		}
		out = append(out, Candidate{Field: FieldCompany, Value: ln, Line: i, Confidence: 0.90})
	}
	return out
}

func containsCompanySuffix(ln string) bool {
	for _, tok := range strings.Fields(strings.ToLower(ln)) {
		tok = strings.Trim(tok, ".,;:()")
		if _, ok := companySuffixes[tok]; ok {
			return true
		}
	}
	return false
}
