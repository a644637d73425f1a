package extract

import (
	"regexp"
	"strings"
)

var reWebsite = regexp.MustCompile(`(?i)\b(?:https?://)?(?:www\.)?[a-z0-9\-]+(?:\.[a-z]{2,})+(?:/[^\s]*)?`)

// WebsiteDetector matches www. or bare domain-with-TLD patterns that were
// not already consumed as part of an email address.
type WebsiteDetector struct{}

func (WebsiteDetector) Field() FieldType { return FieldWebsite }

func (WebsiteDetector) Detect(lines []string) []Candidate {
	var out []Candidate
	for i, ln := range lines {
		emailSpans := reEmail.FindAllStringIndex(ln, -1)
		for _, span := range reWebsite.FindAllStringIndex(ln, -1) {
			if overlapsAny(span, emailSpans) {
				continue
			}
			m := ln[span[0]:span[1]]
			conf := 0.55 // bare domain
			l := strings.ToLower(m)
			if strings.HasPrefix(l, "http") || strings.HasPrefix(l, "www.") {
				conf = 0.90
			}
			out = append(out, Candidate{Field: FieldWebsite, Value: m, Line: i, Confidence: conf})
		}
	}
	return out
}

func overlapsAny(span []int, spans [][]int) bool {
	for _, s := range spans {
		if span[0] < s[1] && s[0] < span[1] {
			return true
		}
	}
	return false
}
