package extract

import "strings"

// Resolve reconciles competing candidates into at most one winner per field
// type (phones keep multiplicity). Rules, in order:
//
//  1. Line claiming: on each line, the strongest candidate at or above
//     AcceptThreshold claims the line; candidates of other field types on
//     that line are dropped. One line never feeds two different fields.
//  2. Per-field selection: highest confidence wins; ties break to the
//     earliest line (text higher on the card). Candidates below
//     ConfidenceFloor never resolve.
//  3. Phones: every distinct normalized number above the floor is kept,
//     in line order.
//  4. Company fallback: with no suffix-bearing line, the highest-positioned
//     unclaimed multi-token line near the top that is not the name becomes
//     the company.
func Resolve(lines []string, candidates []Candidate) Resolution {
	candidates = claimLines(candidates)

	res := Resolution{Fields: make(map[FieldType]ResolvedField)}
	for _, c := range candidates {
		if c.Confidence < ConfidenceFloor {
			continue
		}
		if c.Field == FieldPhone {
			continue // handled as a set below
		}
		best, ok := res.Fields[c.Field]
		if !ok || c.Confidence > best.Confidence ||
			(c.Confidence == best.Confidence && c.Line < best.Line) {
			res.Fields[c.Field] = ResolvedField{Value: c.Value, Line: c.Line, Confidence: c.Confidence}
		}
	}

	res.Phones = resolvePhones(candidates)

	if _, ok := res.Fields[FieldCompany]; !ok {
		if fb, ok := companyFallback(lines, res); ok {
			res.Fields[FieldCompany] = fb
		}
	}
	return res
}

// claimLines enforces mutual exclusion: a candidate whose confidence clears
// AcceptThreshold removes same-line candidates of other field types.
func claimLines(candidates []Candidate) []Candidate {
	claims := make(map[int]FieldType)
	strength := make(map[int]float64)
	for _, c := range candidates {
		if c.Confidence < AcceptThreshold {
			continue
		}
		cur, claimed := claims[c.Line]
		switch {
		case !claimed:
			claims[c.Line], strength[c.Line] = c.Field, c.Confidence
		case c.Confidence > strength[c.Line]:
			claims[c.Line], strength[c.Line] = c.Field, c.Confidence
		case c.Confidence == strength[c.Line] && fieldPriority[c.Field] < fieldPriority[cur]:
			claims[c.Line], strength[c.Line] = c.Field, c.Confidence
		}
	}

	kept := candidates[:0:0]
	for _, c := range candidates {
		if owner, claimed := claims[c.Line]; claimed && owner != c.Field {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// resolvePhones normalizes and deduplicates every surviving phone
// candidate, preserving card order.
func resolvePhones(candidates []Candidate) []ResolvedField {
	seen := make(map[string]struct{})
	var phones []ResolvedField
	for _, c := range candidates {
		if c.Field != FieldPhone || c.Confidence < ConfidenceFloor {
			continue
		}
		n := NormalizePhone(c.Value)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		phones = append(phones, ResolvedField{Value: n, Line: c.Line, Confidence: c.Confidence})
	}
	return phones
}

// companyFallback picks the highest-positioned line in the head window that
// no resolved field consumed: the historical behavior of treating the
// second leftover header line as the organization.
func companyFallback(lines []string, res Resolution) (ResolvedField, bool) {
	used := make(map[int]struct{})
	for _, f := range res.Fields {
		used[f.Line] = struct{}{}
	}
	for _, p := range res.Phones {
		used[p.Line] = struct{}{}
	}

	limit := headWindow
	if len(lines) < limit {
		limit = len(lines)
	}
	for i := 0; i < limit; i++ {
		if _, taken := used[i]; taken {
			continue
		}
		ln := lines[i]
		if len(strings.Fields(ln)) < 2 {
			continue
		}
		if reEmail.MatchString(ln) || reWebsite.MatchString(ln) || rePhone.MatchString(ln) {
			continue
		}
		return ResolvedField{Value: ln, Line: i, Confidence: ConfidenceFloor}, true
	}
	return ResolvedField{}, false
}
