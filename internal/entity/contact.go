package entity

import "github.com/tunde-ajayi/cardscan/constants"

// ContactRecord is the structured output of one extraction pass.
//
// Email is the only mandatory field: a record without one carries
// Outcome=SKIPPED and must not reach the mailing-list upsert. Phones are
// deduplicated and normalized to canonical digit form.
type ContactRecord struct {
	Name    string   `json:"name,omitempty"`
	Title   string   `json:"title,omitempty"`
	Company string   `json:"company,omitempty"`
	Email   string   `json:"email"`
	Phones  []string `json:"phones,omitempty"`
	Website string   `json:"website,omitempty"`

	SourceFileID string            `json:"source_file_id"`
	Outcome      constants.Outcome `json:"outcome"`
	SkipReason   string            `json:"skip_reason,omitempty"`
	Provenance   map[string]int    `json:"provenance,omitempty"` // field -> source line index
}

// Accepted reports whether the record cleared the required-field policy.
func (r *ContactRecord) Accepted() bool {
	return r.Outcome == constants.OutcomeAccepted
}
