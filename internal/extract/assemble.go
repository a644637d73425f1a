package extract

import (
	"github.com/tunde-ajayi/cardscan/constants"
	"github.com/tunde-ajayi/cardscan/internal/entity"
)

// Assemble builds the final ContactRecord from resolved fields and applies
// the required-field policy: no email means the record is skipped and must
// not reach the upsert. Pure function; no I/O.
func Assemble(sourceFileID string, res Resolution) *entity.ContactRecord {
	rec := &entity.ContactRecord{
		SourceFileID: sourceFileID,
		Provenance:   make(map[string]int),
	}

	if f, ok := res.Fields[FieldEmail]; ok {
		rec.Email = f.Value
		rec.Provenance[string(FieldEmail)] = f.Line
	}
	if f, ok := res.Fields[FieldName]; ok {
		rec.Name = f.Value
		rec.Provenance[string(FieldName)] = f.Line
	}
	if f, ok := res.Fields[FieldTitle]; ok {
		rec.Title = f.Value
		rec.Provenance[string(FieldTitle)] = f.Line
	}
	if f, ok := res.Fields[FieldCompany]; ok {
		rec.Company = f.Value
		rec.Provenance[string(FieldCompany)] = f.Line
	}
	if f, ok := res.Fields[FieldWebsite]; ok {
		rec.Website = f.Value
		rec.Provenance[string(FieldWebsite)] = f.Line
	}
	for _, p := range res.Phones {
		rec.Phones = append(rec.Phones, p.Value)
	}

	if rec.Email == "" {
		rec.Outcome = constants.OutcomeSkipped
		rec.SkipReason = constants.SkipReasonNoEmail
		return rec
	}
	rec.Outcome = constants.OutcomeAccepted
	return rec
}
