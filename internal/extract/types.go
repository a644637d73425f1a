package extract

// FieldType identifies which contact field a candidate belongs to.
type FieldType string

const (
	FieldEmail   FieldType = "email"
	FieldPhone   FieldType = "phone"
	FieldWebsite FieldType = "website"
	FieldName    FieldType = "name"
	FieldTitle   FieldType = "title"
	FieldCompany FieldType = "company"
)

// Tunable scoring constants. Confidence is a bounded rank score, not a
// probability; these values were picked against sample cards and can be
// adjusted without touching detector logic.
const (
	// AcceptThreshold is the confidence above which a candidate claims its
	// source line exclusively, removing competing candidates of other field
	// types from that line before resolution.
	AcceptThreshold = 0.80

	// ConfidenceFloor is the minimum confidence for a candidate to resolve
	// at all; below it the field stays absent.
	ConfidenceFloor = 0.40

	// headWindow bounds how far down the card the name/company heuristics
	// look. Printed names sit near the top of almost every layout.
	headWindow = 6
)

// Candidate is a provisional field value proposed by one detector.
type Candidate struct {
	Field      FieldType
	Value      string
	Line       int
	Confidence float64
}

// ResolvedField is the single winning value for a field type, with the
// source line retained for diagnostics.
type ResolvedField struct {
	Value      string
	Line       int
	Confidence float64
}

// Resolution holds one winner per single-valued field plus the full set of
// normalized phone numbers (the only field with multiplicity).
type Resolution struct {
	Fields map[FieldType]ResolvedField
	Phones []ResolvedField
}

// fieldPriority makes line-claim tie-breaks deterministic when two
// candidates on the same line have equal confidence.
var fieldPriority = map[FieldType]int{
	FieldEmail:   0,
	FieldPhone:   1,
	FieldWebsite: 2,
	FieldName:    3,
	FieldTitle:   4,
	FieldCompany: 5,
}
