package constants

// Outcome is the terminal result of processing one source file.
type Outcome string

// Stable values (store these exact strings in the ledger).
const (
	OutcomeAccepted Outcome = "ACCEPTED" // contact assembled, eligible for upsert
	OutcomeSkipped  Outcome = "SKIPPED"  // terminal, but no upsert (see skip reason)
)

// FileState tracks a file through the per-file state machine:
// FETCHED -> OCRD -> PARSED -> {ACCEPTED|SKIPPED} -> RECORDED.
type FileState string

const (
	StateFetched  FileState = "FETCHED"
	StateOCRd     FileState = "OCRD"
	StateParsed   FileState = "PARSED"
	StateRecorded FileState = "RECORDED"
)

// Skip reasons surfaced to operator logs.
const (
	SkipReasonNoEmail = "no email"
	SkipReasonNoText  = "no text extracted"
)
