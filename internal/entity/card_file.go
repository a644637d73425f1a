package entity

import (
	"time"

	"github.com/google/uuid"
)

// CardFile represents one ingested business-card file for data transfer between layers.
//
// SourceID is the stable identifier used for idempotency across runs. For
// filesystem sources it is the hex-encoded SHA-256 of the file contents, so
// the same card re-ingested under a different path is still recognized.
type CardFile struct {
	ID          uuid.UUID `json:"id"`
	SourceID    string    `json:"source_id"`
	SourcePath  string    `json:"source_path"`
	Filename    string    `json:"filename"`
	FileExt     string    `json:"file_ext"`
	FileSize    int       `json:"file_size"`
	ContentHash []byte    `json:"content_hash"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
