package domain

import (
	"time"
)

// Document status values. A document moves from processing to processed
// exactly once and never back.
const (
	StatusProcessing = "processing"
	StatusProcessed  = "processed"
)

// DocumentRecord represents one uploaded document in the current session.
//
// ID is the canonical identity for selection, deletion and query scoping.
// The backend does not always return a separate document_id field; when it is
// absent the filename doubles as the identity and the client normalizes it at
// decode time (see EnsureID). After that, ID is used exclusively.
type DocumentRecord struct {
	ID          string    `json:"document_id,omitempty"`
	Filename    string    `json:"filename"`
	Status      string    `json:"status"`
	UploadDate  time.Time `json:"upload_date"`
	TotalPages  int       `json:"total_pages"`
	TotalChunks int       `json:"total_chunks,omitempty"`
}

// EnsureID fills the canonical identity from the filename when the backend
// omitted a dedicated document_id.
func (d *DocumentRecord) EnsureID() {
	if d.ID == "" {
		d.ID = d.Filename
	}
}

// Processed reports whether the document is ready for queries.
func (d DocumentRecord) Processed() bool {
	return d.Status == StatusProcessed
}
