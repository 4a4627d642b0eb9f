package domain

import (
	"context"
	"io"
)

// Backend is the remote document-analysis API consumed by the workspace.
// Ingestion, catalog, query and session reset are all served by the same
// deployment, so one interface covers the four collaborators.
type Backend interface {
	// ResetSession clears server-side session state.
	ResetSession(ctx context.Context) error

	// ListDocuments returns all documents known to the current session.
	ListDocuments(ctx context.Context) ([]DocumentRecord, error)

	// Upload submits a file and returns the resulting document record.
	Upload(ctx context.Context, filename string, content io.Reader) (*DocumentRecord, error)

	// DeleteDocument removes a document remotely.
	DeleteDocument(ctx context.Context, id string) error

	// Query asks a question scoped to a document.
	Query(ctx context.Context, req QueryRequest) (*QueryResult, error)

	// DocumentSummary returns implementation-defined summary data for a
	// document.
	DocumentSummary(ctx context.Context, id string) (map[string]any, error)
}

// SessionNotifier delivers the best-effort session reset sent at teardown.
// Implementations must not block the caller beyond a short bound and must
// never panic or return on delivery failure.
type SessionNotifier interface {
	NotifyReset()
}

// Confirmer obtains explicit user confirmation before a destructive action.
// ConfirmDelete blocks until the user answers, naming the document being
// deleted.
type Confirmer interface {
	ConfirmDelete(displayName string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(displayName string) bool

// ConfirmDelete calls f.
func (f ConfirmerFunc) ConfirmDelete(displayName string) bool { return f(displayName) }

// SummaryProvider serves document summaries, possibly from a cache.
type SummaryProvider interface {
	DocumentSummary(ctx context.Context, id string) (map[string]any, error)

	// Invalidate drops any cached summary for the document.
	Invalidate(id string)
}
