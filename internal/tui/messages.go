package tui

import "github.com/doculens/doculens/internal/domain"

// SessionStartedMsg is sent when the workspace session reaches Active.
type SessionStartedMsg struct {
	Documents []domain.DocumentRecord
}

// UploadResultMsg carries the outcome of an upload.
type UploadResultMsg struct {
	Record *domain.DocumentRecord
	Err    error
}

// DeletePromptMsg asks the user to confirm a deletion. The workflow goroutine
// blocks on Reply until the user answers.
type DeletePromptMsg struct {
	Name  string
	Reply chan bool
}

// DeleteResultMsg carries the outcome of a deletion.
type DeleteResultMsg struct {
	ID      string
	Deleted bool
	Err     error
}

// QueryResultMsg carries the outcome of a question.
type QueryResultMsg struct {
	Result *domain.QueryResult
	Err    error
}

// SummaryResultMsg carries a document summary.
type SummaryResultMsg struct {
	ID      string
	Summary map[string]any
	Err     error
}

// ClearStatusMsg clears a transient status message after its delay.
type ClearStatusMsg struct{}
