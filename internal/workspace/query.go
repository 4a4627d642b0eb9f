package workspace

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/doculens/doculens/internal/backend"
	"github.com/doculens/doculens/internal/domain"
)

// maxCitations is the citation cap requested from the query endpoint.
const maxCitations = 5

// QueryState is the orchestrator's observable state.
type QueryState int

const (
	// QueryIdle means no question has been asked yet, or the last outcome
	// was dismissed.
	QueryIdle QueryState = iota
	// QuerySubmitting means a question is in flight.
	QuerySubmitting
	// QueryAnswered means the last question produced a result.
	QueryAnswered
	// QueryFailed means the last question produced an error.
	QueryFailed
)

// Orchestrator coordinates the single in-flight question/answer exchange.
// Exactly one result or error is visible at any time; a new submission
// replaces the previous outcome rather than stacking on it.
type Orchestrator struct {
	backend domain.Backend

	mu         sync.Mutex
	submitting bool
	result     *domain.QueryResult
	errMsg     string
}

// NewOrchestrator creates the query orchestrator.
func NewOrchestrator(b domain.Backend) *Orchestrator {
	return &Orchestrator{backend: b}
}

// Submit asks a question scoped to the selected document. It rejects with
// domain.ErrNoDocumentSelected or domain.ErrEmptyQuestion before any network
// call, and with domain.ErrBusy while a prior question is still in flight.
func (o *Orchestrator) Submit(ctx context.Context, question, documentID string) (*domain.QueryResult, error) {
	question = strings.TrimSpace(question)
	if documentID == "" {
		return nil, domain.ErrNoDocumentSelected
	}
	if question == "" {
		return nil, domain.ErrEmptyQuestion
	}

	o.mu.Lock()
	if o.submitting {
		o.mu.Unlock()
		return nil, domain.ErrBusy
	}
	o.submitting = true
	o.mu.Unlock()

	result, err := o.backend.Query(ctx, domain.QueryRequest{
		Question:         question,
		DocumentID:       documentID,
		IncludeCitations: true,
		MaxCitations:     maxCitations,
	})

	o.mu.Lock()
	defer o.mu.Unlock()
	o.submitting = false

	if err != nil {
		o.result = nil
		o.errMsg = Reason(err, "Failed to process query")
		return nil, fmt.Errorf("query failed: %w", err)
	}

	o.result = result
	o.errMsg = ""
	return result, nil
}

// State returns the current orchestrator state.
func (o *Orchestrator) State() QueryState {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch {
	case o.submitting:
		return QuerySubmitting
	case o.errMsg != "":
		return QueryFailed
	case o.result != nil:
		return QueryAnswered
	default:
		return QueryIdle
	}
}

// Result returns the currently visible answer, or nil.
func (o *Orchestrator) Result() *domain.QueryResult {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.result
}

// ErrMessage returns the currently visible error message, or "".
func (o *Orchestrator) ErrMessage() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.errMsg
}

// DismissError clears a visible error. It does not affect the ability to
// submit the next question.
func (o *Orchestrator) DismissError() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.errMsg = ""
}

// Reason extracts the backend's human-readable detail from err, falling back
// to the given generic message.
func Reason(err error, fallback string) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
