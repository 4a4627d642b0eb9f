package workspace

import (
	"context"
	"sync"

	"github.com/doculens/doculens/internal/catalog"
	"github.com/doculens/doculens/internal/domain"
	"github.com/rs/zerolog/log"
)

// SessionState tracks the workspace session lifecycle. There is one session
// per process, reset on every run.
type SessionState int

const (
	StateUninitialized SessionState = iota
	StateInitializing
	StateActive
	StateTornDown
)

func (s SessionState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateActive:
		return "active"
	case StateTornDown:
		return "torn-down"
	default:
		return "unknown"
	}
}

// Options configures a workspace.
type Options struct {
	// DocumentLimit is the session upload quota. Zero or below disables
	// uploads.
	DocumentLimit int

	// MaxUploadBytes is the advisory client-side upload size ceiling. Zero
	// disables the check.
	MaxUploadBytes int64
}

// Workspace is the session-scoped document workspace: it owns the catalog
// store and the three pipelines, and manages the session lifecycle from
// start to teardown. It replaces ambient globals with one explicit context
// object constructed at startup and handed to the UI.
type Workspace struct {
	backend      domain.Backend
	notifier     domain.SessionNotifier
	store        *catalog.Store
	uploader     *Uploader
	deleter      *Deleter
	orchestrator *Orchestrator
	summaries    domain.SummaryProvider
	limit        int

	mu       sync.Mutex
	state    SessionState
	teardown sync.Once
}

// New assembles a workspace. summaries may be nil; confirm must obtain user
// confirmation before deletions.
func New(b domain.Backend, notifier domain.SessionNotifier, confirm domain.Confirmer, summaries domain.SummaryProvider, opts Options) *Workspace {
	store := catalog.NewStore()
	return &Workspace{
		backend:      b,
		notifier:     notifier,
		store:        store,
		uploader:     NewUploader(store, b, opts.DocumentLimit, opts.MaxUploadBytes),
		deleter:      NewDeleter(store, b, confirm, summaries),
		orchestrator: NewOrchestrator(b),
		summaries:    summaries,
		limit:        opts.DocumentLimit,
	}
}

// Store returns the catalog store.
func (w *Workspace) Store() *catalog.Store { return w.store }

// Uploader returns the upload pipeline.
func (w *Workspace) Uploader() *Uploader { return w.uploader }

// Deleter returns the deletion workflow.
func (w *Workspace) Deleter() *Deleter { return w.deleter }

// Orchestrator returns the query orchestrator.
func (w *Workspace) Orchestrator() *Orchestrator { return w.orchestrator }

// Summaries returns the summary provider, or nil when none is wired.
func (w *Workspace) Summaries() domain.SummaryProvider { return w.summaries }

// DocumentLimit returns the session upload quota.
func (w *Workspace) DocumentLimit() int { return w.limit }

// State returns the current session state.
func (w *Workspace) State() SessionState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Start brings the session up: reset server-side state, then populate the
// catalog. Either step may fail without blocking the workspace; failures are
// logged and the session still reaches Active so the UI stays usable, with
// an empty catalog in the worst case. A second call is a no-op.
func (w *Workspace) Start(ctx context.Context) {
	w.mu.Lock()
	if w.state != StateUninitialized {
		w.mu.Unlock()
		return
	}
	w.state = StateInitializing
	w.mu.Unlock()

	if err := w.backend.ResetSession(ctx); err != nil {
		log.Warn().Err(err).Msg("session reset failed; continuing against existing server-side state")
	}

	records, err := w.backend.ListDocuments(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch document catalog; starting with an empty workspace")
		records = nil
	}
	w.store.Initialize(records)

	w.mu.Lock()
	w.state = StateActive
	w.mu.Unlock()

	log.Info().Int("documents", w.store.Len()).Msg("workspace session active")
}

// Teardown ends the session exactly once, firing the best-effort session
// reset notification. Subsequent calls are no-ops, so it may be wired to
// multiple exit triggers (UI quit, OS signal) and fire on whichever comes
// first.
func (w *Workspace) Teardown() {
	w.teardown.Do(func() {
		w.mu.Lock()
		w.state = StateTornDown
		w.mu.Unlock()

		w.notifier.NotifyReset()
		log.Info().Msg("workspace session torn down")
	})
}
