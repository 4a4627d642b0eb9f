package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/doculens/doculens/internal/domain"
	"github.com/doculens/doculens/internal/workspace"
)

// statusClearDelay is how long a transient status message stays visible.
const statusClearDelay = 5 * time.Second

// PanelFocus tracks which panel has keyboard focus.
type PanelFocus int

const (
	FocusDocuments PanelFocus = iota
	FocusQuestion
)

// inputMode tracks modal input state layered over the normal key handling.
type inputMode int

const (
	modeNormal inputMode = iota
	modeUploadPath
	modeConfirmDelete
)

// Model is the root bubbletea model for the doculens TUI. All state
// mutations happen on the update loop; network operations run as commands
// whose completion messages feed back into it.
type Model struct {
	ws *workspace.Workspace

	// Session state
	started  bool
	starting bool

	// Documents panel
	documents []domain.DocumentRecord
	cursor    int

	// Upload state
	uploading  bool
	uploadPath string

	// Delete confirmation modal
	pendingDelete *DeletePromptMsg

	// Query panel
	question string
	querying bool
	answer   *domain.QueryResult
	queryErr string

	// Summary pane for the selected document
	summary   map[string]any
	summaryID string

	// UI state
	focus      PanelFocus
	mode       inputMode
	status     string
	statusErr  bool
	width      int
	height     int
}

// New creates the TUI model over an assembled workspace.
func New(ws *workspace.Workspace) Model {
	return Model{
		ws:       ws,
		starting: true,
		status:   "Starting session...",
	}
}

// Init starts the workspace session.
func (m Model) Init() tea.Cmd {
	return startSessionCmd(m.ws)
}

// startSessionCmd brings the session up and reports the initial catalog.
func startSessionCmd(ws *workspace.Workspace) tea.Cmd {
	return func() tea.Msg {
		ws.Start(context.Background())
		return SessionStartedMsg{Documents: ws.Store().Documents()}
	}
}

// uploadCmd runs the upload pipeline for the file at path.
func uploadCmd(ws *workspace.Workspace, path string) tea.Cmd {
	return func() tea.Msg {
		record, err := ws.Uploader().Upload(context.Background(), path)
		return UploadResultMsg{Record: record, Err: err}
	}
}

// deleteCmd runs the deletion workflow; the confirmer inside it blocks on the
// modal prompt.
func deleteCmd(ws *workspace.Workspace, id, name string) tea.Cmd {
	return func() tea.Msg {
		deleted, err := ws.Deleter().RequestDelete(context.Background(), id, name)
		return DeleteResultMsg{ID: id, Deleted: deleted, Err: err}
	}
}

// queryCmd submits a question scoped to the selected document.
func queryCmd(ws *workspace.Workspace, question, documentID string) tea.Cmd {
	return func() tea.Msg {
		result, err := ws.Orchestrator().Submit(context.Background(), question, documentID)
		return QueryResultMsg{Result: result, Err: err}
	}
}

// summaryCmd fetches the summary for the selected document.
func summaryCmd(ws *workspace.Workspace, id string) tea.Cmd {
	return func() tea.Msg {
		if ws.Summaries() == nil {
			return SummaryResultMsg{ID: id, Err: fmt.Errorf("summaries not available")}
		}
		summary, err := ws.Summaries().DocumentSummary(context.Background(), id)
		return SummaryResultMsg{ID: id, Summary: summary, Err: err}
	}
}

// clearStatusCmd fires after the transient-status delay.
func clearStatusCmd() tea.Cmd {
	return tea.Tick(statusClearDelay, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case SessionStartedMsg:
		m.started = true
		m.starting = false
		m.documents = msg.Documents
		m.status = fmt.Sprintf("Session active: %d document(s)", len(msg.Documents))
		return m, clearStatusCmd()

	case UploadResultMsg:
		m.uploading = false
		if msg.Err != nil {
			m.setTransientError(uploadFailureText(msg.Err))
		} else {
			m.documents = m.ws.Store().Documents()
			m.status = "Document uploaded and processed successfully!"
			m.statusErr = false
		}
		return m, clearStatusCmd()

	case DeletePromptMsg:
		m.pendingDelete = &msg
		m.mode = modeConfirmDelete
		return m, nil

	case DeleteResultMsg:
		if msg.Err != nil {
			m.setTransientError(workspace.Reason(msg.Err, "Failed to delete document"))
			return m, clearStatusCmd()
		}
		if msg.Deleted {
			m.documents = m.ws.Store().Documents()
			if m.cursor >= len(m.documents) && m.cursor > 0 {
				m.cursor = len(m.documents) - 1
			}
			if m.summaryID == msg.ID {
				m.summary = nil
				m.summaryID = ""
			}
			m.status = "Document deleted"
			m.statusErr = false
			return m, clearStatusCmd()
		}
		return m, nil

	case QueryResultMsg:
		m.querying = false
		if msg.Err != nil {
			m.answer = nil
			m.queryErr = m.ws.Orchestrator().ErrMessage()
			if m.queryErr == "" {
				m.queryErr = validationText(msg.Err)
			}
		} else {
			m.answer = msg.Result
			m.queryErr = ""
			m.question = ""
		}
		return m, nil

	case SummaryResultMsg:
		if msg.Err != nil {
			m.setTransientError(workspace.Reason(msg.Err, "Failed to load summary"))
			return m, clearStatusCmd()
		}
		m.summary = msg.Summary
		m.summaryID = msg.ID
		return m, nil

	case ClearStatusMsg:
		m.status = ""
		m.statusErr = false
		return m, nil
	}

	return m, nil
}

// handleKey processes key presses, honoring the current modal mode first.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == KeyCtrlC {
		m.resolvePendingDelete(false)
		return m, tea.Quit
	}

	switch m.mode {
	case modeConfirmDelete:
		return m.handleConfirmKey(key)
	case modeUploadPath:
		return m.handleUploadPathKey(msg)
	}

	if m.focus == FocusQuestion {
		return m.handleQuestionKey(msg)
	}
	return m.handleDocumentsKey(key)
}

// handleConfirmKey resolves the delete prompt.
func (m Model) handleConfirmKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case KeyYes:
		m.resolvePendingDelete(true)
		m.mode = modeNormal
	case KeyNo, KeyEsc:
		m.resolvePendingDelete(false)
		m.mode = modeNormal
	}
	return m, nil
}

// handleUploadPathKey edits the upload path prompt.
func (m Model) handleUploadPathKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyEsc:
		m.mode = modeNormal
		m.uploadPath = ""
		return m, nil
	case KeyEnter:
		path := strings.TrimSpace(m.uploadPath)
		m.mode = modeNormal
		m.uploadPath = ""
		if path == "" {
			return m, nil
		}
		m.uploading = true
		m.status = "Uploading..."
		m.statusErr = false
		return m, uploadCmd(m.ws, path)
	case "backspace":
		if len(m.uploadPath) > 0 {
			m.uploadPath = m.uploadPath[:len(m.uploadPath)-1]
		}
		return m, nil
	}
	if msg.Type == tea.KeyRunes {
		m.uploadPath += string(msg.Runes)
	} else if msg.Type == tea.KeySpace {
		m.uploadPath += " "
	}
	return m, nil
}

// handleQuestionKey edits and submits the question input.
func (m Model) handleQuestionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyTab:
		m.focus = FocusDocuments
		return m, nil
	case KeyEsc:
		if m.queryErr != "" {
			m.queryErr = ""
			m.ws.Orchestrator().DismissError()
			return m, nil
		}
		m.focus = FocusDocuments
		return m, nil
	case KeyEnter:
		return m.submitQuestion()
	case "backspace":
		if len(m.question) > 0 {
			m.question = m.question[:len(m.question)-1]
		}
		return m, nil
	}
	if msg.Type == tea.KeyRunes {
		m.question += string(msg.Runes)
	} else if msg.Type == tea.KeySpace {
		m.question += " "
	}
	return m, nil
}

// submitQuestion validates locally before dispatching so the obvious
// rejections surface without a round trip through a command.
func (m Model) submitQuestion() (tea.Model, tea.Cmd) {
	if m.querying {
		return m, nil
	}
	selectedID := m.ws.Store().SelectedID()
	if selectedID == "" {
		m.queryErr = "Select a document from the list to start asking questions"
		return m, nil
	}
	if strings.TrimSpace(m.question) == "" {
		return m, nil
	}
	m.querying = true
	m.queryErr = ""
	return m, queryCmd(m.ws, m.question, selectedID)
}

// handleDocumentsKey navigates and operates on the documents panel.
func (m Model) handleDocumentsKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case KeyQuit:
		return m, tea.Quit

	case KeyTab:
		m.focus = FocusQuestion
		return m, nil

	case KeyJ, KeyDown:
		if m.cursor < len(m.documents)-1 {
			m.cursor++
		}
		return m, nil

	case KeyK, KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case KeyEnter:
		if m.cursor < len(m.documents) {
			doc := m.documents[m.cursor]
			if m.ws.Store().SelectedID() == doc.ID {
				m.ws.Store().ClearSelection()
			} else {
				m.ws.Store().Select(doc.ID)
			}
		}
		return m, nil

	case KeyUpload:
		if m.uploading {
			m.setTransientError("An upload is already in progress")
			return m, clearStatusCmd()
		}
		m.mode = modeUploadPath
		m.uploadPath = ""
		return m, nil

	case KeyDelete:
		if m.cursor < len(m.documents) {
			doc := m.documents[m.cursor]
			return m, deleteCmd(m.ws, doc.ID, doc.Filename)
		}
		return m, nil

	case KeySummary:
		if m.cursor < len(m.documents) {
			return m, summaryCmd(m.ws, m.documents[m.cursor].ID)
		}
		return m, nil
	}

	return m, nil
}

// resolvePendingDelete answers an open delete prompt, if any, so the
// workflow goroutine is never left blocked.
func (m *Model) resolvePendingDelete(confirmed bool) {
	if m.pendingDelete != nil {
		m.pendingDelete.Reply <- confirmed
		m.pendingDelete = nil
	}
}

func (m *Model) setTransientError(text string) {
	m.status = text
	m.statusErr = true
}

// uploadFailureText maps upload pipeline errors to user-facing text.
func uploadFailureText(err error) string {
	switch {
	case errors.Is(err, domain.ErrQuotaExceeded):
		return "Document limit reached for this session"
	case errors.Is(err, domain.ErrBusy):
		return "An upload is already in progress"
	default:
		return workspace.Reason(err, strings.TrimPrefix(err.Error(), "upload failed: "))
	}
}

// validationText maps orchestrator validation errors to user-facing text.
func validationText(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoDocumentSelected):
		return "Select a document from the list to start asking questions"
	case errors.Is(err, domain.ErrEmptyQuestion):
		return "Type a question first"
	case errors.Is(err, domain.ErrBusy):
		return "A question is already being processed"
	default:
		return workspace.Reason(err, "Failed to process query")
	}
}
