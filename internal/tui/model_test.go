package tui

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doculens/doculens/internal/domain"
	"github.com/doculens/doculens/internal/workspace"
)

// stubBackend is a fixed-response backend for update-loop tests.
type stubBackend struct{}

func (stubBackend) ResetSession(context.Context) error { return nil }

func (stubBackend) ListDocuments(context.Context) ([]domain.DocumentRecord, error) {
	return nil, nil
}

func (stubBackend) Upload(_ context.Context, filename string, _ io.Reader) (*domain.DocumentRecord, error) {
	return &domain.DocumentRecord{ID: filename, Filename: filename, Status: domain.StatusProcessed}, nil
}

func (stubBackend) DeleteDocument(context.Context, string) error { return nil }

func (stubBackend) Query(context.Context, domain.QueryRequest) (*domain.QueryResult, error) {
	return &domain.QueryResult{Answer: "stub"}, nil
}

func (stubBackend) DocumentSummary(context.Context, string) (map[string]any, error) {
	return map[string]any{"pages": 3}, nil
}

type noopNotifier struct{}

func (noopNotifier) NotifyReset() {}

func newTestModel(t *testing.T) Model {
	t.Helper()
	ws := workspace.New(stubBackend{}, noopNotifier{},
		domain.ConfirmerFunc(func(string) bool { return true }), nil,
		workspace.Options{DocumentLimit: 5})
	return New(ws)
}

func sampleDocuments() []domain.DocumentRecord {
	return []domain.DocumentRecord{
		{ID: "report.pdf", Filename: "report.pdf", Status: domain.StatusProcessed, UploadDate: time.Now(), TotalPages: 12},
		{ID: "notes.pdf", Filename: "notes.pdf", Status: domain.StatusProcessing, UploadDate: time.Now(), TotalPages: 3},
	}
}

func TestNewModelStarting(t *testing.T) {
	m := newTestModel(t)

	assert.True(t, m.starting)
	assert.False(t, m.started)
	assert.Equal(t, FocusDocuments, m.focus)
	assert.Equal(t, modeNormal, m.mode)
}

func TestSessionStarted(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(SessionStartedMsg{Documents: sampleDocuments()})
	model := updated.(Model)

	assert.True(t, model.started)
	assert.False(t, model.starting)
	assert.Len(t, model.documents, 2)
	assert.NotNil(t, cmd, "should schedule a status clear")
}

func TestUploadResultSuccess(t *testing.T) {
	m := newTestModel(t)
	m.ws.Store().Initialize(sampleDocuments())
	m.documents = m.ws.Store().Documents()
	m.uploading = true

	rec := &domain.DocumentRecord{ID: "new.pdf", Filename: "new.pdf", Status: domain.StatusProcessed}
	m.ws.Store().InsertFront(*rec)

	updated, cmd := m.Update(UploadResultMsg{Record: rec})
	model := updated.(Model)

	assert.False(t, model.uploading)
	assert.False(t, model.statusErr)
	assert.Len(t, model.documents, 3)
	assert.Equal(t, "new.pdf", model.documents[0].ID)
	assert.NotNil(t, cmd)
}

func TestUploadResultQuotaError(t *testing.T) {
	m := newTestModel(t)
	m.uploading = true

	updated, _ := m.Update(UploadResultMsg{Err: domain.ErrQuotaExceeded})
	model := updated.(Model)

	assert.False(t, model.uploading)
	assert.True(t, model.statusErr)
	assert.Equal(t, "Document limit reached for this session", model.status)
}

func TestDeletePromptOpensModal(t *testing.T) {
	m := newTestModel(t)

	reply := make(chan bool, 1)
	updated, _ := m.Update(DeletePromptMsg{Name: "report.pdf", Reply: reply})
	model := updated.(Model)

	require.NotNil(t, model.pendingDelete)
	assert.Equal(t, modeConfirmDelete, model.mode)
}

func TestConfirmKeyAnswersPrompt(t *testing.T) {
	m := newTestModel(t)
	reply := make(chan bool, 1)
	updated, _ := m.Update(DeletePromptMsg{Name: "report.pdf", Reply: reply})
	m = updated.(Model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	model := updated.(Model)

	assert.Equal(t, modeNormal, model.mode)
	assert.Nil(t, model.pendingDelete)
	select {
	case confirmed := <-reply:
		assert.True(t, confirmed)
	default:
		t.Fatal("prompt was not answered")
	}
}

func TestDeclineKeyAnswersPrompt(t *testing.T) {
	m := newTestModel(t)
	reply := make(chan bool, 1)
	updated, _ := m.Update(DeletePromptMsg{Name: "report.pdf", Reply: reply})
	m = updated.(Model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	model := updated.(Model)

	assert.Equal(t, modeNormal, model.mode)
	select {
	case confirmed := <-reply:
		assert.False(t, confirmed)
	default:
		t.Fatal("prompt was not answered")
	}
}

func TestCtrlCAnswersOpenPrompt(t *testing.T) {
	m := newTestModel(t)
	reply := make(chan bool, 1)
	updated, _ := m.Update(DeletePromptMsg{Name: "report.pdf", Reply: reply})
	m = updated.(Model)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	select {
	case confirmed := <-reply:
		assert.False(t, confirmed, "quit must decline an open prompt")
	default:
		t.Fatal("quit left the workflow goroutine blocked")
	}
}

func TestDeleteResultRefreshesCatalog(t *testing.T) {
	m := newTestModel(t)
	docs := sampleDocuments()
	m.ws.Store().Initialize(docs)
	m.documents = m.ws.Store().Documents()
	m.cursor = 1
	m.summary = map[string]any{"pages": 3}
	m.summaryID = "notes.pdf"

	m.ws.Store().RemoveByID("notes.pdf")
	updated, _ := m.Update(DeleteResultMsg{ID: "notes.pdf", Deleted: true})
	model := updated.(Model)

	assert.Len(t, model.documents, 1)
	assert.Equal(t, 0, model.cursor, "cursor clamps to the shrunken list")
	assert.Nil(t, model.summary, "summary pane for the deleted document clears")
	assert.Empty(t, model.summaryID)
}

func TestDeleteResultDeclinedIsSilent(t *testing.T) {
	m := newTestModel(t)
	m.ws.Store().Initialize(sampleDocuments())
	m.documents = m.ws.Store().Documents()

	updated, cmd := m.Update(DeleteResultMsg{ID: "report.pdf", Deleted: false})
	model := updated.(Model)

	assert.Len(t, model.documents, 2)
	assert.Empty(t, model.status)
	assert.Nil(t, cmd)
}

func TestQueryResultSuccess(t *testing.T) {
	m := newTestModel(t)
	m.querying = true
	m.question = "what is the revenue?"

	result := &domain.QueryResult{Answer: "42", ConfidenceScore: 0.873, ProcessingTime: 1.2}
	updated, _ := m.Update(QueryResultMsg{Result: result})
	model := updated.(Model)

	assert.False(t, model.querying)
	assert.Equal(t, result, model.answer)
	assert.Empty(t, model.question, "input resets after a successful answer")
	assert.Empty(t, model.queryErr)
}

func TestQueryResultValidationError(t *testing.T) {
	m := newTestModel(t)
	m.querying = true

	updated, _ := m.Update(QueryResultMsg{Err: domain.ErrNoDocumentSelected})
	model := updated.(Model)

	assert.False(t, model.querying)
	assert.Nil(t, model.answer)
	assert.Equal(t, "Select a document from the list to start asking questions", model.queryErr)
}

func TestSubmitWithoutSelection(t *testing.T) {
	m := newTestModel(t)
	m.ws.Store().Initialize(sampleDocuments())
	m.documents = m.ws.Store().Documents()
	m.focus = FocusQuestion
	m.question = "anything"

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model := updated.(Model)

	assert.Nil(t, cmd, "no command without a selected document")
	assert.NotEmpty(t, model.queryErr)
}

func TestEscDismissesQueryError(t *testing.T) {
	m := newTestModel(t)
	m.focus = FocusQuestion
	m.queryErr = "boom"

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model := updated.(Model)

	assert.Empty(t, model.queryErr)
	assert.Equal(t, FocusQuestion, model.focus, "first esc only dismisses the error")
}

func TestCursorNavigationBounds(t *testing.T) {
	m := newTestModel(t)
	m.ws.Store().Initialize(sampleDocuments())
	m.documents = m.ws.Store().Documents()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	m = updated.(Model)
	assert.Equal(t, 0, m.cursor, "k at the top stays put")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m = updated.(Model)
	assert.Equal(t, 1, m.cursor)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m = updated.(Model)
	assert.Equal(t, 1, m.cursor, "j at the bottom stays put")
}

func TestEnterTogglesSelection(t *testing.T) {
	m := newTestModel(t)
	m.ws.Store().Initialize(sampleDocuments())
	m.documents = m.ws.Store().Documents()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	assert.Equal(t, "report.pdf", m.ws.Store().SelectedID())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	assert.Empty(t, m.ws.Store().SelectedID(), "enter on the selected row deselects")
}

func TestUploadPathPrompt(t *testing.T) {
	m := newTestModel(t)
	m.started = true
	m.starting = false

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("u")})
	m = updated.(Model)
	assert.Equal(t, modeUploadPath, m.mode)

	for _, r := range "doc.pdf" {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	assert.Equal(t, "doc.pdf", m.uploadPath)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	assert.Equal(t, modeNormal, m.mode)
	assert.True(t, m.uploading)
	assert.NotNil(t, cmd)
}

func TestUploadPromptEscCancels(t *testing.T) {
	m := newTestModel(t)
	m.mode = modeUploadPath
	m.uploadPath = "partial"

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	assert.Equal(t, modeNormal, m.mode)
	assert.Empty(t, m.uploadPath)
	assert.Nil(t, cmd)
}

func TestClearStatus(t *testing.T) {
	m := newTestModel(t)
	m.status = "stale"
	m.statusErr = true

	updated, _ := m.Update(ClearStatusMsg{})
	model := updated.(Model)

	assert.Empty(t, model.status)
	assert.False(t, model.statusErr)
}

func TestSummaryResult(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(SummaryResultMsg{ID: "report.pdf", Summary: map[string]any{"pages": 12}})
	model := updated.(Model)

	assert.Equal(t, "report.pdf", model.summaryID)
	assert.Equal(t, map[string]any{"pages": 12}, model.summary)
}

func TestSummaryResultError(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(SummaryResultMsg{ID: "report.pdf", Err: errors.New("boom")})
	model := updated.(Model)

	assert.Empty(t, model.summaryID)
	assert.True(t, model.statusErr)
}

func TestViewRendersDocuments(t *testing.T) {
	m := newTestModel(t)
	m.started = true
	m.starting = false
	m.ws.Store().Initialize(sampleDocuments())
	m.documents = m.ws.Store().Documents()

	out := m.View()

	assert.Contains(t, out, "report.pdf")
	assert.Contains(t, out, "notes.pdf")
	assert.Contains(t, out, "2/5 documents")
}

func TestViewRendersAnswer(t *testing.T) {
	m := newTestModel(t)
	m.started = true
	m.starting = false
	m.answer = &domain.QueryResult{
		Answer:          "Revenue grew 12%.",
		ConfidenceScore: 0.873,
		ProcessingTime:  1.234,
		Citations: []domain.Citation{
			{PageNumber: 4, Content: "revenue table", RelevanceScore: 0.91},
		},
	}

	out := m.View()

	assert.Contains(t, out, "Revenue grew 12%.")
	assert.Contains(t, out, "87% confidence")
	assert.Contains(t, out, "1.23s")
	assert.Contains(t, out, "Page 4")
}
