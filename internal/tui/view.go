package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/doculens/doculens/internal/workspace"
)

// View renders the workspace: documents on the left, question and answer on
// the right, footer with key hints, transient status above the footer.
func (m Model) View() string {
	if m.starting {
		return statusStyle.Render("Starting session...")
	}

	header := titleStyle.Render("doculens") +
		dimStyle.Render("  ·  document workspace  ·  ") +
		m.quotaBadge()

	left := m.documentsPanel()
	right := m.queryPanel()

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	var lines []string
	lines = append(lines, header, "", body)

	if m.mode == modeConfirmDelete && m.pendingDelete != nil {
		lines = append(lines, "", promptStyle.Render(
			fmt.Sprintf("Delete %q? (y/n)", m.pendingDelete.Name)))
	}
	if m.mode == modeUploadPath {
		lines = append(lines, "", promptStyle.Render("Path to PDF: ")+m.uploadPath+"▌")
	}
	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = errorStyle
		}
		lines = append(lines, "", style.Render(m.status))
	}
	lines = append(lines, "", m.footer())

	return strings.Join(lines, "\n")
}

func (m Model) quotaBadge() string {
	used := len(m.documents)
	limit := m.ws.DocumentLimit()
	badge := fmt.Sprintf("%d/%d documents", used, limit)
	if !m.canUploadMore() {
		return errorStyle.Render(badge)
	}
	return dimStyle.Render(badge)
}

func (m Model) canUploadMore() bool {
	return len(m.documents) < m.ws.DocumentLimit()
}

func (m Model) documentsPanel() string {
	title := panelTitleStyle
	if m.focus == FocusDocuments {
		title = panelTitleActiveStyle
	}

	var b strings.Builder
	b.WriteString(title.Render("Documents"))
	b.WriteString("\n\n")

	if len(m.documents) == 0 {
		b.WriteString(dimStyle.Render("No documents yet.\nPress u to upload your first PDF."))
		return b.String()
	}

	selectedID := m.ws.Store().SelectedID()
	for i, doc := range m.documents {
		cursor := "  "
		if i == m.cursor && m.focus == FocusDocuments {
			cursor = "> "
		}

		name := doc.Filename
		if doc.ID == selectedID {
			name = selectedStyle.Render(name + " *")
		}

		var state string
		if doc.Processed() {
			state = readyStyle.Render("ready")
		} else {
			state = processingStyle.Render("processing")
		}

		meta := fmt.Sprintf("%d pages", doc.TotalPages)
		if doc.TotalChunks > 0 {
			meta += fmt.Sprintf(", %d chunks", doc.TotalChunks)
		}

		b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, name, state))
		b.WriteString("    " + dimStyle.Render(meta+" · "+doc.UploadDate.Format("Jan 2 15:04")) + "\n")
	}

	if m.summary != nil && m.summaryID != "" {
		b.WriteString("\n")
		b.WriteString(panelTitleStyle.Render("Summary: " + m.summaryID))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(renderSummary(m.summary)))
	}

	return b.String()
}

func (m Model) queryPanel() string {
	title := panelTitleStyle
	if m.focus == FocusQuestion {
		title = panelTitleActiveStyle
	}

	var b strings.Builder
	b.WriteString(title.Render("Ask Questions"))
	b.WriteString("\n\n")

	if m.ws.Store().SelectedID() == "" && len(m.documents) > 0 {
		b.WriteString(processingStyle.Render("Select a document to start asking questions") + "\n\n")
	}

	prompt := "? "
	input := m.question
	if m.focus == FocusQuestion {
		input += "▌"
	}
	b.WriteString(prompt + input + "\n")

	if m.querying {
		b.WriteString("\n" + statusStyle.Render("Processing...") + "\n")
	}

	if m.queryErr != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.queryErr))
		b.WriteString("\n" + dimStyle.Render("(esc to dismiss)") + "\n")
	}

	if m.answer != nil {
		b.WriteString("\n")
		b.WriteString(panelTitleStyle.Render("Answer"))
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %s · %s confidence",
			workspace.FormatProcessingTime(m.answer.ProcessingTime),
			workspace.FormatConfidence(m.answer.ConfidenceScore))))
		b.WriteString("\n\n")
		b.WriteString(answerStyle.Render(m.answer.Answer))
		b.WriteString("\n")

		if len(m.answer.Citations) > 0 {
			b.WriteString("\n" + panelTitleStyle.Render("Citations") + "\n")
			for _, c := range m.answer.Citations {
				b.WriteString(citationStyle.Render(fmt.Sprintf("  Page %d", c.PageNumber)))
				b.WriteString(dimStyle.Render(fmt.Sprintf("  %s relevant", workspace.FormatConfidence(c.RelevanceScore))))
				b.WriteString("\n")
				b.WriteString(dimStyle.Render("  \"" + c.Content + "\""))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func (m Model) footer() string {
	keys := []struct{ key, desc string }{
		{"tab", "switch panel"},
		{"j/k", "move"},
		{"enter", "select/ask"},
		{"u", "upload"},
		{"d", "delete"},
		{"s", "summary"},
		{"q", "quit"},
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, footerKeyStyle.Render(k.key)+footerDescStyle.Render(" "+k.desc))
	}
	return dividerStyle.Render("─ ") + strings.Join(parts, dividerStyle.Render(" · "))
}

// renderSummary flattens a summary payload into sorted key/value lines; the
// endpoint's shape is implementation-defined.
func renderSummary(summary map[string]any) string {
	keys := make([]string, 0, len(summary))
	for k := range summary {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("  %s: %v\n", k, summary[k]))
	}
	return b.String()
}
