package tui

import tea "github.com/charmbracelet/bubbletea"

// PromptConfirmer implements domain.Confirmer on top of the TUI event loop.
// ConfirmDelete is called from a workflow goroutine: it sends a
// DeletePromptMsg into the program and blocks until the modal resolves it.
type PromptConfirmer struct {
	send func(tea.Msg)
}

// NewPromptConfirmer creates a confirmer with no program attached. Calls
// before SetProgram decline, so a deletion can never slip through without a
// prompt.
func NewPromptConfirmer() *PromptConfirmer {
	return &PromptConfirmer{}
}

// SetProgram wires the confirmer to a running program's message feed.
func (c *PromptConfirmer) SetProgram(p *tea.Program) {
	c.send = p.Send
}

// ConfirmDelete blocks until the user answers the delete prompt for the named
// document.
func (c *PromptConfirmer) ConfirmDelete(displayName string) bool {
	if c.send == nil {
		return false
	}
	reply := make(chan bool, 1)
	c.send(DeletePromptMsg{Name: displayName, Reply: reply})
	return <-reply
}
