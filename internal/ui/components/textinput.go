package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// ChatInput wraps bubbles/textinput for free-form learner responses.
type ChatInput struct {
	Model textinput.Model
}

// NewChatInput creates a focused chat input.
func NewChatInput(placeholder string, charLimit int) ChatInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	ti.Focus()
	return ChatInput{Model: ti}
}

// Init returns the initial command.
func (c ChatInput) Init() tea.Cmd {
	return c.Model.Focus()
}

// Update handles messages.
func (c ChatInput) Update(msg tea.Msg) (ChatInput, tea.Cmd) {
	var cmd tea.Cmd
	c.Model, cmd = c.Model.Update(msg)
	return c, cmd
}

// View renders the input.
func (c ChatInput) View() string {
	return c.Model.View()
}

// Value returns the trimmed input value.
func (c ChatInput) Value() string {
	return strings.TrimSpace(c.Model.Value())
}

// Reset clears the input for the next utterance.
func (c *ChatInput) Reset() {
	c.Model.SetValue("")
}
