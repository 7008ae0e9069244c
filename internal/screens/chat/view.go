package chat

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/adasgupta/simtutor/internal/ui/theme"
)

func (s *ChatScreen) View(width, height int) string {
	if s.errMsg != "" && s.sessionID == "" {
		return theme.Body.Width(width).Align(lipgloss.Center).
			Render("\nCould not start the session:\n\n" + s.errMsg)
	}

	inputArea := s.renderInputArea(width)
	inputHeight := lipgloss.Height(inputArea)

	transcriptHeight := height - inputHeight - 1
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}

	transcript := s.renderTranscript(width, transcriptHeight)
	return transcript + "\n" + inputArea
}

// renderTranscript wraps every line and keeps the most recent rows that
// fit the viewport.
func (s *ChatScreen) renderTranscript(width, maxRows int) string {
	textWidth := width - 4
	if textWidth < 10 {
		textWidth = 10
	}

	var rows []string
	for _, l := range s.transcript {
		var rendered string
		switch l.kind {
		case lineTeacher:
			rendered = theme.TeacherLine.Width(textWidth).Render("Alex: " + l.text)
		case lineLearner:
			rendered = theme.LearnerLine.Width(textWidth).Render("You:  " + l.text)
		case lineNotice:
			rendered = theme.ParamNotice.Width(textWidth).Render(l.text)
		}
		rows = append(rows, strings.Split(rendered, "\n")...)
		rows = append(rows, "")
	}

	if len(rows) > maxRows {
		rows = rows[len(rows)-maxRows:]
	}
	pad := strings.Repeat("\n", maxRows-len(rows))
	return pad + "  " + strings.Join(rows, "\n  ")
}

func (s *ChatScreen) renderInputArea(width int) string {
	switch {
	case s.done:
		return theme.Hint.Render("  Session complete. Press Enter for your summary.")
	case s.waiting:
		return theme.Hint.Render("  Alex is thinking...")
	case s.errMsg != "":
		return theme.Hint.Render("  "+s.errMsg) + "\n  " + s.input.View()
	default:
		return "  " + s.input.View()
	}
}
