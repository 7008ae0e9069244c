// Package summary shows the end-of-session recap.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adasgupta/simtutor/internal/router"
	"github.com/adasgupta/simtutor/internal/screen"
	"github.com/adasgupta/simtutor/internal/tutor"
	"github.com/adasgupta/simtutor/internal/ui/layout"
	"github.com/adasgupta/simtutor/internal/ui/theme"
)

// SummaryScreen displays what the session covered and how it went.
type SummaryScreen struct {
	view *tutor.SessionView
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen from a completed session's view.
func New(view *tutor.SessionView) *SummaryScreen {
	return &SummaryScreen{view: view}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter/Esc", Description: "Back to simulations"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	v := s.view
	if v == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Session complete!"))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Width(width).Render(v.Simulation.Title))
	b.WriteString("\n\n")

	stat := func(label string, value string) {
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
			theme.Hint.Render(label+"  ") + theme.Body.Bold(true).Render(value)))
		b.WriteString("\n")
	}
	stat("Concepts covered", fmt.Sprintf("%d of %d", v.Progress.ConceptsCompleted, v.Progress.ConceptsTotal))
	stat("Exchanges", fmt.Sprintf("%d", v.Progress.TotalExchanges))
	stat("Parameter changes", fmt.Sprintf("%d", v.ParamChangeCnt))

	if len(v.LevelLog) > 0 {
		levels := make([]string, 0, len(v.LevelLog))
		for _, l := range v.LevelLog {
			levels = append(levels, l.String())
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
			theme.Hint.Render("Understanding: ") + theme.Body.Render(strings.Join(levels, " → "))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, c := range v.Concepts {
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
			lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("✓ ") + theme.Body.Render(c.Title)))
		b.WriteString("\n")
	}

	return b.String()
}
