// Package home is the simulation picker shown at startup.
package home

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adasgupta/simtutor/internal/catalog"
	"github.com/adasgupta/simtutor/internal/router"
	"github.com/adasgupta/simtutor/internal/screen"
	"github.com/adasgupta/simtutor/internal/screens/chat"
	"github.com/adasgupta/simtutor/internal/tutor"
	"github.com/adasgupta/simtutor/internal/ui/components"
	"github.com/adasgupta/simtutor/internal/ui/theme"
)

// HomeScreen lists the available simulations.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen over the catalog.
func New(manager *tutor.Manager) *HomeScreen {
	summaries := catalog.List()
	items := make([]components.MenuItem, 0, len(summaries)+1)

	for _, sum := range summaries {
		sum := sum
		detail := ""
		if sim, err := catalog.Get(sum.ID); err == nil {
			detail = fmt.Sprintf("%d concepts", len(sim.Concepts))
		}
		items = append(items, components.MenuItem{
			Label:  sum.Title,
			Detail: detail,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: chat.New(manager, sum)}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:  "QUIT",
		Action: func() tea.Cmd { return tea.Quit },
	})

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Pick a simulation"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Width(width).Render("What do you want to explore today?")
	sub := theme.Subtitle.Width(width).Render("Alex will guide you through each simulation, one concept at a time.")
	menu := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(h.menu.View())
	return "\n\n" + title + "\n\n" + sub + "\n\n\n" + menu
}
