// Package app wires the screens into the root Bubble Tea model.
package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akshad/studyquest/internal/profile"
	"github.com/akshad/studyquest/internal/rewards"
	"github.com/akshad/studyquest/internal/router"
	"github.com/akshad/studyquest/internal/screens/home"
	"github.com/akshad/studyquest/internal/services"
	"github.com/akshad/studyquest/internal/ui/layout"
)

// Model is the root Bubble Tea model: terminal size, the screen stack,
// and the header stats.
type Model struct {
	svc    *services.Bundle
	router *router.Router
	width  int
	height int

	points int
	streak int
}

// NewModel builds the root model with the home screen at the bottom of
// the stack.
func NewModel(svc *services.Bundle, notices []rewards.Notice) Model {
	m := Model{
		svc:    svc,
		router: router.New(home.New(svc, notices)),
	}
	m.refreshStats()
	return m
}

// refreshStats reloads the header numbers from the active bank.
func (m *Model) refreshStats() {
	p, err := m.svc.LoadProfile(context.Background())
	if err != nil {
		return
	}
	b, err := p.Active()
	if err != nil {
		return
	}
	m.points = b.Points
	m.streak = b.Streak
}

func (m Model) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)

	// Screens mutate points and streak through the profile store, so any
	// keypress or navigation may have changed the header.
	switch msg.(type) {
	case tea.KeyMsg, router.PushMsg, router.PopMsg:
		m.refreshStats()
	}
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.points, m.streak, m.width)

	hints := defaultHints(m.router.Depth())
	if provider, ok := active.(router.KeyHintProvider); ok {
		if h := provider.KeyHints(); len(h) > 0 {
			hints = h
		}
	}
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}
	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func defaultHints(depth int) []layout.KeyHint {
	if depth > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the interactive program.
func Run(svc *services.Bundle) error {
	today := profile.DateOf(time.Now())

	ctx := context.Background()
	p, err := svc.LoadProfile(ctx)
	if err != nil {
		return err
	}
	notices := svc.Reconciler.OnLoad(p, today)
	if err := svc.SaveProfile(ctx, p); err != nil {
		return err
	}

	_, err = tea.NewProgram(NewModel(svc, notices)).Run()
	return err
}
