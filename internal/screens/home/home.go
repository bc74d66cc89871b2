// Package home renders the main menu with the day's progress summary
// and any one-time reconciler notices from startup.
package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/akshad/studyquest/internal/profile"
	"github.com/akshad/studyquest/internal/rewards"
	"github.com/akshad/studyquest/internal/router"
	"github.com/akshad/studyquest/internal/screens/daily"
	"github.com/akshad/studyquest/internal/screens/focus"
	"github.com/akshad/studyquest/internal/screens/pets"
	"github.com/akshad/studyquest/internal/screens/qotd"
	"github.com/akshad/studyquest/internal/screens/stats"
	"github.com/akshad/studyquest/internal/services"
	"github.com/akshad/studyquest/internal/ui/components"
	"github.com/akshad/studyquest/internal/ui/layout"
	"github.com/akshad/studyquest/internal/ui/theme"
)

// HomeScreen is the root screen of the application.
type HomeScreen struct {
	svc     *services.Bundle
	menu    components.Menu
	notices []rewards.Notice
	errMsg  string

	points        int
	streak        int
	todayFocus    int
	todayPoints   int
	unlockedCount int
	totalPets     int
}

var _ router.Screen = (*HomeScreen)(nil)
var _ router.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. Startup notices come from the rewards
// reconciler run at login.
func New(svc *services.Bundle, notices []rewards.Notice) *HomeScreen {
	h := &HomeScreen{svc: svc, notices: notices}

	items := []components.MenuItem{
		{Label: "FOCUS TIMER", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushMsg{Screen: focus.New(svc)}
			}
		}},
		{Label: "DAILY CHALLENGE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushMsg{Screen: daily.New(svc)}
			}
		}},
		{Label: "QUESTION OF THE DAY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushMsg{Screen: qotd.New(svc)}
			}
		}},
		{Label: "PETS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushMsg{Screen: pets.New(svc)}
			}
		}},
		{Label: "STATS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushMsg{Screen: stats.New(svc)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	h.refresh()
	return h
}

// refresh recomputes the summary numbers from the profile. Called on
// construction and whenever the screen regains focus.
func (h *HomeScreen) refresh() {
	p, err := h.svc.LoadProfile(context.Background())
	if err != nil {
		h.errMsg = err.Error()
		return
	}
	b, err := p.Active()
	if err != nil {
		h.errMsg = err.Error()
		return
	}

	today := profile.DateOf(time.Now())
	dp := b.Day(today)

	h.errMsg = ""
	h.points = b.Points
	h.streak = b.Streak
	h.todayFocus = dp.PomodorosCompleted
	h.todayPoints = dp.PointsEarned

	h.totalPets = len(h.svc.Reconciler.Pets())
	h.unlockedCount = 0
	for id := range b.UnlockedPets {
		if b.UnlockedPets[id] {
			h.unlockedCount++
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		// The first key press after startup dismisses the notices.
		if len(h.notices) > 0 {
			h.notices = nil
			if kmsg.String() != "up" && kmsg.String() != "down" &&
				kmsg.String() != "k" && kmsg.String() != "j" &&
				kmsg.String() != "enter" {
				return h, nil
			}
		}
	}

	if _, ok := msg.(router.ResumedMsg); ok {
		h.refresh()
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	if h.errMsg != "" {
		return theme.ErrorText.Render("  " + h.errMsg)
	}

	var sections []string

	sections = append(sections, theme.Title.Render("  Welcome back!"))

	if len(h.notices) > 0 {
		var lines []string
		for _, n := range h.notices {
			style := theme.Body
			switch n.Kind {
			case rewards.NoticePetUnlocked:
				style = theme.Correct
			case rewards.NoticeStreakLost:
				style = theme.ErrorText
			}
			lines = append(lines, style.Render(n.Message))
		}
		sections = append(sections, theme.Card.Render(strings.Join(lines, "\n")))
	}

	summary := fmt.Sprintf(
		"Today: %d focus sessions  ·  %d points earned\nPets unlocked: %d of %d",
		h.todayFocus, h.todayPoints, h.unlockedCount, h.totalPets,
	)
	sections = append(sections, theme.Card.Render(theme.Body.Render(summary)))

	sections = append(sections, h.menu.View())

	return strings.Join(sections, "\n\n")
}
