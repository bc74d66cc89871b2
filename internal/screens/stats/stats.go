// Package stats renders lifetime totals and the recent focus history
// aggregated from the event log.
package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/akshad/studyquest/internal/router"
	"github.com/akshad/studyquest/internal/services"
	"github.com/akshad/studyquest/internal/store"
	"github.com/akshad/studyquest/internal/ui/layout"
	"github.com/akshad/studyquest/internal/ui/theme"
)

const historyDays = 7

// StatsScreen shows bank totals plus event-log aggregates.
type StatsScreen struct {
	svc    *services.Bundle
	errMsg string

	points            int
	streak            int
	highestStreak     int
	sessions          int
	highestQuizStreak int

	focusByDay []store.DayCount
	attempted  int
	passed     int
}

var _ router.Screen = (*StatsScreen)(nil)
var _ router.KeyHintProvider = (*StatsScreen)(nil)

// New creates the stats screen and loads its aggregates.
func New(svc *services.Bundle) *StatsScreen {
	s := &StatsScreen{svc: svc}
	ctx := context.Background()

	p, err := svc.LoadProfile(ctx)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	b, err := p.Active()
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.points = b.Points
	s.streak = b.Streak
	s.highestStreak = b.HighestStreak
	s.sessions = b.CompletedSessions
	s.highestQuizStreak = b.HighestQuizStreak

	if s.focusByDay, err = svc.Events.FocusByDay(ctx, svc.UserID, historyDays); err != nil {
		s.errMsg = err.Error()
		return s
	}
	if s.attempted, s.passed, err = svc.Events.ChallengeCounts(ctx, svc.UserID); err != nil {
		s.errMsg = err.Error()
	}
	return s
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *StatsScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopMsg{} }
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return theme.ErrorText.Render("  " + s.errMsg)
	}

	totals := []string{
		fmt.Sprintf("Points               %d", s.points),
		fmt.Sprintf("Challenge streak     %d (best %d)", s.streak, s.highestStreak),
		fmt.Sprintf("Focus sessions       %d", s.sessions),
		fmt.Sprintf("Best quiz streak     %d", s.highestQuizStreak),
		fmt.Sprintf("Challenges passed    %d of %d attempted", s.passed, s.attempted),
	}

	var sections []string
	sections = append(sections, theme.Card.Render(theme.Body.Render(strings.Join(totals, "\n"))))
	sections = append(sections, s.renderHistory())
	return strings.Join(sections, "\n\n")
}

// renderHistory draws one bar per day, oldest first.
func (s *StatsScreen) renderHistory() string {
	if len(s.focusByDay) == 0 {
		return theme.Hint.Render("  No focus sessions recorded yet.")
	}

	max := 0
	for _, dc := range s.focusByDay {
		if dc.Count > max {
			max = dc.Count
		}
	}

	var lines []string
	lines = append(lines, theme.Subtitle.Render(fmt.Sprintf("Focus sessions, last %d days", historyDays)))
	for _, dc := range s.focusByDay {
		bar := strings.Repeat("█", dc.Count)
		if max > 20 {
			scaled := dc.Count * 20 / max
			bar = strings.Repeat("█", scaled)
		}
		lines = append(lines, theme.Body.Render(fmt.Sprintf("%s  %-20s %d", dc.Day, bar, dc.Count)))
	}
	return theme.Card.Render(strings.Join(lines, "\n"))
}
