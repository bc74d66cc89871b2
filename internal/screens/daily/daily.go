// Package daily runs the deterministic daily challenge: pick a tier,
// answer the day's questions, see the result.
package daily

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/akshad/studyquest/internal/challenge"
	"github.com/akshad/studyquest/internal/profile"
	"github.com/akshad/studyquest/internal/rewards"
	"github.com/akshad/studyquest/internal/router"
	"github.com/akshad/studyquest/internal/services"
	"github.com/akshad/studyquest/internal/store"
	"github.com/akshad/studyquest/internal/ui/components"
	"github.com/akshad/studyquest/internal/ui/layout"
	"github.com/akshad/studyquest/internal/ui/theme"
)

type phase int

const (
	phasePick phase = iota
	phaseQuestion
	phaseResult
)

// DailyScreen walks one daily-challenge attempt from tier selection to
// the result summary.
type DailyScreen struct {
	svc    *services.Bundle
	errMsg string

	phase phase
	menu  components.Menu
	today profile.Date

	chal    challenge.Challenge
	current int
	score   int
	mc      components.MultiChoice

	outcome rewards.Outcome
	notices []rewards.Notice
}

var _ router.Screen = (*DailyScreen)(nil)
var _ router.KeyHintProvider = (*DailyScreen)(nil)

// New creates the challenge screen at the tier picker.
func New(svc *services.Bundle) *DailyScreen {
	d := &DailyScreen{
		svc:   svc,
		today: profile.DateOf(time.Now()),
	}

	p, err := svc.LoadProfile(context.Background())
	if err != nil {
		d.errMsg = err.Error()
		return d
	}
	b, err := p.Active()
	if err != nil {
		d.errMsg = err.Error()
		return d
	}

	dp := b.Day(d.today)
	var items []components.MenuItem
	for _, diff := range challenge.Difficulties() {
		diff := diff
		label := strings.ToUpper(string(diff))
		done := dp.CompletedChallenge(string(diff))
		if done {
			label += "  ✓ done today"
		}
		items = append(items, components.MenuItem{
			Label:    label,
			Disabled: done,
			Action: func() tea.Cmd {
				d.begin(b, diff)
				return nil
			},
		})
	}
	d.menu = components.NewMenu(items)
	return d
}

// begin generates the day's challenge for the chosen tier and shows the
// first question.
func (d *DailyScreen) begin(b *profile.Bank, diff challenge.Difficulty) {
	// The bank already scopes the pool, so no category filter here.
	size := d.svc.Config.Challenge.Size
	d.chal = challenge.Daily(b.Questions, d.today.String(), diff, "", size)
	if len(d.chal.Entries) == 0 {
		d.errMsg = fmt.Sprintf("no %s questions in bank %q", diff, b.Name)
		return
	}
	d.current = 0
	d.score = 0
	d.phase = phaseQuestion
	d.loadQuestion()
}

func (d *DailyScreen) loadQuestion() {
	e := d.chal.Entries[d.current]
	prompt := fmt.Sprintf("Question %d of %d\n\n%s",
		d.current+1, len(d.chal.Entries), e.Question.Prompt)
	d.mc = components.NewMultiChoice(prompt, e.Choices, e.Answer)
}

func (d *DailyScreen) Init() tea.Cmd {
	return nil
}

func (d *DailyScreen) Title() string {
	return "Daily Challenge"
}

func (d *DailyScreen) KeyHints() []layout.KeyHint {
	switch d.phase {
	case phaseQuestion:
		if d.mc.Submitted {
			return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
		}
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
		}
	case phaseResult:
		return []layout.KeyHint{{Key: "Enter/Esc", Description: "Back"}}
	default:
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Navigate"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (d *DailyScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch d.phase {
	case phasePick:
		if kmsg.String() == "esc" {
			return d, func() tea.Msg { return router.PopMsg{} }
		}
		var cmd tea.Cmd
		d.menu, cmd = d.menu.Update(kmsg)
		return d, cmd

	case phaseQuestion:
		return d.updateQuestion(kmsg)

	case phaseResult:
		switch kmsg.String() {
		case "enter", "esc":
			return d, func() tea.Msg { return router.PopMsg{} }
		}
	}
	return d, nil
}

func (d *DailyScreen) updateQuestion(kmsg tea.KeyMsg) (router.Screen, tea.Cmd) {
	if d.mc.Submitted {
		if kmsg.String() != "enter" {
			return d, nil
		}
		if d.mc.IsCorrect() {
			d.score++
		}
		if d.current+1 < len(d.chal.Entries) {
			d.current++
			d.loadQuestion()
			return d, nil
		}
		d.finish()
		return d, nil
	}

	d.mc, _ = d.mc.Update(kmsg)
	return d, nil
}

// finish reconciles the attempt against the profile, persists it, and
// appends the challenge event.
func (d *DailyScreen) finish() {
	ctx := context.Background()
	d.phase = phaseResult

	p, err := d.svc.LoadProfile(ctx)
	if err != nil {
		d.errMsg = err.Error()
		return
	}

	res := rewards.ChallengeResult{
		Difficulty: d.chal.Difficulty,
		Score:      d.score,
		Total:      len(d.chal.Entries),
		Date:       d.today,
	}
	out, notices, err := d.svc.Reconciler.OnChallengeCompleted(p, p.ActiveBank, res)
	if err != nil {
		d.errMsg = err.Error()
		return
	}
	if err := d.svc.SaveProfile(ctx, p); err != nil {
		d.errMsg = err.Error()
		return
	}
	d.outcome = out
	d.notices = notices

	err = d.svc.Events.AppendChallengeEvent(ctx, store.ChallengeEventData{
		UserID:        d.svc.UserID,
		Bank:          p.ActiveBank,
		Day:           d.today.String(),
		Difficulty:    string(d.chal.Difficulty),
		Score:         d.score,
		Total:         len(d.chal.Entries),
		Passed:        out.Passed,
		PointsAwarded: out.PointsAwarded,
	})
	if err != nil {
		d.errMsg = err.Error()
	}
}

func (d *DailyScreen) View(width, height int) string {
	if d.errMsg != "" {
		return theme.ErrorText.Render("  " + d.errMsg)
	}

	switch d.phase {
	case phaseQuestion:
		s := theme.Subtitle.Render(fmt.Sprintf("  %s · %s", strings.ToUpper(string(d.chal.Difficulty)), d.chal.Date))
		return s + "\n\n" + theme.Card.Render(d.mc.View())

	case phaseResult:
		return d.viewResult()

	default:
		s := theme.Title.Render("  Pick a difficulty") + "\n\n"
		s += theme.Body.Render(fmt.Sprintf("  %d questions, pass at %d%%",
			d.svc.Config.Challenge.Size, d.svc.Config.Challenge.PassingScore)) + "\n\n"
		return s + d.menu.View()
	}
}

func (d *DailyScreen) viewResult() string {
	var lines []string

	lines = append(lines, theme.Title.Render(fmt.Sprintf("Score: %d / %d", d.score, len(d.chal.Entries))))
	if d.outcome.Passed {
		lines = append(lines, theme.Correct.Render("Passed!"))
		if d.outcome.FirstOfDay {
			lines = append(lines, theme.Body.Render(fmt.Sprintf("+%d points", d.outcome.PointsAwarded)))
		} else {
			lines = append(lines, theme.Hint.Render("Streak and points already secured today"))
		}
	} else {
		lines = append(lines, theme.Incorrect.Render("Not passed, try again tomorrow"))
	}

	for _, n := range d.notices {
		lines = append(lines, theme.Subtitle.Render(n.Message))
	}

	return theme.Card.Render(strings.Join(lines, "\n\n"))
}
