// Package qotd shows the single featured question of the day. One
// attempt per calendar day; a correct answer earns the tier's points.
package qotd

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/akshad/studyquest/internal/challenge"
	"github.com/akshad/studyquest/internal/profile"
	"github.com/akshad/studyquest/internal/router"
	"github.com/akshad/studyquest/internal/services"
	"github.com/akshad/studyquest/internal/ui/components"
	"github.com/akshad/studyquest/internal/ui/layout"
	"github.com/akshad/studyquest/internal/ui/theme"
)

// QotdScreen renders today's featured question.
type QotdScreen struct {
	svc    *services.Bundle
	errMsg string

	today    profile.Date
	entry    challenge.Entry
	mc       components.MultiChoice
	empty    bool
	answered bool // answered before this visit
	awarded  int
}

var _ router.Screen = (*QotdScreen)(nil)
var _ router.KeyHintProvider = (*QotdScreen)(nil)

// New creates the screen and derives today's question from the active
// bank.
func New(svc *services.Bundle) *QotdScreen {
	q := &QotdScreen{
		svc:   svc,
		today: profile.DateOf(time.Now()),
	}

	p, err := svc.LoadProfile(context.Background())
	if err != nil {
		q.errMsg = err.Error()
		return q
	}
	b, err := p.Active()
	if err != nil {
		q.errMsg = err.Error()
		return q
	}

	entry, ok := challenge.QuestionOfTheDay(b.Questions, q.today.String(), q.today.DayOfYear())
	if !ok {
		q.empty = true
		return q
	}
	q.entry = entry
	q.answered = b.Day(q.today).QuestionOfDayAnswered
	q.mc = components.NewMultiChoice(entry.Question.Prompt, entry.Choices, entry.Answer)
	return q
}

func (q *QotdScreen) Init() tea.Cmd {
	return nil
}

func (q *QotdScreen) Title() string {
	return "Question of the Day"
}

func (q *QotdScreen) KeyHints() []layout.KeyHint {
	if q.empty || q.answered || q.mc.Submitted {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Back"},
	}
}

func (q *QotdScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return q, nil
	}
	if kmsg.String() == "esc" {
		return q, func() tea.Msg { return router.PopMsg{} }
	}
	if q.empty || q.answered || q.mc.Submitted {
		return q, nil
	}

	wasSubmitted := q.mc.Submitted
	q.mc, _ = q.mc.Update(kmsg)
	if q.mc.Submitted && !wasSubmitted {
		q.record()
	}
	return q, nil
}

// record marks today's question answered and credits points on a correct
// answer. The flag is set regardless of correctness; there is one attempt
// per day.
func (q *QotdScreen) record() {
	ctx := context.Background()

	p, err := q.svc.LoadProfile(ctx)
	if err != nil {
		q.errMsg = err.Error()
		return
	}
	b, err := p.Active()
	if err != nil {
		q.errMsg = err.Error()
		return
	}

	dp := b.Day(q.today)
	if dp.QuestionOfDayAnswered {
		q.answered = true
		return
	}
	dp.QuestionOfDayAnswered = true

	if q.mc.IsCorrect() {
		q.awarded = q.svc.Config.PointAwards()[q.entry.Question.Difficulty]
		b.AddPoints(q.today, q.awarded)
	}

	if err := q.svc.SaveProfile(ctx, p); err != nil {
		q.errMsg = err.Error()
	}
}

func (q *QotdScreen) View(width, height int) string {
	if q.errMsg != "" {
		return theme.ErrorText.Render("  " + q.errMsg)
	}
	if q.empty {
		return theme.Hint.Render("  The active bank has no questions yet.")
	}

	header := theme.Subtitle.Render("  " + q.today.String())

	if q.answered {
		return header + "\n\n" + theme.Card.Render(
			theme.Body.Render("Already answered today.\nCome back tomorrow for a new question."))
	}

	body := q.mc.View()
	if q.mc.Submitted {
		if q.mc.IsCorrect() {
			body += "\n" + theme.Correct.Render(fmt.Sprintf("Correct! +%d pts", q.awarded))
		} else {
			body += "\n" + theme.Incorrect.Render("Wrong answer")
		}
	}
	return header + "\n\n" + theme.Card.Render(body)
}
