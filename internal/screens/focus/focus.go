// Package focus renders the pomodoro countdown with the optional quiz
// panel that feeds the quiz streak.
package focus

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/akshad/studyquest/internal/challenge"
	"github.com/akshad/studyquest/internal/router"
	"github.com/akshad/studyquest/internal/services"
	"github.com/akshad/studyquest/internal/timer"
	"github.com/akshad/studyquest/internal/ui/components"
	"github.com/akshad/studyquest/internal/ui/layout"
	"github.com/akshad/studyquest/internal/ui/theme"
)

// quizPoints is what one correct quiz answer earns, by question tier.
var quizPoints = map[challenge.Difficulty]int{
	challenge.Easy:   5,
	challenge.Medium: 10,
	challenge.Hard:   15,
}

type tickMsg time.Time

// FocusScreen drives the timer engine from a 1-second tick loop.
type FocusScreen struct {
	svc    *services.Bundle
	state  timer.State
	errMsg string

	questions []challenge.Question
	rng       *challenge.RNG

	quizActive bool
	quiz       components.MultiChoice
	quizEntry  challenge.Entry
	quizScored bool
}

var _ router.Screen = (*FocusScreen)(nil)
var _ router.KeyHintProvider = (*FocusScreen)(nil)

// New creates the focus screen over the shared timer engine.
func New(svc *services.Bundle) *FocusScreen {
	f := &FocusScreen{
		svc:   svc,
		state: svc.Engine.State(),
		rng:   challenge.NewRNG(uint32(time.Now().UnixNano())),
	}

	p, err := svc.LoadProfile(context.Background())
	if err != nil {
		f.errMsg = err.Error()
		return f
	}
	if b, err := p.Active(); err == nil {
		f.questions = b.Questions
	}
	return f
}

func (f *FocusScreen) Init() tea.Cmd {
	return tickCmd()
}

func (f *FocusScreen) Title() string {
	return "Focus Timer"
}

func (f *FocusScreen) KeyHints() []layout.KeyHint {
	if f.quizActive {
		if f.quiz.Submitted {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Next question"},
				{Key: "Esc", Description: "Close quiz"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Close quiz"},
		}
	}
	startPause := "Start"
	if f.state.Running {
		startPause = "Pause"
	}
	hints := []layout.KeyHint{
		{Key: "Space", Description: startPause},
		{Key: "R", Description: "Reset"},
		{Key: "P", Description: "Switch phase"},
	}
	if f.state.Running && f.state.Phase == timer.PhaseFocus && len(f.questions) > 0 {
		hints = append(hints, layout.KeyHint{Key: "Q", Description: "Quiz"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (f *FocusScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		ctx := context.Background()
		if _, err := f.svc.Engine.Sync(ctx); err != nil {
			f.errMsg = err.Error()
		}
		if err := f.svc.Engine.Tick(ctx); err != nil {
			f.errMsg = err.Error()
		}
		f.state = f.svc.Engine.State()
		return f, tickCmd()

	case tea.KeyMsg:
		if f.quizActive {
			return f.updateQuiz(msg)
		}
		return f.updateTimer(msg)
	}
	return f, nil
}

func (f *FocusScreen) updateTimer(msg tea.KeyMsg) (router.Screen, tea.Cmd) {
	ctx := context.Background()
	var err error

	switch msg.String() {
	case "esc":
		return f, func() tea.Msg { return router.PopMsg{} }
	case " ", "space":
		if f.state.Running {
			err = f.svc.Engine.Pause(ctx)
		} else {
			err = f.svc.Engine.Start(ctx)
		}
	case "r":
		err = f.svc.Engine.Reset(ctx)
	case "p":
		err = f.svc.Engine.SetPhase(ctx, nextPhase(f.state.Phase))
	case "q":
		if f.state.Running && f.state.Phase == timer.PhaseFocus && len(f.questions) > 0 {
			f.openQuiz()
			return f, nil
		}
	default:
		return f, nil
	}

	if err != nil {
		f.errMsg = err.Error()
	} else {
		f.errMsg = ""
	}
	f.state = f.svc.Engine.State()
	return f, nil
}

func (f *FocusScreen) updateQuiz(msg tea.KeyMsg) (router.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		f.quizActive = false
		return f, nil
	case "enter":
		if f.quiz.Submitted {
			f.openQuiz()
			return f, nil
		}
	}

	wasSubmitted := f.quiz.Submitted
	f.quiz, _ = f.quiz.Update(msg)

	if f.quiz.Submitted && !wasSubmitted && !f.quizScored {
		f.quizScored = true
		ctx := context.Background()
		var err error
		if f.quiz.IsCorrect() {
			err = f.svc.Engine.RecordCorrectAnswer(ctx, quizPoints[f.quizEntry.Question.Difficulty])
		} else {
			err = f.svc.Engine.RecordIncorrectAnswer(ctx)
		}
		if err != nil {
			f.errMsg = err.Error()
		}
		f.state = f.svc.Engine.State()
	}
	return f, nil
}

// openQuiz picks a random question from the active bank and resets the
// selector.
func (f *FocusScreen) openQuiz() {
	q := f.questions[f.rng.Intn(len(f.questions))]
	choices := make([]string, len(q.Choices))
	copy(choices, q.Choices)
	answer := q.Answer
	f.rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
		switch answer {
		case i:
			answer = j
		case j:
			answer = i
		}
	})

	f.quizEntry = challenge.Entry{Question: q, Choices: choices, Answer: answer}
	f.quiz = components.NewMultiChoice(q.Prompt, choices, answer)
	f.quizActive = true
	f.quizScored = false
}

func (f *FocusScreen) View(width, height int) string {
	var sections []string

	phase := theme.Subtitle.Render(f.state.Phase.Label())
	if f.state.Running {
		phase += theme.Hint.Render("  running")
	} else {
		phase += theme.Hint.Render("  paused")
	}
	sections = append(sections, "  "+phase)

	sections = append(sections, theme.Title.Render("  "+formatClock(f.state.Remaining)))

	nominal := int(f.svc.Config.TimerSettings().DurationFor(f.state.Phase).Seconds())
	pct := 0.0
	if nominal > 0 {
		pct = 1 - float64(f.state.Remaining)/float64(nominal)
	}
	barWidth := width - 8
	if barWidth > 60 {
		barWidth = 60
	}
	sections = append(sections, "  "+components.NewProgressBar("", pct, false, barWidth).View())

	counters := fmt.Sprintf(
		"Sessions today: %d   Total: %d   Quiz streak: %d (best %d)",
		f.state.TodaySessions, f.state.TotalSessions,
		f.state.QuizStreak, f.state.HighestQuizStreak,
	)
	sections = append(sections, theme.Body.Render("  "+counters))

	if f.quizActive {
		quiz := f.quiz.View()
		if f.quiz.Submitted {
			if f.quiz.IsCorrect() {
				pts := quizPoints[f.quizEntry.Question.Difficulty]
				quiz += "\n" + theme.Correct.Render(fmt.Sprintf("Correct! +%d pts", pts))
			} else {
				quiz += "\n" + theme.Incorrect.Render("Wrong, streak reset")
			}
		}
		sections = append(sections, theme.Card.Render(quiz))
	}

	if f.errMsg != "" {
		sections = append(sections, theme.ErrorText.Render("  "+f.errMsg))
	}

	return strings.Join(sections, "\n\n")
}

func nextPhase(p timer.Phase) timer.Phase {
	switch p {
	case timer.PhaseFocus:
		return timer.PhaseShortBreak
	case timer.PhaseShortBreak:
		return timer.PhaseLongBreak
	default:
		return timer.PhaseFocus
	}
}

func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
