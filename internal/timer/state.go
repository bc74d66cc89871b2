// Package timer owns the focus/break countdown: a single logical state
// machine per database, persisted on every mutation so any process can
// reconstruct it after a reload, and broadcast to any number of
// subscribers.
package timer

import (
	"time"

	"github.com/akshad/studyquest/internal/profile"
)

// Phase is a timer phase. The string values are persisted.
type Phase string

const (
	PhaseFocus      Phase = "focus"
	PhaseShortBreak Phase = "shortBreak"
	PhaseLongBreak  Phase = "longBreak"
)

// Valid reports whether p is a known phase.
func (p Phase) Valid() bool {
	switch p {
	case PhaseFocus, PhaseShortBreak, PhaseLongBreak:
		return true
	}
	return false
}

// Label returns the display name for the phase.
func (p Phase) Label() string {
	switch p {
	case PhaseFocus:
		return "Focus"
	case PhaseShortBreak:
		return "Short Break"
	case PhaseLongBreak:
		return "Long Break"
	default:
		return string(p)
	}
}

// Config holds the nominal phase durations.
type Config struct {
	FocusDuration      time.Duration
	ShortBreakDuration time.Duration
	LongBreakDuration  time.Duration

	// LongBreakInterval is the session count multiple that earns a long
	// break instead of a short one.
	LongBreakInterval int
}

// DefaultConfig returns the classic 25/5/15 pomodoro cycle.
func DefaultConfig() Config {
	return Config{
		FocusDuration:      25 * time.Minute,
		ShortBreakDuration: 5 * time.Minute,
		LongBreakDuration:  15 * time.Minute,
		LongBreakInterval:  4,
	}
}

// DurationFor returns the nominal duration of a phase.
func (c Config) DurationFor(p Phase) time.Duration {
	switch p {
	case PhaseShortBreak:
		return c.ShortBreakDuration
	case PhaseLongBreak:
		return c.LongBreakDuration
	default:
		return c.FocusDuration
	}
}

// State is the persisted timer state. It is session state shared by every
// view of the database, associated with a profile only through the
// currently active identity.
type State struct {
	Phase     Phase `json:"phase"`
	Remaining int   `json:"remaining"` // seconds
	Running   bool  `json:"running"`

	// EndTime is the absolute wall-clock end of the running countdown.
	// It is what makes the remaining time recomputable after the process
	// was suspended for any length of time.
	EndTime *time.Time `json:"endTime,omitempty"`

	TotalSessions int          `json:"totalSessions"`
	TodaySessions int          `json:"todaySessions"`
	TodayDate     profile.Date `json:"todayDate,omitempty"`

	// QuizStreak is the transient consecutive-correct count for the
	// current session. HighestQuizStreak is its persisted ceiling.
	QuizStreak        int `json:"quizStreak"`
	HighestQuizStreak int `json:"highestQuizStreak"`
}

// defaultState returns a fresh stopped focus-phase state.
func defaultState(cfg Config) State {
	return State{
		Phase:     PhaseFocus,
		Remaining: int(cfg.FocusDuration.Seconds()),
	}
}
