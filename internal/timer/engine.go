package timer

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/akshad/studyquest/internal/notify"
	"github.com/akshad/studyquest/internal/profile"
	"github.com/akshad/studyquest/internal/store"
)

// Options configure a new Engine.
type Options struct {
	UserID   string
	Profiles store.ProfileRepo
	Timers   store.TimerRepo
	Events   store.EventRepo // optional
	Notifier notify.Notifier // optional, defaults to Nop
	Config   Config

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Engine drives the countdown state machine. Every mutation is persisted
// before subscribers are told about it, so a crash between ticks loses at
// most one second of countdown and never a completed session.
type Engine struct {
	mu    sync.Mutex
	cfg   Config
	state State
	token int64

	userID   string
	profiles store.ProfileRepo
	timers   store.TimerRepo
	events   store.EventRepo
	notifier notify.Notifier
	now      func() time.Time

	stateSubs   []func(State)
	profileSubs []func()
}

// New loads the persisted timer state and reconciles it with the current
// wall clock. A countdown whose end time has already passed runs its
// completion transition exactly once, here, so sessions finished while no
// process was alive are still credited. Malformed persisted state is
// discarded and replaced with a fresh stopped timer.
func New(ctx context.Context, opts Options) (*Engine, error) {
	if opts.UserID == "" {
		return nil, fmt.Errorf("timer: missing user id")
	}
	if opts.Profiles == nil || opts.Timers == nil {
		return nil, fmt.Errorf("timer: missing repositories")
	}
	e := &Engine{
		cfg:      opts.Config,
		userID:   opts.UserID,
		profiles: opts.Profiles,
		timers:   opts.Timers,
		events:   opts.Events,
		notifier: opts.Notifier,
		now:      opts.Now,
	}
	if e.cfg.LongBreakInterval <= 0 {
		e.cfg = DefaultConfig()
	}
	if e.notifier == nil {
		e.notifier = notify.Nop{}
	}
	if e.now == nil {
		e.now = time.Now
	}

	raw, token, err := e.timers.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("timer: load state: %w", err)
	}
	e.token = token
	e.state = defaultState(e.cfg)
	if len(raw) > 0 {
		var s State
		if err := json.Unmarshal(raw, &s); err == nil && s.Phase.Valid() {
			e.state = s
		}
	}

	e.mu.Lock()
	e.rollDayLocked()
	if err := e.recoverLocked(ctx); err != nil {
		e.mu.Unlock()
		return nil, err
	}
	err = e.persistLocked(ctx)
	e.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return e, nil
}

// recoverLocked reconciles a countdown that kept running on the wall clock
// while no process was ticking it.
func (e *Engine) recoverLocked(ctx context.Context) error {
	if !e.state.Running {
		e.state.EndTime = nil
		return nil
	}
	if e.state.EndTime == nil {
		// Running without an end time is not a reachable state; stop.
		e.state.Running = false
		return nil
	}
	remaining := int(math.Round(e.state.EndTime.Sub(e.now()).Seconds()))
	if remaining > 0 {
		e.state.Remaining = remaining
		return nil
	}
	return e.completePhaseLocked(ctx, *e.state.EndTime)
}

// State returns a snapshot of the current state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() State {
	s := e.state
	if e.state.EndTime != nil {
		end := *e.state.EndTime
		s.EndTime = &end
	}
	return s
}

// Subscribe registers a callback invoked after every state change. The
// callback runs outside the engine lock.
func (e *Engine) Subscribe(fn func(State)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stateSubs = append(e.stateSubs, fn)
}

// OnProfileChange registers a callback invoked after the engine writes to
// the profile, so other views can refresh points and counters.
func (e *Engine) OnProfileChange(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profileSubs = append(e.profileSubs, fn)
}

// Start begins or resumes the countdown. Starting an already running
// timer is a no-op.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	if e.state.Running {
		e.mu.Unlock()
		return nil
	}
	if e.state.Remaining <= 0 {
		e.state.Remaining = int(e.cfg.DurationFor(e.state.Phase).Seconds())
	}
	e.state.Running = true
	end := e.now().Add(time.Duration(e.state.Remaining) * time.Second)
	e.state.EndTime = &end
	err := e.persistLocked(ctx)
	snap, subs := e.snapshotLocked(), e.stateSubs
	e.mu.Unlock()
	broadcast(subs, snap)
	return err
}

// Pause stops the countdown where it is. Pausing forfeits the current
// quiz streak: answers only chain while the timer runs.
func (e *Engine) Pause(ctx context.Context) error {
	e.mu.Lock()
	if !e.state.Running {
		e.mu.Unlock()
		return nil
	}
	e.state.Running = false
	e.state.EndTime = nil
	e.state.QuizStreak = 0
	err := e.persistLocked(ctx)
	snap, subs := e.snapshotLocked(), e.stateSubs
	e.mu.Unlock()
	broadcast(subs, snap)
	return err
}

// Reset stops the timer and restores the nominal duration of the current
// phase. Session counters are untouched.
func (e *Engine) Reset(ctx context.Context) error {
	e.mu.Lock()
	e.state.Running = false
	e.state.EndTime = nil
	e.state.Remaining = int(e.cfg.DurationFor(e.state.Phase).Seconds())
	err := e.persistLocked(ctx)
	snap, subs := e.snapshotLocked(), e.stateSubs
	e.mu.Unlock()
	broadcast(subs, snap)
	return err
}

// SetPhase switches to a phase directly, stopped at its nominal duration.
// A manual phase switch abandons the current quiz streak.
func (e *Engine) SetPhase(ctx context.Context, p Phase) error {
	if !p.Valid() {
		return fmt.Errorf("timer: unknown phase %q", p)
	}
	e.mu.Lock()
	e.state.Phase = p
	e.state.Running = false
	e.state.EndTime = nil
	e.state.Remaining = int(e.cfg.DurationFor(p).Seconds())
	e.state.QuizStreak = 0
	err := e.persistLocked(ctx)
	snap, subs := e.snapshotLocked(), e.stateSubs
	e.mu.Unlock()
	broadcast(subs, snap)
	return err
}

// Tick advances the countdown against the wall clock. It is safe to call
// at any cadence: remaining time derives from the stored end time, not
// from the number of ticks received.
func (e *Engine) Tick(ctx context.Context) error {
	e.mu.Lock()
	if !e.state.Running || e.state.EndTime == nil {
		e.mu.Unlock()
		return nil
	}
	endTime := *e.state.EndTime
	remaining := int(math.Round(endTime.Sub(e.now()).Seconds()))
	var err error
	var profileChanged bool
	if remaining > 0 {
		e.state.Remaining = remaining
		err = e.persistLocked(ctx)
	} else {
		err = e.completePhaseLocked(ctx, endTime)
		profileChanged = err == nil
		if err == nil {
			err = e.persistLocked(ctx)
		}
	}
	snap, subs, psubs := e.snapshotLocked(), e.stateSubs, e.profileSubs
	e.mu.Unlock()
	broadcast(subs, snap)
	if profileChanged {
		signal(psubs)
	}
	return err
}

// completePhaseLocked runs the zero-countdown transition: a finished
// focus session is credited to the active bank and followed by a break,
// a finished break returns to a fresh focus phase. The timer always ends
// up stopped at the next phase's nominal duration.
//
// finishedAt is the countdown's wall-clock end. In the recovery path it
// can lie on an earlier calendar day than now; the session is credited to
// the day it actually finished, and the today counter is only bumped when
// that day is still the current one.
func (e *Engine) completePhaseLocked(ctx context.Context, finishedAt time.Time) error {
	finished := e.state.Phase
	if finished == PhaseFocus {
		day := profile.DateOf(finishedAt)
		if err := e.creditFocusSessionLocked(ctx, day); err != nil {
			return err
		}
		e.state.TotalSessions++
		e.rollDayLocked()
		if day == e.state.TodayDate {
			e.state.TodaySessions++
		}
		if e.state.TotalSessions%e.cfg.LongBreakInterval == 0 {
			e.state.Phase = PhaseLongBreak
		} else {
			e.state.Phase = PhaseShortBreak
		}
		e.notifier.Notify("Focus complete", "Great work! Time for a break.")
	} else {
		e.state.Phase = PhaseFocus
		e.notifier.Notify("Break over", "Ready for the next focus session?")
	}
	e.state.Running = false
	e.state.EndTime = nil
	e.state.Remaining = int(e.cfg.DurationFor(e.state.Phase).Seconds())
	return nil
}

// creditFocusSessionLocked records the completed session on the active
// bank's progress for day and appends a focus event.
func (e *Engine) creditFocusSessionLocked(ctx context.Context, day profile.Date) error {
	p, _, err := e.profiles.Load(ctx, e.userID)
	if err != nil {
		return fmt.Errorf("timer: credit session: %w", err)
	}
	bank, err := p.Active()
	if err != nil {
		return fmt.Errorf("timer: credit session: %w", err)
	}
	bank.CompletedSessions++
	bank.Day(day).PomodorosCompleted++
	if _, err := e.profiles.Save(ctx, p); err != nil {
		return fmt.Errorf("timer: credit session: %w", err)
	}
	if e.events != nil {
		// Best effort: the session is already credited.
		_ = e.events.AppendFocusEvent(ctx, store.FocusEventData{
			SessionID:    uuid.NewString(),
			UserID:       e.userID,
			Bank:         bank.Name,
			Day:          string(day),
			DurationSecs: int(e.cfg.FocusDuration.Seconds()),
		})
	}
	return nil
}

// RecordCorrectAnswer extends the quiz streak and banks the points on the
// active bank's running total and today's progress.
func (e *Engine) RecordCorrectAnswer(ctx context.Context, points int) error {
	e.mu.Lock()
	// The streak only advances once the points actually land in the
	// profile, so a failed write leaves the in-memory state untouched.
	next := e.state.QuizStreak + 1
	p, _, err := e.profiles.Load(ctx, e.userID)
	if err == nil {
		var bank *profile.Bank
		bank, err = p.Active()
		if err == nil {
			bank.AddPoints(profile.DateOf(e.now()), points)
			if next > bank.HighestQuizStreak {
				bank.HighestQuizStreak = next
			}
			_, err = e.profiles.Save(ctx, p)
		}
	}
	if err == nil {
		e.state.QuizStreak = next
		if next > e.state.HighestQuizStreak {
			e.state.HighestQuizStreak = next
		}
		err = e.persistLocked(ctx)
	}
	snap, subs, psubs := e.snapshotLocked(), e.stateSubs, e.profileSubs
	e.mu.Unlock()
	broadcast(subs, snap)
	if err == nil {
		signal(psubs)
	}
	return err
}

// RecordIncorrectAnswer forfeits the quiz streak. Points already banked
// stay banked.
func (e *Engine) RecordIncorrectAnswer(ctx context.Context) error {
	e.mu.Lock()
	lost := e.state.QuizStreak
	e.state.QuizStreak = 0
	err := e.persistLocked(ctx)
	snap, subs := e.snapshotLocked(), e.stateSubs
	e.mu.Unlock()
	if lost > 0 {
		e.notifier.Notify("Streak lost", fmt.Sprintf("A %d answer streak ends here.", lost))
	}
	broadcast(subs, snap)
	return err
}

// Sync checks the persisted change token and reloads the state if some
// other process has written a newer version. It returns whether a reload
// happened.
func (e *Engine) Sync(ctx context.Context) (bool, error) {
	e.mu.Lock()
	token, err := e.timers.Token(ctx)
	if err != nil || token == e.token {
		e.mu.Unlock()
		return false, err
	}
	raw, token, err := e.timers.Load(ctx)
	if err != nil {
		e.mu.Unlock()
		return false, err
	}
	var s State
	if err := json.Unmarshal(raw, &s); err != nil || !s.Phase.Valid() {
		e.mu.Unlock()
		return false, nil
	}
	e.state = s
	e.token = token
	snap, subs := e.snapshotLocked(), e.stateSubs
	e.mu.Unlock()
	broadcast(subs, snap)
	return true, nil
}

// rollDayLocked resets the per-day session counter when the calendar day
// has changed since the last persisted state.
func (e *Engine) rollDayLocked() {
	today := profile.DateOf(e.now())
	if e.state.TodayDate != today {
		e.state.TodayDate = today
		e.state.TodaySessions = 0
	}
}

func (e *Engine) persistLocked(ctx context.Context) error {
	raw, err := json.Marshal(e.state)
	if err != nil {
		return fmt.Errorf("timer: encode state: %w", err)
	}
	token, err := e.timers.Save(ctx, raw)
	if err != nil {
		return fmt.Errorf("timer: save state: %w", err)
	}
	e.token = token
	return nil
}

func broadcast(subs []func(State), s State) {
	for _, fn := range subs {
		fn(s)
	}
}

func signal(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}
