package timer

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/akshad/studyquest/internal/notify"
	"github.com/akshad/studyquest/internal/profile"
)

// memProfiles is an in-memory ProfileRepo that round-trips through JSON on
// every call, the same shape a real database row takes.
type memProfiles struct {
	mu    sync.Mutex
	docs  map[string][]byte
	token int64
}

func newMemProfiles() *memProfiles {
	return &memProfiles{docs: map[string][]byte{}}
}

func (m *memProfiles) Load(_ context.Context, userID string) (*profile.Profile, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.docs[userID]
	if !ok {
		return nil, 0, profile.ErrProfileNotFound
	}
	var p profile.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, 0, err
	}
	p.Normalize()
	return &p, m.token, nil
}

func (m *memProfiles) Save(_ context.Context, p *profile.Profile) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, err := json.Marshal(p)
	if err != nil {
		return 0, err
	}
	m.docs[p.ID] = raw
	m.token++
	return m.token, nil
}

type memTimer struct {
	mu    sync.Mutex
	raw   []byte
	token int64
}

func (m *memTimer) Load(context.Context) ([]byte, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.raw, m.token, nil
}

func (m *memTimer) Save(_ context.Context, data []byte) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.raw = append([]byte(nil), data...)
	m.token++
	return m.token, nil
}

func (m *memTimer) Token(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

// clock is a manual test clock.
type clock struct {
	mu sync.Mutex
	t  time.Time
}

func newClock() *clock {
	return &clock{t: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type fixture struct {
	engine   *Engine
	profiles *memProfiles
	timers   *memTimer
	clock    *clock
	recorder *notify.Recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		profiles: newMemProfiles(),
		timers:   &memTimer{},
		clock:    newClock(),
		recorder: &notify.Recorder{},
	}
	p := profile.New("u1", "Akshad", "biology", nil)
	if _, err := f.profiles.Save(context.Background(), p); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	f.engine = f.newEngine(t)
	return f
}

func (f *fixture) newEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(context.Background(), Options{
		UserID:   "u1",
		Profiles: f.profiles,
		Timers:   f.timers,
		Notifier: f.recorder,
		Config:   DefaultConfig(),
		Now:      f.clock.Now,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func (f *fixture) bank(t *testing.T) *profile.Bank {
	t.Helper()
	p, _, err := f.profiles.Load(context.Background(), "u1")
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	bank, err := p.Active()
	if err != nil {
		t.Fatalf("active bank: %v", err)
	}
	return bank
}

// runFocusToCompletion starts the timer, moves the clock past the end and
// ticks once.
func (f *fixture) runFocusToCompletion(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	if err := f.engine.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	f.clock.Advance(25*time.Minute + time.Second)
	if err := f.engine.Tick(ctx); err != nil {
		t.Fatalf("Tick: %v", err)
	}
}

func TestNewStartsFreshWithoutPersistedState(t *testing.T) {
	f := newFixture(t)
	s := f.engine.State()
	if s.Phase != PhaseFocus {
		t.Fatalf("phase = %q, want focus", s.Phase)
	}
	if s.Running {
		t.Fatal("fresh timer should be stopped")
	}
	if s.Remaining != 25*60 {
		t.Fatalf("remaining = %d, want %d", s.Remaining, 25*60)
	}
}

func TestStartSetsEndTime(t *testing.T) {
	f := newFixture(t)
	if err := f.engine.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s := f.engine.State()
	if !s.Running || s.EndTime == nil {
		t.Fatalf("state after start = %+v", s)
	}
	want := f.clock.Now().Add(25 * time.Minute)
	if !s.EndTime.Equal(want) {
		t.Fatalf("end time = %v, want %v", s.EndTime, want)
	}
}

func TestTickDerivesRemainingFromWallClock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	if err := f.engine.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	// Irregular tick cadence must not matter.
	f.clock.Advance(90 * time.Second)
	if err := f.engine.Tick(ctx); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if got := f.engine.State().Remaining; got != 25*60-90 {
		t.Fatalf("remaining = %d, want %d", got, 25*60-90)
	}
}

func TestFocusCompletionCreditsActiveBank(t *testing.T) {
	f := newFixture(t)
	f.runFocusToCompletion(t)

	s := f.engine.State()
	if s.Phase != PhaseShortBreak {
		t.Fatalf("phase = %q, want shortBreak", s.Phase)
	}
	if s.Running {
		t.Fatal("timer should stop on phase completion")
	}
	if s.Remaining != 5*60 {
		t.Fatalf("remaining = %d, want %d", s.Remaining, 5*60)
	}
	if s.TotalSessions != 1 || s.TodaySessions != 1 {
		t.Fatalf("sessions = %d/%d, want 1/1", s.TotalSessions, s.TodaySessions)
	}

	bank := f.bank(t)
	if bank.CompletedSessions != 1 {
		t.Fatalf("bank sessions = %d, want 1", bank.CompletedSessions)
	}
	today := profile.DateOf(f.clock.Now())
	if got := bank.Day(today).PomodorosCompleted; got != 1 {
		t.Fatalf("today pomodoros = %d, want 1", got)
	}
	if f.recorder.Count() != 1 {
		t.Fatalf("notifications = %d, want 1", f.recorder.Count())
	}
}

func TestEveryFourthFocusEarnsLongBreak(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for i := 1; i <= 4; i++ {
		if err := f.engine.SetPhase(ctx, PhaseFocus); err != nil {
			t.Fatalf("SetPhase: %v", err)
		}
		f.runFocusToCompletion(t)
		s := f.engine.State()
		want := PhaseShortBreak
		if i == 4 {
			want = PhaseLongBreak
		}
		if s.Phase != want {
			t.Fatalf("after session %d: phase = %q, want %q", i, s.Phase, want)
		}
	}
}

func TestBreakCompletionReturnsToFocus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	if err := f.engine.SetPhase(ctx, PhaseShortBreak); err != nil {
		t.Fatalf("SetPhase: %v", err)
	}
	if err := f.engine.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	f.clock.Advance(6 * time.Minute)
	if err := f.engine.Tick(ctx); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	s := f.engine.State()
	if s.Phase != PhaseFocus || s.Running {
		t.Fatalf("state after break = %+v", s)
	}
	if s.TotalSessions != 0 {
		t.Fatal("breaks must not count as sessions")
	}
	if f.bank(t).CompletedSessions != 0 {
		t.Fatal("breaks must not credit the bank")
	}
}

func TestPauseForfeitsQuizStreak(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	if err := f.engine.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := f.engine.RecordCorrectAnswer(ctx, 10); err != nil {
			t.Fatalf("RecordCorrectAnswer: %v", err)
		}
	}
	if got := f.engine.State().QuizStreak; got != 3 {
		t.Fatalf("quiz streak = %d, want 3", got)
	}
	if err := f.engine.Pause(ctx); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	s := f.engine.State()
	if s.Running || s.EndTime != nil {
		t.Fatalf("state after pause = %+v", s)
	}
	if s.QuizStreak != 0 {
		t.Fatalf("quiz streak after pause = %d, want 0", s.QuizStreak)
	}
	if s.HighestQuizStreak != 3 {
		t.Fatalf("highest quiz streak = %d, want 3", s.HighestQuizStreak)
	}
}

func TestResetRestoresNominalWithoutTouchingCounters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.runFocusToCompletion(t)
	if err := f.engine.SetPhase(ctx, PhaseFocus); err != nil {
		t.Fatalf("SetPhase: %v", err)
	}
	if err := f.engine.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	f.clock.Advance(10 * time.Minute)
	if err := f.engine.Tick(ctx); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if err := f.engine.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	s := f.engine.State()
	if s.Running || s.Remaining != 25*60 {
		t.Fatalf("state after reset = %+v", s)
	}
	if s.TotalSessions != 1 {
		t.Fatalf("reset must not alter session count, got %d", s.TotalSessions)
	}
}

func TestRecordAnswersBankPointsAndStreak(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	today := profile.DateOf(f.clock.Now())

	if err := f.engine.RecordCorrectAnswer(ctx, 10); err != nil {
		t.Fatalf("RecordCorrectAnswer: %v", err)
	}
	if err := f.engine.RecordCorrectAnswer(ctx, 15); err != nil {
		t.Fatalf("RecordCorrectAnswer: %v", err)
	}
	bank := f.bank(t)
	if bank.Points != 25 {
		t.Fatalf("points = %d, want 25", bank.Points)
	}
	if got := bank.Day(today).PointsEarned; got != 25 {
		t.Fatalf("today points = %d, want 25", got)
	}
	if bank.HighestQuizStreak != 2 {
		t.Fatalf("bank highest quiz streak = %d, want 2", bank.HighestQuizStreak)
	}

	if err := f.engine.RecordIncorrectAnswer(ctx); err != nil {
		t.Fatalf("RecordIncorrectAnswer: %v", err)
	}
	s := f.engine.State()
	if s.QuizStreak != 0 {
		t.Fatalf("quiz streak = %d, want 0", s.QuizStreak)
	}
	if s.HighestQuizStreak != 2 {
		t.Fatalf("highest quiz streak = %d, want 2", s.HighestQuizStreak)
	}
	// Points already banked stay banked.
	if f.bank(t).Points != 25 {
		t.Fatalf("points after miss = %d, want 25", f.bank(t).Points)
	}
}

func TestIncorrectAnswerWithoutStreakIsQuiet(t *testing.T) {
	f := newFixture(t)
	if err := f.engine.RecordIncorrectAnswer(context.Background()); err != nil {
		t.Fatalf("RecordIncorrectAnswer: %v", err)
	}
	if f.recorder.Count() != 0 {
		t.Fatalf("notifications = %d, want 0", f.recorder.Count())
	}
}

func TestRecoveryAdoptsRemainingCountdown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	if err := f.engine.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	f.clock.Advance(10 * time.Minute)

	e2 := f.newEngine(t)
	s := e2.State()
	if !s.Running {
		t.Fatal("recovered countdown should still be running")
	}
	if s.Remaining != 15*60 {
		t.Fatalf("remaining = %d, want %d", s.Remaining, 15*60)
	}
}

func TestRecoveryCompletesExpiredCountdownExactlyOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	if err := f.engine.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	// The countdown ends while no process is ticking it.
	f.clock.Advance(30 * time.Minute)

	e2 := f.newEngine(t)
	s := e2.State()
	if s.Running {
		t.Fatal("expired countdown should complete, not keep running")
	}
	if s.Phase != PhaseShortBreak {
		t.Fatalf("phase = %q, want shortBreak", s.Phase)
	}
	if s.TotalSessions != 1 {
		t.Fatalf("total sessions = %d, want 1", s.TotalSessions)
	}
	if f.bank(t).CompletedSessions != 1 {
		t.Fatalf("bank sessions = %d, want 1", f.bank(t).CompletedSessions)
	}

	// A third construction sees the already-completed state and must not
	// credit the session again.
	e3 := f.newEngine(t)
	if got := e3.State().TotalSessions; got != 1 {
		t.Fatalf("total sessions after re-recovery = %d, want 1", got)
	}
	if f.bank(t).CompletedSessions != 1 {
		t.Fatalf("bank sessions after re-recovery = %d, want 1", f.bank(t).CompletedSessions)
	}
}

func TestRecoveryCreditsTheDayTheCountdownEnded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	if err := f.engine.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	endDay := profile.DateOf(f.clock.Now().Add(25 * time.Minute))

	// The countdown expires overnight and the app only comes back the
	// next calendar day.
	f.clock.Advance(26 * time.Hour)

	e2 := f.newEngine(t)
	s := e2.State()
	if s.TotalSessions != 1 {
		t.Fatalf("total sessions = %d, want 1", s.TotalSessions)
	}
	if s.TodaySessions != 0 {
		t.Fatalf("today sessions = %d, want 0; yesterday's session must not count today", s.TodaySessions)
	}

	bank := f.bank(t)
	if got := bank.Day(endDay).PomodorosCompleted; got != 1 {
		t.Fatalf("pomodoros on %s = %d, want 1", endDay, got)
	}
	today := profile.DateOf(f.clock.Now())
	if got := bank.Day(today).PomodorosCompleted; got != 0 {
		t.Fatalf("pomodoros on %s = %d, want 0", today, got)
	}
}

func TestMalformedPersistedStateStartsFresh(t *testing.T) {
	f := newFixture(t)
	if _, err := f.timers.Save(context.Background(), []byte(`{"phase": 12`)); err != nil {
		t.Fatalf("seed malformed state: %v", err)
	}
	e := f.newEngine(t)
	s := e.State()
	if s.Phase != PhaseFocus || s.Running || s.Remaining != 25*60 {
		t.Fatalf("state from malformed doc = %+v", s)
	}
}

func TestNewDayResetsTodaySessions(t *testing.T) {
	f := newFixture(t)
	f.runFocusToCompletion(t)
	if got := f.engine.State().TodaySessions; got != 1 {
		t.Fatalf("today sessions = %d, want 1", got)
	}

	f.clock.Advance(24 * time.Hour)
	e2 := f.newEngine(t)
	s := e2.State()
	if s.TodaySessions != 0 {
		t.Fatalf("today sessions after day roll = %d, want 0", s.TodaySessions)
	}
	if s.TotalSessions != 1 {
		t.Fatalf("total sessions must survive the day roll, got %d", s.TotalSessions)
	}
}

func TestSyncPicksUpForeignWrites(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	e2 := f.newEngine(t)
	if err := f.engine.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}

	var seen []State
	e2.Subscribe(func(s State) { seen = append(seen, s) })
	changed, err := e2.Sync(ctx)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if !changed {
		t.Fatal("Sync should detect the foreign write")
	}
	if !e2.State().Running {
		t.Fatal("second engine should adopt the running countdown")
	}
	if len(seen) != 1 {
		t.Fatalf("subscriber calls = %d, want 1", len(seen))
	}

	changed, err = e2.Sync(ctx)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if changed {
		t.Fatal("Sync with no new writes should be a no-op")
	}
}

func TestCreditFailsLoudlyWhenProfileMissing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	delete(f.profiles.docs, "u1")

	if err := f.engine.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	f.clock.Advance(26 * time.Minute)
	if err := f.engine.Tick(ctx); err == nil {
		t.Fatal("Tick should surface the missing profile")
	}
}

func TestCorrectAnswerLeavesStreakUntouchedWhenBankingFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	delete(f.profiles.docs, "u1")

	if err := f.engine.RecordCorrectAnswer(ctx, 10); err == nil {
		t.Fatal("RecordCorrectAnswer should surface the missing profile")
	}
	s := f.engine.State()
	if s.QuizStreak != 0 {
		t.Fatalf("quiz streak = %d, want 0; unbanked answers must not advance it", s.QuizStreak)
	}
	if s.HighestQuizStreak != 0 {
		t.Fatalf("highest quiz streak = %d, want 0", s.HighestQuizStreak)
	}
}

func TestHighestQuizStreakNeverBelowCurrent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if err := f.engine.RecordCorrectAnswer(ctx, 5); err != nil {
			t.Fatalf("RecordCorrectAnswer: %v", err)
		}
		s := f.engine.State()
		if s.HighestQuizStreak < s.QuizStreak {
			t.Fatalf("highest %d < current %d", s.HighestQuizStreak, s.QuizStreak)
		}
	}
}
