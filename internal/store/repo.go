package store

import (
	"context"

	"github.com/akshad/studyquest/internal/profile"
)

// ProfileRepo is the persistence port for profile records. Load and Save
// are atomic per call; the returned token is a logical clock that advances
// on every save, letting readers detect writes from other processes.
type ProfileRepo interface {
	// Load returns the profile for an identity, or
	// profile.ErrProfileNotFound when no record exists.
	Load(ctx context.Context, userID string) (*profile.Profile, int64, error)

	// Save upserts the profile and returns the new change token.
	Save(ctx context.Context, p *profile.Profile) (int64, error)
}

// TimerRepo persists the process-wide timer state singleton.
type TimerRepo interface {
	// Load returns the raw serialized timer state and its change token.
	// A missing row yields (nil, 0, nil): callers start fresh.
	Load(ctx context.Context) ([]byte, int64, error)

	// Save upserts the serialized state and returns the new token.
	Save(ctx context.Context, data []byte) (int64, error)

	// Token returns the current change token without reading the state.
	Token(ctx context.Context) (int64, error)
}

// FocusEventData captures one completed focus session.
type FocusEventData struct {
	SessionID    string
	UserID       string
	Bank         string
	Day          string
	DurationSecs int
}

// ChallengeEventData captures one daily-challenge attempt.
type ChallengeEventData struct {
	UserID        string
	Bank          string
	Day           string
	Difficulty    string
	Score         int
	Total         int
	Passed        bool
	PointsAwarded int
}

// LLMRequestEventData captures one question-authoring LLM call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// DayCount is a per-date aggregate for stats views.
type DayCount struct {
	Day   string
	Count int
}

// EventRepo provides append and aggregate access to the event log.
type EventRepo interface {
	AppendFocusEvent(ctx context.Context, data FocusEventData) error
	AppendChallengeEvent(ctx context.Context, data ChallengeEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// FocusByDay returns completed-session counts for the most recent
	// days, oldest first.
	FocusByDay(ctx context.Context, userID string, days int) ([]DayCount, error)

	// ChallengeCounts returns (attempted, passed) totals for a user.
	ChallengeCounts(ctx context.Context, userID string) (int, int, error)
}
