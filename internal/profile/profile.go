// Package profile defines the persisted per-user record: question banks,
// points, streaks, per-day progress, and unlocked pets. The record is owned
// by the store; every other component mutates it through a full
// read-modify-write cycle.
package profile

import (
	"fmt"

	"github.com/akshad/studyquest/internal/challenge"
)

// SchemaVersion is bumped whenever the serialized shape of Profile changes.
const SchemaVersion = 1

// DefaultPassingScore is the percentage a challenge score must reach to
// count as passed. Configurable per profile.
const DefaultPassingScore = 80

// Profile is one identity's record. Created at first sign-in; deleted only
// by explicit account removal.
type Profile struct {
	Version      int              `json:"version"`
	ID           string           `json:"id"`
	DisplayName  string           `json:"displayName"`
	Banks        map[string]*Bank `json:"banks"`
	ActiveBank   string           `json:"activeBank"`
	LastLogin    Date             `json:"lastLogin,omitempty"`
	PassingScore int              `json:"passingScore"`
}

// Bank is a named collection of questions plus its derived progress.
type Bank struct {
	Name              string                  `json:"name"`
	Questions         []challenge.Question    `json:"questions"`
	Points            int                     `json:"points"`
	Streak            int                     `json:"streak"`
	HighestStreak     int                     `json:"highestStreak"`
	HighestQuizStreak int                     `json:"highestQuizStreak"`
	CompletedSessions int                     `json:"completedSessions"`
	LastChallengeDate Date                    `json:"lastChallengeDate,omitempty"`
	DailyProgress     map[Date]*DailyProgress `json:"dailyProgress"`
	UnlockedPets      map[string]bool         `json:"unlockedPets"`
	PetNames          map[string]string       `json:"petNames,omitempty"`
}

// DailyProgress records one bank's activity on one calendar date. Created
// lazily on the first event of the day; past dates are informational only.
type DailyProgress struct {
	PointsEarned          int      `json:"pointsEarned"`
	PomodorosCompleted    int      `json:"pomodorosCompleted"`
	ChallengesCompleted   []string `json:"challengesCompleted,omitempty"`
	QuestionOfDayAnswered bool     `json:"questionOfDayAnswered"`
}

// New creates a profile with a single bank seeded from the given questions.
func New(id, displayName, bankName string, questions []challenge.Question) *Profile {
	p := &Profile{
		Version:      SchemaVersion,
		ID:           id,
		DisplayName:  displayName,
		Banks:        map[string]*Bank{},
		ActiveBank:   bankName,
		PassingScore: DefaultPassingScore,
	}
	p.Banks[bankName] = NewBank(bankName, questions)
	return p
}

// NewBank creates an empty-progress bank holding the given questions.
func NewBank(name string, questions []challenge.Question) *Bank {
	return &Bank{
		Name:          name,
		Questions:     questions,
		DailyProgress: map[Date]*DailyProgress{},
		UnlockedPets:  map[string]bool{},
	}
}

// Bank returns the named bank or an error when it does not exist. Callers
// must not fall back to another bank: continuing against the wrong bank
// would corrupt its progress.
func (p *Profile) Bank(name string) (*Bank, error) {
	b, ok := p.Banks[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBankNotFound, name)
	}
	return b, nil
}

// Active returns the profile's active bank.
func (p *Profile) Active() (*Bank, error) {
	return p.Bank(p.ActiveBank)
}

// SetPassingScore applies the configured pass threshold and reports
// whether the profile changed. Non-positive scores are ignored so a
// missing config value cannot wipe the stored one.
func (p *Profile) SetPassingScore(score int) bool {
	if score <= 0 || score == p.PassingScore {
		return false
	}
	p.PassingScore = score
	return true
}

// Normalize repairs nil maps after deserialization and clamps the
// highest-ever counters so the streak invariants hold.
func (p *Profile) Normalize() {
	if p.Banks == nil {
		p.Banks = map[string]*Bank{}
	}
	if p.PassingScore <= 0 {
		p.PassingScore = DefaultPassingScore
	}
	for _, b := range p.Banks {
		if b.DailyProgress == nil {
			b.DailyProgress = map[Date]*DailyProgress{}
		}
		if b.UnlockedPets == nil {
			b.UnlockedPets = map[string]bool{}
		}
		if b.HighestStreak < b.Streak {
			b.HighestStreak = b.Streak
		}
	}
}

// Day returns the bank's progress record for date, creating it on first use.
func (b *Bank) Day(date Date) *DailyProgress {
	if b.DailyProgress == nil {
		b.DailyProgress = map[Date]*DailyProgress{}
	}
	dp, ok := b.DailyProgress[date]
	if !ok {
		dp = &DailyProgress{}
		b.DailyProgress[date] = dp
	}
	return dp
}

// AddPoints credits pts to the bank total and to the given day.
func (b *Bank) AddPoints(date Date, pts int) {
	b.Points += pts
	b.Day(date).PointsEarned += pts
}

// CompletedChallenge reports whether the day's progress already records the
// given challenge id.
func (dp *DailyProgress) CompletedChallenge(id string) bool {
	for _, c := range dp.ChallengesCompleted {
		if c == id {
			return true
		}
	}
	return false
}
