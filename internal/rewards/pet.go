// Package rewards keeps streaks, points, and pet unlocks consistent with
// observed events. The reconciler runs on every profile load and after
// every completed daily challenge; evaluation is idempotent.
package rewards

// PredicateKind selects how a pet unlocks.
type PredicateKind string

const (
	// PredicateStreak unlocks at a daily-challenge streak length.
	PredicateStreak PredicateKind = "streak"
	// PredicateSessions unlocks at a completed focus-session count.
	PredicateSessions PredicateKind = "sessions"
	// PredicateQuizStreak unlocks at a highest consecutive-correct count.
	PredicateQuizStreak PredicateKind = "quizStreak"
	// PredicatePurchase unlocks by spending points.
	PredicatePurchase PredicateKind = "purchase"
)

// Pet is a static catalog entry. Never mutated at runtime; the reconciler
// only reads it to decide unlock state. IDs are stored in profiles, so
// they must stay stable.
type Pet struct {
	ID          string
	Name        string
	Description string
	Predicate   PredicateKind

	// Threshold is the required count for streak/sessions/quizStreak
	// predicates.
	Threshold int

	// Cost is the point price for purchase predicates.
	Cost int
}

// CounterFor returns the profile counter the pet's predicate is evaluated
// against, or -1 for purchase pets, which only unlock explicitly.
func (p Pet) CounterFor(streak, sessions, quizStreak int) int {
	switch p.Predicate {
	case PredicateStreak:
		return streak
	case PredicateSessions:
		return sessions
	case PredicateQuizStreak:
		return quizStreak
	}
	return -1
}
