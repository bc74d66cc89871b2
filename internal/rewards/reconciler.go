package rewards

import (
	"errors"
	"fmt"

	"github.com/akshad/studyquest/internal/challenge"
	"github.com/akshad/studyquest/internal/profile"
)

var (
	ErrPetUnknown         = errors.New("unknown pet")
	ErrPetNotPurchasable  = errors.New("pet is not purchasable")
	ErrPetAlreadyUnlocked = errors.New("pet already unlocked")
	ErrInsufficientPoints = errors.New("not enough points")
)

// DefaultPointAwards maps a challenge tier to the points a first pass of
// the day is worth.
func DefaultPointAwards() map[challenge.Difficulty]int {
	return map[challenge.Difficulty]int{
		challenge.Easy:   25,
		challenge.Medium: 75,
		challenge.Hard:   150,
	}
}

// ChallengeResult describes one finished daily challenge.
type ChallengeResult struct {
	Difficulty challenge.Difficulty
	Score      int
	Total      int
	Date       profile.Date
}

// Outcome summarizes what a challenge completion changed, for event
// logging and UI feedback.
type Outcome struct {
	Passed        bool
	FirstOfDay    bool // first passed challenge of the calendar day
	PointsAwarded int
}

// Reconciler derives streaks and pet unlocks from the profile record. It
// mutates profiles in memory only; persisting the result stays with the
// caller, which keeps every mutation a single read-modify-write cycle.
type Reconciler struct {
	pets   []Pet
	points map[challenge.Difficulty]int
}

// NewReconciler builds a reconciler over the static pet catalog.
func NewReconciler(pets []Pet, points map[challenge.Difficulty]int) *Reconciler {
	if points == nil {
		points = DefaultPointAwards()
	}
	return &Reconciler{pets: pets, points: points}
}

// OnLoad applies the streak-loss rule and re-evaluates unlocks. Called
// once per profile load; the LastLogin update makes the day transition
// fire at most once per calendar day.
//
// A streak is lost only when no challenge was completed yesterday: a
// streak already secured for today, or securable because yesterday's
// challenge was done, survives the login.
func (r *Reconciler) OnLoad(p *profile.Profile, today profile.Date) []Notice {
	var notices []Notice

	if p.LastLogin.Before(today) {
		yesterday := today.AddDays(-1)
		for _, b := range p.Banks {
			if b.Streak > 0 && b.LastChallengeDate.Before(yesterday) {
				notices = append(notices, streakLostNotice(b.Streak))
				b.Streak = 0
			}
		}
	}
	p.LastLogin = today

	for _, b := range p.Banks {
		notices = append(notices, r.evaluateUnlocks(b)...)
	}
	return notices
}

// OnChallengeCompleted records a finished challenge against the named
// bank. Streak and points are awarded at most once per calendar day, on
// the first passed challenge of any tier; later passes the same day only
// mark completion.
func (r *Reconciler) OnChallengeCompleted(p *profile.Profile, bankName string, res ChallengeResult) (Outcome, []Notice, error) {
	b, err := p.Bank(bankName)
	if err != nil {
		return Outcome{}, nil, err
	}
	if !res.Difficulty.Valid() {
		return Outcome{}, nil, fmt.Errorf("invalid difficulty %q", res.Difficulty)
	}

	var out Outcome
	var notices []Notice

	out.Passed = res.Total > 0 && res.Score*100 >= p.PassingScore*res.Total
	if !out.Passed {
		return out, nil, nil
	}

	dp := b.Day(res.Date)
	id := string(res.Difficulty)
	if !dp.CompletedChallenge(id) {
		dp.ChallengesCompleted = append(dp.ChallengesCompleted, id)
	}

	if b.LastChallengeDate.Before(res.Date) {
		out.FirstOfDay = true
		out.PointsAwarded = r.points[res.Difficulty]
		b.AddPoints(res.Date, out.PointsAwarded)
		b.Streak++
		if b.HighestStreak < b.Streak {
			b.HighestStreak = b.Streak
		}
		b.LastChallengeDate = res.Date
		notices = append(notices, streakGainedNotice(b.Streak))
	}

	notices = append(notices, r.evaluateUnlocks(b)...)
	return out, notices, nil
}

// Purchase unlocks a purchase-predicate pet by spending bank points.
func (r *Reconciler) Purchase(p *profile.Profile, bankName, petID string) (Notice, error) {
	b, err := p.Bank(bankName)
	if err != nil {
		return Notice{}, err
	}

	pet, ok := r.petByID(petID)
	if !ok {
		return Notice{}, fmt.Errorf("%w: %q", ErrPetUnknown, petID)
	}
	if pet.Predicate != PredicatePurchase {
		return Notice{}, fmt.Errorf("%w: %q", ErrPetNotPurchasable, petID)
	}
	if b.UnlockedPets[petID] {
		return Notice{}, fmt.Errorf("%w: %q", ErrPetAlreadyUnlocked, petID)
	}
	if b.Points < pet.Cost {
		return Notice{}, fmt.Errorf("%w: have %d, need %d", ErrInsufficientPoints, b.Points, pet.Cost)
	}

	b.Points -= pet.Cost
	b.UnlockedPets[petID] = true
	return petUnlockedNotice(pet), nil
}

// RenamePet sets a custom display name for an unlocked pet.
func (r *Reconciler) RenamePet(p *profile.Profile, bankName, petID, name string) error {
	b, err := p.Bank(bankName)
	if err != nil {
		return err
	}
	if _, ok := r.petByID(petID); !ok {
		return fmt.Errorf("%w: %q", ErrPetUnknown, petID)
	}
	if !b.UnlockedPets[petID] {
		return fmt.Errorf("pet %q is locked", petID)
	}
	if b.PetNames == nil {
		b.PetNames = map[string]string{}
	}
	b.PetNames[petID] = name
	return nil
}

// evaluateUnlocks adds every count-predicate pet whose threshold the
// bank's counters have reached. Re-running with unchanged state emits
// nothing: already-unlocked pets are skipped before any notice.
func (r *Reconciler) evaluateUnlocks(b *profile.Bank) []Notice {
	var notices []Notice
	for _, pet := range r.pets {
		if b.UnlockedPets[pet.ID] {
			continue
		}
		counter := pet.CounterFor(b.Streak, b.CompletedSessions, b.HighestQuizStreak)
		if counter < 0 || counter < pet.Threshold {
			continue
		}
		b.UnlockedPets[pet.ID] = true
		notices = append(notices, petUnlockedNotice(pet))
	}
	return notices
}

func (r *Reconciler) petByID(id string) (Pet, bool) {
	for _, p := range r.pets {
		if p.ID == id {
			return p, true
		}
	}
	return Pet{}, false
}

// Pets returns the static catalog the reconciler evaluates against.
func (r *Reconciler) Pets() []Pet {
	return r.pets
}
