package rewards

import (
	"errors"
	"testing"

	"github.com/akshad/studyquest/internal/challenge"
	"github.com/akshad/studyquest/internal/profile"
)

func testPets() []Pet {
	return []Pet{
		{ID: "sprout", Name: "Sprout", Description: "3-day streak", Predicate: PredicateStreak, Threshold: 3},
		{ID: "ember", Name: "Ember", Description: "10 focus sessions", Predicate: PredicateSessions, Threshold: 10},
		{ID: "zippy", Name: "Zippy", Description: "8 correct in a row", Predicate: PredicateQuizStreak, Threshold: 8},
		{ID: "nimbus", Name: "Nimbus", Description: "a loyal cloud", Predicate: PredicatePurchase, Cost: 200},
	}
}

func testProfile() *profile.Profile {
	return profile.New("u1", "Asha", "biology", nil)
}

func countKind(notices []Notice, kind NoticeKind) int {
	n := 0
	for _, notice := range notices {
		if notice.Kind == kind {
			n++
		}
	}
	return n
}

func TestStreakLossAfterGap(t *testing.T) {
	r := NewReconciler(testPets(), nil)
	p := testProfile()
	b := p.Banks["biology"]
	b.Streak = 5
	b.HighestStreak = 5
	b.LastChallengeDate = "2024-03-06" // three days before load
	p.LastLogin = "2024-03-06"

	notices := r.OnLoad(p, "2024-03-09")

	if b.Streak != 0 {
		t.Errorf("streak = %d, want 0", b.Streak)
	}
	if b.HighestStreak != 5 {
		t.Errorf("highestStreak = %d, want preserved 5", b.HighestStreak)
	}
	if got := countKind(notices, NoticeStreakLost); got != 1 {
		t.Errorf("streak-lost notices = %d, want exactly 1", got)
	}

	// Same-day reload: the transition already happened.
	notices = r.OnLoad(p, "2024-03-09")
	if got := countKind(notices, NoticeStreakLost); got != 0 {
		t.Errorf("second load emitted %d streak-lost notices, want 0", got)
	}
}

func TestStreakSurvivesWhenYesterdayCompleted(t *testing.T) {
	r := NewReconciler(testPets(), nil)
	p := testProfile()
	b := p.Banks["biology"]
	b.Streak = 5
	b.HighestStreak = 5
	b.LastChallengeDate = "2024-03-08" // yesterday
	p.LastLogin = "2024-03-08"

	notices := r.OnLoad(p, "2024-03-09")

	if b.Streak != 5 {
		t.Errorf("streak = %d, want untouched 5", b.Streak)
	}
	if got := countKind(notices, NoticeStreakLost); got != 0 {
		t.Errorf("streak-lost notices = %d, want 0", got)
	}
}

func TestStreakZeroNoNotice(t *testing.T) {
	r := NewReconciler(testPets(), nil)
	p := testProfile()
	p.LastLogin = "2024-03-01"

	notices := r.OnLoad(p, "2024-03-09")
	if got := countKind(notices, NoticeStreakLost); got != 0 {
		t.Errorf("lost-streak notice for a zero streak: %d", got)
	}
}

func TestChallengePassAwardsOncePerDay(t *testing.T) {
	r := NewReconciler(testPets(), nil)
	p := testProfile()
	b := p.Banks["biology"]
	b.LastChallengeDate = "2024-03-08"
	b.Streak = 2

	// First pass of the day: easy, worth 25.
	out, _, err := r.OnChallengeCompleted(p, "biology", ChallengeResult{
		Difficulty: challenge.Easy, Score: 4, Total: 5, Date: "2024-03-09",
	})
	if err != nil {
		t.Fatalf("easy: %v", err)
	}
	if !out.Passed || !out.FirstOfDay || out.PointsAwarded != 25 {
		t.Errorf("easy outcome = %+v, want passed first-of-day worth 25", out)
	}

	// Second pass the same day: medium, worth 75, but nothing awarded.
	out, _, err = r.OnChallengeCompleted(p, "biology", ChallengeResult{
		Difficulty: challenge.Medium, Score: 5, Total: 5, Date: "2024-03-09",
	})
	if err != nil {
		t.Fatalf("medium: %v", err)
	}
	if !out.Passed || out.FirstOfDay || out.PointsAwarded != 0 {
		t.Errorf("medium outcome = %+v, want passed but unawarded", out)
	}

	if b.Points != 25 {
		t.Errorf("points = %d, want 25 (first pass only)", b.Points)
	}
	if b.Streak != 3 {
		t.Errorf("streak = %d, want exactly one increment to 3", b.Streak)
	}
	dp := b.DailyProgress["2024-03-09"]
	if len(dp.ChallengesCompleted) != 2 {
		t.Fatalf("challengesCompleted = %v, want both ids", dp.ChallengesCompleted)
	}
	if dp.ChallengesCompleted[0] != "easy" || dp.ChallengesCompleted[1] != "medium" {
		t.Errorf("challengesCompleted = %v", dp.ChallengesCompleted)
	}
}

func TestChallengeFailAwardsNothing(t *testing.T) {
	r := NewReconciler(testPets(), nil)
	p := testProfile()
	b := p.Banks["biology"]

	out, notices, err := r.OnChallengeCompleted(p, "biology", ChallengeResult{
		Difficulty: challenge.Easy, Score: 2, Total: 5, Date: "2024-03-09",
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out.Passed {
		t.Error("2/5 should not pass at the default threshold")
	}
	if b.Points != 0 || b.Streak != 0 || len(notices) != 0 {
		t.Errorf("failed challenge mutated progress: points=%d streak=%d notices=%d", b.Points, b.Streak, len(notices))
	}
	if dp := b.DailyProgress["2024-03-09"]; dp != nil && len(dp.ChallengesCompleted) != 0 {
		t.Errorf("failed challenge recorded completion: %v", dp.ChallengesCompleted)
	}
}

func TestPassingScoreBoundary(t *testing.T) {
	r := NewReconciler(testPets(), nil)
	p := testProfile()
	p.PassingScore = 80

	// 4/5 = 80% passes exactly at the threshold.
	out, _, err := r.OnChallengeCompleted(p, "biology", ChallengeResult{
		Difficulty: challenge.Easy, Score: 4, Total: 5, Date: "2024-03-09",
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !out.Passed {
		t.Error("score at exactly the passing threshold should pass")
	}
}

func TestChallengeUnknownBank(t *testing.T) {
	r := NewReconciler(testPets(), nil)
	p := testProfile()

	_, _, err := r.OnChallengeCompleted(p, "chemistry", ChallengeResult{
		Difficulty: challenge.Easy, Score: 5, Total: 5, Date: "2024-03-09",
	})
	if !errors.Is(err, profile.ErrBankNotFound) {
		t.Errorf("error = %v, want ErrBankNotFound", err)
	}
}

func TestStreakInvariantAcrossSequence(t *testing.T) {
	r := NewReconciler(testPets(), nil)
	p := testProfile()
	b := p.Banks["biology"]

	date := profile.Date("2024-03-01")
	for i := 0; i < 10; i++ {
		r.OnLoad(p, date)
		_, _, err := r.OnChallengeCompleted(p, "biology", ChallengeResult{
			Difficulty: challenge.Easy, Score: 5, Total: 5, Date: date,
		})
		if err != nil {
			t.Fatalf("day %d: %v", i, err)
		}
		if b.HighestStreak < b.Streak {
			t.Fatalf("day %d: highestStreak %d < streak %d", i, b.HighestStreak, b.Streak)
		}
		// Skip a day every fourth iteration to force streak losses.
		if i%4 == 3 {
			date = date.AddDays(2)
		} else {
			date = date.AddDays(1)
		}
	}
}

func TestPetUnlockIdempotent(t *testing.T) {
	r := NewReconciler(testPets(), nil)
	p := testProfile()
	b := p.Banks["biology"]
	b.Streak = 3
	b.CompletedSessions = 12

	notices := r.OnLoad(p, "2024-03-09")
	if got := countKind(notices, NoticePetUnlocked); got != 2 {
		t.Fatalf("unlock notices = %d, want 2 (sprout, ember)", got)
	}
	if !b.UnlockedPets["sprout"] || !b.UnlockedPets["ember"] {
		t.Error("expected sprout and ember unlocked")
	}

	// Re-running with no state change emits nothing new.
	notices = r.OnLoad(p, "2024-03-09")
	if got := countKind(notices, NoticePetUnlocked); got != 0 {
		t.Errorf("second evaluation emitted %d unlock notices, want 0", got)
	}
	if len(b.UnlockedPets) != 2 {
		t.Errorf("unlocked set = %v, want exactly 2 entries", b.UnlockedPets)
	}
}

func TestQuizStreakPetUnlock(t *testing.T) {
	r := NewReconciler(testPets(), nil)
	p := testProfile()
	p.Banks["biology"].HighestQuizStreak = 8

	notices := r.OnLoad(p, "2024-03-09")
	if got := countKind(notices, NoticePetUnlocked); got != 1 {
		t.Fatalf("unlock notices = %d, want 1", got)
	}
	if !p.Banks["biology"].UnlockedPets["zippy"] {
		t.Error("zippy should unlock at quiz streak 8")
	}
}

func TestPurchase(t *testing.T) {
	r := NewReconciler(testPets(), nil)
	p := testProfile()
	b := p.Banks["biology"]
	b.Points = 250

	notice, err := r.Purchase(p, "biology", "nimbus")
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if notice.Kind != NoticePetUnlocked || notice.PetID != "nimbus" {
		t.Errorf("notice = %+v", notice)
	}
	if b.Points != 50 {
		t.Errorf("points = %d, want 50 after spending 200", b.Points)
	}
	if !b.UnlockedPets["nimbus"] {
		t.Error("nimbus not unlocked")
	}

	if _, err := r.Purchase(p, "biology", "nimbus"); !errors.Is(err, ErrPetAlreadyUnlocked) {
		t.Errorf("repurchase error = %v, want ErrPetAlreadyUnlocked", err)
	}
}

func TestPurchaseErrors(t *testing.T) {
	r := NewReconciler(testPets(), nil)
	p := testProfile()

	if _, err := r.Purchase(p, "biology", "nimbus"); !errors.Is(err, ErrInsufficientPoints) {
		t.Errorf("broke purchase error = %v, want ErrInsufficientPoints", err)
	}
	if _, err := r.Purchase(p, "biology", "ghost"); !errors.Is(err, ErrPetUnknown) {
		t.Errorf("unknown pet error = %v, want ErrPetUnknown", err)
	}
	if _, err := r.Purchase(p, "biology", "sprout"); !errors.Is(err, ErrPetNotPurchasable) {
		t.Errorf("streak pet purchase error = %v, want ErrPetNotPurchasable", err)
	}
}

func TestRenamePet(t *testing.T) {
	r := NewReconciler(testPets(), nil)
	p := testProfile()
	b := p.Banks["biology"]
	b.UnlockedPets["sprout"] = true

	if err := r.RenamePet(p, "biology", "sprout", "Fern"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if b.PetNames["sprout"] != "Fern" {
		t.Errorf("petNames = %v", b.PetNames)
	}

	if err := r.RenamePet(p, "biology", "ember", "Coal"); err == nil {
		t.Error("renaming a locked pet should fail")
	}
}
