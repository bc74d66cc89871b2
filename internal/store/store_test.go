package store

import (
	"context"
	"errors"
	"testing"

	"github.com/akshad/studyquest/internal/challenge"
	"github.com/akshad/studyquest/internal/profile"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleProfile() *profile.Profile {
	p := profile.New("u1", "Asha", "biology", []challenge.Question{
		{ID: "q1", Prompt: "?", Choices: []string{"a", "b", "c", "d"}, Answer: 1, Difficulty: challenge.Easy, Category: "cells"},
	})
	b := p.Banks["biology"]
	b.Points = 125
	b.Streak = 3
	b.HighestStreak = 6
	b.HighestQuizStreak = 9
	b.CompletedSessions = 14
	b.LastChallengeDate = "2024-03-09"
	b.Day("2024-03-09").PomodorosCompleted = 2
	b.Day("2024-03-09").ChallengesCompleted = []string{"easy"}
	b.UnlockedPets["sprout"] = true
	p.LastLogin = "2024-03-09"
	return p
}

func TestProfileLoadAbsent(t *testing.T) {
	s := openTestStore(t)
	_, _, err := s.ProfileRepo().Load(context.Background(), "nobody")
	if !errors.Is(err, profile.ErrProfileNotFound) {
		t.Errorf("error = %v, want ErrProfileNotFound", err)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	want := sampleProfile()
	if _, err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, _, err := repo.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	b := got.Banks["biology"]
	if b == nil {
		t.Fatal("bank missing after round trip")
	}
	if b.Points != 125 || b.Streak != 3 || b.HighestStreak != 6 {
		t.Errorf("progress fields lost: %+v", b)
	}
	if b.HighestQuizStreak != 9 || b.CompletedSessions != 14 {
		t.Errorf("counters lost: %+v", b)
	}
	if b.LastChallengeDate != profile.Date("2024-03-09") {
		t.Errorf("lastChallengeDate = %s", b.LastChallengeDate)
	}
	dp := b.DailyProgress["2024-03-09"]
	if dp == nil || dp.PomodorosCompleted != 2 || len(dp.ChallengesCompleted) != 1 {
		t.Errorf("daily progress lost: %+v", dp)
	}
	if !b.UnlockedPets["sprout"] {
		t.Error("unlocked pets lost")
	}
	if len(b.Questions) != 1 || b.Questions[0].Answer != 1 {
		t.Errorf("questions lost: %+v", b.Questions)
	}
	if got.LastLogin != profile.Date("2024-03-09") {
		t.Errorf("lastLogin = %s", got.LastLogin)
	}
}

func TestProfileTokenAdvances(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	p := sampleProfile()
	t1, err := repo.Save(ctx, p)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	p.Banks["biology"].Points += 25
	t2, err := repo.Save(ctx, p)
	if err != nil {
		t.Fatalf("save 2: %v", err)
	}
	if t2 <= t1 {
		t.Errorf("token did not advance: %d then %d", t1, t2)
	}

	_, loaded, err := repo.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded != t2 {
		t.Errorf("loaded token = %d, want %d", loaded, t2)
	}
}

func TestTimerRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.TimerRepo()
	ctx := context.Background()

	// No prior state.
	data, token, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if data != nil || token != 0 {
		t.Fatalf("expected no prior state, got token %d", token)
	}

	t1, err := repo.Save(ctx, []byte(`{"phase":"focus","remaining":1500,"running":true}`))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	t2, err := repo.Save(ctx, []byte(`{"phase":"focus","remaining":1499,"running":true}`))
	if err != nil {
		t.Fatalf("save 2: %v", err)
	}
	if t2 <= t1 {
		t.Errorf("token did not advance: %d then %d", t1, t2)
	}

	data, token, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != t2 {
		t.Errorf("token = %d, want %d", token, t2)
	}
	if len(data) == 0 {
		t.Fatal("no data returned")
	}

	got, err := repo.Token(ctx)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if got != t2 {
		t.Errorf("Token() = %d, want %d", got, t2)
	}
}

func TestTimerSaveRejectsNonObject(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.TimerRepo().Save(context.Background(), []byte(`not json`)); err == nil {
		t.Error("expected error for malformed state")
	}
}

func TestEventAppendAndCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendFocusEvent(ctx, FocusEventData{
			SessionID:    "s1",
			UserID:       "u1",
			Bank:         "biology",
			Day:          "2024-03-09",
			DurationSecs: 1500,
		})
		if err != nil {
			t.Fatalf("append focus %d: %v", i, err)
		}
	}
	err := repo.AppendFocusEvent(ctx, FocusEventData{
		SessionID: "s2", UserID: "u1", Bank: "biology", Day: "2024-03-10", DurationSecs: 1500,
	})
	if err != nil {
		t.Fatalf("append focus: %v", err)
	}

	byDay, err := repo.FocusByDay(ctx, "u1", 7)
	if err != nil {
		t.Fatalf("focus by day: %v", err)
	}
	if len(byDay) != 2 {
		t.Fatalf("days = %d, want 2", len(byDay))
	}
	if byDay[0].Day != "2024-03-09" || byDay[0].Count != 3 {
		t.Errorf("oldest day = %+v, want 2024-03-09 x3", byDay[0])
	}
	if byDay[1].Day != "2024-03-10" || byDay[1].Count != 1 {
		t.Errorf("newest day = %+v, want 2024-03-10 x1", byDay[1])
	}

	if err := repo.AppendChallengeEvent(ctx, ChallengeEventData{
		UserID: "u1", Bank: "biology", Day: "2024-03-09",
		Difficulty: "easy", Score: 4, Total: 5, Passed: true, PointsAwarded: 25,
	}); err != nil {
		t.Fatalf("append challenge: %v", err)
	}
	if err := repo.AppendChallengeEvent(ctx, ChallengeEventData{
		UserID: "u1", Bank: "biology", Day: "2024-03-09",
		Difficulty: "medium", Score: 1, Total: 5,
	}); err != nil {
		t.Fatalf("append challenge 2: %v", err)
	}

	attempted, passed, err := repo.ChallengeCounts(ctx, "u1")
	if err != nil {
		t.Fatalf("challenge counts: %v", err)
	}
	if attempted != 2 || passed != 1 {
		t.Errorf("counts = (%d, %d), want (2, 1)", attempted, passed)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq != int64(i+1) {
			t.Errorf("seq = %d, want %d", seq, i+1)
		}
	}
}
