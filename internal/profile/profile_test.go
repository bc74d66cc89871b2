package profile

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/akshad/studyquest/internal/challenge"
)

func TestDateOf(t *testing.T) {
	d := DateOf(time.Date(2024, 3, 9, 23, 59, 0, 0, time.UTC))
	if d != Date("2024-03-09") {
		t.Errorf("DateOf = %s, want 2024-03-09", d)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2024-03-09", false},
		{"2024-3-9", true},
		{"03/09/2024", true},
		{"", true},
	}
	for _, tt := range tests {
		_, err := ParseDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestDateOrdering(t *testing.T) {
	a := Date("2024-03-08")
	b := Date("2024-03-09")
	if !a.Before(b) || b.Before(a) {
		t.Error("date ordering broken")
	}
	if !Date("").Before(a) {
		t.Error("zero date should sort before real dates")
	}
}

func TestDateAddDays(t *testing.T) {
	tests := []struct {
		in   Date
		n    int
		want Date
	}{
		{"2024-03-09", -1, "2024-03-08"},
		{"2024-03-01", -1, "2024-02-29"}, // leap year
		{"2023-12-31", 1, "2024-01-01"},
	}
	for _, tt := range tests {
		if got := tt.in.AddDays(tt.n); got != tt.want {
			t.Errorf("%s.AddDays(%d) = %s, want %s", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestBankLookup(t *testing.T) {
	p := New("u1", "Asha", "biology", nil)

	if _, err := p.Active(); err != nil {
		t.Fatalf("active bank: %v", err)
	}
	_, err := p.Bank("chemistry")
	if !errors.Is(err, ErrBankNotFound) {
		t.Errorf("missing bank error = %v, want ErrBankNotFound", err)
	}
}

func TestDayLazyCreation(t *testing.T) {
	b := NewBank("biology", nil)
	if len(b.DailyProgress) != 0 {
		t.Fatal("new bank should have no daily progress")
	}

	dp := b.Day("2024-03-09")
	dp.PomodorosCompleted++

	if b.DailyProgress["2024-03-09"].PomodorosCompleted != 1 {
		t.Error("day record not created on first use")
	}
	if b.Day("2024-03-09") != dp {
		t.Error("second lookup should return the same record")
	}
}

func TestAddPoints(t *testing.T) {
	b := NewBank("biology", nil)
	b.AddPoints("2024-03-09", 25)
	b.AddPoints("2024-03-09", 75)
	b.AddPoints("2024-03-10", 25)

	if b.Points != 125 {
		t.Errorf("total points = %d, want 125", b.Points)
	}
	if got := b.Day("2024-03-09").PointsEarned; got != 100 {
		t.Errorf("day points = %d, want 100", got)
	}
}

func TestNormalizeRepairsInvariants(t *testing.T) {
	p := &Profile{
		Banks: map[string]*Bank{
			"b": {Name: "b", Streak: 7, HighestStreak: 3},
		},
	}
	p.Normalize()

	b := p.Banks["b"]
	if b.HighestStreak != 7 {
		t.Errorf("highestStreak = %d, want clamped to 7", b.HighestStreak)
	}
	if b.DailyProgress == nil || b.UnlockedPets == nil {
		t.Error("nil maps not repaired")
	}
	if p.PassingScore != DefaultPassingScore {
		t.Errorf("passingScore = %d, want default %d", p.PassingScore, DefaultPassingScore)
	}
}

func TestSetPassingScore(t *testing.T) {
	p := New("u1", "Asha", "biology", nil)
	if !p.SetPassingScore(95) {
		t.Fatal("changing the threshold should report a change")
	}
	if p.PassingScore != 95 {
		t.Fatalf("passingScore = %d, want 95", p.PassingScore)
	}
	if p.SetPassingScore(95) {
		t.Fatal("re-applying the same threshold should be a no-op")
	}
	if p.SetPassingScore(0) {
		t.Fatal("a non-positive threshold must not clobber the stored one")
	}
	if p.PassingScore != 95 {
		t.Fatalf("passingScore = %d, want 95 kept", p.PassingScore)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	p := New("u1", "Asha", "biology", []challenge.Question{
		{ID: "q1", Prompt: "?", Choices: []string{"a", "b", "c", "d"}, Answer: 2, Difficulty: challenge.Easy, Category: "cells"},
	})
	b := p.Banks["biology"]
	b.Points = 150
	b.Streak = 4
	b.HighestStreak = 9
	b.HighestQuizStreak = 12
	b.CompletedSessions = 31
	b.LastChallengeDate = "2024-03-09"
	b.Day("2024-03-09").ChallengesCompleted = []string{"easy", "medium"}
	b.Day("2024-03-09").QuestionOfDayAnswered = true
	b.UnlockedPets["sprout"] = true
	b.PetNames = map[string]string{"sprout": "Fern"}
	p.LastLogin = "2024-03-09"

	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Profile
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(p, &got) {
		t.Errorf("profile did not round-trip:\nwant %+v\ngot  %+v", p, &got)
	}
}
