package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/akshad/studyquest/internal/challenge"
	"github.com/akshad/studyquest/internal/profile"
	"github.com/akshad/studyquest/internal/rewards"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := strings.Join([]string{
		"timer:",
		"  focusMinutes: 50",
		"  shortBreakMinutes: 10",
		"  longBreakMinutes: 15",
		"  longBreakInterval: 4",
		"challenge:",
		"  passingScore: 60",
	}, "\n")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Timer.FocusMinutes != 50 {
		t.Errorf("focusMinutes = %d, want 50", cfg.Timer.FocusMinutes)
	}
	if cfg.Challenge.PassingScore != 60 {
		t.Errorf("passingScore = %d, want 60", cfg.Challenge.PassingScore)
	}
	// Unset keys keep their defaults.
	if cfg.Challenge.Size != challenge.DefaultSize {
		t.Errorf("size = %d, want default %d", cfg.Challenge.Size, challenge.DefaultSize)
	}
	if cfg.Challenge.PointsMedium != Default().Challenge.PointsMedium {
		t.Errorf("pointsMedium = %d, want default", cfg.Challenge.PointsMedium)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("timer: ["), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load should reject malformed yaml")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("timer:\n  focusMinutes: 50\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("STUDYQUEST_FOCUS_MINUTES", "40")
	t.Setenv("STUDYQUEST_PASSING_SCORE", "70")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Timer.FocusMinutes != 40 {
		t.Errorf("focusMinutes = %d, want env override 40", cfg.Timer.FocusMinutes)
	}
	if cfg.Challenge.PassingScore != 70 {
		t.Errorf("passingScore = %d, want env override 70", cfg.Challenge.PassingScore)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero focus", func(c *Config) { c.Timer.FocusMinutes = 0 }},
		{"negative break", func(c *Config) { c.Timer.ShortBreakMinutes = -1 }},
		{"zero interval", func(c *Config) { c.Timer.LongBreakInterval = 0 }},
		{"score above 100", func(c *Config) { c.Challenge.PassingScore = 101 }},
		{"zero size", func(c *Config) { c.Challenge.Size = 0 }},
		{"negative points", func(c *Config) { c.Challenge.PointsHard = -5 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("Validate should reject this config")
			}
		})
	}
}

func TestTimerSettingsConversion(t *testing.T) {
	cfg := Default()
	tc := cfg.TimerSettings()
	if tc.FocusDuration != 25*time.Minute {
		t.Errorf("focus = %v, want 25m", tc.FocusDuration)
	}
	if tc.LongBreakInterval != 4 {
		t.Errorf("interval = %d, want 4", tc.LongBreakInterval)
	}
}

func TestPassingScoreReachesChallengeDecision(t *testing.T) {
	cfg := Default()
	cfg.Challenge.PassingScore = 95

	p := profile.New("u1", "u1", "biology", nil)
	p.SetPassingScore(cfg.Challenge.PassingScore)
	rec := rewards.NewReconciler(nil, cfg.PointAwards())

	res := rewards.ChallengeResult{
		Difficulty: challenge.Easy,
		Score:      4,
		Total:      5,
		Date:       profile.Date("2026-03-14"),
	}
	out, _, err := rec.OnChallengeCompleted(p, "biology", res)
	if err != nil {
		t.Fatalf("OnChallengeCompleted: %v", err)
	}
	if out.Passed {
		t.Fatal("4/5 must not pass at a 95% threshold")
	}

	res.Score = 5
	out, _, err = rec.OnChallengeCompleted(p, "biology", res)
	if err != nil {
		t.Fatalf("OnChallengeCompleted: %v", err)
	}
	if !out.Passed {
		t.Fatal("5/5 should pass at a 95% threshold")
	}
}

func TestPointAwardsConversion(t *testing.T) {
	cfg := Default()
	cfg.Challenge.PointsHard = 200
	awards := cfg.PointAwards()
	if awards[challenge.Hard] != 200 {
		t.Errorf("hard = %d, want 200", awards[challenge.Hard])
	}
	if awards[challenge.Easy] != cfg.Challenge.PointsEasy {
		t.Errorf("easy = %d, want %d", awards[challenge.Easy], cfg.Challenge.PointsEasy)
	}
}
