// Package config loads application settings from an optional YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/akshad/studyquest/internal/challenge"
	"github.com/akshad/studyquest/internal/rewards"
	"github.com/akshad/studyquest/internal/timer"
)

// Config holds the user-tunable settings. Everything has a working
// default so a missing config file is not an error.
type Config struct {
	Timer     TimerConfig     `yaml:"timer"`
	Challenge ChallengeConfig `yaml:"challenge"`
}

// TimerConfig holds the countdown durations in minutes. Minutes rather
// than duration strings keep hand-edited files forgiving.
type TimerConfig struct {
	FocusMinutes      int `yaml:"focusMinutes"`
	ShortBreakMinutes int `yaml:"shortBreakMinutes"`
	LongBreakMinutes  int `yaml:"longBreakMinutes"`
	LongBreakInterval int `yaml:"longBreakInterval"`
}

// ChallengeConfig holds scoring settings for the daily challenge.
type ChallengeConfig struct {
	// PassingScore is the minimum percentage of correct answers that
	// counts as a pass.
	PassingScore int `yaml:"passingScore"`

	Size int `yaml:"size"`

	// Points awarded for the first pass of the day, per difficulty.
	PointsEasy   int `yaml:"pointsEasy"`
	PointsMedium int `yaml:"pointsMedium"`
	PointsHard   int `yaml:"pointsHard"`
}

// Default returns the built-in settings.
func Default() Config {
	awards := rewards.DefaultPointAwards()
	return Config{
		Timer: TimerConfig{
			FocusMinutes:      25,
			ShortBreakMinutes: 5,
			LongBreakMinutes:  15,
			LongBreakInterval: 4,
		},
		Challenge: ChallengeConfig{
			PassingScore: 80,
			Size:         challenge.DefaultSize,
			PointsEasy:   awards[challenge.Easy],
			PointsMedium: awards[challenge.Medium],
			PointsHard:   awards[challenge.Hard],
		},
	}
}

// DefaultPath returns the conventional config file location,
// $XDG_CONFIG_HOME/studyquest/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve config dir: %w", err)
	}
	return filepath.Join(dir, "studyquest", "config.yaml"), nil
}

// Load reads the config file at path, applies environment overrides and
// validates the result. A missing file yields the defaults; a present
// but unreadable or invalid file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	setInt := func(key string, dst *int) {
		if v := os.Getenv(key); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}
	setInt("STUDYQUEST_FOCUS_MINUTES", &c.Timer.FocusMinutes)
	setInt("STUDYQUEST_SHORT_BREAK_MINUTES", &c.Timer.ShortBreakMinutes)
	setInt("STUDYQUEST_LONG_BREAK_MINUTES", &c.Timer.LongBreakMinutes)
	setInt("STUDYQUEST_LONG_BREAK_INTERVAL", &c.Timer.LongBreakInterval)
	setInt("STUDYQUEST_PASSING_SCORE", &c.Challenge.PassingScore)
}

// Validate rejects settings that would break the timer or scoring.
func (c Config) Validate() error {
	if c.Timer.FocusMinutes <= 0 || c.Timer.ShortBreakMinutes <= 0 || c.Timer.LongBreakMinutes <= 0 {
		return fmt.Errorf("config: timer durations must be positive")
	}
	if c.Timer.LongBreakInterval <= 0 {
		return fmt.Errorf("config: longBreakInterval must be positive")
	}
	if c.Challenge.PassingScore < 0 || c.Challenge.PassingScore > 100 {
		return fmt.Errorf("config: passingScore must be between 0 and 100")
	}
	if c.Challenge.Size <= 0 {
		return fmt.Errorf("config: challenge size must be positive")
	}
	if c.Challenge.PointsEasy < 0 || c.Challenge.PointsMedium < 0 || c.Challenge.PointsHard < 0 {
		return fmt.Errorf("config: point awards must not be negative")
	}
	return nil
}

// TimerSettings converts the minute settings into the timer package's
// duration form.
func (c Config) TimerSettings() timer.Config {
	return timer.Config{
		FocusDuration:      time.Duration(c.Timer.FocusMinutes) * time.Minute,
		ShortBreakDuration: time.Duration(c.Timer.ShortBreakMinutes) * time.Minute,
		LongBreakDuration:  time.Duration(c.Timer.LongBreakMinutes) * time.Minute,
		LongBreakInterval:  c.Timer.LongBreakInterval,
	}
}

// PointAwards converts the per-difficulty point settings into the form
// the rewards reconciler takes.
func (c Config) PointAwards() map[challenge.Difficulty]int {
	return map[challenge.Difficulty]int{
		challenge.Easy:   c.Challenge.PointsEasy,
		challenge.Medium: c.Challenge.PointsMedium,
		challenge.Hard:   c.Challenge.PointsHard,
	}
}
