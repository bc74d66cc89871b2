// Package services bundles the wired application services the screens
// share, so constructors stay short.
package services

import (
	"context"

	"github.com/akshad/studyquest/internal/config"
	"github.com/akshad/studyquest/internal/notify"
	"github.com/akshad/studyquest/internal/profile"
	"github.com/akshad/studyquest/internal/rewards"
	"github.com/akshad/studyquest/internal/store"
	"github.com/akshad/studyquest/internal/timer"
)

// Bundle holds everything a screen might need.
type Bundle struct {
	UserID string
	Config config.Config

	Profiles store.ProfileRepo
	Timers   store.TimerRepo
	Events   store.EventRepo

	Engine     *timer.Engine
	Reconciler *rewards.Reconciler
	Notifier   notify.Notifier
}

// LoadProfile fetches the user's profile.
func (b *Bundle) LoadProfile(ctx context.Context) (*profile.Profile, error) {
	p, _, err := b.Profiles.Load(ctx, b.UserID)
	return p, err
}

// SaveProfile persists the profile.
func (b *Bundle) SaveProfile(ctx context.Context, p *profile.Profile) error {
	_, err := b.Profiles.Save(ctx, p)
	return err
}
