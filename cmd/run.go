package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akshad/studyquest/internal/app"
	"github.com/akshad/studyquest/internal/catalog"
	"github.com/akshad/studyquest/internal/notify"
	"github.com/akshad/studyquest/internal/profile"
	"github.com/akshad/studyquest/internal/rewards"
	"github.com/akshad/studyquest/internal/services"
	"github.com/akshad/studyquest/internal/store"
	"github.com/akshad/studyquest/internal/timer"
)

// openBundle opens the store and wires the shared services. The caller
// owns the returned store and must close it.
func openBundle(cmd *cobra.Command, notifier notify.Notifier) (*services.Bundle, *store.Store, error) {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	userID := resolveUserID(cmd)
	profiles := st.ProfileRepo()
	if err := ensureProfile(ctx, profiles, userID, cfg.Challenge.PassingScore); err != nil {
		st.Close()
		return nil, nil, err
	}

	if notifier == nil {
		notifier = notify.Nop{}
	}

	engine, err := timer.New(ctx, timer.Options{
		UserID:   userID,
		Profiles: profiles,
		Timers:   st.TimerRepo(),
		Events:   st.EventRepo(),
		Notifier: notifier,
		Config:   cfg.TimerSettings(),
	})
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("start timer engine: %w", err)
	}

	return &services.Bundle{
		UserID:     userID,
		Config:     cfg,
		Profiles:   profiles,
		Timers:     st.TimerRepo(),
		Events:     st.EventRepo(),
		Engine:     engine,
		Reconciler: rewards.NewReconciler(catalog.Pets(), cfg.PointAwards()),
		Notifier:   notifier,
	}, st, nil
}

// ensureProfile creates the seed profile on first run and keeps the
// configured pass threshold applied to it thereafter.
func ensureProfile(ctx context.Context, profiles store.ProfileRepo, userID string, passingScore int) error {
	p, _, err := profiles.Load(ctx, userID)
	if err == nil {
		if p.SetPassingScore(passingScore) {
			if _, err := profiles.Save(ctx, p); err != nil {
				return fmt.Errorf("update profile %q: %w", userID, err)
			}
		}
		return nil
	}
	if !errors.Is(err, profile.ErrProfileNotFound) {
		return fmt.Errorf("load profile %q: %w", userID, err)
	}

	p = profile.New(userID, userID, catalog.DefaultBank, catalog.Questions(catalog.DefaultBank))
	p.SetPassingScore(passingScore)
	if _, err := profiles.Save(ctx, p); err != nil {
		return fmt.Errorf("create profile %q: %w", userID, err)
	}
	return nil
}

// runApp opens the store, wires the services, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	svc, st, err := openBundle(cmd, notify.Nop{})
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(svc)
}
