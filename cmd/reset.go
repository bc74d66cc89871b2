package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akshad/studyquest/internal/catalog"
	"github.com/akshad/studyquest/internal/notify"
	"github.com/akshad/studyquest/internal/profile"
	"github.com/akshad/studyquest/internal/timer"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the profile and timer to a fresh install",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This deletes all points, streaks, pets, and authored questions.")
			fmt.Println("Re-run with --yes to confirm.")
			return nil
		}

		svc, st, err := openBundle(cmd, notify.Nop{})
		if err != nil {
			return err
		}
		defer st.Close()
		ctx := cmd.Context()

		fresh := profile.New(svc.UserID, svc.UserID, catalog.DefaultBank, catalog.Questions(catalog.DefaultBank))
		if err := svc.SaveProfile(ctx, fresh); err != nil {
			return err
		}

		ts := svc.Config.TimerSettings()
		state := timer.State{
			Phase:     timer.PhaseFocus,
			Remaining: int(ts.FocusDuration.Seconds()),
		}
		data, err := json.Marshal(state)
		if err != nil {
			return err
		}
		if _, err := svc.Timers.Save(ctx, data); err != nil {
			return err
		}

		fmt.Printf("Profile %q reset.\n", svc.UserID)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation")
}
