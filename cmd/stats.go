package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akshad/studyquest/internal/notify"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openBundle(cmd, notify.Nop{})
		if err != nil {
			return err
		}
		defer st.Close()
		ctx := cmd.Context()

		p, err := svc.LoadProfile(ctx)
		if err != nil {
			return err
		}
		b, err := p.Active()
		if err != nil {
			return err
		}

		fmt.Printf("Profile %q, bank %q\n\n", p.ID, b.Name)
		fmt.Printf("  Points               %d\n", b.Points)
		fmt.Printf("  Challenge streak     %d (best %d)\n", b.Streak, b.HighestStreak)
		fmt.Printf("  Focus sessions       %d\n", b.CompletedSessions)
		fmt.Printf("  Best quiz streak     %d\n", b.HighestQuizStreak)

		attempted, passed, err := svc.Events.ChallengeCounts(ctx, svc.UserID)
		if err != nil {
			return err
		}
		fmt.Printf("  Challenges passed    %d of %d attempted\n\n", passed, attempted)

		days, err := svc.Events.FocusByDay(ctx, svc.UserID, 7)
		if err != nil {
			return err
		}
		if len(days) == 0 {
			fmt.Println("No focus sessions recorded yet.")
			return nil
		}
		fmt.Println("Focus sessions, last 7 days:")
		for _, dc := range days {
			fmt.Printf("  %s  %s %d\n", dc.Day, strings.Repeat("█", dc.Count), dc.Count)
		}
		return nil
	},
}
