package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/akshad/studyquest/internal/challenge"
	"github.com/akshad/studyquest/internal/notify"
	"github.com/akshad/studyquest/internal/profile"
)

var challengeCmd = &cobra.Command{
	Use:   "challenge",
	Short: "Print a day's challenge without answering it",
	Long: "Prints the generated challenge for a date and difficulty. The sequence is\n" +
		"deterministic: the same bank, date, and difficulty always produce the same\n" +
		"questions in the same order.",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openBundle(cmd, notify.Nop{})
		if err != nil {
			return err
		}
		defer st.Close()

		diffFlag, _ := cmd.Flags().GetString("difficulty")
		diff := challenge.Difficulty(diffFlag)
		if !diff.Valid() {
			return fmt.Errorf("unknown difficulty %q", diffFlag)
		}

		date := profile.DateOf(time.Now())
		if dateFlag, _ := cmd.Flags().GetString("date"); dateFlag != "" {
			if date, err = profile.ParseDate(dateFlag); err != nil {
				return err
			}
		}
		showAnswers, _ := cmd.Flags().GetBool("answers")

		p, err := svc.LoadProfile(cmd.Context())
		if err != nil {
			return err
		}
		b, err := p.Active()
		if err != nil {
			return err
		}

		ch := challenge.Daily(b.Questions, date.String(), diff, "", svc.Config.Challenge.Size)
		if len(ch.Entries) == 0 {
			fmt.Printf("No %s questions in bank %q.\n", diff, b.Name)
			return nil
		}

		fmt.Printf("%s · %s · bank %q\n\n", date, diff, b.Name)
		for i, e := range ch.Entries {
			fmt.Printf("%d. %s\n", i+1, e.Question.Prompt)
			for j, c := range e.Choices {
				marker := " "
				if showAnswers && j == e.Answer {
					marker = "*"
				}
				fmt.Printf("  %s %c) %s\n", marker, 'A'+j, c)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	challengeCmd.Flags().String("difficulty", string(challenge.Medium), "Challenge tier: easy, medium, or hard")
	challengeCmd.Flags().String("date", "", "Date in yyyy-MM-dd form (default today)")
	challengeCmd.Flags().Bool("answers", false, "Mark the correct choices")
}
