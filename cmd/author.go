package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akshad/studyquest/internal/challenge"
	"github.com/akshad/studyquest/internal/llm"
	"github.com/akshad/studyquest/internal/notify"
	"github.com/akshad/studyquest/internal/questiongen"
)

var authorCmd = &cobra.Command{
	Use:   "author",
	Short: "Author new questions with an LLM and add them to the bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openBundle(cmd, notify.Nop{})
		if err != nil {
			return err
		}
		defer st.Close()
		ctx := cmd.Context()

		count, _ := cmd.Flags().GetInt("count")
		category, _ := cmd.Flags().GetString("category")
		diffFlag, _ := cmd.Flags().GetString("difficulty")
		var diff challenge.Difficulty
		if diffFlag != "" {
			diff = challenge.Difficulty(diffFlag)
			if !diff.Valid() {
				return fmt.Errorf("unknown difficulty %q", diffFlag)
			}
		}

		provider, err := llm.NewProvider(ctx, llm.ConfigFromEnv(), svc.Events)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			return err
		}

		p, err := svc.LoadProfile(ctx)
		if err != nil {
			return err
		}
		b, err := p.Active()
		if err != nil {
			return err
		}

		existing := make([]string, 0, len(b.Questions))
		for _, q := range b.Questions {
			existing = append(existing, q.Prompt)
		}

		gen := questiongen.New(provider, questiongen.DefaultConfig())
		questions, err := gen.Generate(ctx, questiongen.Input{
			Subject:    b.Name,
			Category:   category,
			Difficulty: diff,
			Count:      count,
			Existing:   existing,
		})
		if err != nil {
			return err
		}

		b.Questions = append(b.Questions, questions...)
		if err := svc.SaveProfile(ctx, p); err != nil {
			return err
		}

		fmt.Printf("Added %d questions to bank %q:\n", len(questions), b.Name)
		for _, q := range questions {
			fmt.Printf("  [%s] %s\n", q.Difficulty, q.Prompt)
		}

		usage := gen.Usage()
		fmt.Printf("\nTokens: %d in, %d out", usage.InputTokens, usage.OutputTokens)
		if cost := llm.LookupCost(provider.ModelID()); cost != nil {
			fmt.Printf("  ·  estimated cost $%.4f", cost.Cost(usage.InputTokens, usage.OutputTokens))
		}
		fmt.Println()
		return nil
	},
}

func init() {
	authorCmd.Flags().Int("count", 5, "Number of questions to author")
	authorCmd.Flags().String("category", "", "Topic area within the bank (model's choice when empty)")
	authorCmd.Flags().String("difficulty", "", "Pin every question to one tier: easy, medium, or hard")
}
