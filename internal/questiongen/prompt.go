package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an exam author writing multiple choice practice questions for students preparing for a standardized test.

Rules:
- Write clear, self-contained questions in plain ASCII text. No LaTeX, no Unicode symbols.
- Every question has exactly 4 choices with exactly one correct answer.
- Distractors must reflect plausible misconceptions, not random filler.
- Difficulty tiers: "easy" tests recall, "medium" tests understanding, "hard" tests application or multi-step reasoning.
- Give each question a short lowercase category label for its topic area.
- Do not repeat or trivially rephrase any question from the "already in the bank" list.`

// buildUserMessage renders the Input into the prompt's user message.
func buildUserMessage(input Input, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: %s\n", input.Subject)
	fmt.Fprintf(&b, "Questions to write: %d\n", input.Count)
	if input.Category != "" {
		fmt.Fprintf(&b, "Category: %s\n", input.Category)
	} else {
		b.WriteString("Category: author's choice, varied\n")
	}
	if input.Difficulty != "" {
		fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)
	} else {
		b.WriteString("Difficulty: mixed across easy, medium and hard\n")
	}

	b.WriteString("\nAlready in the bank:\n")
	b.WriteString(formatExisting(input.Existing, cfg.MaxExisting))

	return b.String()
}

// formatExisting lists the most recent prior prompts, capped at max.
func formatExisting(prompts []string, max int) string {
	if len(prompts) == 0 {
		return "None"
	}
	if max > 0 && len(prompts) > max {
		prompts = prompts[len(prompts)-max:]
	}
	var b strings.Builder
	for i, p := range prompts {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p)
	}
	return strings.TrimRight(b.String(), "\n")
}
