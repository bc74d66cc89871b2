package questiongen

import (
	"fmt"
	"strings"

	"github.com/akshad/studyquest/internal/challenge"
)

// StructuralValidator checks field presence, lengths and enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *challenge.Question, _ Input) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg}
	}

	if strings.TrimSpace(q.Prompt) == "" {
		return fail("prompt is empty")
	}
	if len(q.Prompt) > 500 {
		return fail("prompt exceeds 500 characters")
	}
	if len(q.Choices) != 4 {
		return fail(fmt.Sprintf("expected 4 choices, got %d", len(q.Choices)))
	}
	seen := map[string]bool{}
	for i, c := range q.Choices {
		trimmed := strings.TrimSpace(c)
		if trimmed == "" {
			return fail(fmt.Sprintf("choice %d is empty", i))
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			return fail(fmt.Sprintf("duplicate choice %q", c))
		}
		seen[key] = true
	}
	if q.Answer < 0 || q.Answer >= len(q.Choices) {
		return fail(fmt.Sprintf("answer index %d out of range", q.Answer))
	}
	if !q.Difficulty.Valid() {
		return fail(fmt.Sprintf("unknown difficulty %q", q.Difficulty))
	}
	if strings.TrimSpace(q.Category) == "" {
		return fail("category is empty")
	}
	return nil
}

// DedupValidator rejects questions whose prompt already exists in the
// bank, compared case-insensitively after whitespace normalization.
type DedupValidator struct{}

func (v *DedupValidator) Name() string { return "dedup" }

func (v *DedupValidator) Validate(q *challenge.Question, input Input) *ValidationError {
	key := normalizePrompt(q.Prompt)
	for _, existing := range input.Existing {
		if normalizePrompt(existing) == key {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("prompt duplicates existing question %q", existing),
			}
		}
	}
	return nil
}

// ConstraintValidator enforces the requested category and difficulty
// when the input pinned them.
type ConstraintValidator struct{}

func (v *ConstraintValidator) Name() string { return "constraint" }

func (v *ConstraintValidator) Validate(q *challenge.Question, input Input) *ValidationError {
	if input.Difficulty != "" && q.Difficulty != input.Difficulty {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("difficulty %q, requested %q", q.Difficulty, input.Difficulty),
		}
	}
	if input.Category != "" && !strings.EqualFold(q.Category, input.Category) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("category %q, requested %q", q.Category, input.Category),
		}
	}
	return nil
}

func normalizePrompt(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
