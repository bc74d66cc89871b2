// Package questiongen authors multiple choice questions for a bank with
// a language model. Generated batches pass through a validator chain
// before anything reaches the bank.
package questiongen

import (
	"context"

	"github.com/akshad/studyquest/internal/challenge"
)

// Input describes the batch to author.
type Input struct {
	// Subject is the bank's topic, e.g. "AP Biology".
	Subject string

	// Category narrows the batch to one topic area. Empty means the
	// model picks categories itself.
	Category string

	// Difficulty pins every question to one tier. Empty means a mix.
	Difficulty challenge.Difficulty

	// Count is how many questions to author.
	Count int

	// Existing holds the prompts already in the bank, for deduplication.
	Existing []string
}

// Generator authors question batches.
type Generator interface {
	// Generate returns up to input.Count validated questions. Questions
	// that fail validation are dropped; an empty result is an error.
	Generate(ctx context.Context, input Input) ([]challenge.Question, error)
}
