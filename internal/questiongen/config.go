package questiongen

// Config controls the LLMGenerator.
type Config struct {
	// Validators run in order on every authored question. The first
	// failure drops that question from the batch.
	Validators []Validator

	// MaxTokens is the response token budget.
	MaxTokens int

	// Temperature in [0, 1]. Authoring wants some variety.
	Temperature float64

	// MaxExisting caps how many bank prompts go into the prompt for
	// deduplication.
	MaxExisting int
}

// DefaultConfig returns the standard validator chain and limits.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&DedupValidator{},
			&ConstraintValidator{},
		},
		MaxTokens:   2048,
		Temperature: 0.7,
		MaxExisting: 40,
	}
}
