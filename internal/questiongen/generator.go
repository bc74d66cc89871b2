package questiongen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/akshad/studyquest/internal/challenge"
	"github.com/akshad/studyquest/internal/llm"
)

// LLMGenerator implements Generator on top of an llm.Provider.
type LLMGenerator struct {
	provider llm.Provider
	cfg      Config
	usage    llm.Usage
}

// New builds a generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, cfg: cfg}
}

// Usage returns the token consumption of the most recent batch.
func (g *LLMGenerator) Usage() llm.Usage {
	return g.usage
}

// batchOutput is the raw response shape before validation.
type batchOutput struct {
	Questions []struct {
		Prompt     string   `json:"prompt"`
		Choices    []string `json:"choices"`
		Answer     int      `json:"answer"`
		Difficulty string   `json:"difficulty"`
		Category   string   `json:"category"`
	} `json:"questions"`
}

// Generate authors one batch. Individually invalid questions are dropped
// with their reasons collected; the call fails only when nothing in the
// batch survives.
func (g *LLMGenerator) Generate(ctx context.Context, input Input) ([]challenge.Question, error) {
	if input.Count <= 0 {
		return nil, fmt.Errorf("questiongen: count must be positive")
	}

	ctx = llm.WithPurpose(ctx, "author-questions")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.cfg)},
		},
		Schema:      BatchSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("questiongen: generate batch: %w", err)
	}
	g.usage = resp.Usage

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("questiongen: parse batch: %w", err)
	}
	if len(raw.Questions) == 0 {
		return nil, fmt.Errorf("questiongen: model returned no questions")
	}

	var out []challenge.Question
	var rejections []string
	// Questions accepted earlier in the batch count as existing for the
	// later ones, so the model cannot duplicate itself.
	existing := input.Existing
	for _, rq := range raw.Questions {
		q := challenge.Question{
			ID:         uuid.NewString(),
			Prompt:     strings.TrimSpace(rq.Prompt),
			Choices:    rq.Choices,
			Answer:     rq.Answer,
			Difficulty: challenge.Difficulty(rq.Difficulty),
			Category:   strings.ToLower(strings.TrimSpace(rq.Category)),
		}
		valInput := input
		valInput.Existing = existing
		if verr := g.validate(&q, valInput); verr != nil {
			rejections = append(rejections, verr.Error())
			continue
		}
		existing = append(existing, q.Prompt)
		out = append(out, q)
		if len(out) == input.Count {
			break
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("questiongen: every question failed validation: %s",
			strings.Join(rejections, "; "))
	}
	return out, nil
}

func (g *LLMGenerator) validate(q *challenge.Question, input Input) *ValidationError {
	for _, v := range g.cfg.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return verr
		}
	}
	return nil
}
