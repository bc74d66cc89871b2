package questiongen

import "github.com/akshad/studyquest/internal/llm"

// BatchSchema is the JSON schema for an authored question batch.
var BatchSchema = &llm.Schema{
	Name:        "question-batch",
	Description: "A batch of multiple choice exam practice questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"prompt": map[string]any{
							"type":        "string",
							"description": "The question text, plain ASCII, self-contained",
						},
						"choices": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 options, exactly one correct",
						},
						"answer": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Zero-based index of the correct choice",
						},
						"difficulty": map[string]any{
							"type":        "string",
							"enum":        []any{"easy", "medium", "hard"},
							"description": "Difficulty tier of the question",
						},
						"category": map[string]any{
							"type":        "string",
							"description": "Short topic label, e.g. \"genetics\"",
						},
					},
					"required":             []any{"prompt", "choices", "answer", "difficulty", "category"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
