package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func questionBatchSchema() *Schema {
	return &Schema{
		Name:        "question-batch-test",
		Description: "a batch of multiple choice questions",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"prompt": map[string]any{"type": "string"},
							"choices": map[string]any{
								"type":  "array",
								"items": map[string]any{"type": "string"},
							},
							"answer": map[string]any{"type": "integer"},
							"difficulty": map[string]any{
								"type": "string",
								"enum": []any{"easy", "medium", "hard"},
							},
						},
						"required": []any{"prompt", "choices", "answer", "difficulty"},
					},
				},
			},
			"required": []any{"questions"},
		},
	}
}

func TestValidateAcceptsConformingJSON(t *testing.T) {
	raw := json.RawMessage(`{
		"questions": [
			{"prompt": "What does a ribosome do?",
			 "choices": ["Makes proteins", "Stores DNA", "Makes ATP", "Digests waste"],
			 "answer": 0,
			 "difficulty": "easy"}
		]
	}`)
	if err := validateResponse(questionBatchSchema(), raw); err != nil {
		t.Fatalf("validateResponse: %v", err)
	}
}

func TestValidateRejectsMalformedJSON(t *testing.T) {
	err := validateResponse(questionBatchSchema(), json.RawMessage(`{"questions": [`))
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateRejectsSchemaViolation(t *testing.T) {
	// answer has the wrong type and difficulty is outside the enum.
	raw := json.RawMessage(`{
		"questions": [
			{"prompt": "p", "choices": ["a"], "answer": "zero", "difficulty": "impossible"}
		]
	}`)
	err := validateResponse(questionBatchSchema(), raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
	if invalid.Content == nil {
		t.Fatal("ErrInvalidResponse should carry the offending content")
	}
}

func TestValidateRejectsMissingRequiredField(t *testing.T) {
	raw := json.RawMessage(`{"questions": [{"prompt": "p"}]}`)
	err := validateResponse(questionBatchSchema(), raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateNilSchemaPassesAnything(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("validateResponse: %v", err)
	}
}

func TestValidateCachesCompiledSchema(t *testing.T) {
	schema := questionBatchSchema()
	schema.Name = "cache-probe"
	raw := json.RawMessage(`{"questions": []}`)
	if err := validateResponse(schema, raw); err != nil {
		t.Fatalf("first validation: %v", err)
	}
	if _, ok := schemaCache.Load("cache-probe"); !ok {
		t.Fatal("compiled schema should be cached by name")
	}
	if err := validateResponse(schema, raw); err != nil {
		t.Fatalf("second validation: %v", err)
	}
}
