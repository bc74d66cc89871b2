package questiongen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/akshad/studyquest/internal/challenge"
	"github.com/akshad/studyquest/internal/llm"
)

func batchJSON(questions ...string) json.RawMessage {
	return json.RawMessage(`{"questions": [` + strings.Join(questions, ",") + `]}`)
}

const validQuestion = `{
	"prompt": "Which organelle produces ATP?",
	"choices": ["Mitochondrion", "Ribosome", "Nucleus", "Golgi apparatus"],
	"answer": 0,
	"difficulty": "easy",
	"category": "cells"
}`

func authorInput(count int) Input {
	return Input{Subject: "AP Biology", Count: count}
}

func TestGenerateParsesValidBatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchJSON(validQuestion)})
	gen := New(mock, DefaultConfig())

	qs, err := gen.Generate(context.Background(), authorInput(1))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("questions = %d, want 1", len(qs))
	}
	q := qs[0]
	if q.ID == "" {
		t.Error("question should get an id")
	}
	if q.Prompt != "Which organelle produces ATP?" {
		t.Errorf("prompt = %q", q.Prompt)
	}
	if q.Answer != 0 || len(q.Choices) != 4 {
		t.Errorf("choices/answer = %v/%d", q.Choices, q.Answer)
	}
	if q.Difficulty != challenge.Easy {
		t.Errorf("difficulty = %q, want easy", q.Difficulty)
	}
}

func TestGenerateSendsSchemaAndContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchJSON(validQuestion)})
	gen := New(mock, DefaultConfig())

	input := authorInput(3)
	input.Category = "genetics"
	input.Difficulty = challenge.Hard
	input.Existing = []string{"What is a codon?"}
	// The constraint validator would reject the easy cells question, but
	// here we only care about the request that went out.
	if _, err := gen.Generate(context.Background(), input); err == nil {
		t.Log("constraint validator accepted mismatched question")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != BatchSchema {
		t.Error("request should carry the batch schema")
	}
	if !strings.Contains(req.Messages[0].Content, "genetics") {
		t.Error("user message should carry the category")
	}
	if !strings.Contains(req.Messages[0].Content, "hard") {
		t.Error("user message should carry the difficulty")
	}
	if !strings.Contains(req.Messages[0].Content, "What is a codon?") {
		t.Error("user message should list existing prompts")
	}
}

func TestGenerateDropsInvalidKeepsValid(t *testing.T) {
	broken := `{
		"prompt": "Which organelle stores water?",
		"choices": ["Vacuole", "Vacuole", "Nucleus", "Lysosome"],
		"answer": 0,
		"difficulty": "easy",
		"category": "cells"
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchJSON(broken, validQuestion)})
	gen := New(mock, DefaultConfig())

	qs, err := gen.Generate(context.Background(), authorInput(2))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("questions = %d, want 1 (duplicate-choice question dropped)", len(qs))
	}
}

func TestGenerateFailsWhenNothingSurvives(t *testing.T) {
	broken := `{
		"prompt": "",
		"choices": ["a", "b", "c", "d"],
		"answer": 0,
		"difficulty": "easy",
		"category": "cells"
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchJSON(broken)})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), authorInput(1)); err == nil {
		t.Fatal("want error when the whole batch fails validation")
	}
}

func TestGenerateRejectsDuplicateOfBank(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchJSON(validQuestion)})
	gen := New(mock, DefaultConfig())

	input := authorInput(1)
	input.Existing = []string{"which organelle   produces atp?"}
	if _, err := gen.Generate(context.Background(), input); err == nil {
		t.Fatal("normalized duplicate of a bank prompt should be rejected")
	}
}

func TestGenerateRejectsDuplicateWithinBatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchJSON(validQuestion, validQuestion)})
	gen := New(mock, DefaultConfig())

	qs, err := gen.Generate(context.Background(), authorInput(2))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("questions = %d, want 1 (self-duplicate dropped)", len(qs))
	}
}

func TestGenerateCapsAtRequestedCount(t *testing.T) {
	second := `{
		"prompt": "What carries amino acids to the ribosome?",
		"choices": ["tRNA", "mRNA", "rRNA", "DNA"],
		"answer": 0,
		"difficulty": "medium",
		"category": "genetics"
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchJSON(validQuestion, second)})
	gen := New(mock, DefaultConfig())

	qs, err := gen.Generate(context.Background(), authorInput(1))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("questions = %d, want 1", len(qs))
	}
}

func TestGenerateZeroCountRejected(t *testing.T) {
	gen := New(llm.NewMockProvider(), DefaultConfig())
	if _, err := gen.Generate(context.Background(), authorInput(0)); err == nil {
		t.Fatal("zero count should be rejected before any model call")
	}
}
