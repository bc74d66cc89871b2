package questiongen

import (
	"strings"
	"testing"

	"github.com/akshad/studyquest/internal/challenge"
)

func validForTest() challenge.Question {
	return challenge.Question{
		ID:         "q1",
		Prompt:     "Which base pairs with adenine in DNA?",
		Choices:    []string{"Thymine", "Guanine", "Cytosine", "Uracil"},
		Answer:     0,
		Difficulty: challenge.Easy,
		Category:   "genetics",
	}
}

func TestStructuralValidator(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*challenge.Question)
		ok     bool
	}{
		{"valid", func(q *challenge.Question) {}, true},
		{"empty prompt", func(q *challenge.Question) { q.Prompt = "  " }, false},
		{"overlong prompt", func(q *challenge.Question) { q.Prompt = strings.Repeat("x", 501) }, false},
		{"three choices", func(q *challenge.Question) { q.Choices = q.Choices[:3] }, false},
		{"five choices", func(q *challenge.Question) { q.Choices = append(q.Choices, "RNA") }, false},
		{"blank choice", func(q *challenge.Question) { q.Choices[2] = "" }, false},
		{"duplicate choices", func(q *challenge.Question) { q.Choices[1] = "thymine" }, false},
		{"answer out of range", func(q *challenge.Question) { q.Answer = 4 }, false},
		{"negative answer", func(q *challenge.Question) { q.Answer = -1 }, false},
		{"bad difficulty", func(q *challenge.Question) { q.Difficulty = "extreme" }, false},
		{"empty category", func(q *challenge.Question) { q.Category = "" }, false},
	}

	v := &StructuralValidator{}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := validForTest()
			tc.mutate(&q)
			err := v.Validate(&q, Input{})
			if tc.ok && err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("want validation error")
			}
		})
	}
}

func TestDedupValidatorNormalizes(t *testing.T) {
	v := &DedupValidator{}
	q := validForTest()

	input := Input{Existing: []string{"WHICH base  pairs with adenine in dna?"}}
	if v.Validate(&q, input) == nil {
		t.Fatal("case and whitespace variants should count as duplicates")
	}

	input = Input{Existing: []string{"Which base pairs with guanine in DNA?"}}
	if err := v.Validate(&q, input); err != nil {
		t.Fatalf("different prompt rejected: %v", err)
	}
}

func TestConstraintValidator(t *testing.T) {
	v := &ConstraintValidator{}
	q := validForTest()

	if err := v.Validate(&q, Input{}); err != nil {
		t.Fatalf("unpinned input rejected: %v", err)
	}
	if err := v.Validate(&q, Input{Difficulty: challenge.Easy, Category: "Genetics"}); err != nil {
		t.Fatalf("matching constraints rejected: %v", err)
	}
	if v.Validate(&q, Input{Difficulty: challenge.Hard}) == nil {
		t.Fatal("difficulty mismatch should be rejected")
	}
	if v.Validate(&q, Input{Category: "cells"}) == nil {
		t.Fatal("category mismatch should be rejected")
	}
}

func TestFormatExistingCapsList(t *testing.T) {
	prompts := []string{"a", "b", "c", "d", "e"}
	got := formatExisting(prompts, 2)
	if strings.Contains(got, "a") || !strings.Contains(got, "e") {
		t.Fatalf("formatExisting should keep the most recent entries, got %q", got)
	}
	if formatExisting(nil, 5) != "None" {
		t.Fatal("empty list should render as None")
	}
}
