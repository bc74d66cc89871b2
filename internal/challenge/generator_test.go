package challenge

import (
	"fmt"
	"testing"
)

func testQuestions() []Question {
	var qs []Question
	for _, d := range Difficulties() {
		for i := 0; i < 12; i++ {
			qs = append(qs, Question{
				ID:         fmt.Sprintf("%s-%02d", d, i),
				Prompt:     fmt.Sprintf("%s question %d", d, i),
				Choices:    []string{"w", "x", "y", "z"},
				Answer:     i % 4,
				Difficulty: d,
				Category:   []string{"algebra", "geometry"}[i%2],
			})
		}
	}
	return qs
}

func questionIDs(ch Challenge) []string {
	ids := make([]string, len(ch.Entries))
	for i, e := range ch.Entries {
		ids[i] = e.Question.ID
	}
	return ids
}

func sameChallenge(a, b Challenge) bool {
	if len(a.Entries) != len(b.Entries) {
		return false
	}
	for i := range a.Entries {
		if a.Entries[i].Question.ID != b.Entries[i].Question.ID {
			return false
		}
		if a.Entries[i].Answer != b.Entries[i].Answer {
			return false
		}
		for j := range a.Entries[i].Choices {
			if a.Entries[i].Choices[j] != b.Entries[i].Choices[j] {
				return false
			}
		}
	}
	return true
}

func TestDailyDeterministic(t *testing.T) {
	qs := testQuestions()
	a := Daily(qs, "2024-03-01", Easy, "algebra", DefaultSize)
	b := Daily(qs, "2024-03-01", Easy, "algebra", DefaultSize)
	if !sameChallenge(a, b) {
		t.Errorf("same triple produced different challenges:\n%v\n%v", questionIDs(a), questionIDs(b))
	}
}

func TestDailySeedSensitivity(t *testing.T) {
	qs := testQuestions()
	base := Daily(qs, "2024-03-01", Easy, "", DefaultSize)

	variants := []Challenge{
		Daily(qs, "2024-03-02", Easy, "", DefaultSize),
		Daily(qs, "2024-03-01", Medium, "", DefaultSize),
	}
	for i, v := range variants {
		if sameChallenge(base, v) {
			t.Errorf("variant %d matched the base challenge; seed not sensitive enough", i)
		}
	}
}

func TestDailyFiltersDifficulty(t *testing.T) {
	ch := Daily(testQuestions(), "2024-03-01", Hard, "", DefaultSize)
	if len(ch.Entries) != DefaultSize {
		t.Fatalf("entries = %d, want %d", len(ch.Entries), DefaultSize)
	}
	for _, e := range ch.Entries {
		if e.Question.Difficulty != Hard {
			t.Errorf("question %s has difficulty %s, want hard", e.Question.ID, e.Question.Difficulty)
		}
	}
}

func TestDailyFiltersCategory(t *testing.T) {
	ch := Daily(testQuestions(), "2024-03-01", Easy, "geometry", DefaultSize)
	for _, e := range ch.Entries {
		if e.Question.Category != "geometry" {
			t.Errorf("question %s has category %s, want geometry", e.Question.ID, e.Question.Category)
		}
	}
}

func TestDailyShortPool(t *testing.T) {
	qs := testQuestions()[:3] // three easy questions
	ch := Daily(qs, "2024-03-01", Easy, "", DefaultSize)
	if len(ch.Entries) != 3 {
		t.Errorf("entries = %d, want all 3 available", len(ch.Entries))
	}
}

func TestDailyEmptyPool(t *testing.T) {
	ch := Daily(nil, "2024-03-01", Easy, "", DefaultSize)
	if len(ch.Entries) != 0 {
		t.Errorf("entries = %d, want 0", len(ch.Entries))
	}
}

func TestDailyAnswerFollowsShuffle(t *testing.T) {
	qs := testQuestions()
	for _, date := range []string{"2024-03-01", "2024-03-02", "2024-07-19"} {
		ch := Daily(qs, date, Medium, "", DefaultSize)
		for _, e := range ch.Entries {
			want := e.Question.Choices[e.Question.Answer]
			if e.Answer < 0 || e.Answer >= len(e.Choices) {
				t.Fatalf("%s %s: answer index %d out of range", date, e.Question.ID, e.Answer)
			}
			if got := e.Choices[e.Answer]; got != want {
				t.Errorf("%s %s: answer points at %q, want %q", date, e.Question.ID, got, want)
			}
		}
	}
}

func TestDailySharedStream(t *testing.T) {
	// The choice order of the first entry must depend on the selection
	// draws that precede it: a larger pool shifts the stream.
	qs := testQuestions()
	full := Daily(qs, "2024-05-05", Easy, "", 1)
	trimmed := Daily(qs[:6], "2024-05-05", Easy, "", 1)

	if full.Entries[0].Question.ID == trimmed.Entries[0].Question.ID &&
		sameChallenge(full, trimmed) {
		t.Error("choice shuffle appears to be seeded independently of selection")
	}
}

func TestQuestionOfTheDay(t *testing.T) {
	qs := testQuestions()
	day := 64 // 2024-03-04 in a leap year

	a, ok := QuestionOfTheDay(qs, "2024-03-04", day)
	if !ok {
		t.Fatal("expected a question of the day")
	}
	b, _ := QuestionOfTheDay(qs, "2024-03-04", day)
	if a.Question.ID != b.Question.ID {
		t.Error("question of the day is not stable for a date")
	}
	if want := qs[day%len(qs)].ID; a.Question.ID != want {
		t.Errorf("question id = %s, want %s (dayOfYear mod count)", a.Question.ID, want)
	}
	if a.Answer < 0 || a.Answer >= len(a.Choices) {
		t.Fatalf("answer index %d out of range", a.Answer)
	}
	if a.Choices[a.Answer] != a.Question.Choices[a.Question.Answer] {
		t.Error("answer index does not follow the shuffled choices")
	}
}

func TestQuestionOfTheDayEmpty(t *testing.T) {
	if _, ok := QuestionOfTheDay(nil, "2024-03-04", 64); ok {
		t.Error("empty bank should yield no question")
	}
}
