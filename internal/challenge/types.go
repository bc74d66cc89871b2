// Package challenge produces the deterministic daily challenge: a seeded,
// reproducible selection of questions and shuffled answer choices. Every
// client computing the same (date, difficulty, category) triple arrives at
// an identical sequence with no network access.
package challenge

// Difficulty is a challenge tier. The string values are recorded in daily
// progress, so they must stay stable.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties returns all tiers in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// Valid reports whether d is a known tier.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// Question is a multiple-choice question. The Answer index refers to the
// Choices slice as stored; generated challenges carry their own shuffled
// choice order and remapped answer index.
type Question struct {
	ID         string     `json:"id"`
	Prompt     string     `json:"prompt"`
	Choices    []string   `json:"choices"`
	Answer     int        `json:"answer"`
	Difficulty Difficulty `json:"difficulty"`
	Category   string     `json:"category"`
}

// Entry is one question in a generated challenge: the source question plus
// the shuffled choice order for the day.
type Entry struct {
	Question Question
	Choices  []string
	Answer   int // index of the correct choice within Choices
}

// Challenge is a day's generated question sequence for one tier.
type Challenge struct {
	Date       string
	Difficulty Difficulty
	Category   string
	Entries    []Entry
}

// DefaultSize is the number of questions in a daily challenge.
const DefaultSize = 5
