// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChallengeEvent is the predicate function for challengeevent builders.
type ChallengeEvent func(*sql.Selector)

// FocusEvent is the predicate function for focusevent builders.
type FocusEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// ProfileRecord is the predicate function for profilerecord builders.
type ProfileRecord func(*sql.Selector)

// TimerRecord is the predicate function for timerrecord builders.
type TimerRecord func(*sql.Selector)
