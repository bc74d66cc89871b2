// Package catalog ships the static data the app starts with: the pet
// catalog and the seed question banks. Both are read-only inputs; the
// core never mutates them.
package catalog

import "github.com/akshad/studyquest/internal/rewards"

// Pets returns the reward catalog. IDs are stored in profiles and must
// never change; new pets append.
func Pets() []rewards.Pet {
	return []rewards.Pet{
		{ID: "sprout", Name: "Sprout", Description: "Keep a 3-day streak", Predicate: rewards.PredicateStreak, Threshold: 3},
		{ID: "willow", Name: "Willow", Description: "Keep a 7-day streak", Predicate: rewards.PredicateStreak, Threshold: 7},
		{ID: "aurora", Name: "Aurora", Description: "Keep a 30-day streak", Predicate: rewards.PredicateStreak, Threshold: 30},
		{ID: "pebble", Name: "Pebble", Description: "Complete 10 focus sessions", Predicate: rewards.PredicateSessions, Threshold: 10},
		{ID: "boulder", Name: "Boulder", Description: "Complete 50 focus sessions", Predicate: rewards.PredicateSessions, Threshold: 50},
		{ID: "atlas", Name: "Atlas", Description: "Complete 200 focus sessions", Predicate: rewards.PredicateSessions, Threshold: 200},
		{ID: "zippy", Name: "Zippy", Description: "Answer 8 in a row correctly", Predicate: rewards.PredicateQuizStreak, Threshold: 8},
		{ID: "comet", Name: "Comet", Description: "Answer 20 in a row correctly", Predicate: rewards.PredicateQuizStreak, Threshold: 20},
		{ID: "nimbus", Name: "Nimbus", Description: "A loyal cloud, yours for 500 points", Predicate: rewards.PredicatePurchase, Cost: 500},
		{ID: "drift", Name: "Drift", Description: "A sleepy otter, yours for 1500 points", Predicate: rewards.PredicatePurchase, Cost: 1500},
	}
}
