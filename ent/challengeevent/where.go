// Code generated by ent, DO NOT EDIT.

package challengeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/akshad/studyquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldUserID, v))
}

// Bank applies equality check predicate on the "bank" field. It's identical to BankEQ.
func Bank(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldBank, v))
}

// Day applies equality check predicate on the "day" field. It's identical to DayEQ.
func Day(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldDay, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldDifficulty, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldScore, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldTotal, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldPassed, v))
}

// PointsAwarded applies equality check predicate on the "points_awarded" field. It's identical to PointsAwardedEQ.
func PointsAwarded(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldPointsAwarded, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContainsFold(FieldUserID, v))
}

// BankEQ applies the EQ predicate on the "bank" field.
func BankEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldBank, v))
}

// BankNEQ applies the NEQ predicate on the "bank" field.
func BankNEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldBank, v))
}

// BankIn applies the In predicate on the "bank" field.
func BankIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldBank, vs...))
}

// BankNotIn applies the NotIn predicate on the "bank" field.
func BankNotIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldBank, vs...))
}

// BankGT applies the GT predicate on the "bank" field.
func BankGT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldBank, v))
}

// BankGTE applies the GTE predicate on the "bank" field.
func BankGTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldBank, v))
}

// BankLT applies the LT predicate on the "bank" field.
func BankLT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldBank, v))
}

// BankLTE applies the LTE predicate on the "bank" field.
func BankLTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldBank, v))
}

// BankContains applies the Contains predicate on the "bank" field.
func BankContains(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContains(FieldBank, v))
}

// BankHasPrefix applies the HasPrefix predicate on the "bank" field.
func BankHasPrefix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasPrefix(FieldBank, v))
}

// BankHasSuffix applies the HasSuffix predicate on the "bank" field.
func BankHasSuffix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasSuffix(FieldBank, v))
}

// BankEqualFold applies the EqualFold predicate on the "bank" field.
func BankEqualFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEqualFold(FieldBank, v))
}

// BankContainsFold applies the ContainsFold predicate on the "bank" field.
func BankContainsFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContainsFold(FieldBank, v))
}

// DayEQ applies the EQ predicate on the "day" field.
func DayEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldDay, v))
}

// DayNEQ applies the NEQ predicate on the "day" field.
func DayNEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldDay, v))
}

// DayIn applies the In predicate on the "day" field.
func DayIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldDay, vs...))
}

// DayNotIn applies the NotIn predicate on the "day" field.
func DayNotIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldDay, vs...))
}

// DayGT applies the GT predicate on the "day" field.
func DayGT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldDay, v))
}

// DayGTE applies the GTE predicate on the "day" field.
func DayGTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldDay, v))
}

// DayLT applies the LT predicate on the "day" field.
func DayLT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldDay, v))
}

// DayLTE applies the LTE predicate on the "day" field.
func DayLTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldDay, v))
}

// DayContains applies the Contains predicate on the "day" field.
func DayContains(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContains(FieldDay, v))
}

// DayHasPrefix applies the HasPrefix predicate on the "day" field.
func DayHasPrefix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasPrefix(FieldDay, v))
}

// DayHasSuffix applies the HasSuffix predicate on the "day" field.
func DayHasSuffix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasSuffix(FieldDay, v))
}

// DayEqualFold applies the EqualFold predicate on the "day" field.
func DayEqualFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEqualFold(FieldDay, v))
}

// DayContainsFold applies the ContainsFold predicate on the "day" field.
func DayContainsFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContainsFold(FieldDay, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContainsFold(FieldDifficulty, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldScore, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldTotal, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldPassed, v))
}

// PointsAwardedEQ applies the EQ predicate on the "points_awarded" field.
func PointsAwardedEQ(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldPointsAwarded, v))
}

// PointsAwardedNEQ applies the NEQ predicate on the "points_awarded" field.
func PointsAwardedNEQ(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldPointsAwarded, v))
}

// PointsAwardedIn applies the In predicate on the "points_awarded" field.
func PointsAwardedIn(vs ...int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldPointsAwarded, vs...))
}

// PointsAwardedNotIn applies the NotIn predicate on the "points_awarded" field.
func PointsAwardedNotIn(vs ...int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldPointsAwarded, vs...))
}

// PointsAwardedGT applies the GT predicate on the "points_awarded" field.
func PointsAwardedGT(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldPointsAwarded, v))
}

// PointsAwardedGTE applies the GTE predicate on the "points_awarded" field.
func PointsAwardedGTE(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldPointsAwarded, v))
}

// PointsAwardedLT applies the LT predicate on the "points_awarded" field.
func PointsAwardedLT(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldPointsAwarded, v))
}

// PointsAwardedLTE applies the LTE predicate on the "points_awarded" field.
func PointsAwardedLTE(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldPointsAwarded, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChallengeEvent) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChallengeEvent) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChallengeEvent) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.NotPredicates(p))
}
