package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChallengeEvent records one daily-challenge attempt, passed or not.
type ChallengeEvent struct {
	ent.Schema
}

func (ChallengeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ChallengeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("bank").
			NotEmpty(),
		field.String("day").
			NotEmpty().
			Comment("Calendar date, yyyy-MM-dd"),
		field.String("difficulty").
			NotEmpty(),
		field.Int("score").
			Default(0),
		field.Int("total").
			Default(0),
		field.Bool("passed").
			Default(false),
		field.Int("points_awarded").
			Default(0).
			Comment("Zero when the day's streak was already secured"),
	}
}

func (ChallengeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("day"),
		index.Fields("difficulty"),
	}
}
