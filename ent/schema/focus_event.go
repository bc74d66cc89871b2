package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FocusEvent records one completed focus session.
type FocusEvent struct {
	ent.Schema
}

func (FocusEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (FocusEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the focus session"),
		field.String("user_id").
			NotEmpty(),
		field.String("bank").
			NotEmpty().
			Comment("Bank credited with the session"),
		field.String("day").
			NotEmpty().
			Comment("Calendar date, yyyy-MM-dd"),
		field.Int("duration_secs").
			Default(0).
			Comment("Nominal focus duration"),
	}
}

func (FocusEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("day"),
	}
}
