package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// TimerRecord is the persisted timer state. One logical row per database
// (slot "current"); it is session state, not part of any profile, and is
// rehydrated by every process that opens the store.
type TimerRecord struct {
	ent.Schema
}

func (TimerRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("slot").
			NotEmpty().
			Unique().
			Comment("Singleton discriminator, always \"current\""),
		field.JSON("data", map[string]any{}).
			Comment("Serialized timer.State"),
		field.Int64("token").
			Default(1).
			Comment("Change token, bumped on every save"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
