package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProfileRecord stores one identity's full profile as a JSON document.
// The token is a logical clock: every save bumps it, and readers compare
// tokens before trusting a cached copy.
type ProfileRecord struct {
	ent.Schema
}

func (ProfileRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique().
			Comment("Opaque identity key from the sign-in collaborator"),
		field.JSON("data", map[string]any{}).
			Comment("Serialized profile.Profile"),
		field.Int64("token").
			Default(1).
			Comment("Change token, bumped on every save"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (ProfileRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
