package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Availability holds the schema definition for an interviewer-declared open
// time window for a system. end_at > start_at is enforced at the write
// boundary (cross-field checks stay out of the schema).
type Availability struct {
	ent.Schema
}

// Mixin of the Availability.
func (Availability) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Availability.
func (Availability) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("system_id").
			NotEmpty().
			Immutable(),
		field.Time("start_at"),
		field.Time("end_at"),
	}
}

// Edges of the Availability.
func (Availability) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("availabilities").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.From("system", System.Type).
			Ref("availabilities").
			Field("system_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Availability.
func (Availability) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("system_id", "start_at"),
		index.Fields("user_id"),
	}
}
