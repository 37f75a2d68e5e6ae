package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// System holds the schema definition for the System entity.
// Systems are the unit interviews are scheduled against.
type System struct {
	ent.Schema
}

// Mixin of the System.
func (System) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the System.
func (System) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.String("description").
			Optional(),
		field.String("team_id").
			NotEmpty(),
	}
}

// Edges of the System.
func (System) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("team", Team.Type).
			Ref("systems").
			Field("team_id").
			Unique().
			Required(),
		edge.To("members", User.Type),
		edge.To("availabilities", Availability.Type),
		edge.To("interviews", Interview.Type),
		edge.To("applications", Application.Type),
	}
}

// Indexes of the System.
func (System) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("team_id", "name").Unique(),
	}
}
