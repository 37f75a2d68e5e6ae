package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ApplicationCycle holds the schema definition for one recruitment season.
// The cycle's stage is advanced by the sweep or by an administrator override.
type ApplicationCycle struct {
	ent.Schema
}

// Mixin of the ApplicationCycle.
func (ApplicationCycle) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ApplicationCycle.
func (ApplicationCycle) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.Enum("stage").
			Values(
				"PREPARATION",
				"APPLICATION",
				"INTERVIEW",
				"TRAIL",
				"FINAL",
			).
			Default("PREPARATION"),
		field.Time("start_date"),
		field.Time("end_date"),
	}
}

// Edges of the ApplicationCycle.
func (ApplicationCycle) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("stages", CycleStage.Type),
		edge.To("applications", Application.Type),
	}
}

// Indexes of the ApplicationCycle.
func (ApplicationCycle) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
		index.Fields("start_date", "end_date"),
	}
}
