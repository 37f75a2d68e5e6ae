package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CycleStage holds the schema definition for one stage window inside a cycle.
// Every cycle carries one row per stage enum value; the sweep compares "now"
// against these windows.
type CycleStage struct {
	ent.Schema
}

// Mixin of the CycleStage.
func (CycleStage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the CycleStage.
func (CycleStage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Enum("stage").
			Values(
				"PREPARATION",
				"APPLICATION",
				"INTERVIEW",
				"TRAIL",
				"FINAL",
			),
		field.Time("start_date"),
		field.Time("end_date"),
		field.String("cycle_id").
			NotEmpty(),
	}
}

// Edges of the CycleStage.
func (CycleStage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("cycle", ApplicationCycle.Type).
			Ref("stages").
			Field("cycle_id").
			Unique().
			Required(),
	}
}

// Indexes of the CycleStage.
func (CycleStage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("cycle_id", "stage").Unique(),
	}
}
