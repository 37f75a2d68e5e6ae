package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SystemReview is one per-system review entry inside an application.
// A PENDING entry is the marker that keeps the sweep cascade from
// auto-rejecting the application at a stage boundary.
type SystemReview struct {
	SystemID string `json:"system_id"`
	Status   string `json:"status"` // PENDING, APPROVED, REJECTED
	Comment  string `json:"comment,omitempty"`
}

// Application holds the schema definition for the Application entity.
type Application struct {
	ent.Schema
}

// Mixin of the Application.
func (Application) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Application.
func (Application) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("team_id").
			NotEmpty(),
		field.String("system_id").
			Optional(),
		field.String("cycle_id").
			NotEmpty().
			Immutable(),
		// Externally visible status shown to the applicant.
		field.Enum("status").
			Values(
				"DRAFT",
				"SUBMITTED",
				"REVIEWED",
				"ACCEPTED",
				"REJECTED",
				"NEEDS_REVIEW",
				"WAITLISTED",
			).
			Default("DRAFT"),
		// Staff-only: how far this application has progressed through the cycle.
		field.Enum("internal_status").
			Values(
				"PREPARATION",
				"APPLICATION",
				"INTERVIEW",
				"TRAIL",
				"FINAL",
			).
			Default("APPLICATION"),
		field.String("internal_decision").
			Optional(),
		// Free-form applicant answers, including up to three ranked system preferences.
		field.JSON("data", map[string]interface{}{}).
			Optional(),
		field.JSON("reviews", []SystemReview{}).
			Optional(),
	}
}

// Edges of the Application.
func (Application) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("applications").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.From("team", Team.Type).
			Ref("applications").
			Field("team_id").
			Unique().
			Required(),
		edge.From("system", System.Type).
			Ref("applications").
			Field("system_id").
			Unique(),
		edge.From("cycle", ApplicationCycle.Type).
			Ref("applications").
			Field("cycle_id").
			Unique().
			Required().
			Immutable(),
		edge.To("interviews", Interview.Type),
	}
}

// Indexes of the Application.
func (Application) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "cycle_id").Unique(),
		index.Fields("team_id"),
		index.Fields("cycle_id", "status"),
	}
}
