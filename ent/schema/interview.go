package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Interview holds the schema definition for a booked interview slot.
// Booking is append-only: rows are never re-booked into a different time,
// only annotated (notes) or moved through status.
type Interview struct {
	ent.Schema
}

// Mixin of the Interview.
func (Interview) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Interview.
func (Interview) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("application_id").
			Optional().
			Immutable(),
		field.String("system_id").
			Optional().
			Immutable(),
		field.Time("scheduled_at").
			Immutable(),
		field.Int("duration_minutes").
			Default(30).
			Positive(),
		field.Enum("status").
			Values(
				"SCHEDULED",
				"COMPLETED",
				"CANCELLED",
				"NO_SHOW",
			).
			Default("SCHEDULED"),
		field.String("notes").
			Optional(),
		field.String("location").
			Optional(),
		field.String("created_by_id").
			NotEmpty().
			Immutable(),
	}
}

// Edges of the Interview.
func (Interview) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("application", Application.Type).
			Ref("interviews").
			Field("application_id").
			Unique().
			Immutable(),
		edge.From("system", System.Type).
			Ref("interviews").
			Field("system_id").
			Unique().
			Immutable(),
	}
}

// Indexes of the Interview.
func (Interview) Indexes() []ent.Index {
	return []ent.Index{
		// One live interview per application per system. Cancelled rows stay
		// for the record but release both uniqueness claims, so rescheduling
		// is cancel plus rebook.
		index.Fields("application_id", "system_id").
			Unique().
			Annotations(entsql.IndexWhere("status <> 'CANCELLED'")),
		// Authoritative slot-conflict guard: the double-check before the write
		// narrows the race, this index decides it.
		index.Fields("system_id", "scheduled_at").
			Unique().
			Annotations(entsql.IndexWhere("status <> 'CANCELLED'")),
		index.Fields("scheduled_at"),
	}
}
