package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
// Covers both applicants and staff; the role field decides which.
type User struct {
	ent.Schema
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("username").
			NotEmpty().
			MaxLen(255),
		field.String("email").
			NotEmpty().
			MaxLen(255),
		field.String("display_name").
			Optional(),
		field.String("password_hash").
			Optional().
			Sensitive(),
		field.Enum("role").
			Values(
				"APPLICANT",
				"MEMBER",
				"SYSTEM_LEADER",
				"TEAM_MANAGEMENT",
				"ADMIN",
			).
			Default("APPLICANT"),
		field.String("team_id").
			Optional(),
		field.String("system_id").
			Optional(),
		field.Bool("enabled").
			Default(true),
		field.Time("last_login_at").
			Optional().
			Nillable(),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("team", Team.Type).
			Ref("members").
			Field("team_id").
			Unique(),
		edge.From("system", System.Type).
			Ref("members").
			Field("system_id").
			Unique(),
		edge.To("applications", Application.Type),
		edge.To("availabilities", Availability.Type),
		edge.To("notifications", Notification.Type),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username").Unique(),
		index.Fields("email").Unique(),
		index.Fields("role"),
	}
}
