// Code generated by ent, DO NOT EDIT.

package application

import (
	"time"

	"crewcycle.io/crewcycle/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldUserID, v))
}

// TeamID applies equality check predicate on the "team_id" field. It's identical to TeamIDEQ.
func TeamID(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldTeamID, v))
}

// SystemID applies equality check predicate on the "system_id" field. It's identical to SystemIDEQ.
func SystemID(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldSystemID, v))
}

// CycleID applies equality check predicate on the "cycle_id" field. It's identical to CycleIDEQ.
func CycleID(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCycleID, v))
}

// InternalDecision applies equality check predicate on the "internal_decision" field. It's identical to InternalDecisionEQ.
func InternalDecision(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldInternalDecision, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldUserID, v))
}

// TeamIDEQ applies the EQ predicate on the "team_id" field.
func TeamIDEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldTeamID, v))
}

// TeamIDNEQ applies the NEQ predicate on the "team_id" field.
func TeamIDNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldTeamID, v))
}

// TeamIDIn applies the In predicate on the "team_id" field.
func TeamIDIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldTeamID, vs...))
}

// TeamIDNotIn applies the NotIn predicate on the "team_id" field.
func TeamIDNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldTeamID, vs...))
}

// TeamIDGT applies the GT predicate on the "team_id" field.
func TeamIDGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldTeamID, v))
}

// TeamIDGTE applies the GTE predicate on the "team_id" field.
func TeamIDGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldTeamID, v))
}

// TeamIDLT applies the LT predicate on the "team_id" field.
func TeamIDLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldTeamID, v))
}

// TeamIDLTE applies the LTE predicate on the "team_id" field.
func TeamIDLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldTeamID, v))
}

// TeamIDContains applies the Contains predicate on the "team_id" field.
func TeamIDContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldTeamID, v))
}

// TeamIDHasPrefix applies the HasPrefix predicate on the "team_id" field.
func TeamIDHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldTeamID, v))
}

// TeamIDHasSuffix applies the HasSuffix predicate on the "team_id" field.
func TeamIDHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldTeamID, v))
}

// TeamIDEqualFold applies the EqualFold predicate on the "team_id" field.
func TeamIDEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldTeamID, v))
}

// TeamIDContainsFold applies the ContainsFold predicate on the "team_id" field.
func TeamIDContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldTeamID, v))
}

// SystemIDEQ applies the EQ predicate on the "system_id" field.
func SystemIDEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldSystemID, v))
}

// SystemIDNEQ applies the NEQ predicate on the "system_id" field.
func SystemIDNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldSystemID, v))
}

// SystemIDIn applies the In predicate on the "system_id" field.
func SystemIDIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldSystemID, vs...))
}

// SystemIDNotIn applies the NotIn predicate on the "system_id" field.
func SystemIDNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldSystemID, vs...))
}

// SystemIDGT applies the GT predicate on the "system_id" field.
func SystemIDGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldSystemID, v))
}

// SystemIDGTE applies the GTE predicate on the "system_id" field.
func SystemIDGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldSystemID, v))
}

// SystemIDLT applies the LT predicate on the "system_id" field.
func SystemIDLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldSystemID, v))
}

// SystemIDLTE applies the LTE predicate on the "system_id" field.
func SystemIDLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldSystemID, v))
}

// SystemIDContains applies the Contains predicate on the "system_id" field.
func SystemIDContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldSystemID, v))
}

// SystemIDHasPrefix applies the HasPrefix predicate on the "system_id" field.
func SystemIDHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldSystemID, v))
}

// SystemIDHasSuffix applies the HasSuffix predicate on the "system_id" field.
func SystemIDHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldSystemID, v))
}

// SystemIDIsNil applies the IsNil predicate on the "system_id" field.
func SystemIDIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldSystemID))
}

// SystemIDNotNil applies the NotNil predicate on the "system_id" field.
func SystemIDNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldSystemID))
}

// SystemIDEqualFold applies the EqualFold predicate on the "system_id" field.
func SystemIDEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldSystemID, v))
}

// SystemIDContainsFold applies the ContainsFold predicate on the "system_id" field.
func SystemIDContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldSystemID, v))
}

// CycleIDEQ applies the EQ predicate on the "cycle_id" field.
func CycleIDEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCycleID, v))
}

// CycleIDNEQ applies the NEQ predicate on the "cycle_id" field.
func CycleIDNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldCycleID, v))
}

// CycleIDIn applies the In predicate on the "cycle_id" field.
func CycleIDIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldCycleID, vs...))
}

// CycleIDNotIn applies the NotIn predicate on the "cycle_id" field.
func CycleIDNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldCycleID, vs...))
}

// CycleIDGT applies the GT predicate on the "cycle_id" field.
func CycleIDGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldCycleID, v))
}

// CycleIDGTE applies the GTE predicate on the "cycle_id" field.
func CycleIDGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldCycleID, v))
}

// CycleIDLT applies the LT predicate on the "cycle_id" field.
func CycleIDLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldCycleID, v))
}

// CycleIDLTE applies the LTE predicate on the "cycle_id" field.
func CycleIDLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldCycleID, v))
}

// CycleIDContains applies the Contains predicate on the "cycle_id" field.
func CycleIDContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldCycleID, v))
}

// CycleIDHasPrefix applies the HasPrefix predicate on the "cycle_id" field.
func CycleIDHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldCycleID, v))
}

// CycleIDHasSuffix applies the HasSuffix predicate on the "cycle_id" field.
func CycleIDHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldCycleID, v))
}

// CycleIDEqualFold applies the EqualFold predicate on the "cycle_id" field.
func CycleIDEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldCycleID, v))
}

// CycleIDContainsFold applies the ContainsFold predicate on the "cycle_id" field.
func CycleIDContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldCycleID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldStatus, vs...))
}

// InternalStatusEQ applies the EQ predicate on the "internal_status" field.
func InternalStatusEQ(v InternalStatus) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldInternalStatus, v))
}

// InternalStatusNEQ applies the NEQ predicate on the "internal_status" field.
func InternalStatusNEQ(v InternalStatus) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldInternalStatus, v))
}

// InternalStatusIn applies the In predicate on the "internal_status" field.
func InternalStatusIn(vs ...InternalStatus) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldInternalStatus, vs...))
}

// InternalStatusNotIn applies the NotIn predicate on the "internal_status" field.
func InternalStatusNotIn(vs ...InternalStatus) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldInternalStatus, vs...))
}

// InternalDecisionEQ applies the EQ predicate on the "internal_decision" field.
func InternalDecisionEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldInternalDecision, v))
}

// InternalDecisionNEQ applies the NEQ predicate on the "internal_decision" field.
func InternalDecisionNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldInternalDecision, v))
}

// InternalDecisionIn applies the In predicate on the "internal_decision" field.
func InternalDecisionIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldInternalDecision, vs...))
}

// InternalDecisionNotIn applies the NotIn predicate on the "internal_decision" field.
func InternalDecisionNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldInternalDecision, vs...))
}

// InternalDecisionGT applies the GT predicate on the "internal_decision" field.
func InternalDecisionGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldInternalDecision, v))
}

// InternalDecisionGTE applies the GTE predicate on the "internal_decision" field.
func InternalDecisionGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldInternalDecision, v))
}

// InternalDecisionLT applies the LT predicate on the "internal_decision" field.
func InternalDecisionLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldInternalDecision, v))
}

// InternalDecisionLTE applies the LTE predicate on the "internal_decision" field.
func InternalDecisionLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldInternalDecision, v))
}

// InternalDecisionContains applies the Contains predicate on the "internal_decision" field.
func InternalDecisionContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldInternalDecision, v))
}

// InternalDecisionHasPrefix applies the HasPrefix predicate on the "internal_decision" field.
func InternalDecisionHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldInternalDecision, v))
}

// InternalDecisionHasSuffix applies the HasSuffix predicate on the "internal_decision" field.
func InternalDecisionHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldInternalDecision, v))
}

// InternalDecisionIsNil applies the IsNil predicate on the "internal_decision" field.
func InternalDecisionIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldInternalDecision))
}

// InternalDecisionNotNil applies the NotNil predicate on the "internal_decision" field.
func InternalDecisionNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldInternalDecision))
}

// InternalDecisionEqualFold applies the EqualFold predicate on the "internal_decision" field.
func InternalDecisionEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldInternalDecision, v))
}

// InternalDecisionContainsFold applies the ContainsFold predicate on the "internal_decision" field.
func InternalDecisionContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldInternalDecision, v))
}

// DataIsNil applies the IsNil predicate on the "data" field.
func DataIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldData))
}

// DataNotNil applies the NotNil predicate on the "data" field.
func DataNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldData))
}

// ReviewsIsNil applies the IsNil predicate on the "reviews" field.
func ReviewsIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldReviews))
}

// ReviewsNotNil applies the NotNil predicate on the "reviews" field.
func ReviewsNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldReviews))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTeam applies the HasEdge predicate on the "team" edge.
func HasTeam() predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TeamTable, TeamColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTeamWith applies the HasEdge predicate on the "team" edge with a given conditions (other predicates).
func HasTeamWith(preds ...predicate.Team) predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := newTeamStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSystem applies the HasEdge predicate on the "system" edge.
func HasSystem() predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SystemTable, SystemColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSystemWith applies the HasEdge predicate on the "system" edge with a given conditions (other predicates).
func HasSystemWith(preds ...predicate.System) predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := newSystemStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCycle applies the HasEdge predicate on the "cycle" edge.
func HasCycle() predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CycleTable, CycleColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCycleWith applies the HasEdge predicate on the "cycle" edge with a given conditions (other predicates).
func HasCycleWith(preds ...predicate.ApplicationCycle) predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := newCycleStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInterviews applies the HasEdge predicate on the "interviews" edge.
func HasInterviews() predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InterviewsTable, InterviewsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInterviewsWith applies the HasEdge predicate on the "interviews" edge with a given conditions (other predicates).
func HasInterviewsWith(preds ...predicate.Interview) predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := newInterviewsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Application) predicate.Application {
	return predicate.Application(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Application) predicate.Application {
	return predicate.Application(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Application) predicate.Application {
	return predicate.Application(sql.NotPredicates(p))
}
