// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crewcycle.io/crewcycle/ent/application"
	"crewcycle.io/crewcycle/ent/interview"
	"crewcycle.io/crewcycle/ent/predicate"
	"crewcycle.io/crewcycle/ent/schema"
	"crewcycle.io/crewcycle/ent/system"
	"crewcycle.io/crewcycle/ent/team"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
)

// ApplicationUpdate is the builder for updating Application entities.
type ApplicationUpdate struct {
	config
	hooks    []Hook
	mutation *ApplicationMutation
}

// Where appends a list predicates to the ApplicationUpdate builder.
func (_u *ApplicationUpdate) Where(ps ...predicate.Application) *ApplicationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApplicationUpdate) SetUpdatedAt(v time.Time) *ApplicationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTeamID sets the "team_id" field.
func (_u *ApplicationUpdate) SetTeamID(v string) *ApplicationUpdate {
	_u.mutation.SetTeamID(v)
	return _u
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableTeamID(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetTeamID(*v)
	}
	return _u
}

// SetSystemID sets the "system_id" field.
func (_u *ApplicationUpdate) SetSystemID(v string) *ApplicationUpdate {
	_u.mutation.SetSystemID(v)
	return _u
}

// SetNillableSystemID sets the "system_id" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableSystemID(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetSystemID(*v)
	}
	return _u
}

// ClearSystemID clears the value of the "system_id" field.
func (_u *ApplicationUpdate) ClearSystemID() *ApplicationUpdate {
	_u.mutation.ClearSystemID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApplicationUpdate) SetStatus(v application.Status) *ApplicationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableStatus(v *application.Status) *ApplicationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInternalStatus sets the "internal_status" field.
func (_u *ApplicationUpdate) SetInternalStatus(v application.InternalStatus) *ApplicationUpdate {
	_u.mutation.SetInternalStatus(v)
	return _u
}

// SetNillableInternalStatus sets the "internal_status" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableInternalStatus(v *application.InternalStatus) *ApplicationUpdate {
	if v != nil {
		_u.SetInternalStatus(*v)
	}
	return _u
}

// SetInternalDecision sets the "internal_decision" field.
func (_u *ApplicationUpdate) SetInternalDecision(v string) *ApplicationUpdate {
	_u.mutation.SetInternalDecision(v)
	return _u
}

// SetNillableInternalDecision sets the "internal_decision" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableInternalDecision(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetInternalDecision(*v)
	}
	return _u
}

// ClearInternalDecision clears the value of the "internal_decision" field.
func (_u *ApplicationUpdate) ClearInternalDecision() *ApplicationUpdate {
	_u.mutation.ClearInternalDecision()
	return _u
}

// SetData sets the "data" field.
func (_u *ApplicationUpdate) SetData(v map[string]interface{}) *ApplicationUpdate {
	_u.mutation.SetData(v)
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *ApplicationUpdate) ClearData() *ApplicationUpdate {
	_u.mutation.ClearData()
	return _u
}

// SetReviews sets the "reviews" field.
func (_u *ApplicationUpdate) SetReviews(v []schema.SystemReview) *ApplicationUpdate {
	_u.mutation.SetReviews(v)
	return _u
}

// AppendReviews appends value to the "reviews" field.
func (_u *ApplicationUpdate) AppendReviews(v []schema.SystemReview) *ApplicationUpdate {
	_u.mutation.AppendReviews(v)
	return _u
}

// ClearReviews clears the value of the "reviews" field.
func (_u *ApplicationUpdate) ClearReviews() *ApplicationUpdate {
	_u.mutation.ClearReviews()
	return _u
}

// SetTeam sets the "team" edge to the Team entity.
func (_u *ApplicationUpdate) SetTeam(v *Team) *ApplicationUpdate {
	return _u.SetTeamID(v.ID)
}

// SetSystem sets the "system" edge to the System entity.
func (_u *ApplicationUpdate) SetSystem(v *System) *ApplicationUpdate {
	return _u.SetSystemID(v.ID)
}

// AddInterviewIDs adds the "interviews" edge to the Interview entity by IDs.
func (_u *ApplicationUpdate) AddInterviewIDs(ids ...string) *ApplicationUpdate {
	_u.mutation.AddInterviewIDs(ids...)
	return _u
}

// AddInterviews adds the "interviews" edges to the Interview entity.
func (_u *ApplicationUpdate) AddInterviews(v ...*Interview) *ApplicationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInterviewIDs(ids...)
}

// Mutation returns the ApplicationMutation object of the builder.
func (_u *ApplicationUpdate) Mutation() *ApplicationMutation {
	return _u.mutation
}

// ClearTeam clears the "team" edge to the Team entity.
func (_u *ApplicationUpdate) ClearTeam() *ApplicationUpdate {
	_u.mutation.ClearTeam()
	return _u
}

// ClearSystem clears the "system" edge to the System entity.
func (_u *ApplicationUpdate) ClearSystem() *ApplicationUpdate {
	_u.mutation.ClearSystem()
	return _u
}

// ClearInterviews clears all "interviews" edges to the Interview entity.
func (_u *ApplicationUpdate) ClearInterviews() *ApplicationUpdate {
	_u.mutation.ClearInterviews()
	return _u
}

// RemoveInterviewIDs removes the "interviews" edge to Interview entities by IDs.
func (_u *ApplicationUpdate) RemoveInterviewIDs(ids ...string) *ApplicationUpdate {
	_u.mutation.RemoveInterviewIDs(ids...)
	return _u
}

// RemoveInterviews removes "interviews" edges to Interview entities.
func (_u *ApplicationUpdate) RemoveInterviews(v ...*Interview) *ApplicationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInterviewIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApplicationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApplicationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApplicationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := application.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicationUpdate) check() error {
	if v, ok := _u.mutation.TeamID(); ok {
		if err := application.TeamIDValidator(v); err != nil {
			return &ValidationError{Name: "team_id", err: fmt.Errorf(`ent: validator failed for field "Application.team_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Application.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InternalStatus(); ok {
		if err := application.InternalStatusValidator(v); err != nil {
			return &ValidationError{Name: "internal_status", err: fmt.Errorf(`ent: validator failed for field "Application.internal_status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Application.user"`)
	}
	if _u.mutation.TeamCleared() && len(_u.mutation.TeamIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Application.team"`)
	}
	if _u.mutation.CycleCleared() && len(_u.mutation.CycleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Application.cycle"`)
	}
	return nil
}

func (_u *ApplicationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(application.Table, application.Columns, sqlgraph.NewFieldSpec(application.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InternalStatus(); ok {
		_spec.SetField(application.FieldInternalStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InternalDecision(); ok {
		_spec.SetField(application.FieldInternalDecision, field.TypeString, value)
	}
	if _u.mutation.InternalDecisionCleared() {
		_spec.ClearField(application.FieldInternalDecision, field.TypeString)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(application.FieldData, field.TypeJSON, value)
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(application.FieldData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Reviews(); ok {
		_spec.SetField(application.FieldReviews, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedReviews(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, application.FieldReviews, value)
		})
	}
	if _u.mutation.ReviewsCleared() {
		_spec.ClearField(application.FieldReviews, field.TypeJSON)
	}
	if _u.mutation.TeamCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.TeamTable,
			Columns: []string{application.TeamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TeamIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.TeamTable,
			Columns: []string{application.TeamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SystemCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.SystemTable,
			Columns: []string{application.SystemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(system.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SystemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.SystemTable,
			Columns: []string{application.SystemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(system.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InterviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.InterviewsTable,
			Columns: []string{application.InterviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interview.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInterviewsIDs(); len(nodes) > 0 && !_u.mutation.InterviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.InterviewsTable,
			Columns: []string{application.InterviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InterviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.InterviewsTable,
			Columns: []string{application.InterviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{application.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApplicationUpdateOne is the builder for updating a single Application entity.
type ApplicationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApplicationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApplicationUpdateOne) SetUpdatedAt(v time.Time) *ApplicationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTeamID sets the "team_id" field.
func (_u *ApplicationUpdateOne) SetTeamID(v string) *ApplicationUpdateOne {
	_u.mutation.SetTeamID(v)
	return _u
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableTeamID(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetTeamID(*v)
	}
	return _u
}

// SetSystemID sets the "system_id" field.
func (_u *ApplicationUpdateOne) SetSystemID(v string) *ApplicationUpdateOne {
	_u.mutation.SetSystemID(v)
	return _u
}

// SetNillableSystemID sets the "system_id" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableSystemID(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetSystemID(*v)
	}
	return _u
}

// ClearSystemID clears the value of the "system_id" field.
func (_u *ApplicationUpdateOne) ClearSystemID() *ApplicationUpdateOne {
	_u.mutation.ClearSystemID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApplicationUpdateOne) SetStatus(v application.Status) *ApplicationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableStatus(v *application.Status) *ApplicationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInternalStatus sets the "internal_status" field.
func (_u *ApplicationUpdateOne) SetInternalStatus(v application.InternalStatus) *ApplicationUpdateOne {
	_u.mutation.SetInternalStatus(v)
	return _u
}

// SetNillableInternalStatus sets the "internal_status" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableInternalStatus(v *application.InternalStatus) *ApplicationUpdateOne {
	if v != nil {
		_u.SetInternalStatus(*v)
	}
	return _u
}

// SetInternalDecision sets the "internal_decision" field.
func (_u *ApplicationUpdateOne) SetInternalDecision(v string) *ApplicationUpdateOne {
	_u.mutation.SetInternalDecision(v)
	return _u
}

// SetNillableInternalDecision sets the "internal_decision" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableInternalDecision(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetInternalDecision(*v)
	}
	return _u
}

// ClearInternalDecision clears the value of the "internal_decision" field.
func (_u *ApplicationUpdateOne) ClearInternalDecision() *ApplicationUpdateOne {
	_u.mutation.ClearInternalDecision()
	return _u
}

// SetData sets the "data" field.
func (_u *ApplicationUpdateOne) SetData(v map[string]interface{}) *ApplicationUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *ApplicationUpdateOne) ClearData() *ApplicationUpdateOne {
	_u.mutation.ClearData()
	return _u
}

// SetReviews sets the "reviews" field.
func (_u *ApplicationUpdateOne) SetReviews(v []schema.SystemReview) *ApplicationUpdateOne {
	_u.mutation.SetReviews(v)
	return _u
}

// AppendReviews appends value to the "reviews" field.
func (_u *ApplicationUpdateOne) AppendReviews(v []schema.SystemReview) *ApplicationUpdateOne {
	_u.mutation.AppendReviews(v)
	return _u
}

// ClearReviews clears the value of the "reviews" field.
func (_u *ApplicationUpdateOne) ClearReviews() *ApplicationUpdateOne {
	_u.mutation.ClearReviews()
	return _u
}

// SetTeam sets the "team" edge to the Team entity.
func (_u *ApplicationUpdateOne) SetTeam(v *Team) *ApplicationUpdateOne {
	return _u.SetTeamID(v.ID)
}

// SetSystem sets the "system" edge to the System entity.
func (_u *ApplicationUpdateOne) SetSystem(v *System) *ApplicationUpdateOne {
	return _u.SetSystemID(v.ID)
}

// AddInterviewIDs adds the "interviews" edge to the Interview entity by IDs.
func (_u *ApplicationUpdateOne) AddInterviewIDs(ids ...string) *ApplicationUpdateOne {
	_u.mutation.AddInterviewIDs(ids...)
	return _u
}

// AddInterviews adds the "interviews" edges to the Interview entity.
func (_u *ApplicationUpdateOne) AddInterviews(v ...*Interview) *ApplicationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInterviewIDs(ids...)
}

// Mutation returns the ApplicationMutation object of the builder.
func (_u *ApplicationUpdateOne) Mutation() *ApplicationMutation {
	return _u.mutation
}

// ClearTeam clears the "team" edge to the Team entity.
func (_u *ApplicationUpdateOne) ClearTeam() *ApplicationUpdateOne {
	_u.mutation.ClearTeam()
	return _u
}

// ClearSystem clears the "system" edge to the System entity.
func (_u *ApplicationUpdateOne) ClearSystem() *ApplicationUpdateOne {
	_u.mutation.ClearSystem()
	return _u
}

// ClearInterviews clears all "interviews" edges to the Interview entity.
func (_u *ApplicationUpdateOne) ClearInterviews() *ApplicationUpdateOne {
	_u.mutation.ClearInterviews()
	return _u
}

// RemoveInterviewIDs removes the "interviews" edge to Interview entities by IDs.
func (_u *ApplicationUpdateOne) RemoveInterviewIDs(ids ...string) *ApplicationUpdateOne {
	_u.mutation.RemoveInterviewIDs(ids...)
	return _u
}

// RemoveInterviews removes "interviews" edges to Interview entities.
func (_u *ApplicationUpdateOne) RemoveInterviews(v ...*Interview) *ApplicationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInterviewIDs(ids...)
}

// Where appends a list predicates to the ApplicationUpdate builder.
func (_u *ApplicationUpdateOne) Where(ps ...predicate.Application) *ApplicationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApplicationUpdateOne) Select(field string, fields ...string) *ApplicationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Application entity.
func (_u *ApplicationUpdateOne) Save(ctx context.Context) (*Application, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationUpdateOne) SaveX(ctx context.Context) *Application {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApplicationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApplicationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := application.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicationUpdateOne) check() error {
	if v, ok := _u.mutation.TeamID(); ok {
		if err := application.TeamIDValidator(v); err != nil {
			return &ValidationError{Name: "team_id", err: fmt.Errorf(`ent: validator failed for field "Application.team_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Application.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InternalStatus(); ok {
		if err := application.InternalStatusValidator(v); err != nil {
			return &ValidationError{Name: "internal_status", err: fmt.Errorf(`ent: validator failed for field "Application.internal_status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Application.user"`)
	}
	if _u.mutation.TeamCleared() && len(_u.mutation.TeamIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Application.team"`)
	}
	if _u.mutation.CycleCleared() && len(_u.mutation.CycleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Application.cycle"`)
	}
	return nil
}

func (_u *ApplicationUpdateOne) sqlSave(ctx context.Context) (_node *Application, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(application.Table, application.Columns, sqlgraph.NewFieldSpec(application.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Application.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, application.FieldID)
		for _, f := range fields {
			if !application.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != application.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InternalStatus(); ok {
		_spec.SetField(application.FieldInternalStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InternalDecision(); ok {
		_spec.SetField(application.FieldInternalDecision, field.TypeString, value)
	}
	if _u.mutation.InternalDecisionCleared() {
		_spec.ClearField(application.FieldInternalDecision, field.TypeString)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(application.FieldData, field.TypeJSON, value)
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(application.FieldData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Reviews(); ok {
		_spec.SetField(application.FieldReviews, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedReviews(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, application.FieldReviews, value)
		})
	}
	if _u.mutation.ReviewsCleared() {
		_spec.ClearField(application.FieldReviews, field.TypeJSON)
	}
	if _u.mutation.TeamCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.TeamTable,
			Columns: []string{application.TeamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TeamIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.TeamTable,
			Columns: []string{application.TeamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SystemCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.SystemTable,
			Columns: []string{application.SystemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(system.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SystemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.SystemTable,
			Columns: []string{application.SystemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(system.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InterviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.InterviewsTable,
			Columns: []string{application.InterviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interview.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInterviewsIDs(); len(nodes) > 0 && !_u.mutation.InterviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.InterviewsTable,
			Columns: []string{application.InterviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InterviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.InterviewsTable,
			Columns: []string{application.InterviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Application{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{application.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
