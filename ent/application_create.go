// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crewcycle.io/crewcycle/ent/application"
	"crewcycle.io/crewcycle/ent/applicationcycle"
	"crewcycle.io/crewcycle/ent/interview"
	"crewcycle.io/crewcycle/ent/schema"
	"crewcycle.io/crewcycle/ent/system"
	"crewcycle.io/crewcycle/ent/team"
	"crewcycle.io/crewcycle/ent/user"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ApplicationCreate is the builder for creating a Application entity.
type ApplicationCreate struct {
	config
	mutation *ApplicationMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApplicationCreate) SetCreatedAt(v time.Time) *ApplicationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableCreatedAt(v *time.Time) *ApplicationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ApplicationCreate) SetUpdatedAt(v time.Time) *ApplicationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableUpdatedAt(v *time.Time) *ApplicationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ApplicationCreate) SetUserID(v string) *ApplicationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTeamID sets the "team_id" field.
func (_c *ApplicationCreate) SetTeamID(v string) *ApplicationCreate {
	_c.mutation.SetTeamID(v)
	return _c
}

// SetSystemID sets the "system_id" field.
func (_c *ApplicationCreate) SetSystemID(v string) *ApplicationCreate {
	_c.mutation.SetSystemID(v)
	return _c
}

// SetNillableSystemID sets the "system_id" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableSystemID(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetSystemID(*v)
	}
	return _c
}

// SetCycleID sets the "cycle_id" field.
func (_c *ApplicationCreate) SetCycleID(v string) *ApplicationCreate {
	_c.mutation.SetCycleID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ApplicationCreate) SetStatus(v application.Status) *ApplicationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableStatus(v *application.Status) *ApplicationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetInternalStatus sets the "internal_status" field.
func (_c *ApplicationCreate) SetInternalStatus(v application.InternalStatus) *ApplicationCreate {
	_c.mutation.SetInternalStatus(v)
	return _c
}

// SetNillableInternalStatus sets the "internal_status" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableInternalStatus(v *application.InternalStatus) *ApplicationCreate {
	if v != nil {
		_c.SetInternalStatus(*v)
	}
	return _c
}

// SetInternalDecision sets the "internal_decision" field.
func (_c *ApplicationCreate) SetInternalDecision(v string) *ApplicationCreate {
	_c.mutation.SetInternalDecision(v)
	return _c
}

// SetNillableInternalDecision sets the "internal_decision" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableInternalDecision(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetInternalDecision(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *ApplicationCreate) SetData(v map[string]interface{}) *ApplicationCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetReviews sets the "reviews" field.
func (_c *ApplicationCreate) SetReviews(v []schema.SystemReview) *ApplicationCreate {
	_c.mutation.SetReviews(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ApplicationCreate) SetID(v string) *ApplicationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *ApplicationCreate) SetUser(v *User) *ApplicationCreate {
	return _c.SetUserID(v.ID)
}

// SetTeam sets the "team" edge to the Team entity.
func (_c *ApplicationCreate) SetTeam(v *Team) *ApplicationCreate {
	return _c.SetTeamID(v.ID)
}

// SetSystem sets the "system" edge to the System entity.
func (_c *ApplicationCreate) SetSystem(v *System) *ApplicationCreate {
	return _c.SetSystemID(v.ID)
}

// SetCycle sets the "cycle" edge to the ApplicationCycle entity.
func (_c *ApplicationCreate) SetCycle(v *ApplicationCycle) *ApplicationCreate {
	return _c.SetCycleID(v.ID)
}

// AddInterviewIDs adds the "interviews" edge to the Interview entity by IDs.
func (_c *ApplicationCreate) AddInterviewIDs(ids ...string) *ApplicationCreate {
	_c.mutation.AddInterviewIDs(ids...)
	return _c
}

// AddInterviews adds the "interviews" edges to the Interview entity.
func (_c *ApplicationCreate) AddInterviews(v ...*Interview) *ApplicationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInterviewIDs(ids...)
}

// Mutation returns the ApplicationMutation object of the builder.
func (_c *ApplicationCreate) Mutation() *ApplicationMutation {
	return _c.mutation
}

// Save creates the Application in the database.
func (_c *ApplicationCreate) Save(ctx context.Context) (*Application, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApplicationCreate) SaveX(ctx context.Context) *Application {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApplicationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := application.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := application.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := application.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.InternalStatus(); !ok {
		v := application.DefaultInternalStatus
		_c.mutation.SetInternalStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApplicationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Application.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Application.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Application.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := application.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Application.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TeamID(); !ok {
		return &ValidationError{Name: "team_id", err: errors.New(`ent: missing required field "Application.team_id"`)}
	}
	if v, ok := _c.mutation.TeamID(); ok {
		if err := application.TeamIDValidator(v); err != nil {
			return &ValidationError{Name: "team_id", err: fmt.Errorf(`ent: validator failed for field "Application.team_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CycleID(); !ok {
		return &ValidationError{Name: "cycle_id", err: errors.New(`ent: missing required field "Application.cycle_id"`)}
	}
	if v, ok := _c.mutation.CycleID(); ok {
		if err := application.CycleIDValidator(v); err != nil {
			return &ValidationError{Name: "cycle_id", err: fmt.Errorf(`ent: validator failed for field "Application.cycle_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Application.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Application.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InternalStatus(); !ok {
		return &ValidationError{Name: "internal_status", err: errors.New(`ent: missing required field "Application.internal_status"`)}
	}
	if v, ok := _c.mutation.InternalStatus(); ok {
		if err := application.InternalStatusValidator(v); err != nil {
			return &ValidationError{Name: "internal_status", err: fmt.Errorf(`ent: validator failed for field "Application.internal_status": %w`, err)}
		}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Application.user"`)}
	}
	if len(_c.mutation.TeamIDs()) == 0 {
		return &ValidationError{Name: "team", err: errors.New(`ent: missing required edge "Application.team"`)}
	}
	if len(_c.mutation.CycleIDs()) == 0 {
		return &ValidationError{Name: "cycle", err: errors.New(`ent: missing required edge "Application.cycle"`)}
	}
	return nil
}

func (_c *ApplicationCreate) sqlSave(ctx context.Context) (*Application, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Application.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApplicationCreate) createSpec() (*Application, *sqlgraph.CreateSpec) {
	var (
		_node = &Application{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(application.Table, sqlgraph.NewFieldSpec(application.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(application.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.InternalStatus(); ok {
		_spec.SetField(application.FieldInternalStatus, field.TypeEnum, value)
		_node.InternalStatus = value
	}
	if value, ok := _c.mutation.InternalDecision(); ok {
		_spec.SetField(application.FieldInternalDecision, field.TypeString, value)
		_node.InternalDecision = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(application.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.Reviews(); ok {
		_spec.SetField(application.FieldReviews, field.TypeJSON, value)
		_node.Reviews = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.UserTable,
			Columns: []string{application.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TeamIDs(); len(nodes) > 0 {
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
		_node.TeamID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SystemIDs(); len(nodes) > 0 {
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
		_node.SystemID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CycleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.CycleTable,
			Columns: []string{application.CycleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(applicationcycle.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CycleID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.InterviewsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ApplicationCreateBulk is the builder for creating many Application entities in bulk.
type ApplicationCreateBulk struct {
	config
	err      error
	builders []*ApplicationCreate
}

// Save creates the Application entities in the database.
func (_c *ApplicationCreateBulk) Save(ctx context.Context) ([]*Application, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Application, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApplicationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ApplicationCreateBulk) SaveX(ctx context.Context) []*Application {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
