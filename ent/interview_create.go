// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crewcycle.io/crewcycle/ent/application"
	"crewcycle.io/crewcycle/ent/interview"
	"crewcycle.io/crewcycle/ent/system"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// InterviewCreate is the builder for creating a Interview entity.
type InterviewCreate struct {
	config
	mutation *InterviewMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *InterviewCreate) SetCreatedAt(v time.Time) *InterviewCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InterviewCreate) SetNillableCreatedAt(v *time.Time) *InterviewCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InterviewCreate) SetUpdatedAt(v time.Time) *InterviewCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InterviewCreate) SetNillableUpdatedAt(v *time.Time) *InterviewCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetApplicationID sets the "application_id" field.
func (_c *InterviewCreate) SetApplicationID(v string) *InterviewCreate {
	_c.mutation.SetApplicationID(v)
	return _c
}

// SetNillableApplicationID sets the "application_id" field if the given value is not nil.
func (_c *InterviewCreate) SetNillableApplicationID(v *string) *InterviewCreate {
	if v != nil {
		_c.SetApplicationID(*v)
	}
	return _c
}

// SetSystemID sets the "system_id" field.
func (_c *InterviewCreate) SetSystemID(v string) *InterviewCreate {
	_c.mutation.SetSystemID(v)
	return _c
}

// SetNillableSystemID sets the "system_id" field if the given value is not nil.
func (_c *InterviewCreate) SetNillableSystemID(v *string) *InterviewCreate {
	if v != nil {
		_c.SetSystemID(*v)
	}
	return _c
}

// SetScheduledAt sets the "scheduled_at" field.
func (_c *InterviewCreate) SetScheduledAt(v time.Time) *InterviewCreate {
	_c.mutation.SetScheduledAt(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *InterviewCreate) SetDurationMinutes(v int) *InterviewCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_c *InterviewCreate) SetNillableDurationMinutes(v *int) *InterviewCreate {
	if v != nil {
		_c.SetDurationMinutes(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *InterviewCreate) SetStatus(v interview.Status) *InterviewCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InterviewCreate) SetNillableStatus(v *interview.Status) *InterviewCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *InterviewCreate) SetNotes(v string) *InterviewCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *InterviewCreate) SetNillableNotes(v *string) *InterviewCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetLocation sets the "location" field.
func (_c *InterviewCreate) SetLocation(v string) *InterviewCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *InterviewCreate) SetNillableLocation(v *string) *InterviewCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetCreatedByID sets the "created_by_id" field.
func (_c *InterviewCreate) SetCreatedByID(v string) *InterviewCreate {
	_c.mutation.SetCreatedByID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *InterviewCreate) SetID(v string) *InterviewCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetApplication sets the "application" edge to the Application entity.
func (_c *InterviewCreate) SetApplication(v *Application) *InterviewCreate {
	return _c.SetApplicationID(v.ID)
}

// SetSystem sets the "system" edge to the System entity.
func (_c *InterviewCreate) SetSystem(v *System) *InterviewCreate {
	return _c.SetSystemID(v.ID)
}

// Mutation returns the InterviewMutation object of the builder.
func (_c *InterviewCreate) Mutation() *InterviewMutation {
	return _c.mutation
}

// Save creates the Interview in the database.
func (_c *InterviewCreate) Save(ctx context.Context) (*Interview, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InterviewCreate) SaveX(ctx context.Context) *Interview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InterviewCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := interview.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := interview.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		v := interview.DefaultDurationMinutes
		_c.mutation.SetDurationMinutes(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := interview.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InterviewCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Interview.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Interview.updated_at"`)}
	}
	if _, ok := _c.mutation.ScheduledAt(); !ok {
		return &ValidationError{Name: "scheduled_at", err: errors.New(`ent: missing required field "Interview.scheduled_at"`)}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`ent: missing required field "Interview.duration_minutes"`)}
	}
	if v, ok := _c.mutation.DurationMinutes(); ok {
		if err := interview.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`ent: validator failed for field "Interview.duration_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Interview.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := interview.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Interview.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedByID(); !ok {
		return &ValidationError{Name: "created_by_id", err: errors.New(`ent: missing required field "Interview.created_by_id"`)}
	}
	if v, ok := _c.mutation.CreatedByID(); ok {
		if err := interview.CreatedByIDValidator(v); err != nil {
			return &ValidationError{Name: "created_by_id", err: fmt.Errorf(`ent: validator failed for field "Interview.created_by_id": %w`, err)}
		}
	}
	return nil
}

func (_c *InterviewCreate) sqlSave(ctx context.Context) (*Interview, error) {
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
			return nil, fmt.Errorf("unexpected Interview.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InterviewCreate) createSpec() (*Interview, *sqlgraph.CreateSpec) {
	var (
		_node = &Interview{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interview.Table, sqlgraph.NewFieldSpec(interview.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(interview.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(interview.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ScheduledAt(); ok {
		_spec.SetField(interview.FieldScheduledAt, field.TypeTime, value)
		_node.ScheduledAt = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(interview.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(interview.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(interview.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(interview.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.CreatedByID(); ok {
		_spec.SetField(interview.FieldCreatedByID, field.TypeString, value)
		_node.CreatedByID = value
	}
	if nodes := _c.mutation.ApplicationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   interview.ApplicationTable,
			Columns: []string{interview.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ApplicationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SystemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   interview.SystemTable,
			Columns: []string{interview.SystemColumn},
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
	return _node, _spec
}

// InterviewCreateBulk is the builder for creating many Interview entities in bulk.
type InterviewCreateBulk struct {
	config
	err      error
	builders []*InterviewCreate
}

// Save creates the Interview entities in the database.
func (_c *InterviewCreateBulk) Save(ctx context.Context) ([]*Interview, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Interview, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InterviewMutation)
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
func (_c *InterviewCreateBulk) SaveX(ctx context.Context) []*Interview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
