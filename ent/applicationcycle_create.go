// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crewcycle.io/crewcycle/ent/application"
	"crewcycle.io/crewcycle/ent/applicationcycle"
	"crewcycle.io/crewcycle/ent/cyclestage"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ApplicationCycleCreate is the builder for creating a ApplicationCycle entity.
type ApplicationCycleCreate struct {
	config
	mutation *ApplicationCycleMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApplicationCycleCreate) SetCreatedAt(v time.Time) *ApplicationCycleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApplicationCycleCreate) SetNillableCreatedAt(v *time.Time) *ApplicationCycleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ApplicationCycleCreate) SetUpdatedAt(v time.Time) *ApplicationCycleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ApplicationCycleCreate) SetNillableUpdatedAt(v *time.Time) *ApplicationCycleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *ApplicationCycleCreate) SetName(v string) *ApplicationCycleCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *ApplicationCycleCreate) SetStage(v applicationcycle.Stage) *ApplicationCycleCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *ApplicationCycleCreate) SetNillableStage(v *applicationcycle.Stage) *ApplicationCycleCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *ApplicationCycleCreate) SetStartDate(v time.Time) *ApplicationCycleCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetEndDate sets the "end_date" field.
func (_c *ApplicationCycleCreate) SetEndDate(v time.Time) *ApplicationCycleCreate {
	_c.mutation.SetEndDate(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ApplicationCycleCreate) SetID(v string) *ApplicationCycleCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddStageIDs adds the "stages" edge to the CycleStage entity by IDs.
func (_c *ApplicationCycleCreate) AddStageIDs(ids ...string) *ApplicationCycleCreate {
	_c.mutation.AddStageIDs(ids...)
	return _c
}

// AddStages adds the "stages" edges to the CycleStage entity.
func (_c *ApplicationCycleCreate) AddStages(v ...*CycleStage) *ApplicationCycleCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStageIDs(ids...)
}

// AddApplicationIDs adds the "applications" edge to the Application entity by IDs.
func (_c *ApplicationCycleCreate) AddApplicationIDs(ids ...string) *ApplicationCycleCreate {
	_c.mutation.AddApplicationIDs(ids...)
	return _c
}

// AddApplications adds the "applications" edges to the Application entity.
func (_c *ApplicationCycleCreate) AddApplications(v ...*Application) *ApplicationCycleCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddApplicationIDs(ids...)
}

// Mutation returns the ApplicationCycleMutation object of the builder.
func (_c *ApplicationCycleCreate) Mutation() *ApplicationCycleMutation {
	return _c.mutation
}

// Save creates the ApplicationCycle in the database.
func (_c *ApplicationCycleCreate) Save(ctx context.Context) (*ApplicationCycle, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApplicationCycleCreate) SaveX(ctx context.Context) *ApplicationCycle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationCycleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationCycleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApplicationCycleCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := applicationcycle.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := applicationcycle.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Stage(); !ok {
		v := applicationcycle.DefaultStage
		_c.mutation.SetStage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApplicationCycleCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ApplicationCycle.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ApplicationCycle.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ApplicationCycle.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := applicationcycle.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ApplicationCycle.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "ApplicationCycle.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := applicationcycle.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "ApplicationCycle.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartDate(); !ok {
		return &ValidationError{Name: "start_date", err: errors.New(`ent: missing required field "ApplicationCycle.start_date"`)}
	}
	if _, ok := _c.mutation.EndDate(); !ok {
		return &ValidationError{Name: "end_date", err: errors.New(`ent: missing required field "ApplicationCycle.end_date"`)}
	}
	return nil
}

func (_c *ApplicationCycleCreate) sqlSave(ctx context.Context) (*ApplicationCycle, error) {
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
			return nil, fmt.Errorf("unexpected ApplicationCycle.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApplicationCycleCreate) createSpec() (*ApplicationCycle, *sqlgraph.CreateSpec) {
	var (
		_node = &ApplicationCycle{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(applicationcycle.Table, sqlgraph.NewFieldSpec(applicationcycle.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(applicationcycle.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(applicationcycle.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(applicationcycle.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(applicationcycle.FieldStage, field.TypeEnum, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(applicationcycle.FieldStartDate, field.TypeTime, value)
		_node.StartDate = value
	}
	if value, ok := _c.mutation.EndDate(); ok {
		_spec.SetField(applicationcycle.FieldEndDate, field.TypeTime, value)
		_node.EndDate = value
	}
	if nodes := _c.mutation.StagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   applicationcycle.StagesTable,
			Columns: []string{applicationcycle.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cyclestage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ApplicationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   applicationcycle.ApplicationsTable,
			Columns: []string{applicationcycle.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ApplicationCycleCreateBulk is the builder for creating many ApplicationCycle entities in bulk.
type ApplicationCycleCreateBulk struct {
	config
	err      error
	builders []*ApplicationCycleCreate
}

// Save creates the ApplicationCycle entities in the database.
func (_c *ApplicationCycleCreateBulk) Save(ctx context.Context) ([]*ApplicationCycle, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApplicationCycle, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApplicationCycleMutation)
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
func (_c *ApplicationCycleCreateBulk) SaveX(ctx context.Context) []*ApplicationCycle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationCycleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationCycleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
