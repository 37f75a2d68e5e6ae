// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crewcycle.io/crewcycle/ent/applicationcycle"
	"crewcycle.io/crewcycle/ent/cyclestage"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CycleStageCreate is the builder for creating a CycleStage entity.
type CycleStageCreate struct {
	config
	mutation *CycleStageMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *CycleStageCreate) SetCreatedAt(v time.Time) *CycleStageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CycleStageCreate) SetNillableCreatedAt(v *time.Time) *CycleStageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CycleStageCreate) SetUpdatedAt(v time.Time) *CycleStageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CycleStageCreate) SetNillableUpdatedAt(v *time.Time) *CycleStageCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStage sets the "stage" field.
func (_c *CycleStageCreate) SetStage(v cyclestage.Stage) *CycleStageCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *CycleStageCreate) SetStartDate(v time.Time) *CycleStageCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetEndDate sets the "end_date" field.
func (_c *CycleStageCreate) SetEndDate(v time.Time) *CycleStageCreate {
	_c.mutation.SetEndDate(v)
	return _c
}

// SetCycleID sets the "cycle_id" field.
func (_c *CycleStageCreate) SetCycleID(v string) *CycleStageCreate {
	_c.mutation.SetCycleID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CycleStageCreate) SetID(v string) *CycleStageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCycle sets the "cycle" edge to the ApplicationCycle entity.
func (_c *CycleStageCreate) SetCycle(v *ApplicationCycle) *CycleStageCreate {
	return _c.SetCycleID(v.ID)
}

// Mutation returns the CycleStageMutation object of the builder.
func (_c *CycleStageCreate) Mutation() *CycleStageMutation {
	return _c.mutation
}

// Save creates the CycleStage in the database.
func (_c *CycleStageCreate) Save(ctx context.Context) (*CycleStage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CycleStageCreate) SaveX(ctx context.Context) *CycleStage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CycleStageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CycleStageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CycleStageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := cyclestage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := cyclestage.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CycleStageCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CycleStage.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CycleStage.updated_at"`)}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "CycleStage.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := cyclestage.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "CycleStage.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartDate(); !ok {
		return &ValidationError{Name: "start_date", err: errors.New(`ent: missing required field "CycleStage.start_date"`)}
	}
	if _, ok := _c.mutation.EndDate(); !ok {
		return &ValidationError{Name: "end_date", err: errors.New(`ent: missing required field "CycleStage.end_date"`)}
	}
	if _, ok := _c.mutation.CycleID(); !ok {
		return &ValidationError{Name: "cycle_id", err: errors.New(`ent: missing required field "CycleStage.cycle_id"`)}
	}
	if v, ok := _c.mutation.CycleID(); ok {
		if err := cyclestage.CycleIDValidator(v); err != nil {
			return &ValidationError{Name: "cycle_id", err: fmt.Errorf(`ent: validator failed for field "CycleStage.cycle_id": %w`, err)}
		}
	}
	if len(_c.mutation.CycleIDs()) == 0 {
		return &ValidationError{Name: "cycle", err: errors.New(`ent: missing required edge "CycleStage.cycle"`)}
	}
	return nil
}

func (_c *CycleStageCreate) sqlSave(ctx context.Context) (*CycleStage, error) {
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
			return nil, fmt.Errorf("unexpected CycleStage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CycleStageCreate) createSpec() (*CycleStage, *sqlgraph.CreateSpec) {
	var (
		_node = &CycleStage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cyclestage.Table, sqlgraph.NewFieldSpec(cyclestage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(cyclestage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(cyclestage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(cyclestage.FieldStage, field.TypeEnum, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(cyclestage.FieldStartDate, field.TypeTime, value)
		_node.StartDate = value
	}
	if value, ok := _c.mutation.EndDate(); ok {
		_spec.SetField(cyclestage.FieldEndDate, field.TypeTime, value)
		_node.EndDate = value
	}
	if nodes := _c.mutation.CycleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cyclestage.CycleTable,
			Columns: []string{cyclestage.CycleColumn},
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
	return _node, _spec
}

// CycleStageCreateBulk is the builder for creating many CycleStage entities in bulk.
type CycleStageCreateBulk struct {
	config
	err      error
	builders []*CycleStageCreate
}

// Save creates the CycleStage entities in the database.
func (_c *CycleStageCreateBulk) Save(ctx context.Context) ([]*CycleStage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CycleStage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CycleStageMutation)
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
func (_c *CycleStageCreateBulk) SaveX(ctx context.Context) []*CycleStage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CycleStageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CycleStageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
