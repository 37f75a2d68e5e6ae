// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crewcycle.io/crewcycle/ent/applicationcycle"
	"crewcycle.io/crewcycle/ent/cyclestage"
	"crewcycle.io/crewcycle/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CycleStageUpdate is the builder for updating CycleStage entities.
type CycleStageUpdate struct {
	config
	hooks    []Hook
	mutation *CycleStageMutation
}

// Where appends a list predicates to the CycleStageUpdate builder.
func (_u *CycleStageUpdate) Where(ps ...predicate.CycleStage) *CycleStageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CycleStageUpdate) SetUpdatedAt(v time.Time) *CycleStageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStage sets the "stage" field.
func (_u *CycleStageUpdate) SetStage(v cyclestage.Stage) *CycleStageUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *CycleStageUpdate) SetNillableStage(v *cyclestage.Stage) *CycleStageUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *CycleStageUpdate) SetStartDate(v time.Time) *CycleStageUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *CycleStageUpdate) SetNillableStartDate(v *time.Time) *CycleStageUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *CycleStageUpdate) SetEndDate(v time.Time) *CycleStageUpdate {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *CycleStageUpdate) SetNillableEndDate(v *time.Time) *CycleStageUpdate {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// SetCycleID sets the "cycle_id" field.
func (_u *CycleStageUpdate) SetCycleID(v string) *CycleStageUpdate {
	_u.mutation.SetCycleID(v)
	return _u
}

// SetNillableCycleID sets the "cycle_id" field if the given value is not nil.
func (_u *CycleStageUpdate) SetNillableCycleID(v *string) *CycleStageUpdate {
	if v != nil {
		_u.SetCycleID(*v)
	}
	return _u
}

// SetCycle sets the "cycle" edge to the ApplicationCycle entity.
func (_u *CycleStageUpdate) SetCycle(v *ApplicationCycle) *CycleStageUpdate {
	return _u.SetCycleID(v.ID)
}

// Mutation returns the CycleStageMutation object of the builder.
func (_u *CycleStageUpdate) Mutation() *CycleStageMutation {
	return _u.mutation
}

// ClearCycle clears the "cycle" edge to the ApplicationCycle entity.
func (_u *CycleStageUpdate) ClearCycle() *CycleStageUpdate {
	_u.mutation.ClearCycle()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CycleStageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CycleStageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CycleStageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CycleStageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CycleStageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cyclestage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CycleStageUpdate) check() error {
	if v, ok := _u.mutation.Stage(); ok {
		if err := cyclestage.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "CycleStage.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CycleID(); ok {
		if err := cyclestage.CycleIDValidator(v); err != nil {
			return &ValidationError{Name: "cycle_id", err: fmt.Errorf(`ent: validator failed for field "CycleStage.cycle_id": %w`, err)}
		}
	}
	if _u.mutation.CycleCleared() && len(_u.mutation.CycleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CycleStage.cycle"`)
	}
	return nil
}

func (_u *CycleStageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cyclestage.Table, cyclestage.Columns, sqlgraph.NewFieldSpec(cyclestage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cyclestage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(cyclestage.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(cyclestage.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(cyclestage.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.CycleCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CycleIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cyclestage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CycleStageUpdateOne is the builder for updating a single CycleStage entity.
type CycleStageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CycleStageMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CycleStageUpdateOne) SetUpdatedAt(v time.Time) *CycleStageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStage sets the "stage" field.
func (_u *CycleStageUpdateOne) SetStage(v cyclestage.Stage) *CycleStageUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *CycleStageUpdateOne) SetNillableStage(v *cyclestage.Stage) *CycleStageUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *CycleStageUpdateOne) SetStartDate(v time.Time) *CycleStageUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *CycleStageUpdateOne) SetNillableStartDate(v *time.Time) *CycleStageUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *CycleStageUpdateOne) SetEndDate(v time.Time) *CycleStageUpdateOne {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *CycleStageUpdateOne) SetNillableEndDate(v *time.Time) *CycleStageUpdateOne {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// SetCycleID sets the "cycle_id" field.
func (_u *CycleStageUpdateOne) SetCycleID(v string) *CycleStageUpdateOne {
	_u.mutation.SetCycleID(v)
	return _u
}

// SetNillableCycleID sets the "cycle_id" field if the given value is not nil.
func (_u *CycleStageUpdateOne) SetNillableCycleID(v *string) *CycleStageUpdateOne {
	if v != nil {
		_u.SetCycleID(*v)
	}
	return _u
}

// SetCycle sets the "cycle" edge to the ApplicationCycle entity.
func (_u *CycleStageUpdateOne) SetCycle(v *ApplicationCycle) *CycleStageUpdateOne {
	return _u.SetCycleID(v.ID)
}

// Mutation returns the CycleStageMutation object of the builder.
func (_u *CycleStageUpdateOne) Mutation() *CycleStageMutation {
	return _u.mutation
}

// ClearCycle clears the "cycle" edge to the ApplicationCycle entity.
func (_u *CycleStageUpdateOne) ClearCycle() *CycleStageUpdateOne {
	_u.mutation.ClearCycle()
	return _u
}

// Where appends a list predicates to the CycleStageUpdate builder.
func (_u *CycleStageUpdateOne) Where(ps ...predicate.CycleStage) *CycleStageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CycleStageUpdateOne) Select(field string, fields ...string) *CycleStageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CycleStage entity.
func (_u *CycleStageUpdateOne) Save(ctx context.Context) (*CycleStage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CycleStageUpdateOne) SaveX(ctx context.Context) *CycleStage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CycleStageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CycleStageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CycleStageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cyclestage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CycleStageUpdateOne) check() error {
	if v, ok := _u.mutation.Stage(); ok {
		if err := cyclestage.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "CycleStage.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CycleID(); ok {
		if err := cyclestage.CycleIDValidator(v); err != nil {
			return &ValidationError{Name: "cycle_id", err: fmt.Errorf(`ent: validator failed for field "CycleStage.cycle_id": %w`, err)}
		}
	}
	if _u.mutation.CycleCleared() && len(_u.mutation.CycleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CycleStage.cycle"`)
	}
	return nil
}

func (_u *CycleStageUpdateOne) sqlSave(ctx context.Context) (_node *CycleStage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cyclestage.Table, cyclestage.Columns, sqlgraph.NewFieldSpec(cyclestage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CycleStage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cyclestage.FieldID)
		for _, f := range fields {
			if !cyclestage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cyclestage.FieldID {
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
		_spec.SetField(cyclestage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(cyclestage.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(cyclestage.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(cyclestage.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.CycleCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CycleIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CycleStage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cyclestage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
