// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crewcycle.io/crewcycle/ent/availability"
	"crewcycle.io/crewcycle/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// AvailabilityUpdate is the builder for updating Availability entities.
type AvailabilityUpdate struct {
	config
	hooks    []Hook
	mutation *AvailabilityMutation
}

// Where appends a list predicates to the AvailabilityUpdate builder.
func (_u *AvailabilityUpdate) Where(ps ...predicate.Availability) *AvailabilityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AvailabilityUpdate) SetUpdatedAt(v time.Time) *AvailabilityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartAt sets the "start_at" field.
func (_u *AvailabilityUpdate) SetStartAt(v time.Time) *AvailabilityUpdate {
	_u.mutation.SetStartAt(v)
	return _u
}

// SetNillableStartAt sets the "start_at" field if the given value is not nil.
func (_u *AvailabilityUpdate) SetNillableStartAt(v *time.Time) *AvailabilityUpdate {
	if v != nil {
		_u.SetStartAt(*v)
	}
	return _u
}

// SetEndAt sets the "end_at" field.
func (_u *AvailabilityUpdate) SetEndAt(v time.Time) *AvailabilityUpdate {
	_u.mutation.SetEndAt(v)
	return _u
}

// SetNillableEndAt sets the "end_at" field if the given value is not nil.
func (_u *AvailabilityUpdate) SetNillableEndAt(v *time.Time) *AvailabilityUpdate {
	if v != nil {
		_u.SetEndAt(*v)
	}
	return _u
}

// Mutation returns the AvailabilityMutation object of the builder.
func (_u *AvailabilityUpdate) Mutation() *AvailabilityMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AvailabilityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AvailabilityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AvailabilityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AvailabilityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AvailabilityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := availability.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AvailabilityUpdate) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Availability.user"`)
	}
	if _u.mutation.SystemCleared() && len(_u.mutation.SystemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Availability.system"`)
	}
	return nil
}

func (_u *AvailabilityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(availability.Table, availability.Columns, sqlgraph.NewFieldSpec(availability.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(availability.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartAt(); ok {
		_spec.SetField(availability.FieldStartAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndAt(); ok {
		_spec.SetField(availability.FieldEndAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{availability.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AvailabilityUpdateOne is the builder for updating a single Availability entity.
type AvailabilityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AvailabilityMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AvailabilityUpdateOne) SetUpdatedAt(v time.Time) *AvailabilityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartAt sets the "start_at" field.
func (_u *AvailabilityUpdateOne) SetStartAt(v time.Time) *AvailabilityUpdateOne {
	_u.mutation.SetStartAt(v)
	return _u
}

// SetNillableStartAt sets the "start_at" field if the given value is not nil.
func (_u *AvailabilityUpdateOne) SetNillableStartAt(v *time.Time) *AvailabilityUpdateOne {
	if v != nil {
		_u.SetStartAt(*v)
	}
	return _u
}

// SetEndAt sets the "end_at" field.
func (_u *AvailabilityUpdateOne) SetEndAt(v time.Time) *AvailabilityUpdateOne {
	_u.mutation.SetEndAt(v)
	return _u
}

// SetNillableEndAt sets the "end_at" field if the given value is not nil.
func (_u *AvailabilityUpdateOne) SetNillableEndAt(v *time.Time) *AvailabilityUpdateOne {
	if v != nil {
		_u.SetEndAt(*v)
	}
	return _u
}

// Mutation returns the AvailabilityMutation object of the builder.
func (_u *AvailabilityUpdateOne) Mutation() *AvailabilityMutation {
	return _u.mutation
}

// Where appends a list predicates to the AvailabilityUpdate builder.
func (_u *AvailabilityUpdateOne) Where(ps ...predicate.Availability) *AvailabilityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AvailabilityUpdateOne) Select(field string, fields ...string) *AvailabilityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Availability entity.
func (_u *AvailabilityUpdateOne) Save(ctx context.Context) (*Availability, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AvailabilityUpdateOne) SaveX(ctx context.Context) *Availability {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AvailabilityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AvailabilityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AvailabilityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := availability.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AvailabilityUpdateOne) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Availability.user"`)
	}
	if _u.mutation.SystemCleared() && len(_u.mutation.SystemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Availability.system"`)
	}
	return nil
}

func (_u *AvailabilityUpdateOne) sqlSave(ctx context.Context) (_node *Availability, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(availability.Table, availability.Columns, sqlgraph.NewFieldSpec(availability.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Availability.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, availability.FieldID)
		for _, f := range fields {
			if !availability.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != availability.FieldID {
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
		_spec.SetField(availability.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartAt(); ok {
		_spec.SetField(availability.FieldStartAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndAt(); ok {
		_spec.SetField(availability.FieldEndAt, field.TypeTime, value)
	}
	_node = &Availability{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{availability.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
