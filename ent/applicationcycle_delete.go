// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"crewcycle.io/crewcycle/ent/applicationcycle"
	"crewcycle.io/crewcycle/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ApplicationCycleDelete is the builder for deleting a ApplicationCycle entity.
type ApplicationCycleDelete struct {
	config
	hooks    []Hook
	mutation *ApplicationCycleMutation
}

// Where appends a list predicates to the ApplicationCycleDelete builder.
func (_d *ApplicationCycleDelete) Where(ps ...predicate.ApplicationCycle) *ApplicationCycleDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ApplicationCycleDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ApplicationCycleDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ApplicationCycleDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(applicationcycle.Table, sqlgraph.NewFieldSpec(applicationcycle.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ApplicationCycleDeleteOne is the builder for deleting a single ApplicationCycle entity.
type ApplicationCycleDeleteOne struct {
	_d *ApplicationCycleDelete
}

// Where appends a list predicates to the ApplicationCycleDelete builder.
func (_d *ApplicationCycleDeleteOne) Where(ps ...predicate.ApplicationCycle) *ApplicationCycleDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ApplicationCycleDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{applicationcycle.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ApplicationCycleDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
