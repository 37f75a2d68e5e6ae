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
	"crewcycle.io/crewcycle/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ApplicationCycleUpdate is the builder for updating ApplicationCycle entities.
type ApplicationCycleUpdate struct {
	config
	hooks    []Hook
	mutation *ApplicationCycleMutation
}

// Where appends a list predicates to the ApplicationCycleUpdate builder.
func (_u *ApplicationCycleUpdate) Where(ps ...predicate.ApplicationCycle) *ApplicationCycleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApplicationCycleUpdate) SetUpdatedAt(v time.Time) *ApplicationCycleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *ApplicationCycleUpdate) SetName(v string) *ApplicationCycleUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ApplicationCycleUpdate) SetNillableName(v *string) *ApplicationCycleUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *ApplicationCycleUpdate) SetStage(v applicationcycle.Stage) *ApplicationCycleUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ApplicationCycleUpdate) SetNillableStage(v *applicationcycle.Stage) *ApplicationCycleUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *ApplicationCycleUpdate) SetStartDate(v time.Time) *ApplicationCycleUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *ApplicationCycleUpdate) SetNillableStartDate(v *time.Time) *ApplicationCycleUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *ApplicationCycleUpdate) SetEndDate(v time.Time) *ApplicationCycleUpdate {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *ApplicationCycleUpdate) SetNillableEndDate(v *time.Time) *ApplicationCycleUpdate {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// AddStageIDs adds the "stages" edge to the CycleStage entity by IDs.
func (_u *ApplicationCycleUpdate) AddStageIDs(ids ...string) *ApplicationCycleUpdate {
	_u.mutation.AddStageIDs(ids...)
	return _u
}

// AddStages adds the "stages" edges to the CycleStage entity.
func (_u *ApplicationCycleUpdate) AddStages(v ...*CycleStage) *ApplicationCycleUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageIDs(ids...)
}

// AddApplicationIDs adds the "applications" edge to the Application entity by IDs.
func (_u *ApplicationCycleUpdate) AddApplicationIDs(ids ...string) *ApplicationCycleUpdate {
	_u.mutation.AddApplicationIDs(ids...)
	return _u
}

// AddApplications adds the "applications" edges to the Application entity.
func (_u *ApplicationCycleUpdate) AddApplications(v ...*Application) *ApplicationCycleUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApplicationIDs(ids...)
}

// Mutation returns the ApplicationCycleMutation object of the builder.
func (_u *ApplicationCycleUpdate) Mutation() *ApplicationCycleMutation {
	return _u.mutation
}

// ClearStages clears all "stages" edges to the CycleStage entity.
func (_u *ApplicationCycleUpdate) ClearStages() *ApplicationCycleUpdate {
	_u.mutation.ClearStages()
	return _u
}

// RemoveStageIDs removes the "stages" edge to CycleStage entities by IDs.
func (_u *ApplicationCycleUpdate) RemoveStageIDs(ids ...string) *ApplicationCycleUpdate {
	_u.mutation.RemoveStageIDs(ids...)
	return _u
}

// RemoveStages removes "stages" edges to CycleStage entities.
func (_u *ApplicationCycleUpdate) RemoveStages(v ...*CycleStage) *ApplicationCycleUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageIDs(ids...)
}

// ClearApplications clears all "applications" edges to the Application entity.
func (_u *ApplicationCycleUpdate) ClearApplications() *ApplicationCycleUpdate {
	_u.mutation.ClearApplications()
	return _u
}

// RemoveApplicationIDs removes the "applications" edge to Application entities by IDs.
func (_u *ApplicationCycleUpdate) RemoveApplicationIDs(ids ...string) *ApplicationCycleUpdate {
	_u.mutation.RemoveApplicationIDs(ids...)
	return _u
}

// RemoveApplications removes "applications" edges to Application entities.
func (_u *ApplicationCycleUpdate) RemoveApplications(v ...*Application) *ApplicationCycleUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApplicationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApplicationCycleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationCycleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApplicationCycleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationCycleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApplicationCycleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := applicationcycle.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicationCycleUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := applicationcycle.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ApplicationCycle.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := applicationcycle.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "ApplicationCycle.stage": %w`, err)}
		}
	}
	return nil
}

func (_u *ApplicationCycleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(applicationcycle.Table, applicationcycle.Columns, sqlgraph.NewFieldSpec(applicationcycle.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(applicationcycle.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(applicationcycle.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(applicationcycle.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(applicationcycle.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(applicationcycle.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.StagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStagesIDs(); len(nodes) > 0 && !_u.mutation.StagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ApplicationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApplicationsIDs(); len(nodes) > 0 && !_u.mutation.ApplicationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{applicationcycle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApplicationCycleUpdateOne is the builder for updating a single ApplicationCycle entity.
type ApplicationCycleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApplicationCycleMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApplicationCycleUpdateOne) SetUpdatedAt(v time.Time) *ApplicationCycleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *ApplicationCycleUpdateOne) SetName(v string) *ApplicationCycleUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ApplicationCycleUpdateOne) SetNillableName(v *string) *ApplicationCycleUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *ApplicationCycleUpdateOne) SetStage(v applicationcycle.Stage) *ApplicationCycleUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ApplicationCycleUpdateOne) SetNillableStage(v *applicationcycle.Stage) *ApplicationCycleUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *ApplicationCycleUpdateOne) SetStartDate(v time.Time) *ApplicationCycleUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *ApplicationCycleUpdateOne) SetNillableStartDate(v *time.Time) *ApplicationCycleUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *ApplicationCycleUpdateOne) SetEndDate(v time.Time) *ApplicationCycleUpdateOne {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *ApplicationCycleUpdateOne) SetNillableEndDate(v *time.Time) *ApplicationCycleUpdateOne {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// AddStageIDs adds the "stages" edge to the CycleStage entity by IDs.
func (_u *ApplicationCycleUpdateOne) AddStageIDs(ids ...string) *ApplicationCycleUpdateOne {
	_u.mutation.AddStageIDs(ids...)
	return _u
}

// AddStages adds the "stages" edges to the CycleStage entity.
func (_u *ApplicationCycleUpdateOne) AddStages(v ...*CycleStage) *ApplicationCycleUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageIDs(ids...)
}

// AddApplicationIDs adds the "applications" edge to the Application entity by IDs.
func (_u *ApplicationCycleUpdateOne) AddApplicationIDs(ids ...string) *ApplicationCycleUpdateOne {
	_u.mutation.AddApplicationIDs(ids...)
	return _u
}

// AddApplications adds the "applications" edges to the Application entity.
func (_u *ApplicationCycleUpdateOne) AddApplications(v ...*Application) *ApplicationCycleUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApplicationIDs(ids...)
}

// Mutation returns the ApplicationCycleMutation object of the builder.
func (_u *ApplicationCycleUpdateOne) Mutation() *ApplicationCycleMutation {
	return _u.mutation
}

// ClearStages clears all "stages" edges to the CycleStage entity.
func (_u *ApplicationCycleUpdateOne) ClearStages() *ApplicationCycleUpdateOne {
	_u.mutation.ClearStages()
	return _u
}

// RemoveStageIDs removes the "stages" edge to CycleStage entities by IDs.
func (_u *ApplicationCycleUpdateOne) RemoveStageIDs(ids ...string) *ApplicationCycleUpdateOne {
	_u.mutation.RemoveStageIDs(ids...)
	return _u
}

// RemoveStages removes "stages" edges to CycleStage entities.
func (_u *ApplicationCycleUpdateOne) RemoveStages(v ...*CycleStage) *ApplicationCycleUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageIDs(ids...)
}

// ClearApplications clears all "applications" edges to the Application entity.
func (_u *ApplicationCycleUpdateOne) ClearApplications() *ApplicationCycleUpdateOne {
	_u.mutation.ClearApplications()
	return _u
}

// RemoveApplicationIDs removes the "applications" edge to Application entities by IDs.
func (_u *ApplicationCycleUpdateOne) RemoveApplicationIDs(ids ...string) *ApplicationCycleUpdateOne {
	_u.mutation.RemoveApplicationIDs(ids...)
	return _u
}

// RemoveApplications removes "applications" edges to Application entities.
func (_u *ApplicationCycleUpdateOne) RemoveApplications(v ...*Application) *ApplicationCycleUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApplicationIDs(ids...)
}

// Where appends a list predicates to the ApplicationCycleUpdate builder.
func (_u *ApplicationCycleUpdateOne) Where(ps ...predicate.ApplicationCycle) *ApplicationCycleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApplicationCycleUpdateOne) Select(field string, fields ...string) *ApplicationCycleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApplicationCycle entity.
func (_u *ApplicationCycleUpdateOne) Save(ctx context.Context) (*ApplicationCycle, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationCycleUpdateOne) SaveX(ctx context.Context) *ApplicationCycle {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApplicationCycleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationCycleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApplicationCycleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := applicationcycle.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicationCycleUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := applicationcycle.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ApplicationCycle.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := applicationcycle.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "ApplicationCycle.stage": %w`, err)}
		}
	}
	return nil
}

func (_u *ApplicationCycleUpdateOne) sqlSave(ctx context.Context) (_node *ApplicationCycle, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(applicationcycle.Table, applicationcycle.Columns, sqlgraph.NewFieldSpec(applicationcycle.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApplicationCycle.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, applicationcycle.FieldID)
		for _, f := range fields {
			if !applicationcycle.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != applicationcycle.FieldID {
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
		_spec.SetField(applicationcycle.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(applicationcycle.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(applicationcycle.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(applicationcycle.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(applicationcycle.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.StagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStagesIDs(); len(nodes) > 0 && !_u.mutation.StagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ApplicationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApplicationsIDs(); len(nodes) > 0 && !_u.mutation.ApplicationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ApplicationCycle{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{applicationcycle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
