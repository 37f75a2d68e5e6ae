// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"crewcycle.io/crewcycle/ent/applicationcycle"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// ApplicationCycle is the model entity for the ApplicationCycle schema.
type ApplicationCycle struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Stage holds the value of the "stage" field.
	Stage applicationcycle.Stage `json:"stage,omitempty"`
	// StartDate holds the value of the "start_date" field.
	StartDate time.Time `json:"start_date,omitempty"`
	// EndDate holds the value of the "end_date" field.
	EndDate time.Time `json:"end_date,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ApplicationCycleQuery when eager-loading is set.
	Edges        ApplicationCycleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ApplicationCycleEdges holds the relations/edges for other nodes in the graph.
type ApplicationCycleEdges struct {
	// Stages holds the value of the stages edge.
	Stages []*CycleStage `json:"stages,omitempty"`
	// Applications holds the value of the applications edge.
	Applications []*Application `json:"applications,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// StagesOrErr returns the Stages value or an error if the edge
// was not loaded in eager-loading.
func (e ApplicationCycleEdges) StagesOrErr() ([]*CycleStage, error) {
	if e.loadedTypes[0] {
		return e.Stages, nil
	}
	return nil, &NotLoadedError{edge: "stages"}
}

// ApplicationsOrErr returns the Applications value or an error if the edge
// was not loaded in eager-loading.
func (e ApplicationCycleEdges) ApplicationsOrErr() ([]*Application, error) {
	if e.loadedTypes[1] {
		return e.Applications, nil
	}
	return nil, &NotLoadedError{edge: "applications"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ApplicationCycle) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case applicationcycle.FieldID, applicationcycle.FieldName, applicationcycle.FieldStage:
			values[i] = new(sql.NullString)
		case applicationcycle.FieldCreatedAt, applicationcycle.FieldUpdatedAt, applicationcycle.FieldStartDate, applicationcycle.FieldEndDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ApplicationCycle fields.
func (_m *ApplicationCycle) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case applicationcycle.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case applicationcycle.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case applicationcycle.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case applicationcycle.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case applicationcycle.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = applicationcycle.Stage(value.String)
			}
		case applicationcycle.FieldStartDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_date", values[i])
			} else if value.Valid {
				_m.StartDate = value.Time
			}
		case applicationcycle.FieldEndDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_date", values[i])
			} else if value.Valid {
				_m.EndDate = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ApplicationCycle.
// This includes values selected through modifiers, order, etc.
func (_m *ApplicationCycle) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStages queries the "stages" edge of the ApplicationCycle entity.
func (_m *ApplicationCycle) QueryStages() *CycleStageQuery {
	return NewApplicationCycleClient(_m.config).QueryStages(_m)
}

// QueryApplications queries the "applications" edge of the ApplicationCycle entity.
func (_m *ApplicationCycle) QueryApplications() *ApplicationQuery {
	return NewApplicationCycleClient(_m.config).QueryApplications(_m)
}

// Update returns a builder for updating this ApplicationCycle.
// Note that you need to call ApplicationCycle.Unwrap() before calling this method if this ApplicationCycle
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ApplicationCycle) Update() *ApplicationCycleUpdateOne {
	return NewApplicationCycleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ApplicationCycle entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ApplicationCycle) Unwrap() *ApplicationCycle {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ApplicationCycle is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ApplicationCycle) String() string {
	var builder strings.Builder
	builder.WriteString("ApplicationCycle(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage))
	builder.WriteString(", ")
	builder.WriteString("start_date=")
	builder.WriteString(_m.StartDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("end_date=")
	builder.WriteString(_m.EndDate.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ApplicationCycles is a parsable slice of ApplicationCycle.
type ApplicationCycles []*ApplicationCycle
