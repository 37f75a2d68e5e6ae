// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"crewcycle.io/crewcycle/ent/applicationcycle"
	"crewcycle.io/crewcycle/ent/cyclestage"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// CycleStage is the model entity for the CycleStage schema.
type CycleStage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Stage holds the value of the "stage" field.
	Stage cyclestage.Stage `json:"stage,omitempty"`
	// StartDate holds the value of the "start_date" field.
	StartDate time.Time `json:"start_date,omitempty"`
	// EndDate holds the value of the "end_date" field.
	EndDate time.Time `json:"end_date,omitempty"`
	// CycleID holds the value of the "cycle_id" field.
	CycleID string `json:"cycle_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CycleStageQuery when eager-loading is set.
	Edges        CycleStageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CycleStageEdges holds the relations/edges for other nodes in the graph.
type CycleStageEdges struct {
	// Cycle holds the value of the cycle edge.
	Cycle *ApplicationCycle `json:"cycle,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CycleOrErr returns the Cycle value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CycleStageEdges) CycleOrErr() (*ApplicationCycle, error) {
	if e.Cycle != nil {
		return e.Cycle, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: applicationcycle.Label}
	}
	return nil, &NotLoadedError{edge: "cycle"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CycleStage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cyclestage.FieldID, cyclestage.FieldStage, cyclestage.FieldCycleID:
			values[i] = new(sql.NullString)
		case cyclestage.FieldCreatedAt, cyclestage.FieldUpdatedAt, cyclestage.FieldStartDate, cyclestage.FieldEndDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CycleStage fields.
func (_m *CycleStage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cyclestage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case cyclestage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case cyclestage.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case cyclestage.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = cyclestage.Stage(value.String)
			}
		case cyclestage.FieldStartDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_date", values[i])
			} else if value.Valid {
				_m.StartDate = value.Time
			}
		case cyclestage.FieldEndDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_date", values[i])
			} else if value.Valid {
				_m.EndDate = value.Time
			}
		case cyclestage.FieldCycleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cycle_id", values[i])
			} else if value.Valid {
				_m.CycleID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CycleStage.
// This includes values selected through modifiers, order, etc.
func (_m *CycleStage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCycle queries the "cycle" edge of the CycleStage entity.
func (_m *CycleStage) QueryCycle() *ApplicationCycleQuery {
	return NewCycleStageClient(_m.config).QueryCycle(_m)
}

// Update returns a builder for updating this CycleStage.
// Note that you need to call CycleStage.Unwrap() before calling this method if this CycleStage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CycleStage) Update() *CycleStageUpdateOne {
	return NewCycleStageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CycleStage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CycleStage) Unwrap() *CycleStage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CycleStage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CycleStage) String() string {
	var builder strings.Builder
	builder.WriteString("CycleStage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage))
	builder.WriteString(", ")
	builder.WriteString("start_date=")
	builder.WriteString(_m.StartDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("end_date=")
	builder.WriteString(_m.EndDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("cycle_id=")
	builder.WriteString(_m.CycleID)
	builder.WriteByte(')')
	return builder.String()
}

// CycleStages is a parsable slice of CycleStage.
type CycleStages []*CycleStage
