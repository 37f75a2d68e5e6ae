// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"crewcycle.io/crewcycle/ent/application"
	"crewcycle.io/crewcycle/ent/applicationcycle"
	"crewcycle.io/crewcycle/ent/schema"
	"crewcycle.io/crewcycle/ent/system"
	"crewcycle.io/crewcycle/ent/team"
	"crewcycle.io/crewcycle/ent/user"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// Application is the model entity for the Application schema.
type Application struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// TeamID holds the value of the "team_id" field.
	TeamID string `json:"team_id,omitempty"`
	// SystemID holds the value of the "system_id" field.
	SystemID string `json:"system_id,omitempty"`
	// CycleID holds the value of the "cycle_id" field.
	CycleID string `json:"cycle_id,omitempty"`
	// Status holds the value of the "status" field.
	Status application.Status `json:"status,omitempty"`
	// InternalStatus holds the value of the "internal_status" field.
	InternalStatus application.InternalStatus `json:"internal_status,omitempty"`
	// InternalDecision holds the value of the "internal_decision" field.
	InternalDecision string `json:"internal_decision,omitempty"`
	// Data holds the value of the "data" field.
	Data map[string]interface{} `json:"data,omitempty"`
	// Reviews holds the value of the "reviews" field.
	Reviews []schema.SystemReview `json:"reviews,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ApplicationQuery when eager-loading is set.
	Edges        ApplicationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ApplicationEdges holds the relations/edges for other nodes in the graph.
type ApplicationEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Team holds the value of the team edge.
	Team *Team `json:"team,omitempty"`
	// System holds the value of the system edge.
	System *System `json:"system,omitempty"`
	// Cycle holds the value of the cycle edge.
	Cycle *ApplicationCycle `json:"cycle,omitempty"`
	// Interviews holds the value of the interviews edge.
	Interviews []*Interview `json:"interviews,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ApplicationEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// TeamOrErr returns the Team value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ApplicationEdges) TeamOrErr() (*Team, error) {
	if e.Team != nil {
		return e.Team, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: team.Label}
	}
	return nil, &NotLoadedError{edge: "team"}
}

// SystemOrErr returns the System value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ApplicationEdges) SystemOrErr() (*System, error) {
	if e.System != nil {
		return e.System, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: system.Label}
	}
	return nil, &NotLoadedError{edge: "system"}
}

// CycleOrErr returns the Cycle value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ApplicationEdges) CycleOrErr() (*ApplicationCycle, error) {
	if e.Cycle != nil {
		return e.Cycle, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: applicationcycle.Label}
	}
	return nil, &NotLoadedError{edge: "cycle"}
}

// InterviewsOrErr returns the Interviews value or an error if the edge
// was not loaded in eager-loading.
func (e ApplicationEdges) InterviewsOrErr() ([]*Interview, error) {
	if e.loadedTypes[4] {
		return e.Interviews, nil
	}
	return nil, &NotLoadedError{edge: "interviews"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Application) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case application.FieldData, application.FieldReviews:
			values[i] = new([]byte)
		case application.FieldID, application.FieldUserID, application.FieldTeamID, application.FieldSystemID, application.FieldCycleID, application.FieldStatus, application.FieldInternalStatus, application.FieldInternalDecision:
			values[i] = new(sql.NullString)
		case application.FieldCreatedAt, application.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Application fields.
func (_m *Application) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case application.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case application.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case application.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case application.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case application.FieldTeamID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field team_id", values[i])
			} else if value.Valid {
				_m.TeamID = value.String
			}
		case application.FieldSystemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field system_id", values[i])
			} else if value.Valid {
				_m.SystemID = value.String
			}
		case application.FieldCycleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cycle_id", values[i])
			} else if value.Valid {
				_m.CycleID = value.String
			}
		case application.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = application.Status(value.String)
			}
		case application.FieldInternalStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field internal_status", values[i])
			} else if value.Valid {
				_m.InternalStatus = application.InternalStatus(value.String)
			}
		case application.FieldInternalDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field internal_decision", values[i])
			} else if value.Valid {
				_m.InternalDecision = value.String
			}
		case application.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		case application.FieldReviews:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field reviews", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Reviews); err != nil {
					return fmt.Errorf("unmarshal field reviews: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Application.
// This includes values selected through modifiers, order, etc.
func (_m *Application) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Application entity.
func (_m *Application) QueryUser() *UserQuery {
	return NewApplicationClient(_m.config).QueryUser(_m)
}

// QueryTeam queries the "team" edge of the Application entity.
func (_m *Application) QueryTeam() *TeamQuery {
	return NewApplicationClient(_m.config).QueryTeam(_m)
}

// QuerySystem queries the "system" edge of the Application entity.
func (_m *Application) QuerySystem() *SystemQuery {
	return NewApplicationClient(_m.config).QuerySystem(_m)
}

// QueryCycle queries the "cycle" edge of the Application entity.
func (_m *Application) QueryCycle() *ApplicationCycleQuery {
	return NewApplicationClient(_m.config).QueryCycle(_m)
}

// QueryInterviews queries the "interviews" edge of the Application entity.
func (_m *Application) QueryInterviews() *InterviewQuery {
	return NewApplicationClient(_m.config).QueryInterviews(_m)
}

// Update returns a builder for updating this Application.
// Note that you need to call Application.Unwrap() before calling this method if this Application
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Application) Update() *ApplicationUpdateOne {
	return NewApplicationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Application entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Application) Unwrap() *Application {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Application is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Application) String() string {
	var builder strings.Builder
	builder.WriteString("Application(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("team_id=")
	builder.WriteString(_m.TeamID)
	builder.WriteString(", ")
	builder.WriteString("system_id=")
	builder.WriteString(_m.SystemID)
	builder.WriteString(", ")
	builder.WriteString("cycle_id=")
	builder.WriteString(_m.CycleID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("internal_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.InternalStatus))
	builder.WriteString(", ")
	builder.WriteString("internal_decision=")
	builder.WriteString(_m.InternalDecision)
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteString(", ")
	builder.WriteString("reviews=")
	builder.WriteString(fmt.Sprintf("%v", _m.Reviews))
	builder.WriteByte(')')
	return builder.String()
}

// Applications is a parsable slice of Application.
type Applications []*Application
