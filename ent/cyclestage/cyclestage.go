// Code generated by ent, DO NOT EDIT.

package cyclestage

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the cyclestage type in the database.
	Label = "cycle_stage"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldStartDate holds the string denoting the start_date field in the database.
	FieldStartDate = "start_date"
	// FieldEndDate holds the string denoting the end_date field in the database.
	FieldEndDate = "end_date"
	// FieldCycleID holds the string denoting the cycle_id field in the database.
	FieldCycleID = "cycle_id"
	// EdgeCycle holds the string denoting the cycle edge name in mutations.
	EdgeCycle = "cycle"
	// Table holds the table name of the cyclestage in the database.
	Table = "cycle_stages"
	// CycleTable is the table that holds the cycle relation/edge.
	CycleTable = "cycle_stages"
	// CycleInverseTable is the table name for the ApplicationCycle entity.
	// It exists in this package in order to avoid circular dependency with the "applicationcycle" package.
	CycleInverseTable = "application_cycles"
	// CycleColumn is the table column denoting the cycle relation/edge.
	CycleColumn = "cycle_id"
)

// Columns holds all SQL columns for cyclestage fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldStage,
	FieldStartDate,
	FieldEndDate,
	FieldCycleID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// CycleIDValidator is a validator for the "cycle_id" field. It is called by the builders before save.
	CycleIDValidator func(string) error
)

// Stage defines the type for the "stage" enum field.
type Stage string

// Stage values.
const (
	StagePREPARATION Stage = "PREPARATION"
	StageAPPLICATION Stage = "APPLICATION"
	StageINTERVIEW   Stage = "INTERVIEW"
	StageTRAIL       Stage = "TRAIL"
	StageFINAL       Stage = "FINAL"
)

func (s Stage) String() string {
	return string(s)
}

// StageValidator is a validator for the "stage" field enum values. It is called by the builders before save.
func StageValidator(s Stage) error {
	switch s {
	case StagePREPARATION, StageAPPLICATION, StageINTERVIEW, StageTRAIL, StageFINAL:
		return nil
	default:
		return fmt.Errorf("cyclestage: invalid enum value for stage field: %q", s)
	}
}

// OrderOption defines the ordering options for the CycleStage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByStartDate orders the results by the start_date field.
func ByStartDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartDate, opts...).ToFunc()
}

// ByEndDate orders the results by the end_date field.
func ByEndDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndDate, opts...).ToFunc()
}

// ByCycleID orders the results by the cycle_id field.
func ByCycleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCycleID, opts...).ToFunc()
}

// ByCycleField orders the results by cycle field.
func ByCycleField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCycleStep(), sql.OrderByField(field, opts...))
	}
}
func newCycleStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CycleInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CycleTable, CycleColumn),
	)
}
