// Code generated by ent, DO NOT EDIT.

package application

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the application type in the database.
	Label = "application"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTeamID holds the string denoting the team_id field in the database.
	FieldTeamID = "team_id"
	// FieldSystemID holds the string denoting the system_id field in the database.
	FieldSystemID = "system_id"
	// FieldCycleID holds the string denoting the cycle_id field in the database.
	FieldCycleID = "cycle_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldInternalStatus holds the string denoting the internal_status field in the database.
	FieldInternalStatus = "internal_status"
	// FieldInternalDecision holds the string denoting the internal_decision field in the database.
	FieldInternalDecision = "internal_decision"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// FieldReviews holds the string denoting the reviews field in the database.
	FieldReviews = "reviews"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgeTeam holds the string denoting the team edge name in mutations.
	EdgeTeam = "team"
	// EdgeSystem holds the string denoting the system edge name in mutations.
	EdgeSystem = "system"
	// EdgeCycle holds the string denoting the cycle edge name in mutations.
	EdgeCycle = "cycle"
	// EdgeInterviews holds the string denoting the interviews edge name in mutations.
	EdgeInterviews = "interviews"
	// Table holds the table name of the application in the database.
	Table = "applications"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "applications"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// TeamTable is the table that holds the team relation/edge.
	TeamTable = "applications"
	// TeamInverseTable is the table name for the Team entity.
	// It exists in this package in order to avoid circular dependency with the "team" package.
	TeamInverseTable = "teams"
	// TeamColumn is the table column denoting the team relation/edge.
	TeamColumn = "team_id"
	// SystemTable is the table that holds the system relation/edge.
	SystemTable = "applications"
	// SystemInverseTable is the table name for the System entity.
	// It exists in this package in order to avoid circular dependency with the "system" package.
	SystemInverseTable = "systems"
	// SystemColumn is the table column denoting the system relation/edge.
	SystemColumn = "system_id"
	// CycleTable is the table that holds the cycle relation/edge.
	CycleTable = "applications"
	// CycleInverseTable is the table name for the ApplicationCycle entity.
	// It exists in this package in order to avoid circular dependency with the "applicationcycle" package.
	CycleInverseTable = "application_cycles"
	// CycleColumn is the table column denoting the cycle relation/edge.
	CycleColumn = "cycle_id"
	// InterviewsTable is the table that holds the interviews relation/edge.
	InterviewsTable = "interviews"
	// InterviewsInverseTable is the table name for the Interview entity.
	// It exists in this package in order to avoid circular dependency with the "interview" package.
	InterviewsInverseTable = "interviews"
	// InterviewsColumn is the table column denoting the interviews relation/edge.
	InterviewsColumn = "application_id"
)

// Columns holds all SQL columns for application fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldTeamID,
	FieldSystemID,
	FieldCycleID,
	FieldStatus,
	FieldInternalStatus,
	FieldInternalDecision,
	FieldData,
	FieldReviews,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// TeamIDValidator is a validator for the "team_id" field. It is called by the builders before save.
	TeamIDValidator func(string) error
	// CycleIDValidator is a validator for the "cycle_id" field. It is called by the builders before save.
	CycleIDValidator func(string) error
)

// Status defines the type for the "status" enum field.
type Status string

// StatusDRAFT is the default value of the Status enum.
const DefaultStatus = StatusDRAFT

// Status values.
const (
	StatusDRAFT        Status = "DRAFT"
	StatusSUBMITTED    Status = "SUBMITTED"
	StatusREVIEWED     Status = "REVIEWED"
	StatusACCEPTED     Status = "ACCEPTED"
	StatusREJECTED     Status = "REJECTED"
	StatusNEEDS_REVIEW Status = "NEEDS_REVIEW"
	StatusWAITLISTED   Status = "WAITLISTED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDRAFT, StatusSUBMITTED, StatusREVIEWED, StatusACCEPTED, StatusREJECTED, StatusNEEDS_REVIEW, StatusWAITLISTED:
		return nil
	default:
		return fmt.Errorf("application: invalid enum value for status field: %q", s)
	}
}

// InternalStatus defines the type for the "internal_status" enum field.
type InternalStatus string

// InternalStatusAPPLICATION is the default value of the InternalStatus enum.
const DefaultInternalStatus = InternalStatusAPPLICATION

// InternalStatus values.
const (
	InternalStatusPREPARATION InternalStatus = "PREPARATION"
	InternalStatusAPPLICATION InternalStatus = "APPLICATION"
	InternalStatusINTERVIEW   InternalStatus = "INTERVIEW"
	InternalStatusTRAIL       InternalStatus = "TRAIL"
	InternalStatusFINAL       InternalStatus = "FINAL"
)

func (is InternalStatus) String() string {
	return string(is)
}

// InternalStatusValidator is a validator for the "internal_status" field enum values. It is called by the builders before save.
func InternalStatusValidator(is InternalStatus) error {
	switch is {
	case InternalStatusPREPARATION, InternalStatusAPPLICATION, InternalStatusINTERVIEW, InternalStatusTRAIL, InternalStatusFINAL:
		return nil
	default:
		return fmt.Errorf("application: invalid enum value for internal_status field: %q", is)
	}
}

// OrderOption defines the ordering options for the Application queries.
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

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTeamID orders the results by the team_id field.
func ByTeamID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeamID, opts...).ToFunc()
}

// BySystemID orders the results by the system_id field.
func BySystemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSystemID, opts...).ToFunc()
}

// ByCycleID orders the results by the cycle_id field.
func ByCycleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCycleID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByInternalStatus orders the results by the internal_status field.
func ByInternalStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInternalStatus, opts...).ToFunc()
}

// ByInternalDecision orders the results by the internal_decision field.
func ByInternalDecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInternalDecision, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}

// ByTeamField orders the results by team field.
func ByTeamField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTeamStep(), sql.OrderByField(field, opts...))
	}
}

// BySystemField orders the results by system field.
func BySystemField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSystemStep(), sql.OrderByField(field, opts...))
	}
}

// ByCycleField orders the results by cycle field.
func ByCycleField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCycleStep(), sql.OrderByField(field, opts...))
	}
}

// ByInterviewsCount orders the results by interviews count.
func ByInterviewsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInterviewsStep(), opts...)
	}
}

// ByInterviews orders the results by interviews terms.
func ByInterviews(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInterviewsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
func newTeamStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TeamInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TeamTable, TeamColumn),
	)
}
func newSystemStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SystemInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SystemTable, SystemColumn),
	)
}
func newCycleStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CycleInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CycleTable, CycleColumn),
	)
}
func newInterviewsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InterviewsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InterviewsTable, InterviewsColumn),
	)
}
