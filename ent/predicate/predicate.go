// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Application is the predicate function for application builders.
type Application func(*sql.Selector)

// ApplicationCycle is the predicate function for applicationcycle builders.
type ApplicationCycle func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Availability is the predicate function for availability builders.
type Availability func(*sql.Selector)

// CycleStage is the predicate function for cyclestage builders.
type CycleStage func(*sql.Selector)

// Interview is the predicate function for interview builders.
type Interview func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// System is the predicate function for system builders.
type System func(*sql.Selector)

// Team is the predicate function for team builders.
type Team func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
