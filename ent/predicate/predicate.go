// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Automation is the predicate function for automation builders.
type Automation func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// ExecutionLog is the predicate function for executionlog builders.
type ExecutionLog func(*sql.Selector)

// Integration is the predicate function for integration builders.
type Integration func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
