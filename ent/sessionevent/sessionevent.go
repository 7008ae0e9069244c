// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldSimulationID holds the string denoting the simulation_id field in the database.
	FieldSimulationID = "simulation_id"
	// FieldConceptsTotal holds the string denoting the concepts_total field in the database.
	FieldConceptsTotal = "concepts_total"
	// FieldConceptsCompleted holds the string denoting the concepts_completed field in the database.
	FieldConceptsCompleted = "concepts_completed"
	// FieldExchangesTotal holds the string denoting the exchanges_total field in the database.
	FieldExchangesTotal = "exchanges_total"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldAction,
	FieldSimulationID,
	FieldConceptsTotal,
	FieldConceptsCompleted,
	FieldExchangesTotal,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// SimulationIDValidator is a validator for the "simulation_id" field. It is called by the builders before save.
	SimulationIDValidator func(string) error
	// DefaultConceptsTotal holds the default value on creation for the "concepts_total" field.
	DefaultConceptsTotal int
	// DefaultConceptsCompleted holds the default value on creation for the "concepts_completed" field.
	DefaultConceptsCompleted int
	// DefaultExchangesTotal holds the default value on creation for the "exchanges_total" field.
	DefaultExchangesTotal int
)

// OrderOption defines the ordering options for the SessionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// BySimulationID orders the results by the simulation_id field.
func BySimulationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSimulationID, opts...).ToFunc()
}

// ByConceptsTotal orders the results by the concepts_total field.
func ByConceptsTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptsTotal, opts...).ToFunc()
}

// ByConceptsCompleted orders the results by the concepts_completed field.
func ByConceptsCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptsCompleted, opts...).ToFunc()
}

// ByExchangesTotal orders the results by the exchanges_total field.
func ByExchangesTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExchangesTotal, opts...).ToFunc()
}
