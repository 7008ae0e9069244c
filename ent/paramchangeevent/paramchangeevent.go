// Code generated by ent, DO NOT EDIT.

package paramchangeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the paramchangeevent type in the database.
	Label = "param_change_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldParameter holds the string denoting the parameter field in the database.
	FieldParameter = "parameter"
	// FieldOldValue holds the string denoting the old_value field in the database.
	FieldOldValue = "old_value"
	// FieldNewValue holds the string denoting the new_value field in the database.
	FieldNewValue = "new_value"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldUnderstandingBefore holds the string denoting the understanding_before field in the database.
	FieldUnderstandingBefore = "understanding_before"
	// FieldWasEffective holds the string denoting the was_effective field in the database.
	FieldWasEffective = "was_effective"
	// Table holds the table name of the paramchangeevent in the database.
	Table = "param_change_events"
)

// Columns holds all SQL columns for paramchangeevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldParameter,
	FieldOldValue,
	FieldNewValue,
	FieldReason,
	FieldUnderstandingBefore,
	FieldWasEffective,
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
	// ParameterValidator is a validator for the "parameter" field. It is called by the builders before save.
	ParameterValidator func(string) error
	// DefaultWasEffective holds the default value on creation for the "was_effective" field.
	DefaultWasEffective bool
)

// OrderOption defines the ordering options for the ParamChangeEvent queries.
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

// ByParameter orders the results by the parameter field.
func ByParameter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParameter, opts...).ToFunc()
}

// ByOldValue orders the results by the old_value field.
func ByOldValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOldValue, opts...).ToFunc()
}

// ByNewValue orders the results by the new_value field.
func ByNewValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewValue, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByUnderstandingBefore orders the results by the understanding_before field.
func ByUnderstandingBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnderstandingBefore, opts...).ToFunc()
}

// ByWasEffective orders the results by the was_effective field.
func ByWasEffective(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWasEffective, opts...).ToFunc()
}
