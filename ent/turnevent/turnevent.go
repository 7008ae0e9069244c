// Code generated by ent, DO NOT EDIT.

package turnevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the turnevent type in the database.
	Label = "turn_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldConceptID holds the string denoting the concept_id field in the database.
	FieldConceptID = "concept_id"
	// FieldConceptTitle holds the string denoting the concept_title field in the database.
	FieldConceptTitle = "concept_title"
	// FieldExchange holds the string denoting the exchange field in the database.
	FieldExchange = "exchange"
	// FieldLearnerUtterance holds the string denoting the learner_utterance field in the database.
	FieldLearnerUtterance = "learner_utterance"
	// FieldUnderstanding holds the string denoting the understanding field in the database.
	FieldUnderstanding = "understanding"
	// FieldTrend holds the string denoting the trend field in the database.
	FieldTrend = "trend"
	// FieldStrategy holds the string denoting the strategy field in the database.
	FieldStrategy = "strategy"
	// FieldTone holds the string denoting the tone field in the database.
	FieldTone = "tone"
	// FieldTeacherMessage holds the string denoting the teacher_message field in the database.
	FieldTeacherMessage = "teacher_message"
	// FieldConceptAdvanced holds the string denoting the concept_advanced field in the database.
	FieldConceptAdvanced = "concept_advanced"
	// FieldSessionCompleted holds the string denoting the session_completed field in the database.
	FieldSessionCompleted = "session_completed"
	// Table holds the table name of the turnevent in the database.
	Table = "turn_events"
)

// Columns holds all SQL columns for turnevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldConceptID,
	FieldConceptTitle,
	FieldExchange,
	FieldLearnerUtterance,
	FieldUnderstanding,
	FieldTrend,
	FieldStrategy,
	FieldTone,
	FieldTeacherMessage,
	FieldConceptAdvanced,
	FieldSessionCompleted,
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
	// ConceptTitleValidator is a validator for the "concept_title" field. It is called by the builders before save.
	ConceptTitleValidator func(string) error
	// LearnerUtteranceValidator is a validator for the "learner_utterance" field. It is called by the builders before save.
	LearnerUtteranceValidator func(string) error
	// UnderstandingValidator is a validator for the "understanding" field. It is called by the builders before save.
	UnderstandingValidator func(string) error
	// DefaultConceptAdvanced holds the default value on creation for the "concept_advanced" field.
	DefaultConceptAdvanced bool
	// DefaultSessionCompleted holds the default value on creation for the "session_completed" field.
	DefaultSessionCompleted bool
)

// OrderOption defines the ordering options for the TurnEvent queries.
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

// ByConceptID orders the results by the concept_id field.
func ByConceptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptID, opts...).ToFunc()
}

// ByConceptTitle orders the results by the concept_title field.
func ByConceptTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptTitle, opts...).ToFunc()
}

// ByExchange orders the results by the exchange field.
func ByExchange(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExchange, opts...).ToFunc()
}

// ByLearnerUtterance orders the results by the learner_utterance field.
func ByLearnerUtterance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerUtterance, opts...).ToFunc()
}

// ByUnderstanding orders the results by the understanding field.
func ByUnderstanding(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnderstanding, opts...).ToFunc()
}

// ByTrend orders the results by the trend field.
func ByTrend(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrend, opts...).ToFunc()
}

// ByStrategy orders the results by the strategy field.
func ByStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrategy, opts...).ToFunc()
}

// ByTone orders the results by the tone field.
func ByTone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTone, opts...).ToFunc()
}

// ByTeacherMessage orders the results by the teacher_message field.
func ByTeacherMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeacherMessage, opts...).ToFunc()
}

// ByConceptAdvanced orders the results by the concept_advanced field.
func ByConceptAdvanced(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptAdvanced, opts...).ToFunc()
}

// BySessionCompleted orders the results by the session_completed field.
func BySessionCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionCompleted, opts...).ToFunc()
}
