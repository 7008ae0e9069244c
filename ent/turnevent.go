// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adasgupta/simtutor/ent/turnevent"
)

// TurnEvent is the model entity for the TurnEvent schema.
type TurnEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links to SessionEvent
	SessionID string `json:"session_id,omitempty"`
	// Concept under instruction during this turn
	ConceptID int `json:"concept_id,omitempty"`
	// ConceptTitle holds the value of the "concept_title" field.
	ConceptTitle string `json:"concept_title,omitempty"`
	// 1-based exchange count on this concept
	Exchange int `json:"exchange,omitempty"`
	// LearnerUtterance holds the value of the "learner_utterance" field.
	LearnerUtterance string `json:"learner_utterance,omitempty"`
	// none, partial, mostly, or complete
	Understanding string `json:"understanding,omitempty"`
	// improving, stagnating, or regressing
	Trend string `json:"trend,omitempty"`
	// Teaching strategy chosen for the reply
	Strategy string `json:"strategy,omitempty"`
	// Tone directive for the reply
	Tone string `json:"tone,omitempty"`
	// Generated teacher reply
	TeacherMessage string `json:"teacher_message,omitempty"`
	// Whether this turn completed the concept
	ConceptAdvanced bool `json:"concept_advanced,omitempty"`
	// Whether this turn finished the last concept
	SessionCompleted bool `json:"session_completed,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TurnEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case turnevent.FieldConceptAdvanced, turnevent.FieldSessionCompleted:
			values[i] = new(sql.NullBool)
		case turnevent.FieldID, turnevent.FieldSequence, turnevent.FieldConceptID, turnevent.FieldExchange:
			values[i] = new(sql.NullInt64)
		case turnevent.FieldSessionID, turnevent.FieldConceptTitle, turnevent.FieldLearnerUtterance, turnevent.FieldUnderstanding, turnevent.FieldTrend, turnevent.FieldStrategy, turnevent.FieldTone, turnevent.FieldTeacherMessage:
			values[i] = new(sql.NullString)
		case turnevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TurnEvent fields.
func (_m *TurnEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case turnevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case turnevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case turnevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case turnevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case turnevent.FieldConceptID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field concept_id", values[i])
			} else if value.Valid {
				_m.ConceptID = int(value.Int64)
			}
		case turnevent.FieldConceptTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_title", values[i])
			} else if value.Valid {
				_m.ConceptTitle = value.String
			}
		case turnevent.FieldExchange:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exchange", values[i])
			} else if value.Valid {
				_m.Exchange = int(value.Int64)
			}
		case turnevent.FieldLearnerUtterance:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_utterance", values[i])
			} else if value.Valid {
				_m.LearnerUtterance = value.String
			}
		case turnevent.FieldUnderstanding:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field understanding", values[i])
			} else if value.Valid {
				_m.Understanding = value.String
			}
		case turnevent.FieldTrend:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trend", values[i])
			} else if value.Valid {
				_m.Trend = value.String
			}
		case turnevent.FieldStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strategy", values[i])
			} else if value.Valid {
				_m.Strategy = value.String
			}
		case turnevent.FieldTone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tone", values[i])
			} else if value.Valid {
				_m.Tone = value.String
			}
		case turnevent.FieldTeacherMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field teacher_message", values[i])
			} else if value.Valid {
				_m.TeacherMessage = value.String
			}
		case turnevent.FieldConceptAdvanced:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field concept_advanced", values[i])
			} else if value.Valid {
				_m.ConceptAdvanced = value.Bool
			}
		case turnevent.FieldSessionCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field session_completed", values[i])
			} else if value.Valid {
				_m.SessionCompleted = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TurnEvent.
// This includes values selected through modifiers, order, etc.
func (_m *TurnEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TurnEvent.
// Note that you need to call TurnEvent.Unwrap() before calling this method if this TurnEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TurnEvent) Update() *TurnEventUpdateOne {
	return NewTurnEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TurnEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TurnEvent) Unwrap() *TurnEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TurnEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TurnEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TurnEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("concept_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptID))
	builder.WriteString(", ")
	builder.WriteString("concept_title=")
	builder.WriteString(_m.ConceptTitle)
	builder.WriteString(", ")
	builder.WriteString("exchange=")
	builder.WriteString(fmt.Sprintf("%v", _m.Exchange))
	builder.WriteString(", ")
	builder.WriteString("learner_utterance=")
	builder.WriteString(_m.LearnerUtterance)
	builder.WriteString(", ")
	builder.WriteString("understanding=")
	builder.WriteString(_m.Understanding)
	builder.WriteString(", ")
	builder.WriteString("trend=")
	builder.WriteString(_m.Trend)
	builder.WriteString(", ")
	builder.WriteString("strategy=")
	builder.WriteString(_m.Strategy)
	builder.WriteString(", ")
	builder.WriteString("tone=")
	builder.WriteString(_m.Tone)
	builder.WriteString(", ")
	builder.WriteString("teacher_message=")
	builder.WriteString(_m.TeacherMessage)
	builder.WriteString(", ")
	builder.WriteString("concept_advanced=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptAdvanced))
	builder.WriteString(", ")
	builder.WriteString("session_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionCompleted))
	builder.WriteByte(')')
	return builder.String()
}

// TurnEvents is a parsable slice of TurnEvent.
type TurnEvents []*TurnEvent
