// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adasgupta/simtutor/ent/paramchangeevent"
)

// ParamChangeEvent is the model entity for the ParamChangeEvent schema.
type ParamChangeEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links to SessionEvent
	SessionID string `json:"session_id,omitempty"`
	// Simulation parameter name
	Parameter string `json:"parameter,omitempty"`
	// Value before the change, formatted
	OldValue string `json:"old_value,omitempty"`
	// Value after the change, formatted
	NewValue string `json:"new_value,omitempty"`
	// Why the teacher changed it
	Reason string `json:"reason,omitempty"`
	// Learner level when the change was made
	UnderstandingBefore string `json:"understanding_before,omitempty"`
	// Set once the learner's level rises after the change
	WasEffective bool `json:"was_effective,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ParamChangeEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case paramchangeevent.FieldWasEffective:
			values[i] = new(sql.NullBool)
		case paramchangeevent.FieldID, paramchangeevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case paramchangeevent.FieldSessionID, paramchangeevent.FieldParameter, paramchangeevent.FieldOldValue, paramchangeevent.FieldNewValue, paramchangeevent.FieldReason, paramchangeevent.FieldUnderstandingBefore:
			values[i] = new(sql.NullString)
		case paramchangeevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ParamChangeEvent fields.
func (_m *ParamChangeEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case paramchangeevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case paramchangeevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case paramchangeevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case paramchangeevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case paramchangeevent.FieldParameter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parameter", values[i])
			} else if value.Valid {
				_m.Parameter = value.String
			}
		case paramchangeevent.FieldOldValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field old_value", values[i])
			} else if value.Valid {
				_m.OldValue = value.String
			}
		case paramchangeevent.FieldNewValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field new_value", values[i])
			} else if value.Valid {
				_m.NewValue = value.String
			}
		case paramchangeevent.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case paramchangeevent.FieldUnderstandingBefore:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field understanding_before", values[i])
			} else if value.Valid {
				_m.UnderstandingBefore = value.String
			}
		case paramchangeevent.FieldWasEffective:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field was_effective", values[i])
			} else if value.Valid {
				_m.WasEffective = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ParamChangeEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ParamChangeEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ParamChangeEvent.
// Note that you need to call ParamChangeEvent.Unwrap() before calling this method if this ParamChangeEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ParamChangeEvent) Update() *ParamChangeEventUpdateOne {
	return NewParamChangeEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ParamChangeEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ParamChangeEvent) Unwrap() *ParamChangeEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ParamChangeEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ParamChangeEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ParamChangeEvent(")
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
	builder.WriteString("parameter=")
	builder.WriteString(_m.Parameter)
	builder.WriteString(", ")
	builder.WriteString("old_value=")
	builder.WriteString(_m.OldValue)
	builder.WriteString(", ")
	builder.WriteString("new_value=")
	builder.WriteString(_m.NewValue)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("understanding_before=")
	builder.WriteString(_m.UnderstandingBefore)
	builder.WriteString(", ")
	builder.WriteString("was_effective=")
	builder.WriteString(fmt.Sprintf("%v", _m.WasEffective))
	builder.WriteByte(')')
	return builder.String()
}

// ParamChangeEvents is a parsable slice of ParamChangeEvent.
type ParamChangeEvents []*ParamChangeEvent
