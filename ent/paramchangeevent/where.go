// Code generated by ent, DO NOT EDIT.

package paramchangeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/adasgupta/simtutor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldEQ(FieldSessionID, v))
}

// Parameter applies equality check predicate on the "parameter" field. It's identical to ParameterEQ.
func Parameter(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldEQ(FieldParameter, v))
}

// OldValue applies equality check predicate on the "old_value" field. It's identical to OldValueEQ.
func OldValue(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldEQ(FieldOldValue, v))
}

// NewValue applies equality check predicate on the "new_value" field. It's identical to NewValueEQ.
func NewValue(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldEQ(FieldNewValue, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldEQ(FieldReason, v))
}

// UnderstandingBefore applies equality check predicate on the "understanding_before" field. It's identical to UnderstandingBeforeEQ.
func UnderstandingBefore(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldEQ(FieldUnderstandingBefore, v))
}

// WasEffective applies equality check predicate on the "was_effective" field. It's identical to WasEffectiveEQ.
func WasEffective(v bool) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldEQ(FieldWasEffective, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ParameterEQ applies the EQ predicate on the "parameter" field.
func ParameterEQ(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldEQ(FieldParameter, v))
}

// ParameterNEQ applies the NEQ predicate on the "parameter" field.
func ParameterNEQ(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldNEQ(FieldParameter, v))
}

// ParameterIn applies the In predicate on the "parameter" field.
func ParameterIn(vs ...string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldIn(FieldParameter, vs...))
}

// ParameterNotIn applies the NotIn predicate on the "parameter" field.
func ParameterNotIn(vs ...string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldNotIn(FieldParameter, vs...))
}

// ParameterGT applies the GT predicate on the "parameter" field.
func ParameterGT(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldGT(FieldParameter, v))
}

// ParameterGTE applies the GTE predicate on the "parameter" field.
func ParameterGTE(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldGTE(FieldParameter, v))
}

// ParameterLT applies the LT predicate on the "parameter" field.
func ParameterLT(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldLT(FieldParameter, v))
}

// ParameterLTE applies the LTE predicate on the "parameter" field.
func ParameterLTE(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldLTE(FieldParameter, v))
}

// ParameterContains applies the Contains predicate on the "parameter" field.
func ParameterContains(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldContains(FieldParameter, v))
}

// ParameterHasPrefix applies the HasPrefix predicate on the "parameter" field.
func ParameterHasPrefix(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldHasPrefix(FieldParameter, v))
}

// ParameterHasSuffix applies the HasSuffix predicate on the "parameter" field.
func ParameterHasSuffix(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldHasSuffix(FieldParameter, v))
}

// ParameterEqualFold applies the EqualFold predicate on the "parameter" field.
func ParameterEqualFold(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldEqualFold(FieldParameter, v))
}

// ParameterContainsFold applies the ContainsFold predicate on the "parameter" field.
func ParameterContainsFold(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldContainsFold(FieldParameter, v))
}

// OldValueEQ applies the EQ predicate on the "old_value" field.
func OldValueEQ(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldEQ(FieldOldValue, v))
}

// OldValueNEQ applies the NEQ predicate on the "old_value" field.
func OldValueNEQ(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldNEQ(FieldOldValue, v))
}

// OldValueIn applies the In predicate on the "old_value" field.
func OldValueIn(vs ...string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldIn(FieldOldValue, vs...))
}

// OldValueNotIn applies the NotIn predicate on the "old_value" field.
func OldValueNotIn(vs ...string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldNotIn(FieldOldValue, vs...))
}

// OldValueGT applies the GT predicate on the "old_value" field.
func OldValueGT(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldGT(FieldOldValue, v))
}

// OldValueGTE applies the GTE predicate on the "old_value" field.
func OldValueGTE(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldGTE(FieldOldValue, v))
}

// OldValueLT applies the LT predicate on the "old_value" field.
func OldValueLT(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldLT(FieldOldValue, v))
}

// OldValueLTE applies the LTE predicate on the "old_value" field.
func OldValueLTE(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldLTE(FieldOldValue, v))
}

// OldValueContains applies the Contains predicate on the "old_value" field.
func OldValueContains(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldContains(FieldOldValue, v))
}

// OldValueHasPrefix applies the HasPrefix predicate on the "old_value" field.
func OldValueHasPrefix(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldHasPrefix(FieldOldValue, v))
}

// OldValueHasSuffix applies the HasSuffix predicate on the "old_value" field.
func OldValueHasSuffix(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldHasSuffix(FieldOldValue, v))
}

// OldValueEqualFold applies the EqualFold predicate on the "old_value" field.
func OldValueEqualFold(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldEqualFold(FieldOldValue, v))
}

// OldValueContainsFold applies the ContainsFold predicate on the "old_value" field.
func OldValueContainsFold(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldContainsFold(FieldOldValue, v))
}

// NewValueEQ applies the EQ predicate on the "new_value" field.
func NewValueEQ(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldEQ(FieldNewValue, v))
}

// NewValueNEQ applies the NEQ predicate on the "new_value" field.
func NewValueNEQ(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldNEQ(FieldNewValue, v))
}

// NewValueIn applies the In predicate on the "new_value" field.
func NewValueIn(vs ...string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldIn(FieldNewValue, vs...))
}

// NewValueNotIn applies the NotIn predicate on the "new_value" field.
func NewValueNotIn(vs ...string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldNotIn(FieldNewValue, vs...))
}

// NewValueGT applies the GT predicate on the "new_value" field.
func NewValueGT(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldGT(FieldNewValue, v))
}

// NewValueGTE applies the GTE predicate on the "new_value" field.
func NewValueGTE(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldGTE(FieldNewValue, v))
}

// NewValueLT applies the LT predicate on the "new_value" field.
func NewValueLT(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldLT(FieldNewValue, v))
}

// NewValueLTE applies the LTE predicate on the "new_value" field.
func NewValueLTE(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldLTE(FieldNewValue, v))
}

// NewValueContains applies the Contains predicate on the "new_value" field.
func NewValueContains(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldContains(FieldNewValue, v))
}

// NewValueHasPrefix applies the HasPrefix predicate on the "new_value" field.
func NewValueHasPrefix(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldHasPrefix(FieldNewValue, v))
}

// NewValueHasSuffix applies the HasSuffix predicate on the "new_value" field.
func NewValueHasSuffix(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldHasSuffix(FieldNewValue, v))
}

// NewValueEqualFold applies the EqualFold predicate on the "new_value" field.
func NewValueEqualFold(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldEqualFold(FieldNewValue, v))
}

// NewValueContainsFold applies the ContainsFold predicate on the "new_value" field.
func NewValueContainsFold(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldContainsFold(FieldNewValue, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldContainsFold(FieldReason, v))
}

// UnderstandingBeforeEQ applies the EQ predicate on the "understanding_before" field.
func UnderstandingBeforeEQ(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldEQ(FieldUnderstandingBefore, v))
}

// UnderstandingBeforeNEQ applies the NEQ predicate on the "understanding_before" field.
func UnderstandingBeforeNEQ(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldNEQ(FieldUnderstandingBefore, v))
}

// UnderstandingBeforeIn applies the In predicate on the "understanding_before" field.
func UnderstandingBeforeIn(vs ...string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldIn(FieldUnderstandingBefore, vs...))
}

// UnderstandingBeforeNotIn applies the NotIn predicate on the "understanding_before" field.
func UnderstandingBeforeNotIn(vs ...string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldNotIn(FieldUnderstandingBefore, vs...))
}

// UnderstandingBeforeGT applies the GT predicate on the "understanding_before" field.
func UnderstandingBeforeGT(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldGT(FieldUnderstandingBefore, v))
}

// UnderstandingBeforeGTE applies the GTE predicate on the "understanding_before" field.
func UnderstandingBeforeGTE(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldGTE(FieldUnderstandingBefore, v))
}

// UnderstandingBeforeLT applies the LT predicate on the "understanding_before" field.
func UnderstandingBeforeLT(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldLT(FieldUnderstandingBefore, v))
}

// UnderstandingBeforeLTE applies the LTE predicate on the "understanding_before" field.
func UnderstandingBeforeLTE(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldLTE(FieldUnderstandingBefore, v))
}

// UnderstandingBeforeContains applies the Contains predicate on the "understanding_before" field.
func UnderstandingBeforeContains(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldContains(FieldUnderstandingBefore, v))
}

// UnderstandingBeforeHasPrefix applies the HasPrefix predicate on the "understanding_before" field.
func UnderstandingBeforeHasPrefix(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldHasPrefix(FieldUnderstandingBefore, v))
}

// UnderstandingBeforeHasSuffix applies the HasSuffix predicate on the "understanding_before" field.
func UnderstandingBeforeHasSuffix(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldHasSuffix(FieldUnderstandingBefore, v))
}

// UnderstandingBeforeEqualFold applies the EqualFold predicate on the "understanding_before" field.
func UnderstandingBeforeEqualFold(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldEqualFold(FieldUnderstandingBefore, v))
}

// UnderstandingBeforeContainsFold applies the ContainsFold predicate on the "understanding_before" field.
func UnderstandingBeforeContainsFold(v string) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldContainsFold(FieldUnderstandingBefore, v))
}

// WasEffectiveEQ applies the EQ predicate on the "was_effective" field.
func WasEffectiveEQ(v bool) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldEQ(FieldWasEffective, v))
}

// WasEffectiveNEQ applies the NEQ predicate on the "was_effective" field.
func WasEffectiveNEQ(v bool) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.FieldNEQ(FieldWasEffective, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ParamChangeEvent) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ParamChangeEvent) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ParamChangeEvent) predicate.ParamChangeEvent {
	return predicate.ParamChangeEvent(sql.NotPredicates(p))
}
