// Code generated by ent, DO NOT EDIT.

package turnevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/adasgupta/simtutor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSessionID, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldConceptID, v))
}

// ConceptTitle applies equality check predicate on the "concept_title" field. It's identical to ConceptTitleEQ.
func ConceptTitle(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldConceptTitle, v))
}

// Exchange applies equality check predicate on the "exchange" field. It's identical to ExchangeEQ.
func Exchange(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldExchange, v))
}

// LearnerUtterance applies equality check predicate on the "learner_utterance" field. It's identical to LearnerUtteranceEQ.
func LearnerUtterance(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldLearnerUtterance, v))
}

// Understanding applies equality check predicate on the "understanding" field. It's identical to UnderstandingEQ.
func Understanding(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldUnderstanding, v))
}

// Trend applies equality check predicate on the "trend" field. It's identical to TrendEQ.
func Trend(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldTrend, v))
}

// Strategy applies equality check predicate on the "strategy" field. It's identical to StrategyEQ.
func Strategy(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldStrategy, v))
}

// Tone applies equality check predicate on the "tone" field. It's identical to ToneEQ.
func Tone(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldTone, v))
}

// TeacherMessage applies equality check predicate on the "teacher_message" field. It's identical to TeacherMessageEQ.
func TeacherMessage(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldTeacherMessage, v))
}

// ConceptAdvanced applies equality check predicate on the "concept_advanced" field. It's identical to ConceptAdvancedEQ.
func ConceptAdvanced(v bool) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldConceptAdvanced, v))
}

// SessionCompleted applies equality check predicate on the "session_completed" field. It's identical to SessionCompletedEQ.
func SessionCompleted(v bool) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSessionCompleted, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldConceptID, v))
}

// ConceptTitleEQ applies the EQ predicate on the "concept_title" field.
func ConceptTitleEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldConceptTitle, v))
}

// ConceptTitleNEQ applies the NEQ predicate on the "concept_title" field.
func ConceptTitleNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldConceptTitle, v))
}

// ConceptTitleIn applies the In predicate on the "concept_title" field.
func ConceptTitleIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldConceptTitle, vs...))
}

// ConceptTitleNotIn applies the NotIn predicate on the "concept_title" field.
func ConceptTitleNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldConceptTitle, vs...))
}

// ConceptTitleGT applies the GT predicate on the "concept_title" field.
func ConceptTitleGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldConceptTitle, v))
}

// ConceptTitleGTE applies the GTE predicate on the "concept_title" field.
func ConceptTitleGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldConceptTitle, v))
}

// ConceptTitleLT applies the LT predicate on the "concept_title" field.
func ConceptTitleLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldConceptTitle, v))
}

// ConceptTitleLTE applies the LTE predicate on the "concept_title" field.
func ConceptTitleLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldConceptTitle, v))
}

// ConceptTitleContains applies the Contains predicate on the "concept_title" field.
func ConceptTitleContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldConceptTitle, v))
}

// ConceptTitleHasPrefix applies the HasPrefix predicate on the "concept_title" field.
func ConceptTitleHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldConceptTitle, v))
}

// ConceptTitleHasSuffix applies the HasSuffix predicate on the "concept_title" field.
func ConceptTitleHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldConceptTitle, v))
}

// ConceptTitleEqualFold applies the EqualFold predicate on the "concept_title" field.
func ConceptTitleEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldConceptTitle, v))
}

// ConceptTitleContainsFold applies the ContainsFold predicate on the "concept_title" field.
func ConceptTitleContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldConceptTitle, v))
}

// ExchangeEQ applies the EQ predicate on the "exchange" field.
func ExchangeEQ(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldExchange, v))
}

// ExchangeNEQ applies the NEQ predicate on the "exchange" field.
func ExchangeNEQ(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldExchange, v))
}

// ExchangeIn applies the In predicate on the "exchange" field.
func ExchangeIn(vs ...int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldExchange, vs...))
}

// ExchangeNotIn applies the NotIn predicate on the "exchange" field.
func ExchangeNotIn(vs ...int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldExchange, vs...))
}

// ExchangeGT applies the GT predicate on the "exchange" field.
func ExchangeGT(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldExchange, v))
}

// ExchangeGTE applies the GTE predicate on the "exchange" field.
func ExchangeGTE(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldExchange, v))
}

// ExchangeLT applies the LT predicate on the "exchange" field.
func ExchangeLT(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldExchange, v))
}

// ExchangeLTE applies the LTE predicate on the "exchange" field.
func ExchangeLTE(v int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldExchange, v))
}

// LearnerUtteranceEQ applies the EQ predicate on the "learner_utterance" field.
func LearnerUtteranceEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldLearnerUtterance, v))
}

// LearnerUtteranceNEQ applies the NEQ predicate on the "learner_utterance" field.
func LearnerUtteranceNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldLearnerUtterance, v))
}

// LearnerUtteranceIn applies the In predicate on the "learner_utterance" field.
func LearnerUtteranceIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldLearnerUtterance, vs...))
}

// LearnerUtteranceNotIn applies the NotIn predicate on the "learner_utterance" field.
func LearnerUtteranceNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldLearnerUtterance, vs...))
}

// LearnerUtteranceGT applies the GT predicate on the "learner_utterance" field.
func LearnerUtteranceGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldLearnerUtterance, v))
}

// LearnerUtteranceGTE applies the GTE predicate on the "learner_utterance" field.
func LearnerUtteranceGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldLearnerUtterance, v))
}

// LearnerUtteranceLT applies the LT predicate on the "learner_utterance" field.
func LearnerUtteranceLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldLearnerUtterance, v))
}

// LearnerUtteranceLTE applies the LTE predicate on the "learner_utterance" field.
func LearnerUtteranceLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldLearnerUtterance, v))
}

// LearnerUtteranceContains applies the Contains predicate on the "learner_utterance" field.
func LearnerUtteranceContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldLearnerUtterance, v))
}

// LearnerUtteranceHasPrefix applies the HasPrefix predicate on the "learner_utterance" field.
func LearnerUtteranceHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldLearnerUtterance, v))
}

// LearnerUtteranceHasSuffix applies the HasSuffix predicate on the "learner_utterance" field.
func LearnerUtteranceHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldLearnerUtterance, v))
}

// LearnerUtteranceEqualFold applies the EqualFold predicate on the "learner_utterance" field.
func LearnerUtteranceEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldLearnerUtterance, v))
}

// LearnerUtteranceContainsFold applies the ContainsFold predicate on the "learner_utterance" field.
func LearnerUtteranceContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldLearnerUtterance, v))
}

// UnderstandingEQ applies the EQ predicate on the "understanding" field.
func UnderstandingEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldUnderstanding, v))
}

// UnderstandingNEQ applies the NEQ predicate on the "understanding" field.
func UnderstandingNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldUnderstanding, v))
}

// UnderstandingIn applies the In predicate on the "understanding" field.
func UnderstandingIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldUnderstanding, vs...))
}

// UnderstandingNotIn applies the NotIn predicate on the "understanding" field.
func UnderstandingNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldUnderstanding, vs...))
}

// UnderstandingGT applies the GT predicate on the "understanding" field.
func UnderstandingGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldUnderstanding, v))
}

// UnderstandingGTE applies the GTE predicate on the "understanding" field.
func UnderstandingGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldUnderstanding, v))
}

// UnderstandingLT applies the LT predicate on the "understanding" field.
func UnderstandingLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldUnderstanding, v))
}

// UnderstandingLTE applies the LTE predicate on the "understanding" field.
func UnderstandingLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldUnderstanding, v))
}

// UnderstandingContains applies the Contains predicate on the "understanding" field.
func UnderstandingContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldUnderstanding, v))
}

// UnderstandingHasPrefix applies the HasPrefix predicate on the "understanding" field.
func UnderstandingHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldUnderstanding, v))
}

// UnderstandingHasSuffix applies the HasSuffix predicate on the "understanding" field.
func UnderstandingHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldUnderstanding, v))
}

// UnderstandingEqualFold applies the EqualFold predicate on the "understanding" field.
func UnderstandingEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldUnderstanding, v))
}

// UnderstandingContainsFold applies the ContainsFold predicate on the "understanding" field.
func UnderstandingContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldUnderstanding, v))
}

// TrendEQ applies the EQ predicate on the "trend" field.
func TrendEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldTrend, v))
}

// TrendNEQ applies the NEQ predicate on the "trend" field.
func TrendNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldTrend, v))
}

// TrendIn applies the In predicate on the "trend" field.
func TrendIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldTrend, vs...))
}

// TrendNotIn applies the NotIn predicate on the "trend" field.
func TrendNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldTrend, vs...))
}

// TrendGT applies the GT predicate on the "trend" field.
func TrendGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldTrend, v))
}

// TrendGTE applies the GTE predicate on the "trend" field.
func TrendGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldTrend, v))
}

// TrendLT applies the LT predicate on the "trend" field.
func TrendLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldTrend, v))
}

// TrendLTE applies the LTE predicate on the "trend" field.
func TrendLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldTrend, v))
}

// TrendContains applies the Contains predicate on the "trend" field.
func TrendContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldTrend, v))
}

// TrendHasPrefix applies the HasPrefix predicate on the "trend" field.
func TrendHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldTrend, v))
}

// TrendHasSuffix applies the HasSuffix predicate on the "trend" field.
func TrendHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldTrend, v))
}

// TrendEqualFold applies the EqualFold predicate on the "trend" field.
func TrendEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldTrend, v))
}

// TrendContainsFold applies the ContainsFold predicate on the "trend" field.
func TrendContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldTrend, v))
}

// StrategyEQ applies the EQ predicate on the "strategy" field.
func StrategyEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldStrategy, v))
}

// StrategyNEQ applies the NEQ predicate on the "strategy" field.
func StrategyNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldStrategy, v))
}

// StrategyIn applies the In predicate on the "strategy" field.
func StrategyIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldStrategy, vs...))
}

// StrategyNotIn applies the NotIn predicate on the "strategy" field.
func StrategyNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldStrategy, vs...))
}

// StrategyGT applies the GT predicate on the "strategy" field.
func StrategyGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldStrategy, v))
}

// StrategyGTE applies the GTE predicate on the "strategy" field.
func StrategyGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldStrategy, v))
}

// StrategyLT applies the LT predicate on the "strategy" field.
func StrategyLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldStrategy, v))
}

// StrategyLTE applies the LTE predicate on the "strategy" field.
func StrategyLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldStrategy, v))
}

// StrategyContains applies the Contains predicate on the "strategy" field.
func StrategyContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldStrategy, v))
}

// StrategyHasPrefix applies the HasPrefix predicate on the "strategy" field.
func StrategyHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldStrategy, v))
}

// StrategyHasSuffix applies the HasSuffix predicate on the "strategy" field.
func StrategyHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldStrategy, v))
}

// StrategyEqualFold applies the EqualFold predicate on the "strategy" field.
func StrategyEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldStrategy, v))
}

// StrategyContainsFold applies the ContainsFold predicate on the "strategy" field.
func StrategyContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldStrategy, v))
}

// ToneEQ applies the EQ predicate on the "tone" field.
func ToneEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldTone, v))
}

// ToneNEQ applies the NEQ predicate on the "tone" field.
func ToneNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldTone, v))
}

// ToneIn applies the In predicate on the "tone" field.
func ToneIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldTone, vs...))
}

// ToneNotIn applies the NotIn predicate on the "tone" field.
func ToneNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldTone, vs...))
}

// ToneGT applies the GT predicate on the "tone" field.
func ToneGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldTone, v))
}

// ToneGTE applies the GTE predicate on the "tone" field.
func ToneGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldTone, v))
}

// ToneLT applies the LT predicate on the "tone" field.
func ToneLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldTone, v))
}

// ToneLTE applies the LTE predicate on the "tone" field.
func ToneLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldTone, v))
}

// ToneContains applies the Contains predicate on the "tone" field.
func ToneContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldTone, v))
}

// ToneHasPrefix applies the HasPrefix predicate on the "tone" field.
func ToneHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldTone, v))
}

// ToneHasSuffix applies the HasSuffix predicate on the "tone" field.
func ToneHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldTone, v))
}

// ToneEqualFold applies the EqualFold predicate on the "tone" field.
func ToneEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldTone, v))
}

// ToneContainsFold applies the ContainsFold predicate on the "tone" field.
func ToneContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldTone, v))
}

// TeacherMessageEQ applies the EQ predicate on the "teacher_message" field.
func TeacherMessageEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldTeacherMessage, v))
}

// TeacherMessageNEQ applies the NEQ predicate on the "teacher_message" field.
func TeacherMessageNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldTeacherMessage, v))
}

// TeacherMessageIn applies the In predicate on the "teacher_message" field.
func TeacherMessageIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldTeacherMessage, vs...))
}

// TeacherMessageNotIn applies the NotIn predicate on the "teacher_message" field.
func TeacherMessageNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldTeacherMessage, vs...))
}

// TeacherMessageGT applies the GT predicate on the "teacher_message" field.
func TeacherMessageGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldTeacherMessage, v))
}

// TeacherMessageGTE applies the GTE predicate on the "teacher_message" field.
func TeacherMessageGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldTeacherMessage, v))
}

// TeacherMessageLT applies the LT predicate on the "teacher_message" field.
func TeacherMessageLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldTeacherMessage, v))
}

// TeacherMessageLTE applies the LTE predicate on the "teacher_message" field.
func TeacherMessageLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldTeacherMessage, v))
}

// TeacherMessageContains applies the Contains predicate on the "teacher_message" field.
func TeacherMessageContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldTeacherMessage, v))
}

// TeacherMessageHasPrefix applies the HasPrefix predicate on the "teacher_message" field.
func TeacherMessageHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldTeacherMessage, v))
}

// TeacherMessageHasSuffix applies the HasSuffix predicate on the "teacher_message" field.
func TeacherMessageHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldTeacherMessage, v))
}

// TeacherMessageEqualFold applies the EqualFold predicate on the "teacher_message" field.
func TeacherMessageEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldTeacherMessage, v))
}

// TeacherMessageContainsFold applies the ContainsFold predicate on the "teacher_message" field.
func TeacherMessageContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldTeacherMessage, v))
}

// ConceptAdvancedEQ applies the EQ predicate on the "concept_advanced" field.
func ConceptAdvancedEQ(v bool) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldConceptAdvanced, v))
}

// ConceptAdvancedNEQ applies the NEQ predicate on the "concept_advanced" field.
func ConceptAdvancedNEQ(v bool) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldConceptAdvanced, v))
}

// SessionCompletedEQ applies the EQ predicate on the "session_completed" field.
func SessionCompletedEQ(v bool) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSessionCompleted, v))
}

// SessionCompletedNEQ applies the NEQ predicate on the "session_completed" field.
func SessionCompletedNEQ(v bool) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldSessionCompleted, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TurnEvent) predicate.TurnEvent {
	return predicate.TurnEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TurnEvent) predicate.TurnEvent {
	return predicate.TurnEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TurnEvent) predicate.TurnEvent {
	return predicate.TurnEvent(sql.NotPredicates(p))
}
