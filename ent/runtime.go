// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/adasgupta/simtutor/ent/llmrequestevent"
	"github.com/adasgupta/simtutor/ent/paramchangeevent"
	"github.com/adasgupta/simtutor/ent/schema"
	"github.com/adasgupta/simtutor/ent/sessionevent"
	"github.com/adasgupta/simtutor/ent/turnevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	paramchangeeventMixin := schema.ParamChangeEvent{}.Mixin()
	paramchangeeventMixinFields0 := paramchangeeventMixin[0].Fields()
	_ = paramchangeeventMixinFields0
	paramchangeeventFields := schema.ParamChangeEvent{}.Fields()
	_ = paramchangeeventFields
	// paramchangeeventDescTimestamp is the schema descriptor for timestamp field.
	paramchangeeventDescTimestamp := paramchangeeventMixinFields0[1].Descriptor()
	// paramchangeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	paramchangeevent.DefaultTimestamp = paramchangeeventDescTimestamp.Default.(func() time.Time)
	// paramchangeeventDescSessionID is the schema descriptor for session_id field.
	paramchangeeventDescSessionID := paramchangeeventFields[0].Descriptor()
	// paramchangeevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	paramchangeevent.SessionIDValidator = paramchangeeventDescSessionID.Validators[0].(func(string) error)
	// paramchangeeventDescParameter is the schema descriptor for parameter field.
	paramchangeeventDescParameter := paramchangeeventFields[1].Descriptor()
	// paramchangeevent.ParameterValidator is a validator for the "parameter" field. It is called by the builders before save.
	paramchangeevent.ParameterValidator = paramchangeeventDescParameter.Validators[0].(func(string) error)
	// paramchangeeventDescWasEffective is the schema descriptor for was_effective field.
	paramchangeeventDescWasEffective := paramchangeeventFields[6].Descriptor()
	// paramchangeevent.DefaultWasEffective holds the default value on creation for the was_effective field.
	paramchangeevent.DefaultWasEffective = paramchangeeventDescWasEffective.Default.(bool)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescSimulationID is the schema descriptor for simulation_id field.
	sessioneventDescSimulationID := sessioneventFields[2].Descriptor()
	// sessionevent.SimulationIDValidator is a validator for the "simulation_id" field. It is called by the builders before save.
	sessionevent.SimulationIDValidator = sessioneventDescSimulationID.Validators[0].(func(string) error)
	// sessioneventDescConceptsTotal is the schema descriptor for concepts_total field.
	sessioneventDescConceptsTotal := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultConceptsTotal holds the default value on creation for the concepts_total field.
	sessionevent.DefaultConceptsTotal = sessioneventDescConceptsTotal.Default.(int)
	// sessioneventDescConceptsCompleted is the schema descriptor for concepts_completed field.
	sessioneventDescConceptsCompleted := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultConceptsCompleted holds the default value on creation for the concepts_completed field.
	sessionevent.DefaultConceptsCompleted = sessioneventDescConceptsCompleted.Default.(int)
	// sessioneventDescExchangesTotal is the schema descriptor for exchanges_total field.
	sessioneventDescExchangesTotal := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultExchangesTotal holds the default value on creation for the exchanges_total field.
	sessionevent.DefaultExchangesTotal = sessioneventDescExchangesTotal.Default.(int)
	turneventMixin := schema.TurnEvent{}.Mixin()
	turneventMixinFields0 := turneventMixin[0].Fields()
	_ = turneventMixinFields0
	turneventFields := schema.TurnEvent{}.Fields()
	_ = turneventFields
	// turneventDescTimestamp is the schema descriptor for timestamp field.
	turneventDescTimestamp := turneventMixinFields0[1].Descriptor()
	// turnevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	turnevent.DefaultTimestamp = turneventDescTimestamp.Default.(func() time.Time)
	// turneventDescSessionID is the schema descriptor for session_id field.
	turneventDescSessionID := turneventFields[0].Descriptor()
	// turnevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	turnevent.SessionIDValidator = turneventDescSessionID.Validators[0].(func(string) error)
	// turneventDescConceptTitle is the schema descriptor for concept_title field.
	turneventDescConceptTitle := turneventFields[2].Descriptor()
	// turnevent.ConceptTitleValidator is a validator for the "concept_title" field. It is called by the builders before save.
	turnevent.ConceptTitleValidator = turneventDescConceptTitle.Validators[0].(func(string) error)
	// turneventDescLearnerUtterance is the schema descriptor for learner_utterance field.
	turneventDescLearnerUtterance := turneventFields[4].Descriptor()
	// turnevent.LearnerUtteranceValidator is a validator for the "learner_utterance" field. It is called by the builders before save.
	turnevent.LearnerUtteranceValidator = turneventDescLearnerUtterance.Validators[0].(func(string) error)
	// turneventDescUnderstanding is the schema descriptor for understanding field.
	turneventDescUnderstanding := turneventFields[5].Descriptor()
	// turnevent.UnderstandingValidator is a validator for the "understanding" field. It is called by the builders before save.
	turnevent.UnderstandingValidator = turneventDescUnderstanding.Validators[0].(func(string) error)
	// turneventDescConceptAdvanced is the schema descriptor for concept_advanced field.
	turneventDescConceptAdvanced := turneventFields[10].Descriptor()
	// turnevent.DefaultConceptAdvanced holds the default value on creation for the concept_advanced field.
	turnevent.DefaultConceptAdvanced = turneventDescConceptAdvanced.Default.(bool)
	// turneventDescSessionCompleted is the schema descriptor for session_completed field.
	turneventDescSessionCompleted := turneventFields[11].Descriptor()
	// turnevent.DefaultSessionCompleted holds the default value on creation for the session_completed field.
	turnevent.DefaultSessionCompleted = turneventDescSessionCompleted.Default.(bool)
}
