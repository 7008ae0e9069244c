// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// ParamChangeEventsColumns holds the columns for the "param_change_events" table.
	ParamChangeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "parameter", Type: field.TypeString},
		{Name: "old_value", Type: field.TypeString},
		{Name: "new_value", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString},
		{Name: "understanding_before", Type: field.TypeString},
		{Name: "was_effective", Type: field.TypeBool, Default: false},
	}
	// ParamChangeEventsTable holds the schema information for the "param_change_events" table.
	ParamChangeEventsTable = &schema.Table{
		Name:       "param_change_events",
		Columns:    ParamChangeEventsColumns,
		PrimaryKey: []*schema.Column{ParamChangeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "paramchangeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ParamChangeEventsColumns[1]},
			},
			{
				Name:    "paramchangeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ParamChangeEventsColumns[2]},
			},
			{
				Name:    "paramchangeevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ParamChangeEventsColumns[3]},
			},
			{
				Name:    "paramchangeevent_parameter",
				Unique:  false,
				Columns: []*schema.Column{ParamChangeEventsColumns[4]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "simulation_id", Type: field.TypeString},
		{Name: "concepts_total", Type: field.TypeInt, Default: 0},
		{Name: "concepts_completed", Type: field.TypeInt, Default: 0},
		{Name: "exchanges_total", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// TurnEventsColumns holds the columns for the "turn_events" table.
	TurnEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeInt},
		{Name: "concept_title", Type: field.TypeString},
		{Name: "exchange", Type: field.TypeInt},
		{Name: "learner_utterance", Type: field.TypeString},
		{Name: "understanding", Type: field.TypeString},
		{Name: "trend", Type: field.TypeString},
		{Name: "strategy", Type: field.TypeString},
		{Name: "tone", Type: field.TypeString},
		{Name: "teacher_message", Type: field.TypeString},
		{Name: "concept_advanced", Type: field.TypeBool, Default: false},
		{Name: "session_completed", Type: field.TypeBool, Default: false},
	}
	// TurnEventsTable holds the schema information for the "turn_events" table.
	TurnEventsTable = &schema.Table{
		Name:       "turn_events",
		Columns:    TurnEventsColumns,
		PrimaryKey: []*schema.Column{TurnEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "turnevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[1]},
			},
			{
				Name:    "turnevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[2]},
			},
			{
				Name:    "turnevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[3]},
			},
			{
				Name:    "turnevent_concept_id",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[4]},
			},
			{
				Name:    "turnevent_understanding",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		ParamChangeEventsTable,
		SessionEventsTable,
		TurnEventsTable,
	}
)

func init() {
}
