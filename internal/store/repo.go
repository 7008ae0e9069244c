package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	After int64     // sequence > After
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID         string
	Action            string // "start" or "end"
	SimulationID      string
	ConceptsTotal     int
	ConceptsCompleted int
	ExchangesTotal    int
}

// TurnEventData captures one full dialogue turn.
type TurnEventData struct {
	SessionID        string
	ConceptID        int
	ConceptTitle     string
	Exchange         int
	LearnerUtterance string
	Understanding    string
	Trend            string
	Strategy         string
	Tone             string
	TeacherMessage   string
	ConceptAdvanced  bool
	SessionCompleted bool
}

// TurnRecord is a stored turn returned by queries.
type TurnRecord struct {
	Sequence  int64
	Timestamp time.Time
	TurnEventData
}

// ParamChangeEventData captures a simulation parameter adjustment.
type ParamChangeEventData struct {
	SessionID           string
	Parameter           string
	OldValue            string
	NewValue            string
	Reason              string
	UnderstandingBefore string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// PurposeUsage aggregates LLM token usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Requests     int
	InputTokens  int
	OutputTokens int
	Failures     int
}

// SessionSummary is the aggregate view of one recorded session.
type SessionSummary struct {
	SessionID         string
	SimulationID      string
	StartedAt         time.Time
	Ended             bool
	ConceptsTotal     int
	ConceptsCompleted int
	ExchangesTotal    int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendTurnEvent records a completed dialogue turn.
	AppendTurnEvent(ctx context.Context, data TurnEventData) error

	// AppendParamChange records a simulation parameter adjustment.
	AppendParamChange(ctx context.Context, data ParamChangeEventData) error

	// MarkParamChangeEffective flags the most recent parameter change in
	// the session as having preceded an understanding gain.
	MarkParamChangeEffective(ctx context.Context, sessionID string) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryTurns returns the turns of a session in sequence order.
	QueryTurns(ctx context.Context, sessionID string, opts QueryOpts) ([]TurnRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// SessionSummaries returns aggregate views of recorded sessions,
	// newest first.
	SessionSummaries(ctx context.Context, limit int) ([]SessionSummary, error)
}
