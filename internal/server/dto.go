package server

import "github.com/adasgupta/simtutor/internal/quiz"

// Request and response shapes for the JSON API. The nesting follows
// what the Android client already consumes: a simulation block with
// URLs, a concepts block, the teacher message, and the learning state.

type startSessionRequest struct {
	SimulationID string `json:"simulation_id" binding:"required"`
	StudentID    string `json:"student_id,omitempty"`
}

type respondRequest struct {
	StudentResponse string `json:"student_response" binding:"required"`
}

type parameterChange struct {
	Parameter string `json:"parameter"`
	Before    any    `json:"before"`
	After     any    `json:"after"`
	Reason    string `json:"reason"`
	BeforeURL string `json:"before_url"`
	AfterURL  string `json:"after_url"`
}

type simulationState struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	HTMLURL       string           `json:"html_url"`
	CurrentParams map[string]any   `json:"current_params"`
	ParamChange   *parameterChange `json:"param_change,omitempty"`
}

type conceptInfo struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	KeyInsight    string   `json:"key_insight"`
	RelatedParams []string `json:"related_params"`
}

type previousConcept struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type conceptsState struct {
	Total           int              `json:"total"`
	CurrentIndex    int              `json:"current_index"`
	CurrentConcept  *conceptInfo     `json:"current_concept,omitempty"`
	AllConcepts     []conceptInfo    `json:"all_concepts"`
	AllCompleted    bool             `json:"all_completed"`
	PreviousConcept *previousConcept `json:"previous_concept,omitempty"`
}

type teacherMessage struct {
	Text              string `json:"text"`
	Timestamp         string `json:"timestamp"`
	RequiresResponse  bool   `json:"requires_response"`
	CorrectionMade    bool   `json:"correction_made"`
	AsksForReasoning  bool   `json:"asks_for_reasoning"`
	ConceptTransition bool   `json:"concept_transition"`
	SessionEnding     bool   `json:"session_ending"`
}

type learningState struct {
	UnderstandingLevel     string `json:"understanding_level"`
	UnderstandingReasoning string `json:"understanding_reasoning,omitempty"`
	ExchangeCount          int    `json:"exchange_count"`
	ConceptComplete        bool   `json:"concept_complete"`
	SessionComplete        bool   `json:"session_complete"`
	Strategy               string `json:"strategy"`
	TeacherMode            string `json:"teacher_mode"`
	TrajectoryStatus       string `json:"trajectory_status,omitempty"`
	NeedsDeeper            bool   `json:"needs_deeper"`
}

type sessionSummary struct {
	ConceptsMastered         int      `json:"concepts_mastered"`
	TotalExchanges           int      `json:"total_exchanges"`
	ParameterChangesMade     int      `json:"parameter_changes_made"`
	UnderstandingProgression []string `json:"understanding_progression"`
}

type sessionResponse struct {
	SessionID      string          `json:"session_id"`
	Simulation     simulationState `json:"simulation"`
	Concepts       conceptsState   `json:"concepts"`
	TeacherMessage teacherMessage  `json:"teacher_message"`
	LearningState  learningState   `json:"learning_state"`
	Summary        *sessionSummary `json:"summary,omitempty"`
}

type simulationSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	HTMLURL     string `json:"html_url"`
	Concepts    int    `json:"concepts"`
}

type quizEvaluateRequest struct {
	SimulationID    string         `json:"simulation_id,omitempty"`
	SubmittedParams map[string]any `json:"submitted_params" binding:"required"`
	SuccessRule     quiz.Rule      `json:"success_rule" binding:"required"`
	Attempt         int            `json:"attempt,omitempty"`
	MaxAttempts     int            `json:"max_attempts,omitempty"`
	Hints           []string       `json:"hints,omitempty"`
}

type quizEvaluateResponse struct {
	Score         float64  `json:"score"`
	Status        string   `json:"status"`
	Hint          string   `json:"hint,omitempty"`
	AllowRetry    bool     `json:"allow_retry"`
	SkippedParams []string `json:"skipped_params,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}
