package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/adasgupta/simtutor/internal/classify"
	"github.com/adasgupta/simtutor/internal/extract"
	"github.com/adasgupta/simtutor/internal/llm"
	"github.com/adasgupta/simtutor/internal/respond"
	"github.com/adasgupta/simtutor/internal/tutor"
)

// newTestServer wires the full stack over a canned LLM provider. The
// provider's responses are consumed in call order: one reply for the
// session introduction, then classify/reply pairs per turn.
func newTestServer(t *testing.T, responses ...llm.MockResponse) (*Server, *llm.MockProvider) {
	t.Helper()

	mock := llm.NewMockProvider(responses...)
	classifier := classify.New(mock, classify.DefaultConfig())
	responder := respond.New(mock, respond.DefaultConfig())
	extractor := extract.New(mock, extract.DefaultConfig())

	controller, err := tutor.NewController(classifier, responder, nil, tutor.DefaultConfig())
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	manager := tutor.NewManager(controller, extractor)
	return New(manager, zap.NewNop(), DefaultConfig()), mock
}

func introReply() llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(
		`{"teacher_message": "Welcome! What do you think controls how fast a pendulum swings?", "suggests_param_change": false}`,
	)}
}

func classification(level string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(
		`{"level": "` + level + `", "reasoning": "test", "factually_wrong": false, "observation_without_reasoning": false}`,
	)}
}

func turnReply() llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(
		`{"teacher_message": "Interesting! Why do you think that happens?", "suggests_param_change": false}`,
	)}
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeSession(t *testing.T, w *httptest.ResponseRecorder) sessionResponse {
	t.Helper()
	var resp sessionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode session response: %v\nbody: %s", err, w.Body.String())
	}
	return resp
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t)
	w := doJSON(t, s.Handler(), http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestListSimulations(t *testing.T) {
	s, _ := newTestServer(t)
	w := doJSON(t, s.Handler(), http.MethodGet, "/api/simulations", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Simulations []simulationSummary `json:"simulations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Simulations) != 3 {
		t.Fatalf("len(simulations) = %d, want 3", len(resp.Simulations))
	}
	if !strings.Contains(resp.Simulations[0].HTMLURL, "http") {
		t.Errorf("html_url = %q, want absolute URL", resp.Simulations[0].HTMLURL)
	}
}

func TestCreateSession(t *testing.T) {
	s, _ := newTestServer(t, introReply())

	w := doJSON(t, s.Handler(), http.MethodPost, "/api/sessions",
		startSessionRequest{SimulationID: "simple_pendulum"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201\nbody: %s", w.Code, w.Body.String())
	}

	resp := decodeSession(t, w)
	if resp.SessionID == "" {
		t.Error("session_id is empty")
	}
	if resp.Simulation.ID != "simple_pendulum" {
		t.Errorf("simulation.id = %q", resp.Simulation.ID)
	}
	if !strings.Contains(resp.Simulation.HTMLURL, "autoStart=true") {
		t.Errorf("html_url = %q, want autoStart flag", resp.Simulation.HTMLURL)
	}
	if resp.Concepts.Total != 2 || resp.Concepts.CurrentIndex != 0 {
		t.Errorf("concepts = %+v", resp.Concepts)
	}
	if resp.Concepts.CurrentConcept == nil {
		t.Fatal("current_concept missing")
	}
	if resp.TeacherMessage.Text == "" || !resp.TeacherMessage.RequiresResponse {
		t.Errorf("teacher_message = %+v", resp.TeacherMessage)
	}
	if resp.LearningState.UnderstandingLevel != "none" {
		t.Errorf("understanding_level = %q, want none", resp.LearningState.UnderstandingLevel)
	}
}

func TestCreateSession_UnknownSimulation(t *testing.T) {
	s, _ := newTestServer(t)
	w := doJSON(t, s.Handler(), http.MethodPost, "/api/sessions",
		startSessionRequest{SimulationID: "warp_drive"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestCreateSession_MissingBody(t *testing.T) {
	s, _ := newTestServer(t)
	w := doJSON(t, s.Handler(), http.MethodPost, "/api/sessions", map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestRespondTurn(t *testing.T) {
	s, _ := newTestServer(t, introReply(), classification("partial"), turnReply())

	w := doJSON(t, s.Handler(), http.MethodPost, "/api/sessions",
		startSessionRequest{SimulationID: "simple_pendulum"})
	created := decodeSession(t, w)

	w = doJSON(t, s.Handler(), http.MethodPost, "/api/sessions/"+created.SessionID+"/respond",
		respondRequest{StudentResponse: "it swings slower I think"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", w.Code, w.Body.String())
	}

	resp := decodeSession(t, w)
	if resp.LearningState.UnderstandingLevel != "partial" {
		t.Errorf("understanding_level = %q, want partial", resp.LearningState.UnderstandingLevel)
	}
	if resp.LearningState.ExchangeCount != 1 {
		t.Errorf("exchange_count = %d, want 1", resp.LearningState.ExchangeCount)
	}
	if resp.LearningState.Strategy == "" || resp.LearningState.TrajectoryStatus == "" {
		t.Errorf("learning_state = %+v, want strategy and trajectory set", resp.LearningState)
	}
	if resp.TeacherMessage.Text != "Interesting! Why do you think that happens?" {
		t.Errorf("teacher text = %q", resp.TeacherMessage.Text)
	}
}

func TestRespond_UnknownSession(t *testing.T) {
	s, _ := newTestServer(t)
	w := doJSON(t, s.Handler(), http.MethodPost, "/api/sessions/nope/respond",
		respondRequest{StudentResponse: "hello"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGetSession(t *testing.T) {
	s, _ := newTestServer(t, introReply())

	w := doJSON(t, s.Handler(), http.MethodPost, "/api/sessions",
		startSessionRequest{SimulationID: "light_shadows"})
	created := decodeSession(t, w)

	w = doJSON(t, s.Handler(), http.MethodGet, "/api/sessions/"+created.SessionID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	resp := decodeSession(t, w)
	if resp.SessionID != created.SessionID {
		t.Errorf("session_id = %q, want %q", resp.SessionID, created.SessionID)
	}
	if resp.Simulation.ID != "light_shadows" {
		t.Errorf("simulation.id = %q", resp.Simulation.ID)
	}
}

func TestQuizEvaluate(t *testing.T) {
	s, _ := newTestServer(t)

	body := map[string]any{
		"simulation_id": "simple_pendulum",
		"submitted_params": map[string]any{
			"length": 1.5,
		},
		"success_rule": map[string]any{
			"optimization_target": map[string]any{
				"parameter": "length",
				"objective": "minimize",
			},
		},
		"attempt": 1,
		"hints":   []string{"try a shorter pendulum"},
	}
	w := doJSON(t, s.Handler(), http.MethodPost, "/api/quiz/evaluate", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", w.Code, w.Body.String())
	}

	var resp quizEvaluateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "RIGHT" || resp.Score != 1.0 {
		t.Errorf("result = %+v, want RIGHT/1.0", resp)
	}
	if resp.AllowRetry {
		t.Error("correct answer should not offer a retry")
	}
}

func TestQuizEvaluate_WrongGetsHint(t *testing.T) {
	s, _ := newTestServer(t)

	body := map[string]any{
		"simulation_id":    "simple_pendulum",
		"submitted_params": map[string]any{"length": 9},
		"success_rule": map[string]any{
			"optimization_target": map[string]any{
				"parameter": "length",
				"objective": "minimize",
			},
		},
		"attempt": 1,
		"hints":   []string{"try a shorter pendulum", "go to the minimum"},
	}
	w := doJSON(t, s.Handler(), http.MethodPost, "/api/quiz/evaluate", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp quizEvaluateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "WRONG" {
		t.Errorf("status = %q, want WRONG", resp.Status)
	}
	if resp.Hint != "try a shorter pendulum" {
		t.Errorf("hint = %q", resp.Hint)
	}
	if !resp.AllowRetry {
		t.Error("first wrong attempt should allow a retry")
	}
}

func TestQuizEvaluate_EmptyRule(t *testing.T) {
	s, _ := newTestServer(t)

	body := map[string]any{
		"submitted_params": map[string]any{"length": 5},
		"success_rule":     map[string]any{},
	}
	w := doJSON(t, s.Handler(), http.MethodPost, "/api/quiz/evaluate", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400\nbody: %s", w.Code, w.Body.String())
	}
}
