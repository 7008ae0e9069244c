package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adasgupta/simtutor/internal/catalog"
	"github.com/adasgupta/simtutor/internal/quiz"
	"github.com/adasgupta/simtutor/internal/tutor"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /api/simulations
func (s *Server) listSimulations(c *gin.Context) {
	summaries := catalog.List()
	out := make([]simulationSummary, 0, len(summaries))
	for _, sum := range summaries {
		sim, err := catalog.Get(sum.ID)
		if err != nil {
			continue
		}
		out = append(out, simulationSummary{
			ID:          sim.ID,
			Title:       sim.Title,
			Description: sim.Description,
			HTMLURL:     sim.BuildURL(s.cfg.SimulationBaseURL, sim.InitialParams, false),
			Concepts:    len(sim.Concepts),
		})
	}
	c.JSON(http.StatusOK, gin.H{"simulations": out})
}

// POST /api/sessions
func (s *Server) createSession(c *gin.Context) {
	var req startSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "simulation_id is required"})
		return
	}

	id, _, _, err := s.manager.Create(c.Request.Context(), req.SimulationID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, catalog.ErrUnknownSimulation) {
			status = http.StatusNotFound
		}
		s.log.Error("create session failed", zap.String("simulation", req.SimulationID), zap.Error(err))
		c.JSON(status, errorResponse{Error: err.Error()})
		return
	}

	view, err := s.manager.View(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, s.buildSessionResponse(view))
}

// POST /api/sessions/:id/respond
func (s *Server) respond(c *gin.Context) {
	var req respondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "student_response is required"})
		return
	}

	id := c.Param("id")
	_, _, err := s.manager.Respond(c.Request.Context(), id, req.StudentResponse)
	switch {
	case errors.Is(err, tutor.ErrUnknownSession):
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	case errors.Is(err, tutor.ErrSessionComplete):
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
		return
	case err != nil:
		s.log.Error("turn failed", zap.String("session", id), zap.Error(err))
		c.JSON(http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}

	view, err := s.manager.View(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.buildSessionResponse(view))
}

// GET /api/sessions/:id
func (s *Server) getSession(c *gin.Context) {
	view, err := s.manager.View(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.buildSessionResponse(view))
}

// POST /api/quiz/evaluate
func (s *Server) evaluateQuiz(c *gin.Context) {
	var req quizEvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "submitted_params and success_rule are required"})
		return
	}

	var ranges map[string]string
	if req.SimulationID != "" {
		sim, err := catalog.Get(req.SimulationID)
		if err != nil {
			c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		ranges = sim.ParamRanges()
	}

	params, skipped := quiz.CoerceParams(req.SubmittedParams)
	result, err := quiz.Evaluate(params, req.SuccessRule, ranges)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	attempt := req.Attempt
	if attempt < 1 {
		attempt = 1
	}
	maxAttempts := req.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = quiz.DefaultMaxAttempts
	}

	resp := quizEvaluateResponse{
		Score:         result.Score,
		Status:        string(result.Status),
		AllowRetry:    result.Status != quiz.StatusRight && quiz.AllowRetry(attempt, maxAttempts),
		SkippedParams: skipped,
	}
	if result.Status != quiz.StatusRight {
		resp.Hint = quiz.HintForAttempt(req.Hints, attempt)
	}
	c.JSON(http.StatusOK, resp)
}

// buildSessionResponse projects a session view into the nested API
// shape the clients consume.
func (s *Server) buildSessionResponse(v *tutor.SessionView) sessionResponse {
	sim := v.Simulation
	currentURL := sim.BuildURL(s.cfg.SimulationBaseURL, v.Params, true)

	simState := simulationState{
		ID:            sim.ID,
		Title:         sim.Title,
		HTMLURL:       currentURL,
		CurrentParams: v.Params,
	}
	if pc := v.LastParamChange; pc != nil {
		before := v.Params.Clone()
		before[pc.Parameter] = pc.OldValue
		simState.ParamChange = &parameterChange{
			Parameter: pc.Parameter,
			Before:    pc.OldValue,
			After:     pc.NewValue,
			Reason:    pc.Reason,
			BeforeURL: sim.BuildURL(s.cfg.SimulationBaseURL, before, true),
			AfterURL:  currentURL,
		}
	}

	// ConceptIndex == len(Concepts) once the session is complete.
	progress := v.Progress
	currentIndex := progress.ConceptIndex

	concepts := conceptsState{
		Total:        len(v.Concepts),
		CurrentIndex: currentIndex,
		AllConcepts:  make([]conceptInfo, 0, len(v.Concepts)),
		AllCompleted: progress.Completed,
	}
	for _, con := range v.Concepts {
		concepts.AllConcepts = append(concepts.AllConcepts, newConceptInfo(con))
	}
	if currentIndex < len(v.Concepts) {
		ci := newConceptInfo(v.Concepts[currentIndex])
		concepts.CurrentConcept = &ci
	}
	if currentIndex > 0 {
		prev := v.Concepts[currentIndex-1]
		concepts.PreviousConcept = &previousConcept{ID: prev.ID, Title: prev.Title, Completed: true}
	}

	msg := teacherMessage{
		Text:             v.LastTeacher,
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
		RequiresResponse: !progress.Completed,
		SessionEnding:    progress.Completed,
	}
	learning := learningState{
		UnderstandingLevel: progress.Level.String(),
		ExchangeCount:      progress.Exchange,
		SessionComplete:    progress.Completed,
		Strategy:           "continue",
		TeacherMode:        "encouraging",
	}
	if lt := v.LastTurn; lt != nil {
		msg.CorrectionMade = lt.Assessment.FactuallyWrong
		msg.AsksForReasoning = lt.Assessment.ObservationOnly
		msg.ConceptTransition = lt.ConceptAdvanced

		learning.UnderstandingReasoning = lt.Assessment.Reasoning
		learning.ConceptComplete = lt.ConceptAdvanced
		learning.Strategy = string(lt.Directive.Strategy)
		learning.TeacherMode = string(lt.Directive.Tone)
		learning.TrajectoryStatus = string(lt.Trend)
		learning.NeedsDeeper = lt.Assessment.ObservationOnly
	}

	resp := sessionResponse{
		SessionID:      progress.SessionID,
		Simulation:     simState,
		Concepts:       concepts,
		TeacherMessage: msg,
		LearningState:  learning,
	}

	if progress.Completed {
		progression := make([]string, 0, len(v.LevelLog))
		for _, l := range v.LevelLog {
			progression = append(progression, l.String())
		}
		resp.Summary = &sessionSummary{
			ConceptsMastered:         progress.ConceptsCompleted,
			TotalExchanges:           progress.TotalExchanges,
			ParameterChangesMade:     v.ParamChangeCnt,
			UnderstandingProgression: progression,
		}
	}
	return resp
}

func newConceptInfo(c catalog.Concept) conceptInfo {
	related := c.RelatedParams
	if related == nil {
		related = []string{}
	}
	return conceptInfo{
		ID:            c.ID,
		Title:         c.Title,
		Description:   c.Description,
		KeyInsight:    c.KeyInsight,
		RelatedParams: related,
	}
}
