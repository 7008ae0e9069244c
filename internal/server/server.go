// Package server exposes the tutoring sessions over HTTP. The surface
// is a small JSON API: create a session, send a learner response, read
// session state, list simulations, and evaluate quiz submissions.
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adasgupta/simtutor/internal/catalog"
	"github.com/adasgupta/simtutor/internal/tutor"
)

// Config holds the HTTP surface settings.
type Config struct {
	// AllowOrigins lists CORS origins. Empty allows all, matching the
	// development posture of the upstream clients.
	AllowOrigins []string

	// SimulationBaseURL is where simulation HTML pages are hosted.
	SimulationBaseURL string
}

// DefaultConfig returns the standard server settings.
func DefaultConfig() Config {
	return Config{
		SimulationBaseURL: catalog.DefaultBaseURL,
	}
}

// Server wires the session manager to a gin engine.
type Server struct {
	manager *tutor.Manager
	log     *zap.Logger
	cfg     Config
	engine  *gin.Engine
}

// New builds the server and registers all routes.
func New(manager *tutor.Manager, log *zap.Logger, cfg Config) *Server {
	if cfg.SimulationBaseURL == "" {
		cfg.SimulationBaseURL = catalog.DefaultBaseURL
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(log))

	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Content-Type"}
	engine.Use(cors.New(corsCfg))

	s := &Server{manager: manager, log: log, cfg: cfg, engine: engine}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/healthz", s.health)

	api := s.engine.Group("/api")
	{
		api.GET("/simulations", s.listSimulations)
		api.POST("/sessions", s.createSession)
		api.GET("/sessions/:id", s.getSession)
		api.POST("/sessions/:id/respond", s.respond)
		api.POST("/quiz/evaluate", s.evaluateQuiz)
	}
}

// Handler returns the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts serving on addr and blocks.
func (s *Server) Run(addr string) error {
	s.log.Info("http server listening", zap.String("addr", addr))
	return s.engine.Run(addr)
}
