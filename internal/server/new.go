package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"lectureiq/internal/config"
	"lectureiq/internal/jobs"
	"lectureiq/internal/logger"
	"lectureiq/internal/metrics"
	"lectureiq/internal/pipeline"
)

type implServer struct {
	cfg      config.Config
	registry *jobs.Registry
	orch     pipeline.Orchestrator
	logger   logger.Logger
	engine   *gin.Engine
}

// New builds the HTTP server and registers all routes on a fresh gin engine.
func New(cfg config.Config, registry *jobs.Registry, orch pipeline.Orchestrator, log logger.Logger) Server {
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &implServer{
		cfg:      cfg,
		registry: registry,
		orch:     orch,
		logger:   log,
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(metrics.Middleware())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	engine.GET("/", s.handleRoot)
	engine.GET("/health", s.handleHealth)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := engine.Group("/api")
	api.POST("/upload", s.handleUpload)
	api.GET("/lectures/:id", s.handleLecture)

	s.engine = engine
	return s
}

func (s *implServer) Router() *gin.Engine {
	return s.engine
}
