package server

import (
	"net/http"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/nulzo/model-registry-api/internal/config"
	"github.com/nulzo/model-registry-api/internal/discovery"
	"github.com/nulzo/model-registry-api/internal/registry"
	"github.com/nulzo/model-registry-api/internal/server/middleware"
	"github.com/nulzo/model-registry-api/internal/server/validator"
	"go.uber.org/zap"
)

type Server struct {
	router    *gin.Engine
	config    *config.Config
	logger    *zap.Logger
	registry  *registry.Registry
	discovery *discovery.Service
}

func New(cfg *config.Config, logger *zap.Logger, reg *registry.Registry, disc *discovery.Service) *Server {

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	validator.InitValidator()

	engine := gin.New()

	engine.Use(ginzap.RecoveryWithZap(logger, true))
	engine.Use(middleware.Logger(logger))
	engine.Use(middleware.Tracing(cfg.Tracing.ServiceName))

	s := &Server{
		router:    engine,
		config:    cfg,
		logger:    logger,
		registry:  reg,
		discovery: disc,
	}

	s.SetupRoutes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}
