package server

import (
	"github.com/nulzo/model-registry-api/internal/server/middleware"
	v1 "github.com/nulzo/model-registry-api/internal/server/v1"
)

func (s *Server) SetupRoutes() {
	// 1. Global Middleware
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.ErrorHandler(s.logger))

	limiter := middleware.NewRateLimiter(s.config.RateLimit.RequestsPerSecond, s.config.RateLimit.Burst, s.logger)
	s.router.Use(limiter.Middleware())

	// 2. Health Check (Public)
	healthHandler := v1.NewHealthHandler()
	s.router.GET("/health", healthHandler.Health)

	// 3. API V1 Group
	api := s.router.Group("/v1")
	{
		modelHandler := v1.NewModelHandler(s.registry)
		api.GET("/models", modelHandler.List)
		api.POST("/models", modelHandler.Add)
		// uids contain slashes ("openai/gpt-4o"), so the route is a wildcard
		api.DELETE("/models/*uid", modelHandler.Remove)

		sourceHandler := v1.NewSourceHandler(s.registry, s.discovery)
		api.GET("/sources", sourceHandler.List)
		api.POST("/sources", sourceHandler.Create)
		api.DELETE("/sources/:id", sourceHandler.Delete)
		api.PATCH("/sources/:id/setup", sourceHandler.UpdateSetup)
		api.POST("/sources/:id/discover", sourceHandler.Discover)

		vendorHandler := v1.NewVendorHandler()
		api.GET("/vendors", vendorHandler.List)

		personaHandler := v1.NewPersonaHandler()
		api.GET("/personas", personaHandler.List)
		api.GET("/personas/:id", personaHandler.Get)

		registryHandler := v1.NewRegistryHandler(s.registry)
		api.GET("/registry/version", registryHandler.Version)
	}
}
