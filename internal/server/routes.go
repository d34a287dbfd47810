package server

import "github.com/gin-gonic/gin"

// registerRoutes sets up all API endpoints
func (s *Server) registerRoutes() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), s.requestLogger())
	if len(s.origins) > 0 {
		engine.Use(s.corsMiddleware())
	}

	api := engine.Group("/api")
	{
		api.GET("/health", s.handleHealth)
		api.GET("/info", s.handleInfo)
		api.POST("/roadmap", s.handleGenerate)
	}
	return engine
}
