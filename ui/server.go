package ui

import (
	"fmt"
	"net/http"

	"bedflow/app"
	"bedflow/internal"

	"github.com/gin-gonic/gin"
)

// Server exposes the diagnostic engine as a JSON API
type Server struct {
	router *gin.Engine
	engine *app.Engine
	logger *internal.Logger
}

// NewServer creates a server around an initialized engine
func NewServer(engine *app.Engine) *Server {
	s := &Server{
		router: gin.Default(),
		engine: engine,
		logger: internal.DefaultLogger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.handleHealth)
		api.GET("/services", s.handleServices)
		api.GET("/state", s.handleState)
		api.GET("/bundle", s.handleBundle)

		api.POST("/selection", s.handleSelectCell)
		api.DELETE("/selection", s.handleClearSelection)
		api.PUT("/week-range", s.handleSetWeekRange)
		api.PUT("/focus", s.handleSetFocus)
		api.PUT("/events", s.handleSetVisibleEvents)
		api.PUT("/baseline", s.handleSetShowBaseline)
		api.PUT("/service-filter", s.handleSetServiceFilter)
	}
}

// Handler returns the underlying http handler, used by tests and main
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server on the given port and blocks
func (s *Server) Run(port string) error {
	s.logger.Info("[Server] listening on port %s", port)
	return s.router.Run(fmt.Sprintf(":%s", port))
}
