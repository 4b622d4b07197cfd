package ui

import (
	"net/http"

	"bedflow/app"
	"bedflow/domain/core"
	"bedflow/domain/hospital"

	"github.com/gin-gonic/gin"
)

type selectCellRequest struct {
	Service string `json:"service" binding:"required"`
	Week    int    `json:"week" binding:"required"`
}

type weekRangeRequest struct {
	Lo int `json:"lo" binding:"required"`
	Hi int `json:"hi" binding:"required"`
}

type focusRequest struct {
	Focus string `json:"focus" binding:"required"`
}

type eventsRequest struct {
	Events []string `json:"events"`
}

type baselineRequest struct {
	Show *bool `json:"show" binding:"required"`
}

type serviceFilterRequest struct {
	Service string `json:"service"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "records": s.engine.Index().Len()})
}

func (s *Server) handleServices(c *gin.Context) {
	lo, hi := s.engine.Index().WeekBounds()
	c.JSON(http.StatusOK, gin.H{
		"services":   s.engine.Index().Services(),
		"week_range": gin.H{"lo": lo, "hi": hi},
	})
}

func (s *Server) handleState(c *gin.Context) {
	c.JSON(http.StatusOK, s.engine.State())
}

func (s *Server) handleBundle(c *gin.Context) {
	bundle, err := s.engine.Bundle()
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, bundle)
}

func (s *Server) handleSelectCell(c *gin.Context) {
	var req selectCellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "service and week are required"})
		return
	}
	s.renderResult(c, func() (app.CommandResult, error) {
		return s.engine.SelectCell(req.Service, req.Week)
	})
}

func (s *Server) handleClearSelection(c *gin.Context) {
	s.renderResult(c, s.engine.ClearSelection)
}

func (s *Server) handleSetWeekRange(c *gin.Context) {
	var req weekRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lo and hi are required"})
		return
	}
	s.renderResult(c, func() (app.CommandResult, error) {
		return s.engine.SetWeekRange(req.Lo, req.Hi)
	})
}

func (s *Server) handleSetFocus(c *gin.Context) {
	var req focusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "focus is required"})
		return
	}
	s.renderResult(c, func() (app.CommandResult, error) {
		return s.engine.SetFocus(hospital.Metric(req.Focus))
	})
}

func (s *Server) handleSetVisibleEvents(c *gin.Context) {
	var req eventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "events must be a list"})
		return
	}
	events := make([]hospital.EventType, 0, len(req.Events))
	for _, ev := range req.Events {
		events = append(events, hospital.EventType(ev))
	}
	s.renderResult(c, func() (app.CommandResult, error) {
		return s.engine.SetVisibleEvents(events)
	})
}

func (s *Server) handleSetShowBaseline(c *gin.Context) {
	var req baselineRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Show == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "show is required"})
		return
	}
	s.renderResult(c, func() (app.CommandResult, error) {
		return s.engine.SetShowBaseline(*req.Show)
	})
}

func (s *Server) handleSetServiceFilter(c *gin.Context) {
	var req serviceFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	s.renderResult(c, func() (app.CommandResult, error) {
		return s.engine.SetServiceFilter(req.Service)
	})
}

func (s *Server) renderResult(c *gin.Context, command func() (app.CommandResult, error)) {
	res, err := command()
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// renderError maps domain errors onto HTTP statuses
func (s *Server) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case core.IsInvalidRangeError(err), core.IsValidationError(err):
		status = http.StatusBadRequest
	case core.IsNotFoundError(err):
		status = http.StatusNotFound
	case core.IsEmptySelectionError(err):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("[Server] command failed: %v", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
