package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/josephgoksu/roadmapper/internal/roadmap"
)

// statusClientClosedRequest is reported when the caller went away mid-call.
const statusClientClosedRequest = 499

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func (s *Server) handleInfo(c *gin.Context) {
	c.JSON(http.StatusOK, s.info)
}

// handleGenerate runs one roadmap request. Blank topics never reach the
// provider.
func (s *Server) handleGenerate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Kind: "bad_request"})
		return
	}
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: roadmap.ErrEmptyTopic.Error(), Kind: roadmap.FailureKind(roadmap.ErrEmptyTopic)})
		return
	}

	result, err := s.gen.Request(c.Request.Context(), topic)
	if err != nil {
		status := statusForError(err)
		if status >= http.StatusInternalServerError {
			s.log.Warn("roadmap request failed", "topic", topic, "error", err)
		}
		c.JSON(status, ErrorResponse{Error: roadmap.UserMessage(err), Kind: roadmap.FailureKind(err)})
		return
	}

	c.JSON(http.StatusOK, result)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest
	case errors.Is(err, roadmap.ErrEmptyTopic):
		return http.StatusBadRequest
	}

	switch roadmap.FailureKind(err) {
	case "provider", "empty_response", "malformed_response":
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
