package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/edupulse/channel-insights/client"
	"github.com/edupulse/channel-insights/model"
)

// analyzeRequest keeps channels raw so a present-but-wrong-typed value can be
// told apart from an absent one.
type analyzeRequest struct {
	Channels   json.RawMessage `json:"channels"`
	TimeWindow *int            `json:"timeWindow"`
}

// health reports liveness plus whether the two runtime dependencies are wired.
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "YouTube Channel Analysis API",
		"status":    "running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"environment": gin.H{
			"hasYouTubeApiKey": s.cfg.YouTube.APIKey != "",
			"cacheEnabled":     s.cfg.Cache.Enabled,
		},
	})
}

// analyze validates the request shape field by field, each failure with its
// own message, then runs the batch analysis.
func (s *Server) analyze(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	var req analyzeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be valid JSON"})
		return
	}

	if len(req.Channels) == 0 || string(req.Channels) == "null" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "channels property is missing"})
		return
	}

	var channels []string
	if err := json.Unmarshal(req.Channels, &channels); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "channels must be an array"})
		return
	}

	if len(channels) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one channel is required"})
		return
	}

	if req.TimeWindow == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "timeWindow is required"})
		return
	}

	if err := model.ValidateTimeWindow(*req.TimeWindow); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := s.analyzer.AnalyzeAll(c.Request.Context(), channels, *req.TimeWindow)
	if err != nil {
		var credErr *client.CredentialError
		if errors.As(err, &credErr) {
			log.Error().Err(err).Msg("Batch analysis rejected: bad credential")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		log.Error().Err(err).Msg("Batch analysis failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// status reports progress for a request id. Analyses run synchronously inside
// the analyze call, so any id a client holds refers to finished work.
func (s *Server) status(c *gin.Context) {
	requestID := c.Param("requestId")
	if requestID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request id is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requestId": requestID,
		"status":    model.StatusCompleted,
		"progress":  100,
		"message":   "Analysis completed successfully",
	})
}
