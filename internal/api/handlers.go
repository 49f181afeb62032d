package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/health-triage-server/internal/domain"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// handleHealth reports liveness plus history store reachability.
func (s *Server) handleHealth(c *gin.Context) {
	status := "healthy"
	components := gin.H{"engine": "ok"}

	if s.history != nil {
		if _, err := s.history.Count(c.Request.Context()); err != nil {
			status = "degraded"
			components["history"] = "unavailable"
		} else {
			components["history"] = "ok"
		}
	} else {
		components["history"] = "disabled"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     status,
		"components": components,
		"timestamp":  time.Now().UTC(),
		"version":    "1.0.0",
	})
}

// handleTriage runs a full assessment for the posted request.
func (s *Server) handleTriage(c *gin.Context) {
	var req domain.TriageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":          "invalid request body: " + err.Error(),
			"correlation_id": c.GetString("correlation_id"),
		})
		return
	}

	if len(req.Symptoms) == 0 && req.SymptomText == "" && req.RawText == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":          "at least one of symptoms, symptom_text, or raw_text is required",
			"correlation_id": c.GetString("correlation_id"),
		})
		return
	}
	if req.Age != nil && (*req.Age < 0 || *req.Age > 130) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":          "age must be between 0 and 130",
			"correlation_id": c.GetString("correlation_id"),
		})
		return
	}

	result := s.triage.Triage(c.Request.Context(), req)
	c.JSON(http.StatusOK, result)
}

// handleSymptoms lists the canonical symptom vocabulary for checklist UIs.
func (s *Server) handleSymptoms(c *gin.Context) {
	vocabulary := s.kb.Vocabulary()
	c.JSON(http.StatusOK, gin.H{
		"symptoms": vocabulary,
		"count":    len(vocabulary),
	})
}

// handleListAssessments returns stored assessments newest first.
func (s *Server) handleListAssessments(c *gin.Context) {
	if s.history == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "assessment history is disabled"})
		return
	}

	limit := queryInt(c, "limit", defaultListLimit)
	if limit < 1 || limit > maxListLimit {
		limit = defaultListLimit
	}
	offset := queryInt(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	records, err := s.history.List(c.Request.Context(), limit, offset)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list assessments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list assessments"})
		return
	}
	total, err := s.history.Count(c.Request.Context())
	if err != nil {
		s.logger.WithError(err).Error("Failed to count assessments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count assessments"})
		return
	}

	if records == nil {
		records = []*domain.AssessmentRecord{}
	}
	c.JSON(http.StatusOK, gin.H{
		"assessments": records,
		"total":       total,
		"limit":       limit,
		"offset":      offset,
	})
}

// handleGetAssessment returns a single stored assessment by ID.
func (s *Server) handleGetAssessment(c *gin.Context) {
	if s.history == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "assessment history is disabled"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assessment id"})
		return
	}

	record, err := s.history.Get(c.Request.Context(), id)
	if err == domain.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "assessment not found"})
		return
	}
	if err != nil {
		s.logger.WithError(err).Error("Failed to fetch assessment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch assessment"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// handleCacheStats reports prediction cache hit rates.
func (s *Server) handleCacheStats(c *gin.Context) {
	if s.cache == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "prediction cache is disabled"})
		return
	}
	stats, entries := s.cache.Stats()
	c.JSON(http.StatusOK, gin.H{
		"stats":          stats,
		"memory_entries": entries,
	})
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
