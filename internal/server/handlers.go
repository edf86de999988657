package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/alexanderramin/learnplan/internal/domain"
	"github.com/alexanderramin/learnplan/internal/duration"
	"github.com/alexanderramin/learnplan/internal/generation"
	"github.com/gin-gonic/gin"
)

type generatePlanRequest struct {
	Goal     string              `json:"goal"`
	Duration string              `json:"duration"`
	Profile  *generation.Profile `json:"profile,omitempty"`
	Category string              `json:"category,omitempty"`
}

type categoryInfo struct {
	Category domain.Category `json:"category"`
	Family   domain.Family   `json:"family"`
	Topics   int             `json:"topics"`
	Projects int             `json:"projects"`
}

func (s *Server) handleIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "learnplan",
		"version": Version,
		"features": []string{
			"duration parsing",
			"subject classification",
			"curriculum-based fallback plans",
			"plan validation and repair",
		},
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":                "healthy",
		"generator_initialized": s.modelReady,
	})
}

func (s *Server) handleCategories(c *gin.Context) {
	out := make([]categoryInfo, 0, s.catalog.Len()+1)
	for _, cat := range s.catalog.Categories() {
		e, _ := s.catalog.Get(cat)
		out = append(out, categoryInfo{
			Category: cat,
			Family:   e.Family,
			Topics:   len(e.Topics),
			Projects: len(e.Projects),
		})
	}
	out = append(out, categoryInfo{Category: domain.CategoryGeneral, Family: domain.FamilyTechnical})
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleGeneratePlan(c *gin.Context) {
	var body generatePlanRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be a JSON object"})
		return
	}

	req := generation.Request{
		Goal:      body.Goal,
		Duration:  body.Duration,
		Profile:   body.Profile,
		RequestID: c.GetString(ctxRequestID),
	}
	if body.Category != "" {
		cat, err := s.catalog.Lookup(body.Category)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		req.Category = cat
	}

	res, err := s.generator.Generate(c.Request.Context(), req)
	switch {
	case errors.Is(err, generation.ErrEmptyGoal),
		errors.Is(err, generation.ErrEmptyDuration),
		errors.Is(err, duration.ErrTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "plan generation failed"})
		return
	}

	c.Header(headerPlanSource, string(res.Source))
	c.Header("X-Plan-Category", string(res.Category))
	c.Header("X-Plan-Attempts", strconv.Itoa(res.Attempts))
	c.JSON(http.StatusOK, res.Plan)
}

var _ Generator = (*generation.Service)(nil)
