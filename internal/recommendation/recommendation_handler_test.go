package recommendation_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-workforce/internal/recommendation"
	"go-workforce/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	recommendFn func(ctx context.Context, req recommendation.RecommendationRequest) ([]recommendation.Candidate, error)
}

func (f *fakeService) Recommend(ctx context.Context, req recommendation.RecommendationRequest) ([]recommendation.Candidate, error) {
	return f.recommendFn(ctx, req)
}

func TestHandler_Recommend(t *testing.T) {
	gin.SetMode(gin.TestMode)

	body := `{
		"required_skills": ["go", "postgres"],
		"estimated_hours": 40,
		"start_date": "2025-03-03",
		"end_date": "2025-03-07"
	}`

	svc := &fakeService{
		recommendFn: func(ctx context.Context, req recommendation.RecommendationRequest) ([]recommendation.Candidate, error) {
			assert.Equal(t, []string{"go", "postgres"}, req.RequiredSkills)
			assert.Equal(t, 40.0, req.EstimatedHours)
			return []recommendation.Candidate{
				{UserID: "user-x", Score: 80},
				{UserID: "user-y", Score: 70},
			}, nil
		},
	}

	h := recommendation.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/recommendations/allocations", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Recommend(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\"score\":80")
}

func TestHandler_RecommendValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := recommendation.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/recommendations/allocations",
		strings.NewReader(`{"required_skills": []}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Recommend(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RecommendServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		recommendFn: func(ctx context.Context, req recommendation.RecommendationRequest) ([]recommendation.Candidate, error) {
			return nil, apperror.ComputationUnavailable(assert.AnError)
		},
	}

	h := recommendation.NewHandler(svc)

	body := `{
		"required_skills": ["go"],
		"estimated_hours": 10,
		"start_date": "2025-03-03",
		"end_date": "2025-03-07"
	}`

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/recommendations/allocations", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Recommend(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), apperror.CodeComputationUnavailable)
}
