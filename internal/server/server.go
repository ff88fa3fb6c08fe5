// Package server exposes the planner over HTTP.
package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/xizzxy/NextMove/internal/plan"
	"github.com/xizzxy/NextMove/internal/profile"
)

// PlanRunner computes one complete move plan.
type PlanRunner interface {
	Run(ctx context.Context, input profile.Profile) (*plan.Plan, error)
}

// Server wraps the gin engine and the planning pipeline.
type Server struct {
	engine *gin.Engine
	runner PlanRunner
	logger *zap.Logger
}

// New wires routes and middleware around the given runner.
func New(runner PlanRunner, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestIDMiddleware(), loggingMiddleware(logger))

	s := &Server{
		engine: engine,
		runner: runner,
		logger: logger,
	}

	engine.GET("/healthz", s.handleHealth)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.POST("/api/plan_move", s.handlePlanMove)

	return s
}

// Handler returns the http handler for use with an http.Server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handleHealth(c *gin.Context) {
	respondOK(c, http.StatusOK, "ok", nil)
}

// planRequest is the intake payload. Only city and budget are mandatory;
// everything else is defaulted during normalization.
type planRequest struct {
	Name            string   `json:"name"`
	City            string   `json:"city" binding:"required"`
	Budget          int      `json:"budget" binding:"required,gt=0"`
	CreditBand      string   `json:"credit_band"`
	CreditScore     int      `json:"credit_score"`
	Interests       []string `json:"interests"`
	Lifestyle       string   `json:"lifestyle"`
	Hobbies         string   `json:"hobbies"`
	CareerPath      string   `json:"career_path"`
	ExperienceYears int      `json:"experience_years"`
	Salary          int      `json:"salary"`
}

func (s *Server) handlePlanMove(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := s.runner.Run(c.Request.Context(), profile.Profile{
		Name:            req.Name,
		City:            req.City,
		Budget:          req.Budget,
		CreditBand:      req.CreditBand,
		CreditScore:     req.CreditScore,
		Interests:       req.Interests,
		Lifestyle:       req.Lifestyle,
		Hobbies:         req.Hobbies,
		CareerPath:      req.CareerPath,
		ExperienceYears: req.ExperienceYears,
		Salary:          req.Salary,
	})
	if err != nil {
		s.logger.Error("plan computation failed",
			zap.String("request_id", requestID(c)),
			zap.Error(err),
		)
		respondError(c, http.StatusInternalServerError, "plan computation failed", err)
		return
	}

	respondOK(c, http.StatusOK, "move plan ready", result)
}
