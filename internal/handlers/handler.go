// Package handlers contains the HTTP handlers of the REST API.
package handlers

import (
	"github.com/ratescope/ratescope/internal/config"
	"github.com/ratescope/ratescope/internal/logging"
	"github.com/ratescope/ratescope/internal/repository"
	"github.com/ratescope/ratescope/internal/services"
)

// Handler contains all HTTP handlers
type Handler struct {
	logger       *logging.Logger
	rateService  *services.RateService
	analyticsCfg config.AnalyticsConfig
}

// New creates a new handler instance
func New(logger *logging.Logger, repo repository.SeriesRepository, analyticsCfg config.AnalyticsConfig) *Handler {
	return &Handler{
		logger:       logger,
		rateService:  services.NewRateService(logger, repo),
		analyticsCfg: analyticsCfg,
	}
}
