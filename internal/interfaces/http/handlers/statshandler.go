package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	statsApp "licenza/internal/application/stats"
	"licenza/internal/shared/logger"
	"licenza/internal/shared/utils"
)

// StatsHandler handles dashboard and statistics HTTP requests
type StatsHandler struct {
	service *statsApp.Service
	logger  logger.Interface
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(service *statsApp.Service, logger logger.Interface) *StatsHandler {
	return &StatsHandler{
		service: service,
		logger:  logger,
	}
}

// GetDashboard handles GET /dashboard
func (h *StatsHandler) GetDashboard(c *gin.Context) {
	result, err := h.service.GetDashboard(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to build dashboard", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetFleetStats handles GET /stats
func (h *StatsHandler) GetFleetStats(c *gin.Context) {
	result, err := h.service.Fleet(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to compute fleet stats", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetCompanyStats handles GET /companies/:id/stats
func (h *StatsHandler) GetCompanyStats(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.service.Company(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
