package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	alertApp "licenza/internal/application/alert"
	"licenza/internal/shared/logger"
	"licenza/internal/shared/utils"
)

// AlertHandler handles alert settings and alert run HTTP requests
type AlertHandler struct {
	service *alertApp.Service
	logger  logger.Interface
}

// NewAlertHandler creates a new AlertHandler
func NewAlertHandler(service *alertApp.Service, logger logger.Interface) *AlertHandler {
	return &AlertHandler{
		service: service,
		logger:  logger,
	}
}

// GetSettings handles GET /settings/alerts
func (h *AlertHandler) GetSettings(c *gin.Context) {
	result, err := h.service.GetSettings(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateSettings handles PUT /settings/alerts
func (h *AlertHandler) UpdateSettings(c *gin.Context) {
	var req alertApp.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Settings saved", result)
}

// Run handles POST /alerts/run
func (h *AlertHandler) Run(c *gin.Context) {
	sent, message, err := h.service.RunAlerts(c.Request.Context())
	if err != nil {
		h.logger.Errorw("alert run failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, message, alertApp.RunResult{Sent: sent, Message: message})
}

// SendTest handles POST /alerts/test
func (h *AlertHandler) SendTest(c *gin.Context) {
	if err := h.service.SendTest(c.Request.Context()); err != nil {
		h.logger.Errorw("test email failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Test email sent", nil)
}
