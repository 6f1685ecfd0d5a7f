package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	licenseApp "licenza/internal/application/license"
	"licenza/internal/shared/logger"
	"licenza/internal/shared/utils"
)

// LicenseHandler handles license HTTP requests
type LicenseHandler struct {
	service *licenseApp.Service
	logger  logger.Interface
}

// NewLicenseHandler creates a new LicenseHandler
func NewLicenseHandler(service *licenseApp.Service, logger logger.Interface) *LicenseHandler {
	return &LicenseHandler{
		service: service,
		logger:  logger,
	}
}

// List handles GET /licenses?status=&horizon=&q=&company_id=
func (h *LicenseHandler) List(c *gin.Context) {
	query := licenseApp.ListQuery{
		Status: c.Query("status"),
		Query:  c.Query("q"),
	}

	if raw := c.Query("horizon"); raw != "" {
		if horizon, err := strconv.Atoi(raw); err == nil && horizon >= 0 {
			query.Horizon = &horizon
		}
	}
	if raw := c.Query("company_id"); raw != "" {
		if companyID, err := strconv.ParseUint(raw, 10, 32); err == nil {
			id := uint(companyID)
			query.CompanyID = &id
		}
	}

	licenses, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		h.logger.Errorw("failed to list licenses", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", licenses)
}

// Get handles GET /licenses/:id
func (h *LicenseHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Create handles POST /licenses
func (h *LicenseHandler) Create(c *gin.Context) {
	var req licenseApp.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "License created")
}

// Update handles PUT /licenses/:id
func (h *LicenseHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req licenseApp.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "License updated", result)
}

// Delete handles DELETE /licenses/:id
func (h *LicenseHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "License deleted", nil)
}
