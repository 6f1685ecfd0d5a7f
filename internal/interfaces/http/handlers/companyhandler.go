package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	companyApp "licenza/internal/application/company"
	"licenza/internal/shared/logger"
	"licenza/internal/shared/utils"
)

// CompanyHandler handles company HTTP requests
type CompanyHandler struct {
	service *companyApp.Service
	logger  logger.Interface
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(service *companyApp.Service, logger logger.Interface) *CompanyHandler {
	return &CompanyHandler{
		service: service,
		logger:  logger,
	}
}

// List handles GET /companies
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.logger.Errorw("failed to list companies", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", companies)
}

// Get handles GET /companies/:id
func (h *CompanyHandler) Get(c *gin.Context) {
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

// Create handles POST /companies
func (h *CompanyHandler) Create(c *gin.Context) {
	var req companyApp.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Company created")
}

// Update handles PUT /companies/:id
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req companyApp.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Company updated", result)
}

// Delete handles DELETE /companies/:id
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Company deleted", nil)
}
