package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fleethq/fleetapi"
	"fleethq/models"
)

// CompanyHandler serves the rental company's display settings and its active
// agreement template. Both degrade to packaged defaults so the site can
// always render.
type CompanyHandler struct {
	API    fleetapi.FleetAPI
	Logger *zap.Logger
}

// NewCompanyHandler creates a company handler.
func NewCompanyHandler(api fleetapi.FleetAPI, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{API: api, Logger: logger}
}

// GetCompany returns the company's contact details.
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	settings, err := h.API.GetCompanySettings(c.Request.Context())
	if err != nil {
		h.Logger.Warn("Failed to fetch company settings, using defaults", zap.Error(err))
		settings = models.DefaultCompanySettings()
	}
	c.JSON(http.StatusOK, settings)
}

// GetAgreementTemplate returns the active rental-agreement template with its
// clauses in display order.
func (h *CompanyHandler) GetAgreementTemplate(c *gin.Context) {
	template, err := h.API.GetDefaultAgreementTemplate(c.Request.Context())
	if err != nil {
		h.Logger.Warn("Failed to fetch agreement template, using default", zap.Error(err))
		template = nil
	}
	if template == nil {
		fallback := models.DefaultAgreementTemplate()
		template = &fallback
	}
	c.JSON(http.StatusOK, template)
}
