package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fleethq/middleware"
	"fleethq/models"
	"fleethq/services/agreement"
	"fleethq/utils"
)

// AgreementHandler serves rental-agreement lookups and e-signing.
type AgreementHandler struct {
	Svc    agreement.Service
	Logger *zap.Logger
}

// NewAgreementHandler creates an agreement handler.
func NewAgreementHandler(svc agreement.Service, logger *zap.Logger) *AgreementHandler {
	return &AgreementHandler{Svc: svc, Logger: logger}
}

// GetAgreement resolves an agreement by its own id.
func (h *AgreementHandler) GetAgreement(c *gin.Context) {
	res := h.Svc.Resolve(c.Request.Context(), middleware.ClientID(c), c.Param("id"))
	status := http.StatusOK
	if res.State == models.LoadError {
		status = http.StatusNotFound
	}
	c.JSON(status, res)
}

// GetAgreementByBooking resolves the agreement attached to a booking id.
func (h *AgreementHandler) GetAgreementByBooking(c *gin.Context) {
	res := h.Svc.ResolveByBooking(c.Request.Context(), middleware.ClientID(c), c.Query("bookingId"))
	status := http.StatusOK
	if res.State == models.LoadError {
		status = http.StatusNotFound
	}
	c.JSON(status, res)
}

// SignAgreement records an e-signature on an agreement.
func (h *AgreementHandler) SignAgreement(c *gin.Context) {
	var input struct {
		SignatureImage string `json:"signatureImage"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	signed, err := h.Svc.Sign(c.Request.Context(), middleware.ClientID(c), c.Param("id"), input.SignatureImage)
	if err != nil {
		var serr *agreement.SignError
		if errors.As(err, &serr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": serr.Title, "details": serr.Message})
			return
		}
		h.Logger.Error("Agreement signing error", zap.String("agreementID", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to sign agreement", "Please try again later.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"agreement": signed})
}
