package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fleethq/middleware"
	"fleethq/models"
	"fleethq/services/booking"
)

// BookingHandler serves reservation submission and result-page lookups.
type BookingHandler struct {
	Svc    booking.Service
	Logger *zap.Logger
}

// NewBookingHandler creates a booking handler.
func NewBookingHandler(svc booking.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// QuoteBooking prices the current form against a vehicle without creating
// anything. The invoice it returns backs the live order summary.
func (h *BookingHandler) QuoteBooking(c *gin.Context) {
	var form models.RentalRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	invoice, err := h.Svc.Quote(c.Request.Context(), form.VehicleID, form)
	if err != nil {
		h.Logger.Warn("Failed to quote booking", zap.String("vehicleID", form.VehicleID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to price this rental"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}

// SubmitBooking validates and submits a reservation. Validation failures come
// back as 400s with the form's own messaging; an upstream outage is not an
// error here, the customer is handed their draft record instead.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var form models.RentalRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Svc.Submit(c.Request.Context(), middleware.ClientID(c), form)
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Title, "details": verr.Message})
			return
		}
		h.Logger.Error("Booking submission error", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to submit booking"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetBooking resolves a booking id, draft or server-side, into the unified
// booking view.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	res := h.Svc.Resolve(c.Request.Context(), middleware.ClientID(c), c.Param("id"))
	status := http.StatusOK
	if res.State == models.LoadError {
		status = http.StatusNotFound
	}
	c.JSON(status, res)
}
