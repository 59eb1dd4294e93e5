package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Catalog endpoints.
	ListFleetsHandler          gin.HandlerFunc
	GetFleetHandler            gin.HandlerFunc
	GetFleetExtrasHandler      gin.HandlerFunc
	GetInsuranceOptionsHandler gin.HandlerFunc

	// Company endpoints.
	GetCompanyHandler           gin.HandlerFunc
	GetAgreementTemplateHandler gin.HandlerFunc

	// Booking endpoints.
	QuoteBookingHandler  gin.HandlerFunc
	SubmitBookingHandler gin.HandlerFunc
	GetBookingHandler    gin.HandlerFunc

	// Agreement endpoints.
	GetAgreementHandler          gin.HandlerFunc
	GetAgreementByBookingHandler gin.HandlerFunc
	SignAgreementHandler         gin.HandlerFunc

	// Policy endpoints.
	AcceptPolicyHandler  gin.HandlerFunc
	ConsumePolicyHandler gin.HandlerFunc
}
