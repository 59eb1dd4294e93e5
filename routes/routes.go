package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"fleethq/handlers"
	"fleethq/middleware"
	"fleethq/utils"
)

// RegisterFleetRoutes registers catalog endpoints.
func RegisterFleetRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/fleets")
	{
		api.GET("", hb.ListFleetsHandler)
		api.GET("/:id", hb.GetFleetHandler)
		api.GET("/:id/extras", hb.GetFleetExtrasHandler)
	}
	r.GET("/api/insurance-options", hb.GetInsuranceOptionsHandler)
}

// RegisterCompanyRoutes registers company display-data endpoints.
func RegisterCompanyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/company")
	{
		api.GET("", hb.GetCompanyHandler)
		api.GET("/agreement-template", hb.GetAgreementTemplateHandler)
	}
}

// RegisterBookingRoutes registers reservation endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("/quote", hb.QuoteBookingHandler)
		api.POST("", hb.SubmitBookingHandler)
		api.GET("/:id", hb.GetBookingHandler)
	}
}

// RegisterAgreementRoutes registers rental-agreement endpoints.
func RegisterAgreementRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/agreements")
	{
		api.GET("", hb.GetAgreementByBookingHandler)
		api.GET("/:id", hb.GetAgreementHandler)
		api.POST("/:id/sign", hb.SignAgreementHandler)
	}
}

// RegisterPolicyRoutes registers the policy-acceptance handoff endpoints.
func RegisterPolicyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/policy")
	{
		api.POST("/accept", hb.AcceptPolicyHandler)
		api.POST("/consume", hb.ConsumePolicyHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", middleware.ClientIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.ClientIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterFleetRoutes(r, hb)
	RegisterCompanyRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAgreementRoutes(r, hb)
	RegisterPolicyRoutes(r, hb)
}
