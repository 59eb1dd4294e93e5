package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"fleethq/config"
	"fleethq/fleetapi"
	"fleethq/handlers"
	"fleethq/middleware"
	"fleethq/routes"
	"fleethq/services/agreement"
	"fleethq/services/booking"
	"fleethq/store"
	"fleethq/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Pick the backends. The static catalog runs entirely in-process with
	// bundled fixtures; otherwise drafts live in Redis and the catalog comes
	// from the fleet-management API.
	var (
		api         fleetapi.FleetAPI
		drafts      store.Bridge
		draftClient *redis.Client
		ping        func(ctx context.Context) error
	)
	if config.AppConfig.StaticCatalog {
		logger.Sugar().Info("main: serving static demo catalog")
		api = fleetapi.NewStaticClient()
		drafts = store.NewMemoryBridge(logger)
	} else {
		utils.InitDraftStore()
		draftClient = utils.GetDraftStoreClient()
		drafts = store.NewRedisBridge(draftClient, logger)

		client := fleetapi.NewClient(
			config.AppConfig.FleetAPIURL,
			config.AppConfig.FleetAPIToken,
			config.AppConfig.CompanyID,
			logger,
		)
		api = client
		ping = client.Ping
	}
	utils.StartHealthMonitor(draftClient, ping)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.ClientIDMiddleware())

	// services.
	bookingService := booking.NewService(api, drafts, logger)
	agreementService := agreement.NewService(api, drafts, logger)

	// handlers.
	fleetHandler := handlers.NewFleetHandler(api, logger)
	companyHandler := handlers.NewCompanyHandler(api, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	agreementHandler := handlers.NewAgreementHandler(agreementService, logger)
	policyHandler := handlers.NewPolicyHandler(drafts, logger)

	handlerBundle := &handlers.HandlerBundle{
		// Catalog endpoints.
		ListFleetsHandler:          fleetHandler.ListFleets,
		GetFleetHandler:            fleetHandler.GetFleet,
		GetFleetExtrasHandler:      fleetHandler.GetFleetExtras,
		GetInsuranceOptionsHandler: fleetHandler.GetInsuranceOptions,

		// Company endpoints.
		GetCompanyHandler:           companyHandler.GetCompany,
		GetAgreementTemplateHandler: companyHandler.GetAgreementTemplate,

		// Booking endpoints.
		QuoteBookingHandler:  bookingHandler.QuoteBooking,
		SubmitBookingHandler: bookingHandler.SubmitBooking,
		GetBookingHandler:    bookingHandler.GetBooking,

		// Agreement endpoints.
		GetAgreementHandler:          agreementHandler.GetAgreement,
		GetAgreementByBookingHandler: agreementHandler.GetAgreementByBooking,
		SignAgreementHandler:         agreementHandler.SignAgreement,

		// Policy endpoints.
		AcceptPolicyHandler:  policyHandler.AcceptPolicy,
		ConsumePolicyHandler: policyHandler.ConsumePolicy,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
