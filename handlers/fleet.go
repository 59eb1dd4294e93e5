package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fleethq/fleetapi"
	"fleethq/models"
)

// FleetHandler serves the vehicle catalog and its reference data.
type FleetHandler struct {
	API    fleetapi.FleetAPI
	Logger *zap.Logger
}

// NewFleetHandler creates a catalog handler.
func NewFleetHandler(api fleetapi.FleetAPI, logger *zap.Logger) *FleetHandler {
	return &FleetHandler{API: api, Logger: logger}
}

// ListFleets returns a page of the vehicle catalog. Supports ?page= and
// ?name= filters passed through to the upstream listing.
func (h *FleetHandler) ListFleets(c *gin.Context) {
	params := fleetapi.ListFleetsParams{Name: c.Query("name")}
	if page := c.Query("page"); page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page number"})
			return
		}
		params.Page = n
	}

	fleets, err := h.API.ListFleets(c.Request.Context(), params)
	if err != nil {
		h.Logger.Error("Failed to list fleets", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load vehicles"})
		return
	}
	c.JSON(http.StatusOK, fleets)
}

// GetFleet returns one vehicle by id.
func (h *FleetHandler) GetFleet(c *gin.Context) {
	id := c.Param("id")
	vehicle, err := h.API.GetFleetByID(c.Request.Context(), id)
	if err != nil {
		h.Logger.Warn("Failed to fetch fleet", zap.String("fleetID", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// GetFleetExtras returns the add-ons offered with a vehicle. The REST client
// already substitutes the packaged defaults on failure or an empty upstream
// list; the empty-slice guard covers other FleetAPI implementations.
func (h *FleetHandler) GetFleetExtras(c *gin.Context) {
	extras, err := h.API.GetFleetExtras(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Logger.Warn("Failed to fetch fleet extras", zap.String("fleetID", c.Param("id")), zap.Error(err))
	}
	if extras == nil {
		extras = []models.Extra{}
	}
	c.JSON(http.StatusOK, gin.H{"extras": extras})
}

// GetInsuranceOptions returns the coverage choices, always including the
// own-insurance option even when upstream is unreachable.
func (h *FleetHandler) GetInsuranceOptions(c *gin.Context) {
	options, err := h.API.GetInsuranceOptions(c.Request.Context())
	if err != nil {
		h.Logger.Warn("Failed to fetch insurance options", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"options": options})
}
