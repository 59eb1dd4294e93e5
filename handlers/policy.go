package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fleethq/middleware"
	"fleethq/store"
)

// PolicyHandler records which policy checkbox a client ticked before being
// sent to a policy page, and hands the flag back exactly once when they
// return to the booking form.
type PolicyHandler struct {
	Drafts store.Bridge
	Logger *zap.Logger
}

// NewPolicyHandler creates a policy handler.
func NewPolicyHandler(drafts store.Bridge, logger *zap.Logger) *PolicyHandler {
	return &PolicyHandler{Drafts: drafts, Logger: logger}
}

// AcceptPolicy stashes the accepted policy kind for the client.
func (h *PolicyHandler) AcceptPolicy(c *gin.Context) {
	var input struct {
		Kind string `json:"kind"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Kind != store.TermsKindTerms && input.Kind != store.TermsKindPayment {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown policy kind"})
		return
	}

	if err := h.Drafts.MarkTermsAccepted(c.Request.Context(), middleware.ClientID(c), input.Kind); err != nil {
		h.Logger.Error("Failed to record policy acceptance", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record acceptance"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accepted": input.Kind})
}

// ConsumePolicy returns the stashed policy kind and clears it. An empty kind
// means nothing was stashed, or it was already consumed.
func (h *PolicyHandler) ConsumePolicy(c *gin.Context) {
	kind, err := h.Drafts.ConsumeTermsAccepted(c.Request.Context(), middleware.ClientID(c))
	if err != nil {
		h.Logger.Error("Failed to consume policy acceptance", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read acceptance"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"kind": kind})
}
