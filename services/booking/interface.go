// Package booking prices rentals, assembles draft records, submits bookings
// upstream and reconciles result-page lookups against the draft store.
package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"fleethq/fleetapi"
	"fleethq/models"
	"fleethq/store"
)

// SubmitResult reports where a submitted booking ended up. Draft is true when
// the upstream submission failed and the customer was handed the locally
// persisted record instead.
type SubmitResult struct {
	BookingID string `json:"bookingId"`
	Draft     bool   `json:"draft"`
}

// Resolution is the outcome of a booking lookup.
type Resolution struct {
	State   models.LoadState `json:"state"`
	Source  string           `json:"source,omitempty"`
	Booking *models.Booking  `json:"booking,omitempty"`
}

// Service defines booking operations.
type Service interface {
	Quote(ctx context.Context, vehicleID string, form models.RentalRequest) (*models.Invoice, error)
	Submit(ctx context.Context, clientID string, form models.RentalRequest) (*SubmitResult, error)
	Resolve(ctx context.Context, clientID, rawID string) Resolution
}

// DefaultService is the standard implementation backed by the fleet API and
// the draft store.
type DefaultService struct {
	API    fleetapi.FleetAPI
	Drafts store.Bridge
	Logger *zap.Logger
	Now    func() time.Time
}

// NewService creates a booking service.
func NewService(api fleetapi.FleetAPI, drafts store.Bridge, logger *zap.Logger) *DefaultService {
	return &DefaultService{API: api, Drafts: drafts, Logger: logger, Now: time.Now}
}

func (s *DefaultService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
