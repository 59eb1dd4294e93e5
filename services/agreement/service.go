// Package agreement resolves rental agreements by id or by owning booking and
// records e-signatures, against the draft store for drafts and the fleet API
// for server records.
package agreement

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"fleethq/fleetapi"
	"fleethq/models"
	"fleethq/store"
)

// Resolution is the outcome of an agreement lookup.
type Resolution struct {
	State     models.LoadState  `json:"state"`
	Source    string            `json:"source,omitempty"`
	Agreement *models.Agreement `json:"agreement,omitempty"`
}

// Service defines agreement operations.
type Service interface {
	Resolve(ctx context.Context, clientID, rawID string) Resolution
	ResolveByBooking(ctx context.Context, clientID, bookingID string) Resolution
	Sign(ctx context.Context, clientID, rawID, signatureImage string) (*models.Agreement, error)
}

// DefaultService is the standard implementation.
type DefaultService struct {
	API    fleetapi.FleetAPI
	Drafts store.Bridge
	Logger *zap.Logger
	Now    func() time.Time
}

// NewService creates an agreement service.
func NewService(api fleetapi.FleetAPI, drafts store.Bridge, logger *zap.Logger) *DefaultService {
	return &DefaultService{API: api, Drafts: drafts, Logger: logger, Now: time.Now}
}

func (s *DefaultService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Resolve looks up an agreement by its own id.
func (s *DefaultService) Resolve(ctx context.Context, clientID, rawID string) Resolution {
	res := Resolution{State: models.LoadIdle}
	if rawID == "" {
		return res
	}
	res.State = models.LoadLoading

	ref := models.ParseAgreementRef(rawID)
	if ref.IsDraft() {
		record, err := s.Drafts.LoadDraftAgreement(ctx, clientID)
		if err != nil {
			s.Logger.Error("Failed to load draft agreement", zap.String("clientID", clientID), zap.Error(err))
			res.State = models.LoadError
			return res
		}
		if record == nil {
			res.State = models.LoadError
			return res
		}
		res.State = models.LoadReady
		res.Source = models.SourceDraft
		res.Agreement = record
		return res
	}

	record, err := s.API.GetAgreementByID(ctx, ref.ID)
	if err != nil {
		s.Logger.Error("Failed to fetch agreement", zap.String("agreementID", ref.ID), zap.Error(err))
		res.State = models.LoadError
		return res
	}
	res.State = models.LoadReady
	res.Source = models.SourceServer
	res.Agreement = record
	return res
}

// ResolveByBooking finds the agreement attached to a booking. A blank booking
// id resolves to idle; a booking that should have an agreement but doesn't
// resolves to the error state.
func (s *DefaultService) ResolveByBooking(ctx context.Context, clientID, bookingID string) Resolution {
	res := Resolution{State: models.LoadIdle}
	if bookingID == "" {
		return res
	}
	res.State = models.LoadLoading

	ref := models.ParseBookingRef(bookingID)
	if ref.IsDraft() {
		record, err := s.Drafts.LoadDraftAgreement(ctx, clientID)
		if err != nil || record == nil {
			if err != nil {
				s.Logger.Error("Failed to load draft agreement", zap.String("clientID", clientID), zap.Error(err))
			}
			res.State = models.LoadError
			return res
		}
		res.State = models.LoadReady
		res.Source = models.SourceDraft
		res.Agreement = record
		return res
	}

	record, err := s.API.GetAgreementByBookingID(ctx, ref.ID)
	if err != nil {
		s.Logger.Error("Failed to fetch agreement for booking", zap.String("bookingID", ref.ID), zap.Error(err))
		res.State = models.LoadError
		return res
	}
	if record == nil {
		res.State = models.LoadError
		return res
	}
	res.State = models.LoadReady
	res.Source = models.SourceServer
	res.Agreement = record
	return res
}

// Sign records a signature on an agreement. Draft agreements are signed in
// the draft store; server agreements are signed upstream. A signed agreement
// is read-only and cannot be signed again.
func (s *DefaultService) Sign(ctx context.Context, clientID, rawID, signatureImage string) (*models.Agreement, error) {
	if signatureImage == "" {
		return nil, NewSignError("Signature Required", "Please sign the agreement before saving.")
	}

	ref := models.ParseAgreementRef(rawID)
	if ref.IsDraft() {
		record, err := s.Drafts.LoadDraftAgreement(ctx, clientID)
		if err != nil {
			return nil, fmt.Errorf("loading draft agreement: %w", err)
		}
		if record == nil {
			return nil, NewSignError("Agreement Not Found", "We could not find this agreement. Please try again.")
		}
		if record.Status == models.AgreementStatusSigned {
			return nil, NewSignError("Agreement Signed", "This agreement has already been signed.")
		}

		signedAt := s.now()
		record.Status = models.AgreementStatusSigned
		record.SignedAt = &signedAt
		record.SignatureImage = &signatureImage
		if err := s.Drafts.SaveDraftAgreement(ctx, clientID, record); err != nil {
			return nil, fmt.Errorf("saving signed draft agreement: %w", err)
		}
		return record, nil
	}

	record, err := s.API.AcceptAgreement(ctx, ref.ID, signatureImage)
	if err != nil {
		s.Logger.Error("Failed to sign agreement upstream", zap.String("agreementID", ref.ID), zap.Error(err))
		return nil, NewSignError("Signing Failed", "Failed to sign agreement. Please try again.")
	}
	return record, nil
}
