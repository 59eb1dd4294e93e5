package booking

import (
	"context"

	"go.uber.org/zap"

	"fleethq/models"
)

// Resolve looks up a booking by the id a result page landed with. Draft ids
// go to the draft store, everything else to the upstream API. A missing or
// unreadable record resolves to the error state rather than an error return
// so the caller can always render something.
func (s *DefaultService) Resolve(ctx context.Context, clientID, rawID string) Resolution {
	res := Resolution{State: models.LoadIdle}
	if rawID == "" {
		return res
	}
	res.State = models.LoadLoading

	ref := models.ParseBookingRef(rawID)
	if ref.IsDraft() {
		record, err := s.Drafts.LoadDraftBooking(ctx, clientID)
		if err != nil {
			s.Logger.Error("Failed to load draft booking", zap.String("clientID", clientID), zap.Error(err))
			res.State = models.LoadError
			return res
		}
		if record == nil {
			res.State = models.LoadError
			return res
		}
		res.State = models.LoadReady
		res.Source = models.SourceDraft
		res.Booking = record
		return res
	}

	record, err := s.API.GetBookingByID(ctx, ref.ID)
	if err != nil {
		s.Logger.Error("Failed to fetch booking", zap.String("bookingID", ref.ID), zap.Error(err))
		res.State = models.LoadError
		return res
	}
	res.State = models.LoadReady
	res.Source = models.SourceServer
	res.Booking = record
	return res
}
