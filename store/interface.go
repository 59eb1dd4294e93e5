// Package store is the per-client draft store: it holds the draft booking and
// draft agreement a client created before the upstream booking exists, plus a
// short-lived one-shot flag recording which policy checkbox the client ticked
// before navigating away. Stored values are untrusted on read and decoded
// defensively.
package store

import (
	"context"

	"fleethq/models"
)

// Policy-acceptance kinds.
const (
	TermsKindTerms   = "terms"
	TermsKindPayment = "payment"
)

// Bridge reads and writes a client's draft records. Load methods return
// (nil, nil) when the value is absent or cannot be decoded; they never fail
// on corrupt data.
type Bridge interface {
	SaveDraftBooking(ctx context.Context, clientID string, booking *models.Booking) error
	LoadDraftBooking(ctx context.Context, clientID string) (*models.Booking, error)

	SaveDraftAgreement(ctx context.Context, clientID string, agreement *models.Agreement) error
	LoadDraftAgreement(ctx context.Context, clientID string) (*models.Agreement, error)

	// MarkTermsAccepted stashes which checkbox the client ticked before being
	// sent to a policy page. ConsumeTermsAccepted returns the stashed kind and
	// deletes it, so the flag is applied at most once; it returns "" when
	// nothing was stashed.
	MarkTermsAccepted(ctx context.Context, clientID, kind string) error
	ConsumeTermsAccepted(ctx context.Context, clientID string) (string, error)
}
