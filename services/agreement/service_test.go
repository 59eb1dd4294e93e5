package agreement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fleethq/fleetapi"
	"fleethq/models"
	"fleethq/store"
)

// stubAPI serves the demo catalog but lets a test swap in its own agreement
// behavior.
type stubAPI struct {
	*fleetapi.StaticClient
	getAgreementByID        func(ctx context.Context, id string) (*models.Agreement, error)
	getAgreementByBookingID func(ctx context.Context, bookingID string) (*models.Agreement, error)
	acceptAgreement         func(ctx context.Context, id, signatureImage string) (*models.Agreement, error)
}

func (s *stubAPI) GetAgreementByID(ctx context.Context, id string) (*models.Agreement, error) {
	if s.getAgreementByID != nil {
		return s.getAgreementByID(ctx, id)
	}
	return s.StaticClient.GetAgreementByID(ctx, id)
}

func (s *stubAPI) GetAgreementByBookingID(ctx context.Context, bookingID string) (*models.Agreement, error) {
	if s.getAgreementByBookingID != nil {
		return s.getAgreementByBookingID(ctx, bookingID)
	}
	return s.StaticClient.GetAgreementByBookingID(ctx, bookingID)
}

func (s *stubAPI) AcceptAgreement(ctx context.Context, id, signatureImage string) (*models.Agreement, error) {
	if s.acceptAgreement != nil {
		return s.acceptAgreement(ctx, id, signatureImage)
	}
	return s.StaticClient.AcceptAgreement(ctx, id, signatureImage)
}

func newTestService() (*DefaultService, *stubAPI, *store.MemoryBridge) {
	api := &stubAPI{StaticClient: fleetapi.NewStaticClient()}
	drafts := store.NewMemoryBridge(zap.NewNop())
	return NewService(api, drafts, zap.NewNop()), api, drafts
}

func draftAgreement(id string) *models.Agreement {
	return &models.Agreement{
		ID:      id,
		Status:  models.AgreementStatusPending,
		Company: models.DefaultCompanySettings(),
	}
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("blank id is idle", func(t *testing.T) {
		svc, _, _ := newTestService()
		res := svc.Resolve(ctx, "client-1", "")
		assert.Equal(t, models.LoadIdle, res.State)
	})

	t.Run("draft id loads from the draft store", func(t *testing.T) {
		svc, _, drafts := newTestService()
		require.NoError(t, drafts.SaveDraftAgreement(ctx, "client-1", draftAgreement("temp-agreement-1700000000000")))

		res := svc.Resolve(ctx, "client-1", "temp-agreement-1700000000000")
		assert.Equal(t, models.LoadReady, res.State)
		assert.Equal(t, models.SourceDraft, res.Source)
		require.NotNil(t, res.Agreement)
	})

	t.Run("draft id with nothing stored is an error", func(t *testing.T) {
		svc, _, _ := newTestService()
		res := svc.Resolve(ctx, "client-1", "temp-agreement-1700000000000")
		assert.Equal(t, models.LoadError, res.State)
	})

	t.Run("server id resolves upstream", func(t *testing.T) {
		svc, api, _ := newTestService()
		api.getAgreementByID = func(ctx context.Context, id string) (*models.Agreement, error) {
			return &models.Agreement{ID: id, Status: models.AgreementStatusPending}, nil
		}

		res := svc.Resolve(ctx, "client-1", "42")
		assert.Equal(t, models.LoadReady, res.State)
		assert.Equal(t, models.SourceServer, res.Source)
	})
}

func TestResolveByBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("blank booking id is idle", func(t *testing.T) {
		svc, _, _ := newTestService()
		res := svc.ResolveByBooking(ctx, "client-1", "")
		assert.Equal(t, models.LoadIdle, res.State)
	})

	t.Run("draft booking id loads the draft agreement", func(t *testing.T) {
		svc, _, drafts := newTestService()
		require.NoError(t, drafts.SaveDraftAgreement(ctx, "client-1", draftAgreement("temp-agreement-1700000000000")))

		res := svc.ResolveByBooking(ctx, "client-1", "temp-1700000000000")
		assert.Equal(t, models.LoadReady, res.State)
		assert.Equal(t, models.SourceDraft, res.Source)
	})

	t.Run("booking without an agreement is an error", func(t *testing.T) {
		svc, api, _ := newTestService()
		api.getAgreementByBookingID = func(ctx context.Context, bookingID string) (*models.Agreement, error) {
			return nil, nil
		}

		res := svc.ResolveByBooking(ctx, "client-1", "4821")
		assert.Equal(t, models.LoadError, res.State)
	})
}

func TestSign(t *testing.T) {
	ctx := context.Background()

	t.Run("empty signature is rejected", func(t *testing.T) {
		svc, _, _ := newTestService()
		_, err := svc.Sign(ctx, "client-1", "temp-agreement-1700000000000", "")

		var serr *SignError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, "Signature Required", serr.Title)
	})

	t.Run("signing a draft persists the signature", func(t *testing.T) {
		svc, _, drafts := newTestService()
		svc.Now = func() time.Time { return time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC) }
		require.NoError(t, drafts.SaveDraftAgreement(ctx, "client-1", draftAgreement("temp-agreement-1700000000000")))

		signed, err := svc.Sign(ctx, "client-1", "temp-agreement-1700000000000", "data:image/png;base64,abc")
		require.NoError(t, err)
		assert.Equal(t, models.AgreementStatusSigned, signed.Status)
		require.NotNil(t, signed.SignedAt)
		assert.Equal(t, 2026, signed.SignedAt.Year())
		require.NotNil(t, signed.SignatureImage)

		// The signed state survives a reload.
		stored, err := drafts.LoadDraftAgreement(ctx, "client-1")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, models.AgreementStatusSigned, stored.Status)
	})

	t.Run("a signed agreement cannot be signed again", func(t *testing.T) {
		svc, _, drafts := newTestService()
		require.NoError(t, drafts.SaveDraftAgreement(ctx, "client-1", draftAgreement("temp-agreement-1700000000000")))

		_, err := svc.Sign(ctx, "client-1", "temp-agreement-1700000000000", "sig")
		require.NoError(t, err)

		_, err = svc.Sign(ctx, "client-1", "temp-agreement-1700000000000", "sig")
		var serr *SignError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, "Agreement Signed", serr.Title)
	})

	t.Run("signing a missing draft is an error", func(t *testing.T) {
		svc, _, _ := newTestService()
		_, err := svc.Sign(ctx, "client-1", "temp-agreement-1700000000000", "sig")

		var serr *SignError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, "Agreement Not Found", serr.Title)
	})

	t.Run("server agreements sign upstream", func(t *testing.T) {
		svc, api, _ := newTestService()
		api.acceptAgreement = func(ctx context.Context, id, signatureImage string) (*models.Agreement, error) {
			signed := time.Now()
			return &models.Agreement{ID: id, Status: models.AgreementStatusSigned, SignedAt: &signed}, nil
		}

		signed, err := svc.Sign(ctx, "client-1", "42", "sig")
		require.NoError(t, err)
		assert.Equal(t, models.AgreementStatusSigned, signed.Status)
	})

	t.Run("upstream signing failure is retryable", func(t *testing.T) {
		svc, _, _ := newTestService()

		// StaticClient rejects signing, standing in for an outage.
		_, err := svc.Sign(ctx, "client-1", "42", "sig")
		var serr *SignError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, "Signing Failed", serr.Title)
		assert.Contains(t, serr.Message, "try again")
	})
}
