package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fleethq/models"
	"fleethq/utils"
)

func newBridge() *MemoryBridge {
	return NewMemoryBridge(zap.NewNop())
}

func TestDraftBookingRoundTrip(t *testing.T) {
	ctx := context.Background()
	bridge := newBridge()

	booking := &models.Booking{
		ID:     "temp-1700000000000",
		Status: models.BookingStatusPending,
		Customer: models.CustomerSnapshot{
			Name:  "Jane Doe",
			Email: "jane@example.com",
		},
	}
	require.NoError(t, bridge.SaveDraftBooking(ctx, "client-1", booking))

	loaded, err := bridge.LoadDraftBooking(ctx, "client-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, booking.ID, loaded.ID)
	assert.Equal(t, "Jane Doe", loaded.Customer.Name)
}

func TestLoadMissingDraftIsNilNil(t *testing.T) {
	ctx := context.Background()
	bridge := newBridge()

	booking, err := bridge.LoadDraftBooking(ctx, "client-1")
	assert.NoError(t, err)
	assert.Nil(t, booking)

	agreement, err := bridge.LoadDraftAgreement(ctx, "client-1")
	assert.NoError(t, err)
	assert.Nil(t, agreement)
}

func TestCorruptDraftReadsAsMissing(t *testing.T) {
	ctx := context.Background()
	bridge := newBridge()
	bridge.Put(utils.DraftBookingKeyPrefix+"client-1", []byte("{broken"))

	booking, err := bridge.LoadDraftBooking(ctx, "client-1")
	assert.NoError(t, err)
	assert.Nil(t, booking)
}

func TestSaveOverwritesPreviousDraft(t *testing.T) {
	ctx := context.Background()
	bridge := newBridge()

	require.NoError(t, bridge.SaveDraftBooking(ctx, "client-1", &models.Booking{ID: "temp-1"}))
	require.NoError(t, bridge.SaveDraftBooking(ctx, "client-1", &models.Booking{ID: "temp-2"}))

	loaded, err := bridge.LoadDraftBooking(ctx, "client-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "temp-2", loaded.ID)
}

func TestDraftsAreScopedPerClient(t *testing.T) {
	ctx := context.Background()
	bridge := newBridge()

	require.NoError(t, bridge.SaveDraftBooking(ctx, "client-1", &models.Booking{ID: "temp-1"}))

	other, err := bridge.LoadDraftBooking(ctx, "client-2")
	assert.NoError(t, err)
	assert.Nil(t, other)
}

func TestTermsAcceptedIsOneShot(t *testing.T) {
	ctx := context.Background()
	bridge := newBridge()

	require.NoError(t, bridge.MarkTermsAccepted(ctx, "client-1", TermsKindPayment))

	kind, err := bridge.ConsumeTermsAccepted(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, TermsKindPayment, kind)

	// The flag is gone after the first consume.
	kind, err = bridge.ConsumeTermsAccepted(ctx, "client-1")
	require.NoError(t, err)
	assert.Empty(t, kind)
}

func TestConsumeWithoutMarkIsEmpty(t *testing.T) {
	kind, err := newBridge().ConsumeTermsAccepted(context.Background(), "client-1")
	assert.NoError(t, err)
	assert.Empty(t, kind)
}
