package fleetapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleethq/models"
)

func TestStaticCatalog(t *testing.T) {
	ctx := context.Background()
	client := NewStaticClient()

	t.Run("lists the demo fleet", func(t *testing.T) {
		page, err := client.ListFleets(ctx, ListFleetsParams{})
		require.NoError(t, err)
		assert.NotEmpty(t, page.Results)
		assert.Equal(t, page.Count, len(page.Results))
	})

	t.Run("fetches a vehicle by id", func(t *testing.T) {
		vehicle, err := client.GetFleetByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "BMW i8", vehicle.Name)
		assert.NotEmpty(t, vehicle.AvailableLocations)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		_, err := client.GetFleetByID(ctx, "999")
		assert.Error(t, err)
	})

	t.Run("insurance options include own insurance", func(t *testing.T) {
		options, err := client.GetInsuranceOptions(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, options)
		assert.Equal(t, models.OwnInsuranceID, options[0].ID)
	})

	t.Run("writes are rejected", func(t *testing.T) {
		_, err := client.CreateBooking(ctx, CreateBookingPayload{})
		assert.ErrorIs(t, err, ErrStaticCatalog)

		_, err = client.AcceptAgreement(ctx, "1", "sig")
		assert.ErrorIs(t, err, ErrStaticCatalog)
	})
}
