package fleetapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleethq/models"
)

func TestRentalDays(t *testing.T) {
	assert.Equal(t, 2, rentalDays("2026-03-10T10:00:00", "2026-03-12T10:00:00"))
	assert.Equal(t, 1, rentalDays("2026-03-10T10:00:00", "2026-03-10T14:00:00"))
	assert.Equal(t, 3, rentalDays("2026-03-13T10:00:00", "2026-03-10T10:00:00"))
	assert.Equal(t, 1, rentalDays("garbage", "2026-03-10T10:00:00"))
}

func TestBookingDateFormatting(t *testing.T) {
	assert.Equal(t, "Tue. 10 Mar, 2026", formatBookingDate("2026-03-10T10:00:00"))
	assert.Equal(t, "10:00 AM", formatBookingTime("2026-03-10T10:00:00"))
	assert.Equal(t, "02:30 PM", formatBookingTime("2026-03-10T14:30:00"))
	assert.Equal(t, "N/A", formatBookingDate("not a date"))
	assert.Equal(t, "2nd March 2026", formatCreatedDate("2026-03-02T09:00:00"))
	assert.Equal(t, "21st March 2026", formatCreatedDate("2026-03-21T09:00:00"))
}

func TestTransformBooking(t *testing.T) {
	raw := apiBooking{
		ID:     4821,
		Status: models.BookingStatusConfirmed,
		Customer: apiBookingCustomer{
			FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
		},
		Fleet: apiBookingFleet{
			ID: 1, Name: "BMW i8", PricePerDay: 50.99, Year: 2023,
		},
		PickupDatetime:  "2026-03-10T10:00:00",
		DropoffDatetime: "2026-03-12T10:00:00",
		CreatedAt:       "2026-03-02T09:00:00",
	}

	booking := transformBooking(raw)

	assert.Equal(t, "4821", booking.ID)
	assert.Equal(t, "4821", booking.Invoice.Number)
	assert.Equal(t, "Jane Doe", booking.Customer.Name)

	// Derived amounts are reconstructed when the backend omits them.
	assert.InDelta(t, 101.98, booking.Invoice.Subtotal, 0.001)
	assert.InDelta(t, 101.98, booking.Invoice.Total, 0.001)
	assert.InDelta(t, 101.98*0.8, booking.Invoice.Deposit, 0.001)
	assert.InDelta(t, booking.Invoice.Total-booking.Invoice.Deposit, booking.Invoice.Balance, 0.001)

	// Verifications default to pending, placeholders fill missing fields.
	assert.Equal(t, models.VerificationPending, booking.Verifications.IDVerification)
	assert.Equal(t, "N/A", booking.Vehicle.LicensePlate)
	assert.Equal(t, models.PlaceholderImage, booking.Vehicle.Image)
	assert.Equal(t, "N/A", booking.PickUp.Address)
	assert.Empty(t, booking.AgreementID)
}

func TestTransformBookingKeepsServerAmounts(t *testing.T) {
	raw := apiBooking{
		ID:              1,
		Fleet:           apiBookingFleet{PricePerDay: 50.99},
		PickupDatetime:  "2026-03-10T10:00:00",
		DropoffDatetime: "2026-03-12T10:00:00",
		TotalPrice:      120,
		DepositAmount:   90,
	}
	booking := transformBooking(raw)
	assert.InDelta(t, 120, booking.Invoice.Total, 0.001)
	assert.InDelta(t, 90, booking.Invoice.Deposit, 0.001)
	assert.InDelta(t, 30, booking.Invoice.Balance, 0.001)
}

func TestCreateBookingRegistersCustomerFirst(t *testing.T) {
	var registered apiRegisterPayload
	var created apiCreateBookingPayload

	client, closeFn := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/users-auth/register/":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&registered))
			_, _ = w.Write([]byte(`{"id": 77}`))
		case "/api/bookings/":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&created))
			_, _ = w.Write([]byte(`{"id": 4821}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer closeFn()

	id, err := client.CreateBooking(context.Background(), CreateBookingPayload{
		FleetID: 1,
		Customer: CustomerData{
			FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", PhoneNo: "+15551234",
		},
		PickupDatetime:    "2026-03-10T10:00:00",
		DropoffDatetime:   "2026-03-12T10:00:00",
		PickupLocationID:  1,
		InsuranceOptionID: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "4821", id)

	assert.Equal(t, "jane@example.com", registered.Email)
	assert.Equal(t, registered.Password, registered.ConfirmPassword)
	assert.NotEmpty(t, registered.Password)

	assert.Equal(t, 77, created.Customer)
	assert.Equal(t, 1, created.FleetID)
	// Dropoff location defaults to the pickup location.
	assert.Equal(t, 1, created.DropoffLocationID)
	assert.True(t, created.InsuranceSelected)
}

func TestRandomPasswordMeetsComplexity(t *testing.T) {
	p1 := randomPassword()
	p2 := randomPassword()
	assert.NotEqual(t, p1, p2)
	assert.GreaterOrEqual(t, len(p1), 12)
}
