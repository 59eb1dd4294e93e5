package booking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fleethq/models"
)

func sampleForm() models.RentalRequest {
	return models.RentalRequest{
		VehicleID:         "1",
		PickupDate:        "2026-03-10",
		DropoffDate:       "2026-03-12",
		PickupTime:        "10:00",
		DropoffTime:       "10:00",
		FirstName:         "Jane",
		LastName:          "Doe",
		Email:             "jane@example.com",
		Phone:             "5551234",
		CountryCode:       "+1",
		InsuranceOptionID: "2",
	}
}

func sampleVehicle() models.Vehicle {
	return models.Vehicle{
		ID:                 "1",
		Name:               "BMW i8",
		Year:               2023,
		Image:              "/images/vehicles/bmw-i8.jpg",
		Location:           "Am Isfeld 19, 22981, NY, New York",
		PricePerDay:        50.99,
		LicensePlate:       "LEE-67-889A",
		VIN:                "Z812AHSD812",
		AvailableLocations: []int{1},
		MilesPerDay:        200,
		MilesOverageRate:   0.5,
	}
}

func TestBuildDraft(t *testing.T) {
	now := time.Date(2026, 3, 2, 15, 4, 5, 0, time.UTC)
	draft := BuildDraft(sampleForm(), sampleVehicle(), models.CompanySettings{}, nil, now)

	t.Run("ids are paired draft ids", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(draft.Booking.ID, models.DraftBookingPrefix))
		assert.True(t, strings.HasPrefix(draft.Agreement.ID, models.DraftAgreementPrefix))
		assert.Equal(t, draft.Agreement.ID, draft.Booking.AgreementID)
		assert.Equal(t, draft.Booking.ID, draft.Booking.Invoice.Number)
	})

	t.Run("statuses start pending", func(t *testing.T) {
		assert.Equal(t, models.BookingStatusPending, draft.Booking.Status)
		assert.Equal(t, models.AgreementStatusPending, draft.Agreement.Status)
		assert.Equal(t, models.AgreementStatusPending, draft.Booking.AgreementStatus)
		assert.Equal(t, models.VerificationPending, draft.Booking.Verifications.IDVerification)
		assert.Equal(t, models.VerificationPending, draft.Booking.Verifications.InsuranceVerification)
	})

	t.Run("invoice is priced from the vehicle rate", func(t *testing.T) {
		inv := draft.Booking.Invoice
		assert.InDelta(t, 101.98, inv.Subtotal, 0.001)
		assert.InDelta(t, 101.98, inv.Total, 0.001)
		assert.InDelta(t, inv.Total*DepositRatio, inv.Deposit, 0.001)
		if assert.Len(t, inv.Items, 1) {
			assert.Equal(t, "BMW i8", inv.Items[0].Name)
			assert.Equal(t, 2, inv.Items[0].Quantity)
		}
	})

	t.Run("customer snapshot joins the form fields", func(t *testing.T) {
		assert.Equal(t, "Jane Doe", draft.Booking.Customer.Name)
		assert.Equal(t, "+15551234", draft.Booking.Customer.Phone)
	})

	t.Run("trip points carry display-formatted dates", func(t *testing.T) {
		assert.Equal(t, "Tue. 10 Mar, 2026", draft.Booking.PickUp.Date)
		assert.Equal(t, "10:00 AM", draft.Booking.PickUp.Time)
		assert.Equal(t, "Thu. 12 Mar, 2026", draft.Booking.DropOff.Date)
	})

	t.Run("booked-on uses the long date form", func(t *testing.T) {
		assert.Equal(t, "2nd March 2026", draft.Booking.BookedOn)
	})

	t.Run("missing company falls back to defaults", func(t *testing.T) {
		assert.Equal(t, models.DefaultCompanySettings(), draft.Agreement.Company)
	})

	t.Run("missing template falls back to default", func(t *testing.T) {
		assert.Equal(t, models.DefaultAgreementTemplate().Title, draft.Agreement.Template.Title)
	})

	t.Run("miles allowance scales with the rental length", func(t *testing.T) {
		assert.Equal(t, "400 miles", draft.Agreement.Vehicle.MinimumMiles)
		assert.Equal(t, "$0.50", draft.Agreement.Vehicle.OverageFee)
	})
}

func TestBuildDraftInsurance(t *testing.T) {
	now := time.Now()

	t.Run("own insurance", func(t *testing.T) {
		form := sampleForm()
		form.InsuranceOptionID = models.OwnInsuranceID
		draft := BuildDraft(form, sampleVehicle(), models.CompanySettings{}, nil, now)
		assert.Equal(t, "Own Insurance", draft.Agreement.Insurance.CarrierName)
	})

	t.Run("selected coverage", func(t *testing.T) {
		draft := BuildDraft(sampleForm(), sampleVehicle(), models.CompanySettings{}, nil, now)
		assert.Equal(t, "Selected Coverage", draft.Agreement.Insurance.CarrierName)
	})
}

func TestBuildDraftKeepsProvidedCompany(t *testing.T) {
	company := models.CompanySettings{Name: "Acme Rentals", Email: "hi@acme.test"}
	draft := BuildDraft(sampleForm(), sampleVehicle(), company, nil, time.Now())
	assert.Equal(t, "Acme Rentals", draft.Agreement.Company.Name)
}

func TestBuildDraftUnlimitedMiles(t *testing.T) {
	vehicle := sampleVehicle()
	vehicle.MilesPerDay = 0
	draft := BuildDraft(sampleForm(), vehicle, models.CompanySettings{}, nil, time.Now())
	assert.Equal(t, "Unlimited", draft.Agreement.Vehicle.MinimumMiles)
}
