package booking

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"fleethq/fleetapi"
	"fleethq/models"
)

// validateForm runs the pre-submit checks that need only the form, in the
// order the booking form surfaces them. The first failure wins, before any
// network or storage activity.
func validateForm(form models.RentalRequest) error {
	if strings.TrimSpace(form.FirstName) == "" ||
		strings.TrimSpace(form.LastName) == "" ||
		strings.TrimSpace(form.Email) == "" ||
		strings.TrimSpace(form.Phone) == "" {
		return NewValidationError("Customer Details Required",
			"Please fill in all customer details before proceeding with your reservation.")
	}
	if strings.TrimSpace(form.InsuranceOptionID) == "" {
		return NewValidationError("Insurance Required",
			"Please select an insurance option to protect your rental.")
	}
	return nil
}

// validateVehicle runs the one check that needs the fetched vehicle.
func validateVehicle(vehicle *models.Vehicle) error {
	if len(vehicle.AvailableLocations) == 0 {
		return NewValidationError("Location Not Available",
			"This vehicle does not have any pickup locations configured. Please contact support.")
	}
	return nil
}

// Quote prices the current form state against a vehicle without touching the
// draft store. Used for the live invoice preview while the customer edits.
func (s *DefaultService) Quote(ctx context.Context, vehicleID string, form models.RentalRequest) (*models.Invoice, error) {
	vehicle, err := s.API.GetFleetByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("fetching vehicle %s: %w", vehicleID, err)
	}

	days := ComputeDays(parseFormDate(form.PickupDate), parseFormDate(form.DropoffDate))
	code, discount := ResolveDiscount(form.DiscountCode)
	totals := ComputeTotals(vehicle.PricePerDay, days, discount, 0)

	return &models.Invoice{
		Items: []models.InvoiceItem{{
			Name:        vehicle.Name,
			Image:       vehicleImage(*vehicle),
			Quantity:    days,
			PricePerDay: vehicle.PricePerDay,
		}},
		Subtotal:     totals.Subtotal,
		Discount:     discount,
		DiscountCode: code,
		Tax:          0,
		Total:        totals.Total,
		Deposit:      totals.Deposit,
		Balance:      totals.Balance,
	}, nil
}

// Submit validates the reservation, persists the draft record pair, then
// attempts the upstream booking. The draft is written before the network call
// so a failed submission still leaves the customer with a record; on success
// the upstream id takes precedence.
func (s *DefaultService) Submit(ctx context.Context, clientID string, form models.RentalRequest) (*SubmitResult, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}

	vehicle, err := s.API.GetFleetByID(ctx, form.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("fetching vehicle %s: %w", form.VehicleID, err)
	}
	if err := validateVehicle(vehicle); err != nil {
		return nil, err
	}

	company, err := s.API.GetCompanySettings(ctx)
	if err != nil {
		s.Logger.Warn("Falling back to default company settings", zap.Error(err))
		company = models.DefaultCompanySettings()
	}
	template, err := s.API.GetDefaultAgreementTemplate(ctx)
	if err != nil {
		s.Logger.Warn("Falling back to default agreement template", zap.Error(err))
		template = nil
	}

	draft := BuildDraft(form, *vehicle, company, template, s.now())
	if err := s.Drafts.SaveDraftBooking(ctx, clientID, &draft.Booking); err != nil {
		s.Logger.Error("Failed to persist draft booking", zap.String("clientID", clientID), zap.Error(err))
	}
	if err := s.Drafts.SaveDraftAgreement(ctx, clientID, &draft.Agreement); err != nil {
		s.Logger.Error("Failed to persist draft agreement", zap.String("clientID", clientID), zap.Error(err))
	}

	serverID, err := s.API.CreateBooking(ctx, buildPayload(form, *vehicle))
	if err != nil {
		s.Logger.Error("Booking submission failed, serving draft record",
			zap.String("clientID", clientID),
			zap.String("draftID", draft.Booking.ID),
			zap.Error(err))
		return &SubmitResult{BookingID: draft.Booking.ID, Draft: true}, nil
	}

	return &SubmitResult{BookingID: serverID, Draft: false}, nil
}

// buildPayload maps the form onto the upstream booking-creation request. The
// first configured pickup location is used for both ends of the trip unless
// the vehicle offers a distinct dropoff.
func buildPayload(form models.RentalRequest, vehicle models.Vehicle) fleetapi.CreateBookingPayload {
	fleetID, _ := strconv.Atoi(vehicle.ID)
	locationID := vehicle.AvailableLocations[0]

	insuranceID := 0
	if form.InsuranceOptionID != models.OwnInsuranceID {
		insuranceID, _ = strconv.Atoi(form.InsuranceOptionID)
	}

	code, _ := ResolveDiscount(form.DiscountCode)

	return fleetapi.CreateBookingPayload{
		FleetID: fleetID,
		Customer: fleetapi.CustomerData{
			FirstName: form.FirstName,
			LastName:  form.LastName,
			Email:     form.Email,
			PhoneNo:   form.CountryCode + form.Phone,
		},
		PickupDatetime:    form.PickupDate + "T" + form.PickupTime + ":00",
		DropoffDatetime:   form.DropoffDate + "T" + form.DropoffTime + ":00",
		PickupLocationID:  locationID,
		DropoffLocationID: locationID,
		InsuranceOptionID: insuranceID,
		ExtraIDs:          form.SelectedExtraIDs(),
		DiscountCode:      code,
	}
}
