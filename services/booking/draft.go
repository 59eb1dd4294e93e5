package booking

import (
	"fmt"
	"strings"
	"time"

	"fleethq/models"
)

// Draft pairs the provisional booking with its provisional agreement. Both are
// built locally so the customer keeps a usable record even when the upstream
// submission never lands.
type Draft struct {
	Booking   models.Booking
	Agreement models.Agreement
}

// BuildDraft assembles a draft booking and agreement from the reservation form
// and the vehicle being booked. Company and template fall back to packaged
// defaults when the upstream records are unavailable.
func BuildDraft(form models.RentalRequest, vehicle models.Vehicle, company models.CompanySettings, template *models.AgreementTemplate, now time.Time) Draft {
	bookingID := models.NewDraftBookingID(now)
	agreementID := models.NewDraftAgreementID(now)

	pickup := parseFormDate(form.PickupDate)
	dropoff := parseFormDate(form.DropoffDate)
	days := ComputeDays(pickup, dropoff)

	code, discount := ResolveDiscount(form.DiscountCode)
	totals := ComputeTotals(vehicle.PricePerDay, days, discount, 0)

	invoice := models.Invoice{
		Number: bookingID,
		Items: []models.InvoiceItem{{
			Name:        vehicle.Name,
			Image:       vehicleImage(vehicle),
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
	}

	if company.Name == "" {
		company = models.DefaultCompanySettings()
	}
	tpl := models.DefaultAgreementTemplate()
	if template != nil {
		tpl = *template
	}

	customerName := strings.TrimSpace(form.FirstName + " " + form.LastName)

	booking := models.Booking{
		ID:     bookingID,
		Status: models.BookingStatusPending,
		Vehicle: models.VehicleSnapshot{
			Name:         vehicle.Name,
			LicensePlate: vehicle.LicensePlate,
			VIN:          vehicle.VIN,
			Image:        vehicleImage(vehicle),
			Year:         vehicle.Year,
		},
		Customer: models.CustomerSnapshot{
			Name:  customerName,
			Email: form.Email,
			Phone: form.CountryCode + form.Phone,
		},
		BookedOn: formatLongDate(now),
		PickUp: models.TripPoint{
			Address: vehicle.Location,
			Date:    formatDisplayDate(form.PickupDate),
			Time:    formatDisplayTime(form.PickupTime),
		},
		DropOff: models.TripPoint{
			Address: vehicle.Location,
			Date:    formatDisplayDate(form.DropoffDate),
			Time:    formatDisplayTime(form.DropoffTime),
		},
		Invoice: invoice,
		Verifications: models.Verifications{
			IDVerification:        models.VerificationPending,
			InsuranceVerification: models.VerificationPending,
		},
		AgreementID:     agreementID,
		AgreementStatus: models.AgreementStatusPending,
	}

	agreement := models.Agreement{
		ID:      agreementID,
		Status:  models.AgreementStatusPending,
		Company: company,
		Customer: models.AgreementCustomer{
			Name:          customerName,
			HomeAddress:   "N/A",
			City:          "N/A",
			State:         "N/A",
			Zip:           "N/A",
			Phone:         form.CountryCode + form.Phone,
			BirthDate:     "N/A",
			LicenseNumber: "N/A",
			LicenseExpiry: "N/A",
		},
		Insurance: draftInsurance(form.InsuranceOptionID),
		Vehicle: models.AgreementVehicle{
			PickupDateTime:  formatDisplayDate(form.PickupDate) + " at " + formatDisplayTime(form.PickupTime),
			DropoffDateTime: formatDisplayDate(form.DropoffDate) + " at " + formatDisplayTime(form.DropoffTime),
			BookedAt:        formatLongDate(now),
			VIN:             orNA(vehicle.VIN),
			VehicleName:     fmt.Sprintf("%d %s", vehicle.Year, vehicle.Name),
			MinimumMiles:    milesAllowance(vehicle.MilesPerDay, days),
			MaximumMiles:    milesAllowance(vehicle.MilesPerDay, days),
			OverageFee:      fmt.Sprintf("$%.2f", vehicle.MilesOverageRate),
		},
		Clauses: tpl.Clauses,
		Template: models.TemplateInfo{
			Title:       tpl.Title,
			Description: tpl.Description,
		},
	}

	return Draft{Booking: booking, Agreement: agreement}
}

func draftInsurance(optionID string) models.AgreementInsurance {
	if optionID == models.OwnInsuranceID {
		return models.AgreementInsurance{
			CarrierName:   "Own Insurance",
			PolicyNumber:  "N/A",
			Expires:       "N/A",
			PolicyDetails: "Customer provided own insurance",
		}
	}
	return models.AgreementInsurance{
		CarrierName:   "Selected Coverage",
		PolicyNumber:  "N/A",
		Expires:       "N/A",
		PolicyDetails: "Coverage selected during booking",
	}
}

func vehicleImage(v models.Vehicle) string {
	if v.Image != "" {
		return v.Image
	}
	return models.PlaceholderImage
}

func milesAllowance(milesPerDay float64, days int) string {
	if milesPerDay <= 0 {
		return "Unlimited"
	}
	return fmt.Sprintf("%.0f miles", milesPerDay*float64(days))
}

func parseFormDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// formatDisplayDate renders a YYYY-MM-DD form date as "Mon. 02 Jan, 2006".
// Unparsable input passes through untouched.
func formatDisplayDate(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("Mon. 02 Jan, 2006")
}

// formatDisplayTime renders an HH:MM form time as "03:04 PM".
func formatDisplayTime(s string) string {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return s
	}
	return t.Format("03:04 PM")
}

// formatLongDate renders a timestamp like "2nd January 2006".
func formatLongDate(t time.Time) string {
	return fmt.Sprintf("%d%s %s", t.Day(), ordinalSuffix(t.Day()), t.Format("January 2006"))
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
