package fleetapi

import (
	"context"
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"fleethq/models"
)

type apiBookingCustomer struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	PhoneNo   string `json:"phone_no"`
}

type apiBookingFleet struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	LicensePlate string   `json:"license_plate"`
	VIN          string   `json:"vin"`
	Image        string   `json:"image"`
	Images       []string `json:"images"`
	PricePerDay  float64  `json:"price_per_day"`
	Year         int      `json:"year"`
}

type apiLocation struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type apiBooking struct {
	ID              int                `json:"id"`
	Status          string             `json:"status"`
	Customer        apiBookingCustomer `json:"customer"`
	Fleet           apiBookingFleet    `json:"fleet"`
	PickupDatetime  string             `json:"pickup_datetime"`
	DropoffDatetime string             `json:"dropoff_datetime"`
	PickupLocation  *apiLocation       `json:"pickup_location"`
	DropoffLocation *apiLocation       `json:"dropoff_location"`
	InsuranceOption *struct {
		ID          int     `json:"id"`
		Name        string  `json:"name"`
		Description string  `json:"description"`
		PricePerDay float64 `json:"price_per_day"`
	} `json:"insurance_option"`
	TotalPrice     float64 `json:"total_price"`
	DepositAmount  float64 `json:"deposit_amount"`
	DiscountAmount float64 `json:"discount_amount"`
	DiscountCode   string  `json:"discount_code"`
	TaxAmount      float64 `json:"tax_amount"`
	CreatedAt      string  `json:"created_at"`

	IDVerificationStatus        string `json:"id_verification_status"`
	InsuranceVerificationStatus string `json:"insurance_verification_status"`

	Agreement *struct {
		ID     int    `json:"id"`
		Status string `json:"status"`
	} `json:"agreement"`
}

type apiCreateBookingPayload struct {
	Customer                   int    `json:"customer"`
	FleetID                    int    `json:"fleet_id"`
	PickupDatetime             string `json:"pickup_datetime"`
	DropoffDatetime            string `json:"dropoff_datetime"`
	PickupLocationID           int    `json:"pickup_location_id"`
	DropoffLocationID          int    `json:"dropoff_location_id"`
	ReturnCarToDifferentBranch bool   `json:"return_car_to_different_branch"`
	ExtraIDs                   []int  `json:"extra_ids,omitempty"`
	InsuranceSelected          bool   `json:"insurance_selected"`
	CDWCover                   bool   `json:"cdw_cover"`
	RCLICover                  bool   `json:"rcli_cover"`
	SLICover                   bool   `json:"sli_cover"`
	PAICover                   bool   `json:"pai_cover"`
	FuelPrePurchase            bool   `json:"fuel_pre_purchase"`
	Notes                      string `json:"notes"`
	MileUsed                   int    `json:"mile_used"`
	FleetSettings              string `json:"fleet_settings"`
}

type apiRegisterPayload struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone"`
	Company         int    `json:"company,omitempty"`
}

const passwordChars = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789!@#$%"

// randomPassword generates a throwaway credential for guest checkout. The
// suffix keeps it valid under the backend's complexity rules.
func randomPassword() string {
	buf := make([]byte, 12)
	max := big.NewInt(int64(len(passwordChars)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken.
			panic(fmt.Sprintf("failed to generate password: %v", err))
		}
		buf[i] = passwordChars[n.Int64()]
	}
	return string(buf) + "1Aa!"
}

// CreateCustomer registers a guest customer and returns the new customer id.
func (c *Client) CreateCustomer(ctx context.Context, customer CustomerData) (int, error) {
	password := randomPassword()
	payload := apiRegisterPayload{
		Email:           customer.Email,
		Password:        password,
		ConfirmPassword: password,
		FirstName:       customer.FirstName,
		LastName:        customer.LastName,
		Phone:           customer.PhoneNo,
	}
	if c.CompanyID != "" {
		if companyID, err := strconv.Atoi(c.CompanyID); err == nil {
			payload.Company = companyID
		}
	}

	var out struct {
		ID int `json:"id"`
	}
	if err := c.postJSON(ctx, "/api/users-auth/register/", payload, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

// CreateBooking creates the customer first, then the booking referencing it,
// and returns the server-issued booking id.
func (c *Client) CreateBooking(ctx context.Context, payload CreateBookingPayload) (string, error) {
	customerID, err := c.CreateCustomer(ctx, payload.Customer)
	if err != nil {
		return "", fmt.Errorf("failed to create customer: %w", err)
	}
	c.Logger.Debug("Created guest customer", zap.Int("customerID", customerID))

	dropoffLocation := payload.DropoffLocationID
	if dropoffLocation == 0 {
		dropoffLocation = payload.PickupLocationID
	}

	body := apiCreateBookingPayload{
		Customer:          customerID,
		FleetID:           payload.FleetID,
		PickupDatetime:    payload.PickupDatetime,
		DropoffDatetime:   payload.DropoffDatetime,
		PickupLocationID:  payload.PickupLocationID,
		DropoffLocationID: dropoffLocation,
		ExtraIDs:          payload.ExtraIDs,
		InsuranceSelected: payload.InsuranceOptionID != 0,
	}

	var out apiBooking
	if err := c.postJSON(ctx, "/api/bookings/", body, &out); err != nil {
		return "", fmt.Errorf("failed to create booking: %w", err)
	}
	return strconv.Itoa(out.ID), nil
}

// GetBookingByID fetches a confirmed booking and reshapes it for the site.
func (c *Client) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	var raw apiBooking
	if err := c.getJSON(ctx, "/api/bookings/"+url.PathEscape(id)+"/", nil, &raw); err != nil {
		return nil, err
	}
	booking := transformBooking(raw)
	return &booking, nil
}

func parseAPITime(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseDateOnly(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func formatBookingDate(s string) string {
	t, ok := parseAPITime(s)
	if !ok {
		return "N/A"
	}
	return t.Format("Mon. 02 Jan, 2006")
}

func formatBookingTime(s string) string {
	t, ok := parseAPITime(s)
	if !ok {
		return "N/A"
	}
	return t.Format("03:04 PM")
}

func ordinalSuffix(day int) string {
	switch day {
	case 1, 21, 31:
		return "st"
	case 2, 22:
		return "nd"
	case 3, 23:
		return "rd"
	}
	return "th"
}

func formatCreatedDate(s string) string {
	t, ok := parseAPITime(s)
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%d%s %s %d", t.Day(), ordinalSuffix(t.Day()), t.Month().String(), t.Year())
}

// rentalDays mirrors the pricing calculator's day count so an invoice can be
// reconstructed from the raw booking when the backend omits derived amounts.
func rentalDays(pickup, dropoff string) int {
	start, okStart := parseAPITime(pickup)
	end, okEnd := parseAPITime(dropoff)
	if !okStart || !okEnd {
		return 1
	}
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

func locationAddress(loc *apiLocation) string {
	if loc == nil {
		return "N/A"
	}
	if loc.Address != "" {
		return loc.Address
	}
	if loc.Name != "" {
		return loc.Name
	}
	return "N/A"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func transformBooking(raw apiBooking) models.Booking {
	days := rentalDays(raw.PickupDatetime, raw.DropoffDatetime)
	subtotal := raw.Fleet.PricePerDay * float64(days)
	total := raw.TotalPrice
	if total == 0 {
		total = subtotal - raw.DiscountAmount + raw.TaxAmount
	}
	deposit := raw.DepositAmount
	if deposit == 0 {
		deposit = total * 0.8
	}

	image := raw.Fleet.Image
	if image == "" && len(raw.Fleet.Images) > 0 {
		image = raw.Fleet.Images[0]
	}
	if image == "" {
		image = models.PlaceholderImage
	}

	idVerification := raw.IDVerificationStatus
	if idVerification == "" {
		idVerification = models.VerificationPending
	}
	insuranceVerification := raw.InsuranceVerificationStatus
	if insuranceVerification == "" {
		insuranceVerification = models.VerificationPending
	}

	booking := models.Booking{
		ID:     strconv.Itoa(raw.ID),
		Status: raw.Status,
		Vehicle: models.VehicleSnapshot{
			Name:         raw.Fleet.Name,
			LicensePlate: orNA(raw.Fleet.LicensePlate),
			VIN:          orNA(raw.Fleet.VIN),
			Image:        image,
			Year:         raw.Fleet.Year,
		},
		Customer: models.CustomerSnapshot{
			Name:  raw.Customer.FirstName + " " + raw.Customer.LastName,
			Email: raw.Customer.Email,
			Phone: orNA(raw.Customer.PhoneNo),
		},
		BookedOn: formatCreatedDate(raw.CreatedAt),
		PickUp: models.TripPoint{
			Address: locationAddress(raw.PickupLocation),
			Date:    formatBookingDate(raw.PickupDatetime),
			Time:    formatBookingTime(raw.PickupDatetime),
		},
		DropOff: models.TripPoint{
			Address: locationAddress(raw.DropoffLocation),
			Date:    formatBookingDate(raw.DropoffDatetime),
			Time:    formatBookingTime(raw.DropoffDatetime),
		},
		Invoice: models.Invoice{
			Number: strconv.Itoa(raw.ID),
			Items: []models.InvoiceItem{
				{
					Name:        fmt.Sprintf("%s - %s", raw.Fleet.Name, orNA(raw.Fleet.LicensePlate)),
					Image:       image,
					Quantity:    days,
					PricePerDay: raw.Fleet.PricePerDay,
				},
			},
			Subtotal:     subtotal,
			Discount:     raw.DiscountAmount,
			DiscountCode: raw.DiscountCode,
			Tax:          raw.TaxAmount,
			Total:        total,
			Deposit:      deposit,
			Balance:      total - deposit,
		},
		Verifications: models.Verifications{
			IDVerification:        idVerification,
			InsuranceVerification: insuranceVerification,
		},
	}
	if raw.Agreement != nil {
		booking.AgreementID = strconv.Itoa(raw.Agreement.ID)
		booking.AgreementStatus = raw.Agreement.Status
	}
	return booking
}
