package fleetapi

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"fleethq/models"
)

type apiClause struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type apiTemplateClause struct {
	ID     int       `json:"id"`
	Clause apiClause `json:"clause"`
	Order  int       `json:"order"`
}

type apiTemplate struct {
	ID              int                 `json:"id"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	IsActive        bool                `json:"is_active"`
	TemplateClauses []apiTemplateClause `json:"template_clauses"`
}

type apiAgreementBooking struct {
	ID       int `json:"id"`
	Customer struct {
		ID            int    `json:"id"`
		FirstName     string `json:"first_name"`
		LastName      string `json:"last_name"`
		Email         string `json:"email"`
		PhoneNo       string `json:"phone_no"`
		Address       string `json:"address"`
		City          string `json:"city"`
		State         string `json:"state"`
		ZipCode       string `json:"zip_code"`
		DateOfBirth   string `json:"date_of_birth"`
		LicenseNumber string `json:"license_number"`
		LicenseExpiry string `json:"license_expiry"`
	} `json:"customer"`
	Fleet struct {
		ID           int    `json:"id"`
		Name         string `json:"name"`
		VIN          string `json:"vin"`
		LicensePlate string `json:"license_plate"`
		Year         int    `json:"year"`
		Image        string `json:"image"`
	} `json:"fleet"`
	PickupDatetime  string `json:"pickup_datetime"`
	DropoffDatetime string `json:"dropoff_datetime"`
	InsuranceOption *struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		PricePerDay float64 `json:"price_per_day"`
	} `json:"insurance_option"`
	CreatedAt string `json:"created_at"`
}

type apiAgreement struct {
	ID             int                  `json:"id"`
	Booking        int                  `json:"booking"`
	Template       apiTemplate          `json:"template"`
	Status         string               `json:"status"`
	SignedAt       *string              `json:"signed_at"`
	SignatureImage *string              `json:"signature_image"`
	BookingDetails *apiAgreementBooking `json:"booking_details"`
	Company        *apiCompany          `json:"company"`
}

func formatAgreementDate(s string) string {
	t, ok := parseAPITime(s)
	if !ok {
		// Bare dates appear for date_of_birth and license_expiry.
		if d, err := parseDateOnly(s); err == nil {
			return d.Format("January 2, 2006")
		}
		return "N/A"
	}
	return t.Format("January 2, 2006")
}

func formatAgreementDateTime(s string) string {
	t, ok := parseAPITime(s)
	if !ok {
		return "N/A"
	}
	return t.Format("January 2, 2006 3:04 PM")
}

func transformAgreement(raw apiAgreement) models.Agreement {
	company := models.DefaultCompanySettings()
	if raw.Company != nil {
		if raw.Company.Name != "" {
			company.Name = raw.Company.Name
		}
		if raw.Company.Country != "" {
			company.Address = raw.Company.Country
		}
		if raw.Company.Email != "" {
			company.Email = raw.Company.Email
		}
		if raw.Company.PhoneNo != "" {
			company.Phone = raw.Company.PhoneNo
		}
		if raw.Company.CompanyPicture != nil {
			company.Logo = *raw.Company.CompanyPicture
		}
	}

	customer := models.AgreementCustomer{
		Name: "N/A", HomeAddress: "N/A", City: "N/A", State: "N/A", Zip: "N/A",
		Phone: "N/A", BirthDate: "N/A", LicenseNumber: "N/A", LicenseExpiry: "N/A",
	}
	insurance := models.AgreementInsurance{
		CarrierName:   "Own Insurance",
		PolicyNumber:  "N/A",
		Expires:       "N/A",
		PolicyDetails: "Customer provided own insurance",
	}
	vehicle := models.AgreementVehicle{
		PickupDateTime: "N/A", DropoffDateTime: "N/A", BookedAt: "N/A",
		VIN: "N/A", VehicleName: "N/A",
		MinimumMiles: "Unlimited", MaximumMiles: "Unlimited", OverageFee: "$0.00",
	}

	if b := raw.BookingDetails; b != nil {
		customer = models.AgreementCustomer{
			Name:          b.Customer.FirstName + " " + b.Customer.LastName,
			HomeAddress:   orNA(b.Customer.Address),
			City:          orNA(b.Customer.City),
			State:         orNA(b.Customer.State),
			Zip:           orNA(b.Customer.ZipCode),
			Phone:         orNA(b.Customer.PhoneNo),
			BirthDate:     formatAgreementDate(b.Customer.DateOfBirth),
			LicenseNumber: orNA(b.Customer.LicenseNumber),
			LicenseExpiry: formatAgreementDate(b.Customer.LicenseExpiry),
		}
		if b.InsuranceOption != nil {
			insurance.CarrierName = b.InsuranceOption.Name
			insurance.PolicyDetails = b.InsuranceOption.Description
		}
		vehicle.PickupDateTime = formatAgreementDateTime(b.PickupDatetime)
		vehicle.DropoffDateTime = formatAgreementDateTime(b.DropoffDatetime)
		vehicle.BookedAt = formatAgreementDate(b.CreatedAt)
		vehicle.VIN = orNA(b.Fleet.VIN)
		vehicle.VehicleName = fmt.Sprintf("%d %s", b.Fleet.Year, b.Fleet.Name)
	}

	clauses := make([]models.Clause, 0, len(raw.Template.TemplateClauses))
	ordered := append([]apiTemplateClause(nil), raw.Template.TemplateClauses...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })
	for _, tc := range ordered {
		clauses = append(clauses, models.Clause{
			ID:      tc.Clause.ID,
			Title:   tc.Clause.Title,
			Content: tc.Clause.Content,
		})
	}

	template := models.TemplateInfo{
		Title:       raw.Template.Title,
		Description: raw.Template.Description,
	}
	if template.Title == "" {
		template.Title = "Rental Agreement"
	}

	agreement := models.Agreement{
		ID:             strconv.Itoa(raw.ID),
		Status:         raw.Status,
		SignatureImage: raw.SignatureImage,
		Company:        company,
		Customer:       customer,
		Insurance:      insurance,
		Vehicle:        vehicle,
		Clauses:        clauses,
		Template:       template,
	}
	if raw.SignedAt != nil {
		if t, ok := parseAPITime(*raw.SignedAt); ok {
			agreement.SignedAt = &t
		}
	}
	return agreement
}

// GetAgreementByID fetches a server agreement.
func (c *Client) GetAgreementByID(ctx context.Context, id string) (*models.Agreement, error) {
	var raw apiAgreement
	if err := c.getJSON(ctx, "/api/agreements/agreements/"+url.PathEscape(id)+"/", nil, &raw); err != nil {
		return nil, err
	}
	agreement := transformAgreement(raw)
	return &agreement, nil
}

// GetAgreementByBookingID fetches the agreement attached to a booking. Returns
// nil when the booking has no agreement yet.
func (c *Client) GetAgreementByBookingID(ctx context.Context, bookingID string) (*models.Agreement, error) {
	params := url.Values{}
	params.Set("booking", bookingID)

	var page struct {
		Results []apiAgreement `json:"results"`
	}
	if err := c.getJSON(ctx, "/api/agreements/agreements/", params, &page); err != nil {
		return nil, err
	}
	if len(page.Results) == 0 {
		return nil, nil
	}
	agreement := transformAgreement(page.Results[0])
	return &agreement, nil
}

// AcceptAgreement signs a server agreement with the captured signature image.
func (c *Client) AcceptAgreement(ctx context.Context, id string, signatureImage string) (*models.Agreement, error) {
	body := map[string]any{
		"template_variables": map[string]any{},
		"signature_image":    signatureImage,
	}

	var raw apiAgreement
	if err := c.postJSON(ctx, "/api/agreements/agreements/"+url.PathEscape(id)+"/accept-agreement/", body, &raw); err != nil {
		return nil, err
	}
	agreement := transformAgreement(raw)
	return &agreement, nil
}

// GetDefaultAgreementTemplate fetches the company's active template and its
// ordered clauses. The list endpoint omits clauses, so they are fetched in a
// second call. Returns nil when no company or template is configured.
func (c *Client) GetDefaultAgreementTemplate(ctx context.Context) (*models.AgreementTemplate, error) {
	if c.CompanyID == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("company", c.CompanyID)

	var page struct {
		Results []apiTemplate `json:"results"`
	}
	if err := c.getJSON(ctx, "/api/agreements/templates/", params, &page); err != nil {
		c.Logger.Error("Failed to fetch agreement templates", zap.Error(err))
		return nil, nil
	}
	if len(page.Results) == 0 {
		return nil, nil
	}

	active := page.Results[0]
	for _, t := range page.Results {
		if t.IsActive {
			active = t
			break
		}
	}

	var templateClauses []apiTemplateClause
	path := fmt.Sprintf("/api/agreements/templates/%d/template-clauses/", active.ID)
	if err := c.getJSON(ctx, path, nil, &templateClauses); err != nil {
		c.Logger.Error("Failed to fetch template clauses", zap.Int("templateID", active.ID), zap.Error(err))
		return nil, nil
	}

	sort.SliceStable(templateClauses, func(i, j int) bool {
		return templateClauses[i].Order < templateClauses[j].Order
	})
	clauses := make([]models.Clause, 0, len(templateClauses))
	for _, tc := range templateClauses {
		clauses = append(clauses, models.Clause{
			ID:      tc.Clause.ID,
			Title:   tc.Clause.Title,
			Content: tc.Clause.Content,
		})
	}

	template := models.AgreementTemplate{
		ID:          active.ID,
		Title:       active.Title,
		Description: active.Description,
		Clauses:     clauses,
	}
	if template.Title == "" {
		template.Title = "Vehicle Rental Agreement"
	}
	if template.Description == "" {
		template.Description = "Please review and sign this rental agreement before pickup."
	}
	return &template, nil
}
