package fleetapi

import (
	"context"
	"errors"
	"strings"

	"fleethq/models"
)

// ErrStaticCatalog is returned for write operations against the demo catalog.
// The submission coordinator treats it like any other upstream failure and
// falls back to the local draft, which is exactly what the demo build wants.
var ErrStaticCatalog = errors.New("static catalog is read-only")

// StaticClient serves the bundled demo fleet without an upstream backend.
type StaticClient struct{}

// NewStaticClient returns the fixture-backed FleetAPI implementation.
func NewStaticClient() *StaticClient {
	return &StaticClient{}
}

var demoVehicles = []models.Vehicle{
	{
		ID:                 "1",
		Name:               "BMW i8",
		Year:               2023,
		Image:              "/images/vehicles/bmw-i8.jpg",
		Images:             []string{"/images/vehicles/bmw-i8.jpg"},
		Location:           "Am Isfeld 19, 22981, NY, New York",
		Seats:              2,
		Transmission:       "Automatic",
		FuelType:           "Hybrid",
		PricePerDay:        50.99,
		LicensePlate:       "LEE-67-889A",
		VIN:                "Z812AHSD812",
		Description:        "A plug-in hybrid sports car with scissor doors and serious presence.",
		AvailableLocations: []int{1},
	},
	{
		ID:                 "2",
		Name:               "Toyota RAV4",
		Year:               2022,
		Image:              "/images/vehicles/toyota-rav4.jpg",
		Images:             []string{"/images/vehicles/toyota-rav4.jpg"},
		Location:           "Am Isfeld 19, 22981, NY, New York",
		Seats:              5,
		Transmission:       "Automatic",
		FuelType:           "Gasoline",
		PricePerDay:        64.50,
		LicensePlate:       "RAV-44-120B",
		VIN:                "JTMRJREV8HD102938",
		Description:        "Clean, reliable SUV for real adventures. No luxury markup, just honest transportation.",
		AvailableLocations: []int{1},
		MilesPerDay:        250,
		MilesOverageRate:   0.45,
	},
	{
		ID:                 "3",
		Name:               "Ford Transit",
		Year:               2021,
		Image:              "/images/vehicles/ford-transit.jpg",
		Images:             []string{"/images/vehicles/ford-transit.jpg"},
		Location:           "Am Isfeld 19, 22981, NY, New York",
		Seats:              8,
		Transmission:       "Automatic",
		FuelType:           "Diesel",
		PricePerDay:        89.00,
		LicensePlate:       "TRN-08-553C",
		VIN:                "1FTBW2CM6HKA47215",
		Description:        "Room for the whole crew and all the gear.",
		AvailableLocations: []int{1},
	},
}

var demoInsuranceOptions = []models.InsuranceOption{
	{
		ID:       models.OwnInsuranceID,
		Title:    "I have my own insurance",
		Price:    0,
		Features: []string{"Use your personal coverage"},
	},
	{
		ID:       "basic",
		Title:    "Basic Protection",
		Price:    14.99,
		Features: []string{"Collision damage waiver", "Theft protection"},
	},
	{
		ID:    "premium",
		Title: "Premium Protection",
		Price: 29.99,
		Features: []string{
			"Collision damage waiver",
			"Theft protection",
			"Personal accident insurance",
			"Roadside assistance 24/7",
		},
	},
}

// demoExtras double as the default add-ons the REST client serves when a
// vehicle has none configured upstream.
var demoExtras = []models.Extra{
	{
		ID:          "driver",
		Title:       "Additional Driver",
		Description: "Add another driver to your rental",
		Price:       12.99,
		PriceUnit:   "/day & driver",
		HasQuantity: true,
	},
	{
		ID:          "gps",
		Title:       "GPS Navigation",
		Description: "Never get lost with our GPS system",
		Price:       9.99,
		PriceUnit:   "/day",
	},
	{
		ID:          "child-seat",
		Title:       "Child Seat",
		Description: "Safety seat for children under 12",
		Price:       7.99,
		PriceUnit:   "/day",
		HasQuantity: true,
	},
	{
		ID:          "wifi",
		Title:       "Mobile WiFi Hotspot",
		Description: "Stay connected on the go",
		Price:       5.99,
		PriceUnit:   "/day",
	},
}

func (s *StaticClient) ListFleets(ctx context.Context, params ListFleetsParams) (*models.VehiclePage, error) {
	results := make([]models.Vehicle, 0, len(demoVehicles))
	for _, v := range demoVehicles {
		if params.Name != "" && !strings.Contains(strings.ToLower(v.Name), strings.ToLower(params.Name)) {
			continue
		}
		results = append(results, v)
	}
	return &models.VehiclePage{Count: len(results), Results: results}, nil
}

func (s *StaticClient) GetFleetByID(ctx context.Context, id string) (*models.Vehicle, error) {
	for _, v := range demoVehicles {
		if v.ID == id {
			vehicle := v
			return &vehicle, nil
		}
	}
	return nil, errors.New("vehicle not found")
}

func (s *StaticClient) GetInsuranceOptions(ctx context.Context) ([]models.InsuranceOption, error) {
	return demoInsuranceOptions, nil
}

func (s *StaticClient) GetFleetExtras(ctx context.Context, fleetID string) ([]models.Extra, error) {
	return demoExtras, nil
}

func (s *StaticClient) GetCompanySettings(ctx context.Context) (models.CompanySettings, error) {
	return models.DefaultCompanySettings(), nil
}

func (s *StaticClient) GetDefaultAgreementTemplate(ctx context.Context) (*models.AgreementTemplate, error) {
	template := models.DefaultAgreementTemplate()
	return &template, nil
}

func (s *StaticClient) CreateCustomer(ctx context.Context, customer CustomerData) (int, error) {
	return 0, ErrStaticCatalog
}

func (s *StaticClient) CreateBooking(ctx context.Context, payload CreateBookingPayload) (string, error) {
	return "", ErrStaticCatalog
}

func (s *StaticClient) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, ErrStaticCatalog
}

func (s *StaticClient) GetAgreementByID(ctx context.Context, id string) (*models.Agreement, error) {
	return nil, ErrStaticCatalog
}

func (s *StaticClient) GetAgreementByBookingID(ctx context.Context, bookingID string) (*models.Agreement, error) {
	return nil, ErrStaticCatalog
}

func (s *StaticClient) AcceptAgreement(ctx context.Context, id string, signatureImage string) (*models.Agreement, error) {
	return nil, ErrStaticCatalog
}
