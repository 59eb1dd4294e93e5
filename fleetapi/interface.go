// Package fleetapi talks to the remote fleet-management REST backend and
// transforms its wire shapes into the site's view models. A fixture-backed
// implementation serves the static/demo catalog.
package fleetapi

import (
	"context"

	"fleethq/models"
)

// ListFleetsParams filter and page the catalog listing.
type ListFleetsParams struct {
	Page int
	Name string
}

// CustomerData is the customer record sent on guest registration.
type CustomerData struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	PhoneNo   string `json:"phone_no"`
}

// CreateBookingPayload is the booking-creation request.
type CreateBookingPayload struct {
	FleetID           int
	Customer          CustomerData
	PickupDatetime    string
	DropoffDatetime   string
	PickupLocationID  int
	DropoffLocationID int
	InsuranceOptionID int // 0 when the customer brings their own insurance
	ExtraIDs          []int
	DiscountCode      string
}

// FleetAPI is the upstream backend as consumed by this service.
type FleetAPI interface {
	ListFleets(ctx context.Context, params ListFleetsParams) (*models.VehiclePage, error)
	GetFleetByID(ctx context.Context, id string) (*models.Vehicle, error)
	GetInsuranceOptions(ctx context.Context) ([]models.InsuranceOption, error)
	GetFleetExtras(ctx context.Context, fleetID string) ([]models.Extra, error)
	GetCompanySettings(ctx context.Context) (models.CompanySettings, error)
	GetDefaultAgreementTemplate(ctx context.Context) (*models.AgreementTemplate, error)

	CreateCustomer(ctx context.Context, customer CustomerData) (int, error)
	CreateBooking(ctx context.Context, payload CreateBookingPayload) (string, error)
	GetBookingByID(ctx context.Context, id string) (*models.Booking, error)

	GetAgreementByID(ctx context.Context, id string) (*models.Agreement, error)
	GetAgreementByBookingID(ctx context.Context, bookingID string) (*models.Agreement, error)
	AcceptAgreement(ctx context.Context, id string, signatureImage string) (*models.Agreement, error)
}
