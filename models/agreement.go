package models

import "time"

// Agreement statuses.
const (
	AgreementStatusPending = "pending"
	AgreementStatusSigned  = "signed"
)

// AgreementCustomer holds the renter's details as printed on the agreement.
type AgreementCustomer struct {
	Name          string `json:"name"`
	HomeAddress   string `json:"homeAddress"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip"`
	Phone         string `json:"phone"`
	BirthDate     string `json:"birthDate"`
	LicenseNumber string `json:"licenseNumber"`
	LicenseExpiry string `json:"licenseExpiry"`
}

// AgreementInsurance holds the coverage details printed on the agreement.
type AgreementInsurance struct {
	CarrierName   string `json:"carrierName"`
	PolicyNumber  string `json:"policyNumber"`
	Expires       string `json:"expires"`
	PolicyDetails string `json:"policyDetails"`
}

// AgreementVehicle holds the rental terms for the vehicle.
type AgreementVehicle struct {
	PickupDateTime  string `json:"pickupDateTime"`
	DropoffDateTime string `json:"dropoffDateTime"`
	BookedAt        string `json:"bookedAt"`
	VIN             string `json:"vin"`
	VehicleName     string `json:"vehicleName"`
	MinimumMiles    string `json:"minimumMiles"`
	MaximumMiles    string `json:"maximumMiles"`
	OverageFee      string `json:"overageFee"`
}

// TemplateInfo identifies the agreement template in use.
type TemplateInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Agreement is the unified rental-agreement view, draft or server-confirmed.
// Once Status is signed, SignatureImage and SignedAt are always set and the
// agreement is rendered read-only.
type Agreement struct {
	ID             string             `json:"id"`
	Status         string             `json:"status"`
	SignedAt       *time.Time         `json:"signedAt"`
	SignatureImage *string            `json:"signatureImage"`
	Company        CompanySettings    `json:"company"`
	Customer       AgreementCustomer  `json:"customer"`
	Insurance      AgreementInsurance `json:"insurance"`
	Vehicle        AgreementVehicle   `json:"vehicle"`
	Clauses        []Clause           `json:"clauses"`
	Template       TemplateInfo       `json:"template"`
}
