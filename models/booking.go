package models

// Booking statuses.
const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusSuccessful = "successful"
)

// Verification sub-statuses.
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
)

// VehicleSnapshot is the vehicle as it appeared when the booking was made.
type VehicleSnapshot struct {
	Name         string `json:"name"`
	LicensePlate string `json:"licensePlate"`
	VIN          string `json:"vin"`
	Image        string `json:"image"`
	Year         int    `json:"year"`
}

// CustomerSnapshot is the customer contact captured at booking time.
type CustomerSnapshot struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// TripPoint is a pickup or drop-off stop.
type TripPoint struct {
	Address string `json:"address"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

// Verifications tracks the identity and insurance review of a booking.
type Verifications struct {
	IDVerification        string `json:"idVerification"`
	InsuranceVerification string `json:"insuranceVerification"`
}

// Booking is the unified booking view, whether it came from the draft store or
// from the upstream API.
type Booking struct {
	ID              string           `json:"id"`
	Status          string           `json:"status"`
	Vehicle         VehicleSnapshot  `json:"vehicle"`
	Customer        CustomerSnapshot `json:"customer"`
	BookedOn        string           `json:"bookedOn"`
	PickUp          TripPoint        `json:"pickUp"`
	DropOff         TripPoint        `json:"dropOff"`
	Invoice         Invoice          `json:"invoice"`
	Verifications   Verifications    `json:"verifications"`
	AgreementID     string           `json:"agreementId,omitempty"`
	AgreementStatus string           `json:"agreementStatus,omitempty"`
}
