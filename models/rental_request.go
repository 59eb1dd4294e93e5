package models

import "strconv"

// ExtraSelection is one chosen add-on. An extra with Quantity 0 is treated the
// same as a disabled one.
type ExtraSelection struct {
	Enabled  bool `json:"enabled"`
	Quantity int  `json:"quantity"`
}

// CardDetails are collected by the payment form but never forwarded to the
// booking API.
type CardDetails struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

// RentalRequest is the in-progress booking form as submitted by the site.
type RentalRequest struct {
	VehicleID   string `json:"vehicleId"`
	PickupDate  string `json:"pickupDate"` // YYYY-MM-DD
	DropoffDate string `json:"dropoffDate"`
	PickupTime  string `json:"pickupTime"` // HH:MM
	DropoffTime string `json:"dropoffTime"`

	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CountryCode string `json:"countryCode"`

	// InsuranceOptionID is an upstream option id, or OwnInsuranceID.
	InsuranceOptionID string `json:"insuranceOptionId"`

	Extras       map[string]ExtraSelection `json:"extras"`
	DiscountCode string                    `json:"discountCode"`

	Payment CardDetails `json:"payment"`
}

// SelectedExtraIDs returns the numeric ids of the enabled extras.
func (r RentalRequest) SelectedExtraIDs() []int {
	var ids []int
	for id, sel := range r.Extras {
		if !sel.Enabled || sel.Quantity == 0 {
			continue
		}
		if n, err := strconv.Atoi(id); err == nil {
			ids = append(ids, n)
		}
	}
	return ids
}
