package models

// PlaceholderImage is shown when a vehicle has no uploaded photos.
const PlaceholderImage = "/images/vehicles/car_placeholder.png"

// Vehicle is the catalog view of a rentable vehicle.
type Vehicle struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Year               int      `json:"year"`
	Image              string   `json:"image"`
	Images             []string `json:"images"`
	Location           string   `json:"location"`
	Seats              int      `json:"seats"`
	Doors              int      `json:"doors,omitempty"`
	Transmission       string   `json:"transmission"`
	FuelType           string   `json:"fuelType"`
	PricePerDay        float64  `json:"pricePerDay"`
	LicensePlate       string   `json:"licensePlate"`
	VIN                string   `json:"vin"`
	Description        string   `json:"description"`
	Status             string   `json:"status,omitempty"`
	AvailableLocations []int    `json:"availableLocations,omitempty"`

	// Mileage rules
	MilesPerDay      float64 `json:"milesPerDay,omitempty"`
	MilesOverageRate float64 `json:"milesOverageRate,omitempty"`
}

// VehiclePage is one page of catalog results.
type VehiclePage struct {
	Count    int       `json:"count"`
	Next     string    `json:"next,omitempty"`
	Previous string    `json:"previous,omitempty"`
	Results  []Vehicle `json:"results"`
}

// InsuranceOption is a coverage choice offered during booking.
type InsuranceOption struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Description string   `json:"description,omitempty"`
	Features    []string `json:"features"`
}

// OwnInsuranceID marks the "I have my own insurance" sentinel option.
const OwnInsuranceID = "own"

// Extra is an optional add-on offered with a vehicle.
type Extra struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	PriceUnit   string  `json:"priceUnit"`
	HasQuantity bool    `json:"hasQuantity"`
}
