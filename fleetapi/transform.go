package fleetapi

import (
	"strconv"
	"time"

	"fleethq/models"
)

// Wire shapes as returned by the fleet-management backend.

type apiVehicleImage struct {
	ID          int    `json:"id"`
	Image       string `json:"image"`
	IsThumbnail bool   `json:"is_thumbnail"`
}

type apiBookingPrice struct {
	ID          int     `json:"id"`
	PricePerDay float64 `json:"price_per_day"`
}

type apiBookingRule struct {
	ID               int     `json:"id"`
	AvailableAt      []int   `json:"available_at"`
	MilesPerDay      float64 `json:"miles_per_day"`
	MilesOverageRate float64 `json:"miles_overage_rate"`
}

type apiVehicle struct {
	ID           int               `json:"id"`
	Name         string            `json:"name"`
	Year         int               `json:"year"`
	PlateNumber  string            `json:"plate_number"`
	VINNumber    string            `json:"vin_number"`
	Seats        int               `json:"seats"`
	Doors        int               `json:"doors"`
	Transmission string            `json:"transmission"`
	FuelType     string            `json:"fuel_type"`
	Location     string            `json:"location"`
	Description  string            `json:"description"`
	Status       string            `json:"status"`
	Images       []apiVehicleImage `json:"images"`
	BookingPrice *apiBookingPrice  `json:"booking_price"`
	BookingRule  *apiBookingRule   `json:"booking_rule"`
	// Flat field from the list endpoint.
	PricePerDay float64 `json:"price_per_day"`
}

type apiPaginatedVehicles struct {
	Count    int          `json:"count"`
	Next     *string      `json:"next"`
	Previous *string      `json:"previous"`
	Results  []apiVehicle `json:"results"`
}

type apiInsuranceOption struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	PricePerDay  float64  `json:"price_per_day"`
	CoverageType string   `json:"coverage_type"`
	Features     []string `json:"features"`
}

type apiExtra struct {
	ID          int     `json:"id"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Period      string  `json:"period"` // per_day or per_trip
}

type apiCompany struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	PhoneNo        string  `json:"phone_no"`
	Country        string  `json:"country"`
	CompanyPicture *string `json:"company_picture"`
}

func transformVehicle(v apiVehicle) models.Vehicle {
	mainImage := models.PlaceholderImage
	images := make([]string, 0, len(v.Images))
	for _, img := range v.Images {
		images = append(images, img.Image)
		if img.IsThumbnail {
			mainImage = img.Image
		}
	}
	if mainImage == models.PlaceholderImage && len(images) > 0 {
		mainImage = images[0]
	}
	if len(images) == 0 {
		images = []string{mainImage}
	}

	// Price can be nested in booking_price or flat at top level.
	pricePerDay := v.PricePerDay
	if v.BookingPrice != nil && v.BookingPrice.PricePerDay > 0 {
		pricePerDay = v.BookingPrice.PricePerDay
	}

	out := models.Vehicle{
		ID:           strconv.Itoa(v.ID),
		Name:         v.Name,
		Year:         v.Year,
		Image:        mainImage,
		Images:       images,
		Location:     v.Location,
		Seats:        v.Seats,
		Doors:        v.Doors,
		Transmission: v.Transmission,
		FuelType:     v.FuelType,
		PricePerDay:  pricePerDay,
		LicensePlate: v.PlateNumber,
		VIN:          v.VINNumber,
		Description:  v.Description,
		Status:       v.Status,
	}
	if out.Name == "" {
		out.Name = "Unknown Vehicle"
	}
	if out.Year == 0 {
		out.Year = time.Now().Year()
	}
	if out.Seats == 0 {
		out.Seats = 4
	}
	if out.Transmission == "" {
		out.Transmission = "Automatic"
	}
	if out.FuelType == "" {
		out.FuelType = "Gasoline"
	}
	if v.BookingRule != nil {
		out.AvailableLocations = v.BookingRule.AvailableAt
		out.MilesPerDay = v.BookingRule.MilesPerDay
		out.MilesOverageRate = v.BookingRule.MilesOverageRate
	}
	return out
}

func transformInsuranceOption(o apiInsuranceOption) models.InsuranceOption {
	features := o.Features
	if features == nil {
		features = []string{}
	}
	return models.InsuranceOption{
		ID:          strconv.Itoa(o.ID),
		Title:       o.Name,
		Price:       o.PricePerDay,
		Description: o.Description,
		Features:    features,
	}
}

func transformExtra(e apiExtra) models.Extra {
	unit := "/trip"
	if e.Period == "per_day" {
		unit = "/day"
	}
	return models.Extra{
		ID:          strconv.Itoa(e.ID),
		Title:       e.Description,
		Description: e.Description,
		Price:       e.Price,
		PriceUnit:   unit,
	}
}
