package models

// InvoiceItem is one line of an invoice, the rented vehicle priced per day.
type InvoiceItem struct {
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Quantity    int     `json:"quantity"`
	PricePerDay float64 `json:"pricePerDay"`
}

// Invoice is the derived pricing breakdown for a rental. Total, deposit and
// balance are always computed from the other fields, never set independently.
type Invoice struct {
	Number       string        `json:"number"`
	Items        []InvoiceItem `json:"items"`
	Subtotal     float64       `json:"subtotal"`
	Discount     float64       `json:"discount"`
	DiscountCode string        `json:"discountCode"`
	Tax          float64       `json:"tax"`
	Total        float64       `json:"total"`
	Deposit      float64       `json:"deposit"`
	Balance      float64       `json:"balance"`
}
