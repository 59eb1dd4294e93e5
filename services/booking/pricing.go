package booking

import (
	"math"
	"strings"
	"time"
)

const (
	// DepositRatio is the share of the invoice total collected up front.
	DepositRatio = 0.8

	// PromoCode is the only discount code honored at draft time. Any other
	// code is kept on the invoice but contributes nothing until upstream
	// validates it.
	PromoCode     = "FLEETHQSALE"
	PromoDiscount = 2.00
)

// ComputeDays returns the number of billable rental days between pickup and
// dropoff. Partial days round up and a same-day rental still bills one day.
// The difference is taken as a magnitude, so reversed dates price the same
// as their ordered counterpart.
func ComputeDays(pickup, dropoff time.Time) int {
	diff := dropoff.Sub(pickup)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// ResolveDiscount normalizes a discount code and returns the code to keep on
// the invoice alongside the dollar amount it is worth locally. An empty code
// clears any previous one.
func ResolveDiscount(code string) (string, float64) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return "", 0
	}
	if strings.EqualFold(trimmed, PromoCode) {
		return PromoCode, PromoDiscount
	}
	return trimmed, 0
}

// Totals holds the derived money fields of an invoice.
type Totals struct {
	Subtotal float64
	Total    float64
	Deposit  float64
	Balance  float64
}

// ComputeTotals derives invoice totals from the daily rate, billable days,
// discount and tax. The deposit is a fixed share of the total and the balance
// is whatever remains due at pickup.
func ComputeTotals(dailyRate float64, days int, discount, tax float64) Totals {
	subtotal := dailyRate * float64(days)
	total := subtotal - discount + tax
	deposit := total * DepositRatio
	return Totals{
		Subtotal: subtotal,
		Total:    total,
		Deposit:  deposit,
		Balance:  total - deposit,
	}
}
