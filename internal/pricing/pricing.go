// Package pricing derives shopper-facing totals from a cart subtotal using
// fixed business rules. Everything here is a pure function; quotes are
// recomputed on every render and never persisted.
package pricing

import "github.com/shopspring/decimal"

const (
	// FreeShippingThreshold is the subtotal above which shipping is free.
	// The boundary is exclusive: a subtotal of exactly 200 still ships flat.
	FreeShippingThreshold = 200

	// FlatShippingFee is charged below the free-shipping threshold.
	FlatShippingFee = 20
)

// vatRate is the 5% VAT estimate shown alongside the totals.
var vatRate = decimal.NewFromFloat(0.05)

// Quote is the price breakdown for a cart. VAT is an estimate displayed for
// transparency; product prices are treated as VAT-inclusive, so Total is
// subtotal plus shipping only.
type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	VAT      float64 `json:"vat"`
	Total    float64 `json:"total"`
}

// QuoteFor computes the quote for the given subtotal. An empty cart ships
// free regardless of subtotal.
func QuoteFor(subtotal float64, empty bool) Quote {
	sub := decimal.NewFromFloat(subtotal)

	shipping := decimal.Zero
	if !empty && sub.LessThanOrEqual(decimal.NewFromInt(FreeShippingThreshold)) {
		shipping = decimal.NewFromInt(FlatShippingFee)
	}

	// Round is half away from zero, which is half-up for non-negative
	// subtotals.
	vat := sub.Mul(vatRate).Round(0)

	total := sub.Add(shipping)

	return Quote{
		Subtotal: sub.InexactFloat64(),
		Shipping: shipping.InexactFloat64(),
		VAT:      vat.InexactFloat64(),
		Total:    total.InexactFloat64(),
	}
}

// DiscountPercent is the rounded percentage saved against an original price,
// for display badges. Zero when there is no meaningful markdown.
func DiscountPercent(originalPrice, price float64) int {
	if originalPrice <= 0 || price >= originalPrice {
		return 0
	}
	orig := decimal.NewFromFloat(originalPrice)
	saved := orig.Sub(decimal.NewFromFloat(price))
	pct := saved.Div(orig).Mul(decimal.NewFromInt(100)).Round(0)
	return int(pct.IntPart())
}
