package pricing_test

import (
	"testing"

	"souq/internal/pricing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteFor_ShippingBoundary(t *testing.T) {
	// Exactly at the threshold still pays the flat fee; the boundary is
	// exclusive.
	quote := pricing.QuoteFor(200, false)
	assert.Equal(t, 20.0, quote.Shipping)
	assert.Equal(t, 220.0, quote.Total)

	quote = pricing.QuoteFor(200.01, false)
	assert.Equal(t, 0.0, quote.Shipping)
	assert.Equal(t, 200.01, quote.Total)

	quote = pricing.QuoteFor(500, false)
	assert.Equal(t, 0.0, quote.Shipping)
	assert.Equal(t, 500.0, quote.Total)
}

func TestQuoteFor_EmptyCartShipsFree(t *testing.T) {
	quote := pricing.QuoteFor(0, true)
	assert.Equal(t, 0.0, quote.Subtotal)
	assert.Equal(t, 0.0, quote.Shipping)
	assert.Equal(t, 0.0, quote.VAT)
	assert.Equal(t, 0.0, quote.Total)
}

func TestQuoteFor_VATRoundsHalfUp(t *testing.T) {
	// 150 * 0.05 = 7.5, rounds up to 8.
	quote := pricing.QuoteFor(150, false)
	assert.Equal(t, 8.0, quote.VAT)

	// 100 * 0.05 = 5 exactly.
	quote = pricing.QuoteFor(100, false)
	assert.Equal(t, 5.0, quote.VAT)

	// 48 * 0.05 = 2.4, rounds down to 2.
	quote = pricing.QuoteFor(48, false)
	assert.Equal(t, 2.0, quote.VAT)
}

func TestQuoteFor_TotalExcludesVAT(t *testing.T) {
	// Prices are VAT-inclusive; the VAT line is informational only.
	quote := pricing.QuoteFor(150, false)
	assert.Equal(t, 150.0, quote.Subtotal)
	assert.Equal(t, 20.0, quote.Shipping)
	assert.Equal(t, 170.0, quote.Total)

	quote = pricing.QuoteFor(4299, false)
	assert.Equal(t, 0.0, quote.Shipping)
	assert.Equal(t, 4299.0, quote.Total)
}

func TestDiscountPercent(t *testing.T) {
	assert.Equal(t, 25, pricing.DiscountPercent(100, 75))
	assert.Equal(t, 33, pricing.DiscountPercent(150, 100))

	// No markdown, no badge.
	assert.Equal(t, 0, pricing.DiscountPercent(100, 100))
	assert.Equal(t, 0, pricing.DiscountPercent(100, 120))
	assert.Equal(t, 0, pricing.DiscountPercent(0, 50))
}
