package receipt

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amountOf(t *testing.T, text string) (decimal.Decimal, bool) {
	t.Helper()
	return extractAmount(Segment(text))
}

func TestAmountTotalLabelOutranksBareCurrency(t *testing.T) {
	amt, ok := amountOf(t, "SuperMarket\n₪ 99.00\nTotal: 45.90\nsome footer\nmore footer")
	require.True(t, ok)
	assert.True(t, amt.Equal(decimal.RequireFromString("45.90")), "got %s", amt)
}

func TestAmountSubtotalAvoided(t *testing.T) {
	amt, ok := amountOf(t, "Store\nSubtotal: 80.00\nTotal: 22.00")
	require.True(t, ok)
	assert.True(t, amt.Equal(decimal.RequireFromString("22.00")), "got %s", amt)
}

func TestAmountAvoidedLineNeverSelected(t *testing.T) {
	// Even with no other amount anywhere, a subtotal line must not win,
	// not even through the bare-number fallback.
	amt, ok := amountOf(t, "Some Store\nSubtotal: 80.00")
	assert.False(t, ok)
	assert.True(t, amt.IsZero(), "got %s", amt)
}

func TestAmountEqualPriorityLaterLineWins(t *testing.T) {
	text := "Store\nline\nTotal: 10.00\nline\nline\nTotal: 22.50\nline\nline\nline\nline"
	amt, ok := amountOf(t, text)
	require.True(t, ok)
	assert.True(t, amt.Equal(decimal.RequireFromString("22.50")), "got %s", amt)
}

func TestAmountHebrewTotalLabel(t *testing.T) {
	amt, ok := amountOf(t, "שופרסל\nלחם 8.90\nסה\"כ לתשלום: 52.30")
	require.True(t, ok)
	assert.True(t, amt.Equal(decimal.RequireFromString("52.30")), "got %s", amt)
}

func TestAmountBareNumberFallback(t *testing.T) {
	amt, ok := amountOf(t, "Corner Kiosk\nthanks for visiting\n45.00")
	require.True(t, ok)
	assert.True(t, amt.Equal(decimal.RequireFromString("45.00")), "got %s", amt)
}

func TestAmountImplausibleValueDiscarded(t *testing.T) {
	amt, ok := amountOf(t, "Total: 99999.00")
	assert.False(t, ok)
	assert.True(t, amt.IsZero())
}

func TestAmountLateCurrencyBeatsEarlyCurrency(t *testing.T) {
	// Same pattern tier: the positional bonus and the later-line tie-break
	// both point at the trailing amount.
	text := "Store\n₪ 50.00\nline\nline\nline\nline\nline\nline\n₪ 20.00\nline"
	amt, ok := amountOf(t, text)
	require.True(t, ok)
	assert.True(t, amt.Equal(decimal.RequireFromString("20.00")), "got %s", amt)
}

func TestAmountGroupedThousands(t *testing.T) {
	amt, ok := amountOf(t, "Office chairs\nTotal: ₪ 1,234.50")
	require.True(t, ok)
	assert.True(t, amt.Equal(decimal.RequireFromString("1234.50")), "got %s", amt)
}

func TestAmountEmptyInput(t *testing.T) {
	amt, ok := extractAmount(nil)
	assert.False(t, ok)
	assert.True(t, amt.IsZero())
}
