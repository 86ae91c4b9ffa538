package receipt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemsStripTrailingPrice(t *testing.T) {
	items := extractItems(Segment("SuperStore\nBread 12.50\nMilk 8.00\nSubtotal: 20.50\nTotal: 22.00"))
	assert.Equal(t, []string{"Bread", "Milk"}, items)
}

func TestItemsCurrencyTaggedPrice(t *testing.T) {
	items := extractItems(Segment("גבינה צהובה 12.90 ₪\nקוטג 6.50 ₪"))
	assert.Equal(t, []string{"גבינה צהובה", "קוטג"}, items)
}

func TestItemsSkipLinesWithoutPrice(t *testing.T) {
	items := extractItems(Segment("Thank you for shopping\nsee you soon"))
	assert.Empty(t, items)
}

func TestItemsSkipShortLines(t *testing.T) {
	items := extractItems(Segment("x1.00\nProper item 4.00"))
	assert.Equal(t, []string{"Proper item"}, items)
}

func TestItemsCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 15; i++ {
		fmt.Fprintf(&b, "Item number %d 3.50\n", i)
	}
	items := extractItems(Segment(b.String()))
	assert.Len(t, items, maxItems)
}
