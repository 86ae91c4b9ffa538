package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyAdditiveScoring(t *testing.T) {
	// The merchant matches a food pattern, but two parking signals in the
	// body accumulate a higher total. Additive scoring must pick parking,
	// not the first category that matched.
	lines := Segment("Aroma Espresso Bar\nParking service 20.00\nחניון מרכז העיר")
	assert.Equal(t, CategoryParking, classify("Aroma", lines))
}

func TestClassifyMerchantSignal(t *testing.T) {
	lines := Segment("branch 12\nreceipt 4411")
	assert.Equal(t, CategoryHealth, classify("Super-Pharm", lines))
}

func TestClassifyHebrewKeywords(t *testing.T) {
	lines := Segment("תחנת דלק פז\nבנזין 95\nסה\"כ 250.00")
	assert.Equal(t, CategoryFuel, classify("Paz", lines))
}

func TestClassifyDefaultOnNoMatch(t *testing.T) {
	lines := Segment("garbage line\nmore garbage")
	assert.Equal(t, DefaultCategory, classify(UnknownMerchant, lines))
}

func TestClassifyTieResolvesToDefault(t *testing.T) {
	// garage (parking, 5) vs hotel (hosting, 5): equal totals fall back to
	// the default category.
	lines := Segment("garage\nhotel")
	assert.Equal(t, DefaultCategory, classify(UnknownMerchant, lines))
}

func TestClassifyClosedSet(t *testing.T) {
	lines := Segment("Bezeq invoice\nאינטרנט חודשי")
	got := classify(UnknownMerchant, lines)
	assert.Equal(t, CategoryCommunications, got)
}
