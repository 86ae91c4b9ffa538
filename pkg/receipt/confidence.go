package receipt

// Fixed confidence increments per recovered field. Additive, capped at 1.
// This is a review signal for the caller, not a statistical estimate.
const (
	confMerchant = 0.30
	confAmount   = 0.30
	confDate     = 0.25
	confItems    = 0.15
)

func confidence(merchantFound, amountFound, dateFound, itemsFound bool) float64 {
	s := 0.0
	if merchantFound {
		s += confMerchant
	}
	if amountFound {
		s += confAmount
	}
	if dateFound {
		s += confDate
	}
	if itemsFound {
		s += confItems
	}
	if s > 1 {
		s = 1
	}
	return s
}
