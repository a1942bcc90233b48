package analysis

import "fmt"

// Verdict thresholds, expressed as fractions of the honest cost
const (
	dangerFloorRatio = 0.75
	fairFloorRatio   = 0.85
)

// ThreeTierVerdict classifies a vendor price for the ingredient strategy
func ThreeTierVerdict(vendorPrice, honestCost float64) (string, string) {
	switch {
	case vendorPrice < honestCost*dangerFloorRatio:
		return StatusDanger, "Extreme Risk! Price is too low for authentic ingredients."
	case vendorPrice < honestCost:
		return StatusSuspicious, "Low margins. Check for ingredient quality."
	default:
		return StatusSafe, "Market standards met."
	}
}

// TwoTierVerdict classifies a vendor price for the nutrition strategy.
// The verdict always carries the raw numbers behind the call.
func TwoTierVerdict(vendorPrice, honestCost float64) (string, string) {
	floor := honestCost * fairFloorRatio

	if vendorPrice >= floor {
		return StatusSafe, fmt.Sprintf(
			"SAFE: vendor price %.2f meets the fair floor %.2f (honest cost %.2f)",
			vendorPrice, floor, honestCost,
		)
	}

	return StatusRed, fmt.Sprintf(
		"RED: vendor price %.2f is below the fair floor %.2f (honest cost %.2f)",
		vendorPrice, floor, honestCost,
	)
}
