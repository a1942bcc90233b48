package analysis

import (
	"math"
	"strconv"
	"strings"

	"annadata/internal/market"
	"annadata/internal/recipe"
)

// Ingredient estimator constants
const (
	// raw material to retail multiplier covering fuel, labor and profit
	retailMarkup = 1.45
	// quantities above this are assumed to be in grams rather than
	// hundred-gram units and get scaled down
	bulkQtyThreshold = 5.0
	bulkScaleDivisor = 10.0
	defaultQuantity  = 1.0
	// line items at or below this cost are noise, not breakdown entries
	materialityFloor = 0.1
)

// Nutrition estimator constants. The labor term is deliberately kept as
// slot-count × slot-rate even though it cancels out numerically; the
// sub-terms are tuned independently.
const (
	pricePer100Kcal    = 22.0
	proteinRatePerGram = 4.5
	laborSlotMinutes   = 10.0
	laborRatePerSlot   = 10.0
	rushTimeMinutes    = 60.0
	rushMultiplier     = 1.5
	complianceBuffer   = 25.0
)

// --------------------------------------------------
// Ingredient estimator (by priced line items)
// --------------------------------------------------
func IngredientEstimate(ingredients []recipe.Ingredient, table market.Table) Estimate {
	var total float64
	var trendSum float64
	breakdown := []BreakdownItem{}

	for _, ing := range ingredients {
		qty := parseQuantity(ing.Quantity)
		commodity := classify(ing.Name, table)

		cost := qty * commodity.Price
		if qty > bulkQtyThreshold {
			cost /= bulkScaleDivisor
		}

		total += cost
		trendSum += commodity.Trend

		if cost > materialityFloor {
			breakdown = append(breakdown, BreakdownItem{
				Label: ing.Name,
				Cost:  round2(cost),
			})
		}
	}

	avgInflation := 0.0
	if len(ingredients) > 0 {
		avgInflation = trendSum / float64(len(ingredients))
	}

	return Estimate{
		HonestCost:   round2(total * retailMarkup),
		Breakdown:    breakdown,
		AvgInflation: avgInflation,
	}
}

// --------------------------------------------------
// Nutrition estimator (by recipe attributes)
// --------------------------------------------------
// Each component is rounded where it is computed so the final sum is
// reproducible to the paisa.
func NutritionEstimate(detail *recipe.Detail) Estimate {
	rawMaterial := round2(detail.Calories / 100 * pricePer100Kcal)
	proteinPremium := round2(detail.Protein * proteinRatePerGram)

	multiplier := 1.0
	if detail.TotalTime > rushTimeMinutes {
		multiplier = rushMultiplier
	}
	laborFuel := round2(detail.TotalTime / laborSlotMinutes * laborRatePerSlot * multiplier)

	honest := round2(rawMaterial + proteinPremium + laborFuel + complianceBuffer)

	breakdown := []BreakdownItem{}
	for _, item := range []BreakdownItem{
		{Label: "Raw Material", Cost: rawMaterial},
		{Label: "Protein Premium", Cost: proteinPremium},
		{Label: "Labor & Fuel", Cost: laborFuel},
		{Label: "Compliance Buffer", Cost: complianceBuffer},
	} {
		if item.Cost > materialityFloor {
			breakdown = append(breakdown, item)
		}
	}

	return Estimate{
		HonestCost: honest,
		Breakdown:  breakdown,
	}
}

func parseQuantity(raw string) float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return defaultQuantity
	}
	qty, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return defaultQuantity
	}
	return qty
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
