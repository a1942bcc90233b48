package analysis

import (
	"strings"

	"annadata/internal/market"
)

// classificationRule maps ingredient names onto a market commodity by
// substring match. Rules are checked in order; the first keyword hit wins,
// so tie-breaks stay explicit.
type classificationRule struct {
	keywords  []string
	commodity string
	fallback  market.Commodity
}

var classificationRules = []classificationRule{
	{[]string{"oil"}, "mustard oil (packed)", market.Commodity{Price: 175, Trend: 4.0}},
	{[]string{"meat", "beef", "chicken"}, "meat", market.Commodity{Price: 450, Trend: 2.0}},
	{[]string{"corn", "tortilla", "maize"}, "maize", market.Commodity{Price: 30, Trend: 1.0}},
	{[]string{"tomato", "cabbage"}, "vegetables", market.Commodity{Price: 40, Trend: 5.0}},
}

// unmatched ingredients get a flat default price
var defaultCommodity = market.Commodity{Price: 40, Trend: 0}

// classify resolves an ingredient name to a commodity price record,
// preferring the live market table over each rule's fallback.
func classify(name string, table market.Table) market.Commodity {
	lower := strings.ToLower(name)
	for _, rule := range classificationRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return table.Lookup(rule.commodity, rule.fallback)
			}
		}
	}
	return defaultCommodity
}
