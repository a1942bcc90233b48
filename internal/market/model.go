package market

// Commodity is one row of the weekly price report, normalized to a
// per-unit price and a week-over-week trend percentage.
type Commodity struct {
	Price float64 `json:"price"`
	Trend float64 `json:"trend"`
}

// Table maps a lowercased commodity name to its price record.
// Loaded once at startup and read-only afterwards.
type Table map[string]Commodity

// Lookup returns the commodity for name, or the given fallback
// when the report has no matching row.
func (t Table) Lookup(name string, fallback Commodity) Commodity {
	if c, ok := t[name]; ok {
		return c
	}
	return fallback
}
