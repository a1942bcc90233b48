package analysis

// Status labels. The nutrition strategy uses the two-tier SAFE/RED policy,
// the ingredient strategy the three-tier one.
const (
	StatusSafe       = "SAFE"
	StatusSuspicious = "SUSPICIOUS"
	StatusDanger     = "DANGER"
	StatusRed        = "RED"
)

// BreakdownItem is one priced line of the honest-cost estimate
type BreakdownItem struct {
	Label string  `json:"item"`
	Cost  float64 `json:"cost"`
}

// Estimate is the output of a cost estimator: the honest cost plus its
// material line items. AvgInflation is only meaningful for the
// ingredient estimator.
type Estimate struct {
	HonestCost   float64
	Breakdown    []BreakdownItem
	AvgInflation float64
}

// Result is the /analyze response body
type Result struct {
	AnalysisID string          `json:"analysis_id"`
	Status     string          `json:"status"`
	HonestCost float64         `json:"honest_cost"`
	Breakdown  []BreakdownItem `json:"breakdown"`
	Inflation  string          `json:"inflation,omitempty"`
	Verdict    string          `json:"verdict"`
	// Degraded marks verdicts computed from default attributes because the
	// upstream recipe lookup failed
	Degraded bool `json:"degraded"`
}
