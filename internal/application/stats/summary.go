package stats

// MonthCount is one "YYYY-MM" bucket of the expiry time series.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// SLA holds the share of licenses whose remaining validity exceeds the 30
// and 60 day horizons, as percentages of the total input.
type SLA struct {
	OK30Ratio float64 `json:"ok_30_ratio"`
	OK60Ratio float64 `json:"ok_60_ratio"`
	Total     int     `json:"total"`
}

// Summary is the dashboard-ready aggregate over a set of license records.
// MonthsWindow anchors the two month-bucketed series: it always contains
// exactly 12 keys starting at the current month, regardless of input.
type Summary struct {
	ByStatus         map[string]int            `json:"by_status"`
	ByAuthority      map[string]int            `json:"by_authority"`
	ByType           map[string]int            `json:"by_type"`
	ExpiriesPerMonth []MonthCount              `json:"expiries_per_month"`
	ByTypePerMonth   map[string]map[string]int `json:"by_type_per_month"`
	Heatmap          map[string]map[int]int    `json:"heatmap"`
	SLA              SLA                       `json:"sla"`
	MonthsWindow     []string                  `json:"months"`
}
