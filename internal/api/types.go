package api

// Snapshot is the full payload of GET /data/latest: one fetch carries
// everything the dashboard renders.
type Snapshot struct {
	TS         string    `json:"ts"`
	BaselineAt string    `json:"baseline_at"`
	Counts     Counts    `json:"counts"`
	Active     []Account `json:"active"`
	Blown      []Account `json:"blown"`
	Purchases  []Account `json:"purchases_api"`
	Plan50K    []Account `json:"plan50k"`
}

// Counts holds the per-table row totals, independent of the query limits
// applied to the row lists themselves.
type Counts struct {
	Active    int `json:"active"`
	Blown     int `json:"blown"`
	Purchases int `json:"purchases_api"`
	Plan50K   int `json:"plan50k"`
	Baseline  int `json:"baseline"`
}

// Account is one competition row. The upstream leaves fields null when
// its own source had nothing, so numeric fields are pointers; string
// fields use "" for absent. PctChange is only populated on active rows
// and GroupName only on purchase rows.
type Account struct {
	AccountID    string   `json:"account_id"`
	CustomerName string   `json:"customer_name"`
	Country      string   `json:"country"`
	Plan         *float64 `json:"plan"`
	Balance      *float64 `json:"balance"`
	Equity       *float64 `json:"equity"`
	OpenPnL      *float64 `json:"open_pnl"`
	PctChange    *float64 `json:"pct_change,omitempty"`
	GroupName    string   `json:"group_name,omitempty"`
	UpdatedAt    string   `json:"updated_at"`
}
