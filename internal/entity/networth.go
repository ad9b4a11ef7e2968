package entity

// Asset and Liability are only ever used for the net-worth composition
// view; they carry no lifecycle of their own on this side.
type Asset struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Type  string  `json:"type"`
	Icon  string  `json:"icon,omitempty"`
}

type Liability struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Type  string  `json:"type"`
	Icon  string  `json:"icon,omitempty"`
}

// NetWorth carries the server-supplied totals; the composition
// percentages are derived client-side from the asset/liability lists.
type NetWorth struct {
	TotalAssets      float64 `json:"total_assets"`
	TotalLiabilities float64 `json:"total_liabilities"`
}

type Profile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Currency string `json:"currency,omitempty"`
}

// PaycheckAllocation is one slice of an incoming lump sum. Percentage is
// server-supplied and rendered as-is; only the overall allocated share is
// recomputed.
type PaycheckAllocation struct {
	Name       string             `json:"name"`
	Amount     float64            `json:"amount"`
	Percentage float64            `json:"percentage"`
	Items      []PaycheckLineItem `json:"items,omitempty"`
}

type PaycheckLineItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}
