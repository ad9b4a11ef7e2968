package networth

type CompositionGroupResponse struct {
	Name           string  `json:"name"`
	Value          float64 `json:"value"`
	ValueFormatted string  `json:"value_formatted"`
	Percentage     float64 `json:"percentage"`
	Icon           string  `json:"icon,omitempty"`
}

type NetWorthResponse struct {
	NetWorth                  float64                    `json:"net_worth"`
	NetWorthFormatted         string                     `json:"net_worth_formatted"`
	TotalAssets               float64                    `json:"total_assets"`
	TotalAssetsFormatted      string                     `json:"total_assets_formatted"`
	TotalLiabilities          float64                    `json:"total_liabilities"`
	TotalLiabilitiesFormatted string                     `json:"total_liabilities_formatted"`
	Assets                    []CompositionGroupResponse `json:"assets"`
	Liabilities               []CompositionGroupResponse `json:"liabilities"`
}
