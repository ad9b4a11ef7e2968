package advisor

// Suggestion payloads mirror the JSON schema the model is prompted to
// produce. Mocked marks responses substituted when the AI provider is
// unavailable, so the UI can label them.

type LeakSuggestion struct {
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	MonthlySavings float64 `json:"monthly_savings"`
}

type LeakageResponse struct {
	Suggestions []LeakSuggestion `json:"suggestions"`
	Mocked      bool             `json:"mocked"`
}

type GoalAllocation struct {
	GoalName        string  `json:"goal_name"`
	SuggestedAmount float64 `json:"suggested_amount"`
	Rationale       string  `json:"rationale"`
}

type GoalAdviceResponse struct {
	Allocations []GoalAllocation `json:"allocations"`
	Mocked      bool             `json:"mocked"`
}

type DebtStep struct {
	DebtName string `json:"debt_name"`
	Action   string `json:"action"`
	Priority int    `json:"priority"`
}

type DebtStrategyResponse struct {
	Steps  []DebtStep `json:"steps"`
	Mocked bool       `json:"mocked"`
}
