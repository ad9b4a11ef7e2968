package dashboard

type SummaryResponse struct {
	Balance               float64 `json:"balance"`
	BalanceFormatted      string  `json:"balance_formatted"`
	TotalIncome           float64 `json:"total_income"`
	TotalIncomeFormatted  string  `json:"total_income_formatted"`
	TotalExpense          float64 `json:"total_expense"`
	TotalExpenseFormatted string  `json:"total_expense_formatted"`
	IncomeMonth           float64 `json:"income_month"`
	IncomeMonthFormatted  string  `json:"income_month_formatted"`
	ExpenseMonth          float64 `json:"expense_month"`
	ExpenseMonthFormatted string  `json:"expense_month_formatted"`
}

type CategorySliceResponse struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

type DistributionResponse struct {
	Categories []CategorySliceResponse `json:"categories"`
	Total      float64                 `json:"total"`
}

type BudgetProgressResponse struct {
	Category   string  `json:"category"`
	Spent      float64 `json:"spent"`
	Limit      float64 `json:"limit"`
	Percentage float64 `json:"percentage"`
	Display    float64 `json:"display_percentage"`
	Icon       string  `json:"icon,omitempty"`
}

type BudgetListResponse struct {
	Budgets []BudgetProgressResponse `json:"budgets"`
}

type AllocationResponse struct {
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

type PaycheckPlanResponse struct {
	Total            float64              `json:"total"`
	AllocatedPercent int                  `json:"allocated_percent"`
	Allocations      []AllocationResponse `json:"allocations"`
}

type AllocationPreviewRequest struct {
	Total       float64                  `json:"total" validate:"required,gt=0"`
	Allocations []AllocationInputRequest `json:"allocations" validate:"required,dive"`
}

type AllocationInputRequest struct {
	Name   string  `json:"name" validate:"required"`
	Amount float64 `json:"amount" validate:"gte=0"`
}

type AllocationPreviewResponse struct {
	AllocatedPercent int `json:"allocated_percent"`
}
