package transaction

type CreateTransactionRequest struct {
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Category    string  `json:"category" validate:"required"`
	Status      string  `json:"status" validate:"required,oneof=completed pending"`
	AccountID   string  `json:"account_id"`
}

type UpdateTransactionRequest struct {
	ID          string  `json:"id" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Category    string  `json:"category" validate:"required"`
	Status      string  `json:"status" validate:"required,oneof=completed pending"`
	AccountID   string  `json:"account_id"`
}

type TransactionResponse struct {
	ID              string  `json:"id"`
	Description     string  `json:"description"`
	Amount          float64 `json:"amount"`
	AmountFormatted string  `json:"amount_formatted"`
	Type            string  `json:"type"`
	Date            string  `json:"date"`
	Category        string  `json:"category"`
	Status          string  `json:"status"`
	AccountID       string  `json:"account_id,omitempty"`
	AccountName     string  `json:"account_name,omitempty"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalIncome  float64               `json:"total_income"`
	TotalExpense float64               `json:"total_expense"`
	Balance      float64               `json:"balance"`
}

type DeleteTransactionResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}
