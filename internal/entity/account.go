package entity

type AccountType string

const (
	AccountTypeBank   AccountType = "bank"
	AccountTypeCard   AccountType = "card"
	AccountTypeWallet AccountType = "wallet"
	AccountTypePiggy  AccountType = "piggy"
)

func IsValidAccountType(accountType string) bool {
	switch AccountType(accountType) {
	case AccountTypeBank, AccountTypeCard, AccountTypeWallet, AccountTypePiggy:
		return true
	default:
		return false
	}
}

// Account balance is signed: card accounts may legitimately carry a
// negative balance.
type Account struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	Balance float64 `json:"balance"`
	Color   string  `json:"color,omitempty"`
	Icon    string  `json:"icon,omitempty"`
}

type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "Receita"
	CategoryTypeExpense CategoryType = "Despesa"
)

func IsValidCategoryType(categoryType string) bool {
	switch CategoryType(categoryType) {
	case CategoryTypeIncome, CategoryTypeExpense:
		return true
	default:
		return false
	}
}

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color,omitempty"`
}

type Budget struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Spent    float64 `json:"spent"`
	Limit    float64 `json:"limit"`
	Icon     string  `json:"icon,omitempty"`
}
