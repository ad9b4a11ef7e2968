package entity

import "time"

type DebtStatus string

const (
	DebtStatusOnTime  DebtStatus = "Em dia"
	DebtStatusPending DebtStatus = "Pendente"
	DebtStatusLate    DebtStatus = "Atrasado"
)

func IsValidDebtStatus(status string) bool {
	switch DebtStatus(status) {
	case DebtStatusOnTime, DebtStatusPending, DebtStatusLate:
		return true
	default:
		return false
	}
}

const dueDateLayout = "2006-01-02"

// Debt due dates are canonically full ISO dates. The upstream API
// historically also served bare day-of-month strings; those are rejected
// at the gateway boundary instead of being guessed at read time.
type Debt struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Remaining   float64 `json:"remaining"`
	Installment float64 `json:"installment"`
	DueDate     string  `json:"due_date"`
	Status      string  `json:"status"`
	Category    string  `json:"category"`
	Urgent      bool    `json:"urgent"`
}

func (d *Debt) Valid() bool {
	if !IsValidDebtStatus(d.Status) {
		return false
	}
	_, err := time.Parse(dueDateLayout, d.DueDate)
	return err == nil
}

// DueDay extracts the day-of-month from the canonical due date. Returns
// 0 when the date does not parse.
func (d *Debt) DueDay() int {
	t, err := time.Parse(dueDateLayout, d.DueDate)
	if err != nil {
		return 0
	}
	return t.Day()
}
