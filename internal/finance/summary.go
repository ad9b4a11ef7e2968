// Package finance holds the derived aggregates behind the dashboard
// views. Every function here is pure: it operates on records already
// fetched into memory, performs no I/O and receives the evaluation time
// as an argument when it needs one.
package finance

import (
	"time"

	"github.com/Thyago-vibe/axxy-financeiro/internal/entity"
)

// Summary is the top-line balance card. Balance and the income/expense
// totals are all-time; the Month buckets only count transactions whose
// date falls in the calendar month of the evaluation time.
type Summary struct {
	Balance      float64 `json:"balance"`
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	IncomeMonth  float64 `json:"income_month"`
	ExpenseMonth float64 `json:"expense_month"`
}

func Summarize(transactions []entity.Transaction, now time.Time) Summary {
	var s Summary

	for _, t := range transactions {
		sameMonth := t.Date.Year() == now.Year() && t.Date.Month() == now.Month()

		switch entity.TransactionType(t.Type) {
		case entity.TransactionTypeIncome:
			s.TotalIncome += t.Amount
			if sameMonth {
				s.IncomeMonth += t.Amount
			}
		case entity.TransactionTypeExpense:
			s.TotalExpense += t.Amount
			if sameMonth {
				s.ExpenseMonth += t.Amount
			}
		}
	}

	s.Balance = s.TotalIncome - s.TotalExpense
	return s
}
