package financeapi

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Thyago-vibe/axxy-financeiro/internal/entity"
	contextPkg "github.com/Thyago-vibe/axxy-financeiro/pkg/context"
)

func (c *client) ListTransactions(ctx context.Context) []entity.Transaction {
	data, err := c.get(ctx, "/api/transactions")
	if err != nil {
		c.warnFetch(ctx, "transactions", err)
		return []entity.Transaction{}
	}

	var transactions []entity.Transaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		c.warnFetch(ctx, "transactions", err)
		return []entity.Transaction{}
	}

	valid := make([]entity.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if err := t.Validate(); err != nil {
			c.log.WithFields(logrus.Fields{
				"request_id":     contextPkg.GetRequestID(ctx),
				"transaction_id": t.ID,
				"error":          err.Error(),
			}).Warn("Dropping invalid transaction record")
			continue
		}
		valid = append(valid, t)
	}

	return valid
}

func (c *client) ListAccounts(ctx context.Context) []entity.Account {
	data, err := c.get(ctx, "/api/accounts")
	if err != nil {
		c.warnFetch(ctx, "accounts", err)
		return []entity.Account{}
	}

	var accounts []entity.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		c.warnFetch(ctx, "accounts", err)
		return []entity.Account{}
	}

	valid := make([]entity.Account, 0, len(accounts))
	for _, a := range accounts {
		if !entity.IsValidAccountType(a.Type) {
			c.log.WithFields(logrus.Fields{
				"request_id": contextPkg.GetRequestID(ctx),
				"account_id": a.ID,
				"type":       a.Type,
			}).Warn("Dropping account with unknown type")
			continue
		}
		valid = append(valid, a)
	}

	return valid
}

func (c *client) ListCategories(ctx context.Context) []entity.Category {
	data, err := c.get(ctx, "/api/categories")
	if err != nil {
		c.warnFetch(ctx, "categories", err)
		return []entity.Category{}
	}

	var categories []entity.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		c.warnFetch(ctx, "categories", err)
		return []entity.Category{}
	}

	valid := make([]entity.Category, 0, len(categories))
	for _, cat := range categories {
		if !entity.IsValidCategoryType(cat.Type) {
			c.log.WithFields(logrus.Fields{
				"request_id":  contextPkg.GetRequestID(ctx),
				"category_id": cat.ID,
				"type":        cat.Type,
			}).Warn("Dropping category with unknown type")
			continue
		}
		valid = append(valid, cat)
	}

	return valid
}

func (c *client) ListBudgets(ctx context.Context) []entity.Budget {
	data, err := c.get(ctx, "/api/budgets")
	if err != nil {
		c.warnFetch(ctx, "budgets", err)
		return []entity.Budget{}
	}

	var budgets []entity.Budget
	if err := json.Unmarshal(data, &budgets); err != nil {
		c.warnFetch(ctx, "budgets", err)
		return []entity.Budget{}
	}

	return budgets
}

func (c *client) ListDebts(ctx context.Context) []entity.Debt {
	data, err := c.get(ctx, "/api/debts")
	if err != nil {
		c.warnFetch(ctx, "debts", err)
		return []entity.Debt{}
	}

	var debts []entity.Debt
	if err := json.Unmarshal(data, &debts); err != nil {
		c.warnFetch(ctx, "debts", err)
		return []entity.Debt{}
	}

	valid := make([]entity.Debt, 0, len(debts))
	for _, d := range debts {
		if !d.Valid() {
			c.log.WithFields(logrus.Fields{
				"request_id": contextPkg.GetRequestID(ctx),
				"debt_id":    d.ID,
				"due_date":   d.DueDate,
				"status":     d.Status,
			}).Warn("Dropping debt with invalid status or due date")
			continue
		}
		valid = append(valid, d)
	}

	return valid
}

func (c *client) ListGoals(ctx context.Context) []entity.Goal {
	data, err := c.get(ctx, "/api/goals")
	if err != nil {
		c.warnFetch(ctx, "goals", err)
		return []entity.Goal{}
	}

	var goals []entity.Goal
	if err := json.Unmarshal(data, &goals); err != nil {
		c.warnFetch(ctx, "goals", err)
		return []entity.Goal{}
	}

	valid := make([]entity.Goal, 0, len(goals))
	for _, g := range goals {
		if !entity.IsValidGoalPriority(g.Priority) {
			c.log.WithFields(logrus.Fields{
				"request_id": contextPkg.GetRequestID(ctx),
				"goal_id":    g.ID,
				"priority":   g.Priority,
			}).Warn("Dropping goal with unknown priority")
			continue
		}
		valid = append(valid, g)
	}

	return valid
}

func (c *client) ListAssets(ctx context.Context) []entity.Asset {
	data, err := c.get(ctx, "/api/assets")
	if err != nil {
		c.warnFetch(ctx, "assets", err)
		return []entity.Asset{}
	}

	var assets []entity.Asset
	if err := json.Unmarshal(data, &assets); err != nil {
		c.warnFetch(ctx, "assets", err)
		return []entity.Asset{}
	}

	return assets
}

func (c *client) ListLiabilities(ctx context.Context) []entity.Liability {
	data, err := c.get(ctx, "/api/liabilities")
	if err != nil {
		c.warnFetch(ctx, "liabilities", err)
		return []entity.Liability{}
	}

	var liabilities []entity.Liability
	if err := json.Unmarshal(data, &liabilities); err != nil {
		c.warnFetch(ctx, "liabilities", err)
		return []entity.Liability{}
	}

	return liabilities
}

func (c *client) GetNetWorth(ctx context.Context) entity.NetWorth {
	data, err := c.get(ctx, "/api/net-worth")
	if err != nil {
		c.warnFetch(ctx, "net-worth", err)
		return entity.NetWorth{}
	}

	var netWorth entity.NetWorth
	if err := json.Unmarshal(data, &netWorth); err != nil {
		c.warnFetch(ctx, "net-worth", err)
		return entity.NetWorth{}
	}

	return netWorth
}

func (c *client) GetProfile(ctx context.Context) entity.Profile {
	data, err := c.get(ctx, "/api/profile")
	if err != nil {
		c.warnFetch(ctx, "profile", err)
		return entity.Profile{}
	}

	var profile entity.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		c.warnFetch(ctx, "profile", err)
		return entity.Profile{}
	}

	return profile
}

type paycheckPlanPayload struct {
	Total       float64                     `json:"total"`
	Allocations []entity.PaycheckAllocation `json:"allocations"`
}

func (c *client) GetPaycheckPlan(ctx context.Context) (float64, []entity.PaycheckAllocation) {
	data, err := c.get(ctx, "/api/paycheck-plan")
	if err != nil {
		c.warnFetch(ctx, "paycheck-plan", err)
		return 0, []entity.PaycheckAllocation{}
	}

	var plan paycheckPlanPayload
	if err := json.Unmarshal(data, &plan); err != nil {
		c.warnFetch(ctx, "paycheck-plan", err)
		return 0, []entity.PaycheckAllocation{}
	}

	if plan.Allocations == nil {
		plan.Allocations = []entity.PaycheckAllocation{}
	}

	return plan.Total, plan.Allocations
}
