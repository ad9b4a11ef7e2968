package advisorService

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/Thyago-vibe/axxy-financeiro/internal/api/advisor"
	"github.com/Thyago-vibe/axxy-financeiro/internal/finance"
	contextPkg "github.com/Thyago-vibe/axxy-financeiro/pkg/context"
)

const leakagePrompt = `Você é um consultor financeiro. Analise os gastos mensais por categoria abaixo e aponte até 3 vazamentos de dinheiro (gastos recorrentes ou pontuais que podem ser reduzidos).
Responda APENAS com JSON no formato:
{"suggestions":[{"category":"...","description":"...","monthly_savings":0.0}]}

Gastos por categoria:
%s`

const goalPrompt = `Você é um consultor financeiro. Dado o saldo mensal disponível de %.2f e as metas abaixo, sugira quanto alocar por mês em cada meta.
Responda APENAS com JSON no formato:
{"allocations":[{"goal_name":"...","suggested_amount":0.0,"rationale":"..."}]}

Metas:
%s`

const debtPrompt = `Você é um consultor financeiro. Dadas as dívidas abaixo, proponha uma ordem de quitação com uma ação objetiva por dívida (prioridade 1 é a mais urgente).
Responda APENAS com JSON no formato:
{"steps":[{"debt_name":"...","action":"...","priority":1}]}

Dívidas:
%s`

func (s *advisorService) LeakageSuggestions(ctx context.Context) advisor.LeakageResponse {
	transactions := s.financeAPI.ListTransactions(ctx)
	groups := finance.CategoryDistribution(transactions)

	var lines strings.Builder
	for _, g := range groups {
		fmt.Fprintf(&lines, "- %s: %.2f\n", g.Name, g.Value)
	}

	var response advisor.LeakageResponse
	if s.generate(ctx, fmt.Sprintf(leakagePrompt, lines.String()), &response) && len(response.Suggestions) > 0 {
		return response
	}

	return mockLeakage()
}

func (s *advisorService) GoalAdvice(ctx context.Context) advisor.GoalAdviceResponse {
	transactions := s.financeAPI.ListTransactions(ctx)
	goals := s.financeAPI.ListGoals(ctx)
	summary := finance.Summarize(transactions, time.Now())

	var lines strings.Builder
	for _, g := range goals {
		fmt.Fprintf(&lines, "- %s: faltam %.2f, prioridade %s\n", g.Name, g.Shortfall(), g.Priority)
	}

	monthlyFree := summary.IncomeMonth - summary.ExpenseMonth

	var response advisor.GoalAdviceResponse
	if s.generate(ctx, fmt.Sprintf(goalPrompt, monthlyFree, lines.String()), &response) && len(response.Allocations) > 0 {
		return response
	}

	return mockGoalAdvice()
}

func (s *advisorService) DebtStrategy(ctx context.Context) advisor.DebtStrategyResponse {
	debts := s.financeAPI.ListDebts(ctx)

	var lines strings.Builder
	for _, d := range debts {
		fmt.Fprintf(&lines, "- %s: saldo %.2f, parcela %.2f, status %s\n", d.Name, d.Remaining, d.Installment, d.Status)
	}

	var response advisor.DebtStrategyResponse
	if s.generate(ctx, fmt.Sprintf(debtPrompt, lines.String()), &response) && len(response.Steps) > 0 {
		return response
	}

	return mockDebtStrategy()
}

// generate runs the prompt and unmarshals the model's JSON into out.
// Any failure, including an absent client, reports false so the caller
// substitutes its mock.
func (s *advisorService) generate(ctx context.Context, prompt string, out interface{}) bool {
	if s.gemini == nil {
		return false
	}

	raw, err := s.gemini.GenerateJSON(ctx, prompt)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("AI suggestion call failed, falling back to mock")
		return false
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("AI suggestion response was not valid JSON, falling back to mock")
		return false
	}

	return true
}

func mockLeakage() advisor.LeakageResponse {
	return advisor.LeakageResponse{
		Mocked: true,
		Suggestions: []advisor.LeakSuggestion{
			{Category: "Assinaturas", Description: "Revise serviços de streaming pouco usados", MonthlySavings: 45.90},
			{Category: "Alimentação", Description: "Delivery acima da média do mês anterior", MonthlySavings: 120.00},
			{Category: "Transporte", Description: "Considere passe mensal em vez de corridas avulsas", MonthlySavings: 60.00},
		},
	}
}

func mockGoalAdvice() advisor.GoalAdviceResponse {
	return advisor.GoalAdviceResponse{
		Mocked: true,
		Allocations: []advisor.GoalAllocation{
			{GoalName: "Reserva de emergência", SuggestedAmount: 300.00, Rationale: "Priorize 3 meses de despesas antes das demais metas"},
			{GoalName: "Viagem", SuggestedAmount: 150.00, Rationale: "Ritmo suficiente para o prazo informado"},
		},
	}
}

func mockDebtStrategy() advisor.DebtStrategyResponse {
	return advisor.DebtStrategyResponse{
		Mocked: true,
		Steps: []advisor.DebtStep{
			{DebtName: "Cartão de crédito", Action: "Quitar primeiro: juros rotativos mais altos", Priority: 1},
			{DebtName: "Empréstimo pessoal", Action: "Negociar redução de taxa e manter parcelas", Priority: 2},
		},
	}
}
