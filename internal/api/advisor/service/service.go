package advisorService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/Thyago-vibe/axxy-financeiro/internal/api/advisor"
	"github.com/Thyago-vibe/axxy-financeiro/pkg/financeapi"
	"github.com/Thyago-vibe/axxy-financeiro/pkg/gemini"
)

type IAdvisorService interface {
	LeakageSuggestions(ctx context.Context) advisor.LeakageResponse
	GoalAdvice(ctx context.Context) advisor.GoalAdviceResponse
	DebtStrategy(ctx context.Context) advisor.DebtStrategyResponse
}

type advisorService struct {
	log        *logrus.Logger
	financeAPI financeapi.IFinanceAPI
	gemini     gemini.IGemini
}

// NewAdvisorService accepts a nil Gemini client; every advice path then
// serves its static mock so the feature never blocks on the provider.
func NewAdvisorService(log *logrus.Logger, api financeapi.IFinanceAPI, geminiClient gemini.IGemini) IAdvisorService {
	return &advisorService{
		log:        log,
		financeAPI: api,
		gemini:     geminiClient,
	}
}
