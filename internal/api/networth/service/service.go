package networthService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/Thyago-vibe/axxy-financeiro/internal/finance"
	"github.com/Thyago-vibe/axxy-financeiro/pkg/financeapi"
)

type INetWorthService interface {
	Breakdown(ctx context.Context) finance.NetWorthBreakdown
}

type netWorthService struct {
	log        *logrus.Logger
	financeAPI financeapi.IFinanceAPI
}

func NewNetWorthService(log *logrus.Logger, api financeapi.IFinanceAPI) INetWorthService {
	return &netWorthService{
		log:        log,
		financeAPI: api,
	}
}
