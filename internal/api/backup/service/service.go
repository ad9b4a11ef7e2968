package backupService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/Thyago-vibe/axxy-financeiro/internal/entity"
	"github.com/Thyago-vibe/axxy-financeiro/pkg/financeapi"
)

type IBackupService interface {
	Export(ctx context.Context) (entity.Backup, error)
	Import(ctx context.Context, backup entity.Backup) error
}

type backupService struct {
	log        *logrus.Logger
	financeAPI financeapi.IFinanceAPI
}

func NewBackupService(log *logrus.Logger, api financeapi.IFinanceAPI) IBackupService {
	return &backupService{
		log:        log,
		financeAPI: api,
	}
}
