package backupService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/Thyago-vibe/axxy-financeiro/internal/api/backup"
	"github.com/Thyago-vibe/axxy-financeiro/internal/entity"
	contextPkg "github.com/Thyago-vibe/axxy-financeiro/pkg/context"
)

func (s *backupService) Export(ctx context.Context) (entity.Backup, error) {
	requestID := contextPkg.GetRequestID(ctx)

	exported, err := s.financeAPI.ExportBackup(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to export backup")
		return entity.Backup{}, backup.ErrExportFailed
	}

	return exported, nil
}

// Import validates the envelope before anything destructive happens on
// the backend; a rejected document never leaves this process.
func (s *backupService) Import(ctx context.Context, doc entity.Backup) error {
	requestID := contextPkg.GetRequestID(ctx)

	if err := doc.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Backup document rejected before import")
		return err
	}

	if err := s.financeAPI.ImportBackup(ctx, doc); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"version":    doc.Version,
			"error":      err.Error(),
		}).Error("Failed to import backup")
		return backup.ErrImportFailed
	}

	return nil
}
