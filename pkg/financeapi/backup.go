package financeapi

import (
	"context"
	"net/http"

	"github.com/Thyago-vibe/axxy-financeiro/internal/entity"
)

func (c *client) ExportBackup(ctx context.Context) (entity.Backup, error) {
	data, err := c.get(ctx, "/api/backup/export")
	if err != nil {
		return entity.Backup{}, err
	}

	var backup entity.Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return entity.Backup{}, err
	}

	return backup, nil
}

// ImportBackup forwards an already-validated envelope; the backend owns
// the deeper schema checks.
func (c *client) ImportBackup(ctx context.Context, backup entity.Backup) error {
	_, err := c.send(ctx, http.MethodPost, "/api/backup/import", backup)
	return err
}
