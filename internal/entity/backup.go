package entity

import (
	"github.com/Thyago-vibe/axxy-financeiro/internal/api/backup"
)

// Backup is the exchange envelope for full data export/import. Import
// only checks that the envelope keys are present; deeper schema
// validation belongs to the backend.
type Backup struct {
	Version    string                 `json:"version"`
	ExportedAt string                 `json:"exportedAt"`
	Data       map[string]interface{} `json:"data"`
}

func (b *Backup) Validate() error {
	if b.Version == "" {
		return backup.ErrMissingVersion
	}

	if b.Data == nil {
		return backup.ErrMissingData
	}

	return nil
}
