package backup

import "github.com/Thyago-vibe/axxy-financeiro/pkg/response"

var (
	ErrMissingVersion = response.NewError(400, "backup document missing version")
	ErrMissingData    = response.NewError(400, "backup document missing data")
	ErrExportFailed   = response.NewError(502, "failed to export backup")
	ErrImportFailed   = response.NewError(502, "failed to import backup")
)
