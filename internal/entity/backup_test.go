package entity

import (
	"errors"
	"testing"

	"github.com/Thyago-vibe/axxy-financeiro/internal/api/backup"
)

func TestBackupValidate(t *testing.T) {
	cases := []struct {
		name   string
		backup Backup
		want   error
	}{
		{
			name: "valid envelope",
			backup: Backup{
				Version:    "1.0",
				ExportedAt: "2025-03-15T10:00:00Z",
				Data:       map[string]interface{}{"transactions": []interface{}{}},
			},
			want: nil,
		},
		{
			name: "missing version",
			backup: Backup{
				Data: map[string]interface{}{"transactions": []interface{}{}},
			},
			want: backup.ErrMissingVersion,
		},
		{
			name:   "missing data",
			backup: Backup{Version: "1.0"},
			want:   backup.ErrMissingData,
		},
	}

	for _, tc := range cases {
		if err := tc.backup.Validate(); !errors.Is(err, tc.want) {
			t.Errorf("%s: Validate() = %v, want %v", tc.name, err, tc.want)
		}
	}
}
