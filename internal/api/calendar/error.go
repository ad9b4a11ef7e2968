package calendar

import "github.com/Thyago-vibe/axxy-financeiro/pkg/response"

var (
	ErrInvalidPeriod = response.NewError(400, "invalid month or year parameter")
)
