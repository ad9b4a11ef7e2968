package networthHandler

import (
	"testing"

	"github.com/Thyago-vibe/axxy-financeiro/internal/finance"
)

func TestToGroupResponses(t *testing.T) {
	groups := []finance.CompositionGroup{
		{Name: "Conta corrente", Value: 6000, Percentage: 60, Icon: "bank"},
		{Name: "Investimentos", Value: 4000, Percentage: 40},
	}

	responses := toGroupResponses(groups)

	if len(responses) != 2 {
		t.Fatalf("expected 2 responses, got %+v", responses)
	}
	if responses[0].ValueFormatted != "R$ 6.000,00" {
		t.Fatalf("value formatted = %q", responses[0].ValueFormatted)
	}
	if responses[0].Value != 6000 || responses[0].Percentage != 60 {
		t.Fatalf("raw values must be preserved: %+v", responses[0])
	}
}
