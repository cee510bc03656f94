package underwriting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealgrind/underwriting-service/internal/models"
)

func TestAnalysisFromForm(t *testing.T) {
	form := map[string]any{
		"strategy":           "LTR",
		"purchase_price":     "$200,000",
		"monthly_rent":       "2000",
		"property_taxes":     200.0,
		"insurance":          "  100 ",
		"management_fee_pct": "8%",
		"capex_pct":          2.0,
		"vacancy_pct":        "4",
		"repairs_pct":        "not sure yet",
		"loans": []any{
			map[string]any{
				"amount":          "$160,000",
				"annual_rate_pct": "6%",
				"term_months":     360.0,
				"down_payment":    "40,000",
				"interest_only":   "on",
			},
		},
	}

	a := AnalysisFromForm(form)
	assert.Equal(t, models.StrategyLTR, a.Strategy)
	assert.Equal(t, 200000.0, a.PurchasePrice)
	assert.Equal(t, 2000.0, a.MonthlyRent)
	assert.Equal(t, 100.0, a.Insurance)
	assert.Equal(t, 8.0, a.ManagementFeePct)
	assert.Equal(t, 0.0, a.RepairsPct) // garbled field reads as not entered

	require.Len(t, a.Loans, 1)
	assert.Equal(t, 160000.0, a.Loans[0].Amount)
	assert.Equal(t, 360, a.Loans[0].TermMonths)
	assert.Equal(t, 40000.0, a.Loans[0].DownPayment)
	assert.True(t, a.Loans[0].InterestOnly)
}

func TestAnalysisFromFormStrategyPayloads(t *testing.T) {
	form := map[string]any{
		"strategy": "PadSplit BRRRR",
		"padsplit": map[string]any{
			"utilities":        "$250",
			"platform_fee_pct": "12%",
			"furnishing_costs": "15,000",
		},
		"brrrr": map[string]any{
			"initial_loan":   map[string]any{"amount": "140000", "annual_rate_pct": 12.0, "term_months": "12", "interest_only": true},
			"refinance_loan": map[string]any{"amount": "175,000", "annual_rate_pct": "6.5", "term_months": 360.0},
		},
		"balloon": map[string]any{
			"has_balloon_payment": "true",
			"due_date":            "2028-06-01",
			"refinance_loan":      map[string]any{"amount": 120000.0, "term_months": 240.0},
		},
	}

	a := AnalysisFromForm(form)
	require.NotNil(t, a.PadSplit)
	assert.Equal(t, 250.0, a.PadSplit.Utilities)
	assert.Equal(t, 15000.0, a.PadSplit.FurnishingCosts)

	require.NotNil(t, a.BRRRR)
	assert.Equal(t, 140000.0, a.BRRRR.InitialLoan.Amount)
	assert.True(t, a.BRRRR.InitialLoan.InterestOnly)
	assert.Equal(t, 175000.0, a.BRRRR.RefinanceLoan.Amount)

	require.NotNil(t, a.Balloon)
	assert.True(t, a.Balloon.HasBalloonPayment)
	assert.Equal(t, 2028, a.Balloon.DueDate.Year())

	// The parsed record computes end to end.
	m, err := ComputeMetrics(a)
	require.NoError(t, err)
	assert.InDelta(t, MonthlyPayment(a.BRRRR.RefinanceLoan), m.MonthlyDebtService, 0.001)
}

func TestAnalysisFromFormEmpty(t *testing.T) {
	a := AnalysisFromForm(map[string]any{})
	assert.Equal(t, models.Strategy(""), a.Strategy)
	assert.Zero(t, a.PurchasePrice)
	assert.Empty(t, a.Loans)
	assert.Nil(t, a.BRRRR)
}
