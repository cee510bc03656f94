package underwriting

import "github.com/dealgrind/underwriting-service/internal/models"

// MonthlyDebtService sums the monthly loan payments that burden steady-state
// cash flow.
//
// BRRRR deals always service the refinance loan: the bridge loan is retired
// at refinance, so cash flow models the post-refinance steady state. The
// initial loan's payment still appears in the per-loan breakdown as a
// reference figure, it just never enters cash flow.
//
// Balloon deals service the active loan slots until the balloon comes due.
// The record carries no valuation date, so selecting the post-balloon period
// is the caller's call; the balloon extension metrics expose both payments
// and the delta needed to re-derive post-balloon cash flow.
func MonthlyDebtService(a *models.Analysis) float64 {
	if a.Strategy.TwoPhase() {
		if a.BRRRR == nil {
			return 0
		}
		return MonthlyPayment(a.BRRRR.RefinanceLoan)
	}
	var total float64
	for _, l := range a.Loans {
		total += MonthlyPayment(l)
	}
	return total
}
