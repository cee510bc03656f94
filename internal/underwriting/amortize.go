package underwriting

import (
	"math"

	"github.com/dealgrind/underwriting-service/internal/models"
)

// MonthlyPayment computes the monthly payment for a single loan.
// Zero-rate loans pay straight-line principal; interest-only loans pay
// monthly interest on the full balance; everything else follows standard
// fixed-rate amortization. No rounding happens here; display formatting
// belongs to the presentation layer.
func MonthlyPayment(l models.Loan) float64 {
	if l.Amount <= 0 || l.TermMonths <= 0 {
		return 0
	}
	if l.AnnualRatePct == 0 {
		return l.Amount / float64(l.TermMonths)
	}
	r := l.AnnualRatePct / 100 / 12
	if l.InterestOnly {
		return l.Amount * r
	}
	n := float64(l.TermMonths)
	growth := math.Pow(1+r, n)
	return l.Amount * (r * growth) / (growth - 1)
}
