package underwriting

import "github.com/dealgrind/underwriting-service/internal/models"

// MonthlyOperatingExpenses totals the monthly operating costs of a deal:
// fixed dollar lines, percentage-of-income lines, and the strategy-specific
// blocks (multi-family common-area costs, PadSplit co-living costs).
//
// grossIncome is injected rather than recomputed so the caller controls the
// income base: percentage expenses always apply against potential gross
// income, never the occupancy-adjusted figure.
func MonthlyOperatingExpenses(a *models.Analysis, grossIncome float64) float64 {
	fixed := a.PropertyTaxes + a.Insurance + a.HOAFees

	if a.Strategy == models.StrategyMultiFamily && a.MultiFamily != nil {
		mf := a.MultiFamily
		fixed += mf.CommonAreaMaintenance + mf.ElevatorMaintenance +
			mf.StaffPayroll + mf.TrashRemoval + mf.CommonUtilities
	}

	pct := a.ManagementFeePct + a.CapExPct + a.VacancyPct + a.RepairsPct
	total := fixed + grossIncome*pct/100

	if a.Strategy.PadSplit() && a.PadSplit != nil {
		ps := a.PadSplit
		total += ps.Utilities + ps.Internet + ps.Cleaning + ps.PestControl + ps.Landscaping
		total += grossIncome * ps.PlatformFeePct / 100
	}

	return total
}
