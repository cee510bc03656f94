package underwriting

import "github.com/dealgrind/underwriting-service/internal/models"

// MonthlyGrossIncome computes the potential monthly gross income of a deal.
// Multi-family deals aggregate the unit mix at full occupancy plus other
// income; every other strategy rents a single unit at the stated rent.
// Occupancy-adjusted income is a multi-family extension metric, not the
// base figure, so percentage expenses apply against the same income base
// across strategies.
func MonthlyGrossIncome(a *models.Analysis) float64 {
	if a.Strategy == models.StrategyMultiFamily {
		return grossPotentialRent(a) + a.OtherIncome
	}
	return a.MonthlyRent
}

// grossPotentialRent is the unit mix rented at full occupancy.
func grossPotentialRent(a *models.Analysis) float64 {
	if a.MultiFamily == nil {
		return 0
	}
	var total float64
	for _, u := range a.MultiFamily.Units {
		total += float64(u.UnitCount) * u.MonthlyRent
	}
	return total
}

// actualGrossIncome is the unit mix at current occupancy plus other income.
// Occupied counts above the unit count read as fully occupied, so a bad
// record can never produce negative vacancy.
func actualGrossIncome(a *models.Analysis) float64 {
	if a.MultiFamily == nil {
		return a.OtherIncome
	}
	var total float64
	for _, u := range a.MultiFamily.Units {
		occupied := u.OccupiedCount
		if occupied > u.UnitCount {
			occupied = u.UnitCount
		}
		total += float64(occupied) * u.MonthlyRent
	}
	return total + a.OtherIncome
}
