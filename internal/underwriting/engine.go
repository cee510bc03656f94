package underwriting

import (
	"errors"
	"fmt"
	"math"

	"github.com/dealgrind/underwriting-service/internal/models"
)

// ErrUnknownStrategy is returned when an analysis carries a strategy tag
// outside the closed set. An unrecognized tag is a caller programming error
// and must never silently compute some default strategy's metrics.
var ErrUnknownStrategy = errors.New("unknown analysis strategy")

// ComputeMetrics derives the full metrics record for a deal. It is a pure
// function of the analysis: the input is never mutated, and malformed
// numeric fields were already absorbed to zero at the coercion boundary, so
// the only error is an unrecognized strategy tag.
func ComputeMetrics(a *models.Analysis) (*models.Metrics, error) {
	if !a.Strategy.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, a.Strategy)
	}

	gross := MonthlyGrossIncome(a)
	expenses := MonthlyOperatingExpenses(a, gross)
	noi := gross - expenses
	debt := MonthlyDebtService(a)
	cashFlow := noi - debt
	invested := TotalCashInvested(a)

	m := &models.Metrics{
		MonthlyGrossIncome:  gross,
		MonthlyExpenses:     expenses,
		MonthlyNOI:          noi,
		AnnualNOI:           noi * 12,
		MonthlyDebtService:  debt,
		MonthlyCashFlow:     cashFlow,
		AnnualCashFlow:      cashFlow * 12,
		TotalCashInvested:   invested,
		DisplayCashInvested: math.Max(0, invested),
		LoanPayments:        loanPayments(a),
	}

	if invested <= 0 {
		m.CashOnCash = models.InfiniteReturn()
	} else {
		m.CashOnCash = models.FiniteReturn(m.AnnualCashFlow / invested * 100)
	}

	if gross > 0 {
		m.OperatingExpenseRatioPct = expenses / gross * 100
	}

	if a.Strategy != models.StrategyLeaseOption {
		value := a.AfterRepairValue
		if value <= 0 {
			value = a.PurchasePrice
		}
		capRate := 0.0
		if value > 0 {
			capRate = m.AnnualNOI / value * 100
		}
		// Zero debt service means an all-cash deal; DSCR is undefined and
		// reported as 0 rather than raising.
		dscr := 0.0
		if debt > 0 {
			dscr = noi / debt
		}
		m.CapRate = &capRate
		m.DSCR = &dscr
	}

	switch a.Strategy {
	case models.StrategyMultiFamily:
		m.MultiFamily = multiFamilyMetrics(a, noi)
	case models.StrategyLeaseOption:
		m.LeaseOption = leaseOptionMetrics(a, m.MonthlyCashFlow, m.AnnualCashFlow)
	case models.StrategyBRRRR, models.StrategyPadSplitBRRRR:
		m.BRRRR = brrrrMetrics(a)
	}

	if a.Balloon != nil && a.Balloon.HasBalloonPayment {
		m.Balloon = balloonMetrics(a)
	}

	return m, nil
}

// loanPayments builds the per-slot payment breakdown for display.
func loanPayments(a *models.Analysis) map[string]float64 {
	payments := make(map[string]float64)
	if a.Strategy.TwoPhase() {
		if a.BRRRR != nil {
			payments["initial_loan"] = MonthlyPayment(a.BRRRR.InitialLoan)
			payments["refinance_loan"] = MonthlyPayment(a.BRRRR.RefinanceLoan)
		}
		return payments
	}
	for i, l := range a.Loans {
		if l.Populated() {
			payments[fmt.Sprintf("loan_%d", i+1)] = MonthlyPayment(l)
		}
	}
	return payments
}

func multiFamilyMetrics(a *models.Analysis, monthlyNOI float64) *models.MultiFamilyMetrics {
	mf := &models.MultiFamilyMetrics{
		GrossPotentialRent: grossPotentialRent(a),
		ActualGrossIncome:  actualGrossIncome(a),
	}
	if a.MultiFamily == nil {
		return mf
	}

	var totalUnits, occupiedUnits int
	for _, u := range a.MultiFamily.Units {
		totalUnits += u.UnitCount
		occupied := u.OccupiedCount
		if occupied > u.UnitCount {
			occupied = u.UnitCount
		}
		occupiedUnits += occupied
	}
	mf.TotalUnits = totalUnits
	if totalUnits > 0 {
		mf.PerUnitNOI = monthlyNOI / float64(totalUnits)
		mf.PricePerUnit = a.PurchasePrice / float64(totalUnits)
		mf.OccupancyRatePct = float64(occupiedUnits) / float64(totalUnits) * 100
	}
	return mf
}

func leaseOptionMetrics(a *models.Analysis, monthlyCashFlow, annualCashFlow float64) *models.LeaseOptionMetrics {
	var terms models.LeaseOptionTerms
	if a.LeaseOption != nil {
		terms = *a.LeaseOption
	}

	monthlyCredit := a.MonthlyRent * terms.RentCreditPct / 100
	totalCredits := monthlyCredit * float64(terms.TermMonths)
	// A zero cap means no cap was entered, not a cap of zero dollars.
	if terms.RentCreditCap > 0 {
		totalCredits = math.Min(totalCredits, terms.RentCreditCap)
	}

	optionROI := 0.0
	if terms.OptionFee > 0 {
		optionROI = annualCashFlow / terms.OptionFee * 100
	}

	return &models.LeaseOptionMetrics{
		MonthlyRentCredit:      monthlyCredit,
		TotalRentCredits:       totalCredits,
		EffectivePurchasePrice: terms.StrikePrice - totalCredits,
		OptionROIPct:           optionROI,
		BreakevenMonths:        models.BreakevenAfter(terms.OptionFee, monthlyCashFlow),
	}
}

func brrrrMetrics(a *models.Analysis) *models.BRRRRMetrics {
	chain := BRRRRCashChain(a)
	holding := HoldingCosts(a)

	var fin models.BRRRRFinancing
	if a.BRRRR != nil {
		fin = *a.BRRRR
	}
	var furnishing float64
	if a.Strategy.PadSplit() && a.PadSplit != nil {
		furnishing = a.PadSplit.FurnishingCosts
	}

	// MAO: the purchase ceiling that lets a 75%-of-ARV refinance absorb the
	// whole project cost.
	mao := 0.75*a.AfterRepairValue - (a.RenovationCosts + holding +
		fin.InitialLoan.ClosingCosts + fin.RefinanceLoan.ClosingCosts + furnishing)

	return &models.BRRRRMetrics{
		EquityCaptured:    math.Max(0, a.AfterRepairValue-a.PurchasePrice-a.RenovationCosts),
		MaxAllowableOffer: math.Max(0, mao),
		CashRecouped:      math.Max(0, chain.CashRecouped),
		HoldingCosts:      holding,
	}
}

func balloonMetrics(a *models.Analysis) *models.BalloonMetrics {
	var pre float64
	for _, l := range a.Loans {
		pre += MonthlyPayment(l)
	}

	// The post-balloon refinance always amortizes.
	refi := a.Balloon.RefinanceLoan
	refi.InterestOnly = false
	post := MonthlyPayment(refi)

	return &models.BalloonMetrics{
		PreBalloonPayment:  pre,
		PostBalloonPayment: post,
		PaymentDelta:       post - pre,
		RefinanceCosts:     refi.DownPayment + refi.ClosingCosts,
	}
}
