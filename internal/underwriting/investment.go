package underwriting

import "github.com/dealgrind/underwriting-service/internal/models"

// HoldingCosts returns the carrying cost of the renovation period: the fixed
// monthly lines plus interest-only service on the initial loan, times the
// renovation duration. Always an explicit return value; nothing is ever
// cached back onto the analysis record.
func HoldingCosts(a *models.Analysis) float64 {
	monthly := a.PropertyTaxes + a.Insurance + a.HOAFees
	if a.BRRRR != nil {
		init := a.BRRRR.InitialLoan
		monthly += init.Amount * init.AnnualRatePct / 100 / 12
	}
	return monthly * a.RenovationMonths
}

// CashChain holds the four-step BRRRR invested-capital derivation. The
// intermediate figures are signed on purpose: a negative out-of-pocket means
// an over-financed purchase, a negative recoup a refinance shortfall, and a
// negative final investment cash pulled out beyond the original stake.
type CashChain struct {
	InitialInvestment float64
	OutOfPocket       float64
	CashRecouped      float64
	FinalInvestment   float64
}

// BRRRRCashChain works the two-phase invested-capital derivation:
// everything spent up front, minus the bridge loan, minus whatever the
// refinance hands back.
func BRRRRCashChain(a *models.Analysis) CashChain {
	var fin models.BRRRRFinancing
	if a.BRRRR != nil {
		fin = *a.BRRRR
	}

	initial := a.PurchasePrice + a.RenovationCosts + fin.InitialLoan.ClosingCosts + HoldingCosts(a)
	if a.Strategy.PadSplit() && a.PadSplit != nil {
		initial += a.PadSplit.FurnishingCosts
	}

	outOfPocket := initial - fin.InitialLoan.Amount
	recouped := fin.RefinanceLoan.Amount - fin.InitialLoan.Amount - fin.RefinanceLoan.ClosingCosts

	return CashChain{
		InitialInvestment: initial,
		OutOfPocket:       outOfPocket,
		CashRecouped:      recouped,
		FinalInvestment:   outOfPocket - recouped,
	}
}

// TotalCashInvested computes the out-of-pocket capital for a deal. The
// result is signed; flooring at zero is a display concern, and the signed
// value is what feeds cash-on-cash return.
func TotalCashInvested(a *models.Analysis) float64 {
	switch {
	case a.Strategy == models.StrategyLeaseOption:
		// The entire investment model collapses to the option consideration.
		if a.LeaseOption == nil {
			return 0
		}
		return a.LeaseOption.OptionFee
	case a.Strategy.TwoPhase():
		return BRRRRCashChain(a).FinalInvestment
	default:
		total := a.CashToSeller + a.RenovationCosts + a.ClosingCosts +
			a.AssignmentFee + a.MarketingCosts
		for _, l := range a.Loans {
			if l.Populated() {
				total += l.DownPayment + l.ClosingCosts
			}
		}
		if a.Strategy.PadSplit() && a.PadSplit != nil {
			total += a.PadSplit.FurnishingCosts
		}
		return total
	}
}
