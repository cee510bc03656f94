package models

import (
	"encoding/json"
	"math"
)

// Metrics is the full output record for one analysis. Core fields are always
// present; strategy extensions are additive and never overwrite core fields.
type Metrics struct {
	MonthlyGrossIncome float64 `json:"monthly_gross_income"`
	MonthlyExpenses    float64 `json:"monthly_expenses"`
	MonthlyNOI         float64 `json:"monthly_noi"`
	AnnualNOI          float64 `json:"annual_noi"`
	MonthlyDebtService float64 `json:"monthly_debt_service"`
	MonthlyCashFlow    float64 `json:"monthly_cash_flow"`
	AnnualCashFlow     float64 `json:"annual_cash_flow"`

	// TotalCashInvested is the signed figure that feeds cash-on-cash return;
	// DisplayCashInvested is the same value floored at zero for presentation.
	TotalCashInvested   float64 `json:"total_cash_invested"`
	DisplayCashInvested float64 `json:"display_cash_invested"`

	CashOnCash               Return  `json:"cash_on_cash"`
	OperatingExpenseRatioPct float64 `json:"operating_expense_ratio_pct"`

	// Cap rate and DSCR are omitted for lease-option deals, where the
	// property-value concept behind them does not apply.
	CapRate *float64 `json:"cap_rate,omitempty"`
	DSCR    *float64 `json:"dscr,omitempty"`

	// LoanPayments is the per-slot monthly payment breakdown, keyed by slot
	// ("loan_1".."loan_3", or "initial_loan"/"refinance_loan" for BRRRR).
	LoanPayments map[string]float64 `json:"loan_payments,omitempty"`

	MultiFamily *MultiFamilyMetrics `json:"multi_family,omitempty"`
	LeaseOption *LeaseOptionMetrics `json:"lease_option,omitempty"`
	BRRRR       *BRRRRMetrics       `json:"brrrr,omitempty"`
	Balloon     *BalloonMetrics     `json:"balloon,omitempty"`
}

// MultiFamilyMetrics are the unit-mix extension metrics.
type MultiFamilyMetrics struct {
	TotalUnits         int     `json:"total_units"`
	PerUnitNOI         float64 `json:"per_unit_noi"`
	GrossPotentialRent float64 `json:"gross_potential_rent"`
	ActualGrossIncome  float64 `json:"actual_gross_income"`
	PricePerUnit       float64 `json:"price_per_unit"`
	OccupancyRatePct   float64 `json:"occupancy_rate_pct"`
}

// LeaseOptionMetrics are the rent-credit/option-fee extension metrics.
type LeaseOptionMetrics struct {
	MonthlyRentCredit      float64   `json:"monthly_rent_credit"`
	TotalRentCredits       float64   `json:"total_rent_credits"`
	EffectivePurchasePrice float64   `json:"effective_purchase_price"`
	OptionROIPct           float64   `json:"option_roi_pct"`
	BreakevenMonths        Breakeven `json:"breakeven_months"`
}

// BRRRRMetrics are the two-phase financing extension metrics.
type BRRRRMetrics struct {
	EquityCaptured    float64 `json:"equity_captured"`
	MaxAllowableOffer float64 `json:"max_allowable_offer"`
	// CashRecouped is the refinance recovery floored at zero for display;
	// the signed value already flowed into TotalCashInvested.
	CashRecouped float64 `json:"cash_recouped"`
	HoldingCosts float64 `json:"holding_costs"`
}

// BalloonMetrics are the pre/post balloon-refinance payment extension metrics.
type BalloonMetrics struct {
	PreBalloonPayment  float64 `json:"pre_balloon_payment"`
	PostBalloonPayment float64 `json:"post_balloon_payment"`
	PaymentDelta       float64 `json:"payment_delta"`
	RefinanceCosts     float64 `json:"refinance_costs"`
}

// Return is a percentage return that may be unbounded. It is unbounded
// exactly when the invested-capital denominator is zero or negative, so
// downstream code cannot accidentally compare it as a plain number.
type Return struct {
	Percent   float64
	Unbounded bool
}

// FiniteReturn wraps a plain percentage.
func FiniteReturn(pct float64) Return {
	return Return{Percent: pct}
}

// InfiniteReturn is the sentinel for a zero-or-negative cash basis.
func InfiniteReturn() Return {
	return Return{Unbounded: true}
}

// MarshalJSON renders the sentinel as the string "Infinite" and a finite
// value as a bare number, matching the legacy report wire shape.
func (r Return) MarshalJSON() ([]byte, error) {
	if r.Unbounded {
		return json.Marshal("Infinite")
	}
	return json.Marshal(r.Percent)
}

// UnmarshalJSON accepts either form produced by MarshalJSON.
func (r *Return) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = InfiniteReturn()
		return nil
	}
	var pct float64
	if err := json.Unmarshal(data, &pct); err != nil {
		return err
	}
	*r = FiniteReturn(pct)
	return nil
}

// Breakeven is a month count that may never arrive (non-positive cash flow).
type Breakeven struct {
	Months int
	Never  bool
}

// BreakevenAfter computes the months needed to recover upfront at the given
// monthly cash flow, rounding up. Non-positive cash flow never breaks even.
func BreakevenAfter(upfront, monthlyCashFlow float64) Breakeven {
	if monthlyCashFlow <= 0 {
		return Breakeven{Never: true}
	}
	return Breakeven{Months: int(math.Ceil(upfront / monthlyCashFlow))}
}

// MarshalJSON renders the never case as "Infinite", otherwise the month count.
func (b Breakeven) MarshalJSON() ([]byte, error) {
	if b.Never {
		return json.Marshal("Infinite")
	}
	return json.Marshal(b.Months)
}

// UnmarshalJSON accepts either form produced by MarshalJSON.
func (b *Breakeven) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*b = Breakeven{Never: true}
		return nil
	}
	var months int
	if err := json.Unmarshal(data, &months); err != nil {
		return err
	}
	*b = Breakeven{Months: months}
	return nil
}
