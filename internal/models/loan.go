package models

// Loan represents a single financing slot on a deal
type Loan struct {
	Amount        float64 `json:"amount"`
	AnnualRatePct float64 `json:"annual_rate_pct"`
	TermMonths    int     `json:"term_months"`
	DownPayment   float64 `json:"down_payment"`
	ClosingCosts  float64 `json:"closing_costs"`
	InterestOnly  bool    `json:"interest_only"`
}

// Populated reports whether the slot carries actual financing.
func (l Loan) Populated() bool {
	return l.Amount > 0
}
