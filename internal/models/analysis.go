package models

import "time"

// Analysis describes a deal under evaluation. The shared base carries the
// fields every strategy uses; strategy-specific fields live on the optional
// payload sub-structs, so the type system says which fields are meaningful
// for which strategy instead of runtime field-presence checks.
type Analysis struct {
	Strategy Strategy `json:"strategy"`

	// Acquisition
	PurchasePrice    float64 `json:"purchase_price"`
	AfterRepairValue float64 `json:"after_repair_value"`
	RenovationCosts  float64 `json:"renovation_costs"`
	RenovationMonths float64 `json:"renovation_months"`
	ClosingCosts     float64 `json:"closing_costs"`
	CashToSeller     float64 `json:"cash_to_seller"`
	AssignmentFee    float64 `json:"assignment_fee"`
	MarketingCosts   float64 `json:"marketing_costs"`

	// Income (single-rent strategies; multi-family income lives on MultiFamily)
	MonthlyRent float64 `json:"monthly_rent"`
	OtherIncome float64 `json:"other_income"`

	// Fixed monthly operating expenses
	PropertyTaxes float64 `json:"property_taxes"`
	Insurance     float64 `json:"insurance"`
	HOAFees       float64 `json:"hoa_coa_coop"`

	// Percentage-of-income expenses, each in [0, 100]
	ManagementFeePct float64 `json:"management_fee_pct"`
	CapExPct         float64 `json:"capex_pct"`
	VacancyPct       float64 `json:"vacancy_pct"`
	RepairsPct       float64 `json:"repairs_pct"`

	// Financing: up to three independent slots. BRRRR deals use the
	// two-phase structure on the BRRRR payload instead.
	Loans []Loan `json:"loans,omitempty"`

	MultiFamily *MultiFamilyDetails `json:"multi_family,omitempty"`
	PadSplit    *PadSplitDetails    `json:"padsplit,omitempty"`
	BRRRR       *BRRRRFinancing     `json:"brrrr,omitempty"`
	LeaseOption *LeaseOptionTerms   `json:"lease_option,omitempty"`
	Balloon     *Balloon            `json:"balloon,omitempty"`
}

// UnitType is one row of a multi-family unit mix.
type UnitType struct {
	Type          string  `json:"type"`
	UnitCount     int     `json:"unit_count"`
	OccupiedCount int     `json:"occupied_count"`
	SquareFootage float64 `json:"square_footage"`
	MonthlyRent   float64 `json:"monthly_rent"`
}

// MultiFamilyDetails carries the unit mix and the common-area cost lines
// that only apply to multi-family deals.
type MultiFamilyDetails struct {
	Units                 []UnitType `json:"units"`
	CommonAreaMaintenance float64    `json:"common_area_maintenance"`
	ElevatorMaintenance   float64    `json:"elevator_maintenance"`
	StaffPayroll          float64    `json:"staff_payroll"`
	TrashRemoval          float64    `json:"trash_removal"`
	CommonUtilities       float64    `json:"common_utilities"`
}

// PadSplitDetails carries the co-living cost lines for PadSplit strategies.
type PadSplitDetails struct {
	Utilities       float64 `json:"utilities"`
	Internet        float64 `json:"internet"`
	Cleaning        float64 `json:"cleaning"`
	PestControl     float64 `json:"pest_control"`
	Landscaping     float64 `json:"landscaping"`
	PlatformFeePct  float64 `json:"platform_fee_pct"`
	FurnishingCosts float64 `json:"furnishing_costs"`
}

// BRRRRFinancing is the two-phase financing structure: a bridge loan that
// carries the renovation and a refinance that becomes the permanent debt.
type BRRRRFinancing struct {
	InitialLoan   Loan `json:"initial_loan"`
	RefinanceLoan Loan `json:"refinance_loan"`
}

// LeaseOptionTerms describes the option economics of a lease-option deal.
type LeaseOptionTerms struct {
	StrikePrice   float64 `json:"strike_price"`
	OptionFee     float64 `json:"option_fee"`
	TermMonths    int     `json:"term_months"`
	RentCreditPct float64 `json:"rent_credit_pct"`
	RentCreditCap float64 `json:"rent_credit_cap"`
}

// Balloon describes a loan structure where the original financing is
// replaced by a refinance at a fixed future date. Available on any strategy.
type Balloon struct {
	HasBalloonPayment bool      `json:"has_balloon_payment"`
	DueDate           time.Time `json:"due_date"`
	RefinanceLoan     Loan      `json:"refinance_loan"`
}
