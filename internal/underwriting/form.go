package underwriting

import (
	"time"

	"github.com/dealgrind/underwriting-service/internal/models"
)

// AnalysisFromForm builds a typed analysis record from a loosely typed form
// payload, the shape a web form posts: numbers may arrive as currency or
// percent strings, fields may be missing. Every numeric leaf goes through
// Coerce, so a partially filled form still yields a computable record.
func AnalysisFromForm(form map[string]any) *models.Analysis {
	a := &models.Analysis{
		Strategy:         models.Strategy(str(form["strategy"])),
		PurchasePrice:    Coerce(form["purchase_price"]),
		AfterRepairValue: Coerce(form["after_repair_value"]),
		RenovationCosts:  Coerce(form["renovation_costs"]),
		RenovationMonths: Coerce(form["renovation_months"]),
		ClosingCosts:     Coerce(form["closing_costs"]),
		CashToSeller:     Coerce(form["cash_to_seller"]),
		AssignmentFee:    Coerce(form["assignment_fee"]),
		MarketingCosts:   Coerce(form["marketing_costs"]),
		MonthlyRent:      Coerce(form["monthly_rent"]),
		OtherIncome:      Coerce(form["other_income"]),
		PropertyTaxes:    Coerce(form["property_taxes"]),
		Insurance:        Coerce(form["insurance"]),
		HOAFees:          Coerce(form["hoa_coa_coop"]),
		ManagementFeePct: Coerce(form["management_fee_pct"]),
		CapExPct:         Coerce(form["capex_pct"]),
		VacancyPct:       Coerce(form["vacancy_pct"]),
		RepairsPct:       Coerce(form["repairs_pct"]),
	}

	for _, raw := range list(form["loans"]) {
		a.Loans = append(a.Loans, loanFromForm(obj(raw)))
	}

	if mf, ok := form["multi_family"].(map[string]any); ok {
		details := &models.MultiFamilyDetails{
			CommonAreaMaintenance: Coerce(mf["common_area_maintenance"]),
			ElevatorMaintenance:   Coerce(mf["elevator_maintenance"]),
			StaffPayroll:          Coerce(mf["staff_payroll"]),
			TrashRemoval:          Coerce(mf["trash_removal"]),
			CommonUtilities:       Coerce(mf["common_utilities"]),
		}
		for _, raw := range list(mf["units"]) {
			u := obj(raw)
			details.Units = append(details.Units, models.UnitType{
				Type:          str(u["type"]),
				UnitCount:     int(Coerce(u["unit_count"])),
				OccupiedCount: int(Coerce(u["occupied_count"])),
				SquareFootage: Coerce(u["square_footage"]),
				MonthlyRent:   Coerce(u["monthly_rent"]),
			})
		}
		a.MultiFamily = details
	}

	if ps, ok := form["padsplit"].(map[string]any); ok {
		a.PadSplit = &models.PadSplitDetails{
			Utilities:       Coerce(ps["utilities"]),
			Internet:        Coerce(ps["internet"]),
			Cleaning:        Coerce(ps["cleaning"]),
			PestControl:     Coerce(ps["pest_control"]),
			Landscaping:     Coerce(ps["landscaping"]),
			PlatformFeePct:  Coerce(ps["platform_fee_pct"]),
			FurnishingCosts: Coerce(ps["furnishing_costs"]),
		}
	}

	if br, ok := form["brrrr"].(map[string]any); ok {
		a.BRRRR = &models.BRRRRFinancing{
			InitialLoan:   loanFromForm(obj(br["initial_loan"])),
			RefinanceLoan: loanFromForm(obj(br["refinance_loan"])),
		}
	}

	if lo, ok := form["lease_option"].(map[string]any); ok {
		a.LeaseOption = &models.LeaseOptionTerms{
			StrikePrice:   Coerce(lo["strike_price"]),
			OptionFee:     Coerce(lo["option_fee"]),
			TermMonths:    int(Coerce(lo["term_months"])),
			RentCreditPct: Coerce(lo["rent_credit_pct"]),
			RentCreditCap: Coerce(lo["rent_credit_cap"]),
		}
	}

	if b, ok := form["balloon"].(map[string]any); ok {
		balloon := &models.Balloon{
			HasBalloonPayment: truthy(b["has_balloon_payment"]),
			RefinanceLoan:     loanFromForm(obj(b["refinance_loan"])),
		}
		if due, err := time.Parse("2006-01-02", str(b["due_date"])); err == nil {
			balloon.DueDate = due
		}
		a.Balloon = balloon
	}

	return a
}

func loanFromForm(m map[string]any) models.Loan {
	return models.Loan{
		Amount:        Coerce(m["amount"]),
		AnnualRatePct: Coerce(m["annual_rate_pct"]),
		TermMonths:    int(Coerce(m["term_months"])),
		DownPayment:   Coerce(m["down_payment"]),
		ClosingCosts:  Coerce(m["closing_costs"]),
		InterestOnly:  truthy(m["interest_only"]),
	}
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func obj(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func list(v any) []any {
	l, _ := v.([]any)
	return l
}

func truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return x == "true" || x == "on" || x == "1" || x == "yes"
	}
	return Coerce(v) != 0
}
