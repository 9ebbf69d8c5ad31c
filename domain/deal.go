package domain

// PropertyFinancing describes the purchase and loan side of a deal.
// Amounts are dollars, rates and percentages are expressed as 0-100.
type PropertyFinancing struct {
	PurchasePrice      float64 `json:"purchase_price"`
	DownPaymentPct     float64 `json:"down_payment_pct"`
	AnnualInterestRate float64 `json:"annual_interest_rate"`
	LoanTermYears      int     `json:"loan_term_years"`
	AnnualPropertyTax  float64 `json:"annual_property_tax"`
	AnnualInsurance    float64 `json:"annual_insurance"`
	MonthlyHOA         float64 `json:"monthly_hoa"`
	ClosingCosts       float64 `json:"closing_costs"`
}

// RentalOperations describes the income side of a deal. The expense
// percentages apply against effective gross income.
type RentalOperations struct {
	MonthlyGrossRent float64 `json:"monthly_gross_rent"`
	VacancyRatePct   float64 `json:"vacancy_rate_pct"`
	MaintenancePct   float64 `json:"maintenance_pct"`
	CapexPct         float64 `json:"capex_pct"`
	PropertyMgmtPct  float64 `json:"property_mgmt_pct"`
	MonthlyUtilities float64 `json:"monthly_utilities"`
}

// DealInput is the full request payload for a deal analysis.
type DealInput struct {
	Property PropertyFinancing `json:"property"`
	Rental   RentalOperations  `json:"rental"`
}

// DealMetrics holds every derived figure for a deal. It is rebuilt
// wholesale on each analysis, never patched field by field. Values carry
// full float64 precision; rounding to cents happens at presentation.
type DealMetrics struct {
	DownPayment          float64 `json:"down_payment"`
	LoanAmount           float64 `json:"loan_amount"`
	MonthlyPI            float64 `json:"monthly_principal_interest"`
	MonthlyPITI          float64 `json:"monthly_piti"`
	MonthlyPITIWithHOA   float64 `json:"monthly_piti_with_hoa"`
	EffectiveGrossIncome float64 `json:"effective_gross_income"`
	OperatingExpenses    float64 `json:"operating_expenses"`
	NetOperatingIncome   float64 `json:"net_operating_income"`
	MonthlyCashFlow      float64 `json:"monthly_cash_flow"`
	AnnualCashFlow       float64 `json:"annual_cash_flow"`
	TotalCashInvested    float64 `json:"total_cash_invested"`
	CapRatePct           float64 `json:"cap_rate_pct"`
	CashOnCashPct        float64 `json:"cash_on_cash_pct"`
	LoanToValuePct       float64 `json:"loan_to_value_pct"`
	GrossRentMultiplier  float64 `json:"gross_rent_multiplier"`
	DebtServiceCoverage  float64 `json:"debt_service_coverage"`
	RentToPricePct       float64 `json:"rent_to_price_pct"`
}

// DealAnalysis is the complete analysis output: the raw metrics plus
// their qualitative assessment.
type DealAnalysis struct {
	Metrics    DealMetrics    `json:"metrics"`
	Assessment DealAssessment `json:"assessment"`
}
