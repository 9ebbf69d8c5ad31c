package service

// Classification thresholds. Boundary behavior is exact: a cap rate of
// exactly 8.0 rates strong, 7.999999 rates moderate.
const (
	CapRateStrongMinPct   = 8.0
	CapRateModerateMinPct = 6.0

	CashOnCashExcellentMinPct = 10.0
	CashOnCashModerateMinPct  = 6.0

	OnePercentRuleRatio = 0.01 // monthly rent vs purchase price

	// House-hack financing assumptions: owner-occupied vs conventional
	// investment down payment.
	OwnerOccupiedDownPct = 5.0
	InvestmentDownPct    = 25.0

	DefaultLoanTermYears = 30
)

// Documented input ranges for client UIs. The engine does not enforce
// these; values outside the ranges produce garbage-in/garbage-out
// arithmetic rather than errors.
const (
	MaxDownPaymentPct  = 50.0
	MaxInterestRatePct = 10.0
	MaxVacancyRatePct  = 20.0
	MaxExpensePct      = 15.0 // maintenance, capex, property management
)
