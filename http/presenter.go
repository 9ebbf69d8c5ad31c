package http

import (
	"math"

	"deal-calculator/domain"
)

// roundTo2Decimals rounds a float64 to 2 decimals, half up.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// presentAnalysis is the display view of an analysis: every figure
// rounded to cents. The service keeps full precision internally so
// chained calculations do not accumulate rounding error.
func presentAnalysis(a domain.DealAnalysis) domain.DealAnalysis {
	m := &a.Metrics
	m.DownPayment = roundTo2Decimals(m.DownPayment)
	m.LoanAmount = roundTo2Decimals(m.LoanAmount)
	m.MonthlyPI = roundTo2Decimals(m.MonthlyPI)
	m.MonthlyPITI = roundTo2Decimals(m.MonthlyPITI)
	m.MonthlyPITIWithHOA = roundTo2Decimals(m.MonthlyPITIWithHOA)
	m.EffectiveGrossIncome = roundTo2Decimals(m.EffectiveGrossIncome)
	m.OperatingExpenses = roundTo2Decimals(m.OperatingExpenses)
	m.NetOperatingIncome = roundTo2Decimals(m.NetOperatingIncome)
	m.MonthlyCashFlow = roundTo2Decimals(m.MonthlyCashFlow)
	m.AnnualCashFlow = roundTo2Decimals(m.AnnualCashFlow)
	m.TotalCashInvested = roundTo2Decimals(m.TotalCashInvested)
	m.CapRatePct = roundTo2Decimals(m.CapRatePct)
	m.CashOnCashPct = roundTo2Decimals(m.CashOnCashPct)
	m.LoanToValuePct = roundTo2Decimals(m.LoanToValuePct)
	m.GrossRentMultiplier = roundTo2Decimals(m.GrossRentMultiplier)
	m.DebtServiceCoverage = roundTo2Decimals(m.DebtServiceCoverage)
	m.RentToPricePct = roundTo2Decimals(m.RentToPricePct)
	return a
}

// presentHouseHack rounds the house-hack figures for display.
func presentHouseHack(r domain.HouseHackResult) domain.HouseHackResult {
	r.MonthlyHousingPayment = roundTo2Decimals(r.MonthlyHousingPayment)
	r.NetHousingCost = roundTo2Decimals(r.NetHousingCost)
	r.CostReductionPct = roundTo2Decimals(r.CostReductionPct)
	r.OwnerOccupiedDownPayment = roundTo2Decimals(r.OwnerOccupiedDownPayment)
	r.InvestmentDownPayment = roundTo2Decimals(r.InvestmentDownPayment)
	r.DownPaymentSavings = roundTo2Decimals(r.DownPaymentSavings)
	return r
}
