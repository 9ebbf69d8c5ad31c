package report

import (
	"fmt"
	"math"

	"deal-calculator/domain"
)

type row struct {
	label string
	value string
}

// round2 applies half-up rounding to cents. Report values are the only
// place figures leave full float64 precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", round2(v))
}

func pct(v float64) string {
	return fmt.Sprintf("%.2f%%", round2(v))
}

func propertyRows(deal domain.DealInput) []row {
	p := deal.Property
	r := deal.Rental
	return []row{
		{"Purchase Price", money(p.PurchasePrice)},
		{"Down Payment", pct(p.DownPaymentPct)},
		{"Interest Rate", pct(p.AnnualInterestRate)},
		{"Loan Term (years)", fmt.Sprintf("%d", p.LoanTermYears)},
		{"Annual Property Tax", money(p.AnnualPropertyTax)},
		{"Annual Insurance", money(p.AnnualInsurance)},
		{"Monthly HOA", money(p.MonthlyHOA)},
		{"Closing Costs", money(p.ClosingCosts)},
		{"Monthly Gross Rent", money(r.MonthlyGrossRent)},
		{"Vacancy Rate", pct(r.VacancyRatePct)},
		{"Maintenance", pct(r.MaintenancePct)},
		{"CapEx", pct(r.CapexPct)},
		{"Property Management", pct(r.PropertyMgmtPct)},
		{"Monthly Utilities", money(r.MonthlyUtilities)},
	}
}

func analysisRows(analysis domain.DealAnalysis) []row {
	m := analysis.Metrics
	a := analysis.Assessment
	return []row{
		{"Down Payment", money(m.DownPayment)},
		{"Loan Amount", money(m.LoanAmount)},
		{"Monthly P&I", money(m.MonthlyPI)},
		{"Monthly PITI", money(m.MonthlyPITI)},
		{"Monthly PITI + HOA", money(m.MonthlyPITIWithHOA)},
		{"Effective Gross Income", money(m.EffectiveGrossIncome)},
		{"Operating Expenses", money(m.OperatingExpenses)},
		{"Net Operating Income", money(m.NetOperatingIncome)},
		{"Monthly Cash Flow", fmt.Sprintf("%s (%s)", money(m.MonthlyCashFlow), a.CashFlow)},
		{"Annual Cash Flow", money(m.AnnualCashFlow)},
		{"Total Cash Invested", money(m.TotalCashInvested)},
		{"Cap Rate", fmt.Sprintf("%s (%s)", pct(m.CapRatePct), a.CapRate)},
		{"Cash-on-Cash Return", fmt.Sprintf("%s (%s)", pct(m.CashOnCashPct), a.CashOnCash)},
		{"Loan-to-Value", pct(m.LoanToValuePct)},
		{"Gross Rent Multiplier", fmt.Sprintf("%.2f", round2(m.GrossRentMultiplier))},
		{"Debt Service Coverage", fmt.Sprintf("%.2f", round2(m.DebtServiceCoverage))},
		{"1% Rule", analysis.Assessment.OnePercentRule},
	}
}
