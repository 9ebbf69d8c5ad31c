package service

import (
	"log"

	"deal-calculator/domain"
	"deal-calculator/repository"
)

type DealService struct {
	repo repository.DealRepository
}

// NewDealService creates a new DealService with the given repository.
func NewDealService(repo repository.DealRepository) *DealService {
	return &DealService{repo: repo}
}

// AnalyzeDeal derives the full metric set and its assessment from the
// input aggregates. The metrics are rebuilt from scratch on every call.
func (s *DealService) AnalyzeDeal(input domain.DealInput) domain.DealAnalysis {
	metrics := ComputeDealMetrics(input)
	analysis := domain.DealAnalysis{
		Metrics:    metrics,
		Assessment: AssessDeal(input, metrics),
	}

	// Keep a record of the analysis (not critical if it fails).
	if err := s.repo.Save(input, analysis); err != nil {
		log.Printf("Warning: failed to save deal analysis: %v", err)
	}

	return analysis
}

// ComputeDealMetrics assembles DealMetrics from the engine functions.
// Like the engine it does not validate; a zero loan term defaults to the
// standard 30-year fixed mortgage.
func ComputeDealMetrics(input domain.DealInput) domain.DealMetrics {
	p := input.Property
	r := input.Rental

	years := p.LoanTermYears
	if years == 0 {
		years = DefaultLoanTermYears
	}

	downPayment := p.PurchasePrice * (p.DownPaymentPct / 100)
	loanAmount := p.PurchasePrice - downPayment

	monthlyPI := MonthlyMortgagePayment(loanAmount, p.AnnualInterestRate, years)
	monthlyPITI := MonthlyPITI(loanAmount, p.AnnualInterestRate, years, p.AnnualPropertyTax, p.AnnualInsurance)
	monthlyPITIWithHOA := monthlyPITI + p.MonthlyHOA

	annualGrossRent := r.MonthlyGrossRent * 12
	egi := EffectiveGrossIncome(annualGrossRent, r.VacancyRatePct)
	opex := OperatingExpenses(egi, r.MaintenancePct, r.CapexPct, r.PropertyMgmtPct, r.MonthlyUtilities*12)
	noi := NetOperatingIncome(egi, opex)

	monthlyCashFlow := MonthlyCashFlow(noi, monthlyPITIWithHOA)
	annualCashFlow := monthlyCashFlow * 12
	totalCashInvested := downPayment + p.ClosingCosts

	rentToPricePct := 0.0
	if p.PurchasePrice != 0 {
		rentToPricePct = r.MonthlyGrossRent / p.PurchasePrice * 100
	}

	return domain.DealMetrics{
		DownPayment:          downPayment,
		LoanAmount:           loanAmount,
		MonthlyPI:            monthlyPI,
		MonthlyPITI:          monthlyPITI,
		MonthlyPITIWithHOA:   monthlyPITIWithHOA,
		EffectiveGrossIncome: egi,
		OperatingExpenses:    opex,
		NetOperatingIncome:   noi,
		MonthlyCashFlow:      monthlyCashFlow,
		AnnualCashFlow:       annualCashFlow,
		TotalCashInvested:    totalCashInvested,
		CapRatePct:           CapRate(noi, p.PurchasePrice),
		CashOnCashPct:        CashOnCashReturn(annualCashFlow, totalCashInvested),
		LoanToValuePct:       LoanToValue(loanAmount, p.PurchasePrice),
		GrossRentMultiplier:  GrossRentMultiplier(p.PurchasePrice, annualGrossRent),
		DebtServiceCoverage:  DebtServiceCoverage(noi, monthlyPI*12),
		RentToPricePct:       rentToPricePct,
	}
}
