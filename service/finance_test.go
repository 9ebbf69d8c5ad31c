package service

import (
	"math"
	"testing"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestMonthlyMortgagePayment_StandardLoan(t *testing.T) {

	// 400k at 6% over 30 years is about $2,398.20 per month.
	payment := MonthlyMortgagePayment(400000, 6.0, 30)

	if !almostEqual(payment, 2398.20, 1.0) {
		t.Errorf("expected ~2398.20, got %.4f", payment)
	}
}

func TestMonthlyMortgagePayment_ZeroRate(t *testing.T) {

	principal := 300000.0
	payment := MonthlyMortgagePayment(principal, 0, 30)

	expected := principal / (30 * 12)
	if payment != expected {
		t.Errorf("expected exactly %.6f, got %.6f", expected, payment)
	}
}

func TestMonthlyMortgagePayment_NonNegative(t *testing.T) {

	rates := []float64{0, 0.5, 3.75, 6.0, 10.0}
	principals := []float64{0, 1000, 250000, 1_000_000}

	for _, rate := range rates {
		for _, principal := range principals {
			payment := MonthlyMortgagePayment(principal, rate, 30)
			if payment < 0 {
				t.Errorf("payment for principal=%.0f rate=%.2f is negative: %f", principal, rate, payment)
			}
		}
	}
}

func TestMonthlyMortgagePayment_IncreasesWithPrincipal(t *testing.T) {

	prev := MonthlyMortgagePayment(100000, 6.5, 30)
	for principal := 150000.0; principal <= 500000; principal += 50000 {
		payment := MonthlyMortgagePayment(principal, 6.5, 30)
		if payment <= prev {
			t.Errorf("payment did not increase at principal=%.0f: %.4f <= %.4f", principal, payment, prev)
		}
		prev = payment
	}
}

func TestMonthlyPITI(t *testing.T) {

	pi := MonthlyMortgagePayment(400000, 6.0, 30)
	piti := MonthlyPITI(400000, 6.0, 30, 4800, 1200)

	expected := pi + 400 + 100
	if !almostEqual(piti, expected, 1e-9) {
		t.Errorf("expected %.6f, got %.6f", expected, piti)
	}
}

func TestEffectiveGrossIncome(t *testing.T) {

	// 3000/month at 5% vacancy: 36000 * 0.95 = 34200 annually.
	egi := EffectiveGrossIncome(3000*12, 5)

	if !almostEqual(egi, 34200, 1e-6) {
		t.Errorf("expected ~34200, got %.6f", egi)
	}
}

func TestEffectiveGrossIncome_NoClamping(t *testing.T) {

	// Vacancy above 100% is not clamped; the discount simply goes past
	// the full amount.
	egi := EffectiveGrossIncome(12000, 150)

	if egi >= 0 {
		t.Errorf("expected negative EGI for 150%% vacancy, got %.2f", egi)
	}
}

func TestOperatingExpenses(t *testing.T) {

	egi := 34200.0
	opex := OperatingExpenses(egi, 5, 5, 10, 2400)

	expected := egi*0.05 + egi*0.05 + egi*0.10 + 2400
	if !almostEqual(opex, expected, 1e-9) {
		t.Errorf("expected %.4f, got %.4f", expected, opex)
	}
}

func TestNetOperatingIncome_MayBeNegative(t *testing.T) {

	noi := NetOperatingIncome(10000, 12500)

	if noi != -2500 {
		t.Errorf("expected -2500, got %.2f", noi)
	}
}

func TestMonthlyCashFlow_MayBeNegative(t *testing.T) {

	cashFlow := MonthlyCashFlow(24000, 2500)

	if !almostEqual(cashFlow, -500, 1e-9) {
		t.Errorf("expected -500, got %.4f", cashFlow)
	}
}

func TestCapRate(t *testing.T) {

	capRate := CapRate(24000, 400000)

	if !almostEqual(capRate, 6.0, 1e-9) {
		t.Errorf("expected 6.0, got %.6f", capRate)
	}
}

func TestCapRate_ZeroPrice(t *testing.T) {

	if got := CapRate(24000, 0); got != 0 {
		t.Errorf("expected 0 for zero purchase price, got %.4f", got)
	}
}

func TestCashOnCashReturn(t *testing.T) {

	coc := CashOnCashReturn(6000, 100000)

	if !almostEqual(coc, 6.0, 1e-9) {
		t.Errorf("expected 6.0, got %.6f", coc)
	}
}

func TestCashOnCashReturn_ZeroInvested(t *testing.T) {

	if got := CashOnCashReturn(6000, 0); got != 0 {
		t.Errorf("expected 0 for zero cash invested, got %.4f", got)
	}
}

func TestLoanToValue(t *testing.T) {

	if got := LoanToValue(400000, 500000); !almostEqual(got, 80, 1e-9) {
		t.Errorf("expected 80, got %.4f", got)
	}
	if got := LoanToValue(400000, 0); got != 0 {
		t.Errorf("expected 0 for zero value, got %.4f", got)
	}
}

func TestGrossRentMultiplier(t *testing.T) {

	if got := GrossRentMultiplier(400000, 2500*12); !almostEqual(got, 13.33, 0.01) {
		t.Errorf("expected ~13.33, got %.4f", got)
	}
	if got := GrossRentMultiplier(400000, 0); got != 0 {
		t.Errorf("expected 0 for zero rent, got %.4f", got)
	}
}

func TestDebtServiceCoverage(t *testing.T) {

	if got := DebtServiceCoverage(36000, 30000); !almostEqual(got, 1.2, 1e-9) {
		t.Errorf("expected 1.2, got %.4f", got)
	}
	if got := DebtServiceCoverage(36000, 0); got != 0 {
		t.Errorf("expected 0 for zero debt service, got %.4f", got)
	}
}
