package service

import "math"

// The functions in this file are the calculation engine: stateless,
// closed-form arithmetic over the caller's inputs. They do not validate.
// Out-of-range values (negative prices, vacancy above 100%) flow straight
// through the arithmetic and produce correspondingly nonsensical outputs;
// input bounds are the caller's job (see the UI limits in constants.go).
// No rounding happens here either, so chained calculations keep full
// float64 precision.

// MonthlyMortgagePayment returns the monthly principal-and-interest
// payment for a fully amortizing loan. A zero rate falls back to
// straight-line principal division.
func MonthlyMortgagePayment(principal, annualRatePct float64, years int) float64 {
	n := float64(years * 12)
	if annualRatePct == 0 {
		return principal / n
	}
	r := annualRatePct / 100 / 12
	pow := math.Pow(1+r, n)
	return principal * r * pow / (pow - 1)
}

// MonthlyPITI returns principal, interest, taxes and insurance per month.
// HOA dues are not part of PITI; callers add them separately.
func MonthlyPITI(principal, annualRatePct float64, years int, annualTaxes, annualInsurance float64) float64 {
	return MonthlyMortgagePayment(principal, annualRatePct, years) +
		annualTaxes/12 +
		annualInsurance/12
}

// EffectiveGrossIncome discounts annual gross rent by the vacancy rate.
func EffectiveGrossIncome(annualGrossRent, vacancyRatePct float64) float64 {
	return annualGrossRent * (1 - vacancyRatePct/100)
}

// OperatingExpenses totals the percentage-based reserves (each applied
// against effective gross income) plus owner-paid utilities.
func OperatingExpenses(egi, maintenancePct, capexPct, propMgmtPct, annualUtilities float64) float64 {
	return egi*(maintenancePct/100) +
		egi*(capexPct/100) +
		egi*(propMgmtPct/100) +
		annualUtilities
}

// NetOperatingIncome is income before debt service. May be negative.
func NetOperatingIncome(egi, operatingExpenses float64) float64 {
	return egi - operatingExpenses
}

// MonthlyCashFlow is NOI less debt service, per month. May be negative.
func MonthlyCashFlow(noi, monthlyPITI float64) float64 {
	return noi/12 - monthlyPITI
}

// CapRate returns NOI over purchase price as a percentage. Defined as 0
// for a zero purchase price so the function stays total.
func CapRate(noi, purchasePrice float64) float64 {
	if purchasePrice == 0 {
		return 0
	}
	return noi / purchasePrice * 100
}

// CashOnCashReturn returns annual cash flow over cash invested as a
// percentage. Defined as 0 for zero cash invested.
func CashOnCashReturn(annualCashFlow, totalCashInvested float64) float64 {
	if totalCashInvested == 0 {
		return 0
	}
	return annualCashFlow / totalCashInvested * 100
}

// LoanToValue returns the loan amount over property value as a
// percentage, 0 for a zero value.
func LoanToValue(loanAmount, propertyValue float64) float64 {
	if propertyValue == 0 {
		return 0
	}
	return loanAmount / propertyValue * 100
}

// GrossRentMultiplier returns purchase price over annual gross rent,
// 0 for zero rent.
func GrossRentMultiplier(purchasePrice, annualGrossRent float64) float64 {
	if annualGrossRent == 0 {
		return 0
	}
	return purchasePrice / annualGrossRent
}

// DebtServiceCoverage returns NOI over annual debt service, 0 for zero
// debt service.
func DebtServiceCoverage(noi, annualDebtService float64) float64 {
	if annualDebtService == 0 {
		return 0
	}
	return noi / annualDebtService
}
