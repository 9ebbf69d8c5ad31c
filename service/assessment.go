package service

import "deal-calculator/domain"

// ClassifyCashFlow labels monthly cash flow by sign.
func ClassifyCashFlow(monthlyCashFlow float64) string {
	switch {
	case monthlyCashFlow > 0:
		return domain.CashFlowPositive
	case monthlyCashFlow == 0:
		return domain.CashFlowBreakEven
	default:
		return domain.CashFlowNegative
	}
}

// ClassifyCapRate labels a cap rate percentage, highest threshold first.
func ClassifyCapRate(capRatePct float64) string {
	switch {
	case capRatePct >= CapRateStrongMinPct:
		return domain.RatingStrong
	case capRatePct >= CapRateModerateMinPct:
		return domain.RatingModerate
	default:
		return domain.RatingLow
	}
}

// ClassifyCashOnCash labels a cash-on-cash return percentage, highest
// threshold first.
func ClassifyCashOnCash(cashOnCashPct float64) string {
	switch {
	case cashOnCashPct >= CashOnCashExcellentMinPct:
		return domain.RatingExcellent
	case cashOnCashPct >= CashOnCashModerateMinPct:
		return domain.RatingModerate
	default:
		return domain.RatingLow
	}
}

// ClassifyOnePercentRule checks whether monthly rent clears 1% of the
// purchase price.
func ClassifyOnePercentRule(monthlyRent, purchasePrice float64) string {
	if monthlyRent >= purchasePrice*OnePercentRuleRatio {
		return domain.OnePercentMeets
	}
	return domain.OnePercentBelow
}

// AssessDeal labels all headline metrics of a computed deal.
func AssessDeal(input domain.DealInput, metrics domain.DealMetrics) domain.DealAssessment {
	return domain.DealAssessment{
		CashFlow:       ClassifyCashFlow(metrics.MonthlyCashFlow),
		CapRate:        ClassifyCapRate(metrics.CapRatePct),
		CashOnCash:     ClassifyCashOnCash(metrics.CashOnCashPct),
		OnePercentRule: ClassifyOnePercentRule(input.Rental.MonthlyGrossRent, input.Property.PurchasePrice),
	}
}
