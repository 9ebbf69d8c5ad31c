package domain

// Qualitative labels produced by the classification heuristics.
const (
	CashFlowPositive  = "positive"
	CashFlowBreakEven = "break_even"
	CashFlowNegative  = "negative"

	RatingStrong    = "strong"
	RatingModerate  = "moderate"
	RatingLow       = "low"
	RatingExcellent = "excellent"

	OnePercentMeets = "meets"
	OnePercentBelow = "below"
)

// DealAssessment labels the headline metrics of a deal.
type DealAssessment struct {
	CashFlow       string `json:"cash_flow"`
	CapRate        string `json:"cap_rate"`
	CashOnCash     string `json:"cash_on_cash"`
	OnePercentRule string `json:"one_percent_rule"`
}
