package service

import "deal-calculator/domain"

type HouseHackService struct{}

func NewHouseHackService() *HouseHackService {
	return &HouseHackService{}
}

// Analyze computes the owner-occupied picture: what housing costs after
// the rented units offset the payment, and how much less cash an
// owner-occupied loan needs up front compared to an investment loan.
func (s *HouseHackService) Analyze(input domain.HouseHackInput) domain.HouseHackResult {
	p := input.Property

	years := p.LoanTermYears
	if years == 0 {
		years = DefaultLoanTermYears
	}

	downPayment := p.PurchasePrice * (p.DownPaymentPct / 100)
	loanAmount := p.PurchasePrice - downPayment

	monthlyPayment := MonthlyPITI(loanAmount, p.AnnualInterestRate, years, p.AnnualPropertyTax, p.AnnualInsurance) + p.MonthlyHOA
	netHousingCost := monthlyPayment - input.MonthlyRoomRent

	reductionPct := 0.0
	if monthlyPayment != 0 {
		reductionPct = input.MonthlyRoomRent / monthlyPayment * 100
	}

	ownerOccupiedDown := p.PurchasePrice * (OwnerOccupiedDownPct / 100)
	investmentDown := p.PurchasePrice * (InvestmentDownPct / 100)

	return domain.HouseHackResult{
		MonthlyHousingPayment:    monthlyPayment,
		NetHousingCost:           netHousingCost,
		CostReductionPct:         reductionPct,
		OwnerOccupiedDownPayment: ownerOccupiedDown,
		InvestmentDownPayment:    investmentDown,
		DownPaymentSavings:       investmentDown - ownerOccupiedDown,
	}
}
