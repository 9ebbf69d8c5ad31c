package domain

// HouseHackInput analyzes an owner-occupied deal where the other units
// are rented out while the owner lives in one.
type HouseHackInput struct {
	Property        PropertyFinancing `json:"property"`
	MonthlyRoomRent float64           `json:"monthly_room_rent"`
}

// HouseHackResult compares living costs with and without the rental
// offset, plus the financing advantage of owner occupancy.
type HouseHackResult struct {
	MonthlyHousingPayment float64 `json:"monthly_housing_payment"`
	NetHousingCost        float64 `json:"net_housing_cost"`
	CostReductionPct      float64 `json:"cost_reduction_pct"`

	OwnerOccupiedDownPayment float64 `json:"owner_occupied_down_payment"`
	InvestmentDownPayment    float64 `json:"investment_down_payment"`
	DownPaymentSavings       float64 `json:"down_payment_savings"`
}
