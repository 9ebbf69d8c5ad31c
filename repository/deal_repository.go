package repository

import "deal-calculator/domain"

// DealRepository records completed deal analyses.
type DealRepository interface {
	Save(input domain.DealInput, analysis domain.DealAnalysis) error
}
