package repository

import "deal-calculator/domain"

// DealRepositoryMemory is an in-memory implementation of DealRepository.
type DealRepositoryMemory struct {
	data []domain.DealAnalysis
}

// NewDealRepositoryMemory creates a new in-memory deal repository.
func NewDealRepositoryMemory() *DealRepositoryMemory {
	return &DealRepositoryMemory{
		data: []domain.DealAnalysis{},
	}
}

// Save stores the deal analysis in memory.
func (r *DealRepositoryMemory) Save(
	input domain.DealInput,
	analysis domain.DealAnalysis,
) error {
	r.data = append(r.data, analysis)
	return nil
}
