package repository

import (
	"sync"

	"invest-calc/domain"
)

// CalculationRepositoryMemory keeps served calculations in process memory.
type CalculationRepositoryMemory struct {
	mu   sync.RWMutex
	data []domain.CalculationRecord
}

// NewCalculationRepositoryMemory creates a new in-memory calculation repository.
func NewCalculationRepositoryMemory() *CalculationRepositoryMemory {
	return &CalculationRepositoryMemory{
		data: []domain.CalculationRecord{},
	}
}

// Save stores the record in memory.
func (r *CalculationRepositoryMemory) Save(record domain.CalculationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, record)
	return nil
}

// List returns a copy of the stored records, oldest first.
func (r *CalculationRepositoryMemory) List() ([]domain.CalculationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.CalculationRecord, len(r.data))
	copy(out, r.data)
	return out, nil
}
