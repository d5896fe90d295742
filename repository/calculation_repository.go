package repository

import "invest-calc/domain"

type CalculationRepository interface {
	Save(record domain.CalculationRecord) error
	List() ([]domain.CalculationRecord, error)
}
