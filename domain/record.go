package domain

import (
	"time"

	"github.com/google/uuid"
)

// CalculationKind names the operation a record was produced by.
type CalculationKind string

const (
	KindSchedule    CalculationKind = "schedule"
	KindFutureValue CalculationKind = "future_value"
	KindPeriod      CalculationKind = "investment_period"
	KindReturnRate  CalculationKind = "return_rate"
)

// CalculationRecord is one served calculation kept by the repository.
type CalculationRecord struct {
	ID        uuid.UUID       `json:"id"`
	Kind      CalculationKind `json:"kind"`
	CreatedAt time.Time       `json:"createdAt"`
	Input     any             `json:"input"`
	Result    any             `json:"result"`
}
