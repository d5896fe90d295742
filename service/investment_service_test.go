package service

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"invest-calc/domain"
	"invest-calc/repository"
)

type MockCalculationRepository struct {
	Saved      []domain.CalculationRecord
	ForceError bool
}

func (m *MockCalculationRepository) Save(record domain.CalculationRecord) error {
	if m.ForceError {
		return errors.New("save error")
	}
	m.Saved = append(m.Saved, record)
	return nil
}

func (m *MockCalculationRepository) List() ([]domain.CalculationRecord, error) {
	return m.Saved, nil
}

type MockCache struct {
	Data       map[string]string
	Gets       int
	ForceError bool
}

func (m *MockCache) Get(key string) (string, bool) {
	m.Gets++
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value string) error {
	if m.ForceError {
		return errors.New("cache down")
	}
	m.Data[key] = value
	return nil
}

func newTestService(repo repository.CalculationRepository, cache repository.CacheRepository) *InvestmentService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s := NewInvestmentService(repo, cache, logger)
	s.now = func() time.Time { return time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC) }
	return s
}

var scheduleInput = domain.InvestmentInput{
	InitialInvestment:    1000,
	InvestmentDuration:   12,
	DurationUnit:         domain.Month,
	NominalRate:          12,
	RateType:             domain.YearlyRate,
	CompoundingFrequency: domain.CompoundMonthly,
}

func TestSchedule(t *testing.T) {
	repo := &MockCalculationRepository{}
	service := newTestService(repo, &MockCache{Data: map[string]string{}})

	resp, err := service.Schedule(scheduleInput)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Summary.TotalBalance != 1126.83 {
		t.Errorf("expected balance 1126.83, got %.2f", resp.Summary.TotalBalance)
	}
	if resp.Summary.Principal != 1000 {
		t.Errorf("expected principal 1000, got %.2f", resp.Summary.Principal)
	}
	if len(resp.Chart.Labels) != 13 || resp.Chart.Labels[0] != "2025-01-01" {
		t.Errorf("unexpected chart labels %v", resp.Chart.Labels)
	}
	if len(repo.Saved) != 1 || repo.Saved[0].Kind != domain.KindSchedule {
		t.Errorf("expected one schedule record, got %+v", repo.Saved)
	}
}

func TestSchedule_ServedFromCache(t *testing.T) {
	cache := &MockCache{Data: map[string]string{}}
	repo := &MockCalculationRepository{}
	service := newTestService(repo, cache)

	first, err := service.Schedule(scheduleInput)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cache.Data) != 1 {
		t.Fatalf("expected result to be cached, cache has %d entries", len(cache.Data))
	}

	second, err := service.Schedule(scheduleInput)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Summary != first.Summary || len(second.Result.EndingBalances) != 13 {
		t.Errorf("cached result differs: %+v vs %+v", second.Summary, first.Summary)
	}
	if len(repo.Saved) != 2 {
		t.Errorf("expected both calls recorded, got %d", len(repo.Saved))
	}
}

func TestSchedule_CorruptCacheEntryIsRecomputed(t *testing.T) {
	cache := &MockCache{Data: map[string]string{}}
	service := newTestService(&MockCalculationRepository{}, cache)

	key, err := cacheKey(domain.KindSchedule, scheduleInput)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cache.Data[key] = "{not json"

	resp, err := service.Schedule(scheduleInput)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Summary.TotalBalance != 1126.83 {
		t.Errorf("expected recomputed balance 1126.83, got %.2f", resp.Summary.TotalBalance)
	}
}

func TestSchedule_StoreFailuresDoNotFail(t *testing.T) {
	repo := &MockCalculationRepository{ForceError: true}
	service := newTestService(repo, &MockCache{Data: map[string]string{}, ForceError: true})

	if _, err := service.Schedule(scheduleInput); err != nil {
		t.Errorf("expected success despite storage errors, got %v", err)
	}
}

func TestSchedule_Limits(t *testing.T) {
	service := newTestService(&MockCalculationRepository{}, &MockCache{Data: map[string]string{}})

	tooLong := scheduleInput
	tooLong.DurationUnit = domain.Year
	tooLong.InvestmentDuration = 101
	if _, err := service.Schedule(tooLong); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for long duration, got %v", err)
	}

	wrapped := scheduleInput
	wrapped.DurationUnit = domain.Year
	wrapped.InvestmentDuration = 768614336404564651
	if _, err := service.Schedule(wrapped); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for overflowing duration, got %v", err)
	}

	tooMuch := scheduleInput
	tooMuch.InitialInvestment = MaxAmount * 2
	if _, err := service.Schedule(tooMuch); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for large amount, got %v", err)
	}

	tooHigh := scheduleInput
	tooHigh.NominalRate = MaxInterestRate + 1
	if _, err := service.Schedule(tooHigh); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for high rate, got %v", err)
	}
}

func TestSchedule_InvalidInputNotRecorded(t *testing.T) {
	repo := &MockCalculationRepository{}
	service := newTestService(repo, &MockCache{Data: map[string]string{}})

	bad := scheduleInput
	bad.InitialInvestment = -1
	if _, err := service.Schedule(bad); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if len(repo.Saved) != 0 {
		t.Errorf("repository Save should NOT be called")
	}
}

func TestFutureValue(t *testing.T) {
	service := newTestService(&MockCalculationRepository{}, &MockCache{Data: map[string]string{}})

	p, err := service.FutureValue(domain.FutureValueInput{PresentValue: 1000, AnnualRate: 0.05, TotalYears: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.CompoundInterestFVs[2] != 1102.5 {
		t.Errorf("expected 1102.50, got %.2f", p.CompoundInterestFVs[2])
	}

	if _, err := service.FutureValue(domain.FutureValueInput{PresentValue: 1000, TotalYears: MaxProjectionYears + 1}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for long projection, got %v", err)
	}
}

func TestInvestmentPeriodAndReturnRate(t *testing.T) {
	repo := &MockCalculationRepository{}
	service := newTestService(repo, &MockCache{Data: map[string]string{}})

	period, err := service.InvestmentPeriod(domain.InvestmentPeriodInput{PresentValue: 1000, FutureValue: 2000, AnnualRate: 0.06})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if period.Years != 11.6 {
		t.Errorf("expected 11.6 years, got %v", period.Years)
	}

	rate, err := service.ReturnRate(domain.ReturnRateInput{PresentValue: 1000, FutureValue: 1628.89, TotalYears: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate.AnnualRate != 0.05 {
		t.Errorf("expected 0.05, got %v", rate.AnnualRate)
	}

	if _, err := service.ReturnRate(domain.ReturnRateInput{PresentValue: 1000, FutureValue: 500, TotalYears: 10}); !errors.Is(err, ErrNoRootInBracket) {
		t.Errorf("expected ErrNoRootInBracket, got %v", err)
	}

	history, err := service.History()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 records, got %d", len(history))
	}
	if history[0].Kind != domain.KindPeriod || history[1].Kind != domain.KindReturnRate {
		t.Errorf("unexpected record kinds %s, %s", history[0].Kind, history[1].Kind)
	}
}

func TestCacheKey(t *testing.T) {
	a, err := cacheKey(domain.KindSchedule, scheduleInput)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _ := cacheKey(domain.KindSchedule, scheduleInput)
	if a != b {
		t.Errorf("expected stable key, got %s and %s", a, b)
	}

	other := scheduleInput
	other.NominalRate = 11
	c, _ := cacheKey(domain.KindSchedule, other)
	if a == c {
		t.Errorf("expected different inputs to produce different keys")
	}

	d, _ := cacheKey(domain.KindFutureValue, scheduleInput)
	if a == d {
		t.Errorf("expected kind to be part of the key")
	}
}
