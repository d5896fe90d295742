package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"invest-calc/domain"
	"invest-calc/repository"
)

// InvestmentService serves the calculators with result caching and keeps a
// record of every calculation it answers.
type InvestmentService struct {
	repo       repository.CalculationRepository
	cache      repository.CacheRepository
	calculator *InterestCalculator
	log        *logrus.Logger
	now        func() time.Time
}

// NewInvestmentService creates a new InvestmentService with the given repository and cache.
func NewInvestmentService(
	repo repository.CalculationRepository,
	cache repository.CacheRepository,
	log *logrus.Logger,
) *InvestmentService {
	return &InvestmentService{
		repo:       repo,
		cache:      cache,
		calculator: NewInterestCalculator(),
		log:        log,
		now:        time.Now,
	}
}

// Schedule computes the month-by-month schedule for input along with its
// summary and chart series.
func (s *InvestmentService) Schedule(
	input domain.InvestmentInput,
) (domain.ScheduleResponse, error) {

	if input.InitialInvestment > MaxAmount || input.PeriodicContribution > MaxAmount {
		return domain.ScheduleResponse{}, fmt.Errorf("amount exceeds the maximum of %.2f: %w", MaxAmount, ErrInvalidArgument)
	}
	if input.NominalRate > MaxInterestRate {
		return domain.ScheduleResponse{}, fmt.Errorf("interest rate exceeds the maximum of %.2f%%: %w", MaxInterestRate, ErrInvalidArgument)
	}
	result, err := cached(s, domain.KindSchedule, input, func() (domain.InvestmentResult, error) {
		return s.calculator.Calculate(input)
	})
	if err != nil {
		return domain.ScheduleResponse{}, err
	}

	return domain.ScheduleResponse{
		Result:  result,
		Summary: Summarize(result),
		Chart:   ChartSeries(result, input.DurationUnit, s.now()),
	}, nil
}

// FutureValue projects simple and compound growth year by year.
func (s *InvestmentService) FutureValue(
	input domain.FutureValueInput,
) (domain.FutureValueProjection, error) {

	if input.PresentValue < 0 || input.MonthlyContribution < 0 {
		return domain.FutureValueProjection{}, fmt.Errorf("negative amount: %w", ErrInvalidArgument)
	}
	if input.PresentValue > MaxAmount || input.MonthlyContribution > MaxAmount {
		return domain.FutureValueProjection{}, fmt.Errorf("amount exceeds the maximum of %.2f: %w", MaxAmount, ErrInvalidArgument)
	}
	return cached(s, domain.KindFutureValue, input, func() (domain.FutureValueProjection, error) {
		return CalculateFutureValue(input.PresentValue, input.AnnualRate, input.MonthlyContribution, input.TotalYears)
	})
}

// InvestmentPeriod solves for the years needed to reach the future value.
func (s *InvestmentService) InvestmentPeriod(
	input domain.InvestmentPeriodInput,
) (domain.InvestmentPeriodResult, error) {

	return cached(s, domain.KindPeriod, input, func() (domain.InvestmentPeriodResult, error) {
		years, err := CalculateInvestmentPeriod(input.PresentValue, input.FutureValue, input.AnnualRate, input.MonthlyContribution)
		return domain.InvestmentPeriodResult{Years: years}, err
	})
}

// ReturnRate solves for the annual rate that reaches the future value.
func (s *InvestmentService) ReturnRate(
	input domain.ReturnRateInput,
) (domain.ReturnRateResult, error) {

	return cached(s, domain.KindReturnRate, input, func() (domain.ReturnRateResult, error) {
		rate, err := CalculateAnnualReturnRate(input.PresentValue, input.FutureValue, input.MonthlyContribution, input.TotalYears)
		return domain.ReturnRateResult{AnnualRate: rate}, err
	})
}

// History returns the calculations served so far.
func (s *InvestmentService) History() ([]domain.CalculationRecord, error) {
	return s.repo.List()
}

// cached looks the input up in the cache before running compute, then stores
// and records the fresh result. Cache and repository failures are logged and
// never fail the calculation.
func cached[T any](
	s *InvestmentService,
	kind domain.CalculationKind,
	input any,
	compute func() (T, error),
) (T, error) {

	var zero T
	entry := s.log.WithField("kind", kind)

	key, err := cacheKey(kind, input)
	if err != nil {
		entry.WithError(err).Warn("failed to build cache key")
	}

	if key != "" {
		if raw, ok := s.cache.Get(key); ok {
			var hit T
			if err := json.Unmarshal([]byte(raw), &hit); err == nil {
				entry.Debug("cache hit")
				s.record(kind, input, hit)
				return hit, nil
			}
			entry.WithField("key", key).Warn("discarding unreadable cache entry")
		}
	}

	result, err := compute()
	if err != nil {
		return zero, err
	}

	if key != "" {
		if raw, err := json.Marshal(result); err != nil {
			entry.WithError(err).Warn("failed to encode result for cache")
		} else if err := s.cache.Set(key, string(raw)); err != nil {
			entry.WithError(err).Warn("failed to cache calculation")
		}
	}

	s.record(kind, input, result)
	return result, nil
}

func (s *InvestmentService) record(kind domain.CalculationKind, input, result any) {
	rec := domain.CalculationRecord{
		ID:        uuid.New(),
		Kind:      kind,
		CreatedAt: s.now().UTC(),
		Input:     input,
		Result:    result,
	}
	if err := s.repo.Save(rec); err != nil {
		s.log.WithError(err).WithField("kind", kind).Warn("failed to save calculation")
	}
}

// cacheKey hashes the JSON form of input, so equal inputs share an entry.
func cacheKey(kind domain.CalculationKind, input any) (string, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	return string(kind) + ":" + strconv.FormatUint(xxhash.Sum64(raw), 16), nil
}
