package service

import (
	"fmt"
	"math"

	"invest-calc/domain"
)

// InterestCalculator simulates an investment month by month. It holds no
// state and is safe for concurrent use.
type InterestCalculator struct{}

func NewInterestCalculator() *InterestCalculator {
	return &InterestCalculator{}
}

// Calculate builds the month-by-month schedule for input.
func (c *InterestCalculator) Calculate(
	input domain.InvestmentInput,
) (domain.InvestmentResult, error) {

	if err := validateInvestmentInput(input); err != nil {
		return domain.InvestmentResult{}, err
	}

	annualRate := input.NominalRate
	if input.RateType == domain.MonthlyRate {
		annualRate *= monthsPerYear
	}

	periodsPerYear, err := CompoundingPeriodsPerYear(input.CompoundingFrequency)
	if err != nil {
		return domain.InvestmentResult{}, err
	}

	// Every tick is one month; interest is folded into principal every
	// periodsPerContribution ticks.
	periodsPerContribution := monthsPerYear / periodsPerYear
	periodicRate := annualRate / monthsPerYear * 0.01
	if input.CompoundingFrequency == domain.CompoundDaily {
		periodicRate = math.Pow(1+annualRate/daysPerYear*0.01, daysPerMonth) - 1
		periodsPerContribution = 1
	}

	totalPeriods := input.InvestmentDuration
	if input.DurationUnit == domain.Year {
		totalPeriods *= monthsPerYear
	}

	result := domain.InvestmentResult{
		Contribution:            make([]float64, 0, totalPeriods+1),
		StartingBalances:        make([]float64, 0, totalPeriods),
		EndingBalances:          make([]float64, 0, totalPeriods+1),
		InterestEarnedPerPeriod: make([]float64, 0, totalPeriods),
		TotalInterestEarned:     make([]float64, 0, totalPeriods),
		TotalInvestment:         input.InitialInvestment,
	}
	result.Contribution = append(result.Contribution, input.InitialInvestment)
	result.EndingBalances = append(result.EndingBalances, roundTo2Decimals(input.InitialInvestment))

	currentPrincipal := input.InitialInvestment
	currentInterest := 0.0
	totalInterest := 0.0
	contributed := input.InitialInvestment

	for period := 0; period < totalPeriods; period++ {
		if period%periodsPerContribution == 0 {
			currentPrincipal += currentInterest
			currentInterest = 0
		}
		result.StartingBalances = append(result.StartingBalances,
			roundTo2Decimals(currentPrincipal+currentInterest))

		interest := currentPrincipal * periodicRate
		currentInterest += interest
		totalInterest += interest

		result.EndingBalances = append(result.EndingBalances,
			roundTo2Decimals(currentPrincipal+currentInterest))
		result.InterestEarnedPerPeriod = append(result.InterestEarnedPerPeriod,
			roundTo2Decimals(interest))
		result.TotalInterestEarned = append(result.TotalInterestEarned,
			roundTo2Decimals(totalInterest))

		contributed = roundTo2Decimals(contributed + input.PeriodicContribution)
		result.Contribution = append(result.Contribution, contributed)
		currentPrincipal += input.PeriodicContribution
	}

	// The last period's contribution is not counted.
	if totalPeriods >= 2 {
		result.TotalInvestment += float64(totalPeriods-1) * input.PeriodicContribution
	}

	result.APY = roundTo2Decimals(calculateAPY(annualRate, periodsPerYear))

	return result, nil
}

// CompoundingPeriodsPerYear returns how many times per year interest is
// compounded at frequency f.
func CompoundingPeriodsPerYear(f domain.CompoundingFrequency) (int, error) {
	switch f {
	case domain.CompoundYearly:
		return 1, nil
	case domain.CompoundSemiYearly:
		return 2, nil
	case domain.CompoundQuarterly:
		return 4, nil
	case domain.CompoundMonthly:
		return 12, nil
	case domain.CompoundDaily:
		return daysPerYear, nil
	default:
		return 0, fmt.Errorf("compounding frequency %d: %w", int(f), ErrInvalidArgument)
	}
}

// CalculateAPY converts an annual nominal rate in percent to the annual
// percentage yield at frequency f. The result is not rounded.
func CalculateAPY(annualRate float64, f domain.CompoundingFrequency) (float64, error) {
	periodsPerYear, err := CompoundingPeriodsPerYear(f)
	if err != nil {
		return 0, err
	}
	return calculateAPY(annualRate, periodsPerYear), nil
}

func calculateAPY(annualRate float64, periodsPerYear int) float64 {
	n := float64(periodsPerYear)
	return (math.Pow(1+annualRate/n*0.01, n) - 1) * 100
}

func validateInvestmentInput(input domain.InvestmentInput) error {
	switch {
	case input.InitialInvestment < 0 || isNaNOrInf(input.InitialInvestment):
		return fmt.Errorf("initial investment %v: %w", input.InitialInvestment, ErrInvalidArgument)
	case input.PeriodicContribution < 0 || isNaNOrInf(input.PeriodicContribution):
		return fmt.Errorf("periodic contribution %v: %w", input.PeriodicContribution, ErrInvalidArgument)
	case input.InvestmentDuration < 0:
		return fmt.Errorf("investment duration %d: %w", input.InvestmentDuration, ErrInvalidArgument)
	case input.DurationUnit == domain.Year && input.InvestmentDuration > MaxDurationMonths/monthsPerYear,
		input.DurationUnit == domain.Month && input.InvestmentDuration > MaxDurationMonths:
		return fmt.Errorf("investment duration %d %s exceeds %d months: %w",
			input.InvestmentDuration, input.DurationUnit, MaxDurationMonths, ErrInvalidArgument)
	case input.NominalRate < 0 || isNaNOrInf(input.NominalRate):
		return fmt.Errorf("interest rate %v: %w", input.NominalRate, ErrInvalidArgument)
	}
	if input.DurationUnit != domain.Year && input.DurationUnit != domain.Month {
		return fmt.Errorf("duration unit %d: %w", int(input.DurationUnit), ErrInvalidArgument)
	}
	if input.RateType != domain.YearlyRate && input.RateType != domain.MonthlyRate {
		return fmt.Errorf("interest rate type %d: %w", int(input.RateType), ErrInvalidArgument)
	}
	return nil
}

func isNaNOrInf(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
