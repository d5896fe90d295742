package service

import (
	"fmt"
	"math"
)

// Solve finds the root of an increasing f on [0, upper] by bisection and
// returns the midpoint of the final interval, which is at most 1e-6 wide.
//
// The caller must ensure f(0) <= 0 <= f(upper). The bracket is not checked;
// without a sign change the result converges to one of the bounds.
func Solve(f func(float64) float64, upper float64) float64 {
	lower := 0.0
	for upper-lower > solverTolerance {
		mid := (lower + upper) / 2
		if f(mid) > 0 {
			upper = mid
		} else {
			lower = mid
		}
	}
	return (lower + upper) / 2
}

// SolveBracketed is Solve with the bracket checked first. It returns
// ErrNoRootInBracket when f(0) > 0 or f(upper) < 0.
func SolveBracketed(f func(float64) float64, upper float64) (float64, error) {
	if upper <= 0 || isNaNOrInf(upper) {
		return 0, fmt.Errorf("upper bound %v: %w", upper, ErrInvalidArgument)
	}
	lo, hi := f(0), f(upper)
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > 0 || hi < 0 {
		return 0, fmt.Errorf("f(0)=%g, f(%g)=%g: %w", lo, upper, hi, ErrNoRootInBracket)
	}
	return Solve(f, upper), nil
}

// CalculateInvestmentPeriod returns the years, to one decimal, needed for
// presentValue plus monthlyContribution to grow to futureValue at annualRate
// (a fraction) compounded monthly. A target below presentValue cannot be
// reached by growth and yields ErrNoRootInBracket, with or without
// contributions.
func CalculateInvestmentPeriod(
	presentValue float64,
	futureValue float64,
	annualRate float64,
	monthlyContribution float64,
) (float64, error) {

	switch {
	case presentValue < 0 || isNaNOrInf(presentValue):
		return 0, fmt.Errorf("present value %v: %w", presentValue, ErrInvalidArgument)
	case futureValue <= 0 || isNaNOrInf(futureValue):
		return 0, fmt.Errorf("future value %v: %w", futureValue, ErrInvalidArgument)
	case annualRate <= 0 || isNaNOrInf(annualRate):
		return 0, fmt.Errorf("annual rate %v: %w", annualRate, ErrInvalidArgument)
	case monthlyContribution < 0 || isNaNOrInf(monthlyContribution):
		return 0, fmt.Errorf("monthly contribution %v: %w", monthlyContribution, ErrInvalidArgument)
	}

	monthlyRate := annualRate / monthsPerYear

	if monthlyContribution == 0 {
		if presentValue == 0 {
			return 0, fmt.Errorf("present value 0 without contributions: %w", ErrInvalidArgument)
		}
		if futureValue < presentValue {
			return 0, fmt.Errorf("investment period: future value %v below present value %v: %w",
				futureValue, presentValue, ErrNoRootInBracket)
		}
		years := math.Log(futureValue/presentValue) / (monthsPerYear * math.Log(1+monthlyRate))
		return RoundToNDecimal(years, 1), nil
	}

	equation := func(years float64) float64 {
		growth := math.Pow(1+monthlyRate, monthsPerYear*years)
		return presentValue*growth +
			monthlyContribution*(growth-1)/monthlyRate -
			futureValue
	}

	years, err := SolveBracketed(equation, PeriodSearchYears)
	if err != nil {
		return 0, fmt.Errorf("investment period: %w", err)
	}
	return RoundToNDecimal(years, 1), nil
}

// CalculateAnnualReturnRate returns the annual rate, as a fraction rounded to
// four decimals, at which presentValue plus monthlyContribution reaches
// futureValue after totalYears. Rates are searched in [0, 1].
func CalculateAnnualReturnRate(
	presentValue float64,
	futureValue float64,
	monthlyContribution float64,
	totalYears float64,
) (float64, error) {

	switch {
	case presentValue < 0 || isNaNOrInf(presentValue):
		return 0, fmt.Errorf("present value %v: %w", presentValue, ErrInvalidArgument)
	case futureValue <= 0 || isNaNOrInf(futureValue):
		return 0, fmt.Errorf("future value %v: %w", futureValue, ErrInvalidArgument)
	case monthlyContribution < 0 || isNaNOrInf(monthlyContribution):
		return 0, fmt.Errorf("monthly contribution %v: %w", monthlyContribution, ErrInvalidArgument)
	case totalYears <= 0 || isNaNOrInf(totalYears):
		return 0, fmt.Errorf("total years %v: %w", totalYears, ErrInvalidArgument)
	}

	totalMonths := totalYears * monthsPerYear

	// The present value compounds yearly, contributions monthly.
	equation := func(rate float64) float64 {
		if rate == 0 {
			return presentValue + monthlyContribution*totalMonths - futureValue
		}
		return presentValue*math.Pow(1+rate, totalYears) +
			monthlyContribution*(math.Pow(1+rate/monthsPerYear, totalMonths)-1)/(rate/monthsPerYear) -
			futureValue
	}

	rate, err := SolveBracketed(equation, RateSearchUpper)
	if err != nil {
		return 0, fmt.Errorf("annual return rate: %w", err)
	}
	return RoundToNDecimal(rate, 4), nil
}
