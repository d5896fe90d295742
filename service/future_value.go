package service

import (
	"fmt"
	"math"

	"invest-calc/domain"
)

// CalculateFutureValue projects presentValue year by year under simple and
// compound growth, with monthlyContribution added every month. annualRate is
// a fraction (0.05 for 5%).
func CalculateFutureValue(
	presentValue float64,
	annualRate float64,
	monthlyContribution float64,
	totalYears int,
) (domain.FutureValueProjection, error) {

	if totalYears < 0 || totalYears > MaxProjectionYears {
		return domain.FutureValueProjection{}, fmt.Errorf("total years %d: %w", totalYears, ErrInvalidArgument)
	}
	if isNaNOrInf(presentValue) || isNaNOrInf(annualRate) || isNaNOrInf(monthlyContribution) {
		return domain.FutureValueProjection{}, fmt.Errorf("non-finite input: %w", ErrInvalidArgument)
	}

	monthlyRate := annualRate / monthsPerYear
	start := roundTo2Decimals(presentValue)

	p := domain.FutureValueProjection{
		Principals:          make([]float64, 1, totalYears+1),
		SimpleInterestFVs:   make([]float64, 1, totalYears+1),
		CompoundInterestFVs: make([]float64, 1, totalYears+1),
	}
	p.Principals[0] = start
	p.SimpleInterestFVs[0] = start
	p.CompoundInterestFVs[0] = start

	for year := 0; year < totalYears; year++ {
		compound := p.CompoundInterestFVs[year] * (1 + annualRate)

		// Month k's contribution compounds for the 12-k months left in the year.
		for k := 0; k < monthsPerYear; k++ {
			compound += monthlyContribution * math.Pow(1+monthlyRate, float64(monthsPerYear-k))
		}

		principal := roundTo2Decimals(p.Principals[year] + monthlyContribution*monthsPerYear)
		p.Principals = append(p.Principals, principal)
		p.SimpleInterestFVs = append(p.SimpleInterestFVs,
			roundTo2Decimals(principal*(1+annualRate*float64(year+1))))
		p.CompoundInterestFVs = append(p.CompoundInterestFVs, roundTo2Decimals(compound))
	}

	return p, nil
}
