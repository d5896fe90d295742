package service

import (
	"time"

	"invest-calc/domain"
)

const chartDateLayout = "2006-01-02"

// ChartSeries samples a schedule's ending balances for plotting. Yearly
// durations keep every twelfth balance so there is one point per year; labels
// are the ISO dates of each point counted from start. The series is sized by
// the schedule itself, never by a caller-supplied duration.
func ChartSeries(
	result domain.InvestmentResult,
	unit domain.TimePeriodUnit,
	start time.Time,
) domain.ChartSeries {

	points := len(result.EndingBalances)
	if unit == domain.Year {
		points = (points + monthsPerYear - 1) / monthsPerYear
	}
	series := domain.ChartSeries{
		Labels: make([]string, 0, points),
		Values: make([]float64, 0, points),
	}

	for i, balance := range result.EndingBalances {
		if unit == domain.Year && i%monthsPerYear != 0 {
			continue
		}
		series.Values = append(series.Values, balance)
	}

	start = start.UTC()
	for i := range series.Values {
		if unit == domain.Year {
			series.Labels = append(series.Labels, start.AddDate(i, 0, 0).Format(chartDateLayout))
		} else {
			series.Labels = append(series.Labels, start.AddDate(0, i, 0).Format(chartDateLayout))
		}
	}

	return series
}

// Summarize returns the final balance of a schedule split into principal and
// interest.
func Summarize(result domain.InvestmentResult) domain.InvestmentSummary {
	var summary domain.InvestmentSummary
	if n := len(result.EndingBalances); n > 0 {
		summary.TotalBalance = result.EndingBalances[n-1]
	}
	if n := len(result.TotalInterestEarned); n > 0 {
		summary.TotalInterest = result.TotalInterestEarned[n-1]
	}
	summary.Principal = roundTo2Decimals(summary.TotalBalance - summary.TotalInterest)
	return summary
}
