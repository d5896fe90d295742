package domain

type FutureValueInput struct {
	PresentValue        float64 `json:"presentValue"`
	AnnualRate          float64 `json:"annualRate"` // fraction, 0.05 means 5%
	MonthlyContribution float64 `json:"monthlyContribution"`
	TotalYears          int     `json:"totalYears"`
}

// FutureValueProjection compares simple and compound growth year by year.
// All three slices are indexed by year, 0 through TotalYears.
type FutureValueProjection struct {
	Principals          []float64 `json:"principals"`
	SimpleInterestFVs   []float64 `json:"simpleInterestFVs"`
	CompoundInterestFVs []float64 `json:"compoundInterestFVs"`
}

type InvestmentPeriodInput struct {
	PresentValue        float64 `json:"presentValue"`
	FutureValue         float64 `json:"futureValue"`
	AnnualRate          float64 `json:"annualRate"`
	MonthlyContribution float64 `json:"monthlyContribution"`
}

type InvestmentPeriodResult struct {
	Years float64 `json:"years"`
}

type ReturnRateInput struct {
	PresentValue        float64 `json:"presentValue"`
	FutureValue         float64 `json:"futureValue"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	TotalYears          float64 `json:"totalYears"`
}

type ReturnRateResult struct {
	AnnualRate float64 `json:"annualRate"`
}
