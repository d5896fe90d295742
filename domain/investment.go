package domain

// InvestmentInput holds the parameters of a compounding schedule.
type InvestmentInput struct {
	InitialInvestment    float64              `json:"initialInvestment"`
	PeriodicContribution float64              `json:"periodicContribution"`
	InvestmentDuration   int                  `json:"investmentDuration"`
	DurationUnit         TimePeriodUnit       `json:"durationUnit"`
	NominalRate          float64              `json:"nominalRate"` // percent, 5 means 5%
	RateType             InterestRateType     `json:"rateType"`
	CompoundingFrequency CompoundingFrequency `json:"compoundingFrequency"`
}

// InvestmentResult is the month-by-month schedule produced by the interest
// calculator. Monetary values are rounded to 2 decimals.
type InvestmentResult struct {
	Contribution            []float64 `json:"contribution"`
	StartingBalances        []float64 `json:"startingBalances"`
	EndingBalances          []float64 `json:"endingBalances"`
	InterestEarnedPerPeriod []float64 `json:"interestEarnedPerPeriod"`
	TotalInterestEarned     []float64 `json:"totalInterestEarned"`
	TotalInvestment         float64   `json:"totalInvestment"`
	APY                     float64   `json:"apy"`
}

// InvestmentSummary is the headline figures of a schedule.
type InvestmentSummary struct {
	Principal     float64 `json:"principal"`
	TotalInterest float64 `json:"totalInterest"`
	TotalBalance  float64 `json:"totalBalance"`
}

// ChartSeries pairs ISO dates with ending balances for plotting.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type ScheduleResponse struct {
	Result  InvestmentResult  `json:"result"`
	Summary InvestmentSummary `json:"summary"`
	Chart   ChartSeries       `json:"chart"`
}
