package service

const (
	MaxAmount          = 1_000_000_000.0 // 1 billion
	MaxInterestRate    = 1000.0          // 1000% per year
	MaxDurationMonths  = 1200            // 100 years of monthly ticks
	MaxProjectionYears = 100

	// Search interval upper bounds for the bisection solvers.
	PeriodSearchYears = 100.0
	RateSearchUpper   = 1.0

	solverTolerance = 1e-6
	monthsPerYear   = 12
	daysPerYear     = 360
	daysPerMonth    = 30
)
