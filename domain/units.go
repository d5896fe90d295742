package domain

import "fmt"

// Enum values start at 1 so that a field left out of a request decodes to an
// invalid zero value instead of silently selecting the first option.

// TimePeriodUnit is the unit an investment duration is expressed in.
type TimePeriodUnit int

const (
	Year TimePeriodUnit = iota + 1
	Month
)

// InterestRateType tells whether a nominal rate is quoted per year or per month.
type InterestRateType int

const (
	YearlyRate InterestRateType = iota + 1
	MonthlyRate
)

// CompoundingFrequency is how often accrued interest is folded into principal.
type CompoundingFrequency int

const (
	CompoundYearly CompoundingFrequency = iota + 1
	CompoundSemiYearly
	CompoundQuarterly
	CompoundMonthly
	CompoundDaily
)

var timePeriodUnitNames = map[TimePeriodUnit]string{
	Year:  "year",
	Month: "month",
}

var interestRateTypeNames = map[InterestRateType]string{
	YearlyRate:  "yearly",
	MonthlyRate: "monthly",
}

var compoundingFrequencyNames = map[CompoundingFrequency]string{
	CompoundYearly:     "yearly",
	CompoundSemiYearly: "semiyearly",
	CompoundQuarterly:  "quarterly",
	CompoundMonthly:    "monthly",
	CompoundDaily:      "daily",
}

func (u TimePeriodUnit) String() string {
	if name, ok := timePeriodUnitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("TimePeriodUnit(%d)", int(u))
}

func (u TimePeriodUnit) MarshalText() ([]byte, error) {
	name, ok := timePeriodUnitNames[u]
	if !ok {
		return nil, fmt.Errorf("time period unit %d: %w", int(u), ErrInvalidArgument)
	}
	return []byte(name), nil
}

func (u *TimePeriodUnit) UnmarshalText(text []byte) error {
	v, err := ParseTimePeriodUnit(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// ParseTimePeriodUnit maps "year" or "month" to its unit.
func ParseTimePeriodUnit(s string) (TimePeriodUnit, error) {
	for u, name := range timePeriodUnitNames {
		if name == s {
			return u, nil
		}
	}
	return 0, fmt.Errorf("time period unit %q: %w", s, ErrInvalidArgument)
}

func (t InterestRateType) String() string {
	if name, ok := interestRateTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("InterestRateType(%d)", int(t))
}

func (t InterestRateType) MarshalText() ([]byte, error) {
	name, ok := interestRateTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("interest rate type %d: %w", int(t), ErrInvalidArgument)
	}
	return []byte(name), nil
}

func (t *InterestRateType) UnmarshalText(text []byte) error {
	v, err := ParseInterestRateType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseInterestRateType maps "yearly" or "monthly" to its rate type.
func ParseInterestRateType(s string) (InterestRateType, error) {
	for t, name := range interestRateTypeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("interest rate type %q: %w", s, ErrInvalidArgument)
}

func (f CompoundingFrequency) String() string {
	if name, ok := compoundingFrequencyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("CompoundingFrequency(%d)", int(f))
}

func (f CompoundingFrequency) MarshalText() ([]byte, error) {
	name, ok := compoundingFrequencyNames[f]
	if !ok {
		return nil, fmt.Errorf("compounding frequency %d: %w", int(f), ErrInvalidArgument)
	}
	return []byte(name), nil
}

func (f *CompoundingFrequency) UnmarshalText(text []byte) error {
	v, err := ParseCompoundingFrequency(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// ParseCompoundingFrequency maps the lowercase frequency names used by the
// calculator forms ("yearly", "semiyearly", "quarterly", "monthly", "daily").
func ParseCompoundingFrequency(s string) (CompoundingFrequency, error) {
	for f, name := range compoundingFrequencyNames {
		if name == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("compounding frequency %q: %w", s, ErrInvalidArgument)
}
