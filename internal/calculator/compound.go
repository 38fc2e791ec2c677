// Package calculator implements the compound interest and retirement
// projections.
package calculator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

type Mode string

const (
	ModeSimple     Mode = "simple"
	ModeRetirement Mode = "retirement"
)

type Frequency string

const (
	FrequencyMonthly Frequency = "monthly"
	FrequencyDaily   Frequency = "daily"
)

type PeriodUnit string

const (
	PeriodYears  PeriodUnit = "years"
	PeriodMonths PeriodUnit = "months"
)

var (
	ErrModeInvalid       = errors.New("the mode must be simple or retirement")
	ErrFrequencyInvalid  = errors.New("the contribution frequency must be monthly or daily")
	ErrPeriodUnitInvalid = errors.New("the period unit must be years or months")
	ErrNegativeInput     = errors.New("amounts, rate and period must not be negative")
	ErrAgesInvalid       = errors.New("the ages must satisfy current age <= retirement age <= life expectancy")
	ErrPeriodTooLong     = errors.New("the projection must not be longer than 100 years")
)

// Input is the configuration of a projection.
//
// AnnualRate is in percent, e.g. 10 for 10% per year.
type Input struct {
	Mode           Mode            `json:"mode" example:"simple"`
	Initial        decimal.Decimal `json:"initial" example:"1000"`
	Contribution   decimal.Decimal `json:"contribution" example:"500"`
	Frequency      Frequency       `json:"frequency" example:"monthly"`
	AnnualRate     decimal.Decimal `json:"annualRate" example:"10"`
	Period         int             `json:"period" example:"10"`
	PeriodUnit     PeriodUnit      `json:"periodUnit" example:"years"`
	CurrentAge     int             `json:"currentAge" example:"30"`
	RetirementAge  int             `json:"retirementAge" example:"65"`
	LifeExpectancy int             `json:"lifeExpectancy" example:"90"`
}

// Point is the state of the projection at the end of a month.
type Point struct {
	Label    string          `json:"label" example:"Year 1"`
	Month    int             `json:"month" example:"12"`
	Balance  decimal.Decimal `json:"balance" example:"7941.36"`
	Invested decimal.Decimal `json:"invested" example:"7000"`
	Interest decimal.Decimal `json:"interest" example:"941.36"`
}

// Result is the outcome of a projection.
type Result struct {
	Points               []Point         `json:"points"`
	FinalBalance         decimal.Decimal `json:"finalBalance" example:"104710.08"`
	TotalInvested        decimal.Decimal `json:"totalInvested" example:"61000"`
	TotalInterest        decimal.Decimal `json:"totalInterest" example:"43710.08"`
	MonthlyPassiveIncome decimal.Decimal `json:"monthlyPassiveIncome" example:"872.58"`
	SafeWithdrawal       decimal.Decimal `json:"safeWithdrawal" example:"951.52"`
	Years                decimal.Decimal `json:"years" example:"10"`
}

// Every month of a projection with daily contributions has this many days.
const daysPerMonth = 30

// Above this many months, only one point per year is returned.
const monthlyPointsLimit = 60

func (in Input) validate() error {
	switch in.Mode {
	case ModeSimple:
		if in.PeriodUnit != PeriodYears && in.PeriodUnit != PeriodMonths {
			return ErrPeriodUnitInvalid
		}
	case ModeRetirement:
		if in.CurrentAge < 0 || in.CurrentAge > in.RetirementAge || in.RetirementAge > in.LifeExpectancy {
			return ErrAgesInvalid
		}
	default:
		return ErrModeInvalid
	}

	if in.Frequency != FrequencyMonthly && in.Frequency != FrequencyDaily {
		return ErrFrequencyInvalid
	}

	if in.Initial.IsNegative() || in.Contribution.IsNegative() || in.AnnualRate.IsNegative() || in.Period < 0 {
		return ErrNegativeInput
	}

	if in.months() > 1200 {
		return ErrPeriodTooLong
	}

	return nil
}

func (in Input) months() int {
	if in.Mode == ModeRetirement {
		return max(in.RetirementAge-in.CurrentAge, 0) * 12
	}

	if in.PeriodUnit == PeriodYears {
		return in.Period * 12
	}

	return in.Period
}

func (in Input) label(month, total int) string {
	if in.Mode == ModeRetirement {
		return fmt.Sprintf("%d years old", in.CurrentAge+month/12)
	}

	if in.PeriodUnit == PeriodYears && total > 24 {
		return fmt.Sprintf("Year %d", month/12)
	}

	return fmt.Sprintf("Month %d", month)
}

// Compound projects the balance of regular contributions with compound interest.
//
// Contributions are made at the end of every period. With monthly
// contributions a period is a month and the monthly rate is the annual
// rate divided by 12. With daily contributions every month has 30 periods
// and the daily rate is the annual rate divided by 365.
func Compound(in Input) (Result, error) {
	if err := in.validate(); err != nil {
		return Result{}, err
	}

	var (
		months    = in.months()
		annual    = in.AnnualRate.Div(decimal.NewFromInt(100))
		rate      = annual.Div(decimal.NewFromInt(12))
		periods   = 1
		balance   = in.Initial
		invested  = in.Initial
		points    []Point
		twelve    = decimal.NewFromInt(12)
		precision = int32(16)
	)

	if in.Frequency == FrequencyDaily {
		rate = annual.DivRound(decimal.NewFromInt(365), precision)
		periods = daysPerMonth
	}

	growth := decimal.NewFromInt(1).Add(rate)

	for m := 0; m <= months; m++ {
		if months <= monthlyPointsLimit || m%12 == 0 || m == months {
			points = append(points, Point{
				Label:    in.label(m, months),
				Month:    m,
				Balance:  balance.Round(2),
				Invested: invested.Round(2),
				Interest: balance.Sub(invested).Round(2),
			})
		}

		if m == months {
			break
		}

		for range periods {
			balance = balance.Mul(growth).Add(in.Contribution).Round(precision)
			invested = invested.Add(in.Contribution)
		}
	}

	result := Result{
		Points:               points,
		FinalBalance:         balance.Round(2),
		TotalInvested:        invested.Round(2),
		TotalInterest:        balance.Sub(invested).Round(2),
		MonthlyPassiveIncome: balance.Mul(annual).Div(twelve).Round(2),
		SafeWithdrawal:       decimal.Zero,
		Years:                decimal.NewFromInt(int64(months)).Div(twelve).Round(2),
	}

	if in.Mode == ModeRetirement {
		result.SafeWithdrawal = withdrawal(balance, annual.Div(twelve), (in.LifeExpectancy-in.RetirementAge)*12).Round(2)
	}

	return result, nil
}

// withdrawal returns the monthly payment that consumes the principal
// in n months at the monthly rate r: P * r(1+r)^n / ((1+r)^n - 1).
func withdrawal(principal, r decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 || !r.IsPositive() {
		return decimal.Zero
	}

	f := decimal.NewFromInt(1).Add(r).Pow(decimal.NewFromInt(int64(n)))
	return principal.Mul(r.Mul(f)).Div(f.Sub(decimal.NewFromInt(1)))
}
