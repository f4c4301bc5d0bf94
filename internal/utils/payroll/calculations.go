package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// CycleDays is the fixed payroll cycle length. Proration always assumes a
// 30-day month regardless of the calendar.
const CycleDays = 30

var cycleDaysDec = decimal.NewFromInt(CycleDays)

// RoundMoney rounds a monetary amount half-up to 2 decimal places.
// Every figure persisted or returned by payroll goes through this.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// DailyRate returns the per-day salary for a monthly base salary.
func DailyRate(baseSalary decimal.Decimal) decimal.Decimal {
	return baseSalary.Div(cycleDaysDec)
}

// DaysWorked derives the payable days of a 30-day cycle from the optional
// join and termination dates:
//   - neither given: the full cycle.
//   - startDate given (mid-month joiner): CycleDays - (joinDay - 1).
//   - only endDate given (termination): min(terminationDay, CycleDays).
func DaysWorked(startDate *time.Time, endDate *time.Time) int {
	switch {
	case startDate != nil:
		return CycleDays - (startDate.Day() - 1)
	case endDate != nil:
		if endDate.Day() < CycleDays {
			return endDate.Day()
		}
		return CycleDays
	default:
		return CycleDays
	}
}

// Prorate scales a base salary to the given number of payable days.
func Prorate(baseSalary decimal.Decimal, daysWorked int) decimal.Decimal {
	return RoundMoney(DailyRate(baseSalary).Mul(decimal.NewFromInt(int64(daysWorked))))
}

// ProgressiveMultiplier returns the per-day charge fraction for the i-th
// excess day (0-based): 0.5, 1.0, 1.5, ...
func ProgressiveMultiplier(i int) decimal.Decimal {
	half := decimal.NewFromFloat(0.5)
	return half.Add(half.Mul(decimal.NewFromInt(int64(i))))
}

// MonthLabel formats a reference date as the "YYYY-MM" payroll month label.
func MonthLabel(t time.Time) string {
	return t.Format("2006-01")
}

// ReferenceDate picks the month-defining date for a salary calculation:
// start date if given, else end date, else now.
func ReferenceDate(startDate *time.Time, endDate *time.Time, now time.Time) time.Time {
	switch {
	case startDate != nil:
		return *startDate
	case endDate != nil:
		return *endDate
	default:
		return now
	}
}
