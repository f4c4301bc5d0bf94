package domain

// Defaults applied when no settings row has been persisted yet.
const (
	DefaultMonthlyLateAllowance = 3
	DefaultHalfDayAllowance     = 0
)

// CompanySettings holds the configurable payroll business rules.
type CompanySettings struct {
	// MonthlyLateAllowance is the number of free late days per month before
	// progressive deductions start.
	MonthlyLateAllowance int `json:"monthlyLateAllowance"`
	// HalfDayAllowance is the number of free half-days per month.
	HalfDayAllowance int `json:"halfDayAllowance"`
	AuditFields
}
