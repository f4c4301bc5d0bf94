package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/crewpay/crewpay-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time { return c.now }

type fakeSalaryService struct {
	batchRuns int
}

func (s *fakeSalaryService) CalculateSalary(ctx context.Context, employeeID string, startDate *time.Time, endDate *time.Time) (*domain.NetSalaryLog, error) {
	return nil, nil
}

func (s *fakeSalaryService) CalculateAllEmployees(ctx context.Context) {
	s.batchRuns++
}

func newTestScheduler(now time.Time, svc *fakeSalaryService) *PayrollScheduler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(svc, fakeClock{now: now}, "5 0 * * *", logger)
}

func TestRunDailySkipsMidMonth(t *testing.T) {
	svc := &fakeSalaryService{}
	s := newTestScheduler(time.Date(2025, time.June, 15, 0, 5, 0, 0, time.UTC), svc)

	s.RunDaily()

	assert.Equal(t, 0, svc.batchRuns, "batch should not run mid-month")
}

func TestRunDailyRunsOnLastDayOfMonth(t *testing.T) {
	svc := &fakeSalaryService{}
	s := newTestScheduler(time.Date(2025, time.June, 30, 0, 5, 0, 0, time.UTC), svc)

	s.RunDaily()

	assert.Equal(t, 1, svc.batchRuns, "batch should run on the last day of the month")
}

func TestIsLastDayOfMonth(t *testing.T) {
	cases := []struct {
		name string
		date time.Time
		want bool
	}{
		{"mid month", time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), false},
		{"30 day month end", time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC), true},
		{"31 day month, day 30", time.Date(2025, time.July, 30, 0, 0, 0, 0, time.UTC), false},
		{"31 day month end", time.Date(2025, time.July, 31, 0, 0, 0, 0, time.UTC), true},
		{"february end", time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), true},
		{"leap february 28", time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC), false},
		{"leap february end", time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), true},
		{"december end", time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isLastDayOfMonth(tc.date))
		})
	}
}
