package scheduler

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/crewpay/crewpay-backend/internal/core/ports/services"
	"github.com/robfig/cron/v3"
)

// Clock abstracts time for the scheduler so month-end detection is testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location != nil {
		return time.Now().In(c.Location)
	}
	return time.Now()
}

// PayrollScheduler runs the monthly salary batch. The cron entry fires daily
// shortly after midnight; the batch itself only runs on the last day of the
// month, so the completed month is computed exactly once.
type PayrollScheduler struct {
	cron          *cron.Cron
	clock         Clock
	salaryService portssvc.SalaryCalculatorSvc
	logger        *slog.Logger
	spec          string
}

// New creates a PayrollScheduler with the given cron spec (standard 5-field format).
func New(salaryService portssvc.SalaryCalculatorSvc, clock Clock, spec string, logger *slog.Logger) *PayrollScheduler {
	var opts []cron.Option
	if sc, ok := clock.(SystemClock); ok && sc.Location != nil {
		opts = append(opts, cron.WithLocation(sc.Location))
	}
	return &PayrollScheduler{
		cron:          cron.New(opts...),
		clock:         clock,
		salaryService: salaryService,
		logger:        logger,
		spec:          spec,
	}
}

// Start registers the daily job and starts the cron runner.
func (s *PayrollScheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, s.RunDaily)
	if err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("Payroll scheduler started", slog.String("spec", s.spec))
	return nil
}

// Stop stops the cron runner and waits for a running job to finish.
func (s *PayrollScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Payroll scheduler stopped")
}

// RunDaily is the cron entry point. It runs the salary batch only when today
// is the last day of the month.
func (s *PayrollScheduler) RunDaily() {
	now := s.clock.Now()
	if !isLastDayOfMonth(now) {
		return
	}

	s.logger.Info("Month end reached, running salary batch", slog.String("month", now.Format("2006-01")))
	s.salaryService.CalculateAllEmployees(context.Background())
}

// isLastDayOfMonth reports whether t falls on the final calendar day of its month.
func isLastDayOfMonth(t time.Time) bool {
	return t.AddDate(0, 0, 1).Day() == 1
}
