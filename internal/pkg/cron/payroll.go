package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/zenith-hr/internal/domain/payroll"
)

// PayrollJobs keeps the payroll set current between manual runs.
type PayrollJobs struct {
	payrollRepo payroll.PayrollRepository
	now         func() time.Time
	interval    time.Duration
}

func NewPayrollJobs(payrollRepo payroll.PayrollRepository, now func() time.Time, interval time.Duration) *PayrollJobs {
	return &PayrollJobs{
		payrollRepo: payrollRepo,
		now:         now,
		interval:    interval,
	}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("recalculate_payroll", j.interval, j.RecalculatePayroll)
}

// RecalculatePayroll runs CalculatePayroll for the current month.
func (j *PayrollJobs) RecalculatePayroll(ctx context.Context) error {
	period := payroll.CurrentPeriod(j.now())

	records, err := j.payrollRepo.CalculatePayroll(ctx, period)
	if err != nil {
		return fmt.Errorf("failed to calculate payroll for %s: %w", period, err)
	}

	slog.Info("Cron: Payroll recalculated", "period", period, "records", len(records))
	return nil
}
