package payroll

import (
	"fmt"

	"github.com/presencio/presence-backend-go/internal/config"
	"github.com/presencio/presence-backend-go/internal/domain/payroll"
	"github.com/presencio/presence-backend-go/internal/pkg/validator"
)

// PolicyFromConfig builds the deduction policy from the loaded
// configuration. Work times are wall-clock "HH:MM" strings.
func PolicyFromConfig(cfg config.PayrollConfig) (payroll.DeductionPolicy, error) {
	start, ok := validator.IsValidTimeOfDay(cfg.WorkStartTime)
	if !ok {
		return payroll.DeductionPolicy{}, fmt.Errorf("invalid WORK_START_TIME %q", cfg.WorkStartTime)
	}
	end, ok := validator.IsValidTimeOfDay(cfg.WorkEndTime)
	if !ok {
		return payroll.DeductionPolicy{}, fmt.Errorf("invalid WORK_END_TIME %q", cfg.WorkEndTime)
	}
	if !start.Before(end) {
		return payroll.DeductionPolicy{}, fmt.Errorf("work start %q must precede work end %q", cfg.WorkStartTime, cfg.WorkEndTime)
	}

	return payroll.DeductionPolicy{
		DeductionPerAbsenceDay: cfg.DeductionPerAbsenceDay,
		DeductionPerLateMinute: cfg.DeductionPerLateMinute,
		WorkStart:              start,
		WorkEnd:                end,
		BusinessDaysPerWeek:    cfg.BusinessDaysPerWeek,
	}, nil
}
