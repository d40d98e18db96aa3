package payroll

import (
	"log/slog"

	"github.com/presencio/presence-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// computeDeductions applies the deduction policy to a presence analysis.
//
// When raw deductions exceed the base salary they are rescaled
// proportionally so their sum equals the base salary exactly, keeping
// the absence/lateness ratio. Net salary bottoms out at zero; the
// calculator never fails.
func computeDeductions(analysis payroll.PresenceAnalysis, baseSalary decimal.Decimal, policy payroll.DeductionPolicy) payroll.DeductionResult {
	absence := policy.DeductionPerAbsenceDay.Mul(decimal.NewFromInt(int64(analysis.DaysAbsent)))
	lateness := policy.DeductionPerLateMinute.Mul(decimal.NewFromInt(int64(analysis.LateMinutesTotal)))

	total := absence.Add(lateness)
	if total.GreaterThan(baseSalary) {
		slog.Warn("deductions exceed base salary, rescaling",
			"total_deductions", total,
			"base_salary", baseSalary,
		)
		absence = baseSalary.Mul(absence).Div(total)
		// Derive the second term from the first so the rescaled sum hits
		// the base salary exactly despite division rounding.
		lateness = baseSalary.Sub(absence)
	}

	net := baseSalary.Sub(absence).Sub(lateness)
	if net.IsNegative() {
		net = decimal.Zero
	}

	return payroll.DeductionResult{
		AbsenceDeduction:  absence,
		LatenessDeduction: lateness,
		NetSalary:         net,
	}
}
