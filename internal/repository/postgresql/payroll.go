package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/presencio/presence-backend-go/internal/domain/payroll"
	"github.com/presencio/presence-backend-go/internal/pkg/database"
)

type bulletinRepository struct {
	db *database.DB
}

func NewBulletinRepository(db *database.DB) payroll.BulletinRepository {
	return &bulletinRepository{db: db}
}

const bulletinColumns = `
	b.id, b.employee_id, emp.code, emp.last_name, emp.first_name,
	b.period_start, b.period_end, b.base_salary,
	b.days_worked, b.days_absent, b.late_minutes_total, b.overtime_hours,
	b.absence_deduction, b.lateness_deduction, b.net_salary,
	b.sent, b.sent_date, b.created_at, b.updated_at`

func scanBulletin(row pgx.Row) (payroll.Bulletin, error) {
	var b payroll.Bulletin
	err := row.Scan(
		&b.ID, &b.EmployeeID, &b.EmployeeCode, &b.EmployeeLastName, &b.EmployeeFirstName,
		&b.PeriodStart, &b.PeriodEnd, &b.BaseSalary,
		&b.DaysWorked, &b.DaysAbsent, &b.LateMinutesTotal, &b.OvertimeHours,
		&b.AbsenceDeduction, &b.LatenessDeduction, &b.NetSalary,
		&b.Sent, &b.SentDate, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

// Upsert writes the bulletin keyed by (employee, period start, period
// end). Recomputing overwrites the derived values and leaves the sent
// flag untouched, so a recompute never un-sends a bulletin.
func (r *bulletinRepository) Upsert(ctx context.Context, bulletin payroll.Bulletin) (payroll.Bulletin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH upserted AS (
			INSERT INTO payroll_bulletins (
				id, employee_id, period_start, period_end, base_salary,
				days_worked, days_absent, late_minutes_total, overtime_hours,
				absence_deduction, lateness_deduction, net_salary
			) VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (employee_id, period_start, period_end) DO UPDATE SET
				base_salary = EXCLUDED.base_salary,
				days_worked = EXCLUDED.days_worked,
				days_absent = EXCLUDED.days_absent,
				late_minutes_total = EXCLUDED.late_minutes_total,
				overtime_hours = EXCLUDED.overtime_hours,
				absence_deduction = EXCLUDED.absence_deduction,
				lateness_deduction = EXCLUDED.lateness_deduction,
				net_salary = EXCLUDED.net_salary,
				updated_at = NOW()
			RETURNING *
		)
		SELECT ` + bulletinColumns + `
		FROM upserted b
		JOIN employees emp ON emp.id = b.employee_id
	`

	b, err := scanBulletin(q.QueryRow(ctx, query,
		bulletin.EmployeeID, bulletin.PeriodStart, bulletin.PeriodEnd, bulletin.BaseSalary,
		bulletin.DaysWorked, bulletin.DaysAbsent, bulletin.LateMinutesTotal, bulletin.OvertimeHours,
		bulletin.AbsenceDeduction, bulletin.LatenessDeduction, bulletin.NetSalary,
	))
	if err != nil {
		return payroll.Bulletin{}, fmt.Errorf("failed to upsert bulletin: %w", err)
	}

	return b, nil
}

func (r *bulletinRepository) GetByID(ctx context.Context, id string) (payroll.Bulletin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + bulletinColumns + `
		FROM payroll_bulletins b
		JOIN employees emp ON emp.id = b.employee_id
		WHERE b.id = $1
	`

	b, err := scanBulletin(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Bulletin{}, payroll.ErrBulletinNotFound
		}
		return payroll.Bulletin{}, fmt.Errorf("failed to get bulletin: %w", err)
	}

	return b, nil
}

func (r *bulletinRepository) GetByEmployeeID(ctx context.Context, employeeID string) ([]payroll.Bulletin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + bulletinColumns + `
		FROM payroll_bulletins b
		JOIN employees emp ON emp.id = b.employee_id
		WHERE b.employee_id = $1
		ORDER BY b.period_start DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bulletins: %w", err)
	}
	defer rows.Close()

	return collectBulletins(rows)
}

func (r *bulletinRepository) FindUnsent(ctx context.Context) ([]payroll.Bulletin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + bulletinColumns + `
		FROM payroll_bulletins b
		JOIN employees emp ON emp.id = b.employee_id
		WHERE b.sent = FALSE
		ORDER BY b.period_start
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list unsent bulletins: %w", err)
	}
	defer rows.Close()

	return collectBulletins(rows)
}

func (r *bulletinRepository) MarkSent(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE payroll_bulletins
		SET sent = TRUE, sent_date = CURRENT_DATE, updated_at = NOW()
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to mark bulletin as sent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrBulletinNotFound
	}

	return nil
}

func collectBulletins(rows pgx.Rows) ([]payroll.Bulletin, error) {
	var bulletins []payroll.Bulletin
	for rows.Next() {
		b, err := scanBulletin(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bulletin: %w", err)
		}
		bulletins = append(bulletins, b)
	}

	return bulletins, rows.Err()
}
