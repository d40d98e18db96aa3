package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/presencio/presence-backend-go/internal/domain/attendance"
	"github.com/presencio/presence-backend-go/internal/pkg/database"
)

type eventRepository struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) attendance.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event attendance.ClockEvent) (attendance.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	query := `
		INSERT INTO clock_events (id, employee_id, timestamp, kind, late, late_minutes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, timestamp, kind, late, late_minutes, created_at
	`

	var e attendance.ClockEvent
	err := q.QueryRow(ctx, query,
		event.ID, event.EmployeeID, event.Timestamp, event.Kind, event.Late, event.LateMinutes,
	).Scan(&e.ID, &e.EmployeeID, &e.Timestamp, &e.Kind, &e.Late, &e.LateMinutes, &e.CreatedAt)
	if err != nil {
		return attendance.ClockEvent{}, fmt.Errorf("failed to create clock event: %w", err)
	}

	return e, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (attendance.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, timestamp, kind, late, late_minutes, created_at
		FROM clock_events
		WHERE id = $1
	`

	var e attendance.ClockEvent
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.EmployeeID, &e.Timestamp, &e.Kind, &e.Late, &e.LateMinutes, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ClockEvent{}, attendance.ErrEventNotFound
		}
		return attendance.ClockEvent{}, fmt.Errorf("failed to get clock event: %w", err)
	}

	return e, nil
}

func (r *eventRepository) GetByEmployeeID(ctx context.Context, employeeID string) ([]attendance.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, timestamp, kind, late, late_minutes, created_at
		FROM clock_events
		WHERE employee_id = $1
		ORDER BY timestamp DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clock events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *eventRepository) GetByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	// Inclusive of both bounds to the second.
	query := `
		SELECT id, employee_id, timestamp, kind, late, late_minutes, created_at
		FROM clock_events
		WHERE employee_id = $1 AND timestamp >= $2 AND timestamp <= $3
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query clock events in range: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *eventRepository) GetByPeriod(ctx context.Context, start, end time.Time) ([]attendance.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.employee_id, e.timestamp, e.kind, e.late, e.late_minutes, e.created_at,
			   emp.code, emp.last_name, emp.first_name
		FROM clock_events e
		JOIN employees emp ON emp.id = e.employee_id
		WHERE e.timestamp::date >= $1::date AND e.timestamp::date <= $2::date
		ORDER BY e.timestamp
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query clock events by period: %w", err)
	}
	defer rows.Close()

	var events []attendance.ClockEvent
	for rows.Next() {
		var e attendance.ClockEvent
		err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.Timestamp, &e.Kind, &e.Late, &e.LateMinutes, &e.CreatedAt,
			&e.EmployeeCode, &e.EmployeeLastName, &e.EmployeeFirstName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan clock event: %w", err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

func (r *eventRepository) CountByKindOnDate(ctx context.Context, employeeID string, kind attendance.EventKind, date time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM clock_events
		WHERE employee_id = $1 AND kind = $2 AND timestamp::date = $3::date
	`

	var count int
	if err := q.QueryRow(ctx, query, employeeID, kind, date).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count clock events: %w", err)
	}

	return count, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM clock_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete clock event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrEventNotFound
	}

	return nil
}

func scanEvents(rows pgx.Rows) ([]attendance.ClockEvent, error) {
	var events []attendance.ClockEvent
	for rows.Next() {
		var e attendance.ClockEvent
		err := rows.Scan(&e.ID, &e.EmployeeID, &e.Timestamp, &e.Kind, &e.Late, &e.LateMinutes, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan clock event: %w", err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}
