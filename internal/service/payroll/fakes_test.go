package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/presencio/presence-backend-go/internal/domain/attendance"
	"github.com/presencio/presence-backend-go/internal/domain/employee"
	"github.com/presencio/presence-backend-go/internal/domain/payroll"
	"github.com/presencio/presence-backend-go/internal/pkg/email"
)

// In-memory stand-ins for the postgres repositories, keyed the same way
// the real schema is.

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, e)
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.Code == code {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetAll(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	for i := range f.employees {
		if f.employees[i].ID == e.ID {
			f.employees[i] = e
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	for i := range f.employees {
		if f.employees[i].ID == id {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ExistsByCode(ctx context.Context, code, excludeID string) (bool, error) {
	for _, e := range f.employees {
		if e.Code == code && e.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEmployeeRepo) ExistsByEmail(ctx context.Context, em, excludeID string) (bool, error) {
	for _, e := range f.employees {
		if e.Email == em && e.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type fakeEventRepo struct {
	events []attendance.ClockEvent
	// failFor simulates a storage failure for one employee's reads.
	failFor string
}

func (f *fakeEventRepo) Create(ctx context.Context, e attendance.ClockEvent) (attendance.ClockEvent, error) {
	e.ID = fmt.Sprintf("event-%d", len(f.events)+1)
	f.events = append(f.events, e)
	return e, nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (attendance.ClockEvent, error) {
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return attendance.ClockEvent{}, attendance.ErrEventNotFound
}

func (f *fakeEventRepo) GetByEmployeeID(ctx context.Context, employeeID string) ([]attendance.ClockEvent, error) {
	var out []attendance.ClockEvent
	for _, e := range f.events {
		if e.EmployeeID == employeeID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) GetByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.ClockEvent, error) {
	if f.failFor == employeeID {
		return nil, fmt.Errorf("simulated storage failure")
	}
	var out []attendance.ClockEvent
	for _, e := range f.events {
		if e.EmployeeID == employeeID && !e.Timestamp.Before(from) && !e.Timestamp.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) GetByPeriod(ctx context.Context, start, end time.Time) ([]attendance.ClockEvent, error) {
	var out []attendance.ClockEvent
	for _, e := range f.events {
		d := e.Timestamp.Truncate(24 * time.Hour)
		if !d.Before(start) && !d.After(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) CountByKindOnDate(ctx context.Context, employeeID string, kind attendance.EventKind, day time.Time) (int, error) {
	count := 0
	for _, e := range f.events {
		if e.EmployeeID == employeeID && e.Kind == kind &&
			e.Timestamp.Year() == day.Year() && e.Timestamp.YearDay() == day.YearDay() {
			count++
		}
	}
	return count, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	for i := range f.events {
		if f.events[i].ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return attendance.ErrEventNotFound
}

type fakeBulletinRepo struct {
	bulletins []payroll.Bulletin
	nextID    int
}

func (f *fakeBulletinRepo) Upsert(ctx context.Context, b payroll.Bulletin) (payroll.Bulletin, error) {
	for i, existing := range f.bulletins {
		if existing.EmployeeID == b.EmployeeID &&
			existing.PeriodStart.Equal(b.PeriodStart) && existing.PeriodEnd.Equal(b.PeriodEnd) {
			b.ID = existing.ID
			b.Sent = existing.Sent
			b.SentDate = existing.SentDate
			f.bulletins[i] = b
			return b, nil
		}
	}
	f.nextID++
	b.ID = fmt.Sprintf("bulletin-%d", f.nextID)
	f.bulletins = append(f.bulletins, b)
	return b, nil
}

func (f *fakeBulletinRepo) GetByID(ctx context.Context, id string) (payroll.Bulletin, error) {
	for _, b := range f.bulletins {
		if b.ID == id {
			return b, nil
		}
	}
	return payroll.Bulletin{}, payroll.ErrBulletinNotFound
}

func (f *fakeBulletinRepo) GetByEmployeeID(ctx context.Context, employeeID string) ([]payroll.Bulletin, error) {
	var out []payroll.Bulletin
	for _, b := range f.bulletins {
		if b.EmployeeID == employeeID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBulletinRepo) FindUnsent(ctx context.Context) ([]payroll.Bulletin, error) {
	var out []payroll.Bulletin
	for _, b := range f.bulletins {
		if !b.Sent {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBulletinRepo) MarkSent(ctx context.Context, id string) error {
	for i := range f.bulletins {
		if f.bulletins[i].ID == id {
			now := time.Now()
			f.bulletins[i].Sent = true
			f.bulletins[i].SentDate = &now
			return nil
		}
	}
	return payroll.ErrBulletinNotFound
}

type fakeEmailService struct {
	sent    []string
	failAll bool
}

func (f *fakeEmailService) SendPayslip(to string, data email.PayslipData) error {
	if f.failAll {
		return fmt.Errorf("smtp unreachable")
	}
	f.sent = append(f.sent, to)
	return nil
}
