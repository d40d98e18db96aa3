package payroll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/presencio/presence-backend-go/internal/domain/attendance"
	"github.com/presencio/presence-backend-go/internal/domain/employee"
	"github.com/presencio/presence-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEmployee(id, code string, salary int64) employee.Employee {
	return employee.Employee{
		ID:         id,
		Code:       code,
		LastName:   "Martin",
		FirstName:  "Claire",
		Email:      code + "@example.com",
		Position:   "Developer",
		BaseSalary: decimal.NewFromInt(salary),
		HireDate:   date(2024, time.January, 1),
	}
}

// fullMonthEvents writes an on-time entry and exit for every business
// day of June 2025.
func fullMonthEvents(repo *fakeEventRepo, employeeID string) {
	for d := date(2025, time.June, 1); !d.After(date(2025, time.June, 30)); d = d.AddDate(0, 0, 1) {
		if !IsBusinessDay(d) {
			continue
		}
		repo.events = append(repo.events,
			attendance.ClockEvent{EmployeeID: employeeID, Kind: attendance.KindEntry, Timestamp: d.Add(9 * time.Hour)},
			attendance.ClockEvent{EmployeeID: employeeID, Kind: attendance.KindExit, Timestamp: d.Add(17 * time.Hour)},
		)
	}
}

func newTestService(empRepo *fakeEmployeeRepo, eventRepo *fakeEventRepo, bulletinRepo *fakeBulletinRepo, emailSvc *fakeEmailService) payroll.PayrollService {
	return NewPayrollService(bulletinRepo, empRepo, eventRepo, emailSvc, payroll.DefaultPolicy())
}

func TestComputeMonthly_FullAttendance(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{testEmployee("emp-1", "EMP001", 3000)}}
	eventRepo := &fakeEventRepo{}
	bulletinRepo := &fakeBulletinRepo{}
	fullMonthEvents(eventRepo, "emp-1")

	svc := newTestService(empRepo, eventRepo, bulletinRepo, &fakeEmailService{})

	resp, err := svc.ComputeMonthly(context.Background(), "emp-1", date(2025, time.June, 15))
	require.NoError(t, err)

	assert.Equal(t, "2025-06-01", resp.PeriodStart)
	assert.Equal(t, "2025-06-30", resp.PeriodEnd)
	assert.Equal(t, 21, resp.DaysWorked)
	assert.Equal(t, 0, resp.DaysAbsent)
	assert.Equal(t, 0, resp.LateMinutesTotal)
	assert.True(t, resp.AbsenceDeduction.IsZero())
	assert.True(t, resp.LatenessDeduction.IsZero())
	assert.True(t, resp.NetSalary.Equal(decimal.NewFromInt(3000)), "got %s", resp.NetSalary)
	assert.False(t, resp.Sent)
	assert.Len(t, bulletinRepo.bulletins, 1)
}

func TestComputeMonthly_AbsencesAndLateness(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{testEmployee("emp-1", "EMP001", 3000)}}
	eventRepo := &fakeEventRepo{}
	bulletinRepo := &fakeBulletinRepo{}

	// One worked day out of 21, entered 30 minutes late.
	eventRepo.events = append(eventRepo.events,
		attendance.ClockEvent{EmployeeID: "emp-1", Kind: attendance.KindEntry, Timestamp: date(2025, time.June, 2).Add(9*time.Hour + 30*time.Minute)},
		attendance.ClockEvent{EmployeeID: "emp-1", Kind: attendance.KindExit, Timestamp: date(2025, time.June, 2).Add(17 * time.Hour)},
	)

	svc := newTestService(empRepo, eventRepo, bulletinRepo, &fakeEmailService{})

	resp, err := svc.ComputeMonthly(context.Background(), "emp-1", date(2025, time.June, 1))
	require.NoError(t, err)

	assert.Equal(t, 1, resp.DaysWorked)
	assert.Equal(t, 20, resp.DaysAbsent)
	assert.Equal(t, 30, resp.LateMinutesTotal)
	// 20*200 absence + 30*2 lateness exceeds 3000, so deductions rescale
	// to the base and net bottoms out at zero.
	sum := resp.AbsenceDeduction.Add(resp.LatenessDeduction)
	assert.True(t, sum.Equal(decimal.NewFromInt(3000)), "got %s", sum)
	assert.True(t, resp.NetSalary.IsZero())
}

func TestComputeMonthly_NoEventsStillProducesBulletin(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{testEmployee("emp-1", "EMP001", 5000)}}
	eventRepo := &fakeEventRepo{}
	bulletinRepo := &fakeBulletinRepo{}

	svc := newTestService(empRepo, eventRepo, bulletinRepo, &fakeEmailService{})

	resp, err := svc.ComputeMonthly(context.Background(), "emp-1", date(2025, time.June, 1))
	require.NoError(t, err)

	assert.Equal(t, 0, resp.DaysWorked)
	assert.Equal(t, 21, resp.DaysAbsent)
	assert.Len(t, bulletinRepo.bulletins, 1)
}

func TestComputeMonthly_UnknownEmployee(t *testing.T) {
	svc := newTestService(&fakeEmployeeRepo{}, &fakeEventRepo{}, &fakeBulletinRepo{}, &fakeEmailService{})

	_, err := svc.ComputeMonthly(context.Background(), "missing", date(2025, time.June, 1))
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestComputeMonthly_FutureMonthRejected(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{testEmployee("emp-1", "EMP001", 3000)}}
	svc := newTestService(empRepo, &fakeEventRepo{}, &fakeBulletinRepo{}, &fakeEmailService{})

	future := time.Now().AddDate(0, 2, 0)
	_, err := svc.ComputeMonthly(context.Background(), "emp-1", future)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

func TestComputeMonthly_PeriodValidatedBeforeEmployeeLookup(t *testing.T) {
	svc := newTestService(&fakeEmployeeRepo{}, &fakeEventRepo{}, &fakeBulletinRepo{}, &fakeEmailService{})

	// Unknown employee AND future month: the period check must win,
	// without touching the employee repository.
	future := time.Now().AddDate(0, 2, 0)
	_, err := svc.ComputeMonthly(context.Background(), "missing", future)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
	assert.NotErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestComputeAllMonthly_FutureMonthRejectedBeforeListing(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{testEmployee("emp-1", "EMP001", 3000)}}
	bulletinRepo := &fakeBulletinRepo{}
	svc := newTestService(empRepo, &fakeEventRepo{}, bulletinRepo, &fakeEmailService{})

	future := time.Now().AddDate(0, 2, 0)
	result, err := svc.ComputeAllMonthly(context.Background(), future)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)

	var batchErr *payroll.BatchError
	assert.False(t, errors.As(err, &batchErr), "period rejection is not a per-employee failure")
	assert.Zero(t, result.Computed)
	assert.Empty(t, bulletinRepo.bulletins)
}

func TestComputeMonthly_RecomputeIsIdempotent(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{testEmployee("emp-1", "EMP001", 3000)}}
	eventRepo := &fakeEventRepo{}
	bulletinRepo := &fakeBulletinRepo{}
	fullMonthEvents(eventRepo, "emp-1")

	svc := newTestService(empRepo, eventRepo, bulletinRepo, &fakeEmailService{})

	first, err := svc.ComputeMonthly(context.Background(), "emp-1", date(2025, time.June, 1))
	require.NoError(t, err)
	second, err := svc.ComputeMonthly(context.Background(), "emp-1", date(2025, time.June, 1))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, first.NetSalary.Equal(second.NetSalary))
	assert.Len(t, bulletinRepo.bulletins, 1)
}

func TestComputeMonthly_RecomputePreservesSentFlag(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{testEmployee("emp-1", "EMP001", 3000)}}
	eventRepo := &fakeEventRepo{}
	bulletinRepo := &fakeBulletinRepo{}
	emailSvc := &fakeEmailService{}
	fullMonthEvents(eventRepo, "emp-1")

	svc := newTestService(empRepo, eventRepo, bulletinRepo, emailSvc)

	first, err := svc.ComputeMonthly(context.Background(), "emp-1", date(2025, time.June, 1))
	require.NoError(t, err)
	require.NoError(t, svc.SendBulletin(context.Background(), first.ID))

	second, err := svc.ComputeMonthly(context.Background(), "emp-1", date(2025, time.June, 1))
	require.NoError(t, err)
	assert.True(t, second.Sent)
}

func TestComputeAllMonthly_AllSucceed(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		testEmployee("emp-1", "EMP001", 3000),
		testEmployee("emp-2", "EMP002", 2500),
		testEmployee("emp-3", "EMP003", 4000),
	}}
	eventRepo := &fakeEventRepo{}
	bulletinRepo := &fakeBulletinRepo{}
	for _, id := range []string{"emp-1", "emp-2", "emp-3"} {
		fullMonthEvents(eventRepo, id)
	}

	svc := newTestService(empRepo, eventRepo, bulletinRepo, &fakeEmailService{})

	result, err := svc.ComputeAllMonthly(context.Background(), date(2025, time.June, 1))
	require.NoError(t, err)

	assert.Equal(t, 3, result.Computed)
	assert.Equal(t, 3, result.Total)
	assert.Len(t, bulletinRepo.bulletins, 3)
}

func TestComputeAllMonthly_FailFastKeepsEarlierBulletins(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		testEmployee("emp-1", "EMP001", 3000),
		testEmployee("emp-2", "EMP002", 2500),
		testEmployee("emp-3", "EMP003", 4000),
		testEmployee("emp-4", "EMP004", 3500),
		testEmployee("emp-5", "EMP005", 2800),
	}}
	eventRepo := &fakeEventRepo{failFor: "emp-3"}
	bulletinRepo := &fakeBulletinRepo{}

	svc := newTestService(empRepo, eventRepo, bulletinRepo, &fakeEmailService{})

	result, err := svc.ComputeAllMonthly(context.Background(), date(2025, time.June, 1))
	require.Error(t, err)

	var batchErr *payroll.BatchError
	require.True(t, errors.As(err, &batchErr))
	assert.Equal(t, "EMP003", batchErr.EmployeeCode)

	var compErr *payroll.ComputationError
	assert.True(t, errors.As(err, &compErr))

	// The first two bulletins stand; the last two were never attempted.
	assert.Equal(t, 2, result.Computed)
	assert.Equal(t, 5, result.Total)
	require.Len(t, bulletinRepo.bulletins, 2)
	assert.Equal(t, "emp-1", bulletinRepo.bulletins[0].EmployeeID)
	assert.Equal(t, "emp-2", bulletinRepo.bulletins[1].EmployeeID)
}

func TestSendBulletin_MarksSent(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{testEmployee("emp-1", "EMP001", 3000)}}
	eventRepo := &fakeEventRepo{}
	bulletinRepo := &fakeBulletinRepo{}
	emailSvc := &fakeEmailService{}
	fullMonthEvents(eventRepo, "emp-1")

	svc := newTestService(empRepo, eventRepo, bulletinRepo, emailSvc)

	resp, err := svc.ComputeMonthly(context.Background(), "emp-1", date(2025, time.June, 1))
	require.NoError(t, err)

	require.NoError(t, svc.SendBulletin(context.Background(), resp.ID))

	assert.Equal(t, []string{"EMP001@example.com"}, emailSvc.sent)
	saved, err := bulletinRepo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.True(t, saved.Sent)
	assert.NotNil(t, saved.SentDate)
}

func TestSendBulletin_EmailFailureLeavesUnsent(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{testEmployee("emp-1", "EMP001", 3000)}}
	eventRepo := &fakeEventRepo{}
	bulletinRepo := &fakeBulletinRepo{}
	emailSvc := &fakeEmailService{failAll: true}
	fullMonthEvents(eventRepo, "emp-1")

	svc := newTestService(empRepo, eventRepo, bulletinRepo, emailSvc)

	resp, err := svc.ComputeMonthly(context.Background(), "emp-1", date(2025, time.June, 1))
	require.NoError(t, err)

	err = svc.SendBulletin(context.Background(), resp.ID)
	require.Error(t, err)

	saved, err := bulletinRepo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.False(t, saved.Sent)
}

func TestSendPending_SendsAllUnsent(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		testEmployee("emp-1", "EMP001", 3000),
		testEmployee("emp-2", "EMP002", 2500),
	}}
	eventRepo := &fakeEventRepo{}
	bulletinRepo := &fakeBulletinRepo{}
	emailSvc := &fakeEmailService{}
	fullMonthEvents(eventRepo, "emp-1")
	fullMonthEvents(eventRepo, "emp-2")

	svc := newTestService(empRepo, eventRepo, bulletinRepo, emailSvc)

	_, err := svc.ComputeAllMonthly(context.Background(), date(2025, time.June, 1))
	require.NoError(t, err)

	sent, err := svc.SendPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Len(t, emailSvc.sent, 2)

	// Second pass finds nothing left to send.
	sent, err = svc.SendPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
}

func TestSendPending_SkipsFailuresAndContinues(t *testing.T) {
	// The second employee's record is gone, so its payslip cannot be
	// addressed; the first still goes out.
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		testEmployee("emp-1", "EMP001", 3000),
		testEmployee("emp-2", "EMP002", 2500),
	}}
	eventRepo := &fakeEventRepo{}
	bulletinRepo := &fakeBulletinRepo{}
	emailSvc := &fakeEmailService{}
	fullMonthEvents(eventRepo, "emp-1")
	fullMonthEvents(eventRepo, "emp-2")

	svc := newTestService(empRepo, eventRepo, bulletinRepo, emailSvc)

	_, err := svc.ComputeAllMonthly(context.Background(), date(2025, time.June, 1))
	require.NoError(t, err)

	require.NoError(t, empRepo.Delete(context.Background(), "emp-2"))

	sent, err := svc.SendPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, []string{"EMP001@example.com"}, emailSvc.sent)
}

func TestSendBulletin_UnknownBulletin(t *testing.T) {
	svc := newTestService(&fakeEmployeeRepo{}, &fakeEventRepo{}, &fakeBulletinRepo{}, &fakeEmailService{})

	err := svc.SendBulletin(context.Background(), "missing")
	assert.ErrorIs(t, err, payroll.ErrBulletinNotFound)
}

func TestListByEmployee_UnknownEmployee(t *testing.T) {
	svc := newTestService(&fakeEmployeeRepo{}, &fakeEventRepo{}, &fakeBulletinRepo{}, &fakeEmailService{})

	_, err := svc.ListByEmployee(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestMonthBounds(t *testing.T) {
	start, end := monthBounds(date(2025, time.February, 14))
	assert.Equal(t, date(2025, time.February, 1), start)
	assert.Equal(t, date(2025, time.February, 28), end)

	start, end = monthBounds(date(2024, time.February, 29))
	assert.Equal(t, date(2024, time.February, 1), start)
	assert.Equal(t, date(2024, time.February, 29), end)
}
