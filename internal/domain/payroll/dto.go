package payroll

import (
	"github.com/shopspring/decimal"
)

type BulletinResponse struct {
	ID                string          `json:"id"`
	EmployeeID        string          `json:"employee_id"`
	EmployeeCode      string          `json:"employee_code"`
	EmployeeLastName  string          `json:"employee_last_name"`
	EmployeeFirstName string          `json:"employee_first_name"`
	PeriodStart       string          `json:"period_start"`
	PeriodEnd         string          `json:"period_end"`
	BaseSalary        decimal.Decimal `json:"base_salary"`
	DaysWorked        int             `json:"days_worked"`
	DaysAbsent        int             `json:"days_absent"`
	LateMinutesTotal  int             `json:"late_minutes_total"`
	OvertimeHours     float64         `json:"overtime_hours"`
	AbsenceDeduction  decimal.Decimal `json:"absence_deduction"`
	LatenessDeduction decimal.Decimal `json:"lateness_deduction"`
	NetSalary         decimal.Decimal `json:"net_salary"`
	Sent              bool            `json:"sent"`
	SentDate          *string         `json:"sent_date,omitempty"`
}

func ToResponse(b Bulletin) BulletinResponse {
	resp := BulletinResponse{
		ID:                b.ID,
		EmployeeID:        b.EmployeeID,
		EmployeeCode:      b.EmployeeCode,
		EmployeeLastName:  b.EmployeeLastName,
		EmployeeFirstName: b.EmployeeFirstName,
		PeriodStart:       b.PeriodStart.Format("2006-01-02"),
		PeriodEnd:         b.PeriodEnd.Format("2006-01-02"),
		BaseSalary:        b.BaseSalary,
		DaysWorked:        b.DaysWorked,
		DaysAbsent:        b.DaysAbsent,
		LateMinutesTotal:  b.LateMinutesTotal,
		OvertimeHours:     b.OvertimeHours,
		AbsenceDeduction:  b.AbsenceDeduction,
		LatenessDeduction: b.LatenessDeduction,
		NetSalary:         b.NetSalary,
		Sent:              b.Sent,
	}
	if b.SentDate != nil {
		formatted := b.SentDate.Format("2006-01-02")
		resp.SentDate = &formatted
	}
	return resp
}

func ToResponses(bulletins []Bulletin) []BulletinResponse {
	result := make([]BulletinResponse, 0, len(bulletins))
	for _, b := range bulletins {
		result = append(result, ToResponse(b))
	}
	return result
}

// BatchResult reports how far a batch run got before finishing or
// aborting.
type BatchResult struct {
	Computed int `json:"computed"`
	Total    int `json:"total"`
}
