package attendance

import (
	"time"

	"github.com/presencio/presence-backend-go/internal/pkg/validator"
)

type ClockRequest struct {
	Code string    `json:"code"`
	Kind EventKind `json:"kind"`
	// Timestamp is optional; the server clock is used when absent.
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMatricule(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "must be 3-20 uppercase letters or digits"})
	}
	if !r.Kind.Valid() {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be ENTRY, EXIT or ABSENT"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EventResponse struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employee_id"`
	Code        string    `json:"code,omitempty"`
	LastName    string    `json:"last_name,omitempty"`
	FirstName   string    `json:"first_name,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	Kind        EventKind `json:"kind"`
	Late        bool      `json:"late"`
	LateMinutes int       `json:"late_minutes"`
}

func ToResponse(e ClockEvent) EventResponse {
	resp := EventResponse{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		Timestamp:   e.Timestamp,
		Kind:        e.Kind,
		Late:        e.Late,
		LateMinutes: e.LateMinutes,
	}
	if e.EmployeeCode != nil {
		resp.Code = *e.EmployeeCode
	}
	if e.EmployeeLastName != nil {
		resp.LastName = *e.EmployeeLastName
	}
	if e.EmployeeFirstName != nil {
		resp.FirstName = *e.EmployeeFirstName
	}
	return resp
}

func ToResponses(events []ClockEvent) []EventResponse {
	result := make([]EventResponse, 0, len(events))
	for _, e := range events {
		result = append(result, ToResponse(e))
	}
	return result
}
