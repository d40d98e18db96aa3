package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/presencio/presence-backend-go/internal/domain/attendance"
	"github.com/presencio/presence-backend-go/internal/domain/employee"
	"github.com/presencio/presence-backend-go/internal/domain/payroll"
	"github.com/presencio/presence-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Employee domain errors
	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrMatriculeExists):
		Conflict(w, "Matricule already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrQRCodeNotGenerated):
		NotFound(w, "QR code not generated for this employee")
	case errors.Is(err, employee.ErrQRCodeUnreadable):
		BadRequest(w, "QR code could not be decoded", nil)
	case errors.Is(err, employee.ErrInvalidMatricule):
		BadRequest(w, "Matricule must be 3-20 uppercase letters or digits", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrEventNotFound):
		NotFound(w, "Clock event not found")
	case errors.Is(err, attendance.ErrFutureTimestamp):
		BadRequest(w, "Clock timestamp cannot be in the future", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrBulletinNotFound):
		NotFound(w, "Payroll bulletin not found")

	// Default
	default:
		var compErr *payroll.ComputationError
		var batchErr *payroll.BatchError
		switch {
		case errors.As(err, &compErr):
			slog.Error("payroll computation failed", "employee_code", compErr.EmployeeCode, "error", compErr.Err)
			UnprocessableEntity(w, compErr.Error())
		case errors.As(err, &batchErr):
			slog.Error("batch payroll aborted", "employee_code", batchErr.EmployeeCode, "error", batchErr.Err)
			UnprocessableEntity(w, batchErr.Error())
		default:
			slog.Error("unexpected error", "error", err)
			InternalServerError(w, "An unexpected error occurred")
		}
	}
}
