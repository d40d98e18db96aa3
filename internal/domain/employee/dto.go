package employee

import (
	"encoding/base64"
	"time"

	"github.com/presencio/presence-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// MaxBaseSalary is the upper bound accepted for a monthly base salary.
var MaxBaseSalary = decimal.NewFromInt(100000)

type CreateEmployeeRequest struct {
	Code       string          `json:"code"`
	LastName   string          `json:"last_name"`
	FirstName  string          `json:"first_name"`
	Email      string          `json:"email"`
	Position   string          `json:"position"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	HireDate   *string         `json:"hire_date,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMatricule(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "must be 3-20 uppercase letters or digits"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if !r.BaseSalary.IsPositive() || r.BaseSalary.GreaterThan(MaxBaseSalary) {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be greater than 0 and at most 100000"})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID         string          `json:"-"`
	Code       string          `json:"code"`
	LastName   string          `json:"last_name"`
	FirstName  string          `json:"first_name"`
	Email      string          `json:"email"`
	Position   string          `json:"position"`
	BaseSalary decimal.Decimal `json:"base_salary"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMatricule(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "must be 3-20 uppercase letters or digits"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if !r.BaseSalary.IsPositive() || r.BaseSalary.GreaterThan(MaxBaseSalary) {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be greater than 0 and at most 100000"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	LastName     string          `json:"last_name"`
	FirstName    string          `json:"first_name"`
	Email        string          `json:"email"`
	Position     string          `json:"position"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	HireDate     string          `json:"hire_date"`
	QRCodeBase64 *string         `json:"qr_code_base64,omitempty"`
}

func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:         e.ID,
		Code:       e.Code,
		LastName:   e.LastName,
		FirstName:  e.FirstName,
		Email:      e.Email,
		Position:   e.Position,
		BaseSalary: e.BaseSalary,
		HireDate:   e.HireDate.Format("2006-01-02"),
	}
	if len(e.QRCode) > 0 {
		encoded := base64.StdEncoding.EncodeToString(e.QRCode)
		resp.QRCodeBase64 = &encoded
	}
	return resp
}

func ToResponses(employees []Employee) []EmployeeResponse {
	result := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, ToResponse(e))
	}
	return result
}

// ParseHireDate returns the request hire date, defaulting to today.
func (r *CreateEmployeeRequest) ParseHireDate() time.Time {
	if r.HireDate != nil {
		if d, ok := validator.IsValidDate(*r.HireDate); ok {
			return d
		}
	}
	return time.Now()
}
