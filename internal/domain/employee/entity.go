package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	Code       string
	LastName   string
	FirstName  string
	Email      string
	Position   string
	BaseSalary decimal.Decimal
	HireDate   time.Time
	QRCode     []byte
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FullName returns "FirstName LastName" for display and email use.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
