package payroll

import "context"

// BulletinRepository defines data access methods for payroll bulletins.
// The store guarantees at most one bulletin per (employee, period start,
// period end); Upsert overwrites the derived values on recompute and
// preserves the sent flag.
type BulletinRepository interface {
	Upsert(ctx context.Context, bulletin Bulletin) (Bulletin, error)
	GetByID(ctx context.Context, id string) (Bulletin, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]Bulletin, error)
	FindUnsent(ctx context.Context) ([]Bulletin, error)
	MarkSent(ctx context.Context, id string) error
}
