package employee

import "context"

// EmployeeService defines business logic for the employee directory.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error

	// QR code lifecycle. The image is generated once at creation time and
	// stored with the employee record.
	GetQRCode(ctx context.Context, id string) ([]byte, error)
	GetQRCodeBase64(ctx context.Context, id string) (string, error)
	ScanQRCode(ctx context.Context, image []byte) (string, error)
}
