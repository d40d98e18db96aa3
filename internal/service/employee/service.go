package employee

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/presencio/presence-backend-go/internal/domain/employee"
	"github.com/presencio/presence-backend-go/internal/pkg/qrcode"
	"github.com/presencio/presence-backend-go/internal/pkg/validator"
)

// QR codes are generated at this fixed size, matching what the badge
// printing frontend expects.
const qrCodeSize = 200

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if exists, err := s.employeeRepo.ExistsByCode(ctx, req.Code, ""); err != nil {
		return employee.EmployeeResponse{}, err
	} else if exists {
		return employee.EmployeeResponse{}, employee.ErrMatriculeExists
	}

	if exists, err := s.employeeRepo.ExistsByEmail(ctx, req.Email, ""); err != nil {
		return employee.EmployeeResponse{}, err
	} else if exists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	qr, err := qrcode.Encode(req.Code, qrCodeSize, qrCodeSize)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to generate QR code for %s: %w", req.Code, err)
	}

	newEmployee := employee.Employee{
		Code:       req.Code,
		LastName:   req.LastName,
		FirstName:  req.FirstName,
		Email:      req.Email,
		Position:   req.Position,
		BaseSalary: req.BaseSalary,
		HireDate:   req.ParseHireDate(),
		QRCode:     qr,
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("employee created", "employee_code", created.Code)
	return employee.ToResponse(created), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return employee.ToResponses(employees), nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if exists, err := s.employeeRepo.ExistsByCode(ctx, req.Code, emp.ID); err != nil {
		return employee.EmployeeResponse{}, err
	} else if exists {
		return employee.EmployeeResponse{}, employee.ErrMatriculeExists
	}

	if exists, err := s.employeeRepo.ExistsByEmail(ctx, req.Email, emp.ID); err != nil {
		return employee.EmployeeResponse{}, err
	} else if exists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	// Regenerate the QR code when the matricule changes; it encodes the
	// matricule.
	if req.Code != emp.Code {
		qr, err := qrcode.Encode(req.Code, qrCodeSize, qrCodeSize)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to regenerate QR code for %s: %w", req.Code, err)
		}
		emp.QRCode = qr
	}

	emp.Code = req.Code
	emp.LastName = req.LastName
	emp.FirstName = req.FirstName
	emp.Email = req.Email
	emp.Position = req.Position
	emp.BaseSalary = req.BaseSalary

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(updated), nil
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}

func (s *EmployeeServiceImpl) GetQRCode(ctx context.Context, id string) ([]byte, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(emp.QRCode) == 0 {
		return nil, employee.ErrQRCodeNotGenerated
	}

	return emp.QRCode, nil
}

func (s *EmployeeServiceImpl) GetQRCodeBase64(ctx context.Context, id string) (string, error) {
	qr, err := s.GetQRCode(ctx, id)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(qr), nil
}

func (s *EmployeeServiceImpl) ScanQRCode(ctx context.Context, image []byte) (string, error) {
	code, err := qrcode.Decode(image)
	if err != nil {
		slog.Error("QR code scan failed", "error", err)
		return "", employee.ErrQRCodeUnreadable
	}

	// A readable QR code carrying anything but a matricule is a bad
	// badge, not an unknown employee.
	if !validator.IsValidMatricule(code) {
		return "", employee.ErrInvalidMatricule
	}

	if _, err := s.employeeRepo.GetByCode(ctx, code); err != nil {
		return "", err
	}

	return code, nil
}
