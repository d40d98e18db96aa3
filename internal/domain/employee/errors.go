package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrMatriculeExists    = errors.New("matricule already exists")
	ErrEmailExists        = errors.New("email already registered")
	ErrQRCodeNotGenerated = errors.New("QR code not generated for this employee")
	ErrQRCodeUnreadable   = errors.New("QR code could not be decoded")
	ErrInvalidMatricule   = errors.New("matricule must be 3-20 uppercase letters or digits")
)
