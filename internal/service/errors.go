package service

import "errors"

// Business errors surfaced to handlers. The handler layer maps these to
// HTTP statuses in one place (see handler.respondError).
var (
	// Not found
	ErrCompanyNotFound    = errors.New("company not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrAssetNotFound      = errors.New("asset not found")
	ErrAssignmentNotFound = errors.New("assignment not found: asset is not assigned to this employee")

	// Conflict
	ErrCNPJTaken            = errors.New("CNPJ already registered")
	ErrEmailTaken           = errors.New("email already registered")
	ErrCPFTaken             = errors.New("CPF already registered")
	ErrAssetAlreadyAssigned = errors.New("asset is already assigned to this employee")
	ErrCompanyHasEmployees  = errors.New("company still has employees")

	// Invalid request
	ErrAssetNotAvailable = errors.New("asset is not available")
	ErrNotebookLimit     = errors.New("employee already holds a notebook: each employee may hold at most one")
	ErrInvalidStatus     = errors.New("status must be one of AVAILABLE, IN_USE, IN_MAINTENANCE")
)
