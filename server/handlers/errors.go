package handlers

import (
	"github.com/janm-comcon/stdtext/server/errors"
)

// Re-export of server/errors types and constructors so handlers read
// without the package qualifier.
type AppError = errors.AppError

var (
	NewValidationError         = errors.NewValidationError
	NewInternalError           = errors.NewInternalError
	NewNotFoundError           = errors.NewNotFoundError
	NewConflictError           = errors.NewConflictError
	NewUnprocessableError      = errors.NewUnprocessableError
	NewBadGatewayError         = errors.NewBadGatewayError
	NewServiceUnavailableError = errors.NewServiceUnavailableError
	WrapError                  = errors.WrapError
)
