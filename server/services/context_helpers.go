package services

import (
	"context"

	apperrors "github.com/janm-comcon/stdtext/server/errors"
)

// ValidateContext checks that the context is non-nil and not canceled.
// Used for uniform context validation across all services.
func ValidateContext(ctx context.Context) error {
	if ctx == nil {
		return apperrors.NewValidationError("context must not be nil", nil)
	}

	select {
	case <-ctx.Done():
		return apperrors.NewServiceUnavailableError("context canceled", ctx.Err())
	default:
		return nil
	}
}
