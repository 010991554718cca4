package service

import (
	"errors"
	"fmt"

	"go-catalog-api/pkg/validator"
)

// Error taxonomy. Semua error per-operasi: tidak ada yang fatal, dan karena
// validasi/permission dicek sebelum tulis apa pun, state lama selalu utuh.
var (
	ErrValidation       = errors.New("validation failed")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
)

// validationError wraps ErrValidation with a field-level reason.
func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// structValidationError turns the first validator failure into a taxonomy error.
func structValidationError(errs []*validator.ErrorResponse) error {
	first := errs[0]
	return validationError("field '%s' failed on tag '%s'", first.FailedField, first.Tag)
}
