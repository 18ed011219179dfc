package dto

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mkouyate/import_erp_app/internal/apperrors"
)

// validate is the shared validator instance for all request DTOs.
var validate = validator.New(validator.WithRequiredStructEnabled())

// checkStruct runs tag validation and maps failures onto apperrors.ErrValidation
// so callers can distinguish them by kind.
func checkStruct(s any) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}
	return nil
}

// validationErrorf builds a kind-tagged validation error for checks the tag
// language cannot express (decimal comparisons, cross-field date rules).
func validationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, fmt.Sprintf(format, args...))
}
