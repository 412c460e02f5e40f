package service

import (
	"errors"

	"github.com/moxie-medspa/backend/internal/domain"
)

// missingAs replaces a bare domain.ErrNotFound from a repo with a FieldError
// naming the input field that referenced the missing record.
func missingAs(err error, field, format string, args ...any) error {
	var fe *domain.FieldError
	if errors.Is(err, domain.ErrNotFound) && !errors.As(err, &fe) {
		return domain.Missing(field, format, args...)
	}
	return err
}
