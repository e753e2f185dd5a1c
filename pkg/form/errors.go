package form

import "errors"

var (
	// ErrInvalidSnapshot indicates snapshot values that do not fit the form shape
	ErrInvalidSnapshot = errors.New("form.invalid_snapshot")

	// ErrInvalidFormValues indicates urlencoded values that cannot be turned into a snapshot
	ErrInvalidFormValues = errors.New("form.invalid_form_values")
)
