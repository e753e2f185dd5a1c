package validator

import "errors"

// ErrValidationFailed matches any ValidationErrors value via errors.Is.
var ErrValidationFailed = errors.New("validation failed")

// Is lets callers test for validation failures without unpacking the slice.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}
