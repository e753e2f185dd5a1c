package customer

import "errors"

var (
	ErrDraftNotFound    = errors.New("customer.draft_not_found")
	ErrCustomerNotFound = errors.New("customer.not_found")
	ErrEmptySession     = errors.New("customer.empty_session")
	ErrUnknownField     = errors.New("customer.unknown_field")
	ErrFailedToSave     = errors.New("customer.failed_to_save")
	ErrFailedToLoad     = errors.New("customer.failed_to_load")
)
