package binder

import "errors"

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("binder.unsupported_media_type")
	ErrMissingContentType   = errors.New("binder.missing_content_type")
	ErrFailedToParseJSON    = errors.New("binder.failed_to_parse_json")
	ErrFailedToParseForm    = errors.New("binder.failed_to_parse_form")
	ErrFailedToParseQuery   = errors.New("binder.failed_to_parse_query")
	ErrFailedToParsePath    = errors.New("binder.failed_to_parse_path")
)
