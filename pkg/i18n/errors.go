package i18n

import "errors"

var (
	ErrNilAdapter           = errors.New("i18n.nil_adapter")
	ErrEmptyLanguageCode    = errors.New("i18n.empty_language_code")
	ErrFailedToParseYAML    = errors.New("i18n.failed_to_parse_yaml")
	ErrFailedToParseJSON    = errors.New("i18n.failed_to_parse_json")
	ErrUnsupportedFile      = errors.New("i18n.unsupported_file")
	ErrFailedToReadFile     = errors.New("i18n.failed_to_read_file")
	ErrFailedToReadDir      = errors.New("i18n.failed_to_read_directory")
	ErrNoTranslationsFound  = errors.New("i18n.no_translations_found")
	ErrLoadingCancelled     = errors.New("i18n.loading_cancelled")
	ErrLanguageNotSupported = errors.New("i18n.language_not_supported")
)
