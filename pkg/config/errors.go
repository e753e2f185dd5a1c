package config

import "errors"

var (
	ErrParsingConfig  = errors.New("config.parsing_failed")
	ErrNilPointer     = errors.New("config.nil_pointer")
	ErrLoadingEnvFile = errors.New("config.env_file_failed")
)
