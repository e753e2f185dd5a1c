package async

import "errors"

var (
	ErrTimeout    = errors.New("async: operation timed out waiting for future completion")
	ErrSuperseded = errors.New("async: superseded by a newer submission")
	ErrStopped    = errors.New("async: debouncer stopped")
)
