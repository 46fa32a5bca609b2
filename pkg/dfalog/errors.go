package dfalog

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the logger config.
	ErrParsingConfig = errors.New("failed to parse environment variables into logger config")

	// ErrInvalidFormat is returned for log formats other than json or text.
	ErrInvalidFormat = errors.New("invalid log format")
)
