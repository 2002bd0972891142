package config

import "errors"

var (
	// ErrNilPointer indicates Load was called with a nil destination
	ErrNilPointer = errors.New("config.nil_pointer")

	// ErrParsingConfig indicates environment variables could not be parsed
	// into the destination struct
	ErrParsingConfig = errors.New("config.parsing_failed")
)
