package token

import "errors"

var (
	// ErrGenerationFailed indicates the system CSPRNG could not be read
	ErrGenerationFailed = errors.New("token.generation_failed")
)
