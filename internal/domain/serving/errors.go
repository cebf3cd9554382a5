package serving

import "errors"

var (
	ErrInvalidServing      = errors.New("invalid serving")
	ErrFamilyCountRequired = errors.New("family count required")
	ErrInvalidFamilyCount  = errors.New("family count must be positive")
	ErrServingNotSet       = errors.New("serving preference not set")
	ErrPersistence         = errors.New("serving persistence failed")
)
