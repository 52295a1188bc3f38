package oauth2

import (
	"errors"
	"fmt"
)

var (
	ErrProviderNotFound = errors.New("provider not found")
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidValue     = errors.New("invalid field value")
	ErrInvalidParams    = errors.New("invalid params")
)

// ParamError reports which provider field failed validation.
type ParamError struct {
	Provider string
	Field    string
	Err      error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Field, e.Err)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}
