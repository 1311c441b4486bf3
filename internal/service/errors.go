package service

import "errors"

// ErrNoValidRecipients is returned when none of the requested report
// recipients resolve to an existing user.
var ErrNoValidRecipients = errors.New("no valid recipients")

// InvalidInputError is a business-rule validation failure detected below
// the handler layer. Its message is safe to surface to the caller.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func invalidInput(msg string) error {
	return &InvalidInputError{Message: msg}
}
