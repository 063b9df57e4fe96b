package canaries

import (
	"errors"
	"fmt"
)

// Exit statuses used by the canaries command.
const (
	ExitOK          = 0
	ExitBadFolder   = 1
	ExitBadContents = 2
	// ExitFailure covers everything that is not a problem with the inputs:
	// a broken template, an unreadable file, an unwritable output.
	ExitFailure = 1
)

var (
	ErrInvalidFolder     = errors.New("not an existing directory")
	ErrNoSignatures      = errors.New("no signature files found")
	ErrTooManySignatures = errors.New("more than one signature file found")
	ErrMissingMessage    = errors.New("message file not found")
)

// InputError is a problem with the folders handed to canaries. The caller
// fixes it by fixing the inputs, so it maps to a dedicated exit status.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit status for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch {
	case errors.Is(err, ErrInvalidFolder):
		return ExitBadFolder
	case errors.Is(err, ErrNoSignatures),
		errors.Is(err, ErrTooManySignatures),
		errors.Is(err, ErrMissingMessage):
		return ExitBadContents
	default:
		return ExitFailure
	}
}

// IsInputError reports whether err was caused by bad inputs rather than by
// something unexpected.
func IsInputError(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr)
}
