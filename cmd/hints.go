package cmd

import (
	"fmt"

	"surveyor/internal/errors"
)

// withHint appends what the user can do next to a domain failure.
func withHint(err error) error {
	switch {
	case errors.IsInvalidCredentials(err):
		return fmt.Errorf("%w (check the email and password and try again)", err)
	case errors.IsAccessDenied(err):
		return fmt.Errorf("%w (run 'surveyor login' to start a new session)", err)
	case errors.IsUnexpected(err) && !verbose:
		return fmt.Errorf("%w (run again with --verbose for details)", err)
	default:
		return err
	}
}
