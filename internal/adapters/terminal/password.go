package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// PasswordEnvVar supplies the password without prompting.
const PasswordEnvVar = "SURVEYOR_PASSWORD"

// Adapter handles secure password input from terminal.
type Adapter struct {
	stdin  io.Reader
	stderr io.Writer
}

// NewAdapter creates a new terminal adapter.
func NewAdapter(stdin io.Reader, stderr io.Writer) *Adapter {
	return &Adapter{
		stdin:  stdin,
		stderr: stderr,
	}
}

// ReadPassword reads a password from the terminal with echo disabled.
func (a *Adapter) ReadPassword(ctx context.Context, prompt string) (string, error) {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	// PasswordEnvVar wins over the prompt (useful for CI/CD).
	if envPassword := os.Getenv(PasswordEnvVar); envPassword != "" {
		return envPassword, nil
	}

	if !a.IsInteractive() {
		return "", fmt.Errorf("cannot read password: non-interactive terminal (set %s)", PasswordEnvVar)
	}

	fmt.Fprint(a.stderr, prompt)

	// Type assertion to check if stdin is a file
	if file, ok := a.stdin.(*os.File); ok {
		password, err := term.ReadPassword(int(file.Fd()))
		fmt.Fprintln(a.stderr) // Print newline after password input
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(password), nil
	}

	return "", errors.New("cannot read password from non-terminal input")
}

// IsInteractive returns true if the terminal is interactive.
func (a *Adapter) IsInteractive() bool {
	if file, ok := a.stdin.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
