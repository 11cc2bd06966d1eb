package terminal

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPassword_FromEnvironment(t *testing.T) {
	t.Setenv(PasswordEnvVar, "from-env")
	var stderr bytes.Buffer
	adapter := NewAdapter(strings.NewReader(""), &stderr)

	password, err := adapter.ReadPassword(context.Background(), "Password: ")

	require.NoError(t, err)
	assert.Equal(t, "from-env", password)
	assert.Empty(t, stderr.String(), "no prompt when the environment provides the password")
}

func TestReadPassword_NonInteractive(t *testing.T) {
	t.Setenv(PasswordEnvVar, "")
	adapter := NewAdapter(strings.NewReader("typed"), &bytes.Buffer{})

	_, err := adapter.ReadPassword(context.Background(), "Password: ")

	require.Error(t, err)
	assert.Contains(t, err.Error(), PasswordEnvVar)
	assert.False(t, adapter.IsInteractive())
}

func TestReadPassword_CancelledContext(t *testing.T) {
	t.Setenv(PasswordEnvVar, "from-env")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAdapter(strings.NewReader(""), &bytes.Buffer{}).ReadPassword(ctx, "Password: ")

	assert.ErrorIs(t, err, context.Canceled)
}
