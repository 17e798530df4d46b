package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHashCompare(t *testing.T) {
	hashed, err := PasswordHash("secret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "secret-pass", hashed)

	require.True(t, PasswordCompare("secret-pass", hashed))
	require.False(t, PasswordCompare("wrong-pass", hashed))
}
