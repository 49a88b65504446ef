package security

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseAdminToken(t *testing.T) {
	t.Parallel()

	token, err := GenerateAdminToken("super-secret", "amy@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAdminToken(token, "super-secret")
	require.NoError(t, err)
	require.Equal(t, "amy@example.com", claims.Email)
	require.Equal(t, RoleAdmin, claims.Role)
}

func TestParseAdminToken_Expired(t *testing.T) {
	t.Parallel()

	token, err := GenerateAdminToken("secret", "amy@example.com", -1*time.Second)
	require.NoError(t, err)

	_, err = ParseAdminToken(token, "secret")
	require.Error(t, err)
}

func TestParseAdminToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := GenerateAdminToken("right-secret", "amy@example.com", time.Hour)
	require.NoError(t, err)

	_, err = ParseAdminToken(token, "wrong-secret")
	require.Error(t, err)
}

func TestParseAdminToken_TamperedSignature(t *testing.T) {
	t.Parallel()

	token, err := GenerateAdminToken("secret", "amy@example.com", time.Hour)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Flip one character in the signature segment.
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = ParseAdminToken(tampered, "secret")
	require.Error(t, err)
}

func TestParseAdminToken_Malformed(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"", "garbage", "not.a.jwt", "a.b"} {
		_, err := ParseAdminToken(token, "secret")
		require.Error(t, err, "token %q should not parse", token)
	}
}
