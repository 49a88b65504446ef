package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifyAdminPassword_Plain(t *testing.T) {
	t.Parallel()

	require.True(t, VerifyAdminPassword("change-me", "change-me"))
	require.False(t, VerifyAdminPassword("wrong", "change-me"))
	require.False(t, VerifyAdminPassword("", "change-me"))
}

func TestVerifyAdminPassword_Argon2RoundTrip(t *testing.T) {
	t.Parallel()

	encoded, err := HashAdminPassword("hunter2hunter2")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(encoded, "$argon2id$"))

	require.True(t, VerifyAdminPassword("hunter2hunter2", encoded))
	require.False(t, VerifyAdminPassword("hunter2", encoded))
}

func TestVerifyAdminPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	require.False(t, VerifyAdminPassword("anything", "$argon2id$bogus"))
	require.False(t, VerifyAdminPassword("anything", "$argon2id$v=19$t=3,m=65536,p=2$not-base64!$also-not!"))
}

func TestHashAdminPassword_UniqueSalts(t *testing.T) {
	t.Parallel()

	a, err := HashAdminPassword("same-password")
	require.NoError(t, err)
	b, err := HashAdminPassword("same-password")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
