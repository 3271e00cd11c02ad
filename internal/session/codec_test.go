package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinehollow/storefront/internal/domain/auth"
)

func TestNewCodec_RequiresSecret(t *testing.T) {
	_, err := NewCodec("", 24*time.Hour)
	require.Error(t, err)
}

func TestCodec_RoundTrip(t *testing.T) {
	codec, err := NewCodec("test-secret", 24*time.Hour)
	require.NoError(t, err)

	token, err := codec.Issue()
	require.NoError(t, err)

	verdict := codec.Verify(token)
	assert.True(t, verdict.Valid)
	assert.Equal(t, auth.RoleAdmin, verdict.Role)
}

func TestCodec_ExpiryBoundary(t *testing.T) {
	issued := time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)
	codec, err := NewCodec("test-secret", 24*time.Hour)
	require.NoError(t, err)
	codec.now = func() time.Time { return issued }

	token, err := codec.Issue()
	require.NoError(t, err)

	expiry := issued.Add(24 * time.Hour)

	codec.now = func() time.Time { return expiry.Add(-time.Millisecond) }
	assert.True(t, codec.Verify(token).Valid, "still valid just before expiry")

	codec.now = func() time.Time { return expiry }
	assert.False(t, codec.Verify(token).Valid, "invalid exactly at expiry")

	codec.now = func() time.Time { return expiry.Add(time.Millisecond) }
	assert.False(t, codec.Verify(token).Valid, "invalid after expiry")
}

func TestCodec_TamperingAnyByteInvalidates(t *testing.T) {
	codec, err := NewCodec("test-secret", 24*time.Hour)
	require.NoError(t, err)

	token, err := codec.Issue()
	require.NoError(t, err)
	require.True(t, codec.Verify(token).Valid)

	for i := range token {
		if token[i] == '.' {
			continue
		}
		mutated := []byte(token)
		mutated[i] ^= 0x01
		assert.False(t, codec.Verify(string(mutated)).Valid,
			"flipping byte %d must invalidate the token", i)
	}
}

func TestCodec_WrongSecretRejected(t *testing.T) {
	issuer, err := NewCodec("secret-a", 24*time.Hour)
	require.NoError(t, err)
	verifier, err := NewCodec("secret-b", 24*time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue()
	require.NoError(t, err)

	assert.False(t, verifier.Verify(token).Valid)
}

func TestCodec_StructuralGarbageRejected(t *testing.T) {
	codec, err := NewCodec("test-secret", 24*time.Hour)
	require.NoError(t, err)

	for _, token := range []string{
		"",
		"not-a-token",
		"a.b",
		"a.b.c.d",
		"!!!.???.###",
		"eyJhbGciOiJub25lIn0..",
	} {
		assert.False(t, codec.Verify(token).Valid, "token %q must be invalid", token)
	}
}
