package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptNameRoundTrip(t *testing.T) {
	ciphertext, err := EncryptName("secret", "alice")
	require.NoError(t, err)
	assert.NotContains(t, string(ciphertext), "alice")

	name, err := DecryptName("secret", ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "alice", name)

	_, err = DecryptName("other-secret", ciphertext)
	assert.Error(t, err)

	_, err = DecryptName("secret", []byte("short"))
	assert.Equal(t, ErrCiphertextTooShort, err)
}

func TestEncryptNameIsRandomized(t *testing.T) {
	first, err := EncryptName("secret", "alice")
	require.NoError(t, err)
	second, err := EncryptName("secret", "alice")
	require.NoError(t, err)
	// fresh nonce per call, ciphertexts differ
	assert.NotEqual(t, first, second)
}

func TestNameDigestDeterministic(t *testing.T) {
	assert.Equal(t, NameDigest("secret", "alice"), NameDigest("secret", "alice"))
	assert.NotEqual(t, NameDigest("secret", "alice"), NameDigest("secret", "bob"))
	assert.NotEqual(t, NameDigest("secret", "alice"), NameDigest("other", "alice"))
}
