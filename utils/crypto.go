package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
)

// User names are stored encrypted at rest. Equality lookups go through a
// deterministic keyed digest of the plain name (NameDigest) so login never
// has to decrypt the whole table; only the matched row is decrypted.

var ErrCiphertextTooShort = errors.New("ciphertext too short")

// aesKey derives a fixed-length AES key from the configured secret.
func aesKey(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	return sum[:]
}

func EncryptName(secret, name string) ([]byte, error) {
	block, err := aes.NewCipher(aesKey(secret))
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, []byte(name), nil), nil
}

func DecryptName(secret string, ciphertext []byte) (string, error) {
	block, err := aes.NewCipher(aesKey(secret))
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}
	if len(ciphertext) < gcm.NonceSize() {
		return "", ErrCiphertextTooShort
	}
	nonce, sealed := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	plain, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// NameDigest is the blind index used for name equality lookups.
func NameDigest(secret, name string) string {
	mac := hmac.New(sha256.New, []byte("name-index:"+secret))
	mac.Write([]byte(name))
	return hex.EncodeToString(mac.Sum(nil))
}
