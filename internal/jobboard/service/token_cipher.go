package service

//go:generate mockgen -destination=../../mocks/mock_token_cipher.go -package=mocks github.com/atharv2608/alphaware-task-backend/internal/jobboard/service TokenCipher

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"
)

type TokenCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// AESTokenCipher encrypts signed tokens with AES-256-GCM. The configured key
// is a passphrase of any length; it is digested into the actual cipher key.
type AESTokenCipher struct {
	key [32]byte
}

func NewAESTokenCipher(key string) *AESTokenCipher {
	return &AESTokenCipher{key: sha256.Sum256([]byte(key))}
}

func (c *AESTokenCipher) Encrypt(plaintext string) (string, error) {
	gcm, err := c.gcm()
	if err != nil {
		return "", err
	}

	// Fresh nonce per call: two encryptions of the same token never match.
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. Any malformed, truncated or wrong-key input
// yields an error result, never a panic, so callers can branch on it.
func (c *AESTokenCipher) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.New("malformed token ciphertext")
	}

	gcm, err := c.gcm()
	if err != nil {
		return "", err
	}

	if len(raw) < gcm.NonceSize() {
		return "", errors.New("malformed token ciphertext")
	}

	nonce, sealed := raw[:gcm.NonceSize()], raw[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", errors.New("failed to decrypt token")
	}

	return string(plaintext), nil
}

func (c *AESTokenCipher) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key[:])
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
