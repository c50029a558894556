package usecase

import (
	"context"
	"encoding/base64"
	"unicode/utf8"

	cryptoDomain "github.com/allisson/authgate/internal/crypto/domain"
	cryptoService "github.com/allisson/authgate/internal/crypto/service"
)

// tokenEncoding is URL safe so tokens can travel in query strings unescaped.
var tokenEncoding = base64.RawURLEncoding

type cipherUseCase struct {
	cipher cryptoService.CipherService
}

// Encrypt seals text with the process cipher key.
func (c *cipherUseCase) Encrypt(ctx context.Context, text string) (string, error) {
	token, err := c.cipher.Encrypt([]byte(text))
	if err != nil {
		return "", err
	}
	return tokenEncoding.EncodeToString(token), nil
}

// Decrypt opens a token and returns the original text.
func (c *cipherUseCase) Decrypt(ctx context.Context, encryptedText string) (string, error) {
	token, err := tokenEncoding.DecodeString(encryptedText)
	if err != nil {
		return "", cryptoDomain.ErrInvalidCiphertext
	}

	plaintext, err := c.cipher.Decrypt(token)
	if err != nil {
		return "", err
	}

	// Encrypt only ever seals valid UTF-8, so anything else was not produced here.
	if !utf8.Valid(plaintext) {
		cryptoDomain.Zero(plaintext)
		return "", cryptoDomain.ErrDecryptionFailed
	}
	return string(plaintext), nil
}

// NewCipherUseCase creates a new CipherUseCase.
func NewCipherUseCase(cipher cryptoService.CipherService) CipherUseCase {
	return &cipherUseCase{cipher: cipher}
}
