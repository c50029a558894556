// Package usecase exposes text encryption and decryption on top of the cipher service.
package usecase

import "context"

// CipherUseCase encrypts and decrypts text for transport as a printable token.
type CipherUseCase interface {
	// Encrypt seals text and returns it as an unpadded base64url token.
	Encrypt(ctx context.Context, text string) (string, error)

	// Decrypt opens a token produced by Encrypt. Malformed or tampered tokens and tokens
	// sealed under another key all fail with a CipherError.
	Decrypt(ctx context.Context, encryptedText string) (string, error)
}
