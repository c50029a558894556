package domain

import (
	"github.com/allisson/authgate/internal/errors"
)

// Cipher service errors. Every encryption or decryption failure surfaces as one of these;
// the specific cause of a decryption failure is never disclosed.
var (
	// ErrUnsupportedAlgorithm indicates the configured algorithm is unknown.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeySize indicates a key that is not exactly KeySize bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrInvalidKeyEncoding indicates configured key material is not valid base64.
	ErrInvalidKeyEncoding = errors.Wrap(errors.ErrInvalidInput, "invalid key encoding")

	// ErrInvalidCiphertext indicates the encrypted text is not in the expected wire format.
	ErrInvalidCiphertext = errors.Wrap(errors.ErrInvalidInput, "invalid ciphertext")

	// ErrDecryptionFailed indicates a wrong key or a tampered ciphertext.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")

	// ErrEncryptionFailed indicates the cipher could not seal the plaintext.
	ErrEncryptionFailed = errors.New("encryption failed")
)
