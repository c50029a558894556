// Package service provides the cryptographic primitives behind the cipher service:
// AEAD ciphers, key loading (plain, derived or KMS-wrapped) and the text cipher itself.
package service

import (
	"context"

	cryptoDomain "github.com/allisson/authgate/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
// Implementations must be safe for concurrent use.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)

	// NonceSize returns the nonce length in bytes.
	NonceSize() int
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// CipherService encrypts and decrypts arbitrary bytes with a process-lifetime key.
type CipherService interface {
	// Encrypt seals plaintext and returns the self-contained encrypted token.
	Encrypt(plaintext []byte) ([]byte, error)

	// Decrypt opens an encrypted token produced by Encrypt.
	// Returns ErrInvalidCiphertext or ErrDecryptionFailed on bad input or wrong key.
	Decrypt(token []byte) ([]byte, error)
}

// KeyLoader resolves the symmetric keys the gateway runs with.
type KeyLoader interface {
	// Load returns a KeySize key for purpose. Configured material is used as-is (after KMS
	// unwrapping when a keeper URI is configured); otherwise the key is derived from the
	// root key, and when no root key exists a random key is generated.
	Load(ctx context.Context, purpose KeyPurpose, configured string) ([]byte, error)
}

// KMSService opens KMS keepers.
type KMSService interface {
	// OpenKeeper opens a keeper for the given URI (gcpkms://, awskms://, azurekeyvault://,
	// hashivault://, base64key://).
	OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error)
}
