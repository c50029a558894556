package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/crypto/hkdf"

	cryptoDomain "github.com/allisson/authgate/internal/crypto/domain"
)

// KeyPurpose labels a key so that keys derived from the same root never coincide.
// The value is used as the HKDF info parameter and is versioned for future changes.
type KeyPurpose string

const (
	// PurposeCipher is the key used by the text cipher service.
	PurposeCipher KeyPurpose = "authgate-cipher-v1"

	// PurposeTokenSigning is the HMAC key used to sign session tokens.
	PurposeTokenSigning KeyPurpose = "authgate-token-signing-v1"
)

// keyLoader implements KeyLoader.
type keyLoader struct {
	rootKey []byte
	keeper  cryptoDomain.KMSKeeper
	logger  *slog.Logger
}

// NewKeyLoader creates a KeyLoader. rootKey is optional base64 key material; keeper is
// optional and, when set, every configured value (root key included) is treated as a
// KMS-wrapped ciphertext.
func NewKeyLoader(
	ctx context.Context,
	rootKey string,
	keeper cryptoDomain.KMSKeeper,
	logger *slog.Logger,
) (KeyLoader, error) {
	k := &keyLoader{keeper: keeper, logger: logger}

	if rootKey != "" {
		root, err := k.decode(ctx, rootKey)
		if err != nil {
			return nil, fmt.Errorf("failed to load root key: %w", err)
		}
		if len(root) < cryptoDomain.KeySize {
			cryptoDomain.Zero(root)
			return nil, fmt.Errorf("%w: root key must be at least %d bytes", cryptoDomain.ErrInvalidKeySize, cryptoDomain.KeySize)
		}
		k.rootKey = root
	}

	return k, nil
}

// Load resolves the key for purpose.
func (k *keyLoader) Load(ctx context.Context, purpose KeyPurpose, configured string) ([]byte, error) {
	if configured != "" {
		key, err := k.decode(ctx, configured)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s key: %w", purpose, err)
		}
		if err := validateKeySize(purpose, key); err != nil {
			cryptoDomain.Zero(key)
			return nil, err
		}
		return key, nil
	}

	if k.rootKey != nil {
		return deriveKey(k.rootKey, purpose)
	}

	key := make([]byte, cryptoDomain.KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate %s key: %w", purpose, err)
	}
	k.logger.Warn("no key material configured, using an ephemeral key for this process",
		slog.String("purpose", string(purpose)),
	)
	return key, nil
}

// decode base64-decodes value and unwraps it with the KMS keeper when one is configured.
func (k *keyLoader) decode(ctx context.Context, value string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrInvalidKeyEncoding, err)
	}
	if k.keeper == nil {
		return raw, nil
	}

	key, err := k.keeper.Decrypt(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to unwrap key with KMS: %w", err)
	}
	return key, nil
}

// deriveKey uses HKDF-SHA256 to derive a KeySize key bound to purpose.
func deriveKey(root []byte, purpose KeyPurpose) ([]byte, error) {
	reader := hkdf.New(sha256.New, root, nil, []byte(purpose))

	key := make([]byte, cryptoDomain.KeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive %s key: %w", purpose, err)
	}
	return key, nil
}

// validateKeySize enforces exact AEAD key sizes and a minimum HMAC key size.
func validateKeySize(purpose KeyPurpose, key []byte) error {
	switch {
	case purpose == PurposeCipher && len(key) != cryptoDomain.KeySize:
		return fmt.Errorf("%w: cipher key must be %d bytes, got %d", cryptoDomain.ErrInvalidKeySize, cryptoDomain.KeySize, len(key))
	case len(key) < cryptoDomain.KeySize:
		return fmt.Errorf("%w: %s key must be at least %d bytes, got %d", cryptoDomain.ErrInvalidKeySize, purpose, cryptoDomain.KeySize, len(key))
	}
	return nil
}
