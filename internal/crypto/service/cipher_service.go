package service

import (
	"fmt"

	cryptoDomain "github.com/allisson/authgate/internal/crypto/domain"
)

// tokenVersion prefixes every encrypted token and is authenticated as AAD, so a token
// from a future format can never be opened as this one.
const tokenVersion byte = 0x01

// cipherService implements CipherService on top of an AEAD.
//
// Token layout: version (1 byte) || nonce || ciphertext+tag.
type cipherService struct {
	aead AEAD
}

// NewCipherService creates a CipherService bound to key and alg for the process lifetime.
func NewCipherService(aeadManager AEADManager, key []byte, alg cryptoDomain.Algorithm) (CipherService, error) {
	aead, err := aeadManager.CreateCipher(key, alg)
	if err != nil {
		return nil, err
	}
	return &cipherService{aead: aead}, nil
}

// Encrypt seals plaintext into a self-contained token.
func (c *cipherService) Encrypt(plaintext []byte) ([]byte, error) {
	ciphertext, nonce, err := c.aead.Encrypt(plaintext, []byte{tokenVersion})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrEncryptionFailed, err)
	}

	token := make([]byte, 0, 1+len(nonce)+len(ciphertext))
	token = append(token, tokenVersion)
	token = append(token, nonce...)
	token = append(token, ciphertext...)
	return token, nil
}

// Decrypt opens a token produced by Encrypt.
func (c *cipherService) Decrypt(token []byte) ([]byte, error) {
	nonceSize := c.aead.NonceSize()
	if len(token) < 1+nonceSize || token[0] != tokenVersion {
		return nil, cryptoDomain.ErrInvalidCiphertext
	}

	nonce := token[1 : 1+nonceSize]
	ciphertext := token[1+nonceSize:]

	plaintext, err := c.aead.Decrypt(ciphertext, nonce, []byte{tokenVersion})
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	return plaintext, nil
}
