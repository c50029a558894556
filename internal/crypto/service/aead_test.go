package service

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/authgate/internal/crypto/domain"
)

type testAEAD interface {
	Encrypt(plaintext, aad []byte) ([]byte, []byte, error)
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
	NonceSize() int
}

func newSizedTestKey(t *testing.T, size int) []byte {
	t.Helper()
	key := make([]byte, size)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func TestAEADCiphers(t *testing.T) {
	constructors := map[string]func(key []byte) (testAEAD, error){
		"aes-gcm": func(key []byte) (testAEAD, error) {
			c, err := NewAESGCM(key)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
		"chacha20-poly1305": func(key []byte) (testAEAD, error) {
			c, err := NewChaCha20Poly1305(key)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
	}

	for name, newCipher := range constructors {
		t.Run(name, func(t *testing.T) {
			t.Run("rejects wrong key sizes", func(t *testing.T) {
				for _, size := range []int{0, 16, 31, 64} {
					c, err := newCipher(newSizedTestKey(t, size))
					assert.Error(t, err, "size %d", size)
					assert.Nil(t, c)
				}
			})

			c, err := newCipher(newSizedTestKey(t, cryptoDomain.KeySize))
			require.NoError(t, err)
			assert.Equal(t, 12, c.NonceSize())

			t.Run("round trip", func(t *testing.T) {
				for _, plaintext := range [][]byte{{}, []byte("hello"), []byte("ünïcødé ✓")} {
					ciphertext, nonce, err := c.Encrypt(plaintext, []byte("aad"))
					require.NoError(t, err)
					assert.Len(t, ciphertext, len(plaintext)+16)

					decrypted, err := c.Decrypt(ciphertext, nonce, []byte("aad"))
					require.NoError(t, err)
					assert.Equal(t, string(plaintext), string(decrypted))
				}
			})

			t.Run("fresh nonce per call", func(t *testing.T) {
				_, nonce1, err := c.Encrypt([]byte("x"), nil)
				require.NoError(t, err)
				_, nonce2, err := c.Encrypt([]byte("x"), nil)
				require.NoError(t, err)
				assert.NotEqual(t, nonce1, nonce2)
			})

			t.Run("authentication failures", func(t *testing.T) {
				ciphertext, nonce, err := c.Encrypt([]byte("secret"), []byte("aad"))
				require.NoError(t, err)

				_, err = c.Decrypt(ciphertext, nonce, []byte("other"))
				assert.Error(t, err, "wrong aad")

				tampered := append([]byte(nil), ciphertext...)
				tampered[0] ^= 0xff
				_, err = c.Decrypt(tampered, nonce, []byte("aad"))
				assert.Error(t, err, "tampered ciphertext")

				_, err = c.Decrypt(ciphertext, nonce[:4], []byte("aad"))
				assert.Error(t, err, "short nonce")

				other, err := newCipher(newSizedTestKey(t, cryptoDomain.KeySize))
				require.NoError(t, err)
				_, err = other.Decrypt(ciphertext, nonce, []byte("aad"))
				assert.Error(t, err, "wrong key")
			})
		})
	}
}
