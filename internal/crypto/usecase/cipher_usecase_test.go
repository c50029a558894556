package usecase

import (
	"context"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/authgate/internal/crypto/domain"
	cryptoService "github.com/allisson/authgate/internal/crypto/service"
)

func newTestCipherUseCase(t *testing.T) CipherUseCase {
	t.Helper()

	key := make([]byte, cryptoDomain.KeySize)
	_, err := rand.Read(key)
	require.NoError(t, err)

	cipher, err := cryptoService.NewCipherService(cryptoService.NewAEADManager(), key, cryptoDomain.AESGCM)
	require.NoError(t, err)

	return NewCipherUseCase(cipher)
}

func TestCipherUseCase_RoundTrip(t *testing.T) {
	uc := newTestCipherUseCase(t)
	ctx := context.Background()

	for _, text := range []string{"", "secret data", "ção ñ 日本語 🔑"} {
		t.Run(text, func(t *testing.T) {
			encrypted, err := uc.Encrypt(ctx, text)
			require.NoError(t, err)
			assert.NotEqual(t, text, encrypted)
			assert.NotContains(t, encrypted, "=")

			decrypted, err := uc.Decrypt(ctx, encrypted)
			require.NoError(t, err)
			assert.Equal(t, text, decrypted)
		})
	}
}

func TestCipherUseCase_EncryptIsRandomized(t *testing.T) {
	uc := newTestCipherUseCase(t)
	ctx := context.Background()

	first, err := uc.Encrypt(ctx, "same")
	require.NoError(t, err)
	second, err := uc.Encrypt(ctx, "same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCipherUseCase_Decrypt_Errors(t *testing.T) {
	uc := newTestCipherUseCase(t)
	ctx := context.Background()

	encrypted, err := uc.Encrypt(ctx, "hello")
	require.NoError(t, err)

	t.Run("Error_NotBase64", func(t *testing.T) {
		_, err := uc.Decrypt(ctx, "not*base64")
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidCiphertext)
	})

	t.Run("Error_Empty", func(t *testing.T) {
		_, err := uc.Decrypt(ctx, "")
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidCiphertext)
	})

	t.Run("Error_OtherKey", func(t *testing.T) {
		other := newTestCipherUseCase(t)
		_, err := other.Decrypt(ctx, encrypted)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("Error_Tampered", func(t *testing.T) {
		raw, err := tokenEncoding.DecodeString(encrypted)
		require.NoError(t, err)
		raw[len(raw)-1] ^= 0xff

		_, err = uc.Decrypt(ctx, tokenEncoding.EncodeToString(raw))
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})
}
