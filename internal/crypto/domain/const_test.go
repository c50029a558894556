package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/authgate/internal/errors"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Algorithm
		wantErr  bool
	}{
		{name: "Success_AESGCM", input: "aes-gcm", expected: AESGCM},
		{name: "Success_ChaCha20", input: "chacha20-poly1305", expected: ChaCha20},
		{name: "Error_Unknown", input: "fernet", wantErr: true},
		{name: "Error_Empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alg, err := ParseAlgorithm(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
				assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, alg)
		})
	}
}
