// Package domain defines the cipher service's algorithms, key material rules and errors.
package domain

// Algorithm represents the AEAD algorithm used by the cipher service.
//
// Both supported algorithms provide authenticated encryption: a tampered ciphertext or a
// wrong key fails to open instead of producing garbage plaintext.
type Algorithm string

const (
	// AESGCM represents AES-256-GCM. Preferred on CPUs with AES-NI.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents ChaCha20-Poly1305. Preferred where AES is not hardware accelerated.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// KeySize is the required length in bytes of every symmetric key handled by this service.
const KeySize = 32

// ParseAlgorithm converts a configuration string to an Algorithm.
func ParseAlgorithm(alg string) (Algorithm, error) {
	switch Algorithm(alg) {
	case AESGCM:
		return AESGCM, nil
	case ChaCha20:
		return ChaCha20, nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}
