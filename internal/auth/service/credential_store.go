package service

import (
	"fmt"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
)

// credentialStore is an immutable username to hash map. It is safe for concurrent use
// because nothing writes to it after construction.
type credentialStore struct {
	passwords PasswordService
	hashes    map[string]string
	dummyHash string
}

// Verify implements CredentialStore.
func (s *credentialStore) Verify(username, password string) bool {
	hash, ok := s.hashes[username]
	if !ok || password == "" {
		// Pay for a comparison anyway so response time does not reveal whether a user exists.
		s.passwords.ComparePassword(password, s.dummyHash)
		return false
	}
	return s.passwords.ComparePassword(password, hash)
}

// NewCredentialStore builds a CredentialStore from credential records. Usernames must be
// unique and every record needs a non-empty hash.
func NewCredentialStore(
	passwords PasswordService,
	credentials []*authDomain.Credential,
) (CredentialStore, error) {
	hashes := make(map[string]string, len(credentials))
	for _, cred := range credentials {
		if cred == nil || cred.Username == "" || cred.PasswordHash == "" {
			return nil, fmt.Errorf("%w: username and password hash are required", authDomain.ErrInvalidCredential)
		}
		if _, exists := hashes[cred.Username]; exists {
			return nil, fmt.Errorf("%w: duplicate username %q", authDomain.ErrInvalidCredential, cred.Username)
		}
		hashes[cred.Username] = cred.PasswordHash
	}

	_, dummyHash, err := passwords.GeneratePassword()
	if err != nil {
		return nil, err
	}

	return &credentialStore{
		passwords: passwords,
		hashes:    hashes,
		dummyHash: dummyHash,
	}, nil
}
