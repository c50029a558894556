// Package repository loads credential records from provisioning files.
package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	validation "github.com/jellydator/validation"
	"gopkg.in/yaml.v3"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
	apperrors "github.com/allisson/authgate/internal/errors"
	customValidation "github.com/allisson/authgate/internal/validation"
)

// credentialsFile is the on-disk layout:
//
//	users:
//	  - username: admin
//	    password_hash: $argon2id$v=19$...
type credentialsFile struct {
	Users []*authDomain.Credential `yaml:"users"`
}

// FileCredentialRepository reads credential records from a YAML file.
type FileCredentialRepository struct {
	path string
}

// List parses the file and validates every record. An empty path yields no records.
func (f *FileCredentialRepository) List(ctx context.Context) ([]*authDomain.Credential, error) {
	if f.path == "" {
		return []*authDomain.Credential{}, nil
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to read credentials file")
	}

	// An empty file decodes to io.EOF and means no records.
	var file credentialsFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", authDomain.ErrInvalidCredential, err)
	}

	credentials := make([]*authDomain.Credential, 0, len(file.Users))
	for i, cred := range file.Users {
		if cred == nil {
			return nil, fmt.Errorf("%w: entry %d is empty", authDomain.ErrInvalidCredential, i)
		}
		if err := validateCredential(cred); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", authDomain.ErrInvalidCredential, i, err)
		}
		credentials = append(credentials, cred)
	}

	return credentials, nil
}

func validateCredential(cred *authDomain.Credential) error {
	return validation.ValidateStruct(cred,
		validation.Field(&cred.Username,
			validation.Required,
			customValidation.Username,
			validation.Length(1, 255),
		),
		validation.Field(&cred.PasswordHash,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// NewFileCredentialRepository creates a repository backed by the YAML file at path.
func NewFileCredentialRepository(path string) *FileCredentialRepository {
	return &FileCredentialRepository{path: path}
}
