package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	validation "github.com/jellydator/validation"
	"gopkg.in/yaml.v3"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
	authService "github.com/allisson/authgate/internal/auth/service"
	customValidation "github.com/allisson/authgate/internal/validation"
)

// credentialsEntry mirrors the credentials file layout so the output can be pasted into it.
type credentialsEntry struct {
	Users []*authDomain.Credential `yaml:"users"`
}

// RunHashPassword hashes a password for the credentials file. With generate a random
// password is created and printed once; otherwise the password is read from the first
// line of streams.Reader.
func RunHashPassword(
	passwordService authService.PasswordService,
	streams IOTuple,
	username string,
	generate bool,
) error {
	if err := validation.Validate(username,
		validation.Required,
		customValidation.Username,
		validation.Length(1, 255),
	); err != nil {
		return fmt.Errorf("invalid username: %w", err)
	}

	var (
		plain string
		hash  string
		err   error
	)

	if generate {
		plain, hash, err = passwordService.GeneratePassword()
		if err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}
	} else {
		plain, err = readPassword(streams.Reader)
		if err != nil {
			return err
		}
		if err := validation.Validate(plain, customValidation.PasswordStrength{MinLength: 8}); err != nil {
			return fmt.Errorf("invalid password: %w", err)
		}
		hash, err = passwordService.HashPassword(plain)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
	}

	body, err := yaml.Marshal(credentialsEntry{
		Users: []*authDomain.Credential{{Username: username, PasswordHash: hash}},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal credentials entry: %w", err)
	}

	if generate {
		_, _ = fmt.Fprintf(streams.Writer, "# Generated password (shown once): %s\n", plain)
	}
	_, err = streams.Writer.Write(body)
	return err
}

func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	return password, nil
}
