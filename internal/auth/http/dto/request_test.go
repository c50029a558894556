package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthenticateRequest_Validate(t *testing.T) {
	t.Run("Success_EmptyFieldsAllowed", func(t *testing.T) {
		req := AuthenticateRequest{}
		assert.NoError(t, req.Validate())
	})

	t.Run("Error_UsernameTooLong", func(t *testing.T) {
		req := AuthenticateRequest{Username: strings.Repeat("a", 256)}
		assert.Error(t, req.Validate())
	})

	t.Run("Error_PasswordTooLong", func(t *testing.T) {
		req := AuthenticateRequest{Password: strings.Repeat("a", maxPasswordLength+1)}
		assert.Error(t, req.Validate())
	})
}

func TestAuthenticateRequest_Validate_IgnoresSource(t *testing.T) {
	req := AuthenticateRequest{
		Username:    "admin",
		LoginSource: LoginSource{SourceID: strings.Repeat("s", 300)},
	}
	assert.NoError(t, req.Validate())
}

func TestLoginSource_Validate(t *testing.T) {
	t.Run("Success_MaxLength", func(t *testing.T) {
		src := LoginSource{SourceID: strings.Repeat("s", 255), IP: strings.Repeat("i", 255)}
		assert.NoError(t, src.Validate())
	})

	t.Run("Error_SourceIDTooLong", func(t *testing.T) {
		src := LoginSource{SourceID: strings.Repeat("s", 256)}
		assert.Error(t, src.Validate())
	})

	t.Run("Error_IPTooLong", func(t *testing.T) {
		src := LoginSource{IP: strings.Repeat("i", 256)}
		assert.Error(t, src.Validate())
	})
}

func TestLoginSource_Source(t *testing.T) {
	assert.Equal(t, "1.2.3.4", (&LoginSource{SourceID: "1.2.3.4", IP: "5.6.7.8"}).Source())
	assert.Equal(t, "5.6.7.8", (&LoginSource{IP: "5.6.7.8"}).Source())
	assert.Equal(t, "", (&LoginSource{}).Source())
}
