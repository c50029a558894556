// Package dto provides data transfer objects for the cipher endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/authgate/internal/validation"
)

// maxTextLength bounds the size of a single encrypt or decrypt payload.
const maxTextLength = 1 << 20

// EncryptRequest contains the text to encrypt. An empty string is valid input.
type EncryptRequest struct {
	Text *string `json:"text"`
}

// Validate checks that text is present and within size limits.
func (r *EncryptRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Text, validation.NotNil, validation.Length(0, maxTextLength)),
	)
	return customValidation.WrapValidationError(err)
}

// DecryptRequest contains a token produced by the encrypt endpoint.
type DecryptRequest struct {
	EncryptedText string `json:"encrypted_text"`
}

// Validate checks that the token is present and within size limits.
func (r *DecryptRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.EncryptedText,
			validation.Required,
			customValidation.NoWhitespace,
			validation.Length(1, maxTextLength*2),
		),
	)
	return customValidation.WrapValidationError(err)
}
