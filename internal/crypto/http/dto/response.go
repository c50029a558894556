package dto

// EncryptResponse contains an encrypted token.
type EncryptResponse struct {
	EncryptedText string `json:"encrypted_text"`
}

// DecryptResponse contains recovered plaintext.
type DecryptResponse struct {
	DecryptedText string `json:"decrypted_text"`
}
