package domain

// Credential is a username bound to a salted password hash.
type Credential struct {
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"password_hash"`
}

// AuthenticateInput contains the parameters for a login attempt.
type AuthenticateInput struct {
	Username string
	Password string
	SourceID string
}

// AuthenticateOutput is returned on a successful login.
type AuthenticateOutput struct {
	Token *IssuedToken
}

// VerifySessionOutput is returned when a session token is valid.
type VerifySessionOutput struct {
	Username string
}
