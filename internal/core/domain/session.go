package domain

// Session is the transient token pair issued by a successful login. No
// server-side session state exists; verification is purely cryptographic.
type Session struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresIn  string `json:"access_token_expires_in"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresIn string `json:"refresh_token_expires_in"`
	TokenType             string `json:"token_type"`
}

// SessionTokenType labels issued token pairs.
const SessionTokenType = "Bearer"
