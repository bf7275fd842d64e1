package models

// Token response from the OAuth 2.0 token endpoint. Persisted as the sole
// contents of the token file and overwritten wholesale on every successful
// exchange or refresh.
type TokenRecord struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	// Lifetime of the access token in seconds, relative to issuance.
	ExpiresIn int64 `json:"expires_in"`
	// Returned by Yahoo when the "openid" scope was requested.
	IDToken string `json:"id_token,omitempty"`
}
