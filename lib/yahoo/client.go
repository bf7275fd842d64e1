package yahoo

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/jmswll/yoauth/config"
	"github.com/jmswll/yoauth/constants"
	"github.com/jmswll/yoauth/lib/httpw"
	"github.com/jmswll/yoauth/models"
)

// Client calls the Yahoo OAuth 2.0 endpoints. Each operation is a single
// synchronous request with no retries; the caller re-invokes on failure.
type Client struct {
	config config.Config
	http   *httpw.Client
}

func New(cfg config.Config) *Client {
	return &Client{
		config: cfg,
		http:   httpw.New(cfg.HTTPTimeout),
	}
}

// Build the full URL for an endpoint path.
func (c *Client) endpoint(path string) string {
	return strings.TrimSuffix(c.config.APIBaseURL, "/") + path
}

// AuthorizationURL builds the URL the user visits to approve access. No
// network call. codeChallenge adds S256 PKCE parameters and should only be
// set when the caller holds the matching verifier for the later exchange.
func (c *Client) AuthorizationURL(state string, codeChallenge string) (string, error) {
	authURL, err := url.Parse(c.endpoint(constants.AuthorizePath))
	if err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("response_type", "code")
	query.Set("client_id", c.config.ClientID)
	query.Set("redirect_uri", c.config.RedirectURI)
	query.Set("scope", c.config.Scope)
	if state != "" {
		query.Set("state", state)
	}
	if c.config.Language != "" {
		query.Set("language", c.config.Language)
	}
	if codeChallenge != "" {
		query.Set("code_challenge", codeChallenge)
		query.Set("code_challenge_method", "S256")
	}

	authURL.RawQuery = query.Encode()
	return authURL.String(), nil
}

// ExchangeCode exchanges an authorization code for tokens. codeVerifier is
// only set by the interactive login flow.
func (c *Client) ExchangeCode(code string, codeVerifier string) (models.TokenRecord, error) {
	if code == "" {
		return models.TokenRecord{}, errors.New("authorization code must not be empty")
	}

	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("code", code)
	data.Set("redirect_uri", c.config.RedirectURI)
	if codeVerifier != "" {
		data.Set("code_verifier", codeVerifier)
	}

	return c.requestToken("exchange-code", data)
}

// RefreshToken obtains a fresh access token with the refresh-token grant.
// When the provider omits a new refresh token, the old one is retained so
// the persisted record stays usable.
func (c *Client) RefreshToken(refreshToken string) (models.TokenRecord, error) {
	data := url.Values{}
	data.Set("grant_type", "refresh_token")
	data.Set("refresh_token", refreshToken)
	data.Set("redirect_uri", c.config.RedirectURI)

	token, err := c.requestToken("refresh-token", data)
	if err != nil {
		return models.TokenRecord{}, err
	}

	if token.RefreshToken == "" {
		token.RefreshToken = refreshToken
	}
	return token, nil
}

// Userinfo fetches the profile for the given access token and returns the
// response body verbatim. An expired token surfaces as the upstream 401.
func (c *Client) Userinfo(accessToken string) ([]byte, error) {
	res, err := c.http.Get(c.endpoint(constants.UserinfoPath), accessToken)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, &StatusError{Op: "get-userinfo", StatusCode: res.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return body, nil
}

// RevokeGrant asks the provider to invalidate the grant behind the given
// refresh token. The raw provider response is returned unchanged; this
// endpoint is documented as not yet implemented by Yahoo, so errors are
// surfaced rather than interpreted.
func (c *Client) RevokeGrant(refreshToken string) (string, error) {
	data := url.Values{}
	data.Set("token", refreshToken)
	data.Set("token_type_hint", "refresh_token")

	// The revoke endpoint authenticates with Basic client credentials
	// regardless of the token-endpoint scheme.
	res, err := c.http.PostForm(c.endpoint(constants.RevokePath), data, c.config.ClientID, c.config.ClientSecret)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", &StatusError{Op: "revoke-grant", StatusCode: res.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return strings.TrimSpace(string(body)), nil
}

// Send a token-endpoint request and parse the response.
func (c *Client) requestToken(op string, data url.Values) (models.TokenRecord, error) {
	var basicUser, basicPass string
	if c.config.AuthScheme == config.AuthSchemeBasic {
		basicUser = c.config.ClientID
		basicPass = c.config.ClientSecret
	} else {
		data.Set("client_id", c.config.ClientID)
		data.Set("client_secret", c.config.ClientSecret)
	}

	res, err := c.http.PostForm(c.endpoint(constants.TokenPath), data, basicUser, basicPass)
	if err != nil {
		return models.TokenRecord{}, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return models.TokenRecord{}, err
	}

	if res.StatusCode != http.StatusOK {
		return models.TokenRecord{}, &StatusError{Op: op, StatusCode: res.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	return parseTokenResponse(op, res.StatusCode, body)
}

// Parse and validate a token-endpoint response body.
// NOTE: Does not require a refresh token, since it's not returned with all
// grant types.
func parseTokenResponse(op string, statusCode int, body []byte) (models.TokenRecord, error) {
	var token models.TokenRecord
	if err := json.Unmarshal(body, &token); err != nil {
		return models.TokenRecord{}, &StatusError{Op: op, StatusCode: statusCode, Body: strings.TrimSpace(string(body))}
	}

	if token.AccessToken == "" {
		return models.TokenRecord{}, errors.New("\"access_token\" not found in response")
	}
	if token.TokenType == "" {
		return models.TokenRecord{}, errors.New("\"token_type\" not found in response")
	}
	if token.ExpiresIn == 0 {
		return models.TokenRecord{}, errors.New("\"expires_in\" not found in response")
	}

	return token, nil
}
