package yahoo

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/jmswll/yoauth/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokenResponseBody = `{"access_token":"A","refresh_token":"R","token_type":"bearer","expires_in":3600}`

func testConfig(baseURL string) config.Config {
	return config.Config{
		ClientID:     "test-client-id",
		ClientSecret: "test-client-secret",
		RedirectURI:  "https://example.com/callback",
		APIBaseURL:   baseURL,
		Scope:        "openid email profile",
		AuthScheme:   config.AuthSchemeBody,
		HTTPTimeout:  5 * time.Second,
	}
}

func TestAuthorizationURL(t *testing.T) {
	client := New(testConfig("https://api.login.yahoo.com"))

	raw, err := client.AuthorizationURL("state-123", "")
	require.NoError(t, err)

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "api.login.yahoo.com", parsed.Host)
	assert.Equal(t, "/oauth2/request_auth", parsed.Path)

	query := parsed.Query()
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "test-client-id", query.Get("client_id"))
	assert.Equal(t, "https://example.com/callback", query.Get("redirect_uri"))
	assert.Equal(t, "openid email profile", query.Get("scope"))
	assert.Equal(t, "state-123", query.Get("state"))
	assert.Empty(t, query.Get("code_challenge"))
	assert.Empty(t, query.Get("language"))
}

func TestAuthorizationURLWithPKCEAndLanguage(t *testing.T) {
	cfg := testConfig("https://api.login.yahoo.com")
	cfg.Language = "en-US"
	client := New(cfg)

	raw, err := client.AuthorizationURL("state-123", "challenge-abc")
	require.NoError(t, err)

	query, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "challenge-abc", query.Query().Get("code_challenge"))
	assert.Equal(t, "S256", query.Query().Get("code_challenge_method"))
	assert.Equal(t, "en-US", query.Query().Get("language"))
}

func TestExchangeCodeBodyScheme(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/oauth2/get_token", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "XYZ", r.PostForm.Get("code"))
		assert.Equal(t, "https://example.com/callback", r.PostForm.Get("redirect_uri"))
		assert.Equal(t, "test-client-id", r.PostForm.Get("client_id"))
		assert.Equal(t, "test-client-secret", r.PostForm.Get("client_secret"))
		assert.Empty(t, r.PostForm.Get("code_verifier"))

		fmt.Fprint(w, tokenResponseBody)
	}))
	defer server.Close()

	token, err := New(testConfig(server.URL)).ExchangeCode("XYZ", "")
	require.NoError(t, err)
	assert.Equal(t, "A", token.AccessToken)
	assert.Equal(t, "R", token.RefreshToken)
	assert.Equal(t, "bearer", token.TokenType)
	assert.EqualValues(t, 3600, token.ExpiresIn)
}

func TestExchangeCodeBasicScheme(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "test-client-id", user)
		assert.Equal(t, "test-client-secret", pass)

		require.NoError(t, r.ParseForm())
		assert.Empty(t, r.PostForm.Get("client_id"))
		assert.Empty(t, r.PostForm.Get("client_secret"))

		fmt.Fprint(w, tokenResponseBody)
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.AuthScheme = config.AuthSchemeBasic

	_, err := New(cfg).ExchangeCode("XYZ", "")
	require.NoError(t, err)
}

func TestExchangeCodeWithVerifier(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "verifier-abc", r.PostForm.Get("code_verifier"))
		fmt.Fprint(w, tokenResponseBody)
	}))
	defer server.Close()

	_, err := New(testConfig(server.URL)).ExchangeCode("XYZ", "verifier-abc")
	require.NoError(t, err)
}

func TestExchangeCodeEmptyCode(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	_, err := New(testConfig(server.URL)).ExchangeCode("", "")
	require.Error(t, err)
	assert.Zero(t, requests)
}

func TestExchangeCodeErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":"invalid_grant"}`)
	}))
	defer server.Close()

	_, err := New(testConfig(server.URL)).ExchangeCode("XYZ", "")
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "exchange-code", statusErr.Op)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "invalid_grant")
}

func TestExchangeCodeMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>not json</html>")
	}))
	defer server.Close()

	_, err := New(testConfig(server.URL)).ExchangeCode("XYZ", "")
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusOK, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "not json")
}

func TestExchangeCodeMissingAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"token_type":"bearer","expires_in":3600}`)
	}))
	defer server.Close()

	_, err := New(testConfig(server.URL)).ExchangeCode("XYZ", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access_token")
}

func TestRefreshTokenRetainsRefreshToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "R", r.PostForm.Get("refresh_token"))

		// Provider returns no new refresh token.
		fmt.Fprint(w, `{"access_token":"A2","token_type":"bearer","expires_in":3600}`)
	}))
	defer server.Close()

	token, err := New(testConfig(server.URL)).RefreshToken("R")
	require.NoError(t, err)
	assert.Equal(t, "A2", token.AccessToken)
	assert.Equal(t, "R", token.RefreshToken)
}

func TestUserinfo(t *testing.T) {
	body := `{"email":"u@example.com"}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/openid/v1/userinfo", r.URL.Path)
		assert.Equal(t, "Bearer A", r.Header.Get("Authorization"))
		fmt.Fprint(w, body)
	}))
	defer server.Close()

	got, err := New(testConfig(server.URL)).Userinfo("A")
	require.NoError(t, err)
	assert.Equal(t, body, string(got))
}

func TestUserinfoExpiredToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":"invalid_token"}`)
	}))
	defer server.Close()

	_, err := New(testConfig(server.URL)).Userinfo("expired")
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "get-userinfo", statusErr.Op)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
}

func TestRevokeGrant(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oauth2/revoke", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "test-client-id", user)
		assert.Equal(t, "test-client-secret", pass)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "R", r.PostForm.Get("token"))
		assert.Equal(t, "refresh_token", r.PostForm.Get("token_type_hint"))

		fmt.Fprint(w, "{}")
	}))
	defer server.Close()

	body, err := New(testConfig(server.URL)).RevokeGrant("R")
	require.NoError(t, err)
	assert.Equal(t, "{}", body)
}

func TestRevokeGrantProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotImplemented)
		fmt.Fprint(w, `{"error":"unsupported_operation"}`)
	}))
	defer server.Close()

	_, err := New(testConfig(server.URL)).RevokeGrant("R")
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "revoke-grant", statusErr.Op)
	assert.Equal(t, http.StatusNotImplemented, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "unsupported_operation")
}
