package httpw

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jmswll/yoauth/lib/console"
)

// Client wraps an http.Client so that every request a command makes shares
// the same fixed timeout. A timed-out request surfaces as a transport error.
type Client struct {
	http *http.Client
}

// New returns a Client whose requests fail after the given timeout.
func New(timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{Timeout: timeout},
	}
}

// Get sends a GET request to the specified URL with a bearer Authorization
// header. The response is returned regardless of status code; callers decide
// what a non-2xx status means for their operation.
func (c *Client) Get(url string, accessToken string) (*http.Response, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", accessToken))

	console.Verbose("GET %s", url)
	return c.http.Do(req)
}

// PostForm sends a form-encoded POST request to the specified URL. When
// basicUser is non-empty the client credentials go in a Basic Authorization
// header instead of the body.
func (c *Client) PostForm(url string, data url.Values, basicUser string, basicPass string) (*http.Response, error) {
	req, err := http.NewRequest("POST", url, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if basicUser != "" {
		req.SetBasicAuth(basicUser, basicPass)
	}

	console.Verbose("POST %s", url)
	return c.http.Do(req)
}
