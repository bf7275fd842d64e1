package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/grokify/go-pkce"
	"github.com/jmswll/yoauth/config"
	"github.com/jmswll/yoauth/lib/console"
	"github.com/jmswll/yoauth/lib/system"
	"github.com/jmswll/yoauth/lib/tokenio"
	"github.com/jmswll/yoauth/lib/yahoo"
	"github.com/lucsky/cuid"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
)

// Run the full interactive flow: open the authorization URL in a browser,
// receive the redirect on a local HTTP server, and exchange the code
// automatically. Requires REDIRECT_URI to point at localhost.
func LogIn(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	redirect, err := url.Parse(cfg.RedirectURI)
	if err != nil {
		return fmt.Errorf("invalid REDIRECT_URI %q: %w", cfg.RedirectURI, err)
	}
	host := redirect.Hostname()
	if host != "localhost" && host != "127.0.0.1" {
		return fmt.Errorf("login requires a localhost REDIRECT_URI (got %q); use `authorization-url` and `exchange-code` instead", cfg.RedirectURI)
	}

	codeVerifier, err := pkce.NewCodeVerifier(32)
	if err != nil {
		return fmt.Errorf("failed to generate code verifier: %w", err)
	}
	codeChallenge := pkce.CodeChallengeS256(codeVerifier)
	serverState := cuid.New()

	client := yahoo.New(cfg)
	authURL, err := client.AuthorizationURL(serverState, codeChallenge)
	if err != nil {
		return err
	}

	console.Info("Opening browser to authorize with Yahoo...")
	console.Info("You can also open this URL yourself:")
	fmt.Println(authURL)
	if err := system.OpenBrowser(authURL); err != nil {
		console.Warning("Could not open browser: %s", err)
	}

	// Local HTTP server for receiving the authorization callback request
	done := make(chan error, 1)
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		console.Verbose("Received authorization callback request. Validating...")

		query := r.URL.Query()
		if resError := query.Get("error"); resError != "" {
			http.Error(w, "Authorization failed. You can close this tab.", http.StatusBadRequest)
			done <- fmt.Errorf("provider returned error: %s; %s", resError, query.Get("error_description"))
			return
		}
		if query.Get("state") != serverState {
			http.Error(w, "Authorization failed. You can close this tab.", http.StatusBadRequest)
			done <- errors.New("state mismatch in authorization callback")
			return
		}

		token, err := client.ExchangeCode(query.Get("code"), codeVerifier)
		if err != nil {
			http.Error(w, "Authorization failed. You can close this tab.", http.StatusBadGateway)
			done <- err
			return
		}
		if err := tokenio.WriteToken(cfg.TokenFile, token); err != nil {
			http.Error(w, "Authorization failed. You can close this tab.", http.StatusInternalServerError)
			done <- err
			return
		}

		fmt.Fprintln(w, "Authenticated. You can close this tab.")
		done <- nil
	})

	port := lo.Ternary(redirect.Port() != "", redirect.Port(), "80")
	server := &http.Server{Addr: ":" + port, Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			done <- err
		}
	}()

	select {
	case err := <-done:
		server.Shutdown(context.Background())
		if err != nil {
			return err
		}
		console.Success("Authenticated. Token saved to %s", cfg.TokenFile)
		return nil
	case <-time.After(3 * time.Minute):
		server.Close()
		return errors.New("ending authentication attempt after 3 minutes")
	}
}
