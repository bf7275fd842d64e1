package cmd

import (
	"errors"

	"github.com/jmswll/yoauth/config"
	"github.com/jmswll/yoauth/lib/console"
	"github.com/jmswll/yoauth/lib/tokenio"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
)

// Print the current authentication state without touching the network.
func PrintStatus(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	token, err := tokenio.ReadToken(cfg.TokenFile)
	if errors.Is(err, tokenio.ErrNoToken) {
		console.Info("Not authenticated")
		return nil
	}
	if err != nil {
		return err
	}

	console.Info("Token file:    %s", cfg.TokenFile)
	console.Info("Access token:  %s", maskToken(token.AccessToken))
	console.Info("Token type:    %s", token.TokenType)
	console.Info("Expires in:    %d seconds from issuance", token.ExpiresIn)
	console.Info("Refresh token: %s", lo.Ternary(token.RefreshToken != "", "present", "absent"))
	return nil
}

// Keep just enough of the token visible to tell credentials apart.
func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
