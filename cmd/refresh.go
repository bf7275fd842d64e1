package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmswll/yoauth/config"
	"github.com/jmswll/yoauth/lib/console"
	"github.com/jmswll/yoauth/lib/tokenio"
	"github.com/jmswll/yoauth/lib/yahoo"
	"github.com/urfave/cli/v2"
)

// Obtain a new access token with the stored refresh token and overwrite the
// token file.
func RefreshToken(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	token, err := tokenio.ReadToken(cfg.TokenFile)
	if err != nil {
		return err
	}
	if token.RefreshToken == "" {
		return errors.New("stored token has no refresh_token")
	}

	newToken, err := yahoo.New(cfg).RefreshToken(token.RefreshToken)
	if err != nil {
		return err
	}

	if err := tokenio.WriteToken(cfg.TokenFile, newToken); err != nil {
		return err
	}

	tokenJson, err := json.MarshalIndent(newToken, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(tokenJson))
	console.Success("Token refreshed")
	return nil
}
