package cmd

import (
	"errors"
	"fmt"

	"github.com/jmswll/yoauth/config"
	"github.com/jmswll/yoauth/lib/console"
	"github.com/jmswll/yoauth/lib/tokenio"
	"github.com/jmswll/yoauth/lib/yahoo"
	"github.com/urfave/cli/v2"
)

// Ask the provider to invalidate the stored grant and drop the local token
// file on success. Provider errors are printed unchanged; Yahoo has not
// implemented this endpoint at the time of writing.
func RevokeGrant(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	token, err := tokenio.ReadToken(cfg.TokenFile)
	if err != nil {
		return err
	}
	if token.RefreshToken == "" {
		return errors.New("stored token has no refresh_token to revoke")
	}

	body, err := yahoo.New(cfg).RevokeGrant(token.RefreshToken)
	if err != nil {
		return err
	}

	if err := tokenio.Delete(cfg.TokenFile); err != nil {
		return err
	}

	if body != "" {
		fmt.Println(body)
	}
	console.Success("Grant revoked")
	return nil
}
