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

// Exchange an authorization code for tokens and persist them.
func ExchangeCode(c *cli.Context) error {
	// Arity check happens before config load or any network call.
	if c.Args().Len() != 1 {
		return errors.New("expected exactly one argument: the authorization code")
	}
	code := c.Args().First()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	token, err := yahoo.New(cfg).ExchangeCode(code, "")
	if err != nil {
		return err
	}

	if err := tokenio.WriteToken(cfg.TokenFile, token); err != nil {
		return err
	}

	tokenJson, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(tokenJson))
	console.Success("Token saved to %s", cfg.TokenFile)
	return nil
}
