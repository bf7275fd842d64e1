package cmd

import (
	"fmt"
	"strings"

	"github.com/jmswll/yoauth/config"
	"github.com/jmswll/yoauth/lib/console"
	"github.com/jmswll/yoauth/lib/tokenio"
	"github.com/jmswll/yoauth/lib/yahoo"
	"github.com/urfave/cli/v2"
)

// Fetch the user's profile with the stored access token and persist it.
func GetUserinfo(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	token, err := tokenio.ReadToken(cfg.TokenFile)
	if err != nil {
		return err
	}

	// No automatic refresh: an expired token surfaces as the provider's 401.
	body, err := yahoo.New(cfg).Userinfo(token.AccessToken)
	if err != nil {
		return err
	}

	if err := tokenio.WriteProfile(cfg.InfoFile, body); err != nil {
		return err
	}

	fmt.Println(strings.TrimSpace(string(body)))
	console.Success("Profile saved to %s", cfg.InfoFile)
	return nil
}
