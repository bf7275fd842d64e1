package cmd

import (
	"github.com/jmswll/yoauth/config"
	"github.com/jmswll/yoauth/lib/console"
	"github.com/jmswll/yoauth/lib/tokenio"
	"github.com/urfave/cli/v2"
)

// Remove the local token and profile files. Does not revoke anything
// server-side; use `revoke-grant` for that.
func LogOut(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := tokenio.Delete(cfg.TokenFile); err != nil {
		return err
	}
	if err := tokenio.Delete(cfg.InfoFile); err != nil {
		return err
	}

	console.Success("Logged out")
	return nil
}
