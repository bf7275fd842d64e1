package cmd

import (
	"fmt"

	"github.com/jmswll/yoauth/config"
	"github.com/jmswll/yoauth/lib/yahoo"
	"github.com/lucsky/cuid"
	"github.com/urfave/cli/v2"
)

// Print the URL the user must visit to approve access. The code Yahoo
// redirects back with is then fed to `exchange-code`.
func AuthorizationURL(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// No PKCE here: the verifier would be lost by the time the user runs
	// `exchange-code` in a separate process. `login` covers the PKCE flow.
	authURL, err := yahoo.New(cfg).AuthorizationURL(cuid.New(), "")
	if err != nil {
		return err
	}

	fmt.Println(authURL)
	return nil
}
