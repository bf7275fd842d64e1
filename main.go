package main

import (
	"log"
	"os"

	"github.com/jmswll/yoauth/cmd"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "yoauth",
		Usage:   "Yahoo Mail OAuth 2.0 client",
		Version: "0.1.0",
		Commands: []*cli.Command{
			{
				Name:   "authorization-url",
				Usage:  "Print the authorization URL to open in a browser",
				Action: cmd.AuthorizationURL,
			},
			{
				Name:      "exchange-code",
				Usage:     "Exchange an authorization code for tokens",
				ArgsUsage: "<code>",
				Action:    cmd.ExchangeCode,
			},
			{
				Name:   "get-userinfo",
				Usage:  "Fetch user profile info with the stored access token",
				Action: cmd.GetUserinfo,
			},
			{
				Name:   "revoke-grant",
				Usage:  "Ask the provider to invalidate the stored grant",
				Action: cmd.RevokeGrant,
			},
			{
				Name:   "refresh-token",
				Usage:  "Obtain a new access token with the stored refresh token",
				Action: cmd.RefreshToken,
			},
			{
				Name:   "login",
				Usage:  "Authorize via browser and exchange the code automatically",
				Action: cmd.LogIn,
			},
			{
				Name:   "logout",
				Usage:  "Delete the local token and profile files",
				Action: cmd.LogOut,
			},
			{
				Name:   "status",
				Usage:  "Print current authentication state",
				Action: cmd.PrintStatus,
			},
		},
	}
}
