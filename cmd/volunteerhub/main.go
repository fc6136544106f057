package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "volunteerhub",
		Usage: "Server-side rendered volunteer matching web app",
		Commands: []*cli.Command{
			serveCommand,
			seedCommand,
			remindCommand,
			dumpCommand,
			nanoidCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("application failed")
	}
}
