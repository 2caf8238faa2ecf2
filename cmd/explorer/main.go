package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// Version will be set during build time
var Version string

func newApp() *cli.App {
	app := cli.NewApp()
	app.Version = Version
	app.Name = "explorer"
	app.Usage = "query an Esplora block explorer for wallet data"
	app.UsageText = "explorer [global options] command [command options] [arguments...]"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to a yaml, json or toml config file",
		},
		&cli.StringFlag{
			Name:  "network",
			Usage: "mainnet, testnet, signet or regtest",
		},
		&cli.StringFlag{
			Name:  "url",
			Usage: "explorer API root, overrides the network default",
		},
	}
	app.Commands = append(
		app.Commands,
		utxosCmd(),
		feeCmd(),
		broadcastCmd(),
	)
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
