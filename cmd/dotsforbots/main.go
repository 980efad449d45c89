package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" help:"Play a single match"`
	Simulate SimulateCmd      `cmd:"" help:"Run many matches and aggregate results"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("dotsforbots"),
		kong.Description("Dots and Boxes engine for bot-vs-bot play"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
