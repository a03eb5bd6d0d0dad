package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play in the terminal casino"`
	Simulate SimulateCmd      `cmd:"" help:"Estimate a game's return to player by automated play"`
	Paytable PaytableCmd      `cmd:"" help:"Print the poker paytable and slot symbol odds"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pixelcasino"),
		kong.Description("Blackjack, video poker and slots in the terminal"),
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
