package main

import (
	"os"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version   kong.VersionFlag `short:"v" help:"Show version"`
	Demo      DemoCmd          `cmd:"" help:"Print ten real01/bounded(32) pairs from xoshiro256**(123)"`
	Draw      DrawCmd          `cmd:"" help:"Print values drawn from an engine"`
	Histogram HistogramCmd     `cmd:"" help:"Check bounded() uniformity across parallel streams"`
	Moments   MomentsCmd       `cmd:"" help:"Summarise real01() output across parallel streams"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("xoshiro"),
		kong.Description("SplitMix64 and xoshiro256** generators"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	ctx.FatalIfErrorf(cli.Globals.setup(os.Stdout, os.Stderr))
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
