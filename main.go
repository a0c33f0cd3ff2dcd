package main

import (
	"github.com/alecthomas/kong"

	"vorogen/parallel"
)

var cli struct {
	Gen GenCmd `cmd:"" default:"1" help:"Render a randomized voronoi diagram"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("vorogen"),
		kong.Description("Renders a randomized voronoi diagram into a binary pixel map."))

	pool := parallel.Start(cli.Gen.Workers)
	kctx.FatalIfErrorf(kctx.Run(pool))
}
