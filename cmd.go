package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/alecthomas/kong"

	"vorogen/canvas"
	"vorogen/parallel"
	"vorogen/ppm"
	"vorogen/voronoi"
)

// Diagram geometry and styling. Worker count is the only runtime knob and
// never changes the rendered bytes, only how they are computed.
const (
	canvasWidth  = 1000
	canvasHeight = 1000
	seedCount    = 50
	markerRadius = 4
	outputPath   = "output.ppm"
)

const (
	colorBackground = canvas.Color(0xFF201717)
	colorMarker     = canvas.Black
)

type GenCmd struct {
	Workers int `help:"Number of rasterizer workers. Zero means one per CPU." default:"0"`
}

func (c *GenCmd) Validate(kctx *kong.Context) error {
	if c.Workers < 0 {
		return fmt.Errorf("invalid worker count: %d", c.Workers)
	}
	return nil
}

func (c *GenCmd) Run(pool *parallel.Pool) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	img, err := canvas.New(canvasWidth, canvasHeight)
	if err != nil {
		return err
	}
	img.Fill(colorBackground)

	seeds, err := voronoi.Generate(seedCount, canvasWidth, canvasHeight, rng)
	if err != nil {
		return err
	}

	if err := voronoi.Render(img, seeds, pool); err != nil {
		return err
	}
	voronoi.DrawMarkers(img, seeds, markerRadius, colorMarker)

	if err := ppm.Save(outputPath, img); err != nil {
		return err
	}

	slog.Info("stats", "seeds", len(seeds), "output", outputPath)
	return nil
}
