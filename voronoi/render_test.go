package voronoi

import (
	"image"
	"math/rand"
	"testing"

	"vorogen/canvas"
	"vorogen/parallel"
)

func TestSquareDistance(t *testing.T) {
	tests := []struct {
		a, b image.Point
		want int
	}{
		{image.Point{0, 0}, image.Point{0, 0}, 0},
		{image.Point{0, 0}, image.Point{3, 4}, 25},
		{image.Point{3, 4}, image.Point{0, 0}, 25},
		{image.Point{-2, 1}, image.Point{1, -3}, 25},
		{image.Point{10, 10}, image.Point{10, 11}, 1},
		{image.Point{999, 999}, image.Point{0, 0}, 1996002},
	}

	for _, tt := range tests {
		if got := SquareDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("SquareDistance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSeedColor(t *testing.T) {
	tests := []struct {
		p    image.Point
		want canvas.Color
	}{
		{image.Point{0, 0}, 0x00000000},
		{image.Point{1, 2}, 0x00010002},
		{image.Point{2, 1}, 0x00020001},
		{image.Point{7, 7}, 0x00070007},
		{image.Point{999, 999}, 0x03E703E7},
		{image.Point{0, 999}, 0x000003E7},
		{image.Point{999, 0}, 0x03E70000},
	}

	for _, tt := range tests {
		if got := SeedColor(tt.p); got != tt.want {
			t.Errorf("SeedColor(%v) = %#08x, want %#08x", tt.p, got, tt.want)
		}
	}

	// The derived color never carries a meaningful alpha byte; the two high
	// bytes are the x coordinate alone.
	if got := SeedColor(image.Point{999, 999}).A(); got != 0x03 {
		t.Errorf("A() = %#x, want 0x03", got)
	}
}

func newCanvas(t *testing.T, width, height int) *canvas.Canvas {
	t.Helper()
	c, err := canvas.New(width, height)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestRenderSingleSeed(t *testing.T) {
	c := newCanvas(t, 32, 24)
	seed := image.Point{X: 5, Y: 17}

	if err := Render(c, []image.Point{seed}, parallel.Start(1)); err != nil {
		t.Fatal(err)
	}

	want := SeedColor(seed)
	for i, px := range c.Pix() {
		if px != want {
			t.Fatalf("pixel %d = %#08x, want %#08x", i, px, want)
		}
	}
}

func TestRenderNoSeeds(t *testing.T) {
	c := newCanvas(t, 8, 8)
	if err := Render(c, nil, parallel.Start(1)); err == nil {
		t.Fatal("expected error for empty seed slice")
	}
}

func TestRenderNearestSeed(t *testing.T) {
	c := newCanvas(t, 16, 4)
	seeds := []image.Point{{2, 2}, {13, 2}}

	if err := Render(c, seeds, parallel.Start(1)); err != nil {
		t.Fatal(err)
	}

	left, _ := c.PixelAt(0, 0)
	if want := SeedColor(seeds[0]); left != want {
		t.Errorf("pixel (0, 0) = %#08x, want left cell %#08x", left, want)
	}
	right, _ := c.PixelAt(15, 3)
	if want := SeedColor(seeds[1]); right != want {
		t.Errorf("pixel (15, 3) = %#08x, want right cell %#08x", right, want)
	}

	// On the seed pixels themselves the distance is zero.
	for i, seed := range seeds {
		got, _ := c.PixelAt(seed.X, seed.Y)
		if want := SeedColor(seed); got != want {
			t.Errorf("seed %d pixel = %#08x, want %#08x", i, got, want)
		}
	}
}

// Pixels equidistant from several seeds belong to the seed with the lowest
// index, so swapping the seed order flips the ownership of the midline.
func TestRenderTieBreak(t *testing.T) {
	seeds := []image.Point{{2, 1}, {4, 1}}
	midline := image.Point{X: 3, Y: 1}

	for swap := 0; swap < 2; swap++ {
		c := newCanvas(t, 7, 3)
		if err := Render(c, seeds, parallel.Start(1)); err != nil {
			t.Fatal(err)
		}

		got, _ := c.PixelAt(midline.X, midline.Y)
		if want := SeedColor(seeds[0]); got != want {
			t.Errorf("midline pixel = %#08x, want first seed's %#08x (seeds %v)", got, want, seeds)
		}

		seeds[0], seeds[1] = seeds[1], seeds[0]
	}
}

func TestRenderWorkerCountInvariant(t *testing.T) {
	seeds, err := Generate(12, 64, 48, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}

	reference := newCanvas(t, 64, 48)
	if err := Render(reference, seeds, parallel.Start(1)); err != nil {
		t.Fatal(err)
	}

	for _, workers := range []int{2, 8, 0} {
		c := newCanvas(t, 64, 48)
		if err := Render(c, seeds, parallel.Start(workers)); err != nil {
			t.Fatal(err)
		}

		for i := range reference.Pix() {
			if c.Pix()[i] != reference.Pix()[i] {
				t.Fatalf("workers = %d: pixel %d = %#08x, want %#08x",
					workers, i, c.Pix()[i], reference.Pix()[i])
			}
		}
	}
}

// Exhaustive check against an independent nearest-seed scan.
func TestRenderMatchesReference(t *testing.T) {
	const width, height = 40, 30
	seeds, err := Generate(6, width, height, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatal(err)
	}

	c := newCanvas(t, width, height)
	if err := Render(c, seeds, parallel.Start(4)); err != nil {
		t.Fatal(err)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			best := 0
			for i, seed := range seeds {
				p := image.Point{X: x, Y: y}
				if SquareDistance(seed, p) < SquareDistance(seeds[best], p) {
					best = i
				}
			}

			got, _ := c.PixelAt(x, y)
			if want := SeedColor(seeds[best]); got != want {
				t.Fatalf("pixel (%d, %d) = %#08x, want %#08x of seed %v",
					x, y, got, want, seeds[best])
			}
		}
	}
}
