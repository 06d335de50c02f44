package ui

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// VergeGenerator paints the grass and bushes either side of the road
type VergeGenerator struct {
	Width  int
	Height int
}

// NewVergeGenerator creates a generator for a screen of the given size
func NewVergeGenerator(width, height int) *VergeGenerator {
	return &VergeGenerator{
		Width:  width,
		Height: height,
	}
}

// Generate creates the verge texture. The same seed always paints the same verge.
func (g *VergeGenerator) Generate(seed int64) *ebiten.Image {
	img := ebiten.NewImage(g.Width, g.Height)
	rng := rand.New(rand.NewSource(seed))

	// Base grass layer
	img.Fill(color.RGBA{30, 90, 30, 255})

	// Speckle the grass
	for i := 0; i < g.Width*g.Height/12; i++ {
		x := rng.Intn(g.Width)
		y := rng.Intn(g.Height)
		shade := uint8(70 + rng.Intn(50))
		img.Set(x, y, color.RGBA{30, shade, 30, 255})
	}

	// Scatter bushes in bands so the verge isn't uniform
	for y := 0; y < g.Height; y += 24 {
		density := 0.3 + 0.2*math.Sin(float64(y)*0.02)
		for x := 0; x < g.Width; x += 12 + rng.Intn(20) {
			if rng.Float64() > density {
				continue
			}
			g.drawBush(img, x+rng.Intn(10)-5, y+rng.Intn(10)-5, rng)
		}
	}

	return img
}

// drawBush draws a round bush
func (g *VergeGenerator) drawBush(img *ebiten.Image, x, y int, rng *rand.Rand) {
	radius := 3 + rng.Intn(6)
	c := color.RGBA{
		uint8(40 + rng.Intn(30)),
		uint8(100 + rng.Intn(50)),
		uint8(40 + rng.Intn(30)),
		255,
	}

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			px, py := x+dx, y+dy
			if px >= 0 && px < g.Width && py >= 0 && py < g.Height {
				img.Set(px, py, c)
			}
		}
	}
}
