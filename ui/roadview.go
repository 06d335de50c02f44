package ui

import (
	"fmt"
	"image/color"
	"log"

	"github.com/golangdaddy/roaddodge/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RoadView represents the main driving view
type RoadView struct {
	state     *game.State
	keys      KeyPoller
	debug     bool
	seed      int64         // Seeds the verge texture
	verge     *ebiten.Image // Cached verge for the current window size
	wasOver   bool          // Game over flag seen on the previous tick
	rounds    int
	bestScore int
}

// NewRoadView creates the driving view for an existing state. The seed is
// only used to paint the verge.
func NewRoadView(state *game.State, seed int64, debug bool) *RoadView {
	return &RoadView{
		state:  state,
		debug:  debug,
		seed:   seed,
		rounds: 1,
	}
}

// Update forwards key edges and advances the simulation one tick
func (rv *RoadView) Update() error {
	rv.keys.Poll(rv.state)

	// A restart happens inside Poll, so the edge shows up as over -> playing
	if rv.wasOver && !rv.state.GameOver() {
		rv.rounds++
		log.Printf("Round %d started", rv.rounds)
	}

	rv.state.Tick()

	if !rv.wasOver && rv.state.GameOver() {
		score := rv.state.Score()
		if score > rv.bestScore {
			rv.bestScore = score
		}
		log.Printf("Crashed in round %d with score %d (best %d)", rv.rounds, score, rv.bestScore)
	}
	rv.wasOver = rv.state.GameOver()

	return nil
}

// Draw renders the road, the traffic, the car and the HUD
func (rv *RoadView) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	vp := Viewport{Width: width, Height: height}

	// Repaint the verge only when the window size changes
	if rv.verge == nil || rv.verge.Bounds().Dx() != width || rv.verge.Bounds().Dy() != height {
		rv.verge = NewVergeGenerator(width, height).Generate(rv.seed)
	}
	screen.DrawImage(rv.verge, nil)

	DrawRoad(screen, vp, rv.state.Road())
	DrawObstacles(screen, vp, rv.state.Obstacles())
	DrawCar(screen, vp, rv.state.Car())

	rv.drawHUD(screen, vp)
}

// drawHUD renders the score and the game over banner
func (rv *RoadView) drawHUD(screen *ebiten.Image, vp Viewport) {
	x, y := vp.ToScreen(-0.9, 0.9)
	drawTextAt(screen, fmt.Sprintf("Score: %d", rv.state.Score()), x, y, 18, color.White)

	if rv.state.GameOver() {
		x, y = vp.ToScreen(-0.5, 0)
		drawTextAt(screen, "Game Over! Press 'R' to Restart", x, y, 18, color.RGBA{255, 0, 0, 255})
	}

	if rv.debug {
		c := rv.state.Car()
		label := fmt.Sprintf("Speed: %.4f  Rotation: %.2f  %s\nTPS: %0.1f  FPS: %0.1f",
			c.Speed, c.Rotation, rv.state.Phase(), ebiten.ActualTPS(), ebiten.ActualFPS())
		ebitenutil.DebugPrintAt(screen, label, 8, screen.Bounds().Dy()-40)
	}
}
