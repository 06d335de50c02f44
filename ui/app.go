package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// App implements the ebiten.Game interface and forwards to the current screen
type App struct {
	currentScreen Screen
	width         int
	height        int
}

// NewApp creates an app showing the given screen at a fixed logical size
func NewApp(first Screen, width, height int) *App {
	return &App{
		currentScreen: first,
		width:         width,
		height:        height,
	}
}

// Update is called every tick (1/TPS seconds)
func (a *App) Update() error {
	if a.currentScreen != nil {
		return a.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (a *App) Draw(screen *ebiten.Image) {
	if a.currentScreen != nil {
		a.currentScreen.Draw(screen)
	}
}

// Layout keeps the logical screen the size of the window, so the viewport
// can preserve the road's aspect ratio itself
func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		return outsideWidth, outsideHeight
	}
	return a.width, a.height
}
