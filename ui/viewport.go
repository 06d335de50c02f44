package ui

import "math"

// Viewport maps world coordinates onto the screen.
// The world is the square [-1, 1] x [-1, 1] with Y pointing up. The shorter
// screen side always spans the full square and the longer side shows extra
// world, so shapes are never stretched.
type Viewport struct {
	Width  int
	Height int
}

// Scale returns how many pixels one world unit covers
func (v Viewport) Scale() float64 {
	return math.Min(float64(v.Width), float64(v.Height)) / 2
}

// ToScreen converts a world position into screen pixels
func (v Viewport) ToScreen(x, y float64) (float32, float32) {
	scale := v.Scale()
	sx := float64(v.Width)/2 + x*scale
	sy := float64(v.Height)/2 - y*scale // Screen Y grows downward
	return float32(sx), float32(sy)
}

// Length converts a world distance into pixels
func (v Viewport) Length(d float64) float32 {
	return float32(d * v.Scale())
}

// rotate turns (x, y) counter-clockwise by deg degrees around the origin
func rotate(x, y, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return x*cos - y*sin, x*sin + y*cos
}
