package ui

import (
	"image"
	"image/color"

	"github.com/golangdaddy/roaddodge/models/car"
	"github.com/golangdaddy/roaddodge/road"
	"github.com/golangdaddy/roaddodge/traffic"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	roadColor     = color.RGBA{77, 77, 77, 255}
	markingColor  = color.RGBA{255, 255, 255, 255}
	sideLineColor = color.RGBA{255, 255, 0, 255}
	obstacleColor = color.RGBA{0, 128, 0, 255}
	carBodyColor  = color.RGBA{255, 0, 0, 255}
	windowColor   = color.RGBA{0, 0, 255, 255}
	wheelColor    = color.RGBA{0, 0, 0, 255}
)

// Shape sizes in world units
const (
	obstacleHalf = 0.05
	carHalfWidth = 0.05
	carHalfLen   = 0.1
	dashHalf     = 0.02
	dashLength   = 0.1
	dashSpacing  = 0.2
	wheelPixels  = 5.0
)

var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// fillQuad fills the quadrilateral through four screen points in order
func fillQuad(screen *ebiten.Image, pts [4][2]float32, clr color.RGBA) {
	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255
	a := float32(clr.A) / 255

	vertices := make([]ebiten.Vertex, 4)
	for i, p := range pts {
		vertices[i] = ebiten.Vertex{
			DstX:   p[0],
			DstY:   p[1],
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		}
	}
	indices := []uint16{0, 1, 2, 0, 2, 3}
	screen.DrawTriangles(vertices, indices, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

// fillWorldRect fills an axis aligned world rectangle
func fillWorldRect(screen *ebiten.Image, vp Viewport, x0, y0, x1, y1 float64, clr color.RGBA) {
	var pts [4][2]float32
	pts[0][0], pts[0][1] = vp.ToScreen(x0, y0)
	pts[1][0], pts[1][1] = vp.ToScreen(x1, y0)
	pts[2][0], pts[2][1] = vp.ToScreen(x1, y1)
	pts[3][0], pts[3][1] = vp.ToScreen(x0, y1)
	fillQuad(screen, pts, clr)
}

// fillPosedRect fills a rectangle given in a body's local frame, rotated by
// deg degrees and centred on (cx, cy)
func fillPosedRect(screen *ebiten.Image, vp Viewport, cx, cy, deg, x0, y0, x1, y1 float64, clr color.RGBA) {
	corners := [4][2]float64{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
	var pts [4][2]float32
	for i, c := range corners {
		rx, ry := rotate(c[0], c[1], deg)
		pts[i][0], pts[i][1] = vp.ToScreen(cx+rx, cy+ry)
	}
	fillQuad(screen, pts, clr)
}

// DrawRoad renders the road surface, the dashed centre line and the yellow edges
func DrawRoad(screen *ebiten.Image, vp Viewport, r road.Road) {
	left, right := r.Bounds()

	// Road surface
	fillWorldRect(screen, vp, left, -1, right, 1, roadColor)

	// Dashed centre line
	for y := -1.0; y < 1.0; y += dashSpacing {
		fillWorldRect(screen, vp, -dashHalf, y, dashHalf, y+dashLength, markingColor)
	}

	// Side lines
	for _, x := range []float64{left, right} {
		x0, y0 := vp.ToScreen(x, -1)
		x1, y1 := vp.ToScreen(x, 1)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, sideLineColor, false)
	}
}

// DrawObstacles renders every obstacle as a green square
func DrawObstacles(screen *ebiten.Image, vp Viewport, obstacles []traffic.Obstacle) {
	for _, o := range obstacles {
		fillWorldRect(screen, vp, o.X-obstacleHalf, o.Y-obstacleHalf, o.X+obstacleHalf, o.Y+obstacleHalf, obstacleColor)
	}
}

// DrawCar renders a top-down view of the player's car, rotated by its body roll
func DrawCar(screen *ebiten.Image, vp Viewport, c car.Car) {
	// Body
	fillPosedRect(screen, vp, c.X, c.Y, c.Rotation, -carHalfWidth, -carHalfLen, carHalfWidth, carHalfLen, carBodyColor)

	// Windows
	fillPosedRect(screen, vp, c.X, c.Y, c.Rotation, -0.04, -0.02, 0.04, 0.05, windowColor)

	// Wheels are fixed-size dots regardless of zoom
	wheels := [4][2]float64{
		{-carHalfWidth, -0.07}, // Back-left
		{carHalfWidth, -0.07},  // Back-right
		{-carHalfWidth, 0.07},  // Front-left
		{carHalfWidth, 0.07},   // Front-right
	}
	for _, w := range wheels {
		rx, ry := rotate(w[0], w[1], c.Rotation)
		sx, sy := vp.ToScreen(c.X+rx, c.Y+ry)
		vector.DrawFilledRect(screen, sx-wheelPixels/2, sy-wheelPixels/2, wheelPixels, wheelPixels, wheelColor, false)
	}
}
