package road

// DefaultWidth is the width of the road in world units
const DefaultWidth = 1.5

// Rand is the source of uniform draws in [0, 1) used to place things on the road
type Rand interface {
	Float64() float64
}

// Road represents a straight vertical road centred on X = 0
type Road struct {
	Width float64 // Total width of the road surface
}

// New creates a road of the given width
func New(width float64) Road {
	return Road{Width: width}
}

// Left returns the minimum X a car may occupy
func (r Road) Left() float64 {
	return -r.Width / 2
}

// Right returns the maximum X a car may occupy
func (r Road) Right() float64 {
	return r.Width / 2
}

// Bounds returns the left and right edges of the road
func (r Road) Bounds() (left, right float64) {
	return r.Left(), r.Right()
}

// Contains reports whether x lies on the road surface, edges included
func (r Road) Contains(x float64) bool {
	return x >= r.Left() && x <= r.Right()
}

// Clamp pins x to the road surface
func (r Road) Clamp(x float64) float64 {
	if x < r.Left() {
		return r.Left()
	}
	if x > r.Right() {
		return r.Right()
	}
	return x
}

// RandomX draws a lateral position in [Left, Right)
func (r Road) RandomX(rng Rand) float64 {
	return rng.Float64()*r.Width - r.Width/2
}
