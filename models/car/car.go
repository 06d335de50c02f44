package car

// Tuning values for the player car, in world units per tick
const (
	StartX = 0.0
	StartY = -0.7

	Acceleration = 0.001 // Added to speed while accelerating
	BrakeForce   = 0.002 // Removed from speed while braking
	Drag         = 0.98  // Speed multiplier while not accelerating
	MaxSpeed     = 0.05  // Forward speed cap
	MaxReverse   = -0.02 // Reverse speed cap

	SteerStep    = 0.01 // Lateral movement per tick of steering
	RotationStep = 0.05 // Degrees of body roll per tick of steering
)

// Car represents the player's car on the road
type Car struct {
	X        float64 // Lateral position
	Y        float64 // Vertical position (fixed near the bottom of the road)
	Speed    float64 // Signed speed, negative means reversing
	Rotation float64 // Body rotation in degrees, visual only
}

// New creates a car parked at the start position
func New() Car {
	return Car{
		X: StartX,
		Y: StartY,
	}
}

// Accelerate adds throttle and caps forward speed
func (c *Car) Accelerate() {
	c.Speed += Acceleration
	if c.Speed > MaxSpeed {
		c.Speed = MaxSpeed
	}
}

// Coast lets drag bleed speed off toward zero. It never reaches zero exactly.
func (c *Car) Coast() {
	c.Speed *= Drag
}

// Brake slows the car and eventually reverses it
func (c *Car) Brake() {
	c.Speed -= BrakeForce
	if c.Speed < MaxReverse {
		c.Speed = MaxReverse
	}
}

// SteerLeft moves the car left, stopping at minX
func (c *Car) SteerLeft(minX float64) {
	c.Rotation += RotationStep
	c.X -= SteerStep
	if c.X < minX {
		c.X = minX
	}
}

// SteerRight moves the car right, stopping at maxX
func (c *Car) SteerRight(maxX float64) {
	c.Rotation -= RotationStep
	c.X += SteerStep
	if c.X > maxX {
		c.X = maxX
	}
}
