package traffic

import (
	"math"

	"github.com/golangdaddy/roaddodge/road"
)

// Pool layout and obstacle lifecycle, in world units
const (
	PoolSize     = 10  // Obstacles on the road at all times
	SpawnY       = 1.0 // Top of the play area, where obstacles (re)enter
	SpawnSpacing = 0.5 // Vertical stagger between obstacles on first spawn
	DespawnY     = -1.0

	MinSpeed   = 0.01 // Slowest obstacle
	SpeedRange = 0.01 // Speeds are drawn from [MinSpeed, MinSpeed+SpeedRange)

	CollisionRadius = 0.1 // Centre distance below which the car hits an obstacle
	RespawnPoints   = 10  // Score for each obstacle that leaves the bottom of the road
)

// Obstacle represents a block scrolling down the road toward the car
type Obstacle struct {
	X     float64 // Lateral position
	Y     float64 // Vertical position, decreasing every tick
	Speed float64 // Downward speed per tick, always positive
}

// Hits reports whether a car centred at (x, y) collides with the obstacle
func (o Obstacle) Hits(x, y float64) bool {
	dx := x - o.X
	dy := y - o.Y
	return math.Sqrt(dx*dx+dy*dy) < CollisionRadius
}

// Gone reports whether the obstacle has left the bottom of the play area
func (o Obstacle) Gone() bool {
	return o.Y < DespawnY
}

// Pool is the fixed set of obstacles. They are recycled, never destroyed.
type Pool struct {
	obstacles [PoolSize]Obstacle
}

// NewPool spawns a full pool staggered above the top of the road
func NewPool(r road.Road, rng road.Rand) *Pool {
	p := &Pool{}
	for i := range p.obstacles {
		p.obstacles[i] = Obstacle{
			X:     r.RandomX(rng),
			Y:     SpawnY + float64(i)*SpawnSpacing,
			Speed: randomSpeed(rng),
		}
	}
	return p
}

// Len returns the number of obstacles in the pool
func (p *Pool) Len() int {
	return len(p.obstacles)
}

// At returns a copy of obstacle i
func (p *Pool) At(i int) Obstacle {
	return p.obstacles[i]
}

// Set replaces obstacle i
func (p *Pool) Set(i int, o Obstacle) {
	p.obstacles[i] = o
}

// All returns a copy of every obstacle in pool order
func (p *Pool) All() []Obstacle {
	out := make([]Obstacle, len(p.obstacles))
	copy(out, p.obstacles[:])
	return out
}

// StepAt moves obstacle i down by its speed and respawns it at the top once
// it has left the road. It reports whether a respawn happened.
func (p *Pool) StepAt(i int, r road.Road, rng road.Rand) bool {
	o := &p.obstacles[i]
	o.Y -= o.Speed
	if !o.Gone() {
		return false
	}
	o.Y = SpawnY
	o.X = r.RandomX(rng)
	o.Speed = randomSpeed(rng)
	return true
}

// Step advances every obstacle in pool order and returns how many respawned
func (p *Pool) Step(r road.Road, rng road.Rand) int {
	respawned := 0
	for i := range p.obstacles {
		if p.StepAt(i, r, rng) {
			respawned++
		}
	}
	return respawned
}

// Collides reports whether any obstacle hits a car centred at (x, y)
func (p *Pool) Collides(x, y float64) bool {
	for _, o := range p.obstacles {
		if o.Hits(x, y) {
			return true
		}
	}
	return false
}

func randomSpeed(rng road.Rand) float64 {
	return MinSpeed + rng.Float64()*SpeedRange
}
