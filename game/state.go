// Package game holds the driving simulation: the car, the road, the
// obstacle pool and the rules that move them one tick at a time.
package game

import (
	"github.com/golangdaddy/roaddodge/models/car"
	"github.com/golangdaddy/roaddodge/road"
	"github.com/golangdaddy/roaddodge/traffic"
)

// Phase is the state machine position of a round
type Phase int

const (
	Playing Phase = iota
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "Playing"
	case GameOver:
		return "Game over"
	default:
		return "Unknown"
	}
}

// State is the whole simulation. It is owned by one goroutine; Advance and
// SetKey must not be called concurrently.
type State struct {
	rng       Rand
	car       car.Car
	road      road.Road
	obstacles *traffic.Pool
	score     int
	gameOver  bool
	keys      KeySet
}

// New creates a state drawing obstacle placement from rng and starts a round
func New(rng Rand) *State {
	s := &State{
		rng:  rng,
		keys: make(KeySet),
	}
	s.Initialize()
	return s
}

// Initialize resets everything to the start of a round. The random source
// keeps its sequence, so a restart does not replay the previous traffic.
func (s *State) Initialize() {
	s.car = car.New()
	s.road = road.New(road.DefaultWidth)
	s.obstacles = traffic.NewPool(s.road, s.rng)
	s.score = 0
	s.gameOver = false
	s.keys.Clear()
}

// SetKey records a key edge. Pressing 'r' after a crash starts a new round.
func (s *State) SetKey(k Key, pressed bool) {
	if !pressed {
		s.keys.Release(k)
		return
	}
	s.keys.Press(k)
	if ActionFor(k) == ActionRestart && s.gameOver {
		s.Initialize()
	}
}

// Tick advances one step using the keys currently held
func (s *State) Tick() {
	s.Advance(s.keys)
}

// Advance runs one simulation step with the given held keys. It does
// nothing once the round is over.
func (s *State) Advance(held KeySet) {
	if s.gameOver {
		return
	}
	s.steer(held)
	s.moveObstacles()
}

func (s *State) steer(held KeySet) {
	if held.Active(ActionAccelerate) {
		s.car.Accelerate()
	} else {
		s.car.Coast()
	}

	// Brake is applied on top of accelerate/coast, not instead of it
	if held.Active(ActionBrake) {
		s.car.Brake()
	}

	if held.Active(ActionSteerLeft) {
		s.car.SteerLeft(s.road.Left())
	}
	if held.Active(ActionSteerRight) {
		s.car.SteerRight(s.road.Right())
	}
}

func (s *State) moveObstacles() {
	for i := 0; i < s.obstacles.Len(); i++ {
		if s.obstacles.StepAt(i, s.road, s.rng) {
			s.score += traffic.RespawnPoints
		}
		if s.obstacles.At(i).Hits(s.car.X, s.car.Y) {
			s.gameOver = true
		}
	}
}

// Car returns the player's car
func (s *State) Car() car.Car {
	return s.car
}

// Road returns the road
func (s *State) Road() road.Road {
	return s.road
}

// Obstacles returns a copy of the obstacle pool in pool order
func (s *State) Obstacles() []traffic.Obstacle {
	return s.obstacles.All()
}

// Score returns the points earned this round
func (s *State) Score() int {
	return s.score
}

// GameOver reports whether the car has crashed
func (s *State) GameOver() bool {
	return s.gameOver
}

// Phase returns Playing or GameOver
func (s *State) Phase() Phase {
	if s.gameOver {
		return GameOver
	}
	return Playing
}

// Held returns a copy of the keys currently held
func (s *State) Held() KeySet {
	return s.keys.Clone()
}
