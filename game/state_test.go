package game

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/golangdaddy/roaddodge/models/car"
	"github.com/golangdaddy/roaddodge/traffic"
)

// seqRand replays a fixed sequence of draws, wrapping around at the end.
type seqRand struct {
	values []float64
	next   int
}

func (s *seqRand) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// farLane keeps every obstacle near the right edge, clear of a car at x = 0.
func farLane() *seqRand {
	return &seqRand{values: []float64{0.99}}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

type snapshot struct {
	car       car.Car
	obstacles []traffic.Obstacle
	score     int
	gameOver  bool
}

func snap(s *State) snapshot {
	return snapshot{
		car:       s.Car(),
		obstacles: s.Obstacles(),
		score:     s.Score(),
		gameOver:  s.GameOver(),
	}
}

func assertInitial(t *testing.T, s *State) {
	t.Helper()
	c := s.Car()
	if c.X != 0 || c.Y != -0.7 {
		t.Fatalf("expected car at (0, -0.7), got (%v, %v)", c.X, c.Y)
	}
	if c.Speed != 0 || c.Rotation != 0 {
		t.Fatalf("expected speed and rotation 0, got %v / %v", c.Speed, c.Rotation)
	}
	if s.Score() != 0 {
		t.Fatalf("expected score 0, got %d", s.Score())
	}
	if s.GameOver() {
		t.Fatal("expected game in progress")
	}
	if len(s.Held()) != 0 {
		t.Fatalf("expected no held keys, got %v", s.Held())
	}
	if s.Road().Width != 1.5 {
		t.Fatalf("expected road width 1.5, got %v", s.Road().Width)
	}
	for i, o := range s.Obstacles() {
		if o.Y != 1.0+float64(i)*0.5 {
			t.Fatalf("obstacle %d: expected y %v, got %v", i, 1.0+float64(i)*0.5, o.Y)
		}
	}
}

func TestNewStartsInitialRound(t *testing.T) {
	s := New(rand.New(rand.NewSource(1)))
	assertInitial(t, s)
	if s.Phase() != Playing {
		t.Fatalf("expected phase Playing, got %v", s.Phase())
	}
}

func TestAccelerateConvergesToMaxSpeed(t *testing.T) {
	s := New(farLane())
	for i := 0; i < 100; i++ {
		s.Advance(Keys('w'))
		if s.GameOver() {
			t.Fatalf("unexpected crash at tick %d", i)
		}
	}
	if got := s.Car().Speed; got != car.MaxSpeed {
		t.Fatalf("expected speed %v, got %v", car.MaxSpeed, got)
	}
	s.Advance(Keys('W'))
	if got := s.Car().Speed; got != car.MaxSpeed {
		t.Fatalf("expected speed to stay clamped at %v, got %v", car.MaxSpeed, got)
	}
}

func TestSpeedDoesNotMoveCar(t *testing.T) {
	s := New(farLane())
	for i := 0; i < 30; i++ {
		s.Advance(Keys('w'))
	}
	c := s.Car()
	if c.X != 0 || c.Y != -0.7 {
		t.Fatalf("expected car to stay at (0, -0.7), got (%v, %v)", c.X, c.Y)
	}
}

func TestInputPhase(t *testing.T) {
	tcs := []struct {
		name      string
		held      KeySet
		wantSpeed float64
		wantX     float64
		wantRot   float64
	}{
		{"nothing", Keys(), 0, 0, 0},
		{"accelerate", Keys('w'), 0.001, 0, 0},
		{"accelerate upper case", Keys('W'), 0.001, 0, 0},
		{"brake", Keys('s'), -0.002, 0, 0},
		{"accelerate and brake", Keys('w', 'S'), -0.001, 0, 0},
		{"left", Keys('a'), 0, -0.01, 0.05},
		{"right", Keys('D'), 0, 0.01, -0.05},
		{"left and right", Keys('a', 'd'), 0, 0, 0},
		{"unknown keys", Keys('x', '1', ' '), 0, 0, 0},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			s := New(farLane())
			s.Advance(tc.held)
			c := s.Car()
			if !approx(c.Speed, tc.wantSpeed) {
				t.Fatalf("expected speed %v, got %v", tc.wantSpeed, c.Speed)
			}
			if !approx(c.X, tc.wantX) {
				t.Fatalf("expected x %v, got %v", tc.wantX, c.X)
			}
			if !approx(c.Rotation, tc.wantRot) {
				t.Fatalf("expected rotation %v, got %v", tc.wantRot, c.Rotation)
			}
		})
	}
}

func TestCoastDecaysSpeed(t *testing.T) {
	s := New(farLane())
	s.car.Speed = 0.05
	s.Advance(Keys())
	if !approx(s.Car().Speed, 0.049) {
		t.Fatalf("expected speed 0.049, got %v", s.Car().Speed)
	}
}

func TestSteerLeftPinsAtBoundary(t *testing.T) {
	s := New(farLane())
	s.car.X = s.Road().Left()
	for i := 1; i <= 20; i++ {
		s.Advance(Keys('a'))
		c := s.Car()
		if c.X != s.Road().Left() {
			t.Fatalf("tick %d: expected x pinned at %v, got %v", i, s.Road().Left(), c.X)
		}
		if !approx(c.Rotation, float64(i)*car.RotationStep) {
			t.Fatalf("tick %d: expected rotation %v, got %v", i, float64(i)*car.RotationStep, c.Rotation)
		}
	}
}

func TestCarStaysOnRoadAndSpeedInRange(t *testing.T) {
	keys := []Key{'w', 's', 'a', 'd', 'W', 'S', 'A', 'D', 'q'}
	inputs := rand.New(rand.NewSource(42))

	for round := 0; round < 5; round++ {
		s := New(rand.New(rand.NewSource(int64(round))))
		for i := 0; i < 2000; i++ {
			held := make(KeySet)
			for _, k := range keys {
				if inputs.Intn(2) == 0 {
					held.Press(k)
				}
			}
			s.Advance(held)

			c := s.Car()
			if c.X < -0.75 || c.X > 0.75 {
				t.Fatalf("round %d tick %d: x %v off road", round, i, c.X)
			}
			if c.Speed < car.MaxReverse || c.Speed > car.MaxSpeed {
				t.Fatalf("round %d tick %d: speed %v out of range", round, i, c.Speed)
			}
		}
	}
}

func TestScoreCountsRespawns(t *testing.T) {
	s := New(rand.New(rand.NewSource(5)))
	r := s.Road()

	for i := 0; i < 3000 && !s.GameOver(); i++ {
		before := s.Obstacles()
		prevScore := s.Score()

		var respawning []int
		for j, o := range before {
			if o.Y-o.Speed < -1.0 {
				respawning = append(respawning, j)
			}
		}

		s.Advance(Keys())

		if got, want := s.Score()-prevScore, 10*len(respawning); got != want {
			t.Fatalf("tick %d: score grew by %d, want %d", i, got, want)
		}
		after := s.Obstacles()
		for _, j := range respawning {
			o := after[j]
			if o.Y != 1.0 {
				t.Fatalf("tick %d obstacle %d: expected y 1.0 after respawn, got %v", i, j, o.Y)
			}
			if o.X < r.Left() || o.X >= r.Right() {
				t.Fatalf("tick %d obstacle %d: x %v off road", i, j, o.X)
			}
			if o.Speed < 0.01 || o.Speed >= 0.02 {
				t.Fatalf("tick %d obstacle %d: speed %v out of range", i, j, o.Speed)
			}
		}
	}
}

func TestObstacleBelowRoadRespawns(t *testing.T) {
	s := New(farLane())
	s.obstacles.Set(0, traffic.Obstacle{X: 0.5, Y: -1.0 - 1e-6, Speed: 0.01})

	s.Advance(Keys())

	if got := s.Obstacles()[0].Y; got != 1.0 {
		t.Fatalf("expected respawn at y 1.0, got %v", got)
	}
	if s.Score() != 10 {
		t.Fatalf("expected score 10, got %d", s.Score())
	}
	if s.GameOver() {
		t.Fatal("unexpected crash")
	}
}

func TestCollisionEndsRoundAndRestartResets(t *testing.T) {
	s := New(farLane())
	c := s.Car()
	s.obstacles.Set(4, traffic.Obstacle{X: c.X, Y: c.Y, Speed: 0.01})

	s.Advance(Keys())
	if !s.GameOver() {
		t.Fatal("expected game over after collision")
	}
	if s.Phase() != GameOver {
		t.Fatalf("expected phase GameOver, got %v", s.Phase())
	}

	frozen := snap(s)
	for i := 0; i < 50; i++ {
		s.Advance(Keys('w', 'a', 's'))
		s.Tick()
	}
	if got := snap(s); !reflect.DeepEqual(got, frozen) {
		t.Fatalf("state changed while game over:\n got %+v\nwant %+v", got, frozen)
	}

	s.SetKey('r', true)
	assertInitial(t, s)
}

func TestKeysStillTrackedWhileGameOver(t *testing.T) {
	s := New(farLane())
	s.gameOver = true
	frozen := snap(s)

	s.SetKey('w', true)
	s.SetKey('R', true)
	if !s.Held().Down('w') || !s.Held().Down('R') {
		t.Fatalf("expected held keys to be recorded, got %v", s.Held())
	}
	if !s.GameOver() {
		t.Fatal("upper case R must not restart")
	}
	s.SetKey('w', false)
	if s.Held().Down('w') {
		t.Fatal("expected w released")
	}
	if got := snap(s); !reflect.DeepEqual(got, frozen) {
		t.Fatalf("state changed while game over:\n got %+v\nwant %+v", got, frozen)
	}
}

func TestRestartKeyIgnoredWhilePlaying(t *testing.T) {
	s := New(farLane())
	s.Advance(Keys('a'))
	s.SetKey('r', true)
	if s.Car().X == 0 {
		t.Fatal("r must not reset a round in progress")
	}
	if !s.Held().Down('r') {
		t.Fatal("expected r to be held")
	}
	s.SetKey('r', false)
	if s.Held().Down('r') {
		t.Fatal("expected r released")
	}
}

func TestTickUsesHeldKeys(t *testing.T) {
	s := New(farLane())
	s.SetKey('d', true)
	s.Tick()
	if !approx(s.Car().X, 0.01) {
		t.Fatalf("expected x 0.01, got %v", s.Car().X)
	}
	s.SetKey('d', false)
	s.Tick()
	if !approx(s.Car().X, 0.01) {
		t.Fatalf("expected x to stay at 0.01, got %v", s.Car().X)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := New(farLane())
	obs := s.Obstacles()
	obs[0].Y = -5
	if s.Obstacles()[0].Y == -5 {
		t.Fatal("Obstacles exposed internal storage")
	}
	held := s.Held()
	held.Press('w')
	if s.Held().Down('w') {
		t.Fatal("Held exposed internal storage")
	}
}
