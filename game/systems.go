package game

import (
	"math"
	"time"

	"github.com/plus3/square/world"
)

// InputState is the per-frame snapshot of the directional keys.
type InputState struct {
	Up, Down, Left, Right bool
}

// Sample reads the directional keys from keys.
func (in *InputState) Sample(keys KeyState) {
	in.Up = keys.Pressed(KeyUp)
	in.Down = keys.Pressed(KeyDown)
	in.Left = keys.Pressed(KeyLeft)
	in.Right = keys.Pressed(KeyRight)
}

// Heading is the direction the square is steered in. Diagonals have unit
// length.
type Heading struct {
	X, Y float64
}

// Direction builds a heading from key states. When both keys of a pair are
// held, down wins over up and right wins over left.
func Direction(up, down, left, right bool) Heading {
	var h Heading
	if up {
		h.Y = -1
	}
	if down {
		h.Y = 1
	}
	if left {
		h.X = -1
	}
	if right {
		h.X = 1
	}

	if h.X != 0 && h.Y != 0 {
		length := math.Sqrt(h.X*h.X + h.Y*h.Y)
		h.X /= length
		h.Y /= length
	}
	return h
}

// FrameStats is updated by the driver each frame.
type FrameStats struct {
	Frames uint64
	// FPS is the most recent completed sample.
	FPS   float64
	Delta float64
	// FrameTime is the work time of the last full iteration, before sleeping.
	FrameTime time.Duration
}

// SteeringSystem converts the sampled keys into a heading.
type SteeringSystem struct {
	Input   world.Singleton[InputState]
	Heading world.Singleton[Heading]
}

func (s *SteeringSystem) Execute(frame *world.UpdateFrame) {
	in := s.Input.Get()
	*s.Heading.Get() = Direction(in.Up, in.Down, in.Left, in.Right)
}

// MovementSystem advances the square along the heading at the configured speed.
type MovementSystem struct {
	Config  world.Singleton[Config]
	Heading world.Singleton[Heading]
	Square  world.Singleton[Square]
}

func (s *MovementSystem) Execute(frame *world.UpdateFrame) {
	speed := s.Config.Get().MoveSpeed
	h := s.Heading.Get()
	s.Square.Get().Update(h.X*speed, h.Y*speed, frame.DeltaTime)
}
