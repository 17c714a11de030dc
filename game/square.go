package game

import (
	"image"
	"image/color"
)

// Square is the single movable entity. Its position keeps sub-pixel
// precision between frames and is always clamped so the square lies fully
// inside Bounds.
type Square struct {
	X, Y   float64
	Size   int
	Color  color.RGBA
	Bounds image.Point
}

// NewSquare creates a square, clamping the starting position into bounds.
func NewSquare(x, y float64, size int, c color.RGBA, bounds image.Point) Square {
	s := Square{
		X:      x,
		Y:      y,
		Size:   size,
		Color:  c,
		Bounds: bounds,
	}
	s.clamp()
	return s
}

// Update moves the square by (dx, dy) pixels per second over dt seconds,
// then clamps each axis independently.
func (s *Square) Update(dx, dy, dt float64) {
	s.X += dx * dt
	s.Y += dy * dt
	s.clamp()
}

// SetPosition places the square at (x, y), clamped into bounds.
func (s *Square) SetPosition(x, y float64) {
	s.X, s.Y = x, y
	s.clamp()
}

func (s *Square) clamp() {
	size := float64(s.Size)

	if s.X < 0 {
		s.X = 0
	}
	if s.Y < 0 {
		s.Y = 0
	}
	if s.X+size > float64(s.Bounds.X) {
		s.X = float64(s.Bounds.X) - size
	}
	if s.Y+size > float64(s.Bounds.Y) {
		s.Y = float64(s.Bounds.Y) - size
	}
}

// Rect returns the pixel rectangle the square covers. Coordinates are
// truncated, not rounded.
func (s *Square) Rect() image.Rectangle {
	x, y := int(s.X), int(s.Y)
	return image.Rect(x, y, x+s.Size, y+s.Size)
}

// Render fills the square's rectangle on target with its color.
func (s *Square) Render(target Surface) {
	target.SetDrawColor(s.Color)
	target.FillRect(s.Rect())
}
