package game

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"
)

// ErrInvalidConfig is returned by Config.Validate and NewDriver.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tunable of the game loop. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	Title  string
	Width  int
	Height int

	// MoveSpeed is the square's speed in pixels per second.
	MoveSpeed float64
	// FPSCap is the maximum number of loop iterations per second.
	FPSCap int
	// MaxDeltaTime caps the seconds fed to a single update so a stall does
	// not teleport the square.
	MaxDeltaTime float64
	// FPSWindow is how much time is accumulated before the FPS sample is
	// recomputed.
	FPSWindow time.Duration

	Background color.RGBA
	Square     SquareConfig
}

// SquareConfig describes the square spawned at startup.
type SquareConfig struct {
	X, Y  float64
	Size  int
	Color color.RGBA
}

// DefaultConfig returns the configuration the binaries ship with.
func DefaultConfig() Config {
	return Config{
		Title:        "SDL Test",
		Width:        1280,
		Height:       720,
		MoveSpeed:    400,
		FPSCap:       144,
		MaxDeltaTime: 0.1,
		FPSWindow:    time.Second,
		Background:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Square: SquareConfig{
			X:     500,
			Y:     500,
			Size:  50,
			Color: color.RGBA{R: 255, A: 255},
		},
	}
}

// Bounds returns the display extent.
func (c Config) Bounds() image.Point {
	return image.Pt(c.Width, c.Height)
}

// FrameBudget returns the minimum wall time of one loop iteration.
func (c Config) FrameBudget() time.Duration {
	if c.FPSCap <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.FPSCap)
}

// NewSquare builds the startup square described by the config.
func (c Config) NewSquare() Square {
	return NewSquare(c.Square.X, c.Square.Y, c.Square.Size, c.Square.Color, c.Bounds())
}

// Validate reports the first setting that cannot drive a loop.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: display size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.MoveSpeed < 0:
		return fmt.Errorf("%w: move speed %v is negative", ErrInvalidConfig, c.MoveSpeed)
	case c.FPSCap <= 0:
		return fmt.Errorf("%w: fps cap %d must be positive", ErrInvalidConfig, c.FPSCap)
	case c.MaxDeltaTime < 0:
		return fmt.Errorf("%w: max delta time %v is negative", ErrInvalidConfig, c.MaxDeltaTime)
	case c.FPSWindow <= 0:
		return fmt.Errorf("%w: fps window %s must be positive", ErrInvalidConfig, c.FPSWindow)
	case c.Square.Size <= 0:
		return fmt.Errorf("%w: square size %d must be positive", ErrInvalidConfig, c.Square.Size)
	case c.Square.Size > c.Width || c.Square.Size > c.Height:
		return fmt.Errorf("%w: square size %d does not fit %dx%d", ErrInvalidConfig, c.Square.Size, c.Width, c.Height)
	}
	return nil
}
