package game

import "time"

// ClampDelta bounds a raw elapsed time in seconds to [0, max].
func ClampDelta(raw, max float64) float64 {
	if raw < 0 {
		return 0
	}
	if raw > max {
		return max
	}
	return raw
}

// DeltaTimer turns successive tick readings into clamped delta times.
type DeltaTimer struct {
	Max  float64
	last time.Duration
}

// Reset sets the reference tick without producing a delta.
func (t *DeltaTimer) Reset(now time.Duration) {
	t.last = now
}

// Advance returns the seconds since the previous reading, clamped to Max.
func (t *DeltaTimer) Advance(now time.Duration) float64 {
	raw := (now - t.last).Seconds()
	t.last = now
	return ClampDelta(raw, t.Max)
}

// FPSSample is one completed FPS measurement window.
type FPSSample struct {
	FPS     float64
	Frames  int
	Elapsed time.Duration
}

// FPSCounter computes frames per second over windows of at least Window.
type FPSCounter struct {
	Window time.Duration
	start  time.Duration
	frames int
}

// Reset starts a new window at now.
func (c *FPSCounter) Reset(now time.Duration) {
	c.start = now
	c.frames = 0
}

// Frame counts one rendered frame. Once the window has elapsed it returns the
// sample and starts a new window.
func (c *FPSCounter) Frame(now time.Duration) (FPSSample, bool) {
	c.frames++

	elapsed := now - c.start
	if elapsed < c.Window || elapsed <= 0 {
		return FPSSample{}, false
	}

	sample := FPSSample{
		FPS:     float64(c.frames) / elapsed.Seconds(),
		Frames:  c.frames,
		Elapsed: elapsed,
	}
	c.Reset(now)
	return sample, true
}
