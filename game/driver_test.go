package game_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/plus3/square/game"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDriver(t *testing.T, cfg game.Config) (*game.Driver, *test.Hook) {
	t.Helper()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	logger.SetOutput(io.Discard)

	d, err := game.NewDriver(cfg, logrus.NewEntry(logger))
	require.NoError(t, err)
	return d, hook
}

func TestDriverInitFailures(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(p *fakePlatform)
		wantErr   error
		wantCalls []string
	}{
		{
			name:      "global init",
			setup:     func(p *fakePlatform) { p.initErr = errBoom },
			wantErr:   game.ErrPlatformInit,
			wantCalls: []string{"init"},
		},
		{
			name:      "window",
			setup:     func(p *fakePlatform) { p.windowErr = errBoom },
			wantErr:   game.ErrWindowCreate,
			wantCalls: []string{"init", "window", "quit"},
		},
		{
			name:      "renderer",
			setup:     func(p *fakePlatform) { p.rendererErr = errBoom },
			wantErr:   game.ErrRendererCreate,
			wantCalls: []string{"init", "window", "renderer", "window.destroy", "quit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newTestDriver(t, game.DefaultConfig())
			p := newFakePlatform()
			tt.setup(p)

			err := d.Run(context.Background(), p)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, errBoom)
			assert.Contains(t, err.Error(), "boom")
			assert.Equal(t, tt.wantCalls, p.calls)
			assert.Equal(t, game.StateShuttingDown, d.State())
			assert.Zero(t, p.presented())
		})
	}
}

func TestDriverRunUntilQuit(t *testing.T) {
	d, hook := newTestDriver(t, game.DefaultConfig())
	assert.Equal(t, game.StateInitializing, d.State())

	p := newFakePlatform()
	p.events[0] = []game.Event{game.EventOther, game.EventOther}
	p.quitAt(2)

	require.NoError(t, d.Run(context.Background(), p))

	assert.Equal(t, 3, p.presented(), "the iteration that sees quit still completes")
	assert.Equal(t, []string{
		"init", "window", "renderer",
		"renderer.destroy", "window.destroy", "quit",
	}, p.calls)
	assert.Equal(t, "SDL Test", p.title)
	assert.Equal(t, display, p.size)
	assert.Equal(t, game.StateShuttingDown, d.State())
	assert.Equal(t, uint64(3), d.Stats().Frames)

	var messages []string
	for _, entry := range hook.AllEntries() {
		messages = append(messages, entry.Message)
	}
	assert.Equal(t, []string{"window opened", "running", "shutting down"}, messages)
}

func TestDriverRunDrawsEachFrame(t *testing.T) {
	d, _ := newTestDriver(t, game.DefaultConfig())
	p := newFakePlatform()
	p.quitAt(0)

	require.NoError(t, d.Run(context.Background(), p))

	assert.Equal(t, []string{
		"color 255,255,255,255",
		"clear",
		"color 255,0,0,255",
		"fill (500,500)-(550,550)",
	}, p.renderer.ops)
}

func TestDriverRunStopsOnContext(t *testing.T) {
	d, _ := newTestDriver(t, game.DefaultConfig())
	p := newFakePlatform()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, d.Run(ctx, p))
	assert.Equal(t, 1, p.presented())
	assert.Equal(t, game.StateShuttingDown, d.State())
}

func TestDriverFrameCap(t *testing.T) {
	budget := game.DefaultConfig().FrameBudget()

	t.Run("sleeps the remaining budget", func(t *testing.T) {
		d, _ := newTestDriver(t, game.DefaultConfig())
		p := newFakePlatform()
		p.work = 2 * time.Millisecond
		p.quitAt(3)

		require.NoError(t, d.Run(context.Background(), p))

		require.Len(t, p.sleeps, 4)
		for _, s := range p.sleeps {
			assert.Equal(t, budget-2*time.Millisecond, s)
		}
		assert.Equal(t, 2*time.Millisecond, d.Stats().FrameTime)
	})

	t.Run("no sleep when over budget", func(t *testing.T) {
		d, _ := newTestDriver(t, game.DefaultConfig())
		p := newFakePlatform()
		p.work = 10 * time.Millisecond
		p.quitAt(3)

		require.NoError(t, d.Run(context.Background(), p))

		assert.Empty(t, p.sleeps)
		assert.Equal(t, 40*time.Millisecond, p.ticks)
	})
}

func TestDriverRunMovesSquare(t *testing.T) {
	d, _ := newTestDriver(t, game.DefaultConfig())
	p := newFakePlatform()
	p.Press(game.KeyRight)

	// The first iteration has no elapsed time; the next 144 each cover one
	// frame budget.
	p.quitAt(144)

	require.NoError(t, d.Run(context.Background(), p))

	budget := game.DefaultConfig().FrameBudget().Seconds()
	sq := d.Square()
	assert.InDelta(t, 500+400*144*budget, sq.X, 1e-6)
	assert.InDelta(t, 900, sq.X, 1e-3)
	assert.Equal(t, 500.0, sq.Y)
}

func TestDriverUpdate(t *testing.T) {
	t.Run("stall is clamped", func(t *testing.T) {
		d, _ := newTestDriver(t, game.DefaultConfig())
		d.Start(0)

		d.Update(5*time.Second, game.NewKeys(game.KeyRight))

		assert.Equal(t, 0.1, d.Stats().Delta)
		assert.InDelta(t, 540.0, d.Square().X, 1e-9)
	})

	t.Run("diagonal speed", func(t *testing.T) {
		cfg := game.DefaultConfig()
		cfg.MaxDeltaTime = 1
		d, _ := newTestDriver(t, cfg)
		d.Start(0)

		d.Update(time.Second, game.NewKeys(game.KeyUp, game.KeyLeft))

		sq := d.Square()
		assert.InDelta(t, 500-282.8427, sq.X, 1e-3)
		assert.InDelta(t, 500-282.8427, sq.Y, 1e-3)
	})

	t.Run("no keys no movement", func(t *testing.T) {
		d, _ := newTestDriver(t, game.DefaultConfig())
		d.Start(0)

		for i := 1; i <= 10; i++ {
			d.Update(time.Duration(i)*time.Millisecond, game.NewKeys())
		}

		assert.Equal(t, 500.0, d.Square().X)
		assert.Equal(t, 500.0, d.Square().Y)
	})

	t.Run("alternate bounds", func(t *testing.T) {
		cfg := game.DefaultConfig()
		cfg.Width, cfg.Height = 640, 480
		cfg.Square.X, cfg.Square.Y = 600, 420
		d, _ := newTestDriver(t, cfg)
		d.Start(0)

		d.Update(100*time.Millisecond, game.NewKeys(game.KeyDown, game.KeyRight))

		assert.Equal(t, 590.0, d.Square().X, "start is clamped and stays clamped")
		assert.Equal(t, 430.0, d.Square().Y)
	})
}

func TestDriverEndFrameSamplesFPS(t *testing.T) {
	d, hook := newTestDriver(t, game.DefaultConfig())
	d.Start(0)
	hook.Reset()

	budget := game.DefaultConfig().FrameBudget()
	for i := 1; i <= 145; i++ {
		d.EndFrame(time.Duration(i) * budget)
	}

	stats := d.Stats()
	assert.Equal(t, uint64(145), stats.Frames)
	assert.InDelta(t, 144.0, stats.FPS, 0.01)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, 145, entry.Data["frames"])
}

func TestDriverLifecycle(t *testing.T) {
	d, _ := newTestDriver(t, game.DefaultConfig())

	d.Stop()
	assert.Equal(t, game.StateShuttingDown, d.State())

	d.Start(0)
	assert.Equal(t, game.StateShuttingDown, d.State(), "shutting down is terminal")
}

func TestDriverLogsDestroyFailures(t *testing.T) {
	d, hook := newTestDriver(t, game.DefaultConfig())
	p := newFakePlatform()
	p.destroyErr = errors.New("busy")
	p.quitAt(0)

	require.NoError(t, d.Run(context.Background(), p))

	var warnings int
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warnings++
		}
	}
	assert.Equal(t, 2, warnings)
}

func BenchmarkDriverFrame(b *testing.B) {
	d, err := game.NewDriver(game.DefaultConfig(), logrus.NewEntry(logrus.New()))
	require.NoError(b, err)
	d.Start(0)

	keys := game.NewKeys(game.KeyRight, game.KeyDown)
	surface := &recordingSurface{}
	budget := game.DefaultConfig().FrameBudget()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		now := time.Duration(i+1) * budget
		d.Update(now, keys)
		surface.ops = surface.ops[:0]
		d.Draw(surface)
		d.EndFrame(now)
	}
}
