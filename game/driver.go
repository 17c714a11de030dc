package game

import (
	"context"
	"fmt"
	"time"

	"github.com/plus3/square/world"
	"github.com/sirupsen/logrus"
)

// Driver owns the game loop: timing state, input sampling, the update
// systems and the frame cap.
//
// Run drives a Platform end to end. Frontends whose engine owns the loop call
// Start, Update, Draw, EndFrame and Stop themselves.
type Driver struct {
	cfg   Config
	log   *logrus.Entry
	state State

	world     *world.World
	scheduler *world.Scheduler
	square    *world.Singleton[Square]
	input     *world.Singleton[InputState]
	stats     *world.Singleton[FrameStats]

	timer DeltaTimer
	fps   FPSCounter
}

// NewDriver validates cfg and builds the world with the startup square and
// the steering and movement systems registered.
func NewDriver(cfg Config, log *logrus.Entry) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	w := world.New()
	world.NewSingleton[Config](w, cfg)
	world.NewSingleton[Heading](w)

	d := &Driver{
		cfg:    cfg,
		log:    log.WithField("component", "driver"),
		state:  StateInitializing,
		world:  w,
		square: world.NewSingleton[Square](w, cfg.NewSquare()),
		input:  world.NewSingleton[InputState](w),
		stats:  world.NewSingleton[FrameStats](w),
		timer:  DeltaTimer{Max: cfg.MaxDeltaTime},
		fps:    FPSCounter{Window: cfg.FPSWindow},
	}

	d.scheduler = world.NewScheduler(w)
	d.scheduler.Register(&SteeringSystem{})
	d.scheduler.Register(&MovementSystem{})

	return d, nil
}

// Run acquires the platform's window and renderer, runs frames until a quit
// event arrives or ctx is done, and releases everything it acquired in
// reverse order. Initialization failures wrap ErrPlatformInit,
// ErrWindowCreate or ErrRendererCreate.
func (d *Driver) Run(ctx context.Context, p Platform) error {
	renderer, release, err := d.acquire(p)
	defer release()
	if err != nil {
		d.Stop()
		return err
	}

	d.Start(p.Ticks())
	for d.state == StateRunning {
		d.iterate(ctx, p, renderer)
	}
	return nil
}

func (d *Driver) acquire(p Platform) (Renderer, func(), error) {
	var releases []func()
	release := func() {
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
	}

	if err := p.Init(); err != nil {
		return nil, release, fmt.Errorf("%w: %w", ErrPlatformInit, err)
	}
	releases = append(releases, p.Quit)

	window, err := p.CreateWindow(d.cfg.Title, d.cfg.Width, d.cfg.Height)
	if err != nil {
		return nil, release, fmt.Errorf("%w: %w", ErrWindowCreate, err)
	}
	releases = append(releases, func() { d.destroy("window", window.Destroy) })

	renderer, err := window.CreateRenderer()
	if err != nil {
		return nil, release, fmt.Errorf("%w: %w", ErrRendererCreate, err)
	}
	releases = append(releases, func() { d.destroy("renderer", renderer.Destroy) })

	d.log.WithFields(logrus.Fields{
		"title":  d.cfg.Title,
		"width":  d.cfg.Width,
		"height": d.cfg.Height,
	}).Info("window opened")

	return renderer, release, nil
}

func (d *Driver) destroy(what string, fn func() error) {
	if err := fn(); err != nil {
		d.log.WithError(err).Warnf("failed to destroy %s", what)
	}
}

func (d *Driver) iterate(ctx context.Context, p Platform, renderer Renderer) {
	frameStart := p.Ticks()

	quit := false
	for {
		ev, ok := p.PollEvent()
		if !ok {
			break
		}
		if ev == EventQuit {
			quit = true
		}
	}
	if ctx.Err() != nil {
		quit = true
	}

	now := p.Ticks()
	d.Update(now, p)

	d.Draw(renderer)
	renderer.Present()

	d.EndFrame(now)

	work := p.Ticks() - frameStart
	d.stats.Get().FrameTime = work
	if budget := d.cfg.FrameBudget(); work < budget {
		p.Sleep(budget - work)
	}

	if quit {
		d.Stop()
	}
}

// Start resets the timing state at now and enters StateRunning.
func (d *Driver) Start(now time.Duration) {
	if d.state != StateInitializing {
		return
	}
	d.timer.Reset(now)
	d.fps.Reset(now)
	d.state = StateRunning
	d.log.WithField("fps_cap", d.cfg.FPSCap).Info("running")
}

// Update computes the clamped delta time since the previous update, samples
// keys and runs the update systems.
func (d *Driver) Update(now time.Duration, keys KeyState) {
	dt := d.timer.Advance(now)
	d.input.Get().Sample(keys)
	d.stats.Get().Delta = dt
	d.scheduler.Once(dt)
}

// Draw clears target to the background color and renders the square.
func (d *Driver) Draw(target Surface) {
	target.SetDrawColor(d.cfg.Background)
	target.Clear()
	d.square.Get().Render(target)
}

// EndFrame counts a presented frame and refreshes the FPS sample.
func (d *Driver) EndFrame(now time.Duration) {
	stats := d.stats.Get()
	stats.Frames++

	sample, ok := d.fps.Frame(now)
	if !ok {
		return
	}
	stats.FPS = sample.FPS
	d.log.WithFields(logrus.Fields{
		"fps":    sample.FPS,
		"frames": sample.Frames,
	}).Debug("frame rate sampled")
}

// Stop enters the terminal StateShuttingDown.
func (d *Driver) Stop() {
	if d.state == StateShuttingDown {
		return
	}
	d.state = StateShuttingDown
	d.log.Info("shutting down")
}

// State returns the current lifecycle stage.
func (d *Driver) State() State {
	return d.state
}

// Config returns the configuration the driver was built with.
func (d *Driver) Config() Config {
	return d.cfg
}

// Square returns a copy of the square's current state.
func (d *Driver) Square() Square {
	return *d.square.Get()
}

// Stats returns a copy of the frame statistics.
func (d *Driver) Stats() FrameStats {
	return *d.stats.Get()
}

// World exposes the driver's resources so frontends can add their own.
func (d *Driver) World() *world.World {
	return d.world
}

// Scheduler exposes the update scheduler so frontends can register extra
// systems after the built-in ones.
func (d *Driver) Scheduler() *world.Scheduler {
	return d.scheduler
}
