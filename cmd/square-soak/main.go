// Command square-soak runs the game loop headless for a while with random
// input and reports frame timing and any frame where the square left the
// display.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/square/game"
	"github.com/plus3/square/platform/headless"
	"github.com/sirupsen/logrus"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "How long the soak should run for.")
	fpsCap := flag.Int("fps-cap", 144, "Frame cap to run the loop at.")
	speed := flag.Float64("speed", 400, "Square speed in pixels per second.")
	seed := flag.Uint64("seed", 1, "Seed for the random key presses.")
	holdFrames := flag.Int("hold", 30, "Frames a random key combination is held for.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	verbose := flag.Bool("v", false, "Log every FPS sample.")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg := game.DefaultConfig()
	cfg.FPSCap = *fpsCap
	cfg.MoveSpeed = *speed

	driver, err := game.NewDriver(cfg, logrus.NewEntry(log))
	if err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}

	report := &Report{
		Duration:       *duration,
		FPSCap:         cfg.FPSCap,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
		FrameTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	platform := headless.New(game.NewSystemClock())
	platform.Script = randomInput(rand.New(rand.NewPCG(*seed, *seed)), *holdFrames)

	bounds := image.Rect(0, 0, cfg.Width, cfg.Height)
	platform.OnFill = func(frame int, r image.Rectangle) {
		if !r.In(bounds) {
			report.Violations = append(report.Violations, Violation{Frame: frame, Rect: r})
		}
	}
	platform.OnPresent = func(frame int) {
		stats := driver.Stats()
		// FrameTime is written after Present, so this is the previous frame's.
		if frame > 0 {
			report.FrameTime.Samples = append(report.FrameTime.Samples, stats.FrameTime)
		}
		if stats.FPS > 0 {
			report.LastFPS = stats.FPS
		}
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running soak for %s at %d FPS...", *duration, cfg.FPSCap)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()
	if err := driver.Run(ctx, platform); err != nil {
		log.WithError(err).Fatal("Soak failed to start")
	}
	report.TotalTime = time.Since(start)
	report.Frames = platform.Frames()
	if report.Frames > 0 {
		report.FrameTime.Samples = append(report.FrameTime.Samples, driver.Stats().FrameTime)
	}
	report.FrameTime.Finalize()
	report.Systems = driver.Scheduler().GetStats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if len(report.Violations) > 0 {
		os.Exit(1)
	}
}

// randomInput holds a random key combination for holdFrames frames at a time.
func randomInput(rng *rand.Rand, holdFrames int) func(frame int, keys *game.Keys) {
	if holdFrames <= 0 {
		holdFrames = 1
	}
	return func(frame int, keys *game.Keys) {
		if frame%holdFrames != 0 {
			return
		}
		for _, key := range game.DirectionKeys {
			keys.Set(key, rng.IntN(2) == 1)
		}
	}
}
