// Command square moves a red square around an SDL window with the arrow keys.
package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/plus3/square/game"
	"github.com/plus3/square/platform/sdlplatform"
	"github.com/sirupsen/logrus"
)

func init() {
	// SDL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.DebugLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	driver, err := game.NewDriver(game.DefaultConfig(), logrus.NewEntry(log))
	if err != nil {
		log.WithError(err).Error("Invalid configuration")
		return 1
	}

	platform := sdlplatform.New(log.WithField("component", "sdl"))
	if err := driver.Run(ctx, platform); err != nil {
		log.WithError(err).Error("Failed to start")
		return 1
	}

	return 0
}
