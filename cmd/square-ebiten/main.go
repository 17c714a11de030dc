// Command square-ebiten moves a red square around an ebiten window with the
// arrow keys. F3 toggles the debug panels.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	debugui_ebiten "github.com/plus3/square/debugui/ebiten"
	"github.com/plus3/square/game"
	"github.com/plus3/square/platform/ebitenplatform"
	"github.com/sirupsen/logrus"
)

var _ ebitenplatform.Overlay = (*debugui_ebiten.Overlay)(nil)

func main() {
	os.Exit(run())
}

func run() int {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.InfoLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := game.DefaultConfig()
	cfg.Title = "Square"

	driver, err := game.NewDriver(cfg, logrus.NewEntry(log))
	if err != nil {
		log.WithError(err).Error("Invalid configuration")
		return 1
	}

	overlay := debugui_ebiten.NewOverlay(driver)
	if err := ebitenplatform.Run(ctx, driver, overlay); err != nil {
		log.WithError(err).Error("Failed to run")
		return 1
	}

	return 0
}
