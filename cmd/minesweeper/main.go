//go:build ebiten

package main

import (
	"errors"
	"flag"

	"minesweep/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	session, err := app.NewSession(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("invalid board configuration")
	}

	logrus.WithFields(logrus.Fields{
		"width":  cfg.Width,
		"height": cfg.Height,
		"mines":  cfg.Mines,
		"seed":   session.Seed(),
	}).Info("starting minesweeper")

	game := app.New(session, cfg.CellSize)
	ebiten.SetWindowTitle("minesweep")
	ebiten.SetWindowSize(cfg.Width*cfg.CellSize, cfg.Height*cfg.CellSize)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logrus.WithError(err).Fatal("game loop failed")
	}
}
