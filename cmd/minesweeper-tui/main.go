package main

import (
	"flag"

	"minesweep/internal/app"
	"minesweep/internal/tui"

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
	}).Info("starting terminal minesweeper")

	if err := tui.New(session).Run(); err != nil {
		logrus.WithError(err).Fatal("terminal ui failed")
	}
}
