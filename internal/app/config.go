package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	Mines    int
	CellSize int
	Seed     int64
}

// NewConfig returns a Config populated with the classic 10x10, 10-mine defaults.
func NewConfig() *Config {
	return &Config{Width: 10, Height: 10, Mines: 10, CellSize: 40}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.IntVar(&c.Mines, "mines", c.Mines, "number of mines")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "mine placement seed (0 = time-based)")
}
