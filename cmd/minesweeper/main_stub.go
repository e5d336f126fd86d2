//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of minesweep requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/minesweeper` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For the terminal version, use ./cmd/minesweeper-tui instead.")
	os.Exit(2)
}
