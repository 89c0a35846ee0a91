package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/catalog"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// rotationGap separates the drawings of two rotations.
const rotationGap = "   "

var piecesCmd = &cobra.Command{
	Use:   "pieces",
	Short: "Show the piece catalog",
	Long: `Prints every selectable piece of the catalog with its four rotations.

Examples:
  tetris pieces
  tetris pieces --catalog ./figures.txt`,
	Args: cobra.NoArgs,
	Run:  runPieces,
}

func runPieces(cmd *cobra.Command, args []string) {
	path := flagCatalog
	if path == "" {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			fatal("%v", err)
		}
		path = cfg.Catalog.Path
	}

	c, err := catalog.Load(path)
	if err != nil {
		fatal("%v", err)
	}

	fmt.Printf("Catalog: %s (%d pieces)\n", c.Origin(), c.PieceCount())
	fmt.Println()

	for i, p := range c.Pieces() {
		fmt.Printf("  %d. %s (%dx%d)\n", i+1, p.Name, p.Shape.Size(), p.Shape.Size())
		for _, line := range drawRotations(p.Shape) {
			fmt.Printf("     %s\n", line)
		}
		fmt.Println()
	}

	fmt.Println("Run 'tetris play' to play with this catalog.")
}

// drawRotations lays out the shape and its three clockwise rotations side by side.
func drawRotations(s tetris.Shape) []string {
	lines := make([]string, s.Size())
	shape := s
	for r := range 4 {
		for i, row := range strings.Split(shape.String(), "\n") {
			if r > 0 {
				lines[i] += rotationGap
			}
			lines[i] += row
		}
		shape = shape.Rotate()
	}
	return lines
}
