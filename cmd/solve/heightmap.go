package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/oskarw/statesearch/grid"
	"github.com/oskarw/statesearch/solvers/heightmap"
)

var showRoute bool

var heightmapCmd = &cobra.Command{
	Use:   "heightmap <input>",
	Short: "Fewest steps up the height map",
	Long: `heightmap finds the fewest steps from the start marker to the end marker
(part one) and from any lowest cell to the end marker (part two), climbing at
most one height level per step.`,
	Args: cobra.ExactArgs(1),
	RunE: runHeightmap,
}

func init() {
	heightmapCmd.Flags().BoolVar(&showRoute, "show-route", false, "render the part one route on the map")
	rootCmd.AddCommand(heightmapCmd)
}

func runHeightmap(cmd *cobra.Command, args []string) error {
	input, err := readInput(args[0])
	if err != nil {
		return err
	}

	m, err := heightmap.Parse(input)
	if err != nil {
		return fmt.Errorf("parse height map: %w", err)
	}
	topLeft, bottomRight := m.Bounds()
	slog.Debug("parsed height map",
		"width", bottomRight.X-topLeft.X+1,
		"height", bottomRight.Y-topLeft.Y+1)

	started := time.Now()
	partOne, err := m.ShortestRoute([]grid.Position{m.Start()})
	if err != nil {
		return fmt.Errorf("part one: %w", err)
	}
	slog.Debug("solved part one", "distance", partOne.Distance, "elapsed", time.Since(started))
	fmt.Fprintf(cmd.OutOrStdout(), "Part 1: %d\n", partOne.Distance)

	if showRoute {
		fmt.Fprint(cmd.OutOrStdout(), renderRoute(m, partOne))
	}

	started = time.Now()
	partTwo, err := m.ShortestRoute(m.LowestPositions())
	if err != nil {
		return fmt.Errorf("part two: %w", err)
	}
	slog.Debug("solved part two", "distance", partTwo.Distance, "elapsed", time.Since(started))
	fmt.Fprintf(cmd.OutOrStdout(), "Part 2: %d\n", partTwo.Distance)

	return nil
}
