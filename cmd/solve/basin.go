package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/oskarw/statesearch/solvers/basin"
)

var basinCmd = &cobra.Command{
	Use:   "basin <input>",
	Short: "Fewest minutes across the blizzard valley",
	Long: `basin finds the fewest minutes needed to cross a walled valley from the
entry gap to the exit gap while dodging wrapping blizzards.`,
	Args: cobra.ExactArgs(1),
	RunE: runBasin,
}

func init() {
	rootCmd.AddCommand(basinCmd)
}

func runBasin(cmd *cobra.Command, args []string) error {
	input, err := readInput(args[0])
	if err != nil {
		return err
	}

	m, err := basin.Parse(input)
	if err != nil {
		return fmt.Errorf("parse valley: %w", err)
	}

	started := time.Now()
	minutes, err := m.QuickestCrossing()
	if err != nil {
		return err
	}
	slog.Debug("solved part one", "minutes", minutes, "elapsed", time.Since(started))
	fmt.Fprintf(cmd.OutOrStdout(), "Part 1: %d\n", minutes)

	return nil
}
