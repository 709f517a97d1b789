// Package basin solves the blizzard valley crossing: a walled rectangular
// valley full of blizzards that each move one cell per minute in a fixed
// direction and wrap around. The search runs over the time-expanded map, one
// state per (position, minute), and blizzard occupancy at any minute is
// computed arithmetically rather than simulated.
package basin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oskarw/statesearch/astar"
	"github.com/oskarw/statesearch/grid"
)

// Map is a parsed valley. Interior cells run from (0, 0) to
// (width-1, height-1); the entry gap sits just above the interior and the
// exit gap just below it.
type Map struct {
	// blizzards holds initial blizzard positions per direction: north and
	// south ones keyed by column, east and west ones keyed by row.
	blizzards [4][][]int
	height    int
	width     int
	start     grid.Position
	end       grid.Position
}

// Parse reads a valley from its textual form.
func Parse(input string) (*Map, error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	if len(lines) < 3 || len(lines[0]) < 3 {
		return nil, errors.New("valley too small")
	}
	height := len(lines) - 2
	width := len(lines[0]) - 2

	for y, line := range lines {
		if len(line) != width+2 {
			return nil, fmt.Errorf("ragged row %d", y)
		}
	}
	if lines[0][1] != '.' {
		return nil, errors.New("no entry gap in the top wall")
	}
	if lines[height+1][width] != '.' {
		return nil, errors.New("no exit gap in the bottom wall")
	}

	var blizzards [4][][]int
	for _, direction := range grid.Directions() {
		var outerLen, innerLen int
		outerIsX := false
		switch direction {
		case grid.North, grid.South:
			outerLen, innerLen, outerIsX = width, height, true
		case grid.East, grid.West:
			outerLen, innerLen = height, width
		}

		table := make([][]int, outerLen)
		for outer := 0; outer < outerLen; outer++ {
			for inner := 0; inner < innerLen; inner++ {
				x, y := inner, outer
				if outerIsX {
					x, y = outer, inner
				}
				if rune(lines[y+1][x+1]) == direction.Rune() {
					table[outer] = append(table[outer], inner)
				}
			}
		}
		blizzards[direction] = table
	}

	return &Map{
		blizzards: blizzards,
		height:    height,
		width:     width,
		start:     grid.Position{X: 0, Y: -1},
		end:       grid.Position{X: width - 1, Y: height},
	}, nil
}

// isFreeAt reports whether position holds no blizzard at the given minute.
// The entry and exit gaps are always free; walls and anything beyond them
// never are.
func (m *Map) isFreeAt(position grid.Position, minute int) bool {
	if position == m.start || position == m.end {
		return true
	}
	if position.X < 0 || position.Y < 0 || position.X >= m.width || position.Y >= m.height {
		return false
	}

	for _, direction := range grid.Directions() {
		var rowOrCol, check, span, offset int
		switch direction {
		case grid.North:
			rowOrCol, check, span, offset = position.X, position.Y, m.height, m.height-1
		case grid.East:
			rowOrCol, check, span, offset = position.Y, position.X, m.width, 1
		case grid.South:
			rowOrCol, check, span, offset = position.X, position.Y, m.height, 1
		case grid.West:
			rowOrCol, check, span, offset = position.Y, position.X, m.width, m.width-1
		}

		for _, blizzard := range m.blizzards[direction][rowOrCol] {
			if (blizzard+minute*offset)%span == check {
				return false
			}
		}
	}
	return true
}

// state is one cell of the time-expanded map.
type state struct {
	m        *Map
	position grid.Position
	minute   int
}

func (s state) Heuristic() uint64 {
	return s.position.ManhattanDistanceTo(s.m.end)
}

func (s state) IsEnd() bool { return s.position == s.m.end }

// Successors are waiting in place or stepping orthogonally, restricted to
// cells free of blizzards one minute from now.
func (s state) Successors() []astar.Successor[state] {
	minute := s.minute + 1
	candidates := append([]grid.Position{s.position}, s.position.Adjacent()...)

	successors := make([]astar.Successor[state], 0, len(candidates))
	for _, position := range candidates {
		if !s.m.isFreeAt(position, minute) {
			continue
		}
		successors = append(successors, astar.Successor[state]{
			Cost: 1,
			Next: state{m: s.m, position: position, minute: minute},
		})
	}
	return successors
}

// QuickestCrossing returns the fewest minutes needed to move from the entry
// gap to the exit gap.
func (m *Map) QuickestCrossing() (uint64, error) {
	result := astar.Solve(state{m: m, position: m.start})
	if !result.Found {
		return 0, errors.New("no route through the blizzards")
	}
	return result.Cost, nil
}
