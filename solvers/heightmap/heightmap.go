// Package heightmap solves the hill-climbing shortest-route puzzle: a
// rectangular grid of heights 'a' through 'z' with a start marker 'S' (height
// 'a') and an end marker 'E' (height 'z'). Each step moves to an orthogonal
// neighbour at most one level higher.
//
// The part-two search from every lowest cell exploits the engine's failure
// channel: a failed search proves its whole explored region unable to reach
// the end, so remaining candidate starts inside it are dropped without
// searching again.
package heightmap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oskarw/statesearch/astar"
	"github.com/oskarw/statesearch/grid"
)

// Map is a parsed height map.
type Map struct {
	heights     map[grid.Position]uint8
	start       grid.Position
	end         grid.Position
	topLeft     grid.Position
	bottomRight grid.Position
}

// Parse reads a height map from its textual form.
func Parse(input string) (*Map, error) {
	heights := make(map[grid.Position]uint8)
	var start, end *grid.Position
	var maxX, maxY int

	for y, row := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		for x, r := range row {
			position := grid.Position{X: x, Y: y}
			height, err := heightOf(r)
			if err != nil {
				return nil, err
			}

			switch r {
			case 'S':
				p := position
				start = &p
			case 'E':
				p := position
				end = &p
			}

			if position.X > maxX {
				maxX = position.X
			}
			if position.Y > maxY {
				maxY = position.Y
			}
			heights[position] = height
		}
	}

	if start == nil {
		return nil, errors.New("start position not specified")
	}
	if end == nil {
		return nil, errors.New("end position not specified")
	}

	return &Map{
		heights:     heights,
		start:       *start,
		end:         *end,
		topLeft:     grid.Position{X: 0, Y: 0},
		bottomRight: grid.Position{X: maxX, Y: maxY},
	}, nil
}

func heightOf(r rune) (uint8, error) {
	switch {
	case r == 'S':
		r = 'a'
	case r == 'E':
		r = 'z'
	case r < 'a' || r > 'z':
		return 0, fmt.Errorf("invalid height %q", r)
	}
	return uint8(r - 'a'), nil
}

// Start returns the position of the 'S' marker.
func (m *Map) Start() grid.Position { return m.start }

// End returns the position of the 'E' marker.
func (m *Map) End() grid.Position { return m.end }

// Bounds returns the top-left and bottom-right corners of the map.
func (m *Map) Bounds() (grid.Position, grid.Position) {
	return m.topLeft, m.bottomRight
}

// HeightAt returns the height at position; the second return is false for
// positions outside the map.
func (m *Map) HeightAt(position grid.Position) (uint8, bool) {
	height, ok := m.heights[position]
	return height, ok
}

// LowestPositions returns every cell at the lowest height, the candidate
// starts for part two.
func (m *Map) LowestPositions() []grid.Position {
	var lowest []grid.Position
	for position, height := range m.heights {
		if height == 0 {
			lowest = append(lowest, position)
		}
	}
	return lowest
}

// Route is one shortest walk to the end.
type Route struct {
	Distance  uint64
	Positions []grid.Position
}

// state is one search position on a shared immutable map.
type state struct {
	m        *Map
	position grid.Position
}

// Heuristic is the remaining climb to the end height. Every step climbs at
// most one level, so it never exceeds the remaining step count.
func (s state) Heuristic() uint64 {
	climb := int(s.m.heights[s.m.end]) - int(s.m.heights[s.position])
	if climb < 0 {
		return 0
	}
	return uint64(climb)
}

func (s state) IsEnd() bool { return s.position == s.m.end }

func (s state) Successors() []astar.Successor[state] {
	currentHeight := s.m.heights[s.position]
	successors := make([]astar.Successor[state], 0, 4)
	for _, position := range s.position.Adjacent() {
		height, onMap := s.m.heights[position]
		if !onMap || height > currentHeight+1 {
			continue
		}
		successors = append(successors, astar.Successor[state]{
			Cost: 1,
			Next: state{m: s.m, position: position},
		})
	}
	return successors
}

// shortestFrom runs a single search from start. On failure the returned set
// holds every position reachable from start, all of them proven unable to
// reach the end.
func (m *Map) shortestFrom(start grid.Position) (Route, map[grid.Position]bool, bool) {
	result := astar.Solve(state{m: m, position: start})
	if !result.Found {
		explored := make(map[grid.Position]bool, len(result.Visited))
		for s := range result.Visited {
			explored[s.position] = true
		}
		return Route{}, explored, false
	}

	positions := make([]grid.Position, len(result.Route))
	for i, s := range result.Route {
		positions[i] = s.position
	}
	return Route{Distance: result.Cost, Positions: positions}, nil, true
}

// ShortestRoute returns the shortest route to the end from any of the given
// starts. Candidate starts lying inside the region a failed search has
// already explored are pruned without searching from them.
func (m *Map) ShortestRoute(starts []grid.Position) (Route, error) {
	remaining := append([]grid.Position(nil), starts...)

	var best Route
	found := false
	for len(remaining) > 0 {
		start := remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]

		route, explored, ok := m.shortestFrom(start)
		if !ok {
			kept := remaining[:0]
			for _, candidate := range remaining {
				if !explored[candidate] {
					kept = append(kept, candidate)
				}
			}
			remaining = kept
			continue
		}

		if !found || route.Distance < best.Distance {
			best = route
			found = true
		}
	}

	if !found {
		return Route{}, errors.New("no route to the end")
	}
	return best, nil
}
