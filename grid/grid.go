// Package grid holds the 2D primitives shared by the puzzle solvers:
// positions on an integer grid and the four cardinal directions. X grows
// east, Y grows south.
package grid

// Position is one cell on the grid.
type Position struct {
	X, Y int
}

// ManhattanDistanceTo returns the L1 distance between p and other.
func (p Position) ManhattanDistanceTo(other Position) uint64 {
	return absDiff(p.X, other.X) + absDiff(p.Y, other.Y)
}

// Adjacent returns the four orthogonal neighbours of p, in east, south,
// west, north order.
func (p Position) Adjacent() []Position {
	return []Position{
		{X: p.X + 1, Y: p.Y},
		{X: p.X, Y: p.Y + 1},
		{X: p.X - 1, Y: p.Y},
		{X: p.X, Y: p.Y - 1},
	}
}

// DirectionTo returns the direction of the single orthogonal step from p to
// other. The second return is false when other is not exactly one step away.
func (p Position) DirectionTo(other Position) (Direction, bool) {
	switch (Position{X: other.X - p.X, Y: other.Y - p.Y}) {
	case Position{X: 0, Y: -1}:
		return North, true
	case Position{X: 1, Y: 0}:
		return East, true
	case Position{X: 0, Y: 1}:
		return South, true
	case Position{X: -1, Y: 0}:
		return West, true
	}
	return 0, false
}

func absDiff(a, b int) uint64 {
	if a > b {
		return uint64(a - b)
	}
	return uint64(b - a)
}

// Direction is one of the four cardinal directions.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions returns all four directions in declaration order.
func Directions() [4]Direction {
	return [4]Direction{North, East, South, West}
}

// Rune returns the arrow glyph conventionally used for d in puzzle inputs
// and rendered maps.
func (d Direction) Rune() rune {
	switch d {
	case North:
		return '^'
	case East:
		return '>'
	case South:
		return 'v'
	case West:
		return '<'
	}
	return '?'
}
