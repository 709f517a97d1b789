package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oskarw/statesearch/grid"
	"github.com/oskarw/statesearch/solvers/heightmap"
)

var (
	routeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	terrainStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// renderRoute draws the height map with the route marked by direction arrows
// over dimmed terrain.
func renderRoute(m *heightmap.Map, route heightmap.Route) string {
	arrows := make(map[grid.Position]rune, len(route.Positions))
	for i := 0; i+1 < len(route.Positions); i++ {
		if direction, ok := route.Positions[i].DirectionTo(route.Positions[i+1]); ok {
			arrows[route.Positions[i]] = direction.Rune()
		}
	}

	topLeft, bottomRight := m.Bounds()
	var b strings.Builder
	for y := topLeft.Y; y <= bottomRight.Y; y++ {
		for x := topLeft.X; x <= bottomRight.X; x++ {
			position := grid.Position{X: x, Y: y}
			if arrow, marked := arrows[position]; marked {
				b.WriteString(routeStyle.Render(string(arrow)))
				continue
			}
			if height, onMap := m.HeightAt(position); onMap {
				b.WriteString(terrainStyle.Render(string(rune('a' + height))))
				continue
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
