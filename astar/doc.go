// Package astar provides a generic best-first (A*) search over
// domain-defined state graphs.
//
// A domain supplies a state type implementing State: an admissible heuristic,
// a weighted successor generator, and a goal predicate. Solve runs the search
// to completion and reports either the cheapest route from the start to a
// goal, or the complete set of states it expanded before proving the goal
// unreachable. The failure payload lets callers that search from many
// candidate starts skip any start already shown to sit inside an unreachable
// component.
package astar
