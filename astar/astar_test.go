package astar

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testGraph is an explicit weighted digraph the test states search over.
// Successors counts expansions per node so tests can assert that no node is
// expanded twice.
type testGraph struct {
	edges      map[string][]graphEdge
	heuristics map[string]uint64
	goals      map[string]bool
	expansions map[string]int
}

type graphEdge struct {
	cost uint64
	to   string
}

func newTestGraph() *testGraph {
	return &testGraph{
		edges:      make(map[string][]graphEdge),
		heuristics: make(map[string]uint64),
		goals:      make(map[string]bool),
		expansions: make(map[string]int),
	}
}

func (g *testGraph) addEdge(from string, cost uint64, to string) {
	g.edges[from] = append(g.edges[from], graphEdge{cost: cost, to: to})
}

func (g *testGraph) state(id string) graphState {
	return graphState{g: g, id: id}
}

type graphState struct {
	g  *testGraph
	id string
}

func (s graphState) Heuristic() uint64 { return s.g.heuristics[s.id] }

func (s graphState) IsEnd() bool { return s.g.goals[s.id] }

func (s graphState) Successors() []Successor[graphState] {
	s.g.expansions[s.id]++
	edges := s.g.edges[s.id]
	successors := make([]Successor[graphState], len(edges))
	for i, edge := range edges {
		successors[i] = Successor[graphState]{Cost: edge.cost, Next: s.g.state(edge.to)}
	}
	return successors
}

// dijkstra computes true shortest-path costs from start, independently of the
// engine, as the reference for optimality checks.
func dijkstra(edges map[string][]graphEdge, start string) map[string]uint64 {
	distance := map[string]uint64{start: 0}
	done := make(map[string]bool)

	for {
		closest := ""
		var closestDistance uint64
		for id, d := range distance {
			if !done[id] && (closest == "" || d < closestDistance) {
				closest, closestDistance = id, d
			}
		}
		if closest == "" {
			return distance
		}
		done[closest] = true
		for _, edge := range edges[closest] {
			candidate := closestDistance + edge.cost
			if d, known := distance[edge.to]; !known || candidate < d {
				distance[edge.to] = candidate
			}
		}
	}
}

func reverseEdges(edges map[string][]graphEdge) map[string][]graphEdge {
	reversed := make(map[string][]graphEdge)
	for from, out := range edges {
		for _, edge := range out {
			reversed[edge.to] = append(reversed[edge.to], graphEdge{cost: edge.cost, to: from})
		}
	}
	return reversed
}

// requireValidRoute checks that route follows existing edges from start to a
// goal and that its edge costs sum to cost.
func requireValidRoute(t *testing.T, g *testGraph, route []graphState, cost uint64) {
	t.Helper()
	require.NotEmpty(t, route)
	require.True(t, route[len(route)-1].IsEnd())

	var total uint64
	for i := 0; i+1 < len(route); i++ {
		found := false
		for _, edge := range g.edges[route[i].id] {
			if edge.to == route[i+1].id {
				total += edge.cost
				found = true
				break
			}
		}
		require.Truef(t, found, "route uses missing edge %s -> %s", route[i].id, route[i+1].id)
	}
	require.Equal(t, cost, total)
}

func randomGraph(seed int64, nodes int) *testGraph {
	rng := rand.New(rand.NewSource(seed))
	g := newTestGraph()
	ids := make([]string, nodes)
	for i := range ids {
		ids[i] = string(rune('A' + i/26)) + string(rune('a'+i%26))
	}
	for _, from := range ids {
		for e := 0; e < 3; e++ {
			to := ids[rng.Intn(nodes)]
			g.addEdge(from, uint64(rng.Intn(10)), to)
		}
	}
	return g
}

func TestSolveTrivialGoal(t *testing.T) {
	g := newTestGraph()
	g.goals["start"] = true
	g.addEdge("start", 1, "other")

	result := Solve(g.state("start"))

	require.True(t, result.Found)
	assert.Equal(t, uint64(0), result.Cost)
	assert.Equal(t, []graphState{g.state("start")}, result.Route)
	assert.Empty(t, result.Visited)
	assert.Empty(t, g.expansions, "trivial goal must not expand any successors")
}

func TestSolveLineGraph(t *testing.T) {
	g := newTestGraph()
	g.addEdge("A", 1, "B")
	g.addEdge("B", 1, "C")
	g.addEdge("C", 1, "D")
	g.heuristics = map[string]uint64{"A": 3, "B": 2, "C": 1, "D": 0}
	g.goals["D"] = true

	result := Solve(g.state("A"))

	require.True(t, result.Found)
	assert.Equal(t, uint64(3), result.Cost)
	assert.Equal(t, []graphState{g.state("A"), g.state("B"), g.state("C"), g.state("D")}, result.Route)
}

func TestSolveDisconnected(t *testing.T) {
	g := newTestGraph()
	g.goals["B"] = true

	result := Solve(g.state("A"))

	require.False(t, result.Found)
	assert.Equal(t, map[graphState]bool{g.state("A"): true}, result.Visited)
}

func TestSolveMatchesDijkstra(t *testing.T) {
	g := randomGraph(1, 40)
	start, goal := "Aa", "Bn"
	g.goals[goal] = true

	reference := dijkstra(g.edges, start)
	result := Solve(g.state(start))

	referenceCost, reachable := reference[goal]
	require.Equal(t, reachable, result.Found)
	if !reachable {
		return
	}
	assert.Equal(t, referenceCost, result.Cost)
	requireValidRoute(t, g, result.Route, result.Cost)
}

func TestSolveAdmissibleHeuristicStaysOptimal(t *testing.T) {
	g := randomGraph(2, 40)
	start, goal := "Aa", "Bm"
	g.goals[goal] = true

	// The exact remaining distance is the tightest admissible heuristic.
	remaining := dijkstra(reverseEdges(g.edges), goal)
	for id, d := range remaining {
		g.heuristics[id] = d
	}

	reference := dijkstra(g.edges, start)
	result := Solve(g.state(start))

	referenceCost, reachable := reference[goal]
	require.Equal(t, reachable, result.Found)
	if !reachable {
		return
	}
	assert.Equal(t, referenceCost, result.Cost)
	requireValidRoute(t, g, result.Route, result.Cost)
}

func TestSolveNoReexpansion(t *testing.T) {
	g := newTestGraph()
	g.addEdge("S", 1, "A")
	g.addEdge("S", 1, "B")
	g.addEdge("A", 1, "C")
	g.addEdge("B", 2, "C")
	g.addEdge("C", 1, "G")
	g.goals["G"] = true

	result := Solve(g.state("S"))

	require.True(t, result.Found)
	assert.Equal(t, uint64(3), result.Cost)
	for id, count := range g.expansions {
		assert.LessOrEqualf(t, count, 1, "node %s expanded %d times", id, count)
	}
}

func TestSolveVisitedClosureOnFailure(t *testing.T) {
	g := newTestGraph()
	g.addEdge("S", 1, "A")
	g.addEdge("S", 5, "B")
	g.addEdge("A", 1, "C")
	g.addEdge("C", 1, "S") // cycle back into explored territory
	// D and G exist but are not reachable from S.
	g.addEdge("D", 1, "G")
	g.goals["G"] = true

	result := Solve(g.state("S"))
	require.False(t, result.Found)

	visited := make(map[string]bool, len(result.Visited))
	for state := range result.Visited {
		visited[state.id] = true
	}
	want := map[string]bool{"S": true, "A": true, "B": true, "C": true}
	if diff := cmp.Diff(want, visited); diff != "" {
		t.Errorf("visited set mismatch (-want +got):\n%s", diff)
	}
}

func TestSolveImprovesQueuedRoute(t *testing.T) {
	// A is first discovered at cost 10 via S, then improved to cost 2 via B
	// while still queued. The improved route must win.
	g := newTestGraph()
	g.addEdge("S", 10, "A")
	g.addEdge("S", 1, "B")
	g.addEdge("B", 1, "A")
	g.addEdge("A", 1, "G")
	g.goals["G"] = true

	result := Solve(g.state("S"))

	require.True(t, result.Found)
	assert.Equal(t, uint64(3), result.Cost)
	assert.Equal(t, []graphState{g.state("S"), g.state("B"), g.state("A"), g.state("G")}, result.Route)
}

func TestSolveZeroCostEdges(t *testing.T) {
	g := newTestGraph()
	g.addEdge("S", 0, "A")
	g.addEdge("A", 0, "B")
	g.addEdge("B", 0, "G")
	g.goals["G"] = true

	result := Solve(g.state("S"))

	require.True(t, result.Found)
	assert.Equal(t, uint64(0), result.Cost)
	assert.Len(t, result.Route, 4)
}
