package astar

// State is the contract a domain type must satisfy to be searchable.
// Implementations must be comparable, so that structurally equal states are
// treated as the same search vertex, and cheap to copy: the engine keeps a
// copy of every state on every candidate route.
//
// All three methods must be pure with respect to the search. A state may
// reference shared immutable context (a map, a lookup table) without
// violating this.
type State[StateType comparable] interface {
	comparable

	// Heuristic returns a lower bound on the remaining cost from this state
	// to any goal. An overestimate forfeits the optimality of the returned
	// route but never termination.
	Heuristic() uint64

	// Successors returns every edge out of this state together with its
	// non-negative traversal cost. The result must be finite; it may be
	// computed on demand.
	Successors() []Successor[StateType]

	// IsEnd reports whether this state satisfies the goal condition.
	IsEnd() bool
}

// Successor is one outgoing edge: the cost of traversing it and the state it
// leads to.
type Successor[StateType comparable] struct {
	Cost uint64
	Next StateType
}

// Result is the outcome of a search.
//
// When Found is true, Cost is the minimum total cost of reaching a goal and
// Route is one minimum-cost sequence of states from the start to that goal,
// both inclusive, in traversal order.
//
// Visited holds every state that was expanded. When Found is false it is the
// complete closure reachable from the start, which multi-start callers use to
// prune candidate starts without re-searching. When Found is true it is only
// a diagnostic: expansion stopped at the goal.
type Result[StateType comparable] struct {
	Cost    uint64
	Route   []StateType
	Found   bool
	Visited map[StateType]bool
}

// Solve runs a best-first search from start until it pops a goal state or
// exhausts the frontier. The search is synchronous and single-threaded; one
// call owns its frontier and visited set exclusively.
//
// With an admissible heuristic and non-negative edge costs the returned route
// is cost-minimal. When several optimal routes exist, which one is returned
// is unspecified.
func Solve[StateType State[StateType]](start StateType) Result[StateType] {
	open := newFrontier[StateType]()
	open.pushOrImprove(&frontierItem[StateType]{
		State:     start,
		Cost:      0,
		Estimated: start.Heuristic(),
		Route:     []StateType{start},
	})

	visited := make(map[StateType]bool)

	for {
		current, ok := open.popMin()
		if !ok {
			return Result[StateType]{Found: false, Visited: visited}
		}

		if current.State.IsEnd() {
			return Result[StateType]{
				Cost:    current.Cost,
				Route:   current.Route,
				Found:   true,
				Visited: visited,
			}
		}

		visited[current.State] = true

		for _, successor := range current.State.Successors() {
			if visited[successor.Next] {
				continue
			}

			cost := current.Cost + successor.Cost
			route := make([]StateType, len(current.Route)+1)
			copy(route, current.Route)
			route[len(current.Route)] = successor.Next

			open.pushOrImprove(&frontierItem[StateType]{
				State:     successor.Next,
				Cost:      cost,
				Estimated: cost + successor.Next.Heuristic(),
				Route:     route,
			})
		}
	}
}
