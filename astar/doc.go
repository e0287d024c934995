// Package astar implements A* search between two nodes of a core.Graph,
// guided by a caller-supplied per-node heuristic.
//
// The frontier holds (f, g, node, parent) entries ordered lexicographically,
// f = g + heuristic[node]. A popped node is finalized once; later entries for
// it are skipped. The search stops as soon as the goal is popped, and pushes
// every non-finalized neighbor of each expanded node.
//
// A Searcher binds a graph and a validated heuristic and can run any number
// of searches:
//
//	s, err := astar.New(g, []int64{3, 2, 1, 0})
//	res, err := s.Search(0, 3)
//	// res.Path = [0 1 2 3], res.Cost = 3
//
// Optimality requires an admissible heuristic (never overestimating) and
// non-negative weights; neither is checked beyond heuristic >= 0. With an
// all-zero heuristic A* degenerates to Dijkstra.
package astar
