// Package stepgraph is an educational graph-algorithm demonstrator.
//
// Given an undirected weighted graph it runs one of five classic algorithms
// and reports both the final result and a human-readable Step Trace of every
// algorithmic event:
//
//   - bfs, dfs        visit order from a start node
//   - dijkstra        shortest paths, non-negative weights
//   - bellmanford     shortest paths, any weights, negative-cycle detection
//   - astar           start-to-goal search guided by a per-node heuristic
//
// Layout:
//
//	core/         fixed-size graph store: nodes 0..n-1, mirrored adjacency, edge list
//	trace/        Step Trace recorder shared by every engine
//	path/         predecessor-chain reconstruction and the shortest-path Tree
//	builder/      deterministic topology generators (path, grid, random, ...)
//	internal/     engine facade, HTTP and CLI adapters, scenarios, batch, config
//	cmd/stepgraph the stepgraph binary
//
// Quick start:
//
//	g, _ := core.BuildGraph(4, []core.Edge{{U: 0, V: 1, Weight: 1}, {U: 1, V: 2, Weight: 2},
//		{U: 2, V: 3, Weight: 1}, {U: 0, V: 3, Weight: 10}})
//	res, _ := dijkstra.Dijkstra(g, 0)
//	p, _ := res.PathTo(3) // [0 1 2 3], res.Dist[3] == 4
//	for _, line := range res.Steps {
//		fmt.Println(line)
//	}
//
// The algorithm packages are synchronous, allocate fresh state per call and
// never log; the adapters under internal/ own validation, logging and metrics.
package stepgraph
