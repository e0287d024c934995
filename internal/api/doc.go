// Package api is the HTTP adapter: a gin router exposing POST /run-algorithm,
// GET /healthz and GET /metrics, plus a Server with graceful shutdown.
//
// Request body:
//
//	{"algorithm": "dijkstra", "num_nodes": 4,
//	 "edges": [[0,1,1],[1,2,2],[2,3,1],[0,3,10]], "start": 0, "end": 3}
//
// Response shapes:
//
//	bfs, dfs:              {"algorithm", "steps", "path"}          path = visit order
//	astar:                 {"algorithm", "steps", "path", "cost"}
//	dijkstra, bellmanford: {"algorithm", "steps", "dist", "path"}
//
// Unreachable distances and costs encode as null. A negative cycle answers
// 200 with "dist": null, "path": [] and "negative_cycle": true. Invalid input
// answers 400 {"error"}, anything else 500 {"error"}. ?diagram=mermaid adds a
// "diagram" string.
package api
