// Package engine is the single entry point the adapters (HTTP, CLI, batch)
// use to run an algorithm: it validates a Request, builds the core.Graph,
// dispatches to exactly one engine package and folds the result into an
// Outcome. Every run is logged and counted.
//
// All validation happens before any algorithmic work and every rejection
// wraps core.ErrInvalidArgument, so adapters can map it to a re-prompt or a
// 400 with errors.Is. A negative cycle is not an error here: it comes back
// as an Outcome with NegativeCycle set.
package engine
