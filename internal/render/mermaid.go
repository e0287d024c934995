// Package render draws a graph as Mermaid flowchart text with an optional
// highlighted path and node set, ready for any Mermaid-aware viewer.
package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/internal/engine"
)

const (
	pathStroke = "stroke:#e4572e,stroke-width:3px"
	nodeStyle  = "fill:#ffd166,stroke:#e4572e,stroke-width:2px"
)

// Options controls Mermaid output.
type Options struct {
	// Title is emitted as front matter when non-empty.
	Title string

	// Path is a node sequence whose consecutive edges are highlighted.
	Path []int

	// Nodes are highlighted in addition to the nodes of Path.
	Nodes []int

	// Direction is the flowchart direction, "LR" by default.
	Direction string
}

// Mermaid renders g. Every edge becomes one link labelled with its weight,
// in insertion order, so link indexes match g.Edges().
func Mermaid(g *core.Graph, opts Options) string {
	dir := opts.Direction
	if dir == "" {
		dir = "LR"
	}

	var b strings.Builder
	if opts.Title != "" {
		fmt.Fprintf(&b, "---\ntitle: %s\n---\n", opts.Title)
	}
	fmt.Fprintf(&b, "flowchart %s\n", dir)
	for id := 0; id < g.NodeCount(); id++ {
		fmt.Fprintf(&b, "    n%d((%d))\n", id, id)
	}

	edges := g.Edges()
	for _, e := range edges {
		fmt.Fprintf(&b, "    n%d ---|%d| n%d\n", e.U, e.Weight, e.V)
	}

	if links := pathLinks(edges, opts.Path); len(links) > 0 {
		fmt.Fprintf(&b, "    linkStyle %s %s\n", joinInts(links, ","), pathStroke)
	}
	for _, id := range highlighted(g, opts) {
		fmt.Fprintf(&b, "    style n%d %s\n", id, nodeStyle)
	}

	return b.String()
}

// Outcome renders the graph of out with its result highlighted: the path for
// shortest-path runs, the visited nodes for traversals.
func Outcome(out *engine.Outcome) string {
	opts := Options{Title: out.Algorithm.Title()}
	switch {
	case out.Algorithm.Traversal():
		opts.Nodes = out.Order
	case out.NegativeCycle:
		opts.Title += " (negative cycle)"
	default:
		opts.Path = out.Path
	}

	return Mermaid(out.Graph, opts)
}

// pathLinks maps each step of p to the index of the cheapest matching edge.
// Steps without an edge are skipped.
func pathLinks(edges []core.Edge, p []int) []int {
	var links []int
	for i := 1; i < len(p); i++ {
		a, b := p[i-1], p[i]
		best := -1
		for idx, e := range edges {
			if (e.U == a && e.V == b) || (e.U == b && e.V == a) {
				if best < 0 || e.Weight < edges[best].Weight {
					best = idx
				}
			}
		}
		if best >= 0 {
			links = append(links, best)
		}
	}

	return links
}

func highlighted(g *core.Graph, opts Options) []int {
	seen := make(map[int]bool)
	for _, id := range opts.Path {
		seen[id] = true
	}
	for _, id := range opts.Nodes {
		seen[id] = true
	}
	ids := make([]int, 0, len(seen))
	for id := range seen {
		if g.HasNode(id) {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	return ids
}

func joinInts(xs []int, sep string) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, sep)
}
