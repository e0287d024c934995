// Package cli is the interactive adapter: a prompt loop that collects a graph
// and algorithm parameters, runs the engine, and prints the Step Trace and
// the final result. Invalid input re-prompts; end of input ends the session.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/stepgraph/internal/engine"
	"github.com/katalvlaran/stepgraph/internal/render"
	"github.com/katalvlaran/stepgraph/path"
	"github.com/katalvlaran/stepgraph/trace"
)

// errInputClosed ends the session quietly.
var errInputClosed = errors.New("cli: input closed")

var menu = []string{
	"1. BFS - Breadth-First Search (input: node count, edges, start node)",
	"2. DFS - Depth-First Search (input: node count, edges, start node)",
	"3. Dijkstra (input: node count, edges with weight >= 0, start node, end node)",
	"4. Bellman-Ford (input: node count, edges with any weight, start node, end node)",
	"5. A* (input: node count, edges with weight >= 0, heuristic, start node, end node)",
}

// maxInteractiveNodes bounds the node count when the engine sets no limit.
const maxInteractiveNodes = 1 << 16

// edgeCapHint caps the initial edge slice; larger inputs grow by append.
const edgeCapHint = 1024

// Runner executes a validated request. *engine.Engine satisfies it.
type Runner interface {
	Run(req *engine.Request) (*engine.Outcome, error)
	Limits() engine.Limits
}

// Option configures a Session.
type Option func(*Session)

// WithDiagram prints a Mermaid diagram after every run.
func WithDiagram(on bool) Option {
	return func(s *Session) { s.diagram = on }
}

// Session is one interactive conversation.
type Session struct {
	in      *bufio.Scanner
	out     io.Writer
	eng     Runner
	st      styles
	diagram bool
}

// NewSession reads answers from in and writes prompts and results to out.
func NewSession(in io.Reader, out io.Writer, eng Runner, opts ...Option) *Session {
	s := &Session{
		in:  bufio.NewScanner(in),
		out: out,
		eng: eng,
		st:  newStyles(out),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run loops until the user declines another round or input ends.
// A failed run goes straight back to the menu. Only read failures are
// returned.
func (s *Session) Run() error {
	for {
		err := s.round()
		switch {
		case errors.Is(err, errInputClosed):
			s.println("")
			s.println(s.st.muted.Render("Goodbye!"))
			return nil
		case err != nil && !isReadError(err):
			s.println(s.st.err.Render("Error: " + err.Error()))
			s.println("Please try again.")
			continue
		case err != nil:
			return err
		}

		s.println("")
		again, err := s.readLine("Try another algorithm? (y/n): ")
		if errors.Is(err, errInputClosed) || (err == nil && strings.ToLower(again) != "y") {
			s.println(s.st.muted.Render("Goodbye!"))
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// readError marks scanner failures so Run can tell them from engine errors.
type readError struct{ err error }

func (e readError) Error() string { return "cli: read: " + e.err.Error() }
func (e readError) Unwrap() error { return e.err }

func isReadError(err error) bool {
	var re readError
	return errors.As(err, &re)
}

// round runs one full prompt-run-print cycle.
func (s *Session) round() error {
	s.println("")
	s.println(s.st.header.Render("Available algorithms:"))
	for _, line := range menu {
		s.println(line)
	}
	s.println(s.st.muted.Render("Nodes are numbered from 0 to n-1."))

	choice, err := s.readInt("Choose an algorithm (1-5): ", 1, 5)
	if err != nil {
		return err
	}
	alg := engine.Algorithm(choice)
	lim := s.eng.Limits()

	s.println("\nEnter the number of nodes (n > 0):")
	n, err := s.readInt("Nodes: ", 1, limitOr(lim.MaxNodes, maxInteractiveNodes))
	if err != nil {
		return err
	}
	s.println("\nEnter the number of edges (>= 0):")
	m, err := s.readInt("Edges: ", 0, limitOr(lim.MaxEdges, math.MaxInt))
	if err != nil {
		return err
	}

	if !alg.AllowsNegativeWeights() {
		s.println(s.st.muted.Render("Note: negative weights are not allowed for Dijkstra or A*."))
	}
	s.println("\nEnter each edge as: u v weight")
	s.println("  - u, v are nodes (0 <= u, v < n)")
	s.println("  - weight is an integer edge weight")
	s.println("Example: 0 1 5 (edge between node 0 and node 1 with weight 5)")
	edges, err := s.readEdges(m, n, alg.AllowsNegativeWeights())
	if err != nil {
		return err
	}
	req := &engine.Request{Algorithm: alg.String(), NodeCount: n, Edges: edges}
	if err = s.echoGraph(req); err != nil {
		return err
	}
	s.println("")
	s.println(s.st.header.Render("--- " + alg.Title() + " ---"))
	if alg.NeedsHeuristic() {
		s.println(fmt.Sprintf("Enter one non-negative heuristic value per node (%d space-separated integers):", n))
		if req.Heuristic, err = s.readHeuristic(n); err != nil {
			return err
		}
	}
	s.println("Enter the start node (0 <= start < n):")
	if req.Start, err = s.readInt("Start node: ", 0, n-1); err != nil {
		return err
	}
	if alg.NeedsEnd() {
		s.println("Enter the end node (0 <= end < n):")
		end, err := s.readInt("End node: ", 0, n-1)
		if err != nil {
			return err
		}
		req.End = &end
	}

	out, err := s.eng.Run(req)
	if err != nil {
		return err
	}
	s.printOutcome(out)

	return nil
}

func limitOr(max, fallback int) int {
	if max > 0 {
		return max
	}

	return fallback
}

func (s *Session) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Session) complain(format string, args ...any) {
	s.println(s.st.err.Render(fmt.Sprintf(format, args...)))
}

func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, s.st.prompt.Render(prompt))
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", readError{err}
		}
		return "", errInputClosed
	}

	return strings.TrimSpace(s.in.Text()), nil
}

// readInt re-prompts until it reads an integer in [min, max].
func (s *Session) readInt(prompt string, min, max int) (int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(line)
		switch {
		case err != nil:
			s.complain("Invalid input. Please enter an integer.")
		case v < min:
			s.complain("Value must be >= %d.", min)
		case v > max:
			s.complain("Value must be <= %d.", max)
		default:
			return v, nil
		}
	}
}

func (s *Session) readEdges(m, n int, allowNegative bool) ([][]int64, error) {
	edges := make([][]int64, 0, min(m, edgeCapHint))
	for i := 0; i < m; {
		line, err := s.readLine(fmt.Sprintf("Edge %d (format: u v weight): ", i+1))
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			s.complain("Please enter exactly 3 values: u v weight.")
			continue
		}
		vals, ok := parseInts(fields)
		if !ok {
			s.complain("Invalid input. Please enter integers for u, v, and weight.")
			continue
		}
		if vals[0] < 0 || vals[0] >= int64(n) || vals[1] < 0 || vals[1] >= int64(n) {
			s.complain("Nodes must be between 0 and %d.", n-1)
			continue
		}
		if vals[2] < 0 && !allowNegative {
			s.complain("Negative weights are not allowed for this algorithm.")
			continue
		}
		edges = append(edges, vals)
		i++
	}

	return edges, nil
}

func (s *Session) readHeuristic(n int) ([]int64, error) {
	for {
		line, err := s.readLine("Heuristic: ")
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		vals, ok := parseInts(fields)
		switch {
		case !ok:
			s.complain("Invalid input. Please enter integers only.")
		case len(vals) != n:
			s.complain("Expected %d heuristic values.", n)
		case anyNegative(vals):
			s.complain("Heuristic values cannot be negative.")
		default:
			return vals, nil
		}
	}
}

func parseInts(fields []string) ([]int64, bool) {
	vals := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, false
		}
		vals[i] = v
	}

	return vals, true
}

func anyNegative(vals []int64) bool {
	for _, v := range vals {
		if v < 0 {
			return true
		}
	}

	return false
}

// echoGraph prints the adjacency structure just entered.
func (s *Session) echoGraph(req *engine.Request) error {
	g, err := req.Graph()
	if err != nil {
		return err
	}
	s.println("\nThe graph you entered:")
	s.println("graph = {")
	for i, nbs := range g.AdjacencyList() {
		pairs := make([]string, len(nbs))
		for j, nb := range nbs {
			pairs[j] = fmt.Sprintf("(%d, %d)", nb.ID, nb.Weight)
		}
		s.println(fmt.Sprintf("    %d: [%s],", i, strings.Join(pairs, ", ")))
	}
	s.println("}")

	return nil
}

func (s *Session) printOutcome(out *engine.Outcome) {
	for _, line := range out.Steps {
		s.println(s.st.step.Render(line))
	}
	s.println("")

	switch {
	case out.Algorithm.Traversal():
		s.println(s.st.result.Render("Visit order: " + trace.Join(out.Order)))
	case out.NegativeCycle:
		s.println(s.st.err.Render("The graph contains a negative cycle; shortest paths are undefined."))
	case !out.Reachable() || out.Cost == path.Inf:
		s.println(s.st.result.Render("No path exists."))
	default:
		s.println(s.st.result.Render(fmt.Sprintf("Shortest distance from %d to %d: %d", out.Start, out.End, out.Cost)))
		s.println(s.st.result.Render("Shortest path: " + trace.Join(out.Path)))
	}

	if s.diagram {
		s.println("")
		s.println(s.st.muted.Render("Mermaid diagram:"))
		fmt.Fprint(s.out, render.Outcome(out))
	}
}
