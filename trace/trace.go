// Package trace records the Step Trace produced by every algorithm engine:
// an ordered list of human-readable lines, appended in chronological order.
//
// A Trace is purely observational. The optional OnStep hook sees each line as
// it is recorded (the CLI uses it for debug logging) and never influences the
// algorithm that produced the line.
//
// A Trace is owned by a single run and is not safe for concurrent use.
package trace

import "fmt"

// Trace is an append-only recorder of step lines.
type Trace struct {
	steps  []string
	onStep func(string)
}

// New returns an empty Trace. onStep may be nil.
func New(onStep func(string)) *Trace {
	return &Trace{steps: make([]string, 0, 16), onStep: onStep}
}

// Add appends one line verbatim.
func (t *Trace) Add(line string) {
	t.steps = append(t.steps, line)
	if t.onStep != nil {
		t.onStep(line)
	}
}

// Addf formats and appends one line.
func (t *Trace) Addf(format string, args ...any) {
	t.Add(fmt.Sprintf(format, args...))
}

// Len reports the number of recorded lines.
func (t *Trace) Len() int {
	return len(t.steps)
}

// Steps returns the recorded lines. The slice is handed over to the caller;
// the Trace must not be used for further recording afterwards.
func (t *Trace) Steps() []string {
	return t.steps
}

// Join renders a list of node ids as "a → b → c", the form used in summaries.
func Join(ids []int) string {
	return joinWith(ids, " → ")
}

// List renders a list of node ids as "a, b, c".
func List(ids []int) string {
	return joinWith(ids, ", ")
}

func joinWith(ids []int, sep string) string {
	if len(ids) == 0 {
		return ""
	}
	buf := make([]byte, 0, len(ids)*4)
	for i, id := range ids {
		if i > 0 {
			buf = append(buf, sep...)
		}
		buf = fmt.Appendf(buf, "%d", id)
	}

	return string(buf)
}
