package path

// Tree is a single-source shortest-path result.
//
// Dist[v] is the best known distance from Start, Inf when unreached.
// Prev[v] is v's predecessor on that path, None for Start and unreached nodes.
// Both slices have one entry per node and are owned by the caller.
type Tree struct {
	Start int
	Dist  []int64
	Prev  []int
}

// NewTree allocates a tree for n nodes with Dist[start] = 0, every other
// distance Inf and every predecessor None.
func NewTree(n, start int) Tree {
	t := Tree{
		Start: start,
		Dist:  make([]int64, n),
		Prev:  make([]int, n),
	}
	for i := range t.Dist {
		t.Dist[i] = Inf
		t.Prev[i] = None
	}
	t.Dist[start] = 0

	return t
}

// Reachable reports whether v has a finite distance.
func (t Tree) Reachable(v int) bool {
	return v >= 0 && v < len(t.Dist) && t.Dist[v] != Inf
}

// PathTo returns the path from Start to target, empty when target is unreached.
func (t Tree) PathTo(target int) ([]int, error) {
	p, err := Reconstruct(t.Prev, t.Start, target)
	if err != nil {
		return nil, err
	}
	if len(p) > 0 && !t.Reachable(target) {
		return []int{}, nil
	}

	return p, nil
}
