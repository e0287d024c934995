package path

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/stepgraph/core"
)

const (
	// Inf marks an unreached node in a distance array.
	Inf int64 = math.MaxInt64

	// None marks "no predecessor" in a predecessor array.
	None = -1
)

// ErrCorruptPredecessorChain is returned by Walk when following predecessors
// takes more than len(prev) steps or hits an id outside the array.
var ErrCorruptPredecessorChain = errors.New("path: corrupt predecessor chain")

// Walk follows target → prev[target] → ... until None and returns the nodes
// visited, ordered from the chain's root to target.
//
// Errors:
//   - core.ErrInvalidArgument if target is outside prev.
//   - ErrCorruptPredecessorChain if the chain is longer than len(prev) or
//     leaves the array.
func Walk(prev []int, target int) ([]int, error) {
	n := len(prev)
	if target < 0 || target >= n {
		return nil, fmt.Errorf("%w: target %d outside predecessor array of length %d",
			core.ErrInvalidArgument, target, n)
	}

	rev := make([]int, 0, 8)
	for cur := target; cur != None; cur = prev[cur] {
		if cur < 0 || cur >= n {
			return nil, fmt.Errorf("%w: predecessor %d out of range", ErrCorruptPredecessorChain, cur)
		}
		if len(rev) == n {
			return nil, fmt.Errorf("%w: chain from %d exceeds %d nodes", ErrCorruptPredecessorChain, target, n)
		}
		rev = append(rev, cur)
	}

	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}

// Reconstruct returns the path start … target encoded in prev.
//
// The result is empty (non-nil) when the chain is corrupt or does not end at
// start; an unreached target therefore yields an empty path. Reconstruct never
// returns ErrCorruptPredecessorChain.
//
// Errors:
//   - core.ErrInvalidArgument if start or target is outside prev.
func Reconstruct(prev []int, start, target int) ([]int, error) {
	if start < 0 || start >= len(prev) {
		return nil, fmt.Errorf("%w: start %d outside predecessor array of length %d",
			core.ErrInvalidArgument, start, len(prev))
	}

	p, err := Walk(prev, target)
	if errors.Is(err, ErrCorruptPredecessorChain) {
		return []int{}, nil
	}
	if err != nil {
		return nil, err
	}
	if p[0] != start {
		return []int{}, nil
	}

	return p, nil
}
