// SPDX-License-Identifier: MIT
// Package: stepgraph/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1)-i for i=1..n-1 in increasing order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}

		base := bp.reserve(n)
		for i := 1; i < n; i++ {
			bp.connect(base+i-1, base+i, cfg)
		}

		return nil
	}
}
