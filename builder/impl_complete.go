// SPDX-License-Identifier: MIT
// Package: stepgraph/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). K_1 has no edges.
//   - Emits i-j for every i<j, i ascending then j ascending.
//
// Complexity: O(n²) edges.

package builder

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}

		base := bp.reserve(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				bp.connect(base+i, base+j, cfg)
			}
		}

		return nil
	}
}
