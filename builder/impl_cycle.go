// SPDX-License-Identifier: MIT
// Package: stepgraph/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits i-(i+1) for i=0..n-2, then the closing edge (n-1)-0.
//
// Complexity: O(n) time, O(1) extra space.

package builder

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}

		base := bp.reserve(n)
		for i := 0; i < n; i++ {
			bp.connect(base+i, base+(i+1)%n, cfg)
		}

		return nil
	}
}
