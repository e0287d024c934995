// SPDX-License-Identifier: MIT
// Package: stepgraph/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The center is the first reserved node; leaves follow in order.
//   - Emits center-leaf for each leaf ascending.

package builder

// Star returns a Constructor that builds a star with one center and n-1 leaves.
func Star(n int) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}

		center := bp.reserve(n)
		for i := 1; i < n; i++ {
			bp.connect(center, center+i, cfg)
		}

		return nil
	}
}
