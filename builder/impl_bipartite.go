// SPDX-License-Identifier: MIT
// Package: stepgraph/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Left side takes the first n1 reserved ids, right side the next n2.
//   - Emits l-r for every pair, l ascending then r ascending.

package builder

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		if err := validateMin(MethodCompleteBipartite, n1, MinPartition); err != nil {
			return err
		}
		if err := validateMin(MethodCompleteBipartite, n2, MinPartition); err != nil {
			return err
		}

		left := bp.reserve(n1 + n2)
		right := left + n1
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				bp.connect(left+i, right+j, cfg)
			}
		}

		return nil
	}
}
