// SPDX-License-Identifier: MIT
// Package: stepgraph/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood.
//   • Node (r,c) gets id base + r*cols + c (row-major).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each cell in row-major order emit Right then Bottom if present.
//
// Complexity:
//   • Time: O(rows*cols).
//   • Space: O(1) extra.

package builder

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		if err := validateMin(MethodGrid, rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, cols, MinGridDim); err != nil {
			return err
		}

		base := bp.reserve(rows * cols)
		id := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					bp.connect(id(r, c), id(r, c+1), cfg)
				}
				if r+1 < rows {
					bp.connect(id(r, c), id(r+1, c), cfg)
				}
			}
		}

		return nil
	}
}
