// SPDX-License-Identifier: MIT
// Package: stepgraph/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - The hub is the first reserved node; the rim is C_{n-1} on the rest.
//   - Emission order: rim edges (as Cycle), then spokes hub-rim ascending.

package builder

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}

		hub := bp.reserve(n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			bp.connect(hub+1+i, hub+1+(i+1)%rim, cfg)
		}
		for i := 1; i < n; i++ {
			bp.connect(hub, hub+i, cfg)
		}

		return nil
	}
}
