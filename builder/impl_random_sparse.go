// SPDX-License-Identifier: MIT
// Package: stepgraph/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p. No self-loops.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Determinism:
//   - Stable trial order: i asc, then j asc (j > i). A trial draws from the RNG
//     first, then the weight function draws for accepted pairs only.

package builder

// RandomSparse returns a Constructor that samples a G(n, p) graph.
func RandomSparse(n int, p float64) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		// 1) Validate parameters early.
		if err := validateMin(MethodRandomSparse, n, MinRandomSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return builderErrorf(MethodRandomSparse, ErrNeedRandSource, "p=%.3f", p)
		}

		// 2) Reserve nodes, then run trials in stable order.
		base := bp.reserve(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !keep(cfg, p) {
					continue
				}
				bp.connect(base+i, base+j, cfg)
			}
		}

		return nil
	}
}

// keep performs one Bernoulli(p) trial.
func keep(cfg builderConfig, p float64) bool {
	switch p {
	case MinProbability:
		return false
	case MaxProbability:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
