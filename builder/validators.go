// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
package builder

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return builderErrorf(method, ErrInvalidProbability,
			"probability must be in [%.1f,%.1f], got %f", MinProbability, MaxProbability, p)
	}

	return nil
}
