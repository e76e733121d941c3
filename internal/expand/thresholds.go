package expand

// thresholds implements the exact greed table of §4.4. minWeight is
// non-increasing and maxDepth is non-decreasing as greed grows, which is
// what guarantees the monotonicity invariant: raising greed never removes a
// traversal that was previously allowed.
type thresholds struct {
	minWeight float64
	maxDepth  int
}

func thresholdsFor(greed int) thresholds {
	switch {
	case greed <= 0:
		return thresholds{minWeight: 2, maxDepth: 0} // minWeight 2 is unreachable; maxDepth 0 already excludes all edges
	case greed <= 2:
		return thresholds{minWeight: 0.95, maxDepth: 1}
	case greed <= 4:
		return thresholds{minWeight: 0.75, maxDepth: 1}
	case greed <= 6:
		return thresholds{minWeight: 0.55, maxDepth: 1}
	case greed <= 8:
		return thresholds{minWeight: 0.40, maxDepth: 2}
	default: // 9-10
		return thresholds{minWeight: 0.25, maxDepth: 3}
	}
}

// negativeBoost is added to an edge's weight, for threshold comparison
// only, when traversing out of a seed activated by the negative-prefix
// bias (§4.4).
const negativeBoost = 0.15
