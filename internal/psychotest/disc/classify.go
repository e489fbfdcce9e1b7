package disc

type patternRule struct {
	id   int
	when func(d, i, s, c float64) bool
}

func matchPattern(d, i, s, c float64) int {
	for _, r := range patternRules {
		if r.when(d, i, s, c) {
			return r.id
		}
	}
	return 0
}

// Classify returns the pattern id (1..40) for a plotted point, or 0 when
// no rule applies. The rules expect at least one dimension at or below zero;
// when all four are positive the point is shifted down by its minimum and
// matched once more.
func Classify(d, i, s, c float64) int {
	return withShiftRetry(matchPattern, d, i, s, c)
}

func withShiftRetry(match func(d, i, s, c float64) int, d, i, s, c float64) int {
	if id := match(d, i, s, c); id != 0 {
		return id
	}
	low := min(d, i, s, c)
	if low <= 0 {
		return 0
	}
	return match(d-low, i-low, s-low, c-low)
}
