package rewards

// BaseStreakThreshold is the shortest streak that earns a badge.
const BaseStreakThreshold = 3

// NextStreakThreshold returns the next streak milestone above current.
func NextStreakThreshold(current int) int {
	thresholds := []int{3, 5, 10, 15}
	for _, t := range thresholds {
		if t > current {
			return t
		}
	}
	// Beyond 15, award every 5.
	return ((current / 5) + 1) * 5
}

// StreakMilestone returns the highest milestone reached by a streak of
// length n, or 0 if none.
func StreakMilestone(n int) int {
	best := 0
	for t := BaseStreakThreshold; t <= n; t = NextStreakThreshold(t) {
		best = t
	}
	return best
}
