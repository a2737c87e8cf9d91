package search

import "fmt"

// Intro is the line shown before the first comparison.
func Intro(target, n int) string {
	return fmt.Sprintf("Starting search for %d in array of size %d", target, n)
}

// Describe explains a single comparison in plain words.
func Describe(s Step, target int) string {
	switch s.Outcome {
	case Equal:
		return fmt.Sprintf("Step %d: Found! Array[%d] = %d equals target %d", s.Comparisons, s.Mid, s.Value, target)
	case Less:
		return fmt.Sprintf("Step %d: Array[%d] = %d < %d. Searching right half.", s.Comparisons, s.Mid, s.Value, target)
	default:
		return fmt.Sprintf("Step %d: Array[%d] = %d > %d. Searching left half.", s.Comparisons, s.Mid, s.Value, target)
	}
}

// Conclusion is the closing line for a search that did not find the target.
func Conclusion(target, comparisons int) string {
	return fmt.Sprintf("Search complete: %d not found in array after %d comparisons", target, comparisons)
}

// Narrate returns the log lines for the first k steps of a search.
// The conclusion is appended once every step has been shown and the
// target was not found.
func Narrate(steps []Step, target, n, k int) []string {
	if k > len(steps) {
		k = len(steps)
	}
	lines := make([]string, 0, k+2)
	lines = append(lines, Intro(target, n))
	for _, s := range steps[:k] {
		lines = append(lines, Describe(s, target))
	}
	if k == len(steps) && !ResultOf(steps).Found {
		lines = append(lines, Conclusion(target, len(steps)))
	}
	return lines
}
