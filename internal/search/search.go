// Package search implements the recorded binary search that drives the visualizer.
// Run performs a classic closed-interval binary search and returns one Step per
// comparison so the UI can replay the search after the fact.
package search

import (
	"fmt"
	"math/bits"
	"strings"
)

// Outcome is the result of comparing array[mid] against the target.
type Outcome int

const (
	// Equal means array[mid] == target; the search stops.
	Equal Outcome = iota
	// Less means array[mid] < target; the search continues in the right half.
	Less
	// Greater means array[mid] > target; the search continues in the left half.
	Greater
)

var outcomeNames = map[Outcome]string{
	Equal:   "equal",
	Less:    "less",
	Greater: "greater",
}

// String returns the lowercase outcome name.
func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// MarshalText implements encoding.TextMarshaler for trace output.
func (o Outcome) MarshalText() ([]byte, error) {
	name, ok := outcomeNames[o]
	if !ok {
		return nil, fmt.Errorf("unknown outcome %d", int(o))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for k, v := range outcomeNames {
		if v == s {
			*o = k
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", s)
}

func compare(value, target int) Outcome {
	switch {
	case value < target:
		return Less
	case value > target:
		return Greater
	default:
		return Equal
	}
}

// Step records a single comparison. Left and Right are the bounds in effect
// when the comparison was made, before the outcome narrows them.
type Step struct {
	Left        int     `json:"left" yaml:"left"`
	Right       int     `json:"right" yaml:"right"`
	Mid         int     `json:"mid" yaml:"mid"`
	Value       int     `json:"value" yaml:"value"`
	Outcome     Outcome `json:"outcome" yaml:"outcome"`
	Comparisons int     `json:"comparisons" yaml:"comparisons"`
}

// Next returns the bounds the following comparison starts from.
// For an Equal step the bounds are unchanged.
func (s Step) Next() (left, right int) {
	switch s.Outcome {
	case Less:
		return s.Mid + 1, s.Right
	case Greater:
		return s.Left, s.Mid - 1
	default:
		return s.Left, s.Right
	}
}

// Bounds returns the inclusive search range of the step.
func (s Step) Bounds() (left, right int) {
	return s.Left, s.Right
}

// Contains reports whether index i is inside the step's search range.
func (s Step) Contains(i int) bool {
	return i >= s.Left && i <= s.Right
}

// Eliminated returns the indices of an n-element array that lie outside the range.
func (s Step) Eliminated(n int) []int {
	return Outside(s.Left, s.Right, n)
}

// Outside returns the indices of [0, n) that are not in [left, right].
func Outside(left, right, n int) []int {
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if i < left || i > right {
			out = append(out, i)
		}
	}
	return out
}

// Result is the terminal state of a search.
type Result struct {
	Found bool `json:"found" yaml:"found"`
	Index int  `json:"index" yaml:"index"`
}

// NotFound is the result of a search that exhausted its range.
var NotFound = Result{Found: false, Index: -1}

func (r Result) String() string {
	if r.Found {
		return fmt.Sprintf("found at index %d", r.Index)
	}
	return "not found"
}

// Run searches a non-decreasing array for target and records every comparison.
// The caller guarantees that array is sorted. With duplicates, the index
// returned is whichever one mid lands on first.
func Run(array []int, target int) []Step {
	steps := make([]Step, 0, MaxSteps(len(array)))

	left, right := 0, len(array)-1
	for left <= right {
		mid := left + (right-left)/2
		step := Step{
			Left:        left,
			Right:       right,
			Mid:         mid,
			Value:       array[mid],
			Outcome:     compare(array[mid], target),
			Comparisons: len(steps) + 1,
		}
		steps = append(steps, step)
		if step.Outcome == Equal {
			break
		}
		left, right = step.Next()
	}
	return steps
}

// ResultOf derives the search result from a recorded step sequence.
func ResultOf(steps []Step) Result {
	if len(steps) == 0 {
		return NotFound
	}
	last := steps[len(steps)-1]
	if last.Outcome != Equal {
		return NotFound
	}
	return Result{Found: true, Index: last.Mid}
}

// MaxSteps returns ceil(log2(n+1)), the most comparisons a search over n
// elements can take.
func MaxSteps(n int) int {
	if n <= 0 {
		return 0
	}
	return bits.Len(uint(n))
}
