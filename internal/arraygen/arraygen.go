// Package arraygen produces and validates the sorted arrays the visualizer
// searches. Validation lives here, ahead of the search engine, which trusts
// its input.
package arraygen

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ErrInvalidInput marks arrays, sizes or targets the visualizer refuses to search.
var ErrInvalidInput = errors.New("invalid input")

// Bounds are the configured limits for generated arrays and targets.
type Bounds struct {
	MinSize  int
	MaxSize  int
	MinValue int
	MaxValue int
}

// DefaultBounds matches the classroom scenario: 10-50 elements valued 1-100.
func DefaultBounds() Bounds {
	return Bounds{MinSize: 10, MaxSize: 50, MinValue: 1, MaxValue: 100}
}

// Span is the number of distinct values available.
func (b Bounds) Span() int {
	return b.MaxValue - b.MinValue + 1
}

// Check reports whether the bounds themselves are usable.
func (b Bounds) Check() error {
	if b.MinSize < 0 || b.MinSize > b.MaxSize {
		return fmt.Errorf("%w: size bounds [%d, %d]", ErrInvalidInput, b.MinSize, b.MaxSize)
	}
	if b.MinValue > b.MaxValue {
		return fmt.Errorf("%w: value bounds [%d, %d]", ErrInvalidInput, b.MinValue, b.MaxValue)
	}
	if b.MaxSize > b.Span() {
		return fmt.Errorf("%w: cannot draw %d distinct values from [%d, %d]", ErrInvalidInput, b.MaxSize, b.MinValue, b.MaxValue)
	}
	return nil
}

// ValidateSize checks that n is within the configured size range.
func (b Bounds) ValidateSize(n int) error {
	if n < b.MinSize || n > b.MaxSize {
		return fmt.Errorf("%w: array size %d outside [%d, %d]", ErrInvalidInput, n, b.MinSize, b.MaxSize)
	}
	return nil
}

// ValidateTarget checks that target is within the configured value range.
func (b Bounds) ValidateTarget(target int) error {
	if target < b.MinValue || target > b.MaxValue {
		return fmt.Errorf("%w: target %d outside [%d, %d]", ErrInvalidInput, target, b.MinValue, b.MaxValue)
	}
	return nil
}

// ValidateSorted checks that a is non-decreasing.
func ValidateSorted(a []int) error {
	for i := 1; i < len(a); i++ {
		if a[i] < a[i-1] {
			return fmt.Errorf("%w: array not sorted at index %d (%d > %d)", ErrInvalidInput, i, a[i-1], a[i])
		}
	}
	return nil
}

// Generator draws random sorted arrays within Bounds.
type Generator struct {
	mu     sync.Mutex
	bounds Bounds
	rng    *rand.Rand
}

// New creates a generator. A zero seed picks a time-based seed.
func New(bounds Bounds, seed uint64) (*Generator, error) {
	if err := bounds.Check(); err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{
		bounds: bounds,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}, nil
}

// Bounds returns the generator's limits.
func (g *Generator) Bounds() Bounds {
	return g.bounds
}

// Generate returns size distinct values from the value range in ascending
// order. With guarantee set and target missing, one random element is
// replaced by target and the array is re-sorted.
func (g *Generator) Generate(size, target int, guarantee bool) ([]int, error) {
	if err := g.bounds.ValidateSize(size); err != nil {
		return nil, err
	}
	if guarantee {
		if err := g.bounds.ValidateTarget(target); err != nil {
			return nil, err
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	perm := g.rng.Perm(g.bounds.Span())[:size]
	a := make([]int, size)
	for i, p := range perm {
		a[i] = g.bounds.MinValue + p
	}
	slices.Sort(a)

	if guarantee && size > 0 && !slices.Contains(a, target) {
		a[g.rng.IntN(size)] = target
		slices.Sort(a)
	}
	return a, nil
}

// Parse reads a user supplied array such as "1, 3, 5" or "[1 3 5]".
// Duplicates are allowed; the result must be sorted.
func Parse(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	a := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidInput, f)
		}
		a = append(a, v)
	}
	if err := ValidateSorted(a); err != nil {
		return nil, err
	}
	return a, nil
}
