// Package steplog holds the recorded steps of one search run and a cursor
// into them. The UI navigates the cursor; the steps never change after the
// log is created.
//
// Cursor positions run from 0 to Len(). Position 0 is the "not started"
// state before any comparison is shown; position k shows step k-1.
package steplog

import (
	"sync"

	"bsviz/internal/search"
)

// Log is a replayable search history. It is safe for a playback goroutine and
// its owner to use at the same time.
type Log struct {
	mu     sync.RWMutex
	array  []int
	target int
	steps  []search.Step
	cursor int
}

// New runs the search eagerly and returns a log positioned before the first step.
func New(array []int, target int) *Log {
	a := make([]int, len(array))
	copy(a, array)
	return &Log{
		array:  a,
		target: target,
		steps:  search.Run(a, target),
	}
}

// Reset moves the cursor back to the "not started" position. Idempotent.
func (l *Log) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cursor = 0
}

// Next advances the cursor by one step. At the end it does nothing and
// returns false.
func (l *Log) Next() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cursor >= len(l.steps) {
		return false
	}
	l.cursor++
	return true
}

// Previous moves the cursor back by one step. At the start it does nothing
// and returns false.
func (l *Log) Previous() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cursor <= 0 {
		return false
	}
	l.cursor--
	return true
}

// Seek moves the cursor to position i, clamped to [0, Len()].
func (l *Log) Seek(i int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cursor = clamp(i, 0, len(l.steps))
}

// End moves the cursor to the terminal position.
func (l *Log) End() {
	l.Seek(l.Len())
}

// Current returns the step under the cursor. The boolean is false before the
// first step.
func (l *Log) Current() (search.Step, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.cursor == 0 {
		return search.Step{}, false
	}
	return l.steps[l.cursor-1], true
}

// IsComplete reports whether every step has been shown.
func (l *Log) IsComplete() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cursor == len(l.steps)
}

// Cursor returns the current position.
func (l *Log) Cursor() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cursor
}

// Len returns the number of recorded steps.
func (l *Log) Len() int {
	return len(l.steps)
}

// Steps returns a copy of the recorded steps.
func (l *Log) Steps() []search.Step {
	out := make([]search.Step, len(l.steps))
	copy(out, l.steps)
	return out
}

// Array returns a copy of the searched array.
func (l *Log) Array() []int {
	out := make([]int, len(l.array))
	copy(out, l.array)
	return out
}

// Target returns the value being searched for.
func (l *Log) Target() int {
	return l.target
}

// Result returns the terminal outcome of the search, independent of the cursor.
func (l *Log) Result() search.Result {
	return search.ResultOf(l.steps)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
