package steplog

import (
	"fmt"

	"bsviz/internal/search"
)

// Status describes what a frame is showing.
type Status int

const (
	// Ready is the position before the first comparison.
	Ready Status = iota
	// Searching shows a comparison that did not end the search.
	Searching
	// Found shows the comparison that located the target.
	Found
	// NotFound is the terminal position of an unsuccessful search.
	NotFound
)

func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case Searching:
		return "searching"
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// IsTerminal reports whether the search has finished at this status.
func (s Status) IsTerminal() bool {
	return s == Found || s == NotFound
}

// Title is the human readable status used in chart headings.
func (s Status) Title() string {
	switch s {
	case Ready:
		return "Ready"
	case Found:
		return "Found"
	case NotFound:
		return "Not Found"
	default:
		return "Searching"
	}
}

// Frame is everything a renderer needs to draw one cursor position.
type Frame struct {
	Cursor int
	Total  int
	N      int
	Target int
	Status Status

	// Step is the comparison on display; nil before the first step.
	Step *search.Step

	// Left and Right bound the indices still in range. Left > Right once an
	// unsuccessful search has eliminated everything.
	Left  int
	Right int

	Lines []string
}

// HasMid reports whether the frame highlights a mid index. The terminal
// frame of an unsuccessful search still shows its last comparison.
func (f Frame) HasMid() bool {
	return f.Step != nil && f.Status != Ready
}

// Mid returns the highlighted index, or -1.
func (f Frame) Mid() int {
	if !f.HasMid() {
		return -1
	}
	return f.Step.Mid
}

// InRange reports whether index i is still a candidate.
func (f Frame) InRange(i int) bool {
	return i >= f.Left && i <= f.Right
}

// Eliminated returns the indices already ruled out.
func (f Frame) Eliminated() []int {
	return search.Outside(f.Left, f.Right, f.N)
}

// Comparisons is the number of comparisons made up to this frame.
func (f Frame) Comparisons() int {
	return f.Cursor
}

// Progress renders the "Step k of n" counter. Position 0 counts as step 1
// so that the counter never reads "Step 0".
func (f Frame) Progress() string {
	return fmt.Sprintf("Step %d of %d", f.Cursor+1, f.Total+1)
}

// Frame derives the view of the current cursor position.
func (l *Log) Frame() Frame {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := len(l.array)
	f := Frame{
		Cursor: l.cursor,
		Total:  len(l.steps),
		N:      n,
		Target: l.target,
		Left:   0,
		Right:  n - 1,
		Lines:  search.Narrate(l.steps, l.target, n, l.cursor),
	}

	complete := l.cursor == len(l.steps)
	result := search.ResultOf(l.steps)

	if l.cursor > 0 {
		step := l.steps[l.cursor-1]
		f.Step = &step
		f.Left, f.Right = step.Bounds()
	}

	switch {
	case complete && result.Found:
		f.Status = Found
	case complete:
		f.Status = NotFound
		if f.Step != nil {
			f.Left, f.Right = f.Step.Next()
		} else {
			f.Left, f.Right = 0, -1
		}
	case l.cursor == 0:
		f.Status = Ready
	default:
		f.Status = Searching
	}
	return f
}
