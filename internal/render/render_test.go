package render

import (
	"strings"
	"testing"

	"bsviz/internal/steplog"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestRoles_ThroughSearch(t *testing.T) {
	l := steplog.New([]int{2, 4, 6, 8, 10}, 5)

	// Ready: everything in range, no mid.
	want := []Role{RoleInRange, RoleInRange, RoleInRange, RoleInRange, RoleInRange}
	if diff := cmp.Diff(want, Roles(l.Frame())); diff != "" {
		t.Errorf("ready roles (-want +got):\n%s", diff)
	}

	l.Next()
	want = []Role{RoleInRange, RoleInRange, RoleMid, RoleInRange, RoleInRange}
	if diff := cmp.Diff(want, Roles(l.Frame())); diff != "" {
		t.Errorf("step 1 roles (-want +got):\n%s", diff)
	}

	l.Next()
	want = []Role{RoleMid, RoleInRange, RoleEliminated, RoleEliminated, RoleEliminated}
	if diff := cmp.Diff(want, Roles(l.Frame())); diff != "" {
		t.Errorf("step 2 roles (-want +got):\n%s", diff)
	}

	// The final comparison (mid 1) stays highlighted over an empty range.
	l.End()
	want = []Role{RoleEliminated, RoleMid, RoleEliminated, RoleEliminated, RoleEliminated}
	if diff := cmp.Diff(want, Roles(l.Frame())); diff != "" {
		t.Errorf("not found roles (-want +got):\n%s", diff)
	}
}

func TestRoles_NotFoundHighlightsLastComparison(t *testing.T) {
	tests := []struct {
		name   string
		array  []int
		target int
	}{
		{"single element", []int{42}, 10},
		{"five elements", []int{2, 4, 6, 8, 10}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := steplog.New(tt.array, tt.target)
			steps := l.Steps()
			last := steps[len(steps)-1]

			l.End()
			roles := Roles(l.Frame())
			assert.Equal(t, RoleMid, roles[last.Mid])
			for i, r := range roles {
				if i != last.Mid {
					assert.Equal(t, RoleEliminated, r, "index %d", i)
				}
			}
		})
	}
}

func TestRoles_Found(t *testing.T) {
	l := steplog.New([]int{10, 20, 30, 40, 50}, 50)
	l.End()
	roles := Roles(l.Frame())
	assert.Equal(t, RoleFound, roles[4])
	assert.Equal(t, RoleEliminated, roles[3])
}

func newTestRenderer() *Renderer {
	return New(Options{Palette: DefaultPalette(), Height: 5, MarkdownStyle: "notty", WordWrap: 60})
}

func TestChart_Shape(t *testing.T) {
	r := newTestRenderer()
	array := []int{20, 40, 60, 80, 100}
	l := steplog.New(array, 60)

	out := r.Chart(array, l.Frame(), 80)
	lines := strings.Split(out, "\n")
	// 5 bar rows, a value row and an index row.
	assert.Len(t, lines, 7)
	assert.Contains(t, lines[5], "100")
	assert.Contains(t, lines[6], "4")
	// The tallest bar reaches the top row; the shortest only the bottom.
	assert.Equal(t, 1, strings.Count(lines[0], "███"))
	assert.Equal(t, 5, strings.Count(lines[4], "███"))
}

func TestChart_NarrowFallsBackToAxis(t *testing.T) {
	r := newTestRenderer()
	array := make([]int, 50)
	for i := range array {
		array[i] = i + 1
	}
	l := steplog.New(array, 7)
	out := r.Chart(array, l.Frame(), 80)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 6)
	assert.Contains(t, lines[5], "─")
}

func TestChart_Empty(t *testing.T) {
	r := newTestRenderer()
	assert.Equal(t, "(empty array)", r.Chart(nil, steplog.New(nil, 1).Frame(), 80))
}

func TestBarWidth(t *testing.T) {
	assert.Equal(t, 3, barWidth(5, 200))
	assert.Equal(t, 1, barWidth(50, 80))
	assert.Equal(t, 2, barWidth(20, 60))
	assert.Equal(t, 1, barWidth(0, 10))
}

func TestStatsMarkdown(t *testing.T) {
	l := steplog.New([]int{10, 20, 30, 40, 50}, 50)
	l.Next()
	md := StatsMarkdown(l.Frame())
	assert.Contains(t, md, "Comparisons so far: 1")
	assert.Contains(t, md, "Current search range: [0, 4]")
	assert.Contains(t, md, "Array size (n): 5")
	assert.Contains(t, md, "Worst case comparisons: 3")
	assert.NotContains(t, md, "Result")

	l.End()
	md = StatsMarkdown(l.Frame())
	assert.Contains(t, md, "found 50 at index 4")

	nf := steplog.New([]int{2, 4, 6, 8, 10}, 5)
	nf.End()
	md = StatsMarkdown(nf.Frame())
	assert.Contains(t, md, "Current search range: empty")
	assert.Contains(t, md, "5 not found")
}

func TestStats_RendersMarkdown(t *testing.T) {
	r := newTestRenderer()
	l := steplog.New([]int{1, 2, 3, 4, 5}, 3)
	out := r.Stats(l.Frame())
	assert.Contains(t, out, "Statistics:")
	assert.Contains(t, out, "O(log n)")
	assert.Contains(t, out, "Array size (n): 5")
}

func TestLegendTitleLogProgress(t *testing.T) {
	r := newTestRenderer()
	legend := r.Legend()
	for _, label := range []string{"In Search Range", "Eliminated", "Current Middle", "Target Found"} {
		assert.Contains(t, legend, label)
	}

	l := steplog.New([]int{42}, 42)
	assert.Equal(t, "Binary Search Visualization - Ready", Title(l.Frame()))
	l.Next()
	assert.Equal(t, "Binary Search Visualization - Found", Title(l.Frame()))
	assert.Equal(t, "Step 2 of 2", r.Progress(l.Frame()))
	assert.Equal(t, "Starting search for 42 in array of size 1\nStep 1: Found! Array[0] = 42 equals target 42", r.Log(l.Frame()))
}
