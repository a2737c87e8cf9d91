package search

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRun_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		array  []int
		target int
		want   []Step
		result Result
	}{
		{
			name:   "middle hit",
			array:  []int{1, 2, 3, 4, 5},
			target: 3,
			want: []Step{
				{Left: 0, Right: 4, Mid: 2, Value: 3, Outcome: Equal, Comparisons: 1},
			},
			result: Result{Found: true, Index: 2},
		},
		{
			name:   "last element",
			array:  []int{10, 20, 30, 40, 50},
			target: 50,
			want: []Step{
				{Left: 0, Right: 4, Mid: 2, Value: 30, Outcome: Less, Comparisons: 1},
				{Left: 3, Right: 4, Mid: 3, Value: 40, Outcome: Less, Comparisons: 2},
				{Left: 4, Right: 4, Mid: 4, Value: 50, Outcome: Equal, Comparisons: 3},
			},
			result: Result{Found: true, Index: 4},
		},
		{
			name:   "absent between elements",
			array:  []int{2, 4, 6, 8, 10},
			target: 5,
			want: []Step{
				{Left: 0, Right: 4, Mid: 2, Value: 6, Outcome: Greater, Comparisons: 1},
				{Left: 0, Right: 1, Mid: 0, Value: 2, Outcome: Less, Comparisons: 2},
				{Left: 1, Right: 1, Mid: 1, Value: 4, Outcome: Less, Comparisons: 3},
			},
			result: NotFound,
		},
		{
			name:   "single element hit",
			array:  []int{42},
			target: 42,
			want: []Step{
				{Left: 0, Right: 0, Mid: 0, Value: 42, Outcome: Equal, Comparisons: 1},
			},
			result: Result{Found: true, Index: 0},
		},
		{
			name:   "single element miss",
			array:  []int{42},
			target: 10,
			want: []Step{
				{Left: 0, Right: 0, Mid: 0, Value: 42, Outcome: Greater, Comparisons: 1},
			},
			result: NotFound,
		},
		{
			name:   "empty",
			array:  []int{},
			target: 7,
			want:   []Step{},
			result: NotFound,
		},
		{
			name:   "nil",
			array:  nil,
			target: 7,
			want:   []Step{},
			result: NotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Run(tt.array, tt.target)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Run(%v, %d) steps mismatch (-want +got):\n%s", tt.array, tt.target, diff)
			}
			if r := ResultOf(got); r != tt.result {
				t.Errorf("ResultOf = %v, want %v", r, tt.result)
			}
		})
	}
}

func TestRun_DuplicatesReturnFirstMidHit(t *testing.T) {
	array := []int{1, 3, 3, 3, 3, 3, 9}
	steps := Run(array, 3)
	r := ResultOf(steps)
	if !r.Found {
		t.Fatalf("expected to find 3")
	}
	// mid of [0,6] is 3, which already holds a 3; the lowest index (1) is not sought.
	if r.Index != 3 {
		t.Errorf("expected index 3, got %d", r.Index)
	}
	if len(steps) != 1 {
		t.Errorf("expected 1 comparison, got %d", len(steps))
	}
}

func randomSorted(r *rand.Rand, n int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = r.IntN(100) + 1
	}
	slices.Sort(a)
	return a
}

func TestRun_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for iter := 0; iter < 2000; iter++ {
		n := r.IntN(60)
		a := randomSorted(r, n)
		target := r.IntN(110) - 5

		steps := Run(a, target)
		if len(steps) > MaxSteps(n) {
			t.Fatalf("array %v target %d: %d steps exceeds bound %d", a, target, len(steps), MaxSteps(n))
		}

		for i, s := range steps {
			if s.Left > s.Mid || s.Mid > s.Right {
				t.Fatalf("step %d violates left<=mid<=right: %+v", i, s)
			}
			if s.Value != a[s.Mid] {
				t.Fatalf("step %d value %d != a[%d]=%d", i, s.Value, s.Mid, a[s.Mid])
			}
			if s.Comparisons != i+1 {
				t.Fatalf("step %d comparisons = %d", i, s.Comparisons)
			}
			if i > 0 {
				prev := steps[i-1]
				l, rr := prev.Next()
				if s.Left != l || s.Right != rr {
					t.Fatalf("step %d bounds [%d,%d] do not follow step %d -> [%d,%d]", i, s.Left, s.Right, i-1, l, rr)
				}
				if s.Right-s.Left >= prev.Right-prev.Left {
					t.Fatalf("range did not shrink between steps %d and %d", i-1, i)
				}
			}
		}

		res := ResultOf(steps)
		present := slices.Contains(a, target)
		if present != res.Found {
			t.Fatalf("array %v target %d: present=%v but result %v", a, target, present, res)
		}
		if res.Found && a[res.Index] != target {
			t.Fatalf("a[%d]=%d, want %d", res.Index, a[res.Index], target)
		}
	}
}

func TestRun_Deterministic(t *testing.T) {
	a := []int{3, 8, 15, 16, 23, 42, 57, 61, 77, 90}
	first := Run(a, 61)
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(first, Run(a, 61)); diff != "" {
			t.Fatalf("run %d differs:\n%s", i, diff)
		}
	}
}

func TestMaxSteps(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 2: 2, 3: 2, 4: 3, 7: 3, 8: 4, 20: 5, 50: 6}
	for n, want := range cases {
		if got := MaxSteps(n); got != want {
			t.Errorf("MaxSteps(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestStep_RangeHelpers(t *testing.T) {
	s := Step{Left: 2, Right: 4, Mid: 3, Outcome: Less}
	if !s.Contains(2) || !s.Contains(4) || s.Contains(5) || s.Contains(1) {
		t.Errorf("Contains wrong for %+v", s)
	}
	if diff := cmp.Diff([]int{0, 1, 5, 6}, s.Eliminated(7)); diff != "" {
		t.Errorf("Eliminated mismatch:\n%s", diff)
	}
	l, r := s.Next()
	if l != 4 || r != 4 {
		t.Errorf("Next = [%d,%d], want [4,4]", l, r)
	}
}

func TestOutcome_Text(t *testing.T) {
	for _, o := range []Outcome{Equal, Less, Greater} {
		b, err := o.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", o, err)
		}
		var back Outcome
		if err := back.UnmarshalText(b); err != nil || back != o {
			t.Errorf("UnmarshalText(%s) = %v, %v", b, back, err)
		}
	}
	if _, err := Outcome(9).MarshalText(); err == nil {
		t.Error("expected error for unknown outcome")
	}
	var o Outcome
	if err := o.UnmarshalText([]byte("sideways")); err == nil {
		t.Error("expected error for unknown name")
	}
}

func TestNarrate(t *testing.T) {
	a := []int{2, 4, 6, 8, 10}
	steps := Run(a, 5)

	got := Narrate(steps, 5, len(a), 0)
	if diff := cmp.Diff([]string{"Starting search for 5 in array of size 5"}, got); diff != "" {
		t.Errorf("k=0 mismatch:\n%s", diff)
	}

	got = Narrate(steps, 5, len(a), len(steps))
	want := []string{
		"Starting search for 5 in array of size 5",
		"Step 1: Array[2] = 6 > 5. Searching left half.",
		"Step 2: Array[0] = 2 < 5. Searching right half.",
		"Step 3: Array[1] = 4 < 5. Searching right half.",
		"Search complete: 5 not found in array after 3 comparisons",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("full narration mismatch:\n%s", diff)
	}

	found := Run([]int{42}, 42)
	got = Narrate(found, 42, 1, 1)
	if got[len(got)-1] != "Step 1: Found! Array[0] = 42 equals target 42" {
		t.Errorf("unexpected last line %q", got[len(got)-1])
	}
}
