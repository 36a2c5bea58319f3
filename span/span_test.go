package span

import "testing"

// assertSpans fails the test unless got and want match element-wise.
func assertSpans(t *testing.T, got, want []Span) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d spans %v, want %d spans %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("span[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name   string
		bounds []int
		want   []Span
	}{
		{
			name:   "adjacent units",
			bounds: []int{0, 3, 5, 6},
			want:   []Span{{0, 2}, {3, 4}, {5, 5}},
		},
		{
			name:   "single pair",
			bounds: []int{0, 4},
			want:   []Span{{0, 3}},
		},
		{
			name:   "coincident values dropped",
			bounds: []int{0, 3, 3, 4},
			want:   []Span{{0, 2}, {3, 3}},
		},
		{
			name:   "inverted pair dropped",
			bounds: []int{2, 1, 4},
			want:   []Span{{1, 3}},
		},
		{
			name:   "single boundary",
			bounds: []int{5},
			want:   nil,
		},
		{
			name:   "empty",
			bounds: nil,
			want:   nil,
		},
		{
			name:   "all coincident",
			bounds: []int{4, 4, 4},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertSpans(t, Build(tt.bounds), tt.want)
		})
	}
}

func TestBuild_Invariants(t *testing.T) {
	inputs := [][]int{
		{0, 1, 2, 3},
		{0, 5, 9, 14, 15},
		{1, 2, 50},
		{3, 4},
		{0, 100},
		{2, 7, 8, 8, 9},
	}

	for _, bounds := range inputs {
		spans := Build(bounds)
		for i, sp := range spans {
			if sp.Start > sp.End {
				t.Errorf("Build(%v): span %v has start > end", bounds, sp)
			}
			if i > 0 && spans[i-1].End >= sp.Start {
				t.Errorf("Build(%v): spans %v and %v overlap or are unordered", bounds, spans[i-1], sp)
			}
		}
	}
}

func TestSpanLen(t *testing.T) {
	tests := []struct {
		span Span
		want int
	}{
		{Span{0, 0}, 1},
		{Span{0, 2}, 3},
		{Span{5, 9}, 5},
	}

	for _, tt := range tests {
		if got := tt.span.Len(); got != tt.want {
			t.Errorf("%v.Len() = %d, want %d", tt.span, got, tt.want)
		}
	}
}

func TestSpanString(t *testing.T) {
	got := Span{Start: 3, End: 7}.String()
	if got != "(3, 7)" {
		t.Errorf("String() = %q, want %q", got, "(3, 7)")
	}
}
