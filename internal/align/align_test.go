package align

import (
	"errors"
	"testing"
)

func TestTimeKey(t *testing.T) {
	tests := []struct {
		name     string
		t        float64
		expected int64
	}{
		{name: "half step truncates", t: 1.00005, expected: 10000},
		{name: "below half", t: 1.00004, expected: 10000},
		{name: "two steps", t: 1.0002, expected: 10002},
		{name: "representation noise", t: 2.99999999999, expected: 30000},
		{name: "zero", t: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeKey(tt.t, DefaultKeyScale); got != tt.expected {
				t.Errorf("TimeKey(%v) = %d, expected %d", tt.t, got, tt.expected)
			}
		})
	}
}

func TestJoinOnTime(t *testing.T) {
	tests := []struct {
		name     string
		left     []float64
		right    []float64
		pairs    []Pair
		expected JoinReport
	}{
		{
			name:     "keys agree to four decimals",
			left:     []float64{1.00005},
			right:    []float64{1.00004},
			pairs:    []Pair{{0, 0}},
			expected: JoinReport{LeftRows: 1, RightRows: 1, Matched: 1},
		},
		{
			name:     "different keys do not match",
			left:     []float64{1.00005},
			right:    []float64{1.0002},
			expected: JoinReport{LeftRows: 1, RightRows: 1, LeftDropped: 1, RightDropped: 1},
		},
		{
			name:     "left order preserved and unmatched rows dropped",
			left:     []float64{3, 1, 2, 7},
			right:    []float64{1, 2, 3, 9},
			pairs:    []Pair{{0, 2}, {1, 0}, {2, 1}},
			expected: JoinReport{LeftRows: 4, RightRows: 4, Matched: 3, LeftDropped: 1, RightDropped: 1},
		},
		{
			name:  "duplicate keys fan out",
			left:  []float64{1, 1},
			right: []float64{1, 1.00001, 2},
			pairs: []Pair{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
			expected: JoinReport{LeftRows: 2, RightRows: 3, Matched: 4, RightDropped: 1,
				LeftDuplicateKeys: 1, RightDuplicateKeys: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairs, report := JoinOnTime(tt.left, tt.right, DefaultKeyScale)
			if len(pairs) != len(tt.pairs) {
				t.Fatalf("JoinOnTime() = %v, expected %v", pairs, tt.pairs)
			}
			for i := range pairs {
				if pairs[i] != tt.pairs[i] {
					t.Errorf("pair %d = %v, expected %v", i, pairs[i], tt.pairs[i])
				}
			}
			if report != tt.expected {
				t.Errorf("report = %+v, expected %+v", report, tt.expected)
			}
			if report.FansOut() != (tt.expected.LeftDuplicateKeys+tt.expected.RightDuplicateKeys > 0) {
				t.Errorf("FansOut() = %v", report.FansOut())
			}
		})
	}
}

func TestNearest(t *testing.T) {
	values := []float64{1, 5, 10, 20}
	tests := []struct {
		name     string
		target   float64
		index    int
		distance float64
		clamped  bool
	}{
		{name: "closer to lower neighbour", target: 7, index: 1, distance: 2},
		{name: "exact", target: 10, index: 2, distance: 0},
		{name: "tie goes to lowest index", target: 3, index: 0, distance: 2},
		{name: "below range clamps", target: -4, index: 0, distance: 5, clamped: true},
		{name: "above range clamps", target: 1e6, index: 3, distance: 1e6 - 20, clamped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Nearest(values, tt.target)
			if err != nil {
				t.Fatalf("Nearest() error = %v", err)
			}
			if m.Index != tt.index || m.Distance != tt.distance || m.Clamped != tt.clamped {
				t.Errorf("Nearest(%v) = %+v, expected index %d distance %v clamped %v",
					tt.target, m, tt.index, tt.distance, tt.clamped)
			}
			if m.Value != values[tt.index] {
				t.Errorf("Value = %v, expected %v", m.Value, values[tt.index])
			}
		})
	}
}

func TestNearestEmpty(t *testing.T) {
	if _, err := Nearest(nil, 1); !errors.Is(err, ErrEmpty) {
		t.Errorf("Nearest(nil) error = %v, expected ErrEmpty", err)
	}
}
