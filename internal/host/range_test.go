package host

import "testing"

func TestRangeEnd(t *testing.T) {
	r := NewRange(3, 4)
	if r.End() != 7 {
		t.Errorf("End() = %d, want 7", r.End())
	}
	if r.IsEmpty() {
		t.Error("range with length 4 should not be empty")
	}
	if !NewRange(5, 0).IsEmpty() {
		t.Error("zero-length range should be empty")
	}
}

func TestBetween(t *testing.T) {
	r := Between(2, 9)
	if r.Start != 2 || r.Length != 7 {
		t.Errorf("Between(2, 9) = %v, want [2+7)", r)
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(2, 3)
	tests := []struct {
		offset int
		want   bool
	}{
		{1, false},
		{2, true},
		{4, true},
		{5, false},
	}
	for _, tc := range tests {
		if got := r.Contains(tc.offset); got != tc.want {
			t.Errorf("Contains(%d) = %v, want %v", tc.offset, got, tc.want)
		}
	}
}

func TestRangeClamp(t *testing.T) {
	tests := []struct {
		name   string
		r      Range
		docLen int
		want   Range
	}{
		{"inside", NewRange(1, 2), 10, NewRange(1, 2)},
		{"past end", NewRange(8, 5), 10, NewRange(8, 2)},
		{"negative start", NewRange(-1, 3), 10, NewRange(0, 2)},
		{"start beyond end", NewRange(12, 1), 10, NewRange(10, 0)},
		{"fully negative", NewRange(-5, 2), 10, NewRange(0, 0)},
		{"negative length", NewRange(4, -2), 10, NewRange(4, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Clamp(tc.docLen); got != tc.want {
				t.Errorf("Clamp(%d) = %v, want %v", tc.docLen, got, tc.want)
			}
		})
	}
}

func TestRangeShift(t *testing.T) {
	if got := NewRange(4, 2).Shift(-3); got != NewRange(1, 2) {
		t.Errorf("Shift(-3) = %v, want [1+2)", got)
	}
}
