package dao

import "testing"

func TestNewStaticReturnsDefaultValue(t *testing.T) {
	t.Parallel()

	if got := NewStatic().Value(); got != 4.0 {
		t.Fatalf("expected 4.0, got %v", got)
	}
}

func TestNewStaticWithValue(t *testing.T) {
	t.Parallel()

	testCases := []float64{0, -1.5, 3.25, 1e9}
	for _, v := range testCases {
		var p Provider = NewStaticWithValue(v)
		if got := p.Value(); got != v {
			t.Fatalf("expected %v, got %v", v, got)
		}
	}
}
