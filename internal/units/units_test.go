package units

import (
	"math"
	"testing"
)

func TestConversions(t *testing.T) {
	if got := CM(100); got != 1000 {
		t.Errorf("CM(100) = %v, want 1000", got)
	}
	if got := ToCM(275); got != 27.5 {
		t.Errorf("ToCM(275) = %v, want 27.5", got)
	}
	if got := ToMM(190); got != 190 {
		t.Errorf("ToMM(190) = %v, want 190", got)
	}
	if got := FromMM(ToMM(42.5)); got != 42.5 {
		t.Errorf("FromMM(ToMM(42.5)) = %v, want 42.5", got)
	}
}

func TestFinite(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.5, 1.5},
		{-3, -3},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
	}
	for _, tt := range tests {
		if got := Finite(tt.in); got != tt.want {
			t.Errorf("Finite(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
