package fxmath

import (
	"math"
	"testing"
)

func TestLerpConverges(t *testing.T) {
	v := 0.0
	for i := 0; i < 200; i++ {
		v = Lerp(v, 100, 0.18)
	}
	if math.Abs(v-100) > 0.001 {
		t.Fatalf("expected convergence to 100, got %f", v)
	}
}

func TestLerpStationaryAtTarget(t *testing.T) {
	if v := Lerp(50, 50, 0.5); v != 50 {
		t.Fatalf("expected 50, got %f", v)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		v, min, max, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.min, c.max); got != c.want {
			t.Errorf("Clamp(%f, %f, %f) = %f, want %f", c.v, c.min, c.max, got, c.want)
		}
	}
}

func TestWrapStaysInHalfOpenInterval(t *testing.T) {
	cases := []float64{-250, -100, -0.5, 0, 0.5, 99.9, 100, 100.5, 350}
	for _, v := range cases {
		got := Wrap(v, 100)
		if got < 0 || got >= 100 {
			t.Errorf("Wrap(%f, 100) = %f, outside [0, 100)", v, got)
		}
	}
	if got := Wrap(100, 100); got != 0 {
		t.Errorf("Wrap(100, 100) = %f, want 0", got)
	}
}

func TestDistSq(t *testing.T) {
	if got := DistSq(0, 0, 3, 4); got != 25 {
		t.Fatalf("DistSq(0,0,3,4) = %f, want 25", got)
	}
}
