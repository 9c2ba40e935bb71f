package vmath

import (
	"testing"

	"github.com/lixenwraith/rampage/core"
)

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("Sequences diverged at step %d", i)
		}
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Error("Zero seed produced a stuck generator")
	}
}

func TestFastRandRanges(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 10000; i++ {
		if v := r.Intn(5); v < 0 || v >= 5 {
			t.Fatalf("Intn(5) out of range: %d", v)
		}
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %f", f)
		}
	}
	if r.Intn(0) != 0 || r.Intn(-3) != 0 {
		t.Error("Intn with non-positive n should return 0")
	}
}

func TestFastRandRead(t *testing.T) {
	a := NewFastRand(9)
	b := NewFastRand(9)
	p1 := make([]byte, 16)
	p2 := make([]byte, 16)
	n, err := a.Read(p1)
	if n != 16 || err != nil {
		t.Fatalf("Read returned %d, %v", n, err)
	}
	b.Read(p2)
	if string(p1) != string(p2) {
		t.Error("Read not reproducible for equal seeds")
	}
}

func TestAreaRandomPointStaysInside(t *testing.T) {
	r := NewFastRand(3)
	a := core.Area{X: 5, Y: 5, Width: 10, Height: 4}
	for i := 0; i < 1000; i++ {
		if p := AreaRandomPoint(a, r); !a.Contains(p) {
			t.Fatalf("Point %v outside %v", p, a)
		}
	}
}

func TestDistances(t *testing.T) {
	a := core.Point{X: 1, Y: 1}
	b := core.Point{X: 4, Y: -1}
	if got := Manhattan(a, b); got != 5 {
		t.Errorf("Manhattan = %d, want 5", got)
	}
	if got := Chebyshev(a, b); got != 3 {
		t.Errorf("Chebyshev = %d, want 3", got)
	}
	if Sign(-7) != -1 || Sign(0) != 0 || Sign(3) != 1 {
		t.Error("Sign mismatch")
	}
	if Clamp(1.5, 0, 1) != 1 || Clamp(-2, 0, 10) != 0 {
		t.Error("Clamp mismatch")
	}
}

func TestScriptedRandQueues(t *testing.T) {
	r := NewScriptedRand().Floats(0.1, 0.5).Ints(7, -1)

	if v := r.Float64(); v != 0.1 {
		t.Errorf("Expected 0.1, got %v", v)
	}
	if v := r.Intn(4); v != 3 {
		t.Errorf("Expected 7 mod 4 = 3, got %d", v)
	}
	if v := r.Intn(4); v != 3 {
		t.Errorf("Expected -1 wrapped to 3, got %d", v)
	}
	if f, i := r.Remaining(); f != 1 || i != 0 {
		t.Errorf("Unexpected remaining %d floats %d ints", f, i)
	}
	r.Float64()
	if Chance(r, 0.9) {
		t.Error("Default float should fail Chance draws")
	}
	if v := r.Intn(3); v != 0 {
		t.Errorf("Expected default int 0, got %d", v)
	}
}
