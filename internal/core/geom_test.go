package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestCollideEdges(t *testing.T) {
	brick := BoxFromSize(V(0, 0), V(80, 30)) // x [-40,40], y [-15,15]

	tests := []struct {
		name     string
		ball     AABB
		expected Edge
	}{
		{"left edge", BoxFromSize(V(-45, 0), V(20, 20)), EdgeLeft},
		{"right edge", BoxFromSize(V(45, 0), V(20, 20)), EdgeRight},
		{"top edge", BoxFromSize(V(0, 20), V(20, 20)), EdgeTop},
		{"bottom edge", BoxFromSize(V(0, -20), V(20, 20)), EdgeBottom},
		{"corner, shallower on x", BoxFromSize(V(-47, 20), V(20, 20)), EdgeLeft},
		{"corner, shallower on y", BoxFromSize(V(-45, 22), V(20, 20)), EdgeTop},
		{"corner tie prefers x", BoxFromSize(V(-45, 20), V(20, 20)), EdgeLeft},
		{"wider than collider", BoxFromSize(V(0, 20), V(100, 20)), EdgeTop},
		{"fully inside", BoxFromSize(V(0, 0), V(10, 10)), EdgeInside},
		{"touching edge", BoxFromSize(V(-50, 0), V(20, 20)), EdgeNone},
		{"far away", BoxFromSize(V(300, 300), V(20, 20)), EdgeNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collide(tc.ball, brick); got != tc.expected {
				t.Errorf("Collide() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

// axisDepth mirrors the per-axis classification used by Collide.
func axisDepth(aMin, aMax, bMin, bMax float64) float64 {
	switch {
	case aMin < bMin && aMax > bMin && aMax < bMax:
		return aMax - bMin
	case aMin > bMin && aMin < bMax && aMax > bMax:
		return bMax - aMin
	}
	return math.Inf(1)
}

func TestCollideMinimumPenetration(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 5000; i++ {
		a := BoxFromSize(V(rng.Float64()*200-100, rng.Float64()*200-100), V(rng.Float64()*60+1, rng.Float64()*60+1))
		b := BoxFromSize(V(rng.Float64()*200-100, rng.Float64()*200-100), V(rng.Float64()*120+1, rng.Float64()*60+1))

		edge := Collide(a, b)
		if !a.Overlaps(b) {
			if edge != EdgeNone {
				t.Fatalf("case %d: no overlap but Collide() = %v", i, edge)
			}
			continue
		}

		xd := axisDepth(a.Min().X, a.Max().X, b.Min().X, b.Max().X)
		yd := axisDepth(a.Min().Y, a.Max().Y, b.Min().Y, b.Max().Y)

		switch edge {
		case EdgeLeft, EdgeRight:
			if xd > yd {
				t.Fatalf("case %d: x edge %v chosen with depth %f > y depth %f", i, edge, xd, yd)
			}
		case EdgeTop, EdgeBottom:
			if yd >= xd {
				t.Fatalf("case %d: y edge %v chosen with depth %f >= x depth %f", i, edge, yd, xd)
			}
		case EdgeInside:
			if !math.IsInf(xd, 1) || !math.IsInf(yd, 1) {
				t.Fatalf("case %d: Inside reported with finite depths %f/%f", i, xd, yd)
			}
		default:
			t.Fatalf("case %d: overlap but Collide() = %v", i, edge)
		}

		// The struck edge always faces the incoming box.
		switch edge {
		case EdgeLeft:
			if a.Center.X >= b.Center.X {
				t.Fatalf("case %d: Left hit from the right side", i)
			}
		case EdgeRight:
			if a.Center.X <= b.Center.X {
				t.Fatalf("case %d: Right hit from the left side", i)
			}
		case EdgeTop:
			if a.Center.Y <= b.Center.Y {
				t.Fatalf("case %d: Top hit from below", i)
			}
		case EdgeBottom:
			if a.Center.Y >= b.Center.Y {
				t.Fatalf("case %d: Bottom hit from above", i)
			}
		}
	}
}

func TestVecNormalize(t *testing.T) {
	v := V(0.5, -0.5).Normalize().Scale(200)
	if math.Abs(v.Len()-200) > 1e-9 {
		t.Errorf("Len() = %f, expected 200", v.Len())
	}
	if zero := (Vec2{}).Normalize(); zero != (Vec2{}) {
		t.Errorf("Normalize() of zero = %v, expected zero", zero)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
