package splat

import (
	"testing"

	"github.com/line-splat/line-splat/internal/imaging"
)

func TestRandomLine_InBounds(t *testing.T) {
	rng := NewRand(1)
	for i := 0; i < 5000; i++ {
		seg, ok := RandomLine(rng, 40, 25)
		if !ok {
			t.Fatalf("iteration %d: no line found", i)
		}
		if seg.X1 < 0 || seg.X1 >= 40 || seg.X2 < 0 || seg.X2 >= 40 ||
			seg.Y1 < 0 || seg.Y1 >= 25 || seg.Y2 < 0 || seg.Y2 >= 25 {
			t.Fatalf("segment %v leaves the 40x25 canvas", seg)
		}
		if seg.Length() > randomMaxDistance+2 {
			t.Fatalf("segment %v longer than %v", seg, randomMaxDistance)
		}
	}
}

func TestRandomLine_EmptyCanvas(t *testing.T) {
	if _, ok := RandomLine(NewRand(1), 0, 10); ok {
		t.Error("expected no line on an empty canvas")
	}
}

func TestRandomLine_GivesUpAfterCap(t *testing.T) {
	// Angle 0.75*2π points straight up from y=0, so every attempt misses
	rng := stubSource{f: 0.75, intN: 0}
	if seg, ok := RandomLine(rng, 10, 10); ok {
		t.Errorf("expected the line to be skipped, got %v", seg)
	}
}

func TestSteeredLine_FollowsEdgeTangent(t *testing.T) {
	// Flat image: direction 0 everywhere, so the tangent points straight down
	field := imaging.ComputeGradient(uniformBuffer(30, 30, imaging.RGB{R: 90, G: 90, B: 90}))
	rng := NewRand(7)

	for i := 0; i < 500; i++ {
		seg, ok := SteeredLine(rng, field)
		if !ok {
			t.Fatalf("iteration %d: no line found", i)
		}
		if seg.X2 != seg.X1 {
			t.Fatalf("segment %v is not vertical", seg)
		}
		if seg.Y2 < seg.Y1 || seg.Y2 >= 30 {
			t.Fatalf("segment %v does not run down inside the canvas", seg)
		}
		if seg.Length() > steeredMaxDistance+1 {
			t.Fatalf("segment %v longer than %v", seg, steeredMaxDistance)
		}
	}
}

func TestSteeredLine_EmptyCanvas(t *testing.T) {
	if _, ok := SteeredLine(NewRand(1), flatField(0, 0, 0, 0)); ok {
		t.Error("expected no line on an empty canvas")
	}
}

func TestEndpointPen(t *testing.T) {
	buf := imaging.NewPixelBuffer(10, 1)
	for x := 5; x < 10; x++ {
		buf.SetRGB(x, 0, imaging.RGB{R: 200, G: 100, B: 50})
	}

	pen := endpointPen(buf, Segment{X1: 0, Y1: 0, X2: 9, Y2: 0})
	if pen != (imaging.RGB{R: 100, G: 50, B: 25}) {
		t.Errorf("got %v, want {100 50 25}", pen)
	}
}
