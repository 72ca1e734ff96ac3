package field

import (
	"math/rand"
	"testing"
)

func newTestField(count int) *Field {
	f := New(Placement{Count: count, Radius: 5, MaxRadius: 8}, rand.New(rand.NewSource(42)))
	f.Rebuild(Bounds{Width: 640, Height: 480})
	return f
}

func TestFieldStep(t *testing.T) {
	f := newTestField(60)
	dl := &DrawList{}
	b := f.Bounds()

	for frame := 1; frame <= 5; frame++ {
		f.Step(Pointer{X: 320, Y: 240, Set: true}, b, dl)

		if len(dl.Circles) != 60 {
			t.Fatalf("frame %d: %d circles, want 60", frame, len(dl.Circles))
		}
		if dl.Clears != frame {
			t.Fatalf("frame %d: %d clears", frame, dl.Clears)
		}
		if dl.Bounds != b {
			t.Fatalf("frame %d: cleared %v, want %v", frame, dl.Bounds, b)
		}
	}
	if f.Frame() != 5 {
		t.Errorf("Frame() = %d, want 5", f.Frame())
	}

	for i, p := range f.Particles() {
		if p.Opacity < 0 || p.Opacity > 1 {
			t.Errorf("particle %d opacity %v", i, p.Opacity)
		}
		if p.Radius < p.MinRadius {
			t.Errorf("particle %d radius %v below %v", i, p.Radius, p.MinRadius)
		}
	}
}

func TestFieldStepConservesMomentumWithoutWalls(t *testing.T) {
	// Two overlapping bodies far from every edge
	f := New(Placement{Count: 2, Radius: 5}, rand.New(rand.NewSource(1)))
	f.Rebuild(Bounds{Width: 1000, Height: 1000})
	ps := f.Particles()
	ps[0] = body(500, 500, 1, 0.5, 1)
	ps[1] = body(507, 503, -0.5, 0, 1)

	before := ps[0].Vel.X + ps[1].Vel.X
	f.Step(Pointer{}, f.Bounds(), &DrawList{})
	after := ps[0].Vel.X + ps[1].Vel.X

	if !near(before, after) {
		t.Errorf("momentum x %v -> %v", before, after)
	}
}

func TestFieldRebuildReplacesParticles(t *testing.T) {
	f := newTestField(30)
	old := f.Particles()

	f.Rebuild(Bounds{Width: 300, Height: 200})

	if len(f.Particles()) != 30 {
		t.Fatalf("len = %d, want 30", len(f.Particles()))
	}
	if &old[0] == &f.Particles()[0] {
		t.Error("Rebuild reused the previous collection")
	}
	if f.Bounds() != (Bounds{Width: 300, Height: 200}) {
		t.Errorf("Bounds = %v", f.Bounds())
	}
	for i, p := range f.Particles() {
		if p.Pos.X > 295 || p.Pos.Y > 195 {
			t.Errorf("particle %d at %v outside new bounds", i, p.Pos)
		}
	}
}

func TestFieldReseedAndPlacement(t *testing.T) {
	f := newTestField(10)

	for i := 0; i < 20; i++ {
		f.Reseed()
		f.Rebuild(f.Bounds())
		for _, p := range f.Particles() {
			if !inPalette(p.Color, f.Palette()) {
				t.Fatalf("color %v not in current palette", p.Color)
			}
		}
	}

	f.SetPlacement(Placement{Count: 3, Radius: 4})
	f.Rebuild(f.Bounds())
	if len(f.Particles()) != 3 || f.Particles()[0].Radius != 4 {
		t.Errorf("placement not applied: %d particles", len(f.Particles()))
	}
	if f.Placement().Count != 3 {
		t.Errorf("Placement().Count = %d", f.Placement().Count)
	}
}

func TestFieldRelaxedCount(t *testing.T) {
	f := New(Placement{Count: 40, Radius: 5, MaxAttempts: 5}, rand.New(rand.NewSource(2)))
	f.Rebuild(Bounds{Width: 30, Height: 30})
	if f.Relaxed() == 0 {
		t.Error("Relaxed() = 0 for an overfull scene")
	}
}

func TestDrawListReplay(t *testing.T) {
	src := &DrawList{}
	src.Clear(Bounds{Width: 10, Height: 20})
	src.FillCircle(1, 2, 3, Palettes[0][1], 0.5)
	src.FillCircle(4, 5, 6, Palettes[0][2], 1)

	dst := &DrawList{}
	src.Replay(dst)

	if dst.Bounds != src.Bounds || dst.Clears != 1 || len(dst.Circles) != 2 {
		t.Fatalf("replay = %+v", dst)
	}
	for i := range src.Circles {
		if dst.Circles[i] != src.Circles[i] {
			t.Errorf("circle %d = %+v, want %+v", i, dst.Circles[i], src.Circles[i])
		}
	}
}

func TestFieldRebuildTooSmall(t *testing.T) {
	f := newTestField(30)
	dl := &DrawList{}

	tiny := Bounds{Width: 6, Height: 300}
	f.Rebuild(tiny)
	if got := len(f.Particles()); got != 0 {
		t.Fatalf("particles = %d in %v, want 0", got, tiny)
	}
	f.Step(Pointer{}, tiny, dl)
	if len(dl.Circles) != 0 || dl.Clears != 1 {
		t.Errorf("step drew %d circles, %d clears", len(dl.Circles), dl.Clears)
	}

	f.Rebuild(Bounds{Width: 300, Height: 300})
	if got := len(f.Particles()); got != 30 {
		t.Errorf("particles = %d after growing back, want 30", got)
	}
}
