package capture

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestMotionGate_FirstFrameOpens(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	g := NewMotionGate(1.0)
	defer g.Close()

	frame := gocv.NewMatWithSize(120, 160, gocv.MatTypeCV8UC3)
	defer frame.Close()

	if open, _ := g.Open(&frame); !open {
		t.Error("first frame should open the gate")
	}
}

func TestMotionGate_StillScene(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	g := NewMotionGate(1.0)
	defer g.Close()

	a := gocv.NewMatWithSize(120, 160, gocv.MatTypeCV8UC3)
	defer a.Close()
	b := gocv.NewMatWithSize(120, 160, gocv.MatTypeCV8UC3)
	defer b.Close()

	g.Open(&a)
	open, changed := g.Open(&b)
	if open {
		t.Errorf("identical frames should keep the gate closed, changed = %f", changed)
	}
}

func TestMotionGate_Movement(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	g := NewMotionGate(1.0)
	defer g.Close()

	black := gocv.NewMatWithSize(120, 160, gocv.MatTypeCV8UC3)
	defer black.Close()
	white := gocv.NewMatWithSize(120, 160, gocv.MatTypeCV8UC3)
	defer white.Close()
	white.SetTo(gocv.NewScalar(255, 255, 255, 0))

	g.Open(&black)
	open, changed := g.Open(&white)
	if !open {
		t.Errorf("black to white should open the gate, changed = %f", changed)
	}
	if changed < 90 {
		t.Errorf("expected most pixels to change, got %f", changed)
	}
}

func TestMotionGate_Disabled(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	g := NewMotionGate(0)
	defer g.Close()

	frame := gocv.NewMatWithSize(120, 160, gocv.MatTypeCV8UC3)
	defer frame.Close()

	for i := 0; i < 3; i++ {
		if open, _ := g.Open(&frame); !open {
			t.Errorf("frame %d: disabled gate should always open", i)
		}
	}
}

func TestMotionGate_ResetReprimes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	g := NewMotionGate(1.0)
	defer g.Close()

	frame := gocv.NewMatWithSize(120, 160, gocv.MatTypeCV8UC3)
	defer frame.Close()

	g.Open(&frame)
	if open, _ := g.Open(&frame); open {
		t.Fatal("repeat frame should keep the gate closed")
	}

	g.Reset()
	if open, _ := g.Open(&frame); !open {
		t.Error("first frame after Reset should open the gate")
	}
}

func TestMotionGate_NilFrame(t *testing.T) {
	g := NewMotionGate(1.0)
	defer g.Close()

	if open, changed := g.Open(nil); open || changed != 0 {
		t.Errorf("nil frame: open = %v, changed = %f", open, changed)
	}
}
