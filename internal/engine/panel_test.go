package engine

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayusman/hologlobe/internal/detector"
	"github.com/ayusman/hologlobe/internal/gesture"
)

var testScreen = Size{Width: 1000, Height: 800}

func rightHand(palmX, palmY, pinch float64) gesture.Classification {
	h := detector.HandAt(detector.Right, palmX, palmY, pinch)
	return gesture.Classify(&h, DefaultPanelConfig().PinchThreshold)
}

func TestNewPanel_StartsNearRightEdge(t *testing.T) {
	p := NewPanel(DefaultPanelConfig(), Size{Width: 1920, Height: 1080})
	s := p.State()

	assert.Equal(t, math32.Vector2{X: 1500, Y: 100}, s.Position)
	assert.Equal(t, s.Position, s.Target)
	assert.False(t, s.Dragging)
}

func TestPanel_PinchScenario(t *testing.T) {
	p := NewPanel(DefaultPanelConfig(), testScreen)

	s := p.Tick(rightHand(0.3, 0.4, 0.02), testScreen)

	assert.True(t, s.Dragging)
	assert.Equal(t, ModeDrag, s.Mode)
	assert.InDelta(t, 500, s.Target.X, 1e-3)
	assert.InDelta(t, 220, s.Target.Y, 1e-3)
	// One smoothing step from (580, 100).
	assert.InDelta(t, 580+(500-580)*0.1, s.Position.X, 1e-3)
	assert.InDelta(t, 100+(220-100)*0.1, s.Position.Y, 1e-3)
}

func TestPanel_AbsentHandFreezes(t *testing.T) {
	p := NewPanel(DefaultPanelConfig(), testScreen)
	p.Tick(rightHand(0.3, 0.4, 0.02), testScreen)
	before := p.State()

	for i := 0; i < 5; i++ {
		s := p.Tick(gesture.Classification{}, testScreen)
		assert.False(t, s.Dragging)
		assert.Equal(t, ModeIdle, s.Mode)
		assert.Equal(t, before.Position, s.Position)
	}
}

func TestPanel_ReleaseFlipsFlagAndKeepsGliding(t *testing.T) {
	p := NewPanel(DefaultPanelConfig(), testScreen)
	pinch := rightHand(0.3, 0.4, 0.02)
	open := rightHand(0.6, 0.6, 0.2)

	for i := 0; i < 3; i++ {
		require.True(t, p.Tick(pinch, testScreen).Dragging)
	}
	target := p.State().Target

	prev := p.State().Position
	s := p.Tick(open, testScreen)
	assert.False(t, s.Dragging, "flag flips on the first open frame")
	assert.Equal(t, ModeHold, s.Mode)
	assert.Equal(t, target, s.Target, "open hand does not retarget")

	for i := 0; i < 5; i++ {
		assert.NotEqual(t, prev, s.Position)
		assert.Less(t, dist2(s.Position, target), dist2(prev, target))
		prev = s.Position
		s = p.Tick(open, testScreen)
		assert.False(t, s.Dragging)
	}
}

func TestPanel_OpenHandBeforeDragHolds(t *testing.T) {
	p := NewPanel(DefaultPanelConfig(), testScreen)
	start := p.State().Position

	s := p.Tick(rightHand(0.1, 0.1, 0.3), testScreen)
	assert.Equal(t, ModeHold, s.Mode)
	assert.Equal(t, start, s.Position)
}

func dist2(a, b math32.Vector2) float32 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}
