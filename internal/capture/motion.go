package capture

import (
	"image"
	"sync"

	"gocv.io/x/gocv"
)

// Motion gate constants.
const (
	// blurKernel is the Gaussian kernel size used to suppress sensor noise.
	blurKernel = 21
	// pixelDelta is the per-pixel intensity change that counts as movement.
	pixelDelta = 25
)

// MotionGate decides whether a frame differs enough from the previous one to
// be worth running hand inference on. A still scene means any hands in it are
// still too, so the last published landmarks remain accurate.
type MotionGate struct {
	mu        sync.Mutex
	threshold float64
	prev      gocv.Mat
	primed    bool
}

// NewMotionGate creates a gate that opens when more than threshold percent of
// pixels change between consecutive frames. A threshold <= 0 opens on every frame.
func NewMotionGate(threshold float64) *MotionGate {
	return &MotionGate{
		threshold: threshold,
		prev:      gocv.NewMat(),
	}
}

// Open reports whether frame shows motion relative to the last frame passed in,
// along with the percentage of pixels that changed. The first frame always
// opens the gate so the source publishes an initial snapshot.
func (g *MotionGate) Open(frame *gocv.Mat) (bool, float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if frame == nil || frame.Empty() {
		return false, 0
	}
	if g.threshold <= 0 {
		return true, 100
	}

	gray := gocv.NewMat()
	defer gray.Close()
	if frame.Channels() > 1 {
		gocv.CvtColor(*frame, &gray, gocv.ColorBGRToGray)
	} else {
		frame.CopyTo(&gray)
	}

	blurred := gocv.NewMat()
	gocv.GaussianBlur(gray, &blurred, image.Pt(blurKernel, blurKernel), 0, 0, gocv.BorderDefault)

	if !g.primed {
		g.swap(blurred)
		g.primed = true
		return true, 100
	}

	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(blurred, g.prev, &diff)
	gocv.Threshold(diff, &diff, pixelDelta, 255, gocv.ThresholdBinary)

	changed := float64(gocv.CountNonZero(diff)) / float64(diff.Rows()*diff.Cols()) * 100.0
	g.swap(blurred)

	return changed > g.threshold, changed
}

// swap makes next the reference frame, taking ownership of it.
func (g *MotionGate) swap(next gocv.Mat) {
	g.prev.Close()
	g.prev = next
}

// Reset forgets the reference frame; the next frame opens the gate.
func (g *MotionGate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.swap(gocv.NewMat())
	g.primed = false
}

// Close releases the reference frame.
func (g *MotionGate) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prev.Close()
	g.primed = false
}
