package capture

import (
	"errors"
	"testing"
)

func TestNewCamera(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantFPS int
	}{
		{
			name:    "zero config uses defaults",
			config:  Config{},
			wantFPS: DefaultFPS,
		},
		{
			name:    "explicit rate is kept",
			config:  Config{DeviceID: 1, FPS: 15},
			wantFPS: 15,
		},
		{
			name:    "negative rate falls back",
			config:  Config{DeviceID: 2, FPS: -1},
			wantFPS: DefaultFPS,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(tt.config)

			if got := cam.FPS(); got != tt.wantFPS {
				t.Errorf("FPS() = %d, want %d", got, tt.wantFPS)
			}
			if cam.IsOpen() {
				t.Error("camera should not be open initially")
			}
		})
	}
}

func TestCamera_SetFPS(t *testing.T) {
	cam := NewCamera(DefaultConfig())

	steps := []struct {
		fps     int
		wantFPS int
	}{
		{fps: 10, wantFPS: 10},
		{fps: 60, wantFPS: 60},
		{fps: 0, wantFPS: 60},
		{fps: -5, wantFPS: 60},
	}

	for _, s := range steps {
		cam.SetFPS(s.fps)
		if got := cam.FPS(); got != s.wantFPS {
			t.Errorf("after SetFPS(%d) FPS() = %d, want %d", s.fps, got, s.wantFPS)
		}
	}
}

func TestCamera_ReadFrameWhenClosed(t *testing.T) {
	cam := NewCamera(DefaultConfig())

	frame, err := cam.ReadFrame()
	if !errors.Is(err, ErrCameraNotOpen) {
		t.Errorf("ReadFrame() error = %v, want %v", err, ErrCameraNotOpen)
	}
	if frame != nil {
		t.Error("expected nil frame from closed camera")
	}
}

func TestCamera_CloseWhenNotOpen(t *testing.T) {
	cam := NewCamera(DefaultConfig())
	if err := cam.Close(); err != nil {
		t.Errorf("Close() on unopened camera error = %v", err)
	}
}
