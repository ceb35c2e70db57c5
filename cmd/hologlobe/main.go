package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ayusman/hologlobe/internal/app"
	"github.com/ayusman/hologlobe/internal/capture"
	"github.com/ayusman/hologlobe/internal/config"
	"github.com/ayusman/hologlobe/internal/detector"
	"github.com/ayusman/hologlobe/internal/engine"
	"github.com/ayusman/hologlobe/internal/log"
	"github.com/ayusman/hologlobe/internal/tray"
)

func main() {
	fmt.Println("Hologlobe - Hand-Controlled Holographic Globe")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	log.Init(cfg.LogLevel)

	catalog, err := config.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Error("failed to load subject catalog", "path", cfg.CatalogPath, "error", err)
		os.Exit(1)
	}

	cam := capture.NewCamera(capture.Config{
		DeviceID: cfg.CameraID,
		Width:    cfg.CaptureWidth,
		Height:   cfg.CaptureHeight,
		FPS:      cfg.CaptureFPS,
	})

	// Try MediaPipe first, fall back to mock detector
	var det detector.Detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		det = mp
		log.Info("using MediaPipe hand detection")
	} else {
		log.Warn("MediaPipe not available, using mock detector", "error", err)
		det = detector.NewMockDetector()
	}

	a := app.New(app.FromSettings(cfg), cam, det, capture.NewMotionGate(cfg.MotionThresh), catalog)
	if cfg.Subject != "" {
		if err := a.SetSubject(cfg.Subject); err != nil {
			log.Error("failed to select subject", "subject", cfg.Subject, "error", err)
			os.Exit(1)
		}
	}

	a.OnFrame(func(f engine.Frame) {
		if f.Tick%uint64(cfg.TickRate) == 0 {
			log.Debug("frame",
				"tick", f.Tick,
				"globe_mode", f.Globe.Mode,
				"scale", f.Globe.Scale,
				"rotation", f.Globe.Rotation,
				"panel_x", f.Panel.Position.X,
				"panel_y", f.Panel.Position.Y,
				"dragging", f.Panel.Dragging,
			)
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Start(ctx); err != nil {
		log.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Warn("shutdown", "error", err)
		}
	}()

	if !cfg.Tray {
		a.OnRegion(func(r engine.Region) { log.Info("region in view", "region", r) })
		<-ctx.Done()
		return
	}

	t := tray.New(catalog.Subjects, a.Subject().ID)
	t.OnToggle(a.SetEnabled)
	t.OnSubject(func(id string) {
		if err := a.SetSubject(id); err != nil {
			log.Warn("subject change rejected", "subject", id, "error", err)
		}
	})
	t.OnQuit(stop)
	a.OnRegion(func(r engine.Region) { t.SetRegion(r.String()) })

	go func() {
		<-ctx.Done()
		tray.Quit()
	}()

	// The tray event loop has to own the main thread.
	t.Run()
}
