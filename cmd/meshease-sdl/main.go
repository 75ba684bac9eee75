// Package main runs the mesh easing experiment in a bare SDL window driven
// from the keyboard.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/meshease/internal/app"
	"github.com/Faultbox/meshease/internal/config"
	"github.com/Faultbox/meshease/internal/engine/capture"
	"github.com/Faultbox/meshease/internal/engine/input"
	"github.com/Faultbox/meshease/internal/engine/renderer"
	"github.com/Faultbox/meshease/internal/engine/window"
	"github.com/Faultbox/meshease/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("fatal", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	win, err := window.New(cfg.Window, logger.Named("window"))
	if err != nil {
		return err
	}
	defer win.Close()

	r, err := renderer.New(logger.Named("renderer"))
	if err != nil {
		return err
	}
	defer r.Close()

	a, err := app.New(cfg, app.WithLogger(logger.Log))
	if err != nil {
		return err
	}
	defer a.Close()

	view := renderer.NewView(r, a, cfg.Camera)
	cam := view.Camera()
	in := input.New(input.DefaultBindings())
	capturer := capture.New(cfg.Window.CaptureDir, "meshease")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.Start(ctx)

	frameCount := 0
	fpsTimer := time.Now()
	running := true
	captureRequested := false

	for running {
		if in.Update() {
			break
		}

		width, height := win.Size()
		for _, ev := range in.Events() {
			switch ev.Type {
			case input.EventAction:
				if ev.Action == app.ActionCapture {
					captureRequested = true
				} else if !a.Do(ev.Action) {
					running = false
				}
			case input.EventWindowResize:
				width, height = ev.Width, ev.Height
			case input.EventDragStart:
				cam.BeginDrag()
			case input.EventDrag:
				cam.Drag(ev.DX, ev.DY, float32(height))
			case input.EventDragEnd:
				cam.EndDrag()
			}
		}

		a.Update()

		r.Resize(width, height)
		view.Render(int32(width), int32(height))
		if captureRequested {
			captureRequested = false
			pixels := renderer.ReadPixels(int32(width), int32(height))
			if name, err := capturer.Save(pixels, width, height); err != nil {
				logger.Warn("capture failed", zap.Error(err))
			} else {
				logger.Info("frame captured", zap.String("file", name))
			}
		}
		win.SwapBuffers()

		frameCount++
		if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
			fps := float64(frameCount) / elapsed.Seconds()
			win.SetTitle(fmt.Sprintf("%s - %s - %.0f fps", cfg.Window.Title, a.Status(), fps))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	logger.Info("main loop ended", zap.Uint64("frames", a.Driver().Frame()))
	return nil
}
