// Package main is the entry point for the mesh easing experiment with the
// ImGui control panel.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/meshease/internal/app"
	"github.com/Faultbox/meshease/internal/config"
	"github.com/Faultbox/meshease/internal/engine/capture"
	"github.com/Faultbox/meshease/internal/engine/renderer"
	"github.com/Faultbox/meshease/internal/logger"
	"github.com/Faultbox/meshease/internal/ui"
)

func main() {
	runtime.LockOSThread()

	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if config.SaveRequested() {
		path, err := cfg.Save()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Save error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("config written to", path)
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== meshease ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("fatal", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("closed normally")
}

func run(cfg *config.Config) error {
	backend, err := ui.NewBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return err
	}

	a, err := app.New(cfg, app.WithLogger(logger.Log))
	if err != nil {
		return err
	}
	defer a.Close()

	r, err := renderer.New(logger.Named("renderer"))
	if err != nil {
		return err
	}
	defer r.Close()

	view := renderer.NewView(r, a, cfg.Camera)
	defer view.Close()

	panel := ui.NewPanel(a, view)
	capturer := capture.New(cfg.Window.CaptureDir, "meshease")
	panel.OnCapture = func() string {
		pixels, w, h := view.Snapshot()
		name, err := capturer.Save(pixels, w, h)
		if err != nil {
			logger.Warn("capture failed", zap.Error(err))
			return "capture failed: " + err.Error()
		}
		logger.Info("frame captured", zap.String("file", name))
		return "saved " + name
	}
	a.OnReady(func() {
		backend.SetWindowTitle(cfg.Window.Title + " - " + a.Controls().Mesh.String())
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.Start(ctx)

	backend.Run(func() {
		a.Update()
		panel.Draw()
	})
	return nil
}
