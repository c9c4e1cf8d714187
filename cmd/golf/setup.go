package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-golf/internal/config"
	"github.com/vovakirdan/tui-golf/internal/games/golf/course"
	"github.com/vovakirdan/tui-golf/internal/games/golf/surface"
	"github.com/vovakirdan/tui-golf/internal/platform/tui"
)

// loadConfig reads the configuration and applies the global flag overrides.
func loadConfig() (config.GolfConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	return cfg, cfg.Validate()
}

// loadCatalog reads the element templates named by --elements, or the
// built-in ones.
func loadCatalog() (*course.Catalog, error) {
	if flagElements == "" {
		return course.DefaultCatalog()
	}
	return course.LoadCatalog(flagElements)
}

// loadLibrary loads the template catalog and every course.
func loadLibrary() (*course.Library, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	return course.LoadLibrary(flagCourses, cat)
}

// openLog opens the log file. The terminal belongs to the game, so log
// output goes to ~/.golf/golf.log.
func openLog() (*log.Logger, io.Closer) {
	path := filepath.Join(config.Dir(), "golf.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard), io.NopCloser(nil)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(io.Discard), io.NopCloser(nil)
	}
	return log.NewWithOptions(f, log.Options{ReportTimestamp: true, Prefix: "golf"}), f
}

// newEnv builds the session environment shared by play and serve.
func newEnv(cfg config.GolfConfig, logger *log.Logger) (tui.Env, error) {
	lib, err := loadLibrary()
	if err != nil {
		logger.Error("cannot load courses", "dir", flagCourses, "err", err)
		return tui.Env{}, err
	}
	pal, err := surface.ParsePalette(cfg.Palette)
	if err != nil {
		return tui.Env{}, fmt.Errorf("palette: %w", err)
	}
	return tui.Env{
		Library: lib,
		Config:  cfg,
		Painter: newPainter(pal, cfg),
		Logger:  logger,
	}, nil
}

// newPainter paints holes from the template PNGs in --images, or in flat
// palette colors when no directory is given.
func newPainter(pal surface.Palette, cfg config.GolfConfig) *surface.Painter {
	var opts []surface.PainterOption
	if flagImages != "" {
		opts = append(opts, surface.WithImages(surface.NewFSImages(os.DirFS(flagImages))))
	}
	return surface.NewPainter(pal, cfg.Playfield.Width, cfg.Playfield.Height, opts...)
}
