// Package app drives screenshot generation: it walks the theme ×
// viewport × page matrix and writes one PNG per combination.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/frogg-app/app-tracker/internal/app/screens"
	"github.com/frogg-app/app-tracker/internal/palette"
	"github.com/frogg-app/app-tracker/internal/render"
)

// DefaultOutDir is where the e2e suite expects the screenshots.
const DefaultOutDir = "e2e/screenshots/chromium"

// placeholderPages are the pages rendered with the generic layout.
var placeholderPages = []struct {
	Name  string
	Title string
}{
	{Name: "services", Title: "Services"},
	{Name: "processes", Title: "Processes"},
	{Name: "containers", Title: "Containers"},
}

// Generator renders the full screenshot matrix under OutDir.
type Generator struct {
	OutDir string
	Logger *zap.Logger
	Fonts  *render.FontSource

	written int
}

func NewGenerator(outDir string, logger *zap.Logger) *Generator {
	if outDir == "" {
		outDir = DefaultOutDir
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{OutDir: outDir, Logger: logger, Fonts: render.NewFontSource()}
}

// Run draws every combination and writes the PNG files. Directory
// creation and file writes are idempotent, so reruns are safe and
// overwrite in place.
func (g *Generator) Run() error {
	if err := g.ensureDirs(); err != nil {
		return err
	}
	g.written = 0

	for _, mode := range palette.Modes {
		pal := palette.For(mode)
		g.Logger.Info("generating screenshots", zap.String("mode", mode.String()))

		for _, vp := range screens.Viewports {
			c := g.newCanvas(vp, pal)
			screens.Dashboard(c, pal, vp)
			if err := g.save(c, vp, mode, "dashboard"); err != nil {
				return err
			}
		}

		for _, vp := range []screens.Viewport{screens.Mobile, screens.Desktop} {
			c := g.newCanvas(vp, pal)
			screens.Ports(c, pal, vp)
			if err := g.save(c, vp, mode, "ports"); err != nil {
				return err
			}
		}

		c := g.newCanvas(screens.Tablet, pal)
		screens.TabletPorts(c, pal)
		if err := g.save(c, screens.Tablet, mode, "ports"); err != nil {
			return err
		}

		for _, vp := range screens.Viewports {
			for _, page := range placeholderPages {
				c := g.newCanvas(vp, pal)
				screens.Placeholder(c, pal, vp, page.Title)
				if err := g.save(c, vp, mode, page.Name); err != nil {
					return err
				}
			}
		}
	}

	g.Logger.Info("screenshots generated",
		zap.Int("count", g.written),
		zap.String("dir", g.OutDir),
	)
	return nil
}

// Written reports how many files the last Run produced.
func (g *Generator) Written() int { return g.written }

func (g *Generator) newCanvas(vp screens.Viewport, pal palette.Palette) *render.Canvas {
	return render.NewCanvas(vp.Width, vp.Height, pal.BG, g.Fonts)
}

func (g *Generator) save(c *render.Canvas, vp screens.Viewport, mode palette.Mode, page string) error {
	path := filepath.Join(g.OutDir, vp.Name, mode.String(), page+".png")
	if err := c.SavePNG(path); err != nil {
		return err
	}
	g.written++
	g.Logger.Debug("wrote screenshot",
		zap.String("viewport", vp.Name),
		zap.String("mode", mode.String()),
		zap.String("page", page),
	)
	return nil
}

func (g *Generator) ensureDirs() error {
	for _, vp := range screens.Viewports {
		for _, mode := range palette.Modes {
			dir := filepath.Join(g.OutDir, vp.Name, mode.String())
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output dir %s: %w", dir, err)
			}
		}
	}
	return nil
}
