// Package render provides the raster canvas that page layouts draw
// into before it is encoded to a PNG file.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Canvas is an in-memory RGBA raster private to one screenshot.
type Canvas struct {
	img   *image.RGBA
	fonts *FontSource
}

// NewCanvas returns a w×h canvas filled with bg.
func NewCanvas(w, h int, bg color.RGBA, fonts *FontSource) *Canvas {
	if fonts == nil {
		fonts = NewFontSource()
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	return &Canvas{img: img, fonts: fonts}
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (width int, height int) {
	bounds := c.img.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// Bounds returns the canvas rectangle anchored at the origin.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// Image exposes the backing raster, mainly for pixel assertions.
func (c *Canvas) Image() *image.RGBA { return c.img }

// FillRect fills rect with a solid color.
func (c *Canvas) FillRect(rect image.Rectangle, fill color.RGBA) {
	draw.Draw(c.img, rect.Intersect(c.img.Bounds()), &image.Uniform{C: fill}, image.Point{}, draw.Src)
}

// StrokeRect draws a width-px outline just inside rect.
func (c *Canvas) StrokeRect(rect image.Rectangle, outline color.RGBA, width int) {
	if width <= 0 {
		return
	}
	bands := []image.Rectangle{
		image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+width),
		image.Rect(rect.Min.X, rect.Max.Y-width, rect.Max.X, rect.Max.Y),
		image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+width, rect.Max.Y),
		image.Rect(rect.Max.X-width, rect.Min.Y, rect.Max.X, rect.Max.Y),
	}
	for _, band := range bands {
		c.FillRect(band, outline)
	}
}

// Line draws an axis-aligned segment of the given thickness.
// Page layouts only need horizontal and vertical rules.
func (c *Canvas) Line(x0, y0, x1, y1 int, fill color.RGBA, width int) {
	if width <= 0 {
		return
	}
	switch {
	case x0 == x1:
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		c.FillRect(image.Rect(x0, y0, x0+width, y1), fill)
	case y0 == y1:
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		c.FillRect(image.Rect(x0, y0, x1, y0+width), fill)
	}
}

// TextStyle describes how a string is rendered.
type TextStyle struct {
	Size  int
	Color color.RGBA
	Bold  bool
}

// DrawText renders text with its top-left corner at (x, y).
func (c *Canvas) DrawText(text string, x, y int, style TextStyle) {
	face := c.fonts.Face(style.Size, style.Bold)
	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(style.Color),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	drawer.DrawString(text)
}

// MeasureText returns the advance width of text in pixels.
func (c *Canvas) MeasureText(text string, style TextStyle) int {
	drawer := &font.Drawer{Face: c.fonts.Face(style.Size, style.Bold)}
	return drawer.MeasureString(text).Ceil()
}

// SavePNG encodes the canvas to path, overwriting any existing file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, c.img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
