// Package palette holds the two color themes used by the mock
// screenshots. The values mirror the App Tracker web UI theme tokens.
package palette

import "image/color"

// Mode selects which color theme screenshots are drawn with.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Modes lists every supported mode in generation order.
var Modes = []Mode{Light, Dark}

func (m Mode) String() string { return string(m) }

// Palette maps semantic UI roles to concrete colors.
type Palette struct {
	BG            color.RGBA
	Card          color.RGBA
	Text          color.RGBA
	TextSecondary color.RGBA
	Border        color.RGBA
	Primary       color.RGBA
	Success       color.RGBA
}

var light = Palette{
	BG:            rgb(255, 255, 255),
	Card:          rgb(248, 250, 252),
	Text:          rgb(15, 23, 42),
	TextSecondary: rgb(100, 116, 139),
	Border:        rgb(226, 232, 240),
	Primary:       rgb(59, 130, 246),
	Success:       rgb(34, 197, 94),
}

var dark = Palette{
	BG:            rgb(15, 23, 42),
	Card:          rgb(30, 41, 59),
	Text:          rgb(248, 250, 252),
	TextSecondary: rgb(148, 163, 184),
	Border:        rgb(51, 65, 85),
	Primary:       rgb(96, 165, 250),
	Success:       rgb(74, 222, 128),
}

// For returns the palette for the given mode.
func For(m Mode) Palette {
	if m == Dark {
		return dark
	}
	return light
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
