// Package screens draws the mock page layouts. Each function renders
// one page onto a canvas using a palette and viewport; nothing is
// shared between calls.
package screens

// Viewport is one of the three target screen-size classes.
type Viewport struct {
	Name   string
	Title  string
	Width  int
	Height int
}

var (
	Mobile  = Viewport{Name: "mobile", Title: "Mobile", Width: 375, Height: 667}
	Tablet  = Viewport{Name: "tablet", Title: "Tablet", Width: 768, Height: 1024}
	Desktop = Viewport{Name: "desktop", Title: "Desktop", Width: 1920, Height: 1080}
)

// Viewports lists every viewport in generation order.
var Viewports = []Viewport{Mobile, Tablet, Desktop}
