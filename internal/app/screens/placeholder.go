package screens

import (
	"fmt"

	"github.com/frogg-app/app-tracker/internal/palette"
	"github.com/frogg-app/app-tracker/internal/render"
)

// Placeholder draws the generic layout for pages without a bespoke
// design: a header plus two centered caption lines.
func Placeholder(c *render.Canvas, pal palette.Palette, vp Viewport, page string) {
	w, h := c.Size()

	title := page
	if vp.Name == Mobile.Name {
		title = "☰  " + page
	}
	drawHeader(c, pal, title, 18)

	caption := fmt.Sprintf("%s - %s Page", vp.Title, page)
	c.DrawText(caption, w/2-100, h/2, render.TextStyle{Size: 16, Color: pal.Text})
	c.DrawText("Responsive Layout ✓", w/2-80, h/2+30, render.TextStyle{Size: 14, Color: pal.Success})
}
