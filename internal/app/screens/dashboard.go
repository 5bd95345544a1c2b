package screens

import (
	"image"

	"github.com/frogg-app/app-tracker/internal/palette"
	"github.com/frogg-app/app-tracker/internal/render"
	"github.com/frogg-app/app-tracker/internal/render/layout"
)

// Dashboard draws the dashboard page for the given viewport: metric
// cards stacked on mobile, a 2x2 grid on tablet, and a sidebar plus a
// single card row on desktop.
func Dashboard(c *render.Canvas, pal palette.Palette, vp Viewport) {
	switch vp.Name {
	case Mobile.Name:
		dashboardMobile(c, pal)
	case Tablet.Name:
		dashboardTablet(c, pal)
	default:
		dashboardDesktop(c, pal)
	}
}

func dashboardMobile(c *render.Canvas, pal palette.Palette) {
	_, h := c.Size()
	drawHeader(c, pal, "☰  Dashboard", 18)

	content := layout.Inset(c.Bounds(), 15)
	y := 80
	for _, card := range dashboardCards {
		drawCard(c, pal, image.Rect(content.Min.X, y, content.Max.X, y+cardHeight), card)
		y += cardHeight + 10
	}

	c.DrawText("Mobile Optimized ✓", 15, h-40, render.TextStyle{Size: 12, Color: pal.TextSecondary})
}

func dashboardTablet(c *render.Canvas, pal palette.Palette) {
	w, _ := c.Size()
	drawHeader(c, pal, "Dashboard", 20)

	cardWidth := (w - 60) / 2
	for i, card := range dashboardCards {
		x := 15 + (i%2)*(cardWidth+30)
		y := 80 + (i/2)*120
		drawCard(c, pal, image.Rect(x, y, x+cardWidth, y+cardHeight), card)
	}
}

func dashboardDesktop(c *render.Canvas, pal palette.Palette) {
	w, _ := c.Size()
	drawSidebar(c, pal, 0)
	contentX := sidebarWidth + 30

	c.DrawText("Dashboard", contentX, 30, render.TextStyle{Size: 28, Color: pal.Text, Bold: true})
	c.DrawText("System overview and real-time metrics", contentX, 65, render.TextStyle{Size: 14, Color: pal.TextSecondary})

	cardWidth := (w - sidebarWidth - 150) / 4
	for i, card := range dashboardCards {
		x := contentX + i*(cardWidth+20)
		drawCard(c, pal, image.Rect(x, 110, x+cardWidth, 110+cardHeight), card)
	}
}
