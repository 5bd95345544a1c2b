package screens

import (
	"image"

	"github.com/frogg-app/app-tracker/internal/palette"
	"github.com/frogg-app/app-tracker/internal/render"
	"github.com/frogg-app/app-tracker/internal/render/layout"
)

const (
	headerHeight = 60
	sidebarWidth = 256
	cardHeight   = 100
	rowHeight    = 40
)

// drawHeader fills the top band and writes the page title.
func drawHeader(c *render.Canvas, pal palette.Palette, title string, size int) {
	band, _ := layout.SplitHorizontal(c.Bounds(), headerHeight)
	c.FillRect(band, pal.Card)
	c.DrawText(title, 15, 20, render.TextStyle{Size: size, Color: pal.Text, Bold: true})
}

// drawCard draws a bordered metric tile with up to three stacked lines.
func drawCard(c *render.Canvas, pal palette.Palette, rect image.Rectangle, card metricCard) {
	c.FillRect(rect, pal.Card)
	c.StrokeRect(rect, pal.Border, 2)
	x, y := rect.Min.X, rect.Min.Y
	if card.Label != "" {
		c.DrawText(card.Label, x+15, y+15, render.TextStyle{Size: 14, Color: pal.TextSecondary})
	}
	if card.Value != "" {
		c.DrawText(card.Value, x+15, y+40, render.TextStyle{Size: 24, Color: pal.Text, Bold: true})
	}
	if card.Subtext != "" {
		c.DrawText(card.Subtext, x+15, y+70, render.TextStyle{Size: 12, Color: pal.TextSecondary})
	}
}

// drawTableRow lays the cells of one row across width starting at
// (x, y). Header rows fill each cell and bold the label; separator
// rules sit on the right edge of every cell but the last.
func drawTableRow(c *render.Canvas, pal palette.Palette, x, y, width int, cols []string, isHeader bool) {
	row := image.Rect(x, y, x+width, y+rowHeight)
	cells := layout.Columns(row, len(cols))
	for i, cell := range cells {
		if isHeader {
			c.FillRect(cell, pal.Card)
			c.DrawText(cols[i], cell.Min.X+10, y+12, render.TextStyle{Size: 12, Color: pal.TextSecondary, Bold: true})
		} else {
			c.DrawText(cols[i], cell.Min.X+10, y+12, render.TextStyle{Size: 14, Color: pal.Text})
		}
		if i < len(cells)-1 {
			c.Line(cell.Max.X, y, cell.Max.X, y+rowHeight, pal.Border, 1)
		}
	}
}

// drawSidebar draws the desktop navigation rail with the entry at
// activeIndex highlighted.
func drawSidebar(c *render.Canvas, pal palette.Palette, activeIndex int) {
	rail, _ := layout.SplitVertical(c.Bounds(), sidebarWidth)
	c.FillRect(rail, pal.Card)
	c.DrawText("App Tracker", 20, 30, render.TextStyle{Size: 20, Color: pal.Text, Bold: true})

	for i, item := range navItems {
		y := 100 + i*50
		if i == activeIndex {
			c.FillRect(image.Rect(20, y, sidebarWidth-20, y+40), pal.Primary)
			c.DrawText(item, 35, y+10, render.TextStyle{Size: 16, Color: pal.BG})
		} else {
			c.DrawText(item, 35, y+10, render.TextStyle{Size: 16, Color: pal.TextSecondary})
		}
	}
}
