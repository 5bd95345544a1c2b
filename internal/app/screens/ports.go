package screens

import (
	"image"

	"github.com/frogg-app/app-tracker/internal/palette"
	"github.com/frogg-app/app-tracker/internal/render"
)

// Ports draws the open-ports page. Mobile shows a reduced 4-column
// table with a swipe hint; desktop shows all 7 columns next to the
// sidebar. The tablet variant is TabletPorts.
func Ports(c *render.Canvas, pal palette.Palette, vp Viewport) {
	if vp.Name == Mobile.Name {
		portsMobile(c, pal)
		return
	}
	portsDesktop(c, pal)
}

func portsMobile(c *render.Canvas, pal palette.Palette) {
	w, _ := c.Size()
	drawHeader(c, pal, "☰  Ports", 18)

	// Search input placeholder
	search := image.Rect(15, 80, w-15, 120)
	c.FillRect(search, pal.Card)
	c.StrokeRect(search, pal.Border, 2)
	c.DrawText("🔍 Search by port...", 25, 92, render.TextStyle{Size: 14, Color: pal.TextSecondary})

	tableY := 140
	tableWidth := w - 30
	drawTableRow(c, pal, 15, tableY, tableWidth, portColumnsMobile, true)
	for i, row := range portRowsMobile {
		drawTableRow(c, pal, 15, tableY+rowHeight+i*rowHeight, tableWidth, row, false)
	}

	footerY := tableY + rowHeight + len(portRowsMobile)*rowHeight + 10
	c.FillRect(image.Rect(15, footerY, w-15, footerY+35), pal.Card)
	c.DrawText("Showing 4 ports", 25, footerY+8, render.TextStyle{Size: 11, Color: pal.TextSecondary})
	c.DrawText("• Swipe table to see more →", 25, footerY+20, render.TextStyle{Size: 11, Color: pal.TextSecondary})
}

func portsDesktop(c *render.Canvas, pal palette.Palette) {
	w, _ := c.Size()
	drawSidebar(c, pal, 1)
	contentX := sidebarWidth + 30

	c.DrawText("Open Ports", contentX, 30, render.TextStyle{Size: 28, Color: pal.Text, Bold: true})

	search := image.Rect(contentX, 80, contentX+400, 120)
	c.FillRect(search, pal.Card)
	c.StrokeRect(search, pal.Border, 2)
	c.DrawText("🔍 Search by port...", contentX+15, 92, render.TextStyle{Size: 14, Color: pal.TextSecondary})

	tableY := 150
	tableWidth := w - sidebarWidth - 60
	drawTableRow(c, pal, contentX, tableY, tableWidth, portColumnsDesktop, true)
	for i, row := range portRowsDesktop {
		drawTableRow(c, pal, contentX, tableY+rowHeight+i*rowHeight, tableWidth, row, false)
	}

	footerY := tableY + rowHeight + len(portRowsDesktop)*rowHeight + 10
	c.FillRect(image.Rect(contentX, footerY, contentX+tableWidth, footerY+30), pal.Card)
	c.DrawText("Showing 4 ports", contentX+15, footerY+8, render.TextStyle{Size: 12, Color: pal.TextSecondary})
}

// TabletPorts is the simplified tablet rendition of the ports page.
// The reduced tablet column set is still undecided upstream, so this
// stays a bespoke caption layout rather than a real table.
func TabletPorts(c *render.Canvas, pal palette.Palette) {
	w, h := c.Size()
	drawHeader(c, pal, "Ports", 18)
	c.DrawText("Tablet - Ports Page", w/2-80, h/2, render.TextStyle{Size: 16, Color: pal.Text})
	c.DrawText("5 Columns Visible ✓", w/2-75, h/2+30, render.TextStyle{Size: 14, Color: pal.Success})
}
