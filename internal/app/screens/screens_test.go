package screens

import (
	"image"
	"testing"

	"github.com/frogg-app/app-tracker/internal/palette"
	"github.com/frogg-app/app-tracker/internal/render"
)

func testCanvas(vp Viewport, pal palette.Palette) *render.Canvas {
	fonts := &render.FontSource{
		RegularPath: "/nonexistent/fonts/Sans.ttf",
		BoldPath:    "/nonexistent/fonts/Sans-Bold.ttf",
	}
	return render.NewCanvas(vp.Width, vp.Height, pal.BG, fonts)
}

func TestDashboardMobileHeaderBand(t *testing.T) {
	pal := palette.For(palette.Light)
	c := testCanvas(Mobile, pal)
	Dashboard(c, pal, Mobile)

	// Band pixels away from the title text.
	for _, p := range []image.Point{{2, 2}, {370, 5}, {370, 58}} {
		if got := c.Image().RGBAAt(p.X, p.Y); got != pal.Card {
			t.Errorf("header pixel %v = %v, want card %v", p, got, pal.Card)
		}
	}
	// First row below the band is plain background at the margin.
	if got := c.Image().RGBAAt(2, 62); got != pal.BG {
		t.Errorf("below header = %v, want bg %v", got, pal.BG)
	}
}

func TestDashboardMobileCards(t *testing.T) {
	pal := palette.For(palette.Dark)
	c := testCanvas(Mobile, pal)
	Dashboard(c, pal, Mobile)

	// Four cards at y = 80, 190, 300, 410, each 100 tall with a
	// 2px border in the border color.
	for i := 0; i < 4; i++ {
		y := 80 + i*110
		if got := c.Image().RGBAAt(15, y); got != pal.Border {
			t.Errorf("card %d top border = %v, want %v", i, got, pal.Border)
		}
		if got := c.Image().RGBAAt(300, y+55); got != pal.Card {
			t.Errorf("card %d surface = %v, want %v", i, got, pal.Card)
		}
	}
}

func TestDashboardDesktopSidebar(t *testing.T) {
	pal := palette.For(palette.Light)
	c := testCanvas(Desktop, pal)
	Dashboard(c, pal, Desktop)

	if got := c.Image().RGBAAt(10, 1000); got != pal.Card {
		t.Errorf("sidebar = %v, want card %v", got, pal.Card)
	}
	// "Dashboard" entry highlighted at y in [100, 140).
	if got := c.Image().RGBAAt(200, 120); got != pal.Primary {
		t.Errorf("active nav entry = %v, want primary %v", got, pal.Primary)
	}
	// "Ports" entry not highlighted.
	if got := c.Image().RGBAAt(200, 170); got != pal.Card {
		t.Errorf("inactive nav entry = %v, want card %v", got, pal.Card)
	}
}

func TestPortsDesktopColumns(t *testing.T) {
	pal := palette.For(palette.Dark)
	c := testCanvas(Desktop, pal)
	Ports(c, pal, Desktop)

	// Sidebar with "Ports" highlighted at y in [150, 190).
	if got := c.Image().RGBAAt(100, 170); got != pal.Primary {
		t.Errorf("active nav entry = %v, want primary %v", got, pal.Primary)
	}

	// 7 columns means 6 separator rules in the data rows. The table
	// starts at x=286 with cells of width (1920-256-60)/7.
	contentX := 286
	cellWidth := (1920 - 256 - 60) / 7
	rowY := 150 + 40 + 10 // inside the first data row
	for i := 1; i <= 6; i++ {
		x := contentX + i*cellWidth
		if got := c.Image().RGBAAt(x, rowY); got != pal.Border {
			t.Errorf("separator %d at x=%d: %v, want border %v", i, x, got, pal.Border)
		}
	}
	// No separator beyond the last column.
	if got := c.Image().RGBAAt(contentX+7*cellWidth, rowY); got == pal.Border {
		t.Error("unexpected separator after the last column")
	}
}

func TestPortsMobileSearchBox(t *testing.T) {
	pal := palette.For(palette.Light)
	c := testCanvas(Mobile, pal)
	Ports(c, pal, Mobile)

	if got := c.Image().RGBAAt(15, 100); got != pal.Border {
		t.Errorf("search outline = %v, want border %v", got, pal.Border)
	}
	if got := c.Image().RGBAAt(300, 100); got != pal.Card {
		t.Errorf("search surface = %v, want card %v", got, pal.Card)
	}
}

func TestPlaceholderKeepsBackground(t *testing.T) {
	pal := palette.For(palette.Dark)
	for _, vp := range Viewports {
		c := testCanvas(vp, pal)
		Placeholder(c, pal, vp, "Services")
		if got := c.Image().RGBAAt(vp.Width-1, vp.Height-1); got != pal.BG {
			t.Errorf("%s corner = %v, want bg %v", vp.Name, got, pal.BG)
		}
		if got := c.Image().RGBAAt(2, 2); got != pal.Card {
			t.Errorf("%s header = %v, want card %v", vp.Name, got, pal.Card)
		}
	}
}
