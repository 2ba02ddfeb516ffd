package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw converts the framebuffer to terminal cells and draws them on
// the screen. Each terminal row shows 2 framebuffer rows using the
// upper-half-block character with fg=top color and bg=bottom color,
// doubling the vertical resolution.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col < fb.Width; col++ {
			topColor := fb.GetPixel(col, topY)
			botColor := fb.GetPixel(col, botY)

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(topColor),
					Bg: rgbaToColor(botColor),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}

// TerminalRenderer presents framebuffers on a terminal.
type TerminalRenderer struct {
	term   *uv.Terminal
	width  int // terminal columns
	height int // terminal rows
}

// NewTerminalRenderer creates a renderer for a terminal of the given
// size in character cells.
func NewTerminalRenderer(term *uv.Terminal, width, height int) *TerminalRenderer {
	return &TerminalRenderer{
		term:   term,
		width:  width,
		height: height,
	}
}

// FramebufferSize returns the pixel dimensions a framebuffer should
// have for this terminal: one column per pixel, two pixel rows per
// terminal row.
func (r *TerminalRenderer) FramebufferSize() (width, height int) {
	return r.width, r.height * 2
}

// Render draws the framebuffer into the terminal's cell buffer.
func (r *TerminalRenderer) Render(fb *Framebuffer) {
	fb.Draw(r.term, uv.Rect(0, 0, r.width, r.height))
}

// Flush presents the pending cell buffer to the terminal.
func (r *TerminalRenderer) Flush() error {
	return r.term.Display()
}
