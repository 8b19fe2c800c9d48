package render

import (
	"github.com/gdamore/tcell/v2"
)

// Canvas wraps the screen with palette-aware drawing
type Canvas struct {
	screen tcell.Screen
	color  bool
}

// Style returns a style for fg on bg, plain when color is off
func (c *Canvas) Style(fg, bg RGB) tcell.Style {
	if !c.color {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(fg.Color()).Background(bg.Color())
}

// Set draws one cell
func (c *Canvas) Set(x, y int, r rune, style tcell.Style) {
	c.screen.SetContent(x, y, r, nil, style)
}

// Text draws s from (x, y), clipped to width cells, returns cells used
func (c *Canvas) Text(x, y, width int, s string, style tcell.Style) int {
	n := 0
	for _, r := range s {
		if n >= width {
			break
		}
		c.screen.SetContent(x+n, y, r, nil, style)
		n++
	}
	return n
}

// Fill paints a rectangle with r
func (c *Canvas) Fill(x, y, w, h int, r rune, style tcell.Style) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			c.screen.SetContent(xx, yy, r, nil, style)
		}
	}
}
