package cadence

import (
	"fmt"
	"image/color"
)

const (
	DefaultScreenWidth  = 144
	DefaultScreenHeight = 168
)

type Rect struct {
	X, Y, W, H int
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Overlaps reports whether r and o share at least one pixel.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

func (r Rect) Offset(x, y int) Rect {
	r.X += x
	r.Y += y
	return r
}

type Colour = color.RGBA

var (
	ColourClear             = Colour{}
	ColourWhite             = Colour{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColourDarkCandyAppleRed = Colour{R: 0xaa, A: 0xff}
	ColourIslamicGreen      = Colour{G: 0xaa, A: 0xff}
	ColourDukeBlue          = Colour{B: 0xaa, A: 0xff}
)

// HexColour formats c as #rrggbb, ignoring alpha.
func HexColour(c Colour) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
