// Package render draws display frames for a developer terminal or the log.
package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jd3nn1s/cadence"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"io"
	"os"
	"strings"
)

const clearScreen = "\x1b[H\x1b[2J"

// Scale is the number of screen pixels covered by one terminal cell.
type Scale struct {
	X, Y int
}

var DefaultScale = Scale{X: 6, Y: 12}

// Terminal draws the speed and cadence halves as coloured blocks.
type Terminal struct {
	w     io.Writer
	scale Scale
	clear bool
}

func NewTerminal(w io.Writer, scale Scale) *Terminal {
	if scale.X <= 0 || scale.Y <= 0 {
		scale = DefaultScale
	}
	return &Terminal{
		w:     w,
		scale: scale,
		clear: IsTerminal(w),
	}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (t *Terminal) Render(f cadence.Frame) error {
	out := lipgloss.JoinVertical(lipgloss.Left,
		t.half(f, cadence.FieldSpeed, cadence.FieldSpeedUnit),
		t.half(f, cadence.FieldCadence, cadence.FieldCadenceUnit))
	if t.clear {
		out = clearScreen + out
	}
	if _, err := io.WriteString(t.w, out+"\n"); err != nil {
		return errors.Wrap(err, "unable to write frame")
	}
	return nil
}

// half draws one value field with its caption overlaid at the caption's row.
func (t *Terminal) half(f cadence.Frame, valueID, captionID cadence.FieldID) string {
	value := f.Field(valueID)
	caption := f.Field(captionID)
	box := f.Absolute(valueID)

	cols := box.W / t.scale.X
	if cols < 1 {
		cols = 1
	}
	captionRow := caption.Frame.Y / t.scale.Y
	valueRow := captionRow / 2
	if captionRow <= valueRow {
		captionRow = valueRow + 1
	}
	rows := box.H / t.scale.Y
	if rows <= captionRow {
		rows = captionRow + 1
	}

	lines := make([]string, rows)
	lines[valueRow] = value.Text
	lines[captionRow] = caption.Text

	style := lipgloss.NewStyle().
		Width(cols).
		Align(lipgloss.Center).
		Bold(true).
		Background(lipgloss.Color(cadence.HexColour(value.Background))).
		Foreground(lipgloss.Color(cadence.HexColour(value.TextColour)))
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	return strings.Join(lines, "\n")
}
