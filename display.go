package cadence

import (
	log "github.com/sirupsen/logrus"
)

type FieldID int

const (
	FieldNone FieldID = iota
	FieldSpeed
	FieldSpeedUnit
	FieldCadence
	FieldCadenceUnit
)

const fieldCount = 4

func (id FieldID) String() string {
	switch id {
	case FieldSpeed:
		return "speed"
	case FieldSpeedUnit:
		return "speedUnit"
	case FieldCadence:
		return "cadence"
	case FieldCadenceUnit:
		return "cadenceUnit"
	}
	return "none"
}

const (
	FontValue   = "bitham-42-bold"
	FontCaption = "gothic-14-bold"

	DefaultSpeedText       = "0.0"
	DefaultSpeedUnitText   = "km/h"
	DefaultCadenceText     = "0"
	DefaultCadenceUnitText = "RPM"

	captionOffsetY = 50
	captionHeight  = 20
)

// Field is one centred text region. Frame is relative to Parent when Parent is set.
type Field struct {
	ID         FieldID
	Parent     FieldID
	Text       string
	Background Colour
	TextColour Colour
	Font       string
	Frame      Rect
}

// Frame is a copy of everything a renderer needs to draw the screen.
type Frame struct {
	Bounds Rect
	Fields [fieldCount]Field
}

func (f Frame) Field(id FieldID) Field {
	if id <= FieldNone || int(id) > fieldCount {
		return Field{}
	}
	return f.Fields[id-1]
}

// Absolute returns the field rectangle in screen coordinates.
func (f Frame) Absolute(id FieldID) Rect {
	field := f.Field(id)
	if field.Parent == FieldNone {
		return field.Frame
	}
	parent := f.Absolute(field.Parent)
	return field.Frame.Offset(parent.X, parent.Y)
}

// Display owns the four fields of the speed/cadence screen.
type Display struct {
	frame  Frame
	closed bool
}

func NewDisplay(bounds Rect) *Display {
	if bounds.Empty() {
		bounds = Rect{W: DefaultScreenWidth, H: DefaultScreenHeight}
	}
	w := bounds.W
	upper := bounds.H / 2
	lower := bounds.H - upper

	d := &Display{}
	d.frame.Bounds = bounds
	d.set(Field{
		ID:         FieldSpeed,
		Text:       DefaultSpeedText,
		Background: ColourIslamicGreen,
		TextColour: ColourWhite,
		Font:       FontValue,
		Frame:      Rect{X: bounds.X, Y: bounds.Y, W: w, H: upper},
	})
	d.set(Field{
		ID:         FieldSpeedUnit,
		Parent:     FieldSpeed,
		Text:       DefaultSpeedUnitText,
		Background: ColourClear,
		TextColour: ColourWhite,
		Font:       FontCaption,
		Frame:      Rect{Y: captionOffsetY, W: w, H: captionHeight},
	})
	// bike is stopped when the app starts
	d.set(Field{
		ID:         FieldCadence,
		Text:       DefaultCadenceText,
		Background: ZoneLow.colour(),
		TextColour: ColourWhite,
		Font:       FontValue,
		Frame:      Rect{X: bounds.X, Y: bounds.Y + upper, W: w, H: lower},
	})
	d.set(Field{
		ID:         FieldCadenceUnit,
		Parent:     FieldCadence,
		Text:       DefaultCadenceUnitText,
		Background: ColourClear,
		TextColour: ColourWhite,
		Font:       FontCaption,
		Frame:      Rect{Y: captionOffsetY, W: w, H: captionHeight},
	})
	log.WithField("bounds", bounds).Debug("display initialized")
	return d
}

func (d *Display) set(f Field) {
	d.frame.Fields[f.ID-1] = f
}

func (d *Display) field(id FieldID) *Field {
	return &d.frame.Fields[id-1]
}

// Close releases the fields. Calls after the first are no-ops.
func (d *Display) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	d.frame.Fields = [fieldCount]Field{}
	log.Debug("display destroyed")
	return nil
}

func (d *Display) Closed() bool {
	return d.closed
}

func (d *Display) SetSpeedText(text string) {
	d.setText(FieldSpeed, text)
}

func (d *Display) SetCadenceText(text string) {
	d.setText(FieldCadence, text)
}

func (d *Display) SetCadenceZoneColour(c Colour) {
	if d.closed {
		log.Warn("cadence colour set on closed display")
		return
	}
	d.field(FieldCadence).Background = c
}

func (d *Display) setText(id FieldID, text string) {
	if d.closed {
		log.WithField("field", id).Warn("text set on closed display")
		return
	}
	d.field(id).Text = text
}

func (d *Display) Field(id FieldID) Field {
	return d.frame.Field(id)
}

func (d *Display) Snapshot() Frame {
	return d.frame
}
