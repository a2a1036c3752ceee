package cadence

import (
	"github.com/jd3nn1s/cadence/haptic"
)

// Zone is a cadence feedback band. Raw wire codes are decoded once with DecodeZone.
type Zone int

const (
	ZoneUnknown Zone = iota
	ZoneLow
	ZoneGood
	ZoneHigh
)

// wire codes sent by the phone
const (
	codeLow  int8 = 1
	codeHigh int8 = 2
	codeGood int8 = 3
)

type Feedback struct {
	Colour  Colour
	Pattern haptic.Pattern
}

var zoneFeedback = map[Zone]Feedback{
	ZoneLow: {
		Colour:  ColourDarkCandyAppleRed,
		Pattern: haptic.Milliseconds(100, 100, 100, 100, 400),
	},
	ZoneHigh: {
		Colour:  ColourDukeBlue,
		Pattern: haptic.Milliseconds(100, 100, 100, 100, 100),
	},
	ZoneGood: {
		Colour:  ColourIslamicGreen,
		Pattern: haptic.Milliseconds(100, 100, 100),
	},
}

func DecodeZone(code int8) Zone {
	switch code {
	case codeLow:
		return ZoneLow
	case codeHigh:
		return ZoneHigh
	case codeGood:
		return ZoneGood
	}
	return ZoneUnknown
}

// Code is the wire value for z, 0 for ZoneUnknown.
func (z Zone) Code() int8 {
	switch z {
	case ZoneLow:
		return codeLow
	case ZoneHigh:
		return codeHigh
	case ZoneGood:
		return codeGood
	}
	return 0
}

func (z Zone) String() string {
	switch z {
	case ZoneLow:
		return "low"
	case ZoneGood:
		return "good"
	case ZoneHigh:
		return "high"
	}
	return "unknown"
}

// Feedback returns the colour and vibration bound to z. The pattern is a copy.
func (z Zone) Feedback() (Feedback, bool) {
	fb, ok := zoneFeedback[z]
	if !ok {
		return Feedback{}, false
	}
	fb.Pattern = append(haptic.Pattern(nil), fb.Pattern...)
	return fb, true
}

func (z Zone) colour() Colour {
	return zoneFeedback[z].Colour
}
