package cadence

import (
	"strconv"
)

const (
	MinCadence = 0
	MaxCadence = 999
)

// FormatCadence renders rpm in at most three digits, clamping to [MinCadence, MaxCadence].
func FormatCadence(rpm int32) (text string, clamped bool) {
	switch {
	case rpm < MinCadence:
		rpm, clamped = MinCadence, true
	case rpm > MaxCadence:
		rpm, clamped = MaxCadence, true
	}
	return strconv.Itoa(int(rpm)), clamped
}
