// Package haptic plays vibration patterns on a motor, one pattern at a time.
package haptic

import (
	"time"
)

// Pattern is an ordered list of alternating on/off durations, starting with on.
type Pattern []time.Duration

func Milliseconds(ms ...uint32) Pattern {
	p := make(Pattern, len(ms))
	for i, v := range ms {
		p[i] = time.Duration(v) * time.Millisecond
	}
	return p
}

// Milliseconds returns the segment durations in milliseconds.
func (p Pattern) Milliseconds() []uint32 {
	ms := make([]uint32, len(p))
	for i, d := range p {
		ms[i] = uint32(d / time.Millisecond)
	}
	return ms
}

func (p Pattern) Total() time.Duration {
	var total time.Duration
	for _, d := range p {
		total += d
	}
	return total
}
