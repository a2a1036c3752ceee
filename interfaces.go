package cadence

import (
	"github.com/jd3nn1s/cadence/haptic"
	"github.com/jd3nn1s/cadence/mailbox"
)

// Vibrator accepts vibration requests without blocking.
type Vibrator interface {
	Enqueue(haptic.Pattern)
}

type Renderer interface {
	Render(Frame) error
}

type Mailbox = mailbox.Mailbox
