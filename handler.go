package cadence

import (
	"github.com/jd3nn1s/cadence/mailbox"
	log "github.com/sirupsen/logrus"
)

// Handler applies telemetry messages to a Display and requests vibration cues.
type Handler struct {
	display *Display
	vibe    Vibrator
}

func NewHandler(display *Display, vibe Vibrator) *Handler {
	return &Handler{
		display: display,
		vibe:    vibe,
	}
}

// Handle reports whether the display state changed.
func (h *Handler) Handle(msg Message) bool {
	prev := h.display.Snapshot()

	if msg.Speed != nil {
		log.WithField("speed", *msg.Speed).Debug("updating speed")
		h.display.SetSpeedText(*msg.Speed)
	}

	if msg.Cadence != nil {
		text, clamped := FormatCadence(*msg.Cadence)
		if clamped {
			log.WithField("cadence", *msg.Cadence).
				WithField("displayed", text).
				Warn("cadence out of range")
		}
		log.WithField("cadence", text).Debug("updating cadence")
		h.display.SetCadenceText(text)
	}

	// unknown zones are not an error, just no feedback this time
	if msg.HasZone {
		if fb, ok := msg.Zone.Feedback(); ok {
			log.WithField("zone", msg.Zone).Debug("cadence zone feedback")
			if h.vibe != nil && !h.display.Closed() {
				h.vibe.Enqueue(fb.Pattern)
			}
			h.display.SetCadenceZoneColour(fb.Colour)
		}
	}

	return h.display.Snapshot() != prev
}

// HandleDict decodes d and applies it. Undecodable dictionaries change nothing.
func (h *Handler) HandleDict(d mailbox.Dict) bool {
	log.WithField("size", mailbox.Size(d)).Debug("received message from phone")
	msg, err := DecodeMessage(d)
	if err != nil {
		log.WithField("err", err).Error("message dropped: unable to decode")
		return false
	}
	return h.Handle(msg)
}

func (h *Handler) Dropped(reason mailbox.Result) {
	log.WithField("reason", int(reason)).
		WithField("reasonText", reason.String()).
		Error("message dropped")
}
