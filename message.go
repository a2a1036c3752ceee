package cadence

import (
	"github.com/jd3nn1s/cadence/mailbox"
	"github.com/pkg/errors"
)

// dictionary keys shared with the phone app
const (
	KeySpeed       uint32 = 0
	KeyCadence     uint32 = 1
	KeyVibePattern uint32 = 2
)

// Message is one decoded telemetry update. Nil or unset fields mean no update.
type Message struct {
	Speed   *string
	Cadence *int32
	Zone    Zone
	HasZone bool
}

func SpeedMessage(speed string) Message {
	return Message{Speed: &speed}
}

func CadenceMessage(rpm int32) Message {
	return Message{Cadence: &rpm}
}

func ZoneMessage(z Zone) Message {
	return Message{Zone: z, HasZone: true}
}

// Merge returns m with every field present in o taking o's value.
func (m Message) Merge(o Message) Message {
	if o.Speed != nil {
		m.Speed = o.Speed
	}
	if o.Cadence != nil {
		m.Cadence = o.Cadence
	}
	if o.HasZone {
		m.Zone = o.Zone
		m.HasZone = true
	}
	return m
}

func (m Message) Empty() bool {
	return m.Speed == nil && m.Cadence == nil && !m.HasZone
}

// DecodeMessage rejects the whole dictionary if any known key has the wrong type.
func DecodeMessage(d mailbox.Dict) (Message, error) {
	msg := Message{}

	speed, ok, err := d.CString(KeySpeed)
	if err != nil {
		return Message{}, errors.Wrap(err, "speed")
	}
	if ok {
		msg.Speed = &speed
	}

	rpm, ok, err := d.Int32(KeyCadence)
	if err != nil {
		return Message{}, errors.Wrap(err, "cadence")
	}
	if ok {
		msg.Cadence = &rpm
	}

	code, ok, err := d.Int8(KeyVibePattern)
	if err != nil {
		return Message{}, errors.Wrap(err, "vibe pattern")
	}
	if ok {
		msg.Zone = DecodeZone(code)
		msg.HasZone = true
	}
	return msg, nil
}

// Dict encodes m the way the phone app sends it. ZoneUnknown encodes as code 0.
func (m Message) Dict() mailbox.Dict {
	d := mailbox.Dict{}
	if m.Speed != nil {
		d.Add(mailbox.NewCString(KeySpeed, *m.Speed))
	}
	if m.Cadence != nil {
		d.Add(mailbox.NewInt32(KeyCadence, *m.Cadence))
	}
	if m.HasZone {
		d.Add(mailbox.NewInt8(KeyVibePattern, m.Zone.Code()))
	}
	return d
}
