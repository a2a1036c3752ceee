package mailbox

import (
	"context"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// MaxBufferSize is the largest inbox or outbox that Open accepts.
	MaxBufferSize = 656

	DefaultInboxSize  = 64
	DefaultOutboxSize = 64
)

type DictFn func(Dict)
type ResultFn func(Result)

type Callbacks struct {
	Received DictFn
	Dropped  ResultFn
}

type Mailbox interface {
	Open(inboxSize, outboxSize int) error
	Start(context.Context, Callbacks) error
	Close() error
}

func checkSizes(inboxSize, outboxSize int) error {
	if inboxSize <= 0 || outboxSize <= 0 ||
		inboxSize > MaxBufferSize || outboxSize > MaxBufferSize {
		return errors.Wrapf(ResultOutOfMemory, "buffer sizes inbox=%d outbox=%d", inboxSize, outboxSize)
	}
	return nil
}

// deliver hands one raw payload to the callbacks, either decoded or as a drop.
func deliver(payload []byte, inboxSize int, cb Callbacks) {
	if len(payload) > inboxSize {
		log.WithField("size", len(payload)).
			WithField("inboxSize", inboxSize).
			Debug("payload exceeds inbox")
		cb.dropped(ResultBufferOverflow)
		return
	}
	d, err := Decode(payload)
	if err != nil {
		log.WithField("err", err).Debug("undecodable payload")
		cb.dropped(ResultInvalidArgs)
		return
	}
	if cb.Received == nil {
		log.Debug("no received callback registered")
		return
	}
	cb.Received(d)
}

func (cb Callbacks) dropped(r Result) {
	if cb.Dropped == nil {
		log.WithField("reason", r).Debug("no dropped callback registered")
		return
	}
	cb.Dropped(r)
}
