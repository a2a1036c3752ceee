package cadence

import (
	"context"
	"github.com/jd3nn1s/cadence/mailbox"
	log "github.com/sirupsen/logrus"
	"sync"
	"sync/atomic"
)

const (
	channelBufferSize = 1
)

// Cadence owns the display state and applies inbound events one at a time.
type Cadence struct {
	display   *Display
	handler   *Handler
	renderers []Renderer
	mailbox   Mailbox
	testMode  bool
	degraded  atomic.Bool
	closeOnce sync.Once

	msgChan     chan Message
	dictChan    chan mailbox.Dict
	droppedChan chan mailbox.Result
}

func NewCadence(display *Display, handler *Handler) *Cadence {
	return &Cadence{
		display:     display,
		handler:     handler,
		msgChan:     make(chan Message, channelBufferSize),
		dictChan:    make(chan mailbox.Dict, channelBufferSize),
		droppedChan: make(chan mailbox.Result, channelBufferSize),
	}
}

func (c *Cadence) Display() *Display {
	return c.display
}

func (c *Cadence) AddRenderer(r Renderer) {
	c.renderers = append(c.renderers, r)
}

func (c *Cadence) SetTestMode(testMode bool) {
	c.testMode = testMode
}

// Degraded is true when the mailbox could not be opened, or stopped with an
// error, and no telemetry will arrive.
func (c *Cadence) Degraded() bool {
	return c.degraded.Load()
}

// OpenMailbox opens mb and starts it on its own goroutine. A failure is logged and
// leaves the app running without telemetry.
func (c *Cadence) OpenMailbox(ctx context.Context, mb Mailbox) bool {
	if err := mb.Open(mailbox.DefaultInboxSize, mailbox.DefaultOutboxSize); err != nil {
		log.WithField("err", err).Error("failed to open message buffer")
		c.degraded.Store(true)
		return false
	}
	c.mailbox = mb
	go func() {
		err := mb.Start(ctx, mailbox.Callbacks{
			Received: func(d mailbox.Dict) {
				_ = c.DeliverDict(ctx, d)
			},
			Dropped: func(r mailbox.Result) {
				_ = c.Drop(ctx, r)
			},
		})
		if err != nil && ctx.Err() == nil {
			log.WithField("err", err).Error("mailbox stopped")
			c.degraded.Store(true)
		}
	}()
	return true
}

func (c *Cadence) Deliver(ctx context.Context, msg Message) error {
	select {
	case c.msgChan <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Cadence) DeliverDict(ctx context.Context, d mailbox.Dict) error {
	select {
	case c.dictChan <- d:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Cadence) Drop(ctx context.Context, reason mailbox.Result) error {
	select {
	case c.droppedChan <- reason:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// CheckChannels waits for one inbound event and reports whether the display changed.
func (c *Cadence) CheckChannels(ctx context.Context) (changed bool) {
	select {
	case <-ctx.Done():
		return false
	case msg := <-c.msgChan:
		return c.handler.Handle(msg)
	case d := <-c.dictChan:
		return c.handler.HandleDict(d)
	case reason := <-c.droppedChan:
		c.handler.Dropped(reason)
		return false
	}
}

func (c *Cadence) FrameUpdate() {
	frame := c.display.Snapshot()
	for _, r := range c.renderers {
		if err := r.Render(frame); err != nil {
			log.WithField("err", err).Warn("unable to render frame")
		}
	}
}

func (c *Cadence) Run(ctx context.Context) error {
	c.FrameUpdate()
	if c.testMode {
		c.runTestMode(ctx)
	}
	for {
		if c.CheckChannels(ctx) {
			c.FrameUpdate()
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// Close stops the mailbox and tears down the display. Only the first call has an effect.
func (c *Cadence) Close() error {
	var err error
	c.closeOnce.Do(func() {
		if c.mailbox != nil {
			if closeErr := c.mailbox.Close(); closeErr != nil {
				log.WithField("err", closeErr).Warn("unable to close mailbox")
			}
		}
		err = c.display.Close()
	})
	return err
}
