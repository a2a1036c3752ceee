package cadence

import (
	"context"
	"github.com/jd3nn1s/cadence/haptic"
	"github.com/jd3nn1s/cadence/mailbox"
)

type vibratorStub struct {
	patterns []haptic.Pattern
}

func (v *vibratorStub) Enqueue(p haptic.Pattern) {
	v.patterns = append(v.patterns, p)
}

type rendererStub struct {
	frames chan Frame
	err    error
}

func createRendererStub() *rendererStub {
	return &rendererStub{
		frames: make(chan Frame, 16),
	}
}

func (r *rendererStub) Render(f Frame) error {
	r.frames <- f
	return r.err
}

type mailboxStub struct {
	openErr     error
	inboxSize   int
	outboxSize  int
	closed      bool
	startErr    error
	startedChan chan mailbox.Callbacks
}

func createMailboxStub() *mailboxStub {
	return &mailboxStub{
		startedChan: make(chan mailbox.Callbacks, 1),
	}
}

func (m *mailboxStub) Open(inboxSize, outboxSize int) error {
	m.inboxSize = inboxSize
	m.outboxSize = outboxSize
	return m.openErr
}

func (m *mailboxStub) Start(ctx context.Context, cb mailbox.Callbacks) error {
	m.startedChan <- cb
	if m.startErr != nil {
		return m.startErr
	}
	<-ctx.Done()
	return ctx.Err()
}

func (m *mailboxStub) Close() error {
	m.closed = true
	return nil
}

func newTestCadence() (*Cadence, *vibratorStub) {
	vibe := &vibratorStub{}
	display := NewDisplay(Rect{W: DefaultScreenWidth, H: DefaultScreenHeight})
	return NewCadence(display, NewHandler(display, vibe)), vibe
}
