package haptic

import (
	"context"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"time"
)

const DefaultQueueSize = 8

// to allow testing
var sleep = func(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Queue accepts patterns without blocking and plays them in order on a single motor.
type Queue struct {
	motor   Motor
	reqChan chan Pattern
}

func NewQueue(motor Motor, size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{
		motor:   motor,
		reqChan: make(chan Pattern, size),
	}
}

// Enqueue never blocks. A full queue drops the request.
func (q *Queue) Enqueue(p Pattern) {
	if len(p) == 0 {
		return
	}
	patCopy := append(Pattern(nil), p...)
	select {
	case q.reqChan <- patCopy:
	default:
		log.WithField("segments", len(p)).Warn("vibration queue full, dropping pattern")
	}
}

func (q *Queue) Pending() int {
	return len(q.reqChan)
}

func (q *Queue) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case p := <-q.reqChan:
			if err := q.play(ctx, p); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				log.WithField("err", err).Error("unable to play vibration pattern")
			}
		}
	}
}

func (q *Queue) play(ctx context.Context, p Pattern) error {
	log.WithField("pattern", p.Milliseconds()).Debug("playing vibration pattern")
	for i, d := range p {
		var err error
		if i%2 == 0 {
			err = q.motor.On()
		} else {
			err = q.motor.Off()
		}
		if err != nil {
			_ = q.motor.Off()
			return errors.Wrapf(err, "unable to drive motor for segment %d", i)
		}
		if err = sleep(ctx, d); err != nil {
			_ = q.motor.Off()
			return err
		}
	}
	// odd length patterns finish on an on segment
	if len(p)%2 == 1 {
		return errors.Wrap(q.motor.Off(), "unable to stop motor")
	}
	return nil
}
