package haptic

import (
	"bytes"
	"context"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"sync"
	"testing"
	"time"
)

type motorStub struct {
	events chan string
	onErr  error
}

func createMotorStub() *motorStub {
	return &motorStub{
		events: make(chan string, 64),
	}
}

func (m *motorStub) On() error {
	m.events <- "on"
	return m.onErr
}

func (m *motorStub) Off() error {
	m.events <- "off"
	return nil
}

func noDelays() (chan time.Duration, func()) {
	origSleep := sleep
	slept := make(chan time.Duration, 64)
	sleep = func(ctx context.Context, d time.Duration) error {
		slept <- d
		return nil
	}
	return slept, func() {
		sleep = origSleep
	}
}

func readEvents(t *testing.T, ch chan string, n int) []string {
	var events []string
	for i := 0; i < n; i++ {
		select {
		case e := <-ch:
			events = append(events, e)
		case <-time.After(time.Second * 3):
			t.Fatalf("timed out after %d of %d motor events", i, n)
		}
	}
	return events
}

func TestMilliseconds(t *testing.T) {
	p := Milliseconds(100, 100, 400)
	assert.Equal(t, Pattern{100 * time.Millisecond, 100 * time.Millisecond, 400 * time.Millisecond}, p)
	assert.Equal(t, []uint32{100, 100, 400}, p.Milliseconds())
	assert.Equal(t, 600*time.Millisecond, p.Total())
	assert.Empty(t, Milliseconds())
}

func TestQueuePlaysSequentially(t *testing.T) {
	slept, restore := noDelays()
	defer restore()

	motor := createMotorStub()
	q := NewQueue(motor, 4)
	q.Enqueue(Milliseconds(100, 100, 100))
	q.Enqueue(Milliseconds(100, 100, 100, 100))
	assert.Equal(t, 2, q.Pending())

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		assert.Equal(t, context.Canceled, q.Run(ctx))
		wg.Done()
	}()

	// first pattern ends on an on segment so the motor is switched off afterwards
	assert.Equal(t, []string{"on", "off", "on", "off"}, readEvents(t, motor.events, 4))
	assert.Equal(t, []string{"on", "off", "on", "off"}, readEvents(t, motor.events, 4))

	cancel()
	wg.Wait()
	assert.Len(t, slept, 7)
	assert.Equal(t, 0, q.Pending())
}

func TestQueueDropsWhenFull(t *testing.T) {
	q := NewQueue(createMotorStub(), 1)
	q.Enqueue(Milliseconds(100))
	q.Enqueue(Milliseconds(200))
	assert.Equal(t, 1, q.Pending())
	assert.Equal(t, Milliseconds(100), <-q.reqChan)
}

func TestQueueIgnoresEmptyPattern(t *testing.T) {
	q := NewQueue(createMotorStub(), 0)
	q.Enqueue(nil)
	q.Enqueue(Pattern{})
	assert.Equal(t, 0, q.Pending())
	assert.Equal(t, DefaultQueueSize, cap(q.reqChan))
}

func TestEnqueueCopiesPattern(t *testing.T) {
	q := NewQueue(createMotorStub(), 1)
	p := Milliseconds(100, 100)
	q.Enqueue(p)
	p[0] = time.Second
	assert.Equal(t, Milliseconds(100, 100), <-q.reqChan)
}

func TestPlayMotorError(t *testing.T) {
	_, restore := noDelays()
	defer restore()

	motor := createMotorStub()
	motor.onErr = errors.New("fake error")
	q := NewQueue(motor, 1)
	err := q.play(context.Background(), Milliseconds(100, 100))
	assert.Error(t, err)
	assert.Equal(t, []string{"on", "off"}, readEvents(t, motor.events, 2))
}

func TestPlayCancelled(t *testing.T) {
	motor := createMotorStub()
	q := NewQueue(motor, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := q.play(ctx, Milliseconds(1000))
	assert.Equal(t, context.Canceled, err)
	assert.Equal(t, []string{"on", "off"}, readEvents(t, motor.events, 2))
}

func TestBellMotor(t *testing.T) {
	buf := &bytes.Buffer{}
	m := &BellMotor{W: buf}
	assert.NoError(t, m.On())
	assert.NoError(t, m.Off())
	assert.NoError(t, m.On())
	assert.Equal(t, "\a\a", buf.String())
	assert.NoError(t, LogMotor{}.On())
	assert.NoError(t, LogMotor{}.Off())
}
