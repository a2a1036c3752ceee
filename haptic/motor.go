package haptic

import (
	"io"

	log "github.com/sirupsen/logrus"
)

type Motor interface {
	On() error
	Off() error
}

// LogMotor has no hardware behind it and only records segments at debug level.
type LogMotor struct{}

func (LogMotor) On() error {
	log.Debug("vibration motor on")
	return nil
}

func (LogMotor) Off() error {
	log.Debug("vibration motor off")
	return nil
}

// BellMotor rings the terminal bell at the start of every on segment.
type BellMotor struct {
	W io.Writer
}

func (b *BellMotor) On() error {
	_, err := b.W.Write([]byte{'\a'})
	return err
}

func (b *BellMotor) Off() error {
	return nil
}
