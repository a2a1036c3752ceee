package render

import (
	"github.com/jd3nn1s/cadence"
	log "github.com/sirupsen/logrus"
)

// Log writes one line per frame, for headless runs.
type Log struct{}

func (Log) Render(f cadence.Frame) error {
	log.WithFields(log.Fields{
		"speed":         f.Field(cadence.FieldSpeed).Text,
		"speedUnit":     f.Field(cadence.FieldSpeedUnit).Text,
		"cadence":       f.Field(cadence.FieldCadence).Text,
		"cadenceUnit":   f.Field(cadence.FieldCadenceUnit).Text,
		"cadenceColour": cadence.HexColour(f.Field(cadence.FieldCadence).Background),
	}).Info("display")
	return nil
}
