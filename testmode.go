package cadence

import (
	"context"
	"fmt"
	"time"
)

const (
	lowCadenceBelow  = 70
	highCadenceAbove = 95

	maxRideSpeedTenths = 450
	maxRideCadence     = 120

	rideInterval = time.Millisecond * 250
)

// ZoneForCadence is the banding the phone app applies before sending a VibePattern.
func ZoneForCadence(rpm int32) Zone {
	switch {
	case rpm < lowCadenceBelow:
		return ZoneLow
	case rpm > highCadenceAbove:
		return ZoneHigh
	}
	return ZoneGood
}

// Ride produces a simulated stream of phone messages.
type Ride struct {
	speedTenths int
	speedDown   bool
	cadence     int32
	cadenceDown bool
	zone        Zone
}

func NewRide() *Ride {
	return &Ride{
		zone: ZoneLow,
	}
}

// Next advances the ride one step. A zone is attached only when the band changes.
func (r *Ride) Next() Message {
	if r.speedDown {
		r.speedTenths--
	} else {
		r.speedTenths++
	}
	if r.speedTenths == maxRideSpeedTenths {
		r.speedDown = true
	} else if r.speedTenths == 0 {
		r.speedDown = false
	}

	if r.cadenceDown {
		r.cadence--
	} else {
		r.cadence++
	}
	if r.cadence == maxRideCadence {
		r.cadenceDown = true
	} else if r.cadence == 0 {
		r.cadenceDown = false
	}

	speed := fmt.Sprintf("%d.%d", r.speedTenths/10, r.speedTenths%10)
	rpm := r.cadence
	msg := Message{
		Speed:   &speed,
		Cadence: &rpm,
	}
	if z := ZoneForCadence(rpm); z != r.zone {
		r.zone = z
		msg.Zone = z
		msg.HasZone = true
	}
	return msg
}

func (c *Cadence) runTestMode(ctx context.Context) {
	go func() {
		ride := NewRide()
		ticker := time.NewTicker(rideInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
			if err := c.Deliver(ctx, ride.Next()); err != nil {
				return
			}
		}
	}()
}
