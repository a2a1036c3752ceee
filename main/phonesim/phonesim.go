package main

import (
	"context"
	"flag"
	"github.com/jd3nn1s/cadence"
	"github.com/jd3nn1s/cadence/mailbox"
	log "github.com/sirupsen/logrus"
	"os"
	"os/signal"
	"time"
)

var addr = flag.String("addr", "127.0.0.1:9000", "udp mailbox address of the display")
var interval = flag.Duration("interval", 250*time.Millisecond, "time between messages")

// phonesim plays the phone app's part, sending a simulated ride to a display.
func main() {
	log.SetLevel(log.InfoLevel)
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	sender, err := mailbox.NewUDPSender(*addr)
	if err != nil {
		log.Fatal("unable to create sender: ", err)
	}
	defer sender.Close()

	ride := cadence.NewRide()
	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
		msg := ride.Next()
		if err := sender.Send(msg.Dict()); err != nil {
			log.WithField("err", err).Error("unable to send message")
			continue
		}
		log.WithFields(log.Fields{
			"speed":   *msg.Speed,
			"cadence": *msg.Cadence,
			"zone":    msg.Zone,
		}).Debug("sent")
	}
}
