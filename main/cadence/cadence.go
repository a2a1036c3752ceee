package main

import (
	"context"
	"flag"
	"github.com/jd3nn1s/cadence"
	"github.com/jd3nn1s/cadence/haptic"
	"github.com/jd3nn1s/cadence/render"
	log "github.com/sirupsen/logrus"
	"os"
	"os/signal"
	"syscall"
)

var configFile = flag.String("config", "cadence.toml", "configuration file")
var testMode = flag.Bool("testmode", false, "generate test data")
var debug = flag.Bool("debug", false, "debug logging")
var transport = flag.String("transport", "", "override the mailbox transport (udp or mqtt)")

func main() {
	log.SetLevel(log.InfoLevel)
	flag.Parse()
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	config, err := cadence.LoadConfig(*configFile)
	if err != nil {
		log.WithField("err", err).Warn("using default configuration")
		config = cadence.DefaultConfig()
	}
	if *transport != "" {
		config.Mailbox.Transport = *transport
		if err := config.Validate(); err != nil {
			log.Fatal("invalid transport: ", err)
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	vibes := haptic.NewQueue(newMotor(config), config.Haptic.QueueSize)
	go func() {
		_ = vibes.Run(ctx)
	}()

	display := cadence.NewDisplay(config.Bounds())
	cd := cadence.NewCadence(display, cadence.NewHandler(display, vibes))
	cd.AddRenderer(newRenderer(config))
	cd.SetTestMode(*testMode)

	if !*testMode {
		mb, err := config.NewMailbox()
		if err != nil {
			log.Fatal("unable to create mailbox: ", err)
		}
		cd.OpenMailbox(ctx, mb)
	}

	if err := cd.Run(ctx); err != nil && err != context.Canceled {
		log.WithField("err", err).Error("cadence stopped")
	}
	if err := cd.Close(); err != nil {
		log.WithField("err", err).Warn("unable to close")
	}
}

func newMotor(config *cadence.Config) haptic.Motor {
	if config.Haptic.Motor == cadence.MotorBell {
		return &haptic.BellMotor{W: os.Stdout}
	}
	return haptic.LogMotor{}
}

func newRenderer(config *cadence.Config) cadence.Renderer {
	scale := render.Scale{X: config.Render.CellWidth, Y: config.Render.CellHeight}
	switch config.Render.Output {
	case cadence.OutputTerminal:
		return render.NewTerminal(os.Stdout, scale)
	case cadence.OutputLog:
		return render.Log{}
	}
	if render.IsTerminal(os.Stdout) {
		return render.NewTerminal(os.Stdout, scale)
	}
	return render.Log{}
}
