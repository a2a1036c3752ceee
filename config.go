package cadence

import (
	"github.com/BurntSushi/toml"
	"github.com/jd3nn1s/cadence/mailbox"
	"github.com/pkg/errors"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
)

const (
	TransportUDP  = "udp"
	TransportMQTT = "mqtt"

	MotorLog  = "log"
	MotorBell = "bell"

	OutputAuto     = "auto"
	OutputTerminal = "terminal"
	OutputLog      = "log"

	defaultListen    = ":9000"
	defaultBroker    = "tcp://127.0.0.1:1883"
	defaultTopic     = "cadence/telemetry"
	defaultClientID  = "cadence-display"
	defaultQueueSize = 8
)

type DisplayConfig struct {
	Width  int
	Height int
}

type MailboxConfig struct {
	Transport string
	UDP       mailbox.UDPConfig
	MQTT      mailbox.MQTTConfig
}

type HapticConfig struct {
	Motor     string
	QueueSize int
}

type RenderConfig struct {
	Output     string
	CellWidth  int
	CellHeight int
}

type Config struct {
	Display DisplayConfig
	Mailbox MailboxConfig
	Haptic  HapticConfig
	Render  RenderConfig
}

func DefaultConfig() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// LoadConfig reads fileName, resolving relative names against the binary's directory.
func LoadConfig(fileName string) (*Config, error) {
	path := fileName
	if !filepath.IsAbs(path) {
		dir, err := filepath.Abs(filepath.Dir(os.Args[0]))
		if err != nil {
			return nil, errors.Wrapf(err, "unable to determine binary location")
		}
		path = filepath.Join(dir, fileName)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open file %s", fileName)
	}
	defer file.Close()
	return LoadConfigFromReader(file)
}

func LoadConfigFromReader(configReader io.Reader) (*Config, error) {
	configData, err := ioutil.ReadAll(configReader)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read config reader")
	}
	config := Config{}
	if _, err := toml.Decode(string(configData), &config); err != nil {
		return nil, errors.Wrap(err, "unable to load cadence configuration")
	}
	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		c.Display.Width = DefaultScreenWidth
		c.Display.Height = DefaultScreenHeight
	}
	if c.Mailbox.Transport == "" {
		c.Mailbox.Transport = TransportUDP
	}
	if c.Mailbox.UDP.Listen == "" {
		c.Mailbox.UDP.Listen = defaultListen
	}
	if c.Mailbox.MQTT.Broker == "" {
		c.Mailbox.MQTT.Broker = defaultBroker
	}
	if c.Mailbox.MQTT.Topic == "" {
		c.Mailbox.MQTT.Topic = defaultTopic
	}
	if c.Mailbox.MQTT.ClientID == "" {
		c.Mailbox.MQTT.ClientID = defaultClientID
	}
	if c.Haptic.Motor == "" {
		c.Haptic.Motor = MotorLog
	}
	if c.Haptic.QueueSize <= 0 {
		c.Haptic.QueueSize = defaultQueueSize
	}
	if c.Render.Output == "" {
		c.Render.Output = OutputAuto
	}
}

func (c *Config) Validate() error {
	switch c.Mailbox.Transport {
	case TransportUDP, TransportMQTT:
	default:
		return errors.Errorf("unknown mailbox transport %q", c.Mailbox.Transport)
	}
	switch c.Haptic.Motor {
	case MotorLog, MotorBell:
	default:
		return errors.Errorf("unknown haptic motor %q", c.Haptic.Motor)
	}
	switch c.Render.Output {
	case OutputAuto, OutputTerminal, OutputLog:
	default:
		return errors.Errorf("unknown render output %q", c.Render.Output)
	}
	if c.Mailbox.MQTT.QoS > 2 {
		return errors.Errorf("invalid mqtt qos %d", c.Mailbox.MQTT.QoS)
	}
	return nil
}

func (c *Config) Bounds() Rect {
	return Rect{W: c.Display.Width, H: c.Display.Height}
}

func (c *Config) NewMailbox() (Mailbox, error) {
	switch c.Mailbox.Transport {
	case TransportUDP:
		udpConfig := c.Mailbox.UDP
		return mailbox.NewUDPMailbox(&udpConfig), nil
	case TransportMQTT:
		mqttConfig := c.Mailbox.MQTT
		return mailbox.NewMQTTMailbox(&mqttConfig), nil
	}
	return nil, errors.Errorf("unknown mailbox transport %q", c.Mailbox.Transport)
}
