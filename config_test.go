package cadence

import (
	"bytes"
	"github.com/jd3nn1s/cadence/mailbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestLoadConfigFromReader(t *testing.T) {
	config, err := LoadConfigFromReader(bytes.NewBufferString(`
[Display]
Width = 200
Height = 228

[Mailbox]
Transport = "mqtt"

[Mailbox.MQTT]
Broker = "tcp://broker:1883"
Topic = "bike/1/telemetry"
QoS = 1

[Haptic]
Motor = "bell"

[Render]
Output = "log"
`))
	require.NoError(t, err)
	assert.Equal(t, Rect{W: 200, H: 228}, config.Bounds())
	assert.Equal(t, TransportMQTT, config.Mailbox.Transport)
	assert.Equal(t, "tcp://broker:1883", config.Mailbox.MQTT.Broker)
	assert.Equal(t, "bike/1/telemetry", config.Mailbox.MQTT.Topic)
	assert.Equal(t, byte(1), config.Mailbox.MQTT.QoS)
	assert.Equal(t, defaultClientID, config.Mailbox.MQTT.ClientID)
	assert.Equal(t, MotorBell, config.Haptic.Motor)
	assert.Equal(t, defaultQueueSize, config.Haptic.QueueSize)
	assert.Equal(t, OutputLog, config.Render.Output)

	mb, err := config.NewMailbox()
	require.NoError(t, err)
	assert.IsType(t, &mailbox.MQTTMailbox{}, mb)
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfigFromReader(bytes.NewBufferString(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
	assert.Equal(t, Rect{W: 144, H: 168}, config.Bounds())
	assert.Equal(t, ":9000", config.Mailbox.UDP.Listen)
	assert.Equal(t, OutputAuto, config.Render.Output)

	mb, err := config.NewMailbox()
	require.NoError(t, err)
	assert.IsType(t, &mailbox.UDPMailbox{}, mb)
}

func TestLoadConfigErrors(t *testing.T) {
	for _, data := range []string{
		"[Display",
		"[Mailbox]\nTransport = \"bluetooth\"",
		"[Haptic]\nMotor = \"piezo\"",
		"[Render]\nOutput = \"lcd\"",
		"[Mailbox.MQTT]\nQoS = 3",
	} {
		_, err := LoadConfigFromReader(bytes.NewBufferString(data))
		assert.Error(t, err, data)
	}

	_, err := LoadConfig("/nonexistent/cadence.toml")
	assert.Error(t, err)

	config := DefaultConfig()
	config.Mailbox.Transport = "serial"
	_, err = config.NewMailbox()
	assert.Error(t, err)
}
