package mailbox

import (
	"context"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"sync/atomic"
	"time"
)

const (
	defaultConnectTimeout = 10 * time.Second
	disconnectQuiesceMs   = 250
	mqttPayloadBuffer     = 4
)

type MQTTConfig struct {
	Broker            string
	Topic             string
	ClientID          string
	QoS               byte
	ConnectTimeoutSec int
}

// MQTTMailbox receives dictionaries published to a single topic.
type MQTTMailbox struct {
	Config *MQTTConfig

	client      mqtt.Client
	inboxSize   int
	payloadChan chan []byte
	lostChan    chan error

	// messages skipped while payloadChan was full, reported from Start
	busy     atomic.Int32
	busyChan chan struct{}
}

// to allow testing
var newMQTTClient = mqtt.NewClient

func NewMQTTMailbox(config *MQTTConfig) *MQTTMailbox {
	return &MQTTMailbox{
		Config:      config,
		payloadChan: make(chan []byte, mqttPayloadBuffer),
		lostChan:    make(chan error, 1),
		busyChan:    make(chan struct{}, 1),
	}
}

func (m *MQTTMailbox) Open(inboxSize, outboxSize int) error {
	if err := checkSizes(inboxSize, outboxSize); err != nil {
		return err
	}
	opts := mqtt.NewClientOptions().
		AddBroker(m.Config.Broker).
		SetClientID(m.Config.ClientID).
		SetAutoReconnect(false).
		SetDefaultPublishHandler(m.messageHandler).
		SetOnConnectHandler(m.onConnectHandler).
		SetConnectionLostHandler(m.connectionLostHandler)
	client := newMQTTClient(opts)

	timeout := defaultConnectTimeout
	if m.Config.ConnectTimeoutSec > 0 {
		timeout = time.Duration(m.Config.ConnectTimeoutSec) * time.Second
	}
	token := client.Connect()
	if !token.WaitTimeout(timeout) {
		return errors.Errorf("timed out connecting to %s", m.Config.Broker)
	}
	if err := token.Error(); err != nil {
		return errors.Wrapf(err, "unable to connect to %s", m.Config.Broker)
	}
	m.client = client
	m.inboxSize = inboxSize
	return nil
}

func (m *MQTTMailbox) Start(ctx context.Context, cb Callbacks) error {
	if m.client == nil {
		return errors.New("mqtt mailbox not open")
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-m.lostChan:
			return errors.Wrap(err, "mqtt connection lost")
		case payload := <-m.payloadChan:
			deliver(payload, m.inboxSize, cb)
		case <-m.busyChan:
			for n := m.busy.Swap(0); n > 0; n-- {
				cb.dropped(ResultBusy)
			}
		}
	}
}

func (m *MQTTMailbox) Close() error {
	if m.client == nil {
		return errors.New("mqtt mailbox not open")
	}
	if token := m.client.Unsubscribe(m.Config.Topic); token.Wait() && token.Error() != nil {
		log.WithField("err", token.Error()).Warn("mqtt unsubscribe error")
	}
	m.client.Disconnect(disconnectQuiesceMs)
	return nil
}

func (m *MQTTMailbox) messageHandler(c mqtt.Client, msg mqtt.Message) {
	log.WithField("topic", msg.Topic()).
		WithField("size", len(msg.Payload())).
		Debug("mqtt message")
	select {
	case m.payloadChan <- msg.Payload():
	default:
		log.WithField("topic", msg.Topic()).Debug("mqtt mailbox busy, skipping message")
		m.busy.Add(1)
		select {
		case m.busyChan <- struct{}{}:
		default:
		}
	}
}

func (m *MQTTMailbox) onConnectHandler(c mqtt.Client) {
	log.WithField("broker", m.Config.Broker).Info("mqtt connected")
	if token := c.Subscribe(m.Config.Topic, m.Config.QoS, nil); token.Wait() && token.Error() != nil {
		log.WithField("err", token.Error()).
			WithField("topic", m.Config.Topic).
			Error("mqtt subscribe error")
	}
}

func (m *MQTTMailbox) connectionLostHandler(c mqtt.Client, err error) {
	select {
	case m.lostChan <- err:
	default:
	}
}
