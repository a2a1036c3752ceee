package mailbox

import (
	"context"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"net"
	"time"
)

const maxDatagramSize = 65535

type UDPConfig struct {
	Listen string
}

// UDPMailbox treats every datagram as one dictionary.
type UDPMailbox struct {
	Config *UDPConfig

	conn      net.PacketConn
	inboxSize int
}

// to allow testing
var listenPacket = net.ListenPacket

func NewUDPMailbox(config *UDPConfig) *UDPMailbox {
	return &UDPMailbox{
		Config: config,
	}
}

func (udp *UDPMailbox) Open(inboxSize, outboxSize int) error {
	if err := checkSizes(inboxSize, outboxSize); err != nil {
		return err
	}
	conn, err := listenPacket("udp", udp.Config.Listen)
	if err != nil {
		return errors.Wrapf(err, "unable to listen on %s", udp.Config.Listen)
	}
	udp.conn = conn
	udp.inboxSize = inboxSize
	log.WithField("addr", conn.LocalAddr()).Info("udp mailbox opened")
	return nil
}

// Addr is the bound local address, useful when listening on port 0.
func (udp *UDPMailbox) Addr() net.Addr {
	if udp.conn == nil {
		return nil
	}
	return udp.conn.LocalAddr()
}

func (udp *UDPMailbox) Start(ctx context.Context, cb Callbacks) error {
	if udp.conn == nil {
		return errors.New("udp mailbox not open")
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			// unblock ReadFrom
			if err := udp.conn.SetReadDeadline(time.Now()); err != nil {
				log.WithField("err", err).Warn("unable to interrupt udp mailbox")
			}
		case <-done:
		}
	}()

	buf := make([]byte, maxDatagramSize)
	for {
		n, addr, err := udp.conn.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return errors.Wrap(err, "unable to read from udp mailbox")
		}
		log.WithField("from", addr).
			WithField("size", n).
			Debug("received datagram")
		deliver(buf[:n], udp.inboxSize, cb)
	}
}

func (udp *UDPMailbox) Close() error {
	if udp.conn == nil {
		return errors.New("udp mailbox not open")
	}
	return udp.conn.Close()
}

// UDPSender is the phone side of a UDPMailbox.
type UDPSender struct {
	conn net.Conn
}

func NewUDPSender(addr string) (*UDPSender, error) {
	conn, err := net.Dial("udp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to dial %s", addr)
	}
	return &UDPSender{
		conn: conn,
	}, nil
}

func (s *UDPSender) Send(d Dict) error {
	payload, err := Encode(d)
	if err != nil {
		return err
	}
	if _, err = s.conn.Write(payload); err != nil {
		return errors.Wrap(err, "unable to send dictionary")
	}
	return nil
}

func (s *UDPSender) Close() error {
	return s.conn.Close()
}
