package channel

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/kure690/GuardianDeployment-sub000/internal/events"
	"github.com/nats-io/nats.go"
)

// Compile-time interface check.
var _ Transport = (*NATSTransport)(nil)

// NATSConfig описывает подключение к координатору через NATS
type NATSConfig struct {
	URL           string
	SubjectPrefix string
	ClientID      string
	Name          string
	Token         string
	Timeout       time.Duration
}

// NATSTransport публикует исходящие события в <prefix>.coordinator.<event> и слушает
// <prefix>.client.<id> и <prefix>.broadcast. Встроенное переподключение NATS отключено:
// им управляет Connection, чтобы хуки подключения срабатывали на каждый переход.
type NATSTransport struct {
	cfg NATSConfig
}

func NewNATSTransport(cfg NATSConfig) *NATSTransport {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &NATSTransport{cfg: cfg}
}

func (t *NATSTransport) coordinatorSubject(event string) string {
	return t.cfg.SubjectPrefix + ".coordinator." + event
}

func (t *NATSTransport) clientSubject() string {
	return t.cfg.SubjectPrefix + ".client." + t.cfg.ClientID
}

func (t *NATSTransport) broadcastSubject() string {
	return t.cfg.SubjectPrefix + ".broadcast"
}

func (t *NATSTransport) Dial(ctx context.Context) (Conn, error) {
	closed := make(chan struct{})
	opts := []nats.Option{
		nats.Name(t.cfg.Name),
		nats.Timeout(t.cfg.Timeout),
		nats.NoReconnect(),
		nats.ClosedHandler(func(*nats.Conn) { close(closed) }),
	}
	if t.cfg.Token != "" {
		opts = append(opts, nats.Token(t.cfg.Token))
	}

	nc, err := nats.Connect(t.cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("channel: failed to connect to NATS: %w", err)
	}

	inbox := make(chan *nats.Msg, 256)
	for _, subject := range []string{t.clientSubject(), t.broadcastSubject()} {
		if _, err := nc.ChanSubscribe(subject, inbox); err != nil {
			nc.Close()
			return nil, fmt.Errorf("channel: failed to subscribe to %s: %w", subject, err)
		}
	}
	if err := nc.FlushWithContext(ctx); err != nil {
		nc.Close()
		return nil, fmt.Errorf("channel: failed to flush subscriptions: %w", err)
	}

	return &natsConn{transport: t, nc: nc, inbox: inbox, closed: closed}, nil
}

type natsConn struct {
	transport *NATSTransport
	nc        *nats.Conn
	inbox     chan *nats.Msg
	closed    chan struct{}
}

func (c *natsConn) Send(_ context.Context, env events.Envelope) error {
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}
	return c.nc.Publish(c.transport.coordinatorSubject(env.Event), payload)
}

func (c *natsConn) Receive(ctx context.Context) (events.Envelope, error) {
	for {
		select {
		case msg := <-c.inbox:
			env, err := decodeNATSMessage(msg)
			if err != nil {
				// Битое сообщение не должно рвать канал
				continue
			}
			return env, nil
		case <-c.closed:
			return events.Envelope{}, ErrConnClosed
		case <-ctx.Done():
			return events.Envelope{}, ctx.Err()
		}
	}
}

func (c *natsConn) Close() error {
	c.nc.Close()
	return nil
}

// decodeNATSMessage принимает полный конверт либо голую полезную нагрузку,
// тогда имя события берется из заголовка Event-Name.
func decodeNATSMessage(msg *nats.Msg) (events.Envelope, error) {
	var env events.Envelope
	if err := json.Unmarshal(msg.Data, &env); err == nil && env.Event != "" {
		return env, nil
	}
	name := strings.TrimSpace(msg.Header.Get("Event-Name"))
	if name == "" {
		return events.Envelope{}, fmt.Errorf("channel: message on %s has no event name", msg.Subject)
	}
	return events.Envelope{Event: name, Args: []json.RawMessage{json.RawMessage(msg.Data)}}, nil
}
