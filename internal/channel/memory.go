package channel

import (
	"context"
	"errors"
	"sync"

	"github.com/kure690/GuardianDeployment-sub000/internal/events"
)

// Compile-time interface check.
var _ Transport = (*MemoryTransport)(nil)

var errOffline = errors.New("channel: memory transport offline")

// MemoryTransport - транспорт в памяти процесса для тестов. Играет роль
// координатора: записывает исходящие события и доставляет входящие через Push.
type MemoryTransport struct {
	mu      sync.Mutex
	online  bool
	current *memoryConn
	sent    []events.Envelope
	dials   int
}

// NewMemoryTransport создает транспорт; online задает, успешен ли Dial
func NewMemoryTransport(online bool) *MemoryTransport {
	return &MemoryTransport{online: online}
}

func (t *MemoryTransport) Dial(ctx context.Context) (Conn, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.online {
		return nil, errOffline
	}
	t.dials++
	t.current = &memoryConn{
		transport: t,
		inbound:   make(chan events.Envelope, 64),
		closed:    make(chan struct{}),
	}
	return t.current, nil
}

// SetOnline переключает доступность координатора; уход в offline разрывает текущее соединение
func (t *MemoryTransport) SetOnline(online bool) {
	t.mu.Lock()
	t.online = online
	conn := t.current
	t.mu.Unlock()
	if !online && conn != nil {
		_ = conn.Close()
	}
}

// Drop разрывает текущее соединение, оставляя координатор доступным
func (t *MemoryTransport) Drop() {
	t.mu.Lock()
	conn := t.current
	t.mu.Unlock()
	if conn != nil {
		_ = conn.Close()
	}
}

// Push доставляет входящее событие в текущее соединение
func (t *MemoryTransport) Push(event string, payload any) error {
	env, err := events.NewEnvelope(event, payload)
	if err != nil {
		return err
	}
	t.mu.Lock()
	conn := t.current
	t.mu.Unlock()
	if conn == nil {
		return ErrNotConnected
	}
	select {
	case conn.inbound <- env:
		return nil
	case <-conn.closed:
		return ErrConnClosed
	}
}

// Sent возвращает копию журнала исходящих событий
func (t *MemoryTransport) Sent() []events.Envelope {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]events.Envelope(nil), t.sent...)
}

// SentNames возвращает имена исходящих событий в порядке отправки
func (t *MemoryTransport) SentNames() []string {
	sent := t.Sent()
	names := make([]string, len(sent))
	for i, env := range sent {
		names[i] = env.Event
	}
	return names
}

func (t *MemoryTransport) Dials() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dials
}

type memoryConn struct {
	transport *MemoryTransport
	inbound   chan events.Envelope
	closed    chan struct{}
	closeOnce sync.Once
}

func (c *memoryConn) Send(_ context.Context, env events.Envelope) error {
	select {
	case <-c.closed:
		return ErrConnClosed
	default:
	}
	c.transport.mu.Lock()
	c.transport.sent = append(c.transport.sent, env)
	c.transport.mu.Unlock()
	return nil
}

func (c *memoryConn) Receive(ctx context.Context) (events.Envelope, error) {
	select {
	case env := <-c.inbound:
		return env, nil
	case <-c.closed:
		return events.Envelope{}, ErrConnClosed
	case <-ctx.Done():
		return events.Envelope{}, ctx.Err()
	}
}

func (c *memoryConn) Close() error {
	c.closeOnce.Do(func() { close(c.closed) })
	return nil
}
