package channel

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kure690/GuardianDeployment-sub000/internal/events"
	"github.com/kure690/GuardianDeployment-sub000/internal/metrics"
	"github.com/sirupsen/logrus"
)

// HandlerFunc обрабатывает входящее событие
type HandlerFunc func(ctx context.Context, env events.Envelope)

type Options struct {
	BaseDelay time.Duration
	MaxDelay  time.Duration
	Metrics   *metrics.Metrics
}

// Connection создается на время аутентифицированной сессии и закрывается при выходе.
// Хуки подключения выполняются в порядке регистрации при каждом переходе в connected;
// входящие события доставляются по одному из единственной горутины чтения.
type Connection struct {
	transport Transport
	logger    *logrus.Logger
	metrics   *metrics.Metrics
	baseDelay time.Duration
	maxDelay  time.Duration

	mu           sync.RWMutex
	conn         Conn
	connected    bool
	connects     int
	handlers     map[string][]HandlerFunc
	onConnect    []func(ctx context.Context)
	onDisconnect []func()
	cancel       context.CancelFunc
	closed       bool

	writeMu sync.Mutex
}

func New(transport Transport, logger *logrus.Logger, opts Options) *Connection {
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = 500 * time.Millisecond
	}
	if opts.MaxDelay < opts.BaseDelay {
		opts.MaxDelay = opts.BaseDelay
	}
	return &Connection{
		transport: transport,
		logger:    logger,
		metrics:   opts.Metrics,
		baseDelay: opts.BaseDelay,
		maxDelay:  opts.MaxDelay,
		handlers:  make(map[string][]HandlerFunc),
	}
}

// On подписывает обработчик на входящее событие
func (c *Connection) On(event string, handler HandlerFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[event] = append(c.handlers[event], handler)
}

// OnConnect регистрирует хук перехода в connected
func (c *Connection) OnConnect(fn func(ctx context.Context)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onConnect = append(c.onConnect, fn)
}

// OnDisconnect регистрирует хук перехода в disconnected
func (c *Connection) OnDisconnect(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onDisconnect = append(c.onDisconnect, fn)
}

// Connected сообщает текущее состояние канала
func (c *Connection) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// Send отправляет событие немедленно; пока канал отключен, возвращает ErrNotConnected
func (c *Connection) Send(ctx context.Context, event string, args ...any) error {
	env, err := events.NewEnvelope(event, args...)
	if err != nil {
		return err
	}
	return c.SendEnvelope(ctx, env)
}

func (c *Connection) SendEnvelope(ctx context.Context, env events.Envelope) error {
	c.mu.RLock()
	conn, connected := c.conn, c.connected
	c.mu.RUnlock()
	if !connected || conn == nil {
		return ErrNotConnected
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := conn.Send(ctx, env); err != nil {
		return fmt.Errorf("channel: failed to send %s: %w", env.Event, err)
	}
	return nil
}

// Run держит канал открытым до отмены ctx или Close, переподключаясь бесконечно
func (c *Connection) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	c.cancel = cancel
	closed := c.closed
	c.mu.Unlock()
	defer cancel()
	if closed {
		return nil
	}

	log := c.logger.WithField("component", "channel")
	attempt := 0
	for {
		conn, err := c.transport.Dial(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			delay := c.backoff(attempt)
			attempt++
			log.WithError(err).Warnf("Failed to connect to coordinator. Retrying in %v (attempt %d)", delay, attempt)
			if !sleep(ctx, delay) {
				return nil
			}
			continue
		}
		attempt = 0

		c.setConnected(ctx, conn)
		err = c.readLoop(ctx, conn)
		c.setDisconnected(conn)

		if ctx.Err() != nil {
			log.Info("Channel closed")
			return nil
		}
		log.WithError(err).Warn("Channel disconnected, reconnecting")
		if !sleep(ctx, c.baseDelay) {
			return nil
		}
	}
}

// Close завершает Run и разрывает текущее соединение
func (c *Connection) Close() {
	c.mu.Lock()
	c.closed = true
	cancel, conn := c.cancel, c.conn
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	if conn != nil {
		_ = conn.Close()
	}
}

func (c *Connection) setConnected(ctx context.Context, conn Conn) {
	c.mu.Lock()
	c.conn = conn
	c.connected = true
	c.connects++
	reconnect := c.connects > 1
	hooks := append([]func(context.Context){}, c.onConnect...)
	c.mu.Unlock()

	c.metrics.ChannelConnected(true)
	if reconnect {
		c.metrics.ChannelReconnected()
	}
	c.logger.WithField("component", "channel").Info("Channel connected")

	for _, hook := range hooks {
		hook(ctx)
	}
}

func (c *Connection) setDisconnected(conn Conn) {
	c.mu.Lock()
	c.conn = nil
	c.connected = false
	hooks := append([]func(){}, c.onDisconnect...)
	c.mu.Unlock()

	_ = conn.Close()
	c.metrics.ChannelConnected(false)

	for _, hook := range hooks {
		hook()
	}
}

func (c *Connection) readLoop(ctx context.Context, conn Conn) error {
	for {
		env, err := conn.Receive(ctx)
		if err != nil {
			return err
		}
		c.dispatch(ctx, env)
	}
}

func (c *Connection) dispatch(ctx context.Context, env events.Envelope) {
	c.mu.RLock()
	handlers := c.handlers[env.Event]
	c.mu.RUnlock()

	if len(handlers) == 0 {
		c.logger.WithField("component", "channel").WithField("event", env.Event).Debug("No handler for inbound event")
		return
	}
	for _, h := range handlers {
		h(ctx, env)
	}
}

func (c *Connection) backoff(attempt int) time.Duration {
	delay := c.baseDelay
	for i := 0; i < attempt && delay < c.maxDelay; i++ {
		delay *= 2 // Экспоненциальная задержка
	}
	if delay > c.maxDelay {
		delay = c.maxDelay
	}
	return delay
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// Handle подписывает типизированный обработчик: полезная нагрузка разбирается и
// проверяется на границе канала, некорректные события журналируются и отбрасываются.
func Handle[T any](c *Connection, event string, fn func(ctx context.Context, payload T)) {
	c.On(event, func(ctx context.Context, env events.Envelope) {
		payload, err := events.Decode[T](env.Payload())
		if err != nil {
			c.logger.WithError(err).WithFields(logrus.Fields{
				"component": "channel",
				"event":     event,
			}).Warn("Dropping invalid inbound event")
			return
		}
		fn(ctx, payload)
	})
}

// IsNotConnected сообщает, что событие точно не ушло в канал
func IsNotConnected(err error) bool {
	return errors.Is(err, ErrNotConnected)
}
