// Package emitqueue гарантирует, что исходящие события не теряются молча, пока
// канал отключен: буфер FIFO, сброс в порядке постановки при подключении.
// Доставка не более одного раза, без подтверждений и без сохранения между запусками.
package emitqueue

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/kure690/GuardianDeployment-sub000/internal/channel"
	"github.com/kure690/GuardianDeployment-sub000/internal/events"
	"github.com/kure690/GuardianDeployment-sub000/internal/metrics"
	"github.com/sirupsen/logrus"
)

// Sender - часть Connection, нужная очереди
type Sender interface {
	SendEnvelope(ctx context.Context, env events.Envelope) error
	Connected() bool
}

type Options struct {
	// MaxBuffered ограничивает буфер; при переполнении вытесняется самое старое событие
	MaxBuffered int
	// TTL - срок жизни события в буфере; просроченные отбрасываются при сбросе
	TTL     time.Duration
	Metrics *metrics.Metrics
	Now     func() time.Time
}

type entry struct {
	env      events.Envelope
	queuedAt time.Time
}

type Queue struct {
	sender  Sender
	logger  *logrus.Logger
	metrics *metrics.Metrics
	max     int
	ttl     time.Duration
	now     func() time.Time

	mu     sync.Mutex
	online bool
	buffer []entry
}

func New(sender Sender, logger *logrus.Logger, opts Options) *Queue {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Queue{
		sender:  sender,
		logger:  logger,
		metrics: opts.Metrics,
		max:     opts.MaxBuffered,
		ttl:     opts.TTL,
		now:     opts.Now,
	}
}

// Attach подписывает очередь на переходы канала. Хуки, зарегистрированные на
// Connection раньше, выполняются до сброса буфера.
func (q *Queue) Attach(conn *channel.Connection) {
	conn.OnConnect(q.Flush)
	conn.OnDisconnect(q.Offline)
}

// Enqueue никогда не завершается ошибкой и не требует знать состояние канала
func (q *Queue) Enqueue(event string, args ...any) {
	log := q.logger.WithFields(logrus.Fields{
		"component": "emitqueue",
		"event":     event,
	})

	for _, arg := range args {
		if !isStruct(arg) {
			continue
		}
		if err := events.Validate(arg); err != nil {
			log.WithError(err).Error("Dropping invalid outbound event")
			q.metrics.QueueDropped("invalid")
			return
		}
	}

	env, err := events.NewEnvelope(event, args...)
	if err != nil {
		log.WithError(err).Error("Dropping outbound event that cannot be encoded")
		q.metrics.QueueDropped("encode_failed")
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.online && q.sender.Connected() {
		err := q.sender.SendEnvelope(context.Background(), env)
		if err == nil {
			return
		}
		if !channel.IsNotConnected(err) {
			// Кадр мог частично уйти в сокет: повтор нарушил бы "не более одного раза"
			log.WithError(err).Warn("Outbound event lost on send failure")
			q.metrics.QueueDropped("send_failed")
			return
		}
	}

	q.push(entry{env: env, queuedAt: q.now()}, log)
}

// isStruct: теги validate есть только у структур полезной нагрузки
func isStruct(v any) bool {
	t := reflect.TypeOf(v)
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Pointer {
		if reflect.ValueOf(v).IsNil() {
			return false
		}
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

func (q *Queue) push(e entry, log *logrus.Entry) {
	if q.max > 0 && len(q.buffer) >= q.max {
		dropped := q.buffer[0]
		q.buffer = q.buffer[1:]
		log.WithField("dropped_event", dropped.env.Event).Warn("Emit buffer full, dropping oldest event")
		q.metrics.QueueDropped("overflow")
	}
	q.buffer = append(q.buffer, e)
	q.metrics.QueueDepth(len(q.buffer))
	log.WithField("buffered", len(q.buffer)).Debug("Channel offline, event buffered")
}

// Flush отправляет буфер строго в порядке постановки и очищает его
func (q *Queue) Flush(ctx context.Context) {
	q.mu.Lock()
	defer q.mu.Unlock()

	log := q.logger.WithField("component", "emitqueue")
	pending := q.buffer
	q.buffer = nil
	now := q.now()

	sent := 0
	for i, e := range pending {
		if q.ttl > 0 && now.Sub(e.queuedAt) > q.ttl {
			log.WithField("event", e.env.Event).Warn("Dropping expired buffered event")
			q.metrics.QueueDropped("expired")
			continue
		}
		err := q.sender.SendEnvelope(ctx, e.env)
		if err == nil {
			sent++
			continue
		}
		if channel.IsNotConnected(err) {
			// Канал упал во время сброса: неотправленный хвост остается в буфере
			q.buffer = append(q.buffer, pending[i:]...)
			q.metrics.QueueDepth(len(q.buffer))
			log.WithField("remaining", len(q.buffer)).Warn("Channel lost during flush")
			return
		}
		log.WithError(err).WithField("event", e.env.Event).Warn("Buffered event lost on send failure")
		q.metrics.QueueDropped("send_failed")
	}

	q.online = true
	q.metrics.QueueDepth(0)
	if sent > 0 {
		log.WithField("sent", sent).Info("Flushed buffered events")
	}
}

// Offline переводит очередь в режим буферизации
func (q *Queue) Offline() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.online = false
}

// Len возвращает число событий в буфере
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.buffer)
}
