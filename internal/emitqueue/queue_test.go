package emitqueue

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/kure690/GuardianDeployment-sub000/internal/channel"
	"github.com/kure690/GuardianDeployment-sub000/internal/events"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSender записывает отправленные конверты
type fakeSender struct {
	mu        sync.Mutex
	connected bool
	failWith  error
	sent      []events.Envelope
}

func (f *fakeSender) SendEnvelope(_ context.Context, env events.Envelope) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.connected {
		return channel.ErrNotConnected
	}
	if f.failWith != nil {
		return f.failWith
	}
	f.sent = append(f.sent, env)
	return nil
}

func (f *fakeSender) Connected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connected
}

func (f *fakeSender) setConnected(v bool) {
	f.mu.Lock()
	f.connected = v
	f.mu.Unlock()
}

func (f *fakeSender) names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.sent))
	for i, env := range f.sent {
		out[i] = env.Event
	}
	return out
}

func newTestQueue(sender Sender, opts Options) *Queue {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return New(sender, logger, opts)
}

func TestEnqueue_BuffersWhileDisconnected_FlushesFIFO(t *testing.T) {
	sender := &fakeSender{}
	q := newTestQueue(sender, Options{})

	q.Enqueue("a")
	q.Enqueue("b", 1)
	q.Enqueue("c", "x", "y")
	assert.Equal(t, 3, q.Len())
	assert.Empty(t, sender.names())

	sender.setConnected(true)
	q.Flush(context.Background())

	assert.Equal(t, []string{"a", "b", "c"}, sender.names())
	assert.Zero(t, q.Len())

	// после сброса очередь отправляет сразу
	q.Enqueue("d")
	assert.Equal(t, []string{"a", "b", "c", "d"}, sender.names())
	assert.Zero(t, q.Len())
}

func TestEnqueue_PreservesArgumentOrder(t *testing.T) {
	sender := &fakeSender{}
	q := newTestQueue(sender, Options{})

	q.Enqueue(events.RequestResponderAssignment, map[string]string{"incidentId": "INC-1"}, "R-2")
	sender.setConnected(true)
	q.Flush(context.Background())

	require.Len(t, sender.sent, 1)
	require.Len(t, sender.sent[0].Args, 2)
	assert.JSONEq(t, `{"incidentId":"INC-1"}`, string(sender.sent[0].Args[0]))
	assert.JSONEq(t, `"R-2"`, string(sender.sent[0].Args[1]))
}

func TestEnqueue_ConnectedButNotFlushedYet_Buffers(t *testing.T) {
	// канал уже подключен, но хук сброса еще не выполнился: новое событие не должно обогнать буфер
	sender := &fakeSender{connected: true}
	q := newTestQueue(sender, Options{})
	q.buffer = []entry{{env: events.Envelope{Event: "old"}, queuedAt: time.Now()}}

	q.Enqueue("new")
	assert.Empty(t, sender.names())

	q.Flush(context.Background())
	assert.Equal(t, []string{"old", "new"}, sender.names())
}

func TestOffline_BuffersAgain(t *testing.T) {
	sender := &fakeSender{connected: true}
	q := newTestQueue(sender, Options{})
	q.Flush(context.Background())

	q.Offline()
	sender.setConnected(false)
	q.Enqueue("later")
	assert.Equal(t, 1, q.Len())

	sender.setConnected(true)
	q.Flush(context.Background())
	assert.Equal(t, []string{"later"}, sender.names())
}

func TestEnqueue_OverflowDropsOldest(t *testing.T) {
	sender := &fakeSender{}
	q := newTestQueue(sender, Options{MaxBuffered: 2})

	q.Enqueue("1")
	q.Enqueue("2")
	q.Enqueue("3")
	assert.Equal(t, 2, q.Len())

	sender.setConnected(true)
	q.Flush(context.Background())
	assert.Equal(t, []string{"2", "3"}, sender.names())
}

func TestFlush_DropsExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	sender := &fakeSender{}
	q := newTestQueue(sender, Options{TTL: time.Minute, Now: clock})

	q.Enqueue("stale")
	now = now.Add(2 * time.Minute)
	q.Enqueue("fresh")

	sender.setConnected(true)
	q.Flush(context.Background())
	assert.Equal(t, []string{"fresh"}, sender.names())
}

func TestFlush_ChannelLostMidFlush_KeepsTail(t *testing.T) {
	sender := &fakeSender{}
	q := newTestQueue(sender, Options{})
	q.Enqueue("a")
	q.Enqueue("b")

	// соединение не поднято: Flush получает ErrNotConnected на первом событии
	q.Flush(context.Background())
	assert.Equal(t, 2, q.Len())

	sender.setConnected(true)
	q.Flush(context.Background())
	assert.Equal(t, []string{"a", "b"}, sender.names())
}

func TestEnqueue_SendFailureIsNotRetried(t *testing.T) {
	sender := &fakeSender{connected: true}
	q := newTestQueue(sender, Options{})
	q.Flush(context.Background())

	sender.failWith = errors.New("broken pipe")
	assert.NotPanics(t, func() { q.Enqueue("lost") })
	assert.Zero(t, q.Len())
}

func TestEnqueue_UnencodableArgumentNeverPanics(t *testing.T) {
	q := newTestQueue(&fakeSender{}, Options{})
	assert.NotPanics(t, func() { q.Enqueue("bad", func() {}) })
	assert.Zero(t, q.Len())
}

func TestEnqueue_DropsInvalidPayload(t *testing.T) {
	sender := &fakeSender{}
	var logs bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&logs)
	q := New(sender, logger, Options{})

	// Нет userId и reason
	q.Enqueue(events.CallLeave, events.CallLeaveRequest{CallID: "call-1"})
	q.Enqueue(events.CallLeave, &events.CallLeaveRequest{CallID: "call-1", UserID: "dispatcher-1", Reason: "hangup"})
	q.Enqueue(events.CallLeave, events.CallLeaveRequest{CallID: "call-1", UserID: "dispatcher-1", Reason: "cancel"})

	require.Equal(t, 1, q.Len())
	assert.Contains(t, logs.String(), "Dropping invalid outbound event")

	sender.setConnected(true)
	q.Flush(context.Background())
	assert.Equal(t, []string{events.CallLeave}, sender.names())
}
