package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/kure690/GuardianDeployment-sub000/internal/events"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitFor = 2 * time.Second

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func startConnection(t *testing.T, transport Transport) *Connection {
	t.Helper()
	conn := New(transport, newTestLogger(), Options{BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond})
	t.Cleanup(conn.Close)
	return conn
}

func run(t *testing.T, conn *Connection) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = conn.Run(context.Background())
	}()
	t.Cleanup(func() {
		conn.Close()
		<-done
	})
}

func TestSend_NotConnected(t *testing.T) {
	conn := startConnection(t, NewMemoryTransport(false))

	err := conn.Send(context.Background(), events.GetIncidentCounts)
	require.Error(t, err)
	assert.True(t, IsNotConnected(err))
}

func TestConnectHooks_RunOnEveryConnectInOrder(t *testing.T) {
	transport := NewMemoryTransport(true)
	conn := startConnection(t, transport)

	var mu sync.Mutex
	var calls []string
	conn.OnConnect(func(ctx context.Context) {
		mu.Lock()
		calls = append(calls, "first")
		mu.Unlock()
	})
	conn.OnConnect(func(ctx context.Context) {
		mu.Lock()
		calls = append(calls, "second")
		mu.Unlock()
	})
	disconnects := 0
	conn.OnDisconnect(func() {
		mu.Lock()
		disconnects++
		mu.Unlock()
	})

	run(t, conn)
	require.Eventually(t, conn.Connected, waitFor, time.Millisecond)

	transport.Drop()
	require.Eventually(t, func() bool { return transport.Dials() == 2 && conn.Connected() }, waitFor, time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"first", "second", "first", "second"}, calls)
	assert.Equal(t, 1, disconnects)
}

func TestRun_RetriesUntilCoordinatorAvailable(t *testing.T) {
	transport := NewMemoryTransport(false)
	conn := startConnection(t, transport)
	run(t, conn)

	time.Sleep(20 * time.Millisecond)
	assert.False(t, conn.Connected())

	transport.SetOnline(true)
	require.Eventually(t, conn.Connected, waitFor, time.Millisecond)
}

func TestDispatch_InboundInSendOrder(t *testing.T) {
	transport := NewMemoryTransport(true)
	conn := startConnection(t, transport)

	var mu sync.Mutex
	var got []string
	Handle(conn, events.OpCenConnectingStatus, func(ctx context.Context, ev events.OpCenStatus) {
		mu.Lock()
		got = append(got, string(ev.Status))
		mu.Unlock()
	})
	run(t, conn)
	require.Eventually(t, conn.Connected, waitFor, time.Millisecond)

	require.NoError(t, transport.Push(events.OpCenConnectingStatus, map[string]any{"incidentId": "INC-1", "status": "connecting"}))
	// некорректное событие отбрасывается на границе канала
	require.NoError(t, transport.Push(events.OpCenConnectingStatus, map[string]any{"incidentId": "INC-1", "status": "bogus"}))
	require.NoError(t, transport.Push(events.OpCenConnectingStatus, map[string]any{"incidentId": "INC-1", "status": "idle"}))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 2
	}, waitFor, time.Millisecond)
	mu.Lock()
	assert.Equal(t, []string{"connecting", "idle"}, got)
	mu.Unlock()
}

func TestSend_RecordsEnvelope(t *testing.T) {
	transport := NewMemoryTransport(true)
	conn := startConnection(t, transport)
	run(t, conn)
	require.Eventually(t, conn.Connected, waitFor, time.Millisecond)

	require.NoError(t, conn.Send(context.Background(), events.UpdateOpCenAvailability, events.Availability{Status: "available"}))

	sent := transport.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, events.UpdateOpCenAvailability, sent[0].Event)
	assert.JSONEq(t, `{"status":"available"}`, string(sent[0].Payload()))
}

func TestBackoff_Capped(t *testing.T) {
	conn := New(NewMemoryTransport(false), newTestLogger(), Options{BaseDelay: 100 * time.Millisecond, MaxDelay: time.Second})

	assert.Equal(t, 100*time.Millisecond, conn.backoff(0))
	assert.Equal(t, 400*time.Millisecond, conn.backoff(2))
	assert.Equal(t, time.Second, conn.backoff(10))
}

func TestClose_BeforeRun(t *testing.T) {
	conn := New(NewMemoryTransport(true), newTestLogger(), Options{})
	conn.Close()
	assert.NoError(t, conn.Run(context.Background()))
	assert.False(t, conn.Connected())
}

func TestDecodeNATSMessage(t *testing.T) {
	env, err := decodeNATSMessage(&nats.Msg{
		Subject: "guardian.broadcast",
		Data:    []byte(`{"event":"incidentCountsUpdate","args":[{"fire":1}]}`),
	})
	require.NoError(t, err)
	assert.Equal(t, events.IncidentCountsUpdate, env.Event)

	bare := &nats.Msg{Subject: "guardian.client.disp-1", Data: []byte(`{"callId":"c1","state":"ringing"}`), Header: nats.Header{}}
	bare.Header.Set("Event-Name", events.CallStateChanged)
	env, err = decodeNATSMessage(bare)
	require.NoError(t, err)
	assert.Equal(t, events.CallStateChanged, env.Event)
	assert.Equal(t, json.RawMessage(`{"callId":"c1","state":"ringing"}`), env.Payload())

	_, err = decodeNATSMessage(&nats.Msg{Subject: "guardian.broadcast", Data: []byte(`{"fire":1}`)})
	require.Error(t, err)
}

func TestNATSTransport_Subjects(t *testing.T) {
	tr := NewNATSTransport(NATSConfig{SubjectPrefix: "guardian", ClientID: "disp-1"})
	assert.Equal(t, "guardian.coordinator.requestOpCenConnect", tr.coordinatorSubject(events.RequestOpCenConnect))
	assert.Equal(t, "guardian.client.disp-1", tr.clientSubject())
	assert.Equal(t, "guardian.broadcast", tr.broadcastSubject())
}
