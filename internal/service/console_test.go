package service

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/kure690/GuardianDeployment-sub000/internal/channel"
	"github.com/kure690/GuardianDeployment-sub000/internal/config"
	"github.com/kure690/GuardianDeployment-sub000/internal/events"
	handoff_mocks "github.com/kure690/GuardianDeployment-sub000/internal/handoff/mocks"
	"github.com/kure690/GuardianDeployment-sub000/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestConfig(role string) *config.Config {
	return &config.Config{
		Role:                  role,
		ConsoleID:             "dispatcher-1",
		ConsoleName:           "Dispatcher One",
		ReconnectBaseDelay:    time.Millisecond,
		ReconnectMaxDelay:     5 * time.Millisecond,
		EmitQueueMax:          16,
		EmitQueueTTL:          time.Minute,
		CallRingTimeout:       30 * time.Second,
		CallMaxDisplayMembers: 3,
	}
}

// startConsole запускает консоль на транспорте в памяти
func startConsole(t *testing.T, cfg *config.Config, transport *channel.MemoryTransport, deps ConsoleDeps) ConsoleService {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc, err := NewConsoleService(cfg, transport, deps, logger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = svc.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		svc.Close()
		<-done
	})
	return svc
}

func waitConnected(t *testing.T, svc ConsoleService) {
	require.Eventually(t, svc.Connected, time.Second, time.Millisecond)
}

func TestConsole_BufferedRequestReplayedAfterRegistration(t *testing.T) {
	transport := channel.NewMemoryTransport(false)
	svc := startConsole(t, newTestConfig(config.RoleDispatcher), transport, ConsoleDeps{})
	ctx := context.Background()

	_, err := svc.RequestConnect(ctx, "INC-1", "OC-1", models.IncidentDetails{IncidentType: models.IncidentFire})
	require.NoError(t, err)

	// Канал недоступен: запрос в буфере, наружу ничего не ушло
	assert.False(t, svc.Connected())
	assert.Equal(t, 1, svc.QueueLen())
	assert.Empty(t, transport.SentNames())
	snap, ok := svc.Handoff("INC-1")
	require.True(t, ok)
	assert.True(t, snap.Connecting())

	transport.SetOnline(true)

	require.Eventually(t, func() bool {
		return len(transport.SentNames()) == 4
	}, time.Second, time.Millisecond)
	assert.Equal(t, []string{
		events.RegisterDispatcher,
		events.RequestOpCenConnect,
		events.GetIncidentCounts,
		events.GetInitialResponderCounts,
	}, transport.SentNames())
	assert.Equal(t, 0, svc.QueueLen())

	var payload events.OpCenConnect
	require.NoError(t, json.Unmarshal(transport.Sent()[1].Payload(), &payload))
	assert.Equal(t, "INC-1", payload.IncidentID)
	assert.Equal(t, "OC-1", payload.OpCenID)
	assert.Equal(t, "dispatcher-1", payload.DispatcherID)
}

func TestConsole_ConnectingThenIdleClearsHandoff(t *testing.T) {
	transport := channel.NewMemoryTransport(true)
	svc := startConsole(t, newTestConfig(config.RoleDispatcher), transport, ConsoleDeps{})
	waitConnected(t, svc)
	svc.WatchHandoff("INC-1")

	req, err := svc.RequestConnect(context.Background(), "INC-1", "OC-1", models.IncidentDetails{})
	require.NoError(t, err)

	require.NoError(t, transport.Push(events.OpCenConnectingStatus, events.OpCenStatus{IncidentID: "INC-1", Status: models.OpCenConnecting, RequestID: req.RequestID, OpCenID: "OC-1"}))
	require.NoError(t, transport.Push(events.OpCenConnectingStatus, events.OpCenStatus{IncidentID: "INC-1", Status: models.OpCenIdle, RequestID: req.RequestID}))

	require.Eventually(t, func() bool {
		snap, _ := svc.Handoff("INC-1")
		return snap.Status == models.OpCenIdle
	}, time.Second, time.Millisecond)
	snap, _ := svc.Handoff("INC-1")
	assert.Empty(t, snap.SelectedOpCen)
	assert.Empty(t, snap.HandedOffTo)
}

func TestConsole_ConnectedPostsHandoffMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	poster := handoff_mocks.NewMockPoster(ctrl)
	transport := channel.NewMemoryTransport(true)
	svc := startConsole(t, newTestConfig(config.RoleDispatcher), transport, ConsoleDeps{Poster: poster})
	waitConnected(t, svc)
	svc.WatchHandoff("INC-1")

	posted := make(chan models.HandoffMessage, 1)
	poster.EXPECT().
		PostHandoff(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg models.HandoffMessage) error {
			posted <- msg
			return nil
		}).
		Times(1)

	req, err := svc.RequestConnect(context.Background(), "INC-1", "OC-1", models.IncidentDetails{IncidentType: models.IncidentPolice, Description: "break-in"})
	require.NoError(t, err)
	require.NoError(t, transport.Push(events.OpCenConnectingStatus, events.OpCenStatus{IncidentID: "INC-1", Status: models.OpCenConnecting, RequestID: req.RequestID}))
	require.NoError(t, transport.Push(events.OpCenConnectingStatus, events.OpCenStatus{IncidentID: "INC-1", Status: models.OpCenConnected, RequestID: req.RequestID, OpCenID: "OC-1", ChannelID: "chan-1"}))

	select {
	case msg := <-posted:
		assert.Equal(t, "INC-1", msg.IncidentID)
		assert.Equal(t, models.IncidentPolice, msg.IncidentType)
		assert.Equal(t, "break-in", msg.Description)
	case <-time.After(time.Second):
		t.Fatal("handoff message was not posted")
	}

	snap, _ := svc.Handoff("INC-1")
	assert.Equal(t, models.OpCenIdle, snap.Status)
	assert.Equal(t, "OC-1", snap.HandedOffTo)

	svc.UnwatchHandoff("INC-1")
	_, ok := svc.Handoff("INC-1")
	assert.False(t, ok)
	assert.Empty(t, svc.Handoffs())
}

func TestConsole_RoleGuards(t *testing.T) {
	transport := channel.NewMemoryTransport(false)
	dispatcher := startConsole(t, newTestConfig(config.RoleDispatcher), transport, ConsoleDeps{})

	require.ErrorIs(t, dispatcher.SetAvailability(true), ErrWrongRole)
	require.NoError(t, dispatcher.AssignResponder("INC-1", "unit-4"))
	assert.Equal(t, 1, dispatcher.QueueLen())

	opcen := startConsole(t, newTestConfig(config.RoleOpCen), channel.NewMemoryTransport(false), ConsoleDeps{})
	require.NoError(t, opcen.SetAvailability(false))
	require.ErrorIs(t, opcen.AssignResponder("INC-1", "unit-4"), ErrWrongRole)
}

func TestNewConsoleService_UnknownRole(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	_, err := NewConsoleService(newTestConfig("supervisor"), channel.NewMemoryTransport(false), ConsoleDeps{}, logger)
	require.Error(t, err)
}
