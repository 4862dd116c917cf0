package call

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/kure690/GuardianDeployment-sub000/internal/call/mocks"
	"github.com/kure690/GuardianDeployment-sub000/internal/events"
	"github.com/kure690/GuardianDeployment-sub000/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const localID = "dispatcher-1"

func newTestAdapter(t *testing.T) (*Adapter, *mocks.MockEmitter) {
	ctrl := gomock.NewController(t)
	emitter := mocks.NewMockEmitter(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	adapter := New(emitter, logger, Options{
		LocalID:           localID,
		LocalName:         "Dispatcher One",
		RingTimeout:       30 * time.Second,
		MaxDisplayMembers: 2,
	})
	return adapter, emitter
}

// incoming регистрирует входящий звонок от "caller"
func incoming(adapter *Adapter, callID string) {
	adapter.HandleState(context.Background(), events.CallState{
		CallID:    callID,
		State:     models.CallRinging,
		CreatedBy: "caller",
		Members: []models.CallMember{
			{UserID: localID, Name: "Dispatcher One"},
			{UserID: "caller", Name: "Responder Ann"},
		},
	})
}

func TestRing(t *testing.T) {
	adapter, emitter := newTestAdapter(t)

	emitter.EXPECT().Enqueue(events.CallRing, gomock.Any()).Times(1)

	call, err := adapter.Ring(context.Background(), []models.CallMember{
		{UserID: "opcen-7", Name: "North"},
		{UserID: localID, Name: "duplicate self"},
	})
	require.NoError(t, err)

	assert.Equal(t, models.CallRinging, call.State)
	assert.True(t, call.IsCreatedByMe(localID))
	assert.Equal(t, 30*time.Second, call.RingTimeout)
	assert.Equal(t, call.RingTimeout, call.AutoCancelTimeout)
	require.Len(t, call.Members, 2)
	assert.Equal(t, localID, call.Members[0].UserID)
	assert.Equal(t, "opcen-7", call.Members[1].UserID)
}

func TestRing_NoMembers(t *testing.T) {
	adapter, _ := newTestAdapter(t)

	_, err := adapter.Ring(context.Background(), []models.CallMember{{UserID: localID}})
	require.ErrorIs(t, err, ErrNoMembers)
	assert.Empty(t, adapter.Calls())
}

func TestAccept_JoinsOnce(t *testing.T) {
	adapter, emitter := newTestAdapter(t)
	ctx := context.Background()
	incoming(adapter, "call-1")

	emitter.EXPECT().
		Enqueue(events.CallJoin, events.CallJoinRequest{CallID: "call-1", UserID: localID}).
		Times(1)

	require.NoError(t, adapter.Accept(ctx, "call-1"))
	// Повторный accept во время joining отклоняется
	require.ErrorIs(t, adapter.Accept(ctx, "call-1"), ErrIllegalTransition)

	call, ok := adapter.Call("call-1")
	require.True(t, ok)
	assert.Equal(t, models.CallJoining, call.State)
	assert.True(t, call.JoinedByMe)
}

func TestAccept_UnknownCall(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	require.ErrorIs(t, adapter.Accept(context.Background(), "missing"), ErrUnknownCall)
}

func TestDecline_ReasonDependsOnCreator(t *testing.T) {
	t.Run("created by me cancels", func(t *testing.T) {
		adapter, emitter := newTestAdapter(t)
		ctx := context.Background()

		emitter.EXPECT().Enqueue(events.CallRing, gomock.Any()).Times(1)
		call, err := adapter.Ring(ctx, []models.CallMember{{UserID: "opcen-7"}})
		require.NoError(t, err)

		emitter.EXPECT().
			Enqueue(events.CallLeave, events.CallLeaveRequest{CallID: call.ID, UserID: localID, Reason: models.LeaveCancel}).
			Times(1)

		reason, err := adapter.Decline(ctx, call.ID)
		require.NoError(t, err)
		assert.Equal(t, models.LeaveCancel, reason)
	})

	t.Run("incoming declines", func(t *testing.T) {
		adapter, emitter := newTestAdapter(t)
		ctx := context.Background()
		incoming(adapter, "call-1")

		emitter.EXPECT().
			Enqueue(events.CallLeave, events.CallLeaveRequest{CallID: "call-1", UserID: localID, Reason: models.LeaveDecline}).
			Times(1)

		reason, err := adapter.Decline(ctx, "call-1")
		require.NoError(t, err)
		assert.Equal(t, models.LeaveDecline, reason)

		// Покинутый звонок больше не хранится
		_, err = adapter.Decline(ctx, "call-1")
		require.ErrorIs(t, err, ErrUnknownCall)
		assert.Empty(t, adapter.Calls())
	})
}

func TestSupervisor_RingingToOfflineLeavesOnce(t *testing.T) {
	adapter, emitter := newTestAdapter(t)
	ctx := context.Background()
	incoming(adapter, "call-1")

	emitter.EXPECT().
		Enqueue(events.CallLeave, events.CallLeaveRequest{CallID: "call-1", UserID: localID, Reason: models.LeaveCancel}).
		Times(1)

	adapter.HandleState(ctx, events.CallState{CallID: "call-1", State: models.CallOffline})
	adapter.HandleState(ctx, events.CallState{CallID: "call-1", State: models.CallOffline})
	adapter.HandleState(ctx, events.CallState{CallID: "call-1", State: models.CallIdle})

	_, ok := adapter.Call("call-1")
	assert.False(t, ok)
}

func TestLeftCallsAreRetired(t *testing.T) {
	adapter, emitter := newTestAdapter(t)
	ctx := context.Background()
	incoming(adapter, "call-1")
	incoming(adapter, "call-2")

	emitter.EXPECT().Enqueue(events.CallLeave, gomock.Any()).Times(1)

	_, err := adapter.Decline(ctx, "call-1")
	require.NoError(t, err)
	adapter.HandleState(ctx, events.CallState{CallID: "call-2", State: models.CallLeft})

	assert.Empty(t, adapter.calls)

	// Запоздавший ringing по завершенному звонку не создает его заново
	incoming(adapter, "call-1")
	incoming(adapter, "call-2")
	assert.Empty(t, adapter.Calls())
}

func TestRetireLocked_BoundsEndedCalls(t *testing.T) {
	adapter, _ := newTestAdapter(t)

	for i := 0; i < endedLimit+10; i++ {
		adapter.retireLocked(fmt.Sprintf("call-%d", i))
	}

	assert.Len(t, adapter.ended, endedLimit)
	assert.Len(t, adapter.endedOrder, endedLimit)
	_, kept := adapter.ended[fmt.Sprintf("call-%d", endedLimit+9)]
	assert.True(t, kept)
	_, dropped := adapter.ended["call-0"]
	assert.False(t, dropped)
}

func TestSupervisor_IgnoresJoinedCalls(t *testing.T) {
	adapter, emitter := newTestAdapter(t)
	ctx := context.Background()
	incoming(adapter, "call-1")

	emitter.EXPECT().Enqueue(events.CallJoin, gomock.Any()).Times(1)
	emitter.EXPECT().Enqueue(events.CallLeave, gomock.Any()).Times(0)

	require.NoError(t, adapter.Accept(ctx, "call-1"))
	adapter.HandleState(ctx, events.CallState{CallID: "call-1", State: models.CallJoined})
	adapter.HandleState(ctx, events.CallState{CallID: "call-1", State: models.CallReconnecting})

	call, _ := adapter.Call("call-1")
	assert.Equal(t, models.CallReconnecting, call.State)
}

func TestHandleState_UnknownCallIgnored(t *testing.T) {
	adapter, _ := newTestAdapter(t)

	adapter.HandleState(context.Background(), events.CallState{CallID: "call-9", State: models.CallJoined})

	_, ok := adapter.Call("call-9")
	assert.False(t, ok)
}

func TestParticipants(t *testing.T) {
	t.Run("incoming call resolves creator", func(t *testing.T) {
		adapter, _ := newTestAdapter(t)
		incoming(adapter, "call-1")

		got, err := adapter.Participants("call-1", 0, false)
		require.NoError(t, err)
		assert.Equal(t, []models.CallMember{{UserID: "caller", Name: "Responder Ann"}}, got)
	})

	t.Run("own call lists other members capped", func(t *testing.T) {
		adapter, emitter := newTestAdapter(t)
		emitter.EXPECT().Enqueue(events.CallRing, gomock.Any()).Times(1)

		call, err := adapter.Ring(context.Background(), []models.CallMember{
			{UserID: "a", Name: "A"},
			{UserID: "b", Name: "B"},
			{UserID: "c", Name: "C"},
		})
		require.NoError(t, err)

		got, err := adapter.Participants(call.ID, 0, false)
		require.NoError(t, err)
		assert.Equal(t, []models.CallMember{{UserID: "a", Name: "A"}, {UserID: "b", Name: "B"}}, got)

		got, err = adapter.Participants(call.ID, 5, true)
		require.NoError(t, err)
		require.Len(t, got, 4)
		assert.Equal(t, localID, got[0].UserID)
	})

	t.Run("unknown call", func(t *testing.T) {
		adapter, _ := newTestAdapter(t)
		_, err := adapter.Participants("missing", 0, false)
		require.ErrorIs(t, err, ErrUnknownCall)
	})
}
