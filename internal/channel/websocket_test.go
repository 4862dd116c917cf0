package channel

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kure690/GuardianDeployment-sub000/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebsocketTransport_RoundTrip(t *testing.T) {
	upgrader := websocket.Upgrader{}
	gotAuth := make(chan string, 1)
	received := make(chan events.Envelope, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth <- r.Header.Get("Authorization")
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()

		var env events.Envelope
		if err := ws.ReadJSON(&env); err != nil {
			return
		}
		received <- env
		_ = ws.WriteJSON(map[string]any{
			"event": events.IncidentCountsUpdate,
			"args":  []any{map[string]int{"fire": 2}},
		})
		// ждем закрытия клиентом
		_, _, _ = ws.ReadMessage()
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	tr := NewWebsocketTransport(url, "secret-token")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	conn, err := tr.Dial(ctx)
	require.NoError(t, err)
	defer conn.Close()

	assert.Equal(t, "Bearer secret-token", <-gotAuth)

	env, err := events.NewEnvelope(events.RegisterDispatcher, events.Registration{ID: "disp-1"})
	require.NoError(t, err)
	require.NoError(t, conn.Send(ctx, env))

	got := <-received
	assert.Equal(t, events.RegisterDispatcher, got.Event)
	assert.JSONEq(t, `{"id":"disp-1"}`, string(got.Payload()))

	in, err := conn.Receive(ctx)
	require.NoError(t, err)
	assert.Equal(t, events.IncidentCountsUpdate, in.Event)
	assert.JSONEq(t, `{"fire":2}`, string(in.Payload()))
}

func TestWebsocketTransport_AuthRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	tr := NewWebsocketTransport("ws"+strings.TrimPrefix(srv.URL, "http"), "bad")
	_, err := tr.Dial(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "rejected credentials")
}
