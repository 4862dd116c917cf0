// Package presence хранит последние известные счетчики инцидентов и бригад.
package presence

import (
	"context"
	"sync"

	"github.com/kure690/GuardianDeployment-sub000/internal/channel"
	"github.com/kure690/GuardianDeployment-sub000/internal/events"
	"github.com/kure690/GuardianDeployment-sub000/internal/models"
	"github.com/sirupsen/logrus"
)

type Sender interface {
	Send(ctx context.Context, event string, args ...any) error
}

type Aggregator struct {
	sender Sender
	logger *logrus.Logger

	mu       sync.Mutex
	snapshot models.PresenceSnapshot
}

func New(sender Sender, logger *logrus.Logger) *Aggregator {
	return &Aggregator{sender: sender, logger: logger}
}

// Attach запрашивает начальный снимок на каждом подключении и подписывается на рассылки
func (a *Aggregator) Attach(conn *channel.Connection) {
	conn.OnConnect(a.RequestSnapshot)
	channel.Handle(conn, events.IncidentCountsUpdate, a.HandleIncidentCounts)
	channel.Handle(conn, events.ResponderCountsUpdate, a.HandleResponderCounts)
}

// RequestSnapshot отправляет два независимых запроса
func (a *Aggregator) RequestSnapshot(ctx context.Context) {
	for _, event := range []string{events.GetIncidentCounts, events.GetInitialResponderCounts} {
		if err := a.sender.Send(ctx, event); err != nil {
			a.logger.WithError(err).WithField("event", event).Warn("Failed to request counts snapshot")
		}
	}
}

// HandleIncidentCounts заменяет присутствующие категории; отсутствующие остаются прежними
func (a *Aggregator) HandleIncidentCounts(_ context.Context, update events.IncidentCounts) {
	a.mu.Lock()
	defer a.mu.Unlock()
	c := &a.snapshot.Incidents
	merge(&c.Medical, update.Medical)
	merge(&c.Fire, update.Fire)
	merge(&c.Police, update.Police)
	merge(&c.General, update.General)
}

func (a *Aggregator) HandleResponderCounts(_ context.Context, update events.ResponderCounts) {
	a.mu.Lock()
	defer a.mu.Unlock()
	c := &a.snapshot.Responders
	merge(&c.Fire, update.Fire)
	merge(&c.Medical, update.Medical)
	merge(&c.Police, update.Police)
}

func (a *Aggregator) Snapshot() models.PresenceSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshot
}

func merge(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
