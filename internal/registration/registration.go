// Package registration объявляет координатору роль и идентификатор консоли при
// каждом подключении канала, чтобы маршрутизация входящих событий работала и
// после переподключений. Состояние о прошлых регистрациях не хранится.
package registration

import (
	"context"
	"fmt"

	"github.com/kure690/GuardianDeployment-sub000/internal/channel"
	"github.com/kure690/GuardianDeployment-sub000/internal/config"
	"github.com/kure690/GuardianDeployment-sub000/internal/events"
	"github.com/kure690/GuardianDeployment-sub000/internal/models"
	"github.com/sirupsen/logrus"
)

// Sender - часть Connection, нужная регистрации
type Sender interface {
	Send(ctx context.Context, event string, args ...any) error
}

type Registrar struct {
	sender   Sender
	identity models.RoleRegistration
	logger   *logrus.Logger
}

func New(sender Sender, identity models.RoleRegistration, logger *logrus.Logger) (*Registrar, error) {
	if _, err := eventFor(identity.Role); err != nil {
		return nil, err
	}
	if identity.ID == "" {
		return nil, fmt.Errorf("registration: empty identity")
	}
	return &Registrar{sender: sender, identity: identity, logger: logger}, nil
}

// Attach регистрирует хук; его нужно подключить раньше очереди событий,
// чтобы регистрация уходила до сброса буфера
func (r *Registrar) Attach(conn *channel.Connection) {
	conn.OnConnect(r.Register)
}

// Register отправляет событие регистрации; вызывается на каждом переходе в connected
func (r *Registrar) Register(ctx context.Context) {
	event, _ := eventFor(r.identity.Role)
	log := r.logger.WithFields(logrus.Fields{
		"component": "registration",
		"event":     event,
		"id":        r.identity.ID,
	})
	if err := r.sender.Send(ctx, event, events.Registration{ID: r.identity.ID}); err != nil {
		// Следующее подключение повторит регистрацию
		log.WithError(err).Warn("Failed to register role")
		return
	}
	log.Info("Role registered with coordinator")
}

func eventFor(role string) (string, error) {
	switch role {
	case config.RoleDispatcher:
		return events.RegisterDispatcher, nil
	case config.RoleOpCen:
		return events.RegisterOpCen, nil
	}
	return "", fmt.Errorf("registration: unknown role %q", role)
}
