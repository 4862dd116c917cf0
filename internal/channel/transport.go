// Package channel владеет единственным долгоживущим двунаправленным каналом
// событий сессии: переподключение, состояние connected/disconnected,
// отправка и последовательная доставка входящих событий обработчикам.
package channel

import (
	"context"
	"errors"

	"github.com/kure690/GuardianDeployment-sub000/internal/events"
)

var (
	// ErrNotConnected возвращается при отправке, пока канал отключен
	ErrNotConnected = errors.New("channel: not connected")
	// ErrConnClosed возвращается из Receive/Send закрытого соединения
	ErrConnClosed = errors.New("channel: connection closed")
)

// Conn - одно установленное соединение с координатором
type Conn interface {
	Send(ctx context.Context, env events.Envelope) error
	// Receive блокируется до следующего входящего события или разрыва соединения
	Receive(ctx context.Context) (events.Envelope, error)
	Close() error
}

// Transport устанавливает соединения; переподключением управляет Connection
type Transport interface {
	Dial(ctx context.Context) (Conn, error)
}
