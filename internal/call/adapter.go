// Package call адаптирует сигнализацию аудио/видео звонков к каналу координации.
// Состояния звонка меняются внешними событиями call-state; локально выполняются
// только ring, accept и decline.
package call

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kure690/GuardianDeployment-sub000/internal/channel"
	"github.com/kure690/GuardianDeployment-sub000/internal/events"
	"github.com/kure690/GuardianDeployment-sub000/internal/metrics"
	"github.com/kure690/GuardianDeployment-sub000/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownCall       = errors.New("call: unknown call")
	ErrIllegalTransition = errors.New("call: illegal transition")
	ErrNoMembers         = errors.New("call: at least one other member is required")
)

//go:generate mockgen -source=adapter.go -destination=mocks/mocks.go -package=mocks

// Emitter - надежная очередь исходящих событий
type Emitter interface {
	Enqueue(event string, args ...any)
}

type Options struct {
	LocalID   string
	LocalName string
	// RingTimeout задает и ring, и auto-cancel таймаут создаваемого звонка
	RingTimeout       time.Duration
	MaxDisplayMembers int
	Metrics           *metrics.Metrics
	Now               func() time.Time
}

type Adapter struct {
	localID     string
	localName   string
	ringTimeout time.Duration
	maxDisplay  int
	emitter     Emitter
	metrics     *metrics.Metrics
	logger      *logrus.Logger
	now         func() time.Time

	mu    sync.Mutex
	calls map[string]*models.Call
	// ended - недавно завершенные звонки, запоздавшие события по ним игнорируются
	ended      map[string]struct{}
	endedOrder []string
}

// endedLimit ограничивает память о завершенных звонках
const endedLimit = 64

func New(emitter Emitter, logger *logrus.Logger, opts Options) *Adapter {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.RingTimeout <= 0 {
		opts.RingTimeout = 30 * time.Second
	}
	if opts.MaxDisplayMembers <= 0 {
		opts.MaxDisplayMembers = 3
	}
	return &Adapter{
		localID:     opts.LocalID,
		localName:   opts.LocalName,
		ringTimeout: opts.RingTimeout,
		maxDisplay:  opts.MaxDisplayMembers,
		emitter:     emitter,
		metrics:     opts.Metrics,
		logger:      logger,
		now:         opts.Now,
		calls:       make(map[string]*models.Call),
		ended:       make(map[string]struct{}),
	}
}

// Attach подписывает адаптер на внешние изменения состояния звонков
func (a *Adapter) Attach(conn *channel.Connection) {
	channel.Handle(conn, events.CallStateChanged, a.HandleState)
}

// Ring создает исходящий звонок. Оба таймаута одинаковы, сам адаптер их не отсчитывает.
func (a *Adapter) Ring(ctx context.Context, members []models.CallMember) (models.Call, error) {
	others := make([]models.CallMember, 0, len(members))
	for _, m := range members {
		if m.UserID != "" && m.UserID != a.localID {
			others = append(others, m)
		}
	}
	if len(others) == 0 {
		return models.Call{}, ErrNoMembers
	}

	call := &models.Call{
		ID:                uuid.NewString(),
		CreatedBy:         a.localID,
		Members:           append([]models.CallMember{{UserID: a.localID, Name: a.localName}}, others...),
		State:             models.CallRinging,
		RingTimeout:       a.ringTimeout,
		AutoCancelTimeout: a.ringTimeout,
		CreatedAt:         a.now(),
	}

	a.mu.Lock()
	a.calls[call.ID] = call
	snapshot := copyCall(call)
	a.mu.Unlock()

	a.emitter.Enqueue(events.CallRing, events.CallRingRequest{
		CallID:              call.ID,
		CreatedBy:           call.CreatedBy,
		Members:             snapshot.Members,
		RingTimeoutMs:       call.RingTimeout.Milliseconds(),
		AutoCancelTimeoutMs: call.AutoCancelTimeout.Milliseconds(),
	})
	a.logger.WithFields(logrus.Fields{
		"component": "call",
		"method":    "Ring",
		"call_id":   call.ID,
		"members":   len(others),
	}).Info("Call ringing")
	return snapshot, nil
}

// Accept присоединяется к звонку. Допустим только из ringing: повторный accept
// во время joining отклоняется, чтобы не было двойного входа.
func (a *Adapter) Accept(ctx context.Context, callID string) error {
	a.mu.Lock()
	call, ok := a.calls[callID]
	if !ok {
		a.mu.Unlock()
		return ErrUnknownCall
	}
	if call.State != models.CallRinging {
		state := call.State
		a.mu.Unlock()
		return fmt.Errorf("%w: accept from %s", ErrIllegalTransition, state)
	}
	call.State = models.CallJoining
	call.JoinedByMe = true
	a.mu.Unlock()

	a.emitter.Enqueue(events.CallJoin, events.CallJoinRequest{CallID: callID, UserID: a.localID})
	return nil
}

// Decline выходит из звонка: создатель отменяет (cancel), остальные отклоняют (decline)
func (a *Adapter) Decline(ctx context.Context, callID string) (models.LeaveReason, error) {
	a.mu.Lock()
	call, ok := a.calls[callID]
	if !ok {
		a.mu.Unlock()
		return "", ErrUnknownCall
	}
	if call.State != models.CallRinging && call.State != models.CallJoining {
		state := call.State
		a.mu.Unlock()
		return "", fmt.Errorf("%w: decline from %s", ErrIllegalTransition, state)
	}
	reason := models.LeaveDecline
	if call.IsCreatedByMe(a.localID) {
		reason = models.LeaveCancel
	}
	a.retireLocked(callID)
	a.mu.Unlock()

	a.leave(callID, reason)
	return reason, nil
}

// HandleState применяет внешнее состояние звонка и проверяет звонки, покинувшие ringing
func (a *Adapter) HandleState(ctx context.Context, ev events.CallState) {
	log := a.logger.WithFields(logrus.Fields{
		"component": "call",
		"method":    "HandleState",
		"call_id":   ev.CallID,
		"state":     ev.State,
	})

	a.mu.Lock()
	call, ok := a.calls[ev.CallID]
	if !ok {
		_, retired := a.ended[ev.CallID]
		if retired || ev.State != models.CallRinging {
			a.mu.Unlock()
			log.Debug("Ignoring state for unknown or ended call")
			return
		}
		// Входящий звонок
		call = &models.Call{
			ID:                ev.CallID,
			CreatedBy:         ev.CreatedBy,
			Members:           append([]models.CallMember(nil), ev.Members...),
			State:             models.CallRinging,
			RingTimeout:       a.ringTimeout,
			AutoCancelTimeout: a.ringTimeout,
			CreatedAt:         a.now(),
		}
		a.calls[ev.CallID] = call
		a.mu.Unlock()
		log.Info("Incoming call")
		return
	}
	from := call.State
	call.State = ev.State
	if len(ev.Members) > 0 {
		call.Members = append([]models.CallMember(nil), ev.Members...)
	}

	cancel := abandonedRinging(from, ev.State, call.JoinedByMe)
	if cancel || ev.State == models.CallLeft {
		a.retireLocked(ev.CallID)
	}
	a.mu.Unlock()

	if cancel {
		log.WithField("from", from).Warn("Call left ringing without local join, cancelling")
		a.metrics.CallAutoCancelled()
		a.leave(ev.CallID, models.LeaveCancel)
	}
}

// abandonedRinging: звонок ушел из ringing не в сторону входа и не был принят локально
func abandonedRinging(from, to models.CallingState, joinedByMe bool) bool {
	if from != models.CallRinging || joinedByMe {
		return false
	}
	switch to {
	case models.CallRinging, models.CallJoining, models.CallJoined, models.CallLeft:
		return false
	}
	return true
}

// retireLocked удаляет покинутый звонок и запоминает его id
func (a *Adapter) retireLocked(callID string) {
	delete(a.calls, callID)
	if _, ok := a.ended[callID]; ok {
		return
	}
	a.ended[callID] = struct{}{}
	a.endedOrder = append(a.endedOrder, callID)
	if len(a.endedOrder) > endedLimit {
		delete(a.ended, a.endedOrder[0])
		a.endedOrder = a.endedOrder[1:]
	}
}

func (a *Adapter) leave(callID string, reason models.LeaveReason) {
	a.emitter.Enqueue(events.CallLeave, events.CallLeaveRequest{
		CallID: callID,
		UserID: a.localID,
		Reason: reason,
	})
}

// Call возвращает копию звонка
func (a *Adapter) Call(callID string) (models.Call, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	call, ok := a.calls[callID]
	if !ok {
		return models.Call{}, false
	}
	return copyCall(call), true
}

// Calls возвращает активные звонки, старые первыми
func (a *Adapter) Calls() []models.Call {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]models.Call, 0, len(a.calls))
	for _, c := range a.calls {
		out = append(out, copyCall(c))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Participants отвечает на вопрос "кто звонит". Для чужого звонка это создатель,
// найденный среди участников; для своего - остальные участники, не больше max.
func (a *Adapter) Participants(callID string, max int, includeSelf bool) ([]models.CallMember, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	call, ok := a.calls[callID]
	if !ok {
		return nil, ErrUnknownCall
	}

	if !call.IsCreatedByMe(a.localID) {
		creator, found := call.Member(call.CreatedBy)
		if !found {
			creator = models.CallMember{UserID: call.CreatedBy}
		}
		return []models.CallMember{creator}, nil
	}

	if max <= 0 {
		max = a.maxDisplay
	}
	out := make([]models.CallMember, 0, max)
	for _, m := range call.Members {
		if len(out) == max {
			break
		}
		if m.UserID == a.localID && !includeSelf {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func copyCall(c *models.Call) models.Call {
	out := *c
	out.Members = append([]models.CallMember(nil), c.Members...)
	return out
}
