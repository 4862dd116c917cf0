// Package handoff ведет машины состояний передачи инцидента от диспетчера к
// OpCen: idle -> connecting -> connected -> idle. Локальное "connecting" ставится
// оптимистично, авторитетным считается первое входящее событие статуса.
package handoff

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kure690/GuardianDeployment-sub000/internal/channel"
	"github.com/kure690/GuardianDeployment-sub000/internal/config"
	"github.com/kure690/GuardianDeployment-sub000/internal/events"
	"github.com/kure690/GuardianDeployment-sub000/internal/metrics"
	"github.com/kure690/GuardianDeployment-sub000/internal/models"
	"github.com/sirupsen/logrus"
)

const unknownOpCenName = "Unknown OpCen"

// backgroundTimeout ограничивает фоновые операции, отвязанные от запроса
const backgroundTimeout = 10 * time.Second

//go:generate mockgen -source=tracker.go -destination=mocks/mocks.go -package=mocks

// Emitter - надежная очередь исходящих событий
type Emitter interface {
	Enqueue(event string, args ...any)
}

// Directory разрешает отображаемые имена OpCen
type Directory interface {
	OpCenName(ctx context.Context, opCenID string) (string, error)
}

// IncidentLookup читает инцидент из хранилища
type IncidentLookup interface {
	GetIncident(ctx context.Context, id string) (*models.Incident, error)
}

// Poster публикует сообщение о передаче в интеграцию с чатом
type Poster interface {
	PostHandoff(ctx context.Context, msg models.HandoffMessage) error
}

// Journal сохраняет примененные переходы
type Journal interface {
	SaveHandoffEvent(ctx context.Context, event *models.HandoffEvent) error
}

type Options struct {
	Role    string
	LocalID string
	Emitter Emitter
	// Необязательные зависимости
	Directory Directory
	Lookup    IncidentLookup
	Poster    Poster
	Journal   Journal
	Metrics   *metrics.Metrics
	Now       func() time.Time
}

type Tracker struct {
	role      string
	localID   string
	emitter   Emitter
	directory Directory
	lookup    IncidentLookup
	poster    Poster
	journal   Journal
	metrics   *metrics.Metrics
	logger    *logrus.Logger
	now       func() time.Time

	mu       sync.Mutex
	machines map[string]*machine

	// Журнал пишется одним обработчиком строго в порядке переходов
	journalMu   sync.Mutex
	journalQ    []journalEntry
	journalBusy bool

	background sync.WaitGroup
}

type journalEntry struct {
	ctx   context.Context
	event *models.HandoffEvent
}

func NewTracker(logger *logrus.Logger, opts Options) *Tracker {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Tracker{
		role:      opts.Role,
		localID:   opts.LocalID,
		emitter:   opts.Emitter,
		directory: opts.Directory,
		lookup:    opts.Lookup,
		poster:    opts.Poster,
		journal:   opts.Journal,
		metrics:   opts.Metrics,
		logger:    logger,
		now:       opts.Now,
		machines:  make(map[string]*machine),
	}
}

// Attach подписывает трекер на рассылку статусов передачи
func (t *Tracker) Attach(conn *channel.Connection) {
	channel.Handle(conn, events.OpCenConnectingStatus, t.HandleStatus)
}

// Wait дожидается фоновых операций (разрешение имен, публикация, журнал)
func (t *Tracker) Wait() {
	t.background.Wait()
}

// Watch делает инцидент локально значимым и удерживает его состояние после
// завершения передачи. События по остальным инцидентам игнорируются.
func (t *Tracker) Watch(incidentID string) Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	m := t.machineLocked(incidentID)
	m.watched = true
	return m.snap
}

// Unwatch снимает удержание; завершенная передача сразу забывается,
// незавершенная - после перехода в idle
func (t *Tracker) Unwatch(incidentID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	m, ok := t.machines[incidentID]
	if !ok {
		return
	}
	m.watched = false
	t.pruneLocked(m)
}

func (t *Tracker) pruneLocked(m *machine) {
	if m.settled() {
		delete(t.machines, m.snap.IncidentID)
	}
}

func (t *Tracker) machineLocked(incidentID string) *machine {
	m, ok := t.machines[incidentID]
	if !ok {
		m = newMachine(incidentID, t.now())
		t.machines[incidentID] = m
	}
	return m
}

// Snapshot возвращает текущее состояние передачи инцидента
func (t *Tracker) Snapshot(incidentID string) (Snapshot, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	m, ok := t.machines[incidentID]
	if !ok {
		return Snapshot{}, false
	}
	return m.snap, true
}

// Snapshots возвращает состояния всех отслеживаемых инцидентов
func (t *Tracker) Snapshots() []Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Snapshot, 0, len(t.machines))
	for _, m := range t.machines {
		out = append(out, m.snap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IncidentID < out[j].IncidentID })
	return out
}

// RequestConnect формирует запрос диспетчера на подключение OpCen, сразу переводит
// инцидент в connecting и ставит запрос в очередь. Новый запрос вытесняет прежний.
func (t *Tracker) RequestConnect(ctx context.Context, incidentID, opCenID string, details models.IncidentDetails) (models.ConnectionRequest, error) {
	if t.role != config.RoleDispatcher {
		return models.ConnectionRequest{}, ErrWrongRole
	}
	log := t.logger.WithFields(logrus.Fields{
		"component":   "handoff",
		"method":      "RequestConnect",
		"incident_id": incidentID,
		"opcen_id":    opCenID,
	})

	now := t.now()
	req := models.ConnectionRequest{
		RequestID:       uuid.NewString(),
		IncidentID:      incidentID,
		DispatcherID:    t.localID,
		OpCenID:         opCenID,
		ConnectingTime:  now,
		IncidentDetails: details,
	}

	t.mu.Lock()
	m := t.machineLocked(incidentID)
	if _, err := m.fire(TriggerRequest, now); err != nil {
		t.mu.Unlock()
		return models.ConnectionRequest{}, err
	}
	if m.snap.RequestID != "" {
		log.WithField("superseded_request_id", m.snap.RequestID).Info("Superseding outstanding connect request")
	}
	m.clearPending()
	m.snap.SelectedOpCen = opCenID
	m.snap.RequestID = req.RequestID
	m.snap.DispatcherID = t.localID
	m.snap.ConnectingTime = now
	m.details = details
	t.record(ctx, incidentID, opCenID, req.RequestID, models.OpCenConnecting, models.HandoffSourceLocal)
	t.mu.Unlock()

	t.emitter.Enqueue(events.RequestOpCenConnect, events.OpCenConnect{
		RequestID:       req.RequestID,
		IncidentID:      incidentID,
		OpCenID:         opCenID,
		DispatcherID:    t.localID,
		ConnectingTime:  now,
		IncidentDetails: details,
	})
	t.metrics.HandoffTransition(string(models.OpCenConnecting))
	t.resolveName(ctx, incidentID, opCenID)

	log.WithField("request_id", req.RequestID).Info("Connect request enqueued")
	return req, nil
}

// HandleStatus применяет входящий статус передачи. Побеждает последнее событие;
// событие с requestId, отличным от текущего запроса, считается устаревшим.
func (t *Tracker) HandleStatus(ctx context.Context, ev events.OpCenStatus) {
	log := t.logger.WithFields(logrus.Fields{
		"component":   "handoff",
		"method":      "HandleStatus",
		"incident_id": ev.IncidentID,
		"status":      ev.Status,
	})
	now := t.now()

	t.mu.Lock()
	m, ok := t.machines[ev.IncidentID]
	if !ok && t.acceptsIncoming(ev) {
		m = t.machineLocked(ev.IncidentID)
		ok = true
	}
	if !ok {
		t.mu.Unlock()
		log.Debug("Ignoring status for untracked incident")
		return
	}
	if m.snap.RequestID != "" && ev.RequestID != "" && ev.RequestID != m.snap.RequestID {
		t.mu.Unlock()
		log.WithFields(logrus.Fields{
			"request_id":         ev.RequestID,
			"current_request_id": m.snap.RequestID,
		}).Warn("Ignoring status for superseded connect request")
		return
	}

	from := m.snap.Status
	var trigger Trigger
	switch ev.Status {
	case models.OpCenConnecting:
		trigger = TriggerConnecting
	case models.OpCenConnected:
		trigger = TriggerConnected
	default:
		trigger = TriggerIdle
	}
	if _, err := m.fire(trigger, now); err != nil {
		t.mu.Unlock()
		log.WithError(err).Warn("Status rejected by transition table")
		return
	}

	opCenID := firstNonEmpty(ev.OpCenID, m.snap.SelectedOpCen)
	requestID := firstNonEmpty(ev.RequestID, m.snap.RequestID)
	var post *models.HandoffMessage
	resolve := false

	switch ev.Status {
	case models.OpCenConnecting:
		m.snap.SelectedOpCen = opCenID
		if ev.DispatcherID != "" {
			m.snap.DispatcherID = ev.DispatcherID
		}
		if m.snap.ConnectingTime.IsZero() {
			m.snap.ConnectingTime = now
		}
		if ev.IncidentType != "" || ev.IncidentDescription != "" {
			m.details.IncidentType = firstType(ev.IncidentType, m.details.IncidentType)
			m.details.Description = firstNonEmpty(ev.IncidentDescription, m.details.Description)
		}
		if ev.OpCenName != "" {
			m.snap.OpCenName = ev.OpCenName
		} else if m.snap.OpCenName == "" {
			resolve = true
		}
	case models.OpCenConnected:
		if from == models.OpCenConnecting && t.role == config.RoleDispatcher && t.poster != nil {
			msg := t.handoffMessage(m, ev, opCenID, now)
			post = &msg
		}
		// Передача завершена, дальше инцидент живет в установленном канале
		m.snap.HandedOffTo = opCenID
		m.snap.ChannelID = firstNonEmpty(ev.ChannelID, m.snap.ChannelID)
		m.clearPending()
		_, _ = m.fire(TriggerClose, now)
	default:
		m.clearPending()
	}
	t.record(ctx, ev.IncidentID, opCenID, requestID, ev.Status, models.HandoffSourceCoordinator)
	t.pruneLocked(m)
	t.mu.Unlock()

	t.metrics.HandoffTransition(string(ev.Status))
	if resolve {
		t.resolveName(ctx, ev.IncidentID, opCenID)
	}
	if post != nil {
		t.postHandoff(ctx, *post)
	}
	log.WithField("from", from).Info("Hand-off status applied")
}

// acceptsIncoming: OpCen сам начинает отслеживать адресованные ему запросы
func (t *Tracker) acceptsIncoming(ev events.OpCenStatus) bool {
	if t.role != config.RoleOpCen || ev.Status != models.OpCenConnecting {
		return false
	}
	return ev.OpCenID == "" || ev.OpCenID == t.localID
}

func (t *Tracker) handoffMessage(m *machine, ev events.OpCenStatus, opCenID string, now time.Time) models.HandoffMessage {
	incidentType := firstType(ev.IncidentType, m.details.IncidentType)
	if incidentType == "" {
		incidentType = models.IncidentOther
	}
	description := firstNonEmpty(ev.IncidentDescription, m.details.Description)
	text := fmt.Sprintf("Incident %s handed off to %s. Type: %s.", ev.IncidentID, firstNonEmpty(m.snap.OpCenName, opCenID), incidentType)
	if description != "" {
		text += " Details: " + description
	}
	return models.HandoffMessage{
		IncidentID:   ev.IncidentID,
		ChannelID:    ev.ChannelID,
		OpCenID:      opCenID,
		DispatcherID: firstNonEmpty(m.snap.DispatcherID, t.localID),
		IncidentType: incidentType,
		Description:  description,
		Text:         text,
		Timestamp:    now,
	}
}

// Close явно закрывает передачу и возвращает инцидент в idle
func (t *Tracker) Close(ctx context.Context, incidentID string) error {
	t.mu.Lock()
	m, ok := t.machines[incidentID]
	if !ok {
		t.mu.Unlock()
		return ErrUnknownIncident
	}
	opCenID, requestID := m.snap.SelectedOpCen, m.snap.RequestID
	if _, err := m.fire(TriggerClose, t.now()); err != nil {
		t.mu.Unlock()
		return err
	}
	m.clearPending()
	t.record(ctx, incidentID, opCenID, requestID, models.OpCenIdle, models.HandoffSourceLocal)
	t.pruneLocked(m)
	t.mu.Unlock()

	t.metrics.HandoffTransition(string(models.OpCenIdle))
	return nil
}

// Rejoin повторно подключает сессию диспетчера к OpCen, принявшему инцидент.
// Отсутствие такого OpCen - нормальная ситуация: возвращает false без ошибки.
// Инцидент после rejoin остается под наблюдением до Unwatch.
func (t *Tracker) Rejoin(ctx context.Context, incidentID string) (bool, error) {
	if t.role != config.RoleDispatcher {
		return false, ErrWrongRole
	}
	if t.lookup == nil {
		return false, fmt.Errorf("handoff: incident lookup is not configured")
	}
	log := t.logger.WithFields(logrus.Fields{
		"component":   "handoff",
		"method":      "Rejoin",
		"incident_id": incidentID,
	})

	incident, err := t.lookup.GetIncident(ctx, incidentID)
	if err != nil {
		return false, fmt.Errorf("handoff: could not look up incident %s: %w", incidentID, err)
	}
	if !incident.HasOpCen() {
		log.WithField("opcen_status", incident.OpCenStatus).Debug("Incident has no connected OpCen, nothing to rejoin")
		return false, nil
	}

	t.mu.Lock()
	m := t.machineLocked(incidentID)
	m.watched = true
	m.snap.HandedOffTo = incident.OpCenID
	m.snap.DispatcherID = t.localID
	t.mu.Unlock()

	t.emitter.Enqueue(events.DispatcherRejoin, events.Rejoin{
		IncidentID:   incidentID,
		DispatcherID: t.localID,
		OpCenID:      incident.OpCenID,
	})
	log.WithField("opcen_id", incident.OpCenID).Info("Rejoin enqueued")
	return true, nil
}

// AcceptIncident - ответ OpCen на входящий запрос; статус меняет только координатор
func (t *Tracker) AcceptIncident(incidentID, channelID string) error {
	res, err := t.resolution(incidentID)
	if err != nil {
		return err
	}
	res.ChannelID = channelID
	t.emitter.Enqueue(events.OpCenAcceptIncident, res)
	return nil
}

// DeclineIncident отклоняет входящий запрос
func (t *Tracker) DeclineIncident(incidentID string) error {
	res, err := t.resolution(incidentID)
	if err != nil {
		return err
	}
	t.emitter.Enqueue(events.OpCenDeclineIncident, res)
	return nil
}

func (t *Tracker) resolution(incidentID string) (events.OpCenResolution, error) {
	if t.role != config.RoleOpCen {
		return events.OpCenResolution{}, ErrWrongRole
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	m, ok := t.machines[incidentID]
	if !ok {
		return events.OpCenResolution{}, ErrUnknownIncident
	}
	if m.snap.Status != models.OpCenConnecting {
		return events.OpCenResolution{}, fmt.Errorf("%w: resolve on %s", ErrIllegalTransition, m.snap.Status)
	}
	return events.OpCenResolution{
		IncidentID:   incidentID,
		OpCenID:      t.localID,
		DispatcherID: m.snap.DispatcherID,
	}, nil
}

// detach отвязывает фоновую работу от отмены запроса, значения контекста сохраняются
func detach(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), backgroundTimeout)
}

// resolveName разрешает имя OpCen в фоне: поиск не блокирует доставку других событий
func (t *Tracker) resolveName(ctx context.Context, incidentID, opCenID string) {
	if t.directory == nil || opCenID == "" {
		return
	}
	ctx, cancel := detach(ctx)
	t.background.Add(1)
	go func() {
		defer t.background.Done()
		defer cancel()
		name, err := t.directory.OpCenName(ctx, opCenID)
		if err != nil || name == "" {
			t.logger.WithError(err).WithFields(logrus.Fields{
				"component": "handoff",
				"opcen_id":  opCenID,
			}).Warn("Failed to resolve OpCen name, using placeholder")
			name = unknownOpCenName
		}

		t.mu.Lock()
		defer t.mu.Unlock()
		m, ok := t.machines[incidentID]
		if !ok || m.snap.Status != models.OpCenConnecting || m.snap.SelectedOpCen != opCenID {
			return
		}
		m.snap.OpCenName = name
	}()
}

func (t *Tracker) postHandoff(ctx context.Context, msg models.HandoffMessage) {
	ctx, cancel := detach(ctx)
	t.background.Add(1)
	go func() {
		defer t.background.Done()
		defer cancel()
		if err := t.poster.PostHandoff(ctx, msg); err != nil {
			t.logger.WithError(err).WithFields(logrus.Fields{
				"component":   "handoff",
				"incident_id": msg.IncidentID,
			}).Error("Failed to post hand-off message")
		}
	}()
}

// record ставит переход в очередь журнала. Вызывается под t.mu, поэтому порядок
// записей совпадает с порядком переходов.
func (t *Tracker) record(ctx context.Context, incidentID, opCenID, requestID string, status models.OpCenStatus, source string) {
	if t.journal == nil {
		return
	}
	ev := &models.HandoffEvent{
		IncidentID: incidentID,
		OpCenID:    opCenID,
		RequestID:  requestID,
		Status:     status,
		Source:     source,
		RecordedAt: t.now(),
	}

	t.journalMu.Lock()
	defer t.journalMu.Unlock()
	t.journalQ = append(t.journalQ, journalEntry{ctx: context.WithoutCancel(ctx), event: ev})
	if t.journalBusy {
		return
	}
	t.journalBusy = true
	t.background.Add(1)
	go t.drainJournal()
}

func (t *Tracker) drainJournal() {
	defer t.background.Done()
	for {
		t.journalMu.Lock()
		if len(t.journalQ) == 0 {
			t.journalBusy = false
			t.journalMu.Unlock()
			return
		}
		e := t.journalQ[0]
		t.journalQ[0] = journalEntry{}
		t.journalQ = t.journalQ[1:]
		t.journalMu.Unlock()

		ctx, cancel := context.WithTimeout(e.ctx, backgroundTimeout)
		if err := t.journal.SaveHandoffEvent(ctx, e.event); err != nil {
			t.logger.WithError(err).WithFields(logrus.Fields{
				"component":   "handoff",
				"incident_id": e.event.IncidentID,
				"status":      e.event.Status,
			}).Warn("Failed to journal hand-off transition")
		}
		cancel()
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstType(values ...models.IncidentType) models.IncidentType {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
