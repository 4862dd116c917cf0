package models

import "time"

// CallingState - жизненный цикл аудио/видео звонка
type CallingState string

const (
	CallIdle               CallingState = "idle"
	CallUnknown            CallingState = "unknown"
	CallJoining            CallingState = "joining"
	CallRinging            CallingState = "ringing"
	CallMigrating          CallingState = "migrating"
	CallReconnecting       CallingState = "reconnecting"
	CallReconnectingFailed CallingState = "reconnecting_failed"
	CallOffline            CallingState = "offline"
	CallJoined             CallingState = "joined"
	CallLeft               CallingState = "left"
)

// Valid сообщает, входит ли состояние в допустимый набор
func (s CallingState) Valid() bool {
	switch s {
	case CallIdle, CallUnknown, CallJoining, CallRinging, CallMigrating,
		CallReconnecting, CallReconnectingFailed, CallOffline, CallJoined, CallLeft:
		return true
	}
	return false
}

// LeaveReason передается координатору при выходе из звонка
type LeaveReason string

const (
	LeaveCancel  LeaveReason = "cancel"
	LeaveDecline LeaveReason = "decline"
)

type CallMember struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

// Call - звонок текущей сессии, не сохраняется
type Call struct {
	ID                string        `json:"callId"`
	CreatedBy         string        `json:"createdBy"`
	Members           []CallMember  `json:"members"`
	State             CallingState  `json:"callingState"`
	JoinedByMe        bool          `json:"joinedByMe"`
	RingTimeout       time.Duration `json:"-"`
	AutoCancelTimeout time.Duration `json:"-"`
	CreatedAt         time.Time     `json:"createdAt"`
}

// IsCreatedByMe определяет семантику decline: cancel для создателя, decline для остальных
func (c *Call) IsCreatedByMe(localID string) bool {
	return c.CreatedBy == localID
}

// Member ищет участника по идентификатору
func (c *Call) Member(userID string) (CallMember, bool) {
	for _, m := range c.Members {
		if m.UserID == userID {
			return m, true
		}
	}
	return CallMember{}, false
}
