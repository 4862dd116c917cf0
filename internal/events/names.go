// Package events описывает события канала координации: имена, типизированные
// полезные нагрузки и их проверку на границе канала.
package events

// Исходящие события
const (
	RegisterDispatcher         = "registerDispatcher"
	RegisterOpCen              = "registerOpCen"
	RequestOpCenConnect        = "requestOpCenConnect"
	OpCenAcceptIncident        = "opcenAcceptIncident"
	OpCenDeclineIncident       = "opcenDeclineIncident"
	DispatcherRejoin           = "dispatcherRejoin"
	UpdateOpCenAvailability    = "updateOpCenAvailability"
	GetIncidentCounts          = "getIncidentCounts"
	GetInitialResponderCounts  = "getInitialResponderCounts"
	RequestResponderAssignment = "requestResponderAssignment"
	CallRing                   = "callRing"
	CallJoin                   = "callJoin"
	CallLeave                  = "callLeave"
)

// Входящие события
const (
	OpCenConnectingStatus = "opcen-connecting-status"
	IncidentCountsUpdate  = "incidentCountsUpdate"
	ResponderCountsUpdate = "responderCountsUpdate"
	CallStateChanged      = "call-state"
)
