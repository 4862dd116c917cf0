package models

// IncidentCounts - число инцидентов по типам
type IncidentCounts struct {
	Medical int `json:"medical"`
	Fire    int `json:"fire"`
	Police  int `json:"police"`
	General int `json:"general"`
}

// ResponderCounts - число бригад по типам
type ResponderCounts struct {
	Fire    int `json:"fire"`
	Medical int `json:"medical"`
	Police  int `json:"police"`
}

// PresenceSnapshot - последний известный снимок счетчиков
type PresenceSnapshot struct {
	Incidents  IncidentCounts  `json:"incidents"`
	Responders ResponderCounts `json:"responders"`
}
