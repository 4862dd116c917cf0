package events

import (
	"encoding/json"
	"fmt"
)

// Envelope - форма события на проводе: {"event": name, "args": [...]}
type Envelope struct {
	Event string            `json:"event"`
	Args  []json.RawMessage `json:"args,omitempty"`
}

// NewEnvelope сериализует аргументы в порядке вызова
func NewEnvelope(event string, args ...any) (Envelope, error) {
	env := Envelope{Event: event, Args: make([]json.RawMessage, 0, len(args))}
	for i, arg := range args {
		raw, err := json.Marshal(arg)
		if err != nil {
			return Envelope{}, fmt.Errorf("events: failed to marshal argument %d of %s: %w", i, event, err)
		}
		env.Args = append(env.Args, raw)
	}
	return env, nil
}

// Payload возвращает первый аргумент; входящие события координатора несут ровно один объект
func (e Envelope) Payload() json.RawMessage {
	if len(e.Args) == 0 {
		return nil
	}
	return e.Args[0]
}
