package events

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate проверяет полезную нагрузку по тегам validate
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("events: invalid payload: %w", err)
	}
	return nil
}

// Decode разбирает и проверяет полезную нагрузку входящего события
func Decode[T any](raw json.RawMessage) (T, error) {
	var v T
	if len(raw) == 0 {
		return v, fmt.Errorf("events: empty payload")
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("events: failed to unmarshal payload: %w", err)
	}
	if err := Validate(v); err != nil {
		return v, err
	}
	return v, nil
}
