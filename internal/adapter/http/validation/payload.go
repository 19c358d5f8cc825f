package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

var (
	ErrInvalidTaskPayload     = errors.New("invalid task payload")
	ErrInvalidReorderPayload  = errors.New("invalid reorder payload")
	ErrInvalidPosition        = errors.New("invalid position")
	ErrInvalidSubtaskPayload  = errors.New("invalid subtask payload")
	ErrInvalidNotePayload     = errors.New("invalid note payload")
	ErrInvalidCategoryPayload = errors.New("invalid category payload")
)

// DecodeBody unmarshals a JSON object body into req and also returns the raw
// fields, which lets builders tell an explicit null from an absent field.
func DecodeBody(body []byte, req any) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("body must be a JSON object")
	}
	if req != nil {
		if err := json.Unmarshal(body, req); err != nil {
			return nil, err
		}
	}
	return raw, nil
}

// ParseTime accepts RFC 3339 timestamps and plain dates.
func ParseTime(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed.UTC(), nil
	}
	return time.Parse(time.DateOnly, value)
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func hasAnyJSONField(raw map[string]json.RawMessage, fields ...string) bool {
	for _, field := range fields {
		if hasJSONField(raw, field) {
			return true
		}
	}
	return false
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

// isExplicitNull reports a field present in the payload with a null value.
func isExplicitNull(raw map[string]json.RawMessage, field string) bool {
	value, ok := raw[field]
	return ok && isJSONNull(value)
}
