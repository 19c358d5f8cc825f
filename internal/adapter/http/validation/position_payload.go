package validation

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"tasktracker/internal/core/domain"
)

// MaxPosition bounds positions to what both storage backends hold as an
// unsigned integer column.
const MaxPosition = math.MaxUint32

type taskOrderPayload struct {
	ID       json.RawMessage `json:"id"`
	Position json.RawMessage `json:"position"`
}

// BuildReorderInput reads {"taskOrders": [{id, position}, ...]}. Anything
// other than an array of such objects is rejected.
func BuildReorderInput(raw map[string]json.RawMessage) ([]domain.TaskOrder, error) {
	value, ok := raw["taskOrders"]
	if !ok || !isJSONArray(value) {
		return nil, ErrInvalidReorderPayload
	}

	var items []taskOrderPayload
	if err := json.Unmarshal(value, &items); err != nil {
		return nil, ErrInvalidReorderPayload
	}

	orders := make([]domain.TaskOrder, 0, len(items))
	for _, item := range items {
		id, err := parseNonNegativeInteger(item.ID)
		if err != nil || id == 0 {
			return nil, ErrInvalidReorderPayload
		}
		position, err := parseNonNegativeInteger(item.Position)
		if err != nil {
			return nil, ErrInvalidReorderPayload
		}
		orders = append(orders, domain.TaskOrder{ID: id, Position: position})
	}

	return orders, nil
}

// BuildMoveInput reads {"position": <number>}.
func BuildMoveInput(raw map[string]json.RawMessage) (uint64, error) {
	value, ok := raw["position"]
	if !ok {
		return 0, ErrInvalidPosition
	}
	return parseNonNegativeInteger(value)
}

// parseNonNegativeInteger accepts a JSON number with no fractional part, so
// 2 and 2.0 are equal and "2" is not a number.
func parseNonNegativeInteger(value json.RawMessage) (uint64, error) {
	value = bytes.TrimSpace(value)
	if len(value) == 0 || !(value[0] == '-' || (value[0] >= '0' && value[0] <= '9')) {
		return 0, ErrInvalidPosition
	}

	var number json.Number
	if err := json.Unmarshal(value, &number); err != nil {
		return 0, ErrInvalidPosition
	}

	if parsed, err := strconv.ParseUint(number.String(), 10, 64); err == nil {
		if parsed > MaxPosition {
			return 0, ErrInvalidPosition
		}
		return parsed, nil
	}

	parsed, err := number.Float64()
	if err != nil || parsed < 0 || parsed > MaxPosition || parsed != math.Trunc(parsed) {
		return 0, ErrInvalidPosition
	}
	return uint64(parsed), nil
}

func isJSONArray(value json.RawMessage) bool {
	value = bytes.TrimSpace(value)
	return len(value) > 0 && value[0] == '['
}
