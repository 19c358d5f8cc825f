package validation

import (
	"encoding/json"

	"tasktracker/internal/adapter/http/dto"
)

// BuildNoteContent returns the note body. Content is optional on create; an
// update has to name it, even if only to clear it with null.
func BuildNoteContent(req dto.NoteRequest, raw map[string]json.RawMessage, requireField bool) (*string, error) {
	if requireField && !hasJSONField(raw, "content") {
		return nil, ErrInvalidNotePayload
	}
	return req.Content, nil
}
