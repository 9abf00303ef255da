package feed

import (
	"encoding/json"
	"fmt"

	"github.com/okian/centum/internal/domain/model"
)

// rawPayload defers per-section decoding so one malformed section or
// record never poisons the rest of the payload.
type rawPayload struct {
	Campaign     json.RawMessage `json:"campaign"`
	Days         json.RawMessage `json:"days"`
	Challenges   json.RawMessage `json:"challenges"`
	Participants json.RawMessage `json:"participants"`
}

// Decode parses a payload fail-soft: any absent or malformed section
// yields an empty sequence, and malformed records within a section are
// dropped silently. Only a top-level document that is not a JSON object
// is an error.
func Decode(data []byte) (*model.Payload, error) {
	var raw rawPayload
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	p := &model.Payload{}
	if len(raw.Campaign) > 0 {
		// Best effort; a malformed campaign section leaves the zero value.
		_ = json.Unmarshal(raw.Campaign, &p.Campaign)
	}
	p.Days = decodeSection[model.DayRecord](raw.Days)
	p.Challenges = decodeSection[model.Challenge](raw.Challenges)
	p.Participants = decodeSection[model.Participant](raw.Participants)
	return p, nil
}

// decodeSection decodes a JSON array element by element, dropping entries
// that fail to decode (e.g. a day record with a non-numeric day).
func decodeSection[T any](data json.RawMessage) []T {
	if len(data) == 0 {
		return nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil
	}
	out := make([]T, 0, len(elems))
	for _, e := range elems {
		var v T
		if err := json.Unmarshal(e, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}
