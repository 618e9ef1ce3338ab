package scriptgen

import (
	"encoding/json"
	"fmt"
)

// ParseBreakdown decodes the raw model output as strict JSON. The field names
// inside the payload are established by the prompt, not validated here, so a
// well-formed object of any shape is accepted.
func ParseBreakdown(raw string) (map[string]any, error) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	return payload, nil
}
