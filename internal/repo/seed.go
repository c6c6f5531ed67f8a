package repo

import (
	"encoding/json"
	"fmt"

	"daysoflight/internal/model"
)

// DecodeSeed parses and validates a JSON array of houses. Houses without
// an explicit "is_active" field are active.
func DecodeSeed(data []byte) ([]model.House, error) {
	var raw []struct {
		model.House
		IsActive *bool `json:"is_active"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding seed: %w", err)
	}

	hs := make([]model.House, 0, len(raw))
	for _, r := range raw {
		h := r.House
		h.IsActive = r.IsActive == nil || *r.IsActive
		hs = append(hs, h)
	}
	if err := Validate(hs); err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}
	return hs, nil
}
