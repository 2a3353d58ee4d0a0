package snap

import (
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// ParseJSON decodes a JSON document into a snapshot.
func ParseJSON(data []byte) (*Value, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return FromAny(raw)
}

// ParseYAML decodes a YAML document into a snapshot.
func ParseYAML(data []byte) (*Value, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return FromAny(raw)
}

// MarshalJSON renders the snapshot in its wire form. Object keys are
// emitted in sorted order so output is deterministic.
func (v *Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.ToAny())
}

func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*v = *parsed
	return nil
}
