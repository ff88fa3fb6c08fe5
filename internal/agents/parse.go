package agents

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/xizzxy/NextMove/internal/ai"
)

// decodeList parses a model response expected to look like {"<key>": [...]}
// into typed records. Decoding is weakly typed because models frequently
// return numbers as strings and vice versa.
func decodeList[T any](raw, key string) ([]T, error) {
	cleaned := ai.ExtractJSON(raw)

	var envelope map[string]any
	if err := json.Unmarshal([]byte(cleaned), &envelope); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	items, ok := envelope[key]
	if !ok {
		return nil, fmt.Errorf("response is missing %q", key)
	}

	var out []T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(items); err != nil {
		return nil, fmt.Errorf("decode %q: %w", key, err)
	}

	return out, nil
}
