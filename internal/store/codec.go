package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"watchlist/internal/domain"
)

// encodeLists renders name → items as indented JSON. encoding/json writes map
// keys sorted, so the output is stable across saves.
func encodeLists(lists map[string][]domain.Item) ([]byte, error) {
	raw := make(map[string][]string, len(lists))
	for name, items := range lists {
		raw[name] = domain.Strings(items)
	}
	b, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// decodeLists parses a plain registry file. Anything that does not round-trip
// to a valid registry is rejected rather than silently dropped.
func decodeLists(data []byte) (map[string][]domain.Item, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("top-level value is null")
	}

	out := make(map[string][]domain.Item, len(raw))
	for name, msg := range raw {
		if name == "" {
			return nil, fmt.Errorf("list with empty name")
		}
		if bytes.Equal(bytes.TrimSpace(msg), []byte("null")) {
			return nil, fmt.Errorf("list %q: items are null", name)
		}
		var texts []string
		if err := json.Unmarshal(msg, &texts); err != nil {
			return nil, fmt.Errorf("list %q: %w", name, err)
		}
		for i, t := range texts {
			if t == "" {
				return nil, fmt.Errorf("list %q: item %d is empty", name, i+1)
			}
		}
		out[name] = domain.Items(texts...)
	}
	return out, nil
}
