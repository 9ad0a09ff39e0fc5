package composer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.trai.ch/npmbridge/internal/core/domain"
	"go.trai.ch/zerr"
)

// isAbsent reports whether raw holds no value, null, or the empty array PHP
// writes in place of an empty map.
func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte("[]"))
}

// decodeExtra splits a package's extra block into its raw members.
func decodeExtra(raw json.RawMessage) (map[string]json.RawMessage, error) {
	if isAbsent(raw) {
		return nil, nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeMap(raw json.RawMessage) (map[string]any, error) {
	if isAbsent(raw) {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// decodeRequirements decodes a name to constraint map.
// Numeric constraints such as 2 are kept as json.Number, exactly as written.
func decodeRequirements(raw json.RawMessage) (domain.Requirements, error) {
	if isAbsent(raw) {
		return nil, nil
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}

	reqs := make(domain.Requirements, len(m))
	for name, value := range m {
		var v any
		if err := json.Unmarshal(value, &v); err != nil {
			return nil, err
		}
		switch c := v.(type) {
		case string:
			reqs[name] = c
		case float64:
			reqs[name] = json.Number(bytes.TrimSpace(value))
		default:
			return nil, zerr.With(zerr.New(fmt.Sprintf("invalid constraint type %T", v)), "dependency", name)
		}
	}
	return reqs, nil
}

// truthy evaluates a flag the way PHP's loose comparison with true does.
func truthy(raw json.RawMessage) bool {
	if isAbsent(raw) {
		return false
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}

	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != "" && t != "0"
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return false
	}
}
