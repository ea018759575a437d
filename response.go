package gomiio

import (
	"encoding/json"
	"fmt"
)

// parseStringList turns an RPC result into a list of strings.
// Result shape is like: ["010500978022222102", "010201190280222221", "2"]
func parseStringList(result any) ([]string, error) {
	switch r := result.(type) {
	case []string:
		return r, nil
	case json.RawMessage:
		var list []string
		if err := json.Unmarshal(r, &list); err != nil {
			return nil, NewParseError("decode string list", err)
		}
		return list, nil
	case []any:
		list := make([]string, 0, len(r))
		for i, v := range r {
			switch t := v.(type) {
			case string:
				list = append(list, t)
			case float64, int, json.Number:
				list = append(list, fmt.Sprint(t))
			default:
				return nil, NewParseError(fmt.Sprintf("element %d has unexpected type %T", i, v), nil)
			}
		}
		return list, nil
	}
	return nil, NewParseError(fmt.Sprintf("unexpected result type %T", result), nil)
}

// parseValueList turns a get_prop result into a list of values.
func parseValueList(result any) ([]any, error) {
	switch r := result.(type) {
	case []any:
		return r, nil
	case json.RawMessage:
		var list []any
		if err := json.Unmarshal(r, &list); err != nil {
			return nil, NewParseError("decode value list", err)
		}
		return list, nil
	case []string:
		list := make([]any, len(r))
		for i, v := range r {
			list[i] = v
		}
		return list, nil
	case nil:
		return nil, nil
	}
	return nil, NewParseError(fmt.Sprintf("unexpected result type %T", result), nil)
}
