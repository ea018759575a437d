package gomiio

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Properties is an immutable snapshot of a get_prop response, pairing the
// requested names with the returned values by position.
type Properties struct {
	data  map[string]any
	names []string
}

// NewProperties zips names with values up to the shorter length. Names
// without a value, and names whose value is nil, read as unavailable.
func NewProperties(names []string, values []any) *Properties {
	n := min(len(names), len(values))
	data := make(map[string]any, n)
	for i := 0; i < n; i++ {
		data[names[i]] = values[i]
	}
	return &Properties{
		data:  data,
		names: append([]string(nil), names...),
	}
}

// Get returns the raw value reported for name.
func (p *Properties) Get(name string) (any, bool) {
	v, exists := p.data[name]
	if !exists || v == nil {
		return nil, false
	}
	return v, true
}

func (p *Properties) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// Names returns the requested property names in request order.
func (p *Properties) Names() []string {
	return append([]string(nil), p.names...)
}

// All returns a copy with every requested name, nil for the unavailable ones.
func (p *Properties) All() map[string]any {
	result := make(map[string]any, len(p.names))
	for _, name := range p.names {
		v, _ := p.Get(name)
		result[name] = v
	}
	return result
}

// Len is the number of values the device returned.
func (p *Properties) Len() int {
	return len(p.data)
}

func (p *Properties) Text(name string) Field[string] {
	v, ok := p.Get(name)
	return tryParse(v, ok, toString)
}

func (p *Properties) Float(name string) Field[float64] {
	v, ok := p.Get(name)
	return tryParse(v, ok, toFloat)
}

// Int reads integral numbers and numeric strings.
func (p *Properties) Int(name string) Field[int] {
	v, ok := p.Get(name)
	return tryParse(v, ok, toInt)
}

// OnOff reads an "on"/"off" string as a boolean.
func (p *Properties) OnOff(name string) Field[bool] {
	return mapField(p.Text(name), func(s string) bool { return s == "on" })
}

// translated reads a value through a wire -> public table; values missing
// from the table are unavailable.
func translated[K comparable, V any](name string, raw Field[K], table map[K]V) Field[V] {
	return tryParse(raw.value, raw.ok, func(k K) (V, error) {
		if v, exists := table[k]; exists {
			return v, nil
		}
		var zero V
		return zero, fmt.Errorf("no translation for %s=%v", name, k)
	})
}

func toString(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case fmt.Stringer:
		return t.String(), nil
	}
	return "", fmt.Errorf("unexpected %T for string value", v)
}

func toFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case json.Number:
		return t.Float64()
	case string:
		return strconv.ParseFloat(t, 64)
	}
	return 0, fmt.Errorf("unexpected %T for numeric value", v)
}

func toInt(v any) (int, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case int64:
		return int(t), nil
	case string:
		return strconv.Atoi(t)
	}
	f, err := toFloat(v)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("non-integral value %v", f)
	}
	return int(f), nil
}
