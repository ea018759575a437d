package gomiio

import (
	"encoding/json"
	"fmt"
)

const unavailable = "unavailable"

// Field is a decoded status value that may be unavailable because the
// device did not report it or reported something unparsable.
type Field[T any] struct {
	value T
	ok    bool
}

// Available returns a field carrying v.
func Available[T any](v T) Field[T] {
	return Field[T]{value: v, ok: true}
}

// Unavailable returns a field with no value.
func Unavailable[T any]() Field[T] {
	return Field[T]{}
}

// Get returns the value and whether it is present.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.ok
}

func (f Field[T]) Available() bool {
	return f.ok
}

// OrElse returns the value, or def when the field is unavailable.
func (f Field[T]) OrElse(def T) T {
	if !f.ok {
		return def
	}
	return f.value
}

func (f Field[T]) String() string {
	if !f.ok {
		return unavailable
	}
	return fmt.Sprint(f.value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.ok {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// tryParse converts raw with parse. A missing source or any parse error
// makes the field unavailable; it never fails the caller.
func tryParse[S, T any](raw S, present bool, parse func(S) (T, error)) Field[T] {
	if !present {
		return Unavailable[T]()
	}
	v, err := parse(raw)
	if err != nil {
		return Unavailable[T]()
	}
	return Available(v)
}

// mapField applies a total conversion to an available value.
func mapField[T, U any](f Field[T], fn func(T) U) Field[U] {
	v, ok := f.Get()
	if !ok {
		return Unavailable[U]()
	}
	return Available(fn(v))
}
